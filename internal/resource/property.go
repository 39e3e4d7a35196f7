package resource

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Property is a single named, dynamically typed configuration value
// handed to a resource's Initialize. The value is carried as a cty.Value
// so a loader can pass through whatever primitive kind the scene file
// held without the registry knowing about it.
type Property struct {
	Name  string
	Value cty.Value
}

// StringProperty builds a string-valued property.
func StringProperty(name, v string) Property {
	return Property{Name: name, Value: cty.StringVal(v)}
}

// NumberProperty builds a number-valued property.
func NumberProperty(name string, v float64) Property {
	return Property{Name: name, Value: cty.NumberFloatVal(v)}
}

// BoolProperty builds a bool-valued property.
func BoolProperty(name string, v bool) Property {
	return Property{Name: name, Value: cty.BoolVal(v)}
}

// Properties is an ordered property list. Keys are not required to be
// unique; every lookup on this type resolves duplicates by the FIRST
// occurrence, so resources using these helpers share one deterministic
// policy.
type Properties []Property

// First returns the value of the first property named name.
func (ps Properties) First(name string) (cty.Value, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return cty.NilVal, false
}

// String returns the first property named name as a Go string,
// converting compatible kinds where possible.
func (ps Properties) String(name string) (string, error) {
	var out string
	if err := ps.decode(name, cty.String, &out); err != nil {
		return "", err
	}
	return out, nil
}

// Number returns the first property named name as a float64.
func (ps Properties) Number(name string) (float64, error) {
	var out float64
	if err := ps.decode(name, cty.Number, &out); err != nil {
		return 0, err
	}
	return out, nil
}

// Bool returns the first property named name as a bool.
func (ps Properties) Bool(name string) (bool, error) {
	var out bool
	if err := ps.decode(name, cty.Bool, &out); err != nil {
		return false, err
	}
	return out, nil
}

// decode converts the first property named name to the wanted cty type
// and binds it into the Go pointer out.
func (ps Properties) decode(name string, want cty.Type, out any) error {
	val, ok := ps.First(name)
	if !ok {
		return fmt.Errorf("missing required property %q", name)
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("property %q: cannot convert %s to %s: %w",
			name, val.Type().FriendlyName(), want.FriendlyName(), err)
	}

	return gocty.FromCtyValue(converted, out)
}
