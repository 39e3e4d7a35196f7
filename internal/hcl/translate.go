package hcl

import (
	"fmt"
	"sort"

	"github.com/vk/assetcore/internal/config"
	"github.com/vk/assetcore/internal/resource"
	"github.com/vk/assetcore/internal/schema"
)

// translateResource converts the HCL-specific resource schema into the
// agnostic model.
func (l *Loader) translateResource(s *schema.Resource) (*config.Resource, error) {
	props, err := l.extractProperties(s.Arguments)
	if err != nil {
		return nil, fmt.Errorf("resource %q %q: %w", s.TypeName, s.Name, err)
	}

	return &config.Resource{
		TypeName:   s.TypeName,
		Name:       s.Name,
		Properties: props,
	}, nil
}

// extractProperties evaluates every attribute of the arguments block
// into a property. Scene files carry literal values only, so the
// expressions are evaluated without an evaluation context. Properties
// are ordered by source position to keep the output deterministic.
func (l *Loader) extractProperties(block *schema.ResourceArgs) (resource.Properties, error) {
	if block == nil {
		return nil, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid arguments block: %w", diags)
	}

	props := make(resource.Properties, 0, len(attrs))
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate argument %q: %w", attr.Name, diags)
		}
		props = append(props, resource.Property{Name: attr.Name, Value: val})
	}

	sort.Slice(props, func(i, j int) bool {
		return attrs[props[i].Name].Range.Start.Byte < attrs[props[j].Name].Range.Start.Byte
	})

	return props, nil
}
