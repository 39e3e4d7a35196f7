package config

import (
	"github.com/vk/assetcore/internal/resource"
)

// Scene is the unified, format-agnostic representation of a scene
// description: an ordered list of resource blocks to instantiate.
type Scene struct {
	Resources []*Resource
}

// Resource is the format-agnostic representation of a `resource` block:
// which registered type to construct, the registry name to store the
// instance under, and the properties handed to its Initialize.
type Resource struct {
	TypeName   string
	Name       string
	Properties resource.Properties
}
