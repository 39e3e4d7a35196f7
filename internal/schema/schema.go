package schema

import "github.com/hashicorp/hcl/v2"

// ResourceArgs represents the content of the 'arguments' block within a
// resource block.
type ResourceArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// Resource represents a `resource` block from a user's scene file. It is
// a named instance of a registered resource type.
type Resource struct {
	TypeName  string        `hcl:"type_name,label"`
	Name      string        `hcl:"instance_name,label"`
	Arguments *ResourceArgs `hcl:"arguments,block"`
}

// SceneConfig represents the top-level structure of a user's scene file,
// containing all declared resources.
type SceneConfig struct {
	Resources []*Resource `hcl:"resource,block"`
	Body      hcl.Body    `hcl:",remain"`
}
