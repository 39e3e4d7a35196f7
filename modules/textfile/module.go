package textfile

import (
	"github.com/vk/assetcore/internal/resource"
)

// Module implements the resource.Module interface for this package.
type Module struct{}

// Register binds the TextFile type into the registry.
func (m *Module) Register(r *resource.Registry) error {
	return resource.Register[TextFile](r)
}
