package resource

// Resource is the minimal contract a registrable type must satisfy.
//
// Initialize receives the property list produced by a loader. A nil
// return means the object is ready for use; a non-nil return means
// construction failed and the object must be discarded. The resource
// may copy out whatever it needs from the properties and must not
// assume the slice stays valid after Initialize returns.
type Resource interface {
	Initialize(props Properties) error
}

// Ptr constrains P to "pointer to T implementing Resource". It lets the
// generic registry entry points default-construct a T and hand back a
// concretely typed handle.
type Ptr[T any] interface {
	*T
	Resource
}

// Module is the interface resource packages implement to register their
// types with a registry during application startup.
type Module interface {
	Register(r *Registry) error
}
