package resource

import (
	"fmt"
	"sync"

	"github.com/vk/assetcore/internal/reflection"
)

// registration binds a type id to its registered name and the
// zero-argument factory that manufactures an uninitialized instance.
// Registrations are created once and never mutated afterwards.
type registration struct {
	id      reflection.ID
	name    string
	factory func() Resource
}

// Registry holds the type registration table and the live resources,
// keyed by instance name. Construct one per process with New and inject
// it into the subsystems that need it; it is expected to live for the
// remainder of the process.
//
// All operations are safe for concurrent use. A single mutex guards
// both maps: registration and creation are read-then-write sequences,
// so the check and the insert happen under one critical section and
// two racing Create calls for the same name can never construct two
// objects.
type Registry struct {
	mu      sync.Mutex
	byName  map[string]*registration
	byID    map[reflection.ID]*registration
	entries map[string]Resource
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byName:  make(map[string]*registration),
		byID:    make(map[reflection.ID]*registration),
		entries: make(map[string]Resource),
	}
}

// Register binds T's type id and canonical type name into r's
// registration table. Registering the same T again is a no-op.
// Registering a distinct type under an already-taken name reports
// ErrDuplicateTypeName.
func Register[T any, P Ptr[T]](r *Registry) error {
	id := reflection.TypeID[T]()
	name := reflection.TypeName[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok {
		if existing.id == id {
			return nil
		}
		return fmt.Errorf("%w: %q is already bound to another type", ErrDuplicateTypeName, name)
	}

	reg := &registration{
		id:      id,
		name:    name,
		factory: func() Resource { return P(new(T)) },
	}
	r.byName[name] = reg
	r.byID[id] = reg
	return nil
}

// Create returns the resource stored under name, creating and
// initializing a fresh T when the name is absent.
//
// Creation is get-or-insert: when an entry already exists the stored
// object itself is returned, so callers must not assume a fresh
// instance. If the stored object is of a different concrete type the
// call reports ErrTypeMismatch. A failed Initialize reports
// ErrInitialization and leaves the registry unchanged.
func Create[T any, P Ptr[T]](r *Registry, name string, props Properties) (P, error) {
	var zero P

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[name]; ok {
		typed, ok := existing.(P)
		if !ok {
			return zero, fmt.Errorf("%w: %q holds a different type", ErrTypeMismatch, name)
		}
		return typed, nil
	}

	obj := P(new(T))
	if err := obj.Initialize(props); err != nil {
		return zero, fmt.Errorf("create %q: %w: %v", name, ErrInitialization, err)
	}

	r.entries[name] = obj
	return obj, nil
}

// Create constructs the resource named name via the factory registered
// for id. It is the runtime-dispatch twin of the generic Create for
// callers that only hold a type id, and it shares the same get-or-insert
// semantics.
//
// This entry point is routinely fed ids parsed from scene files, so an
// unregistered id, including the reserved reflection.Invalid sentinel,
// reports ErrUnknownType rather than panicking.
func (r *Registry) Create(id reflection.ID, name string, props Properties) (Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownType, id)
	}

	if existing, ok := r.entries[name]; ok {
		return existing, nil
	}

	obj := reg.factory()
	if err := obj.Initialize(props); err != nil {
		return nil, fmt.Errorf("create %q (%s): %w: %v", name, reg.name, ErrInitialization, err)
	}

	r.entries[name] = obj
	return obj, nil
}

// Add stores an already-constructed, already-initialized resource under
// name. The registry becomes a strong holder of res. Any prior entry
// under the same name is overwritten, not merged.
func Add[T any, P Ptr[T]](r *Registry, name string, res P) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = res
}

// Get returns the resource stored under name when present and of the
// requested type. It never constructs; absent names and type mismatches
// both report false.
func Get[T any, P Ptr[T]](r *Registry, name string) (P, bool) {
	r.mu.Lock()
	existing, ok := r.entries[name]
	r.mu.Unlock()

	if !ok {
		var zero P
		return zero, false
	}
	typed, ok := existing.(P)
	return typed, ok
}

// Get returns the resource stored under name as the type-erased
// Resource capability, for consumers that do not statically know the
// concrete type. It reports ErrNotFound when the name is absent.
func (r *Registry) Get(name string) (Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[name]; ok {
		return existing, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Exists reports whether a resource is stored under name.
func (r *Registry) Exists(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[name]
	return ok
}

// Remove drops the registry's reference to the resource named name.
// It is a no-op when the name is absent. Handles already held by other
// callers stay valid until their holders release them.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// TypeIDFromName is the reverse lookup into the registration table.
// It returns reflection.Invalid when name is not a registered type name.
func (r *Registry) TypeIDFromName(name string) reflection.ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reg, ok := r.byName[name]; ok {
		return reg.id
	}
	return reflection.Invalid
}

// TypeName returns the registered name for id.
func (r *Registry) TypeName(id reflection.ID) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reg, ok := r.byID[id]; ok {
		return reg.name, true
	}
	return "", false
}

// Len returns the number of live resources.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
