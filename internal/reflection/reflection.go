package reflection

import (
	"path"
	"reflect"
	"strings"
	"sync"
)

// ID uniquely identifies a resource type within the running process.
// Ids are assigned on first use and stay stable for the lifetime of the
// process. The zero value is reserved as the "no such type" sentinel and
// is never assigned to a real type.
type ID uint32

// Invalid is the reserved sentinel id for an unknown or unregistered type.
const Invalid ID = 0

var (
	// mu guards the assignment table. First-use id assignment is a
	// read-then-write sequence, so concurrent first callers must be
	// serialized to observe the same id.
	mu     sync.Mutex
	nextID ID = 1
	ids       = make(map[reflect.Type]ID)
)

// typeNameCache memoizes derived type names by reflect.Type.
var typeNameCache sync.Map // reflect.Type -> string

// TypeOf returns the reflect.Type of T itself, not of a pointer to it.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeID returns the stable identifier for T, assigning a fresh one on
// first use and memoizing it for all later calls in this process.
func TypeID[T any]() ID {
	return idOf(TypeOf[T]())
}

func idOf(t reflect.Type) ID {
	mu.Lock()
	defer mu.Unlock()

	if id, ok := ids[t]; ok {
		return id
	}
	id := nextID
	nextID++
	ids[t] = id
	return id
}

// TypeName returns the canonical "pkg.Type" name for T. This is the
// registration key visible to runtime dispatch code, e.g. the type label
// a scene file uses to name a resource type.
func TypeName[T any]() string {
	return nameOf(TypeOf[T]())
}

func nameOf(t reflect.Type) string {
	if v, ok := typeNameCache.Load(t); ok {
		return v.(string)
	}

	name := stripTypeParams(t.Name())
	if p := t.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}

	typeNameCache.Store(t, name)
	return name
}

// stripTypeParams removes the generic instantiation suffix: "T[int]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
