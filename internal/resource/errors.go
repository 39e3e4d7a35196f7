package resource

import "errors"

var (
	// ErrUnknownType is reported when a type id or type name is not
	// present in the registration table.
	ErrUnknownType = errors.New("resource: unknown type")

	// ErrInitialization is reported when a concrete type rejected the
	// properties handed to its Initialize.
	ErrInitialization = errors.New("resource: initialization failed")

	// ErrNotFound is reported when no resource is stored under the
	// requested name.
	ErrNotFound = errors.New("resource: not found")

	// ErrDuplicateTypeName is reported when a second, distinct type is
	// registered under an already-taken type name.
	ErrDuplicateTypeName = errors.New("resource: duplicate type name")

	// ErrTypeMismatch is reported when the resource stored under a name
	// is not of the type the caller asked for.
	ErrTypeMismatch = errors.New("resource: stored type mismatch")
)
