// Package resource provides the central registry for named, typed
// resources.
//
// The Registry is responsible for storing mappings between the string
// identifiers used in scene descriptions (e.g. "textfile.TextFile") and
// the actual compiled Go types that implement the resource, plus the
// live resources themselves, keyed by instance name.
//
// Two entry points converge on the same creation path: the generic
// Create[T] for callers that know the concrete type at compile time,
// and Registry.Create for callers that only hold a type id, commonly
// one resolved from a type name found in a scene file. Creation is
// get-or-insert: asking for an existing name returns the already-stored
// object, never a second copy.
//
// The registry is one strong holder of every stored resource. Handles
// returned to callers are plain pointers; Remove only drops the
// registry's reference, so handles already held elsewhere stay valid
// for as long as their holders keep them.
package resource
