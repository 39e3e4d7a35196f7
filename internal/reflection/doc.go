// Package reflection assigns stable, process-wide integer identifiers to
// resource types without any language-level registration ceremony.
//
// Ids come from a monotonically increasing counter keyed by the concrete
// reflect.Type, memoized on first request. Zero is reserved as the
// explicit "invalid type" sentinel so callers can safely pass around ids
// parsed from scene files and have the registry reject the bad ones.
//
// The package also derives a canonical "pkg.Type" name per type. That
// name is the only string-facing reflection surface: it is what a scene
// description uses to ask for a type it was never compiled against.
package reflection
