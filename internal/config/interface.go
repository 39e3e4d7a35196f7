package config

import "context"

// Loader is the interface for a format-specific scene loader.
type Loader interface {
	// Load reads scene descriptions from the given paths (files or
	// directories), translates them into the format-agnostic model,
	// and returns the combined scene.
	Load(ctx context.Context, paths ...string) (*Scene, error)
}
