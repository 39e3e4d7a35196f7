// Package config defines the format-agnostic scene model for the
// application, along with the Loader interface for reading scene
// descriptions from various sources.
//
// The config.Scene is the single source of truth the app applies to the
// resource registry. Concrete Loader implementations, such as for HCL,
// are provided in separate packages.
package config
