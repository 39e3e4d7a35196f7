// Package app is the composition root. It wires the logger, the
// resource registry, the scene loader, and the compiled-in resource
// modules into a runnable application instance.
package app
