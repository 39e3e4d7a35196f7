package app

import (
	"context"
	"fmt"

	"github.com/vk/assetcore/internal/ctxlog"
	"github.com/vk/assetcore/internal/reflection"
)

// Run applies the loaded scene to the registry and prints a summary.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.scene.Resources) == 0 {
		a.logger.Warn("No resource blocks found in scene, nothing to create.")
		return nil
	}

	created, failed := a.ApplyScene(ctx)
	fmt.Fprintf(a.outW, "Scene applied: %d resources created, %d failed.\n", created, failed)

	a.logger.Debug("App.Run method finished.")
	return nil
}

// ApplyScene walks the scene model and drives one runtime Create per
// resource block, resolving each block's type name to a type id first.
// Per-block failures are logged and skipped so one malformed block
// cannot sink the remainder of the scene.
func (a *App) ApplyScene(ctx context.Context) (created, failed int) {
	logger := ctxlog.FromContext(ctx)

	for _, res := range a.scene.Resources {
		id := a.registry.TypeIDFromName(res.TypeName)
		if id == reflection.Invalid {
			logger.Error("Unknown resource type in scene, skipping block.",
				"type", res.TypeName, "name", res.Name)
			failed++
			continue
		}

		if _, err := a.registry.Create(id, res.Name, res.Properties); err != nil {
			logger.Error("Failed to create resource, skipping block.",
				"type", res.TypeName, "name", res.Name, "error", err)
			failed++
			continue
		}

		logger.Info("Resource created.", "type", res.TypeName, "name", res.Name)
		created++
	}

	return created, failed
}
