package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/assetcore/internal/config"
	"github.com/vk/assetcore/internal/ctxlog"
	"github.com/vk/assetcore/internal/resource"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *resource.Registry
	scene    *config.Scene
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...resource.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Create and populate the registry with the compiled-in resource types.
	reg := resource.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		if err := mod.Register(reg); err != nil {
			// A type name collision is a programmer error, so we panic.
			panic(fmt.Errorf("failed to register module: %w", err))
		}
	}
	logger.Debug("All resource modules registered.", "count", len(modules))

	// Load the scene description into the format-agnostic model.
	scene, err := loader.Load(ctx, appConfig.ScenePath)
	if err != nil {
		// A failure to load the scene is a fatal startup error.
		panic(fmt.Errorf("failed to load scene: %w", err))
	}
	logger.Debug("Scene loaded and translated into unified model.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		scene:    scene,
	}
}

// Registry returns the application's resource registry. This is primarily
// for testing.
func (a *App) Registry() *resource.Registry {
	return a.registry
}

// Scene returns the loaded scene model. This is primarily for testing.
func (a *App) Scene() *config.Scene {
	return a.scene
}
