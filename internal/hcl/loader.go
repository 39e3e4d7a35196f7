package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/assetcore/internal/config"
	"github.com/vk/assetcore/internal/ctxlog"
	"github.com/vk/assetcore/internal/fsutil"
	"github.com/vk/assetcore/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL scene loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds every .hcl file under the given paths, parses each scene
// file, and translates the declared resource blocks into the agnostic
// model. Block order within a file is preserved. An unparseable file is
// a fatal load error; a single malformed block is logged and skipped so
// the remainder of the scene survives.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Scene, error) {
	logger := ctxlog.FromContext(ctx)
	scene := &config.Scene{}
	parser := hclparse.NewParser()

	for _, p := range paths {
		filePaths, err := fsutil.FindFilesByExtension(p, ".hcl")
		if err != nil {
			logger.Error("Failed to walk scene path", "path", p, "error", err)
			return nil, err
		}

		if len(filePaths) == 0 {
			logger.Warn("No .hcl scene files found in path", "path", p)
			continue
		}

		logger.Debug("Found HCL files to load", "files", filePaths)

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
			}

			var sc schema.SceneConfig
			if diags := gohcl.DecodeBody(hclFile.Body, nil, &sc); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode scene file %s: %w", filePath, diags)
			}

			// Block-level failures are not fatal: a scene with one
			// malformed block still yields the rest.
			for _, res := range sc.Resources {
				translated, err := l.translateResource(res)
				if err != nil {
					logger.Error("Skipping malformed resource block.",
						"file", filePath, "type", res.TypeName, "name", res.Name, "error", err)
					continue
				}
				scene.Resources = append(scene.Resources, translated)
			}

			logger.Debug("Successfully loaded scene file", "file", filePath, "resource_blocks", len(sc.Resources))
		}
	}

	logger.Info("Scene loaded successfully.", "resource_blocks", len(scene.Resources))
	return scene, nil
}
