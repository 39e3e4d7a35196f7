package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/assetcore/internal/app"
	"github.com/vk/assetcore/internal/resource"
	"github.com/vk/assetcore/modules/textfile"
)

// setupScene writes a scene file plus any backing fixture files and
// returns the scene directory.
func setupScene(t *testing.T, sceneHCL string, fixtures map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for name, content := range fixtures {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.hcl"), []byte(sceneHCL), 0600))

	return dir
}

func TestApplyScene_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := filepath.Join(dir, "test.txt")
	require.NoError(t, os.WriteFile(docPath, []byte("scene contents"), 0600))

	sceneHCL := `
resource "textfile.TextFile" "doc" {
  arguments {
    filename = ` + quote(docPath) + `
  }
}

resource "textfile.TextFile" "doc2" {
  arguments {
    filename = ` + quote(filepath.Join(dir, "missing.txt")) + `
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.hcl"), []byte(sceneHCL), 0600))

	testApp, _ := app.SetupAppTest(t, &app.Config{ScenePath: dir, LogFormat: "text"})
	created, failed := testApp.ApplyScene(context.Background())

	require.Equal(t, 1, created)
	require.Equal(t, 1, failed)

	reg := testApp.Registry()
	require.True(t, reg.Exists("doc"))
	require.False(t, reg.Exists("doc2"), "a failed Initialize must leave no partial entry")

	doc, ok := resource.Get[textfile.TextFile](reg, "doc")
	require.True(t, ok)
	require.Equal(t, "scene contents", doc.Text())

	reg.Remove("doc")
	require.False(t, reg.Exists("doc"))
}

func TestApplyScene_UnknownTypeSkipped(t *testing.T) {
	t.Parallel()

	dir := setupScene(t, `
resource "mesh.Mesh" "cube" {
  arguments {
    filename = "cube.obj"
  }
}
`, nil)

	testApp, logs := app.SetupAppTest(t, &app.Config{ScenePath: dir, LogFormat: "text"})
	created, failed := testApp.ApplyScene(context.Background())

	require.Equal(t, 0, created)
	require.Equal(t, 1, failed)
	require.Contains(t, logs.String(), "Unknown resource type")
}

func TestApplyScene_DuplicateNamesShareOneObject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := filepath.Join(dir, "test.txt")
	require.NoError(t, os.WriteFile(docPath, []byte("once"), 0600))

	sceneHCL := `
resource "textfile.TextFile" "doc" {
  arguments {
    filename = ` + quote(docPath) + `
  }
}

resource "textfile.TextFile" "doc" {
  arguments {
    filename = ` + quote(docPath) + `
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.hcl"), []byte(sceneHCL), 0600))

	testApp, _ := app.SetupAppTest(t, &app.Config{ScenePath: dir, LogFormat: "text"})
	created, failed := testApp.ApplyScene(context.Background())

	// The second block resolves to the already-created object.
	require.Equal(t, 2, created)
	require.Equal(t, 0, failed)
	require.Equal(t, 1, testApp.Registry().Len())
}

func TestRun_ReportsSummary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := filepath.Join(dir, "test.txt")
	require.NoError(t, os.WriteFile(docPath, []byte("x"), 0600))

	sceneHCL := `
resource "textfile.TextFile" "doc" {
  arguments {
    filename = ` + quote(docPath) + `
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.hcl"), []byte(sceneHCL), 0600))

	testApp, logs := app.SetupAppTest(t, &app.Config{ScenePath: dir, LogFormat: "text"})
	require.NoError(t, testApp.Run(context.Background()))
	require.Contains(t, logs.String(), "Scene applied: 1 resources created, 0 failed.")
}

func TestNewApp_RegistrationLogsGoToAppLogger(t *testing.T) {
	t.Parallel()

	dir := setupScene(t, ``, nil)

	_, logs := app.SetupAppTest(t, &app.Config{ScenePath: dir, LogFormat: "text"})

	// Registration visibility comes from the app's own logger, never
	// from the process-global default logger.
	require.Contains(t, logs.String(), "All resource modules registered.")
}

func TestNewConfig_RequiresScenePath(t *testing.T) {
	t.Parallel()

	_, err := app.NewConfig(app.Config{})
	require.Error(t, err)

	cfg, err := app.NewConfig(app.Config{ScenePath: "scenes"})
	require.NoError(t, err)
	require.Equal(t, "scenes", cfg.ScenePath)
}

// quote renders s as an HCL string literal. Windows-style separators are
// not expected in these tests.
func quote(s string) string {
	return `"` + s + `"`
}
