package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/novelstat/pkg/constants"
	"github.com/agentstation/novelstat/pkg/logging"
	"github.com/agentstation/novelstat/pkg/manuscript"
	"github.com/agentstation/novelstat/pkg/report"
)

func testConfig(path string) *Config {
	return &Config{
		ProjectPath:     path,
		Interval:        constants.DefaultRefreshInterval,
		CompleteWords:   constants.CompleteWords,
		InProgressWords: constants.InProgressWords,
		WordTolerance:   constants.WordTolerance,
		Extensions:      []string{".md"},
		LogFormat:       "json",
		LogOutput:       "discard",
	}
}

func newTestApp(t *testing.T, config *Config) *App {
	t.Helper()
	isolate(t)
	app, err := New("1.2.3", "abc123", "2026-01-01", "test",
		WithConfig(config),
		WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	return app
}

// run executes the CLI and captures stdout.
func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"planning/plot-progress.json":       `{"novel_title": "Ash Garden", "target_words": 10000}`,
		"planning/chapter-status.json":      `{"chapter_1": {"status": "complete", "words": 3000}}`,
		"manuscript/chapters/chapter-01.md": strings.Repeat("w ", 3000),
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestNew(t *testing.T) {
	app := newTestApp(t, testConfig("."))

	assert.Equal(t, "1.2.3", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2026-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
	assert.Equal(t, constants.DefaultRefreshInterval, app.RefreshInterval())
}

func TestNewRejectsNilConfig(t *testing.T) {
	isolate(t)
	_, err := New("dev", "", "", "", WithConfig(nil))
	require.Error(t, err)
}

func TestReportOptions(t *testing.T) {
	root := writeProject(t)
	config := testConfig(root)
	config.CompleteWords = 5000
	config.Components = []string{"planning/=Plans"}
	app := newTestApp(t, config)

	d, err := report.Build(context.Background(), app.ProjectPaths(), app.ReportOptions()...)
	require.NoError(t, err)
	require.Len(t, d.Files, 1)
	assert.Equal(t, manuscript.StatusInProgress, d.Files[0].Status, "custom threshold applies")
	require.Len(t, d.Components, 1)
	assert.Equal(t, "Plans", d.Components[0].Label)
	assert.True(t, d.Components[0].Present)
}

func TestExecuteRootRunsStatus(t *testing.T) {
	app := newTestApp(t, testConfig("."))
	out, err := run(t, app, "--path", writeProject(t), "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Novel Title: Ash Garden")
	assert.Contains(t, out, "Progress: 30.0%")
	assert.Contains(t, out, "No issues found")
}

func TestExecuteSubcommands(t *testing.T) {
	project := writeProject(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"status", []string{"status", "-p", project, "-o", "text"}, "Current Words: 3,000"},
		{"status sync", []string{"status", "-p", project, "-o", "text", "--sync"}, "Next chapter: 2"},
		{"sync", []string{"sync", "-p", project, "-o", "json"}, `"next_chapter": 2`},
		{"chapters", []string{"chapters", "-p", project, "-o", "text"}, "chapter-01.md"},
		{"markdown", []string{"-p", project, "-o", "markdown"}, "# Novel Status Dashboard"},
		{"version", []string{"version"}, "novelstat 1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, testConfig("."))
			out, err := run(t, app, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestExecuteVerboseVersion(t *testing.T) {
	app := newTestApp(t, testConfig("."))
	out, err := run(t, app, "version", "-v", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:   abc123")
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"-o", "xml"}},
		{"monitor with sync", []string{"--monitor", "--sync"}},
		{"unknown command", []string{"publish"}},
		{"missing config file", []string{"--config", "/nonexistent/novelstat.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, testConfig(t.TempDir()))
			_, err := run(t, app, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestExecuteConfigFlag(t *testing.T) {
	project := writeProject(t)
	app := newTestApp(t, testConfig("."))

	cfg := filepath.Join(t.TempDir(), "novelstat.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("path: "+project+"\nformat: json\n"), 0o644))

	out, err := run(t, app, "--config", cfg, "chapters")
	require.NoError(t, err)
	assert.Contains(t, out, `"file": "chapter-01.md"`)
}
