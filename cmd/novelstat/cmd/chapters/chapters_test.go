package chapters

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/agentstation/novelstat/internal/cmd/application"
	"github.com/agentstation/novelstat/pkg/project"
)

func setup(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range map[string]string{
		"planning/plot-progress.json":       `{}`,
		"planning/chapter-status.json":      `{"chapter_1": {"status": "complete", "words": 3000}, "chapter_2": {"status": "in_progress", "words": 900}}`,
		"manuscript/chapters/chapter-01.md": strings.Repeat("w ", 3050),
		"manuscript/chapters/chapter-03.md": strings.Repeat("w ", 20),
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func run(t *testing.T, root, format string, args ...string) string {
	t.Helper()
	cmd := NewCommand(&application.Mock{
		ProjectPathsFunc: func() project.Paths { return project.NewPaths(root) },
		OutputFormatFunc: func() string { return format },
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestChaptersTable(t *testing.T) {
	out := run(t, setup(t), "text")
	assert.Contains(t, out, "chapter-01.md")
	assert.Contains(t, out, "chapter-03.md")
	assert.Contains(t, out, "+50")
	assert.Contains(t, out, "In Progress")
}

func TestChaptersYAML(t *testing.T) {
	var rows []struct {
		Chapter      int    `yaml:"chapter"`
		Tracked      bool   `yaml:"tracked"`
		File         string `yaml:"file"`
		TrackedWords int    `yaml:"tracked_words"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(run(t, setup(t), "yaml")), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, 1, rows[0].Chapter)
	assert.Equal(t, "chapter-01.md", rows[0].File)
	assert.True(t, rows[1].Tracked)
	assert.Empty(t, rows[1].File)
	assert.False(t, rows[2].Tracked)
}

func TestChaptersFiles(t *testing.T) {
	out := run(t, setup(t), "text", "--files")
	assert.Contains(t, out, "chapter-03.md")
	assert.Contains(t, out, "Minimal")
}

func TestChaptersNotInitialized(t *testing.T) {
	out := run(t, t.TempDir(), "text")
	assert.Contains(t, out, "Progress tracking not initialized")
}
