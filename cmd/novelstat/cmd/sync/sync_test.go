package sync

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/novelstat/internal/cmd/application"
	"github.com/agentstation/novelstat/pkg/project"
)

func run(t *testing.T, root, format string) string {
	t.Helper()
	cmd := NewCommand(&application.Mock{
		ProjectPathsFunc: func() project.Paths { return project.NewPaths(root) },
		OutputFormatFunc: func() string { return format },
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestSyncJSON(t *testing.T) {
	root := t.TempDir()
	for rel, content := range map[string]string{
		"planning/plot-progress.json":       `{"target_words": 50000, "current_chapter": 7}`,
		"planning/chapter-status.json":      `{"chapter_1": {"status": "not_started", "words": 0}}`,
		"manuscript/chapters/chapter-01.md": strings.Repeat("w ", 3000),
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	var got struct {
		Tracking map[string]struct {
			Status string `json:"status"`
			Words  int    `json:"words"`
		} `json:"tracking"`
		NextChapter int `json:"next_chapter"`
		Progress    struct {
			TargetWords    int    `json:"target_words"`
			CurrentChapter int    `json:"current_chapter"`
			LastAction     string `json:"last_action"`
		} `json:"progress"`
	}
	require.NoError(t, json.Unmarshal([]byte(run(t, root, "json")), &got))

	assert.Equal(t, "complete", got.Tracking["chapter_1"].Status)
	assert.Equal(t, 3000, got.Tracking["chapter_1"].Words)
	assert.Equal(t, 2, got.NextChapter)
	assert.Equal(t, 50000, got.Progress.TargetWords)
	assert.Equal(t, 2, got.Progress.CurrentChapter)
	assert.Equal(t, "status_sync", got.Progress.LastAction)
}

func TestSyncNotInitialized(t *testing.T) {
	out := run(t, t.TempDir(), "text")
	assert.Contains(t, out, "Progress tracking not initialized")
}
