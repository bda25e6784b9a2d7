package project_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/novelstat/pkg/errors"
	"github.com/agentstation/novelstat/pkg/project"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadProgress(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plot-progress.json")
		writeFile(t, path, `{
			"novel_title": "The Glass Tide",
			"target_words": 90000,
			"current_chapter": 4,
			"current_scene": 2,
			"chapter_status": "drafting",
			"next_milestone": "act one complete",
			"last_action": "scene_written"
		}`)

		rec, err := project.LoadProgress(path)
		require.NoError(t, err)
		assert.Equal(t, "The Glass Tide", rec.NovelTitle)
		assert.Equal(t, 90000, rec.TargetWords)
		assert.Equal(t, 4, rec.CurrentChapter)
		assert.Equal(t, 2, rec.CurrentScene)
		assert.Equal(t, "drafting", rec.ChapterStatus)
		assert.Equal(t, "act one complete", rec.NextMilestone)
		assert.Equal(t, "scene_written", rec.LastAction)
		assert.Nil(t, rec.LastSync)
	})

	t.Run("missing keys take defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plot-progress.json")
		writeFile(t, path, `{}`)

		rec, err := project.LoadProgress(path)
		require.NoError(t, err)
		assert.Equal(t, project.NewProgressRecord(), rec)
		assert.Equal(t, "Untitled", rec.NovelTitle)
		assert.Equal(t, 100000, rec.TargetWords)
		assert.Equal(t, 1, rec.CurrentChapter)
		assert.Equal(t, "unknown", rec.LastAction)
	})

	t.Run("explicit zero target is kept", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plot-progress.json")
		writeFile(t, path, `{"target_words": 0}`)

		rec, err := project.LoadProgress(path)
		require.NoError(t, err)
		assert.Equal(t, 0, rec.TargetWords)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		_, err := project.LoadProgress(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("malformed file is a parse error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plot-progress.json")
		writeFile(t, path, `{"novel_title": `)

		_, err := project.LoadProgress(path)
		require.Error(t, err)
		var parseErr *errors.ParseError
		assert.True(t, errors.As(err, &parseErr))
		assert.False(t, errors.IsNotFound(err))
	})
}

func TestLoadProgressLastSync(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantNil bool
		invalid bool
	}{
		{
			name:  "python isoformat with microseconds",
			value: `"2025-01-15T10:30:00.123456"`,
			want:  time.Date(2025, 1, 15, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "python isoformat without fraction",
			value: `"2025-01-15T10:30:00"`,
			want:  time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			value: `"2025-01-15T12:30:00+02:00"`,
			want:  time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "space separated",
			value: `"2025-01-15 10:30:00"`,
			want:  time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{name: "null", value: `null`, wantNil: true},
		{name: "empty string", value: `""`, wantNil: true},
		{name: "not a timestamp", value: `"yesterday"`, wantNil: true, invalid: true},
		{name: "not a string", value: `42`, wantNil: true, invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "plot-progress.json")
			writeFile(t, path, `{"novel_title": "Ash Garden", "last_sync": `+tt.value+`}`)

			rec, err := project.LoadProgress(path)
			require.NoError(t, err)
			assert.Equal(t, "Ash Garden", rec.NovelTitle)

			raw, invalid := rec.InvalidLastSync()
			assert.Equal(t, tt.invalid, invalid)
			if tt.invalid {
				assert.Equal(t, tt.value, raw)
			}
			if tt.wantNil {
				assert.Nil(t, rec.LastSync)
				return
			}
			require.NotNil(t, rec.LastSync)
			assert.True(t, rec.LastSync.Time.Equal(tt.want), "got %s", rec.LastSync.Time)
		})
	}
}

func TestLoadTracking(t *testing.T) {
	t.Run("entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chapter-status.json")
		writeFile(t, path, `{
			"chapter_2": {"status": "in_progress", "words": 1200},
			"chapter_1": {"status": "complete", "words": 3400},
			"chapter_10": {"status": "weird", "words": 5},
			"notes": {"status": "complete"}
		}`)

		tracking, err := project.LoadTracking(path)
		require.NoError(t, err)
		require.Len(t, tracking, 4)

		chapters := tracking.Chapters()
		keys := make([]string, len(chapters))
		for i, c := range chapters {
			keys[i] = c.Key
		}
		assert.Equal(t, []string{"chapter_1", "chapter_2", "chapter_10", "notes"}, keys)
		assert.Equal(t, project.StatusUnknown, chapters[2].Status)
		assert.Equal(t, 0, chapters[3].Number)
		assert.Equal(t, 4605, tracking.TotalWords())

		entry, ok := tracking.Lookup(1)
		require.True(t, ok)
		assert.Equal(t, project.StatusComplete, entry.Status)
		assert.Equal(t, 3400, entry.Words)

		_, ok = tracking.Lookup(7)
		assert.False(t, ok)
	})

	t.Run("zero padded key", func(t *testing.T) {
		tracking := project.Tracking{"chapter_03": {Status: project.StatusComplete, Words: 10}}
		entry, ok := tracking.Lookup(3)
		require.True(t, ok)
		assert.Equal(t, 10, entry.Words)
	})

	t.Run("competing padded keys resolve to the lowest key", func(t *testing.T) {
		tracking := project.Tracking{
			"chapter_03":  {Status: project.StatusInProgress, Words: 100},
			"chapter_003": {Status: project.StatusComplete, Words: 9000},
		}
		for i := 0; i < 200; i++ {
			entry, ok := tracking.Lookup(3)
			require.True(t, ok)
			require.Equal(t, 9000, entry.Words, "lookup %d", i)
		}
		assert.Equal(t, "chapter_003", tracking.Chapters()[0].Key)

		tracking["chapter_3"] = project.ChapterTrackingEntry{Status: project.StatusNotStarted, Words: 1}
		entry, _ := tracking.Lookup(3)
		assert.Equal(t, 1, entry.Words, "canonical key wins")
	})

	t.Run("missing file is empty", func(t *testing.T) {
		tracking, err := project.LoadTracking(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)
		assert.Empty(t, tracking)
	})

	t.Run("malformed file is a parse error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chapter-status.json")
		writeFile(t, path, `["chapter_1"]`)

		_, err := project.LoadTracking(path)
		var parseErr *errors.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})
}

func TestChapterKey(t *testing.T) {
	assert.Equal(t, "chapter_3", project.ChapterKey(3))

	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"chapter_3", 3, true},
		{"chapter_012", 12, true},
		{"chapter_", 0, false},
		{"chapter_x", 0, false},
		{"chapter_0", 0, false},
		{"prologue", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := project.ParseChapterKey(tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, project.StatusComplete, project.ParseStatus("complete"))
	assert.Equal(t, project.StatusInProgress, project.ParseStatus(" In_Progress "))
	assert.Equal(t, project.StatusNotStarted, project.ParseStatus("not_started"))
	assert.Equal(t, project.StatusUnknown, project.ParseStatus("drafted"))
}

func TestPaths(t *testing.T) {
	p := project.NewPaths("")
	assert.Equal(t, ".", p.Root)

	root := t.TempDir()
	p = project.NewPaths(root)
	assert.Equal(t, filepath.Join(root, "planning", "plot-progress.json"), p.Progress())
	assert.Equal(t, filepath.Join(root, "planning", "chapter-status.json"), p.Tracking())
	assert.Equal(t, filepath.Join(root, "manuscript", "chapters"), p.Chapters())

	assert.False(t, p.Exists("planning/"))
	require.NoError(t, os.MkdirAll(p.Planning(), 0o755))
	assert.True(t, p.Exists("planning/"))
}
