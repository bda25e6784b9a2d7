package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/novelstat/internal/emoji"
	"github.com/agentstation/novelstat/pkg/manuscript"
	"github.com/agentstation/novelstat/pkg/project"
	"github.com/agentstation/novelstat/pkg/report"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "In Progress", StatusLabel("in_progress"))
	assert.Equal(t, "Not Started", StatusLabel("not_started"))
	assert.Equal(t, "Complete", StatusLabel("complete"))
	assert.Equal(t, "-", StatusLabel(""))
}

func TestFormatDiff(t *testing.T) {
	assert.Equal(t, "+1,200", FormatDiff(1200))
	assert.Equal(t, "-45", FormatDiff(-45))
	assert.Equal(t, "0", FormatDiff(0))
}

func TestChaptersToTableData(t *testing.T) {
	rows := []report.ChapterRow{
		{
			Chapter: 1, Tracked: true, TrackedStatus: project.StatusComplete, TrackedWords: 3000,
			File: "chapter-01.md", ObservedStatus: manuscript.StatusComplete, ObservedWords: 3100,
		},
		{
			Chapter: 2, Tracked: true, TrackedStatus: project.StatusInProgress, TrackedWords: 3000,
			File: "chapter-02.md", ObservedStatus: manuscript.StatusComplete, ObservedWords: 3000,
		},
		{Chapter: 3, Tracked: true, TrackedStatus: project.StatusNotStarted},
		{Chapter: 4, File: "chapter-04.md", ObservedStatus: manuscript.StatusMinimal, ObservedWords: 12},
	}

	data := ChaptersToTableData(rows)
	require.Len(t, data.Rows, 4)
	assert.Len(t, data.ColumnAlignment, len(data.Headers))

	assert.Equal(t, []string{emoji.Success, "1", "chapter-01.md", "Complete", "3,100", "Complete", "3,000", "+100"}, data.Rows[0])
	assert.Equal(t, emoji.Warning, data.Rows[1][0], "complete on disk but not tracked as complete")
	assert.Equal(t, []string{emoji.Error, "3", "-", "-", "-", "Not Started", "0", "-"}, data.Rows[2])
	assert.Equal(t, []string{emoji.Warning, "4", "chapter-04.md", "Minimal", "12", "-", "-", "-"}, data.Rows[3])
}
