// Package table converts report data into rows for table output.
package table

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/novelstat/internal/emoji"
	"github.com/agentstation/novelstat/pkg/report"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

var caser = cases.Title(language.English)

// StatusLabel turns a status value such as "in_progress" into "In Progress".
// An empty status renders as "-".
func StatusLabel(status string) string {
	if status == "" {
		return "-"
	}
	return caser.String(strings.ReplaceAll(status, "_", " "))
}

// ChaptersToTableData converts the per-chapter comparison to table format.
func ChaptersToTableData(rows []report.ChapterRow) Data {
	headers := []string{"", "Chapter", "File", "Observed", "Words", "Tracked", "Tracked Words", "Diff"}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		file, observed, words := "-", "-", "-"
		if r.File != "" {
			file = r.File
			observed = StatusLabel(string(r.ObservedStatus))
			words = report.FormatCount(r.ObservedWords)
		}
		tracked, trackedWords, diff := "-", "-", "-"
		if r.Tracked {
			tracked = StatusLabel(string(r.TrackedStatus))
			trackedWords = report.FormatCount(r.TrackedWords)
		}
		if r.Tracked && r.File != "" {
			diff = FormatDiff(r.Difference())
		}

		out = append(out, []string{
			rowIcon(r),
			strconv.Itoa(r.Chapter),
			file,
			observed,
			words,
			tracked,
			trackedWords,
			diff,
		})
	}

	return Data{
		Headers: headers,
		Rows:    out,
		ColumnAlignment: []Align{
			AlignCenter, AlignRight, AlignLeft, AlignLeft,
			AlignRight, AlignLeft, AlignRight, AlignRight,
		},
	}
}

// FilesToTableData converts scanned files to table format.
func FilesToTableData(d *report.Dashboard) Data {
	rows := make([][]string, 0, len(d.Files))
	for _, f := range d.Files {
		chapter := "-"
		if f.HasChapter() {
			chapter = strconv.Itoa(f.Chapter)
		}
		words := report.FormatCount(f.Words)
		if f.Failed() {
			words = "-"
		}
		rows = append(rows, []string{
			emoji.ForStatus(string(f.Status)),
			f.Name,
			chapter,
			words,
			StatusLabel(string(f.Status)),
		})
	}
	return Data{
		Headers:         []string{"", "File", "Chapter", "Words", "Status"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignCenter, AlignLeft, AlignRight, AlignRight, AlignLeft},
	}
}

// FormatDiff formats a signed word difference.
func FormatDiff(n int) string {
	switch {
	case n > 0:
		return "+" + report.FormatCount(n)
	case n < 0:
		return "-" + report.FormatCount(-n)
	default:
		return "0"
	}
}

func rowIcon(r report.ChapterRow) string {
	switch {
	case r.File == "":
		return emoji.Error
	case !r.Tracked:
		return emoji.Warning
	case r.TrackedStatus == "complete" || r.ObservedStatus != "complete":
		return emoji.ForStatus(string(r.ObservedStatus))
	default:
		return emoji.Warning
	}
}
