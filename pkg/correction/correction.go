// Package correction recomputes declared tracking state from observed
// manuscript files. The output is a payload for an operator to copy over
// the declared files by hand; nothing here writes to them.
package correction

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/agentstation/utc"

	"github.com/agentstation/novelstat/pkg/manuscript"
	"github.com/agentstation/novelstat/pkg/project"
)

// LastAction is recorded in the corrected progress record.
const LastAction = "status_sync"

// Correction is a recomputed declared state.
type Correction struct {
	Tracking          project.Tracking        `json:"tracking" yaml:"tracking"`
	Progress          *project.ProgressRecord `json:"progress" yaml:"progress"`
	NextChapter       int                     `json:"next_chapter" yaml:"next_chapter"`
	CompletedChapters []int                   `json:"completed_chapters" yaml:"completed_chapters"`
	TotalWords        int                     `json:"total_words" yaml:"total_words"`
}

type options struct {
	thresholds manuscript.Thresholds
	now        func() utc.Time
}

// Option configures Generate.
type Option func(*options)

// WithThresholds overrides the completion thresholds.
func WithThresholds(t manuscript.Thresholds) Option {
	return func(o *options) {
		o.thresholds = t
	}
}

// WithClock fixes the timestamp recorded as last sync.
func WithClock(now func() utc.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// TrackingStatus buckets a word count into the tracking vocabulary. Unlike
// the dashboard, short chapters are "not_started" rather than "minimal"
// because that is what the tracking file schema expects.
func TrackingStatus(t manuscript.Thresholds, words int) project.Status {
	switch {
	case words >= t.Complete:
		return project.StatusComplete
	case words >= t.InProgress:
		return project.StatusInProgress
	default:
		return project.StatusNotStarted
	}
}

// Generate derives a Correction from files alone. Declared tracking is
// ignored. From declared only the title, target and milestone are carried
// over, since they are not derivable from the manuscript; declared may be
// nil.
//
// When several files claim a chapter the first in name order is used, the
// same file the reconciler treats as the chapter's owner. Unreadable files
// are recorded as "unknown".
func Generate(files []manuscript.ObservedFile, declared *project.ProgressRecord, opts ...Option) *Correction {
	o := &options{
		thresholds: manuscript.DefaultThresholds(),
		now:        utc.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	ordered := make([]manuscript.ObservedFile, len(files))
	copy(ordered, files)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Chapter != ordered[j].Chapter {
			return ordered[i].Chapter < ordered[j].Chapter
		}
		return ordered[i].Name < ordered[j].Name
	})

	c := &Correction{
		Tracking:          project.Tracking{},
		CompletedChapters: []int{},
	}

	statuses := make(map[int]project.Status)
	maxChapter := 0
	for _, f := range ordered {
		if !f.Failed() {
			c.TotalWords += f.Words
		}
		if !f.HasChapter() {
			continue
		}
		if _, seen := statuses[f.Chapter]; seen {
			continue
		}

		status := TrackingStatus(o.thresholds, f.Words)
		if f.Failed() {
			status = project.StatusUnknown
		}
		statuses[f.Chapter] = status
		c.Tracking[project.ChapterKey(f.Chapter)] = project.ChapterTrackingEntry{
			Status: status,
			Words:  f.Words,
		}
		if f.Chapter > maxChapter {
			maxChapter = f.Chapter
		}
	}

	c.NextChapter = maxChapter + 1
	for n := 1; n <= maxChapter; n++ {
		if statuses[n] != project.StatusComplete {
			c.NextChapter = n
			break
		}
	}

	for n := 1; n <= maxChapter; n++ {
		if statuses[n] == project.StatusComplete {
			c.CompletedChapters = append(c.CompletedChapters, n)
		}
	}

	c.Progress = c.progress(declared, statuses, o.now())
	return c
}

func (c *Correction) progress(declared *project.ProgressRecord, statuses map[int]project.Status, now utc.Time) *project.ProgressRecord {
	rec := project.NewProgressRecord()
	if declared != nil {
		rec.NovelTitle = declared.NovelTitle
		rec.TargetWords = declared.TargetWords
		rec.NextMilestone = declared.NextMilestone
	}

	rec.CurrentChapter = c.NextChapter
	rec.CurrentScene = 1
	rec.ChapterStatus = string(project.StatusNotStarted)
	if status, ok := statuses[c.NextChapter]; ok {
		rec.ChapterStatus = string(status)
	}
	rec.LastAction = LastAction
	rec.LastSync = &now
	rec.CompletedChapters = append([]int{}, c.CompletedChapters...)
	rec.TotalWords = c.TotalWords
	return rec
}

// Write renders the correction report: both payloads as indented JSON with
// the files they are meant to replace.
func (c *Correction) Write(w io.Writer, paths project.Paths) error {
	tracking, err := json.MarshalIndent(c.Tracking, "", "  ")
	if err != nil {
		return err
	}
	progress, err := json.MarshalIndent(c.Progress, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, `CORRECTION REPORT
Derived from manuscript files only. Nothing has been written.

Next chapter: %d
Completed chapters: %s
Total words: %d

Replace %s with:
%s

Replace %s with:
%s
`,
		c.NextChapter,
		formatChapters(c.CompletedChapters),
		c.TotalWords,
		paths.Tracking(), tracking,
		paths.Progress(), progress,
	)
	return err
}

func formatChapters(chapters []int) string {
	if len(chapters) == 0 {
		return "none"
	}
	out := ""
	for i, n := range chapters {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(n)
	}
	return out
}
