// Package report assembles the project status dashboard. Build loads the
// declared state, scans the manuscript, reconciles the two and collects
// everything a renderer needs; WriteText and WriteMarkdown render it.
package report

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/agentstation/utc"

	"github.com/agentstation/novelstat/pkg/correction"
	"github.com/agentstation/novelstat/pkg/errors"
	"github.com/agentstation/novelstat/pkg/logging"
	"github.com/agentstation/novelstat/pkg/manuscript"
	"github.com/agentstation/novelstat/pkg/project"
	"github.com/agentstation/novelstat/pkg/reconciler"
)

// NoticeLevel grades a Notice.
type NoticeLevel string

// Notice levels.
const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// NotInitializedMessage is the notice shown when there is no progress file.
const NotInitializedMessage = "Progress tracking not initialized"

// Notice is a recovered condition surfaced inline in the report.
type Notice struct {
	Level   NoticeLevel `json:"level" yaml:"level"`
	Message string      `json:"message" yaml:"message"`
}

// TrackedRow is one declared tracking entry.
type TrackedRow struct {
	Key    string         `json:"key" yaml:"key"`
	Status project.Status `json:"status" yaml:"status"`
	Words  int            `json:"words" yaml:"words"`
}

// ChapterRow compares the declared and observed state of one chapter.
// Either side may be absent.
type ChapterRow struct {
	Chapter        int                      `json:"chapter" yaml:"chapter"`
	Tracked        bool                     `json:"tracked" yaml:"tracked"`
	TrackedStatus  project.Status           `json:"tracked_status,omitempty" yaml:"tracked_status,omitempty"`
	TrackedWords   int                      `json:"tracked_words" yaml:"tracked_words"`
	File           string                   `json:"file,omitempty" yaml:"file,omitempty"`
	ObservedStatus manuscript.DisplayStatus `json:"observed_status,omitempty" yaml:"observed_status,omitempty"`
	ObservedWords  int                      `json:"observed_words" yaml:"observed_words"`
}

// Difference is observed minus tracked words.
func (r ChapterRow) Difference() int {
	return r.ObservedWords - r.TrackedWords
}

// Verdict summarizes tracked against actual chapters.
type Verdict struct {
	TrackedChapters int  `json:"tracked_chapters" yaml:"tracked_chapters"`
	ActualChapters  int  `json:"actual_chapters" yaml:"actual_chapters"`
	TrackedWords    int  `json:"tracked_words" yaml:"tracked_words"`
	ActualWords     int  `json:"actual_words" yaml:"actual_words"`
	Findings        int  `json:"findings" yaml:"findings"`
	InSync          bool `json:"in_sync" yaml:"in_sync"`
}

// Message describes the verdict in one line.
func (v Verdict) Message() string {
	switch {
	case v.InSync:
		return fmt.Sprintf("Tracking matches the manuscript (%d chapters)", v.ActualChapters)
	case v.TrackedChapters != v.ActualChapters:
		return fmt.Sprintf("Tracking lists %d chapters but the manuscript has %d", v.TrackedChapters, v.ActualChapters)
	default:
		return fmt.Sprintf("Tracking and manuscript disagree (%d findings)", v.Findings)
	}
}

// Dashboard is one assembled status report. When Initialized is false only
// Project, Notices, Components and GeneratedAt are meaningful.
type Dashboard struct {
	Project         string                    `json:"project" yaml:"project"`
	Initialized     bool                      `json:"initialized" yaml:"initialized"`
	Notices         []Notice                  `json:"notices" yaml:"notices"`
	Progress        *project.ProgressRecord   `json:"progress,omitempty" yaml:"progress,omitempty"`
	TargetWords     int                       `json:"target_words" yaml:"target_words"`
	ActualWords     int                       `json:"actual_words" yaml:"actual_words"`
	Percentage      float64                   `json:"percentage" yaml:"percentage"`
	Findings        []reconciler.Finding      `json:"findings" yaml:"findings"`
	Files           []manuscript.ObservedFile `json:"files" yaml:"files"`
	Summary         manuscript.Summary        `json:"summary" yaml:"summary"`
	Tracked         []TrackedRow              `json:"tracked" yaml:"tracked"`
	Chapters        []ChapterRow              `json:"chapters" yaml:"chapters"`
	Verdict         Verdict                   `json:"verdict" yaml:"verdict"`
	Components      []Component               `json:"components" yaml:"components"`
	Recommendations []string                  `json:"recommendations" yaml:"recommendations"`
	GeneratedAt     utc.Time                  `json:"generated_at" yaml:"generated_at"`

	opts *options
}

// Build assembles the dashboard for the project at paths.
//
// A missing progress file is not an error: the dashboard comes back with
// Initialized false and a single notice. A missing tracking file or
// manuscript directory adds a notice and the report continues. Malformed
// declared files are returned as errors.
func Build(ctx context.Context, paths project.Paths, opts ...Option) (*Dashboard, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.logger != nil {
		ctx = logging.WithLogger(ctx, o.logger)
	}
	ctx = logging.WithProject(ctx, paths.Root)
	logger := logging.FromContext(ctx)

	d := &Dashboard{
		Project:         paths.Root,
		Notices:         []Notice{},
		Findings:        []reconciler.Finding{},
		Files:           []manuscript.ObservedFile{},
		Tracked:         []TrackedRow{},
		Chapters:        []ChapterRow{},
		Recommendations: []string{},
		Components:      checkComponents(paths, o.components),
		GeneratedAt:     o.now(),
		opts:            o,
	}

	progress, err := project.LoadProgress(paths.Progress())
	if err != nil {
		if errors.IsNotFound(err) {
			logger.Debug().Str("file", paths.Progress()).Msg("Progress file not found")
			d.notice(NoticeError, NotInitializedMessage)
			return d, nil
		}
		return nil, err
	}
	d.Initialized = true
	d.Progress = progress
	if raw, ok := progress.InvalidLastSync(); ok {
		d.notice(NoticeWarning, fmt.Sprintf("Ignoring unreadable last_sync %s in %s", raw, paths.Progress()))
	}
	d.TargetWords = progress.TargetWords

	if !exists(paths.Tracking()) {
		d.notice(NoticeWarning, fmt.Sprintf("No chapter tracking file at %s; treating it as empty", paths.Tracking()))
	}
	tracking, err := project.LoadTracking(paths.Tracking())
	if err != nil {
		return nil, err
	}

	if !exists(paths.Chapters()) {
		d.notice(NoticeWarning, fmt.Sprintf("No manuscript directory at %s", paths.Chapters()))
	}
	files, err := manuscript.Scan(logging.WithOperation(ctx, "scan"), paths.Chapters(),
		manuscript.WithThresholds(o.thresholds),
		manuscript.WithExtensions(o.extensions...),
	)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.Failed() {
			d.notice(NoticeWarning, fmt.Sprintf("Could not read %s: %s", f.Name, f.ErrorMessage()))
		}
	}

	result, err := reconciler.Reconcile(logging.WithOperation(ctx, "reconcile"), tracking, files,
		reconciler.WithTolerance(o.tolerance),
		reconciler.WithThresholds(o.thresholds),
	)
	if err != nil {
		return nil, err
	}

	d.Files = files
	d.Summary = manuscript.Summarize(files)
	d.Findings = result.Findings
	d.ActualWords = result.TotalWords
	d.Percentage = Percentage(d.ActualWords, d.TargetWords)
	d.Tracked = trackedRows(tracking)
	d.Chapters = compareChapters(tracking, files)
	d.Verdict = Verdict{
		TrackedChapters: len(tracking),
		ActualChapters:  len(result.Chapters),
		TrackedWords:    tracking.TotalWords(),
		ActualWords:     result.TotalWords,
		Findings:        len(result.Findings),
		InSync:          len(tracking) == len(result.Chapters) && !result.HasFindings(),
	}
	d.Recommendations = recommend(d, result)

	logger.Debug().
		Int("files", len(files)).
		Int("words", d.ActualWords).
		Int("findings", len(d.Findings)).
		Msg("Built dashboard")
	return d, nil
}

// Correction derives the correction payload from the scanned files. It
// returns nil when the project is not initialized.
func (d *Dashboard) Correction() *correction.Correction {
	if !d.Initialized {
		return nil
	}
	o := d.opts
	if o == nil {
		o = defaultOptions()
	}
	return correction.Generate(d.Files, d.Progress,
		correction.WithThresholds(o.thresholds),
		correction.WithClock(o.now),
	)
}

func (d *Dashboard) notice(level NoticeLevel, msg string) {
	d.Notices = append(d.Notices, Notice{Level: level, Message: msg})
}

func trackedRows(tracking project.Tracking) []TrackedRow {
	chapters := tracking.Chapters()
	rows := make([]TrackedRow, 0, len(chapters))
	for _, c := range chapters {
		rows = append(rows, TrackedRow{Key: c.Key, Status: c.Status, Words: c.Words})
	}
	return rows
}

// compareChapters pairs every numbered tracking entry with the file that
// owns the same chapter. The first file in (chapter, name) order owns it.
func compareChapters(tracking project.Tracking, files []manuscript.ObservedFile) []ChapterRow {
	rows := make(map[int]*ChapterRow)
	row := func(n int) *ChapterRow {
		r, ok := rows[n]
		if !ok {
			r = &ChapterRow{Chapter: n}
			rows[n] = r
		}
		return r
	}

	for _, c := range tracking.Chapters() {
		if c.Number == 0 {
			continue
		}
		r := row(c.Number)
		if r.Tracked {
			continue
		}
		r.Tracked = true
		r.TrackedStatus = c.Status
		r.TrackedWords = c.Words
	}
	for _, f := range files {
		if !f.HasChapter() {
			continue
		}
		r := row(f.Chapter)
		if r.File != "" {
			continue
		}
		r.File = f.Name
		r.ObservedStatus = f.Status
		r.ObservedWords = f.Words
	}

	out := make([]ChapterRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Chapter < out[j].Chapter })
	return out
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
