// Package reconciler compares declared chapter tracking against the observed
// manuscript files and reports discrepancies.
//
// A pass runs three checks in order: duplicate chapter numbers, gaps in the
// chapter sequence, and tracked-vs-observed mismatches. Files whose chapter
// number could not be parsed (0) never take part in any check.
package reconciler

import (
	"context"
	"sort"

	"github.com/agentstation/novelstat/pkg/logging"
	"github.com/agentstation/novelstat/pkg/manuscript"
	"github.com/agentstation/novelstat/pkg/project"
)

// Reconciler compares declared state against observed files.
type Reconciler interface {
	Reconcile(ctx context.Context, tracking project.Tracking, files []manuscript.ObservedFile) *Result
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	opts *options
}

// New creates a Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	o, err := defaultOptions().apply(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{opts: o}, nil
}

// Reconcile runs one pass. It never fails: every discrepancy becomes a
// Finding. The result depends only on its inputs.
func (r *reconciler) Reconcile(ctx context.Context, tracking project.Tracking, files []manuscript.ObservedFile) *Result {
	logger := r.opts.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	ordered := sortedFiles(files)
	owners := chapterOwners(ordered)

	result := &Result{
		Findings: []Finding{},
		Chapters: make([]int, 0, len(owners)),
	}
	for chapter := range owners {
		result.Chapters = append(result.Chapters, chapter)
	}
	sort.Ints(result.Chapters)
	if n := len(result.Chapters); n > 0 {
		result.MaxChapter = result.Chapters[n-1]
	}

	result.Findings = append(result.Findings, duplicates(ordered, owners)...)
	result.Findings = append(result.Findings, gaps(owners, result.MaxChapter)...)
	result.Findings = append(result.Findings, r.mismatches(ordered, tracking)...)

	for _, f := range ordered {
		if !f.Failed() {
			result.TotalWords += f.Words
		}
	}

	logger.Debug().
		Int("files", len(files)).
		Int("findings", len(result.Findings)).
		Int("total_words", result.TotalWords).
		Msg("Reconciled manuscript against tracking")

	return result
}

// sortedFiles copies files into ascending (chapter, name) order so that
// "first file wins" does not depend on directory listing order.
func sortedFiles(files []manuscript.ObservedFile) []manuscript.ObservedFile {
	ordered := make([]manuscript.ObservedFile, len(files))
	copy(ordered, files)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Chapter != ordered[j].Chapter {
			return ordered[i].Chapter < ordered[j].Chapter
		}
		return ordered[i].Name < ordered[j].Name
	})
	return ordered
}

// chapterOwners maps each valid chapter number to the first file claiming it.
func chapterOwners(ordered []manuscript.ObservedFile) map[int]string {
	owners := make(map[int]string)
	for _, f := range ordered {
		if !f.HasChapter() {
			continue
		}
		if _, taken := owners[f.Chapter]; !taken {
			owners[f.Chapter] = f.Name
		}
	}
	return owners
}

func duplicates(ordered []manuscript.ObservedFile, owners map[int]string) []Finding {
	var out []Finding
	for _, f := range ordered {
		if !f.HasChapter() {
			continue
		}
		if owner := owners[f.Chapter]; owner != f.Name {
			out = append(out, duplicateFinding(f.Chapter, owner, f.Name))
		}
	}
	return out
}

// gaps reports every chapter in 1..max-1 with no file. The maximum itself is
// present by construction.
func gaps(owners map[int]string, maxChapter int) []Finding {
	var out []Finding
	for n := 1; n < maxChapter; n++ {
		if _, ok := owners[n]; !ok {
			out = append(out, missingFinding(n))
		}
	}
	return out
}

// mismatches compares each readable, numbered file with its tracking entry.
// Only the "looks complete but not marked complete" status direction is
// reported.
func (r *reconciler) mismatches(ordered []manuscript.ObservedFile, tracking project.Tracking) []Finding {
	var out []Finding
	for _, f := range ordered {
		if !f.HasChapter() || f.Failed() {
			continue
		}
		entry, ok := tracking.Lookup(f.Chapter)
		if !ok {
			continue
		}

		if abs(entry.Words-f.Words) > r.opts.tolerance {
			out = append(out, wordCountFinding(f.Chapter, f.Name, entry.Words, f.Words))
		}

		observed := r.opts.thresholds.Status(f.Words)
		if string(entry.Status) != string(observed) &&
			f.Words >= r.opts.thresholds.Complete &&
			entry.Status != project.StatusComplete {
			out = append(out, statusFinding(f.Chapter, f.Name, entry.Status.String(), string(observed), f.Words))
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Reconcile runs a pass with a default Reconciler.
func Reconcile(ctx context.Context, tracking project.Tracking, files []manuscript.ObservedFile, opts ...Option) (*Result, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Reconcile(ctx, tracking, files), nil
}
