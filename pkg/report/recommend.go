package report

import (
	"fmt"

	"github.com/agentstation/novelstat/pkg/manuscript"
	"github.com/agentstation/novelstat/pkg/reconciler"
)

// recommend derives next steps from the findings, the overall progress and
// the declared current chapter. Findings come first because they make the
// rest of the report unreliable.
func recommend(d *Dashboard, result *reconciler.Result) []string {
	recs := []string{}

	for _, f := range result.ByKind(reconciler.KindDuplicateChapter) {
		recs = append(recs, fmt.Sprintf("Renumber or merge the files sharing chapter %d", f.Chapter))
	}
	for _, f := range result.ByKind(reconciler.KindMissingChapter) {
		recs = append(recs, fmt.Sprintf("Write or renumber the missing chapter %d", f.Chapter))
	}
	counts := result.Counts()
	if counts[reconciler.KindWordCountMismatch]+counts[reconciler.KindStatusMismatch] > 0 {
		recs = append(recs, "Tracking is stale: run `novelstat sync` and copy the correction over the planning files")
	}
	if d.Summary.Errors > 0 {
		recs = append(recs, fmt.Sprintf("Fix %d unreadable manuscript file(s)", d.Summary.Errors))
	}

	switch {
	case len(d.Files) == 0:
		recs = append(recs, "Start chapter 1 in manuscript/chapters/")
	case d.TargetWords > 0 && d.ActualWords >= d.TargetWords:
		recs = append(recs, "Target word count reached; begin revision")
	default:
		recs = append(recs, currentChapterStep(d))
	}
	return recs
}

func currentChapterStep(d *Dashboard) string {
	current := d.Progress.CurrentChapter
	for _, f := range d.Files {
		if f.Chapter != current || f.Failed() {
			continue
		}
		if f.Status == manuscript.StatusComplete {
			return fmt.Sprintf("Chapter %d looks complete; move on to chapter %d", current, current+1)
		}
		return fmt.Sprintf("Continue chapter %d, scene %d (%d words so far)", current, d.Progress.CurrentScene, f.Words)
	}
	return fmt.Sprintf("Begin chapter %d", current)
}
