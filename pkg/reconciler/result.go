package reconciler

// Result is the outcome of one reconciliation pass.
type Result struct {
	// Findings in emission order: duplicates, gaps, then mismatches.
	Findings []Finding `json:"findings" yaml:"findings"`

	// TotalWords sums the words of every readable observed file.
	TotalWords int `json:"total_words" yaml:"total_words"`

	// Chapters lists the distinct valid chapter numbers present, ascending.
	Chapters []int `json:"chapters" yaml:"chapters"`

	// MaxChapter is the largest valid chapter number present, or 0.
	MaxChapter int `json:"max_chapter" yaml:"max_chapter"`
}

// HasFindings reports whether any discrepancy was found.
func (r *Result) HasFindings() bool {
	return len(r.Findings) > 0
}

// ByKind returns the findings of one kind, preserving order.
func (r *Result) ByKind(kind Kind) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

// Counts returns the number of findings per kind.
func (r *Result) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, f := range r.Findings {
		counts[f.Kind]++
	}
	return counts
}
