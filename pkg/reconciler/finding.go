package reconciler

import "fmt"

// Kind classifies a Finding.
type Kind string

// Finding kinds, in the order the reconciler emits them.
const (
	KindDuplicateChapter  Kind = "duplicate_chapter"
	KindMissingChapter    Kind = "missing_chapter"
	KindWordCountMismatch Kind = "word_count_mismatch"
	KindStatusMismatch    Kind = "status_mismatch"
)

// Title returns a short human label for the kind.
func (k Kind) Title() string {
	switch k {
	case KindDuplicateChapter:
		return "Duplicate chapter number"
	case KindMissingChapter:
		return "Missing chapter"
	case KindWordCountMismatch:
		return "Word count mismatch"
	case KindStatusMismatch:
		return "Status mismatch"
	default:
		return string(k)
	}
}

// Finding is one discrepancy between declared and observed state.
type Finding struct {
	Kind     Kind     `json:"kind" yaml:"kind"`
	Chapter  int      `json:"chapter" yaml:"chapter"`
	Files    []string `json:"files,omitempty" yaml:"files,omitempty"`
	Tracked  string   `json:"tracked,omitempty" yaml:"tracked,omitempty"`
	Observed string   `json:"observed,omitempty" yaml:"observed,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

// String returns the finding message.
func (f Finding) String() string {
	return f.Message
}

func duplicateFinding(chapter int, first, dup string) Finding {
	return Finding{
		Kind:    KindDuplicateChapter,
		Chapter: chapter,
		Files:   []string{first, dup},
		Message: fmt.Sprintf("Duplicate chapter %d: %s and %s", chapter, first, dup),
	}
}

func missingFinding(chapter int) Finding {
	return Finding{
		Kind:    KindMissingChapter,
		Chapter: chapter,
		Message: fmt.Sprintf("Missing chapter %d in sequence", chapter),
	}
}

func wordCountFinding(chapter int, file string, tracked, observed int) Finding {
	return Finding{
		Kind:     KindWordCountMismatch,
		Chapter:  chapter,
		Files:    []string{file},
		Tracked:  fmt.Sprint(tracked),
		Observed: fmt.Sprint(observed),
		Message: fmt.Sprintf("Chapter %d word count mismatch: tracked %d, actual %d (%s)",
			chapter, tracked, observed, file),
	}
}

func statusFinding(chapter int, file, tracked, observed string, words int) Finding {
	return Finding{
		Kind:     KindStatusMismatch,
		Chapter:  chapter,
		Files:    []string{file},
		Tracked:  tracked,
		Observed: observed,
		Message: fmt.Sprintf("Chapter %d status mismatch: tracked %q but %s has %d words (%s)",
			chapter, tracked, file, words, observed),
	}
}
