// Package manuscript scans manuscript chapter files and derives observed
// state from them: chapter number from the file name, whitespace token
// count, display status, size and modification time.
//
// The scan is recomputed on every call and never persisted.
package manuscript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/agentstation/utc"

	"github.com/agentstation/novelstat/pkg/constants"
)

// DisplayStatus is the scan-time status vocabulary shown on the dashboard.
// It is separate from the tracking vocabulary in pkg/project.
type DisplayStatus string

// Display statuses derived from word counts.
const (
	StatusComplete   DisplayStatus = "complete"
	StatusInProgress DisplayStatus = "in_progress"
	StatusMinimal    DisplayStatus = "minimal"
	StatusError      DisplayStatus = "error"
)

// Thresholds are the word counts at which a chapter moves between buckets.
type Thresholds struct {
	Complete   int `json:"complete" yaml:"complete"`
	InProgress int `json:"in_progress" yaml:"in_progress"`
}

// DefaultThresholds returns the standard 3000 / 500 word policy.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Complete:   constants.CompleteWords,
		InProgress: constants.InProgressWords,
	}
}

// Status buckets a word count into the display vocabulary.
func (t Thresholds) Status(words int) DisplayStatus {
	switch {
	case words >= t.Complete:
		return StatusComplete
	case words >= t.InProgress:
		return StatusInProgress
	default:
		return StatusMinimal
	}
}

// ObservedFile is one scanned manuscript file.
type ObservedFile struct {
	Name    string        `json:"name" yaml:"name"`
	Path    string        `json:"path" yaml:"path"`
	Chapter int           `json:"chapter" yaml:"chapter"` // 0 = unparseable, non-participating
	Words   int           `json:"words" yaml:"words"`
	Status  DisplayStatus `json:"status" yaml:"status"`
	Size    int64         `json:"size" yaml:"size"`
	ModTime utc.Time      `json:"modified" yaml:"modified"`
	Err     error         `json:"-" yaml:"-"`
}

// HasChapter reports whether the file participates in chapter checks.
func (f ObservedFile) HasChapter() bool {
	return f.Chapter > 0
}

// Failed reports whether the file could not be read.
func (f ObservedFile) Failed() bool {
	return f.Err != nil
}

// ErrorMessage returns the read error text, or "" for readable files.
func (f ObservedFile) ErrorMessage() string {
	if f.Err == nil {
		return ""
	}
	return f.Err.Error()
}

var chapterPattern = regexp.MustCompile(`chapter-(\d+)`)

// ChapterNumber extracts the number from the first chapter-<digits> token
// in name. It returns 0 when there is none.
func ChapterNumber(name string) int {
	m := chapterPattern.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// CountWords counts whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Summary aggregates a scan.
type Summary struct {
	Files      int   `json:"files" yaml:"files"`
	Errors     int   `json:"errors" yaml:"errors"`
	TotalWords int   `json:"total_words" yaml:"total_words"`
	TotalBytes int64 `json:"total_bytes" yaml:"total_bytes"`
}

// Summarize totals a scan. Unreadable files count toward Files and Errors
// but contribute no words.
func Summarize(files []ObservedFile) Summary {
	var s Summary
	for _, f := range files {
		s.Files++
		s.TotalBytes += f.Size
		if f.Failed() {
			s.Errors++
			continue
		}
		s.TotalWords += f.Words
	}
	return s
}
