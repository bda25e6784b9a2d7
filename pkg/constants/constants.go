// Package constants provides shared constants used throughout the novelstat codebase.
// This includes project layout paths, word-count policy, refresh intervals and
// file permissions that should be consistent across the application.
package constants

import "time"

// Project layout constants define where declared and observed state live
// relative to the project root.
const (
	// PlanningDir holds the declared tracking metadata
	PlanningDir = "planning"

	// ProgressFile is the declared progress record inside PlanningDir
	ProgressFile = "plot-progress.json"

	// TrackingFile is the declared per-chapter tracking collection inside PlanningDir
	TrackingFile = "chapter-status.json"

	// ManuscriptDir holds the manuscript tree
	ManuscriptDir = "manuscript"

	// ChaptersDir holds the chapter files inside ManuscriptDir
	ChaptersDir = "chapters"

	// DefaultProjectPath is the project root used when none is given
	DefaultProjectPath = "."
)

// Word-count policy constants. These are defaults; every component that
// uses them accepts an override.
const (
	// CompleteWords is the word count at which a chapter is considered complete
	CompleteWords = 3000

	// InProgressWords is the word count at which a chapter is considered in progress
	InProgressWords = 500

	// WordTolerance is the largest tracked-vs-observed word difference that is not reported
	WordTolerance = 100

	// DefaultTargetWords is the target used when the progress record omits one
	DefaultTargetWords = 100000

	// DefaultChapter is the current chapter used when the progress record omits one
	DefaultChapter = 1

	// DefaultScene is the current scene used when the progress record omits one
	DefaultScene = 1
)

// Display constants
const (
	// ProgressBarWidth is the number of cells in the dashboard progress bar
	ProgressBarWidth = 40

	// RuleWidth is the width of the heavy rules framing the dashboard
	RuleWidth = 60

	// SectionRuleWidth is the width of the light rules under section headings
	SectionRuleWidth = 40

	// TimestampFormat is used for the dashboard footer
	TimestampFormat = "2006-01-02 15:04:05"
)

// Timing constants
const (
	// DefaultRefreshInterval is the default interval between monitor refreshes
	DefaultRefreshInterval = 30 * time.Second

	// MinRefreshInterval is the smallest interval the monitor accepts
	MinRefreshInterval = 1 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// DefaultExtensions lists the manuscript file extensions scanned by default.
var DefaultExtensions = []string{".md"}
