// Package emoji provides symbol constants for dashboard output.
// These symbols create a consistent visual language across the text report,
// the chapters table and monitor notices.
package emoji

// Dashboard field symbols label the rows of the status report.
const (
	// Book heads the dashboard and the chapter breakdown.
	Book = "📚"

	// Title labels the novel title.
	Title = "📖"

	// Target labels word targets and milestones.
	Target = "🎯"

	// Words labels the observed word count.
	Words = "📝"

	// Chart labels the progress percentage.
	Chart = "📊"

	// Bar labels the progress bar.
	Bar = "📈"

	// Pin labels the current chapter.
	Pin = "📌"

	// Scene labels the current scene.
	Scene = "🔍"

	// Clipboard labels the declared chapter status.
	Clipboard = "📋"

	// Clock labels timestamps and the last action.
	Clock = "⏰"

	// Folder heads file system sections.
	Folder = "📁"

	// Search heads the findings section.
	Search = "🔎"

	// Idea marks recommendations.
	Idea = "💡"
)

// State symbols describe a chapter, a file or a check.
const (
	// Success marks complete chapters, present components and clean checks.
	Success = "✅"

	// Error marks unreadable files, missing components and failures.
	Error = "❌"

	// Warning marks findings and soft notices.
	Warning = "⚠️"

	// InProgress marks chapters being drafted.
	InProgress = "🔄"

	// NotStarted marks chapters with too few words to count as drafted.
	NotStarted = "⭕"

	// Minimal marks manuscript files below the in-progress threshold.
	Minimal = "📄"

	// Unknown marks unrecognized states.
	Unknown = "❓"

	// Info marks informational notices.
	Info = "ℹ️"
)

// Monitor symbols.
const (
	// Refresh announces the polling loop.
	Refresh = "🔄"

	// Stop tells the user how to end the loop.
	Stop = "⏹️"

	// Wave is printed when monitoring stops.
	Wave = "👋"
)

// ForStatus returns the symbol for a status label from either the tracking
// vocabulary (complete, in_progress, not_started, unknown) or the manuscript
// vocabulary (complete, in_progress, minimal, error).
func ForStatus(status string) string {
	switch status {
	case "complete":
		return Success
	case "in_progress":
		return InProgress
	case "not_started":
		return NotStarted
	case "minimal":
		return Minimal
	case "error":
		return Error
	default:
		return Unknown
	}
}

// Check returns Success when ok is true and Error otherwise.
func Check(ok bool) string {
	if ok {
		return Success
	}
	return Error
}
