package project

import "strings"

// Status is the tracking status recorded for a chapter in the declared
// tracking collection.
type Status string

// Tracking statuses understood by the declared chapter-status file.
const (
	StatusComplete   Status = "complete"
	StatusInProgress Status = "in_progress"
	StatusNotStarted Status = "not_started"
	StatusUnknown    Status = "unknown"
)

// ParseStatus converts a string to a Status.
// Returns StatusUnknown if the string is not recognized.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusComplete:
		return StatusComplete
	case StatusInProgress:
		return StatusInProgress
	case StatusNotStarted:
		return StatusNotStarted
	default:
		return StatusUnknown
	}
}

// String returns the status as written in the tracking file.
func (s Status) String() string {
	return string(s)
}

// UnmarshalText lets unknown status strings decode to StatusUnknown instead
// of failing the whole file.
func (s *Status) UnmarshalText(text []byte) error {
	*s = ParseStatus(string(text))
	return nil
}
