// Package project models the declared state of a novel project: the progress
// record and the per-chapter tracking collection kept under planning/, plus
// the on-disk layout that locates them.
package project

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/novelstat/pkg/constants"
	"github.com/agentstation/novelstat/pkg/errors"
)

// ProgressRecord is the declared progress metadata maintained by external
// tooling. Missing keys take the documented defaults after Load.
type ProgressRecord struct {
	NovelTitle        string    `json:"novel_title" yaml:"novel_title"`
	TargetWords       int       `json:"target_words" yaml:"target_words"`
	CurrentChapter    int       `json:"current_chapter" yaml:"current_chapter"`
	CurrentScene      int       `json:"current_scene" yaml:"current_scene"`
	ChapterStatus     string    `json:"chapter_status" yaml:"chapter_status"`
	NextMilestone     string    `json:"next_milestone" yaml:"next_milestone"`
	LastAction        string    `json:"last_action" yaml:"last_action"`
	LastSync          *utc.Time `json:"last_sync,omitempty" yaml:"last_sync,omitempty"`
	CompletedChapters []int     `json:"completed_chapters,omitempty" yaml:"completed_chapters,omitempty"`
	TotalWords        int       `json:"total_words,omitempty" yaml:"total_words,omitempty"`

	invalidSync string
}

// Default labels for a progress record.
const (
	DefaultTitle = "Untitled"
	UnknownLabel = "unknown"
)

// NewProgressRecord returns a record holding only defaults.
func NewProgressRecord() *ProgressRecord {
	return &ProgressRecord{
		NovelTitle:     DefaultTitle,
		TargetWords:    constants.DefaultTargetWords,
		CurrentChapter: constants.DefaultChapter,
		CurrentScene:   constants.DefaultScene,
		ChapterStatus:  UnknownLabel,
		NextMilestone:  UnknownLabel,
		LastAction:     UnknownLabel,
	}
}

// UnmarshalJSON decodes a progress record, keeping defaults for keys that
// are absent. A key present with a zero value (e.g. "target_words": 0) is
// kept as given. An unreadable last_sync does not fail the record; see
// InvalidLastSync.
func (p *ProgressRecord) UnmarshalJSON(data []byte) error {
	type plain ProgressRecord
	rec := plain(*NewProgressRecord())
	aux := struct {
		*plain
		LastSync json.RawMessage `json:"last_sync"`
	}{plain: &rec}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	rec.LastSync = nil
	rec.invalidSync = ""
	if ts, ok := parseLastSync(aux.LastSync); ok {
		rec.LastSync = ts
	} else {
		rec.invalidSync = string(aux.LastSync)
	}
	*p = ProgressRecord(rec)
	return nil
}

// InvalidLastSync returns the raw last_sync value when it was present but
// could not be read as a timestamp.
func (p *ProgressRecord) InvalidLastSync() (string, bool) {
	return p.invalidSync, p.invalidSync != ""
}

// syncLayouts are tried in order for last_sync. The zone-less forms are
// what Python's datetime.isoformat() writes; they are read as UTC.
var syncLayouts = []string{
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseLastSync reads a raw last_sync value. Absent, null and empty values
// are valid and yield nil.
func parseLastSync(raw json.RawMessage) (*utc.Time, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	for _, layout := range syncLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			ts := utc.New(t)
			return &ts, true
		}
	}
	var ts utc.Time
	if err := json.Unmarshal(raw, &ts); err == nil {
		return &ts, true
	}
	return nil, false
}

// LoadProgress reads the progress record at path.
//
// A missing file yields a NotFoundError; callers treat it as "not
// initialized". Malformed JSON yields a ParseError.
func LoadProgress(path string) (*ProgressRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("progress file", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	rec := NewProgressRecord()
	if err := decodeJSON(data, rec); err != nil {
		return nil, errors.WrapJSON(path, data, err)
	}
	return rec, nil
}

// decodeJSON rejects trailing garbage after the top-level value.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}
