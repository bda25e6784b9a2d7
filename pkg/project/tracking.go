package project

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/agentstation/novelstat/pkg/errors"
)

// chapterKeyPrefix prefixes the chapter number in tracking keys.
const chapterKeyPrefix = "chapter_"

// ChapterKey returns the tracking key for chapter n, e.g. "chapter_3".
func ChapterKey(n int) string {
	return chapterKeyPrefix + strconv.Itoa(n)
}

// ParseChapterKey extracts the chapter number from a tracking key.
// Keys with zero padding ("chapter_03") are accepted.
func ParseChapterKey(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, chapterKeyPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ChapterTrackingEntry is the declared state for one chapter.
type ChapterTrackingEntry struct {
	Status Status `json:"status" yaml:"status"`
	Words  int    `json:"words" yaml:"words"`
}

// UnmarshalJSON defaults a missing status to unknown.
func (e *ChapterTrackingEntry) UnmarshalJSON(data []byte) error {
	type plain ChapterTrackingEntry
	entry := plain{Status: StatusUnknown}
	if err := decodeJSON(data, &entry); err != nil {
		return err
	}
	*e = ChapterTrackingEntry(entry)
	return nil
}

// Tracking is the declared per-chapter collection keyed by chapter key.
type Tracking map[string]ChapterTrackingEntry

// TrackedChapter pairs a tracking entry with its key and parsed number.
type TrackedChapter struct {
	Key    string
	Number int // 0 when the key does not follow the chapter_<n> convention
	ChapterTrackingEntry
}

// Lookup returns the entry for chapter n. The canonical key wins; among
// zero-padded variants ("chapter_03", "chapter_003") the lowest key does,
// matching the order of Chapters.
func (t Tracking) Lookup(n int) (ChapterTrackingEntry, bool) {
	if entry, ok := t[ChapterKey(n)]; ok {
		return entry, true
	}
	best := ""
	for key := range t {
		if num, valid := ParseChapterKey(key); valid && num == n && (best == "" || key < best) {
			best = key
		}
	}
	if best == "" {
		return ChapterTrackingEntry{}, false
	}
	return t[best], true
}

// Chapters returns the entries in ascending chapter order. Keys that do not
// parse as chapter keys sort last, by name.
func (t Tracking) Chapters() []TrackedChapter {
	out := make([]TrackedChapter, 0, len(t))
	for key, entry := range t {
		n, _ := ParseChapterKey(key)
		out = append(out, TrackedChapter{Key: key, Number: n, ChapterTrackingEntry: entry})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Number == 0) != (b.Number == 0) {
			return a.Number != 0
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return a.Key < b.Key
	})
	return out
}

// TotalWords sums the declared word counts.
func (t Tracking) TotalWords() int {
	total := 0
	for _, entry := range t {
		total += entry.Words
	}
	return total
}

// LoadTracking reads the tracking collection at path. A missing file is
// not an error and yields an empty collection.
func LoadTracking(path string) (Tracking, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Tracking{}, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	tracking := Tracking{}
	if err := decodeJSON(data, &tracking); err != nil {
		return nil, errors.WrapJSON(path, data, err)
	}
	if tracking == nil {
		tracking = Tracking{}
	}
	return tracking, nil
}
