package manuscript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agentstation/utc"

	"github.com/agentstation/novelstat/pkg/constants"
	"github.com/agentstation/novelstat/pkg/errors"
	"github.com/agentstation/novelstat/pkg/logging"
)

// Scanner lists and measures manuscript files.
type Scanner struct {
	thresholds Thresholds
	extensions []string
	readFile   func(string) ([]byte, error)
}

// Option configures a Scanner.
type Option func(*Scanner) error

// WithThresholds overrides the display status thresholds.
func WithThresholds(t Thresholds) Option {
	return func(s *Scanner) error {
		if t.InProgress < 0 || t.Complete < t.InProgress {
			return &errors.ValidationError{
				Field:   "thresholds",
				Value:   t,
				Message: "complete must be >= in_progress >= 0",
			}
		}
		s.thresholds = t
		return nil
	}
}

// WithExtensions sets the file extensions that are scanned. Extensions are
// matched case-insensitively; a leading dot is optional.
func WithExtensions(exts ...string) Option {
	return func(s *Scanner) error {
		if len(exts) == 0 {
			return &errors.ValidationError{Field: "extensions", Message: "at least one extension required"}
		}
		s.extensions = s.extensions[:0]
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			s.extensions = append(s.extensions, ext)
		}
		return nil
	}
}

// withReadFile swaps the file reader (tests).
func withReadFile(fn func(string) ([]byte, error)) Option {
	return func(s *Scanner) error {
		s.readFile = fn
		return nil
	}
}

// NewScanner creates a Scanner with default thresholds and extensions.
func NewScanner(opts ...Option) (*Scanner, error) {
	s := &Scanner{
		thresholds: DefaultThresholds(),
		extensions: slices.Clone(constants.DefaultExtensions),
		readFile:   os.ReadFile,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Thresholds returns the scanner's display thresholds.
func (s *Scanner) Thresholds() Thresholds {
	return s.thresholds
}

// Scan measures every matching file directly inside dir. A missing
// directory yields no files and no error. A file that cannot be read is
// returned with Status error and zero words; the scan continues.
//
// Files are ordered by chapter number, then name; unparseable chapters
// (0) come first.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]ObservedFile, error) {
	logger := logging.FromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("dir", dir).Msg("Manuscript directory not found")
			return []ObservedFile{}, nil
		}
		return nil, errors.WrapIO("list", dir, err)
	}

	files := make([]ObservedFile, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !s.matches(entry.Name()) {
			continue
		}

		file := s.observe(filepath.Join(dir, entry.Name()), entry)
		if file.Failed() {
			logger.Warn().Err(file.Err).Str("file", file.Name).Msg("Could not read manuscript file")
		} else {
			logger.Trace().
				Str("file", file.Name).
				Int("chapter", file.Chapter).
				Int("words", file.Words).
				Msg("Scanned manuscript file")
		}
		files = append(files, file)
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Chapter != files[j].Chapter {
			return files[i].Chapter < files[j].Chapter
		}
		return files[i].Name < files[j].Name
	})

	logger.Debug().Str("dir", dir).Int("files", len(files)).Msg("Scanned manuscript directory")
	return files, nil
}

func (s *Scanner) matches(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.Contains(s.extensions, ext)
}

func (s *Scanner) observe(path string, entry os.DirEntry) ObservedFile {
	file := ObservedFile{
		Name:    entry.Name(),
		Path:    path,
		Chapter: ChapterNumber(entry.Name()),
	}

	if info, err := entry.Info(); err == nil {
		file.Size = info.Size()
		file.ModTime = utc.New(info.ModTime())
	}

	data, err := s.readFile(path)
	if err == nil && !utf8.Valid(data) {
		err = fmt.Errorf("%s is not valid UTF-8 text", entry.Name())
	}
	if err != nil {
		file.Err = errors.WrapIO("read", path, err)
		file.Status = StatusError
		return file
	}

	file.Words = CountWords(string(data))
	file.Status = s.thresholds.Status(file.Words)
	return file
}

// Scan measures dir with a default Scanner.
func Scan(ctx context.Context, dir string, opts ...Option) ([]ObservedFile, error) {
	s, err := NewScanner(opts...)
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx, dir)
}
