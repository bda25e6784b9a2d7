package output

import (
	"fmt"
	"io"

	"github.com/agentstation/novelstat/internal/cmd/table"
	"github.com/agentstation/novelstat/internal/emoji"
	"github.com/agentstation/novelstat/pkg/project"
	"github.com/agentstation/novelstat/pkg/report"
)

// Resolve parses an explicit format for a report. Reports are meant to be
// read, so without a format they are text even when redirected or piped.
func Resolve(explicit string) (Format, error) {
	format, err := ParseFormat(explicit)
	if err != nil {
		return "", err
	}
	if format == "" {
		format = FormatText
	}
	return format, nil
}

// ResolveData parses an explicit format for tabular listings. Without one
// the format is detected on out, so piped listings come out as JSON.
func ResolveData(explicit string, out io.Writer) (Format, error) {
	format, err := ParseFormat(explicit)
	if err != nil {
		return "", err
	}
	if format == "" {
		format = DetectFormat("", out)
	}
	return format, nil
}

// WriteDashboard renders d in format.
func WriteDashboard(w io.Writer, format Format, d *report.Dashboard) error {
	switch format {
	case FormatMarkdown:
		return d.WriteMarkdown(w)
	case FormatJSON, FormatYAML:
		return NewFormatter(format).Format(w, d)
	default:
		return d.WriteText(w)
	}
}

// WriteCorrection renders the correction derived from d. An uninitialized
// project has nothing to correct and gets the not-initialized notice.
func WriteCorrection(w io.Writer, format Format, d *report.Dashboard, paths project.Paths) error {
	c := d.Correction()
	if c == nil {
		if format.IsStructured() {
			return NewFormatter(format).Format(w, d.Notices)
		}
		_, err := fmt.Fprintf(w, "%s Error: %s\n", emoji.Error, report.NotInitializedMessage)
		return err
	}
	if format.IsStructured() {
		return NewFormatter(format).Format(w, c)
	}
	return c.Write(w, paths)
}

// WriteChapters renders the per-chapter comparison.
func WriteChapters(w io.Writer, format Format, d *report.Dashboard) error {
	if format.IsStructured() {
		return NewFormatter(format).Format(w, d.Chapters)
	}
	if !d.Initialized {
		_, err := fmt.Fprintf(w, "%s Error: %s\n", emoji.Error, report.NotInitializedMessage)
		return err
	}
	if len(d.Chapters) == 0 {
		_, err := fmt.Fprintln(w, "No chapters tracked or written yet")
		return err
	}
	return NewFormatter(FormatText).Format(w, table.ChaptersToTableData(d.Chapters))
}

// WriteFiles renders the scanned manuscript files as a table.
func WriteFiles(w io.Writer, format Format, d *report.Dashboard) error {
	if format.IsStructured() {
		return NewFormatter(format).Format(w, d.Files)
	}
	return NewFormatter(FormatText).Format(w, table.FilesToTableData(d))
}
