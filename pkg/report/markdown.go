package report

import (
	"fmt"
	"io"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/novelstat/pkg/constants"
)

// WriteMarkdown renders the dashboard as a markdown document, suitable for
// committing next to the manuscript or pasting into an issue.
func (d *Dashboard) WriteMarkdown(w io.Writer) error {
	doc := md.NewMarkdown(w).H1("Novel Status Dashboard")

	if !d.Initialized {
		return doc.PlainText(fmt.Sprintf("**%s** (no progress file under `%s`).", NotInitializedMessage, d.Project)).Build()
	}

	p := d.Progress
	doc.H2(p.NovelTitle).
		Table(md.TableSet{
			Header: []string{"Field", "Value"},
			Rows: [][]string{
				{"Target words", FormatCount(d.TargetWords)},
				{"Current words", FormatCount(d.ActualWords)},
				{"Progress", fmt.Sprintf("%.1f%%", d.Percentage)},
				{"Current chapter", strconv.Itoa(p.CurrentChapter)},
				{"Current scene", strconv.Itoa(p.CurrentScene)},
				{"Chapter status", p.ChapterStatus},
				{"Next milestone", p.NextMilestone},
				{"Last action", p.LastAction},
			},
		}).
		PlainText("`" + ProgressBar(d.Percentage, constants.ProgressBarWidth) + "`")

	if len(d.Notices) > 0 {
		notes := make([]string, len(d.Notices))
		for i, n := range d.Notices {
			notes[i] = fmt.Sprintf("%s: %s", n.Level, n.Message)
		}
		doc.H2("Notices").BulletList(notes...)
	}

	doc.H2("Consistency Check")
	if len(d.Findings) == 0 {
		doc.PlainText("No issues found.")
	} else {
		rows := make([][]string, len(d.Findings))
		for i, f := range d.Findings {
			rows[i] = []string{f.Kind.Title(), strconv.Itoa(f.Chapter), f.Message}
		}
		doc.Table(md.TableSet{Header: []string{"Kind", "Chapter", "Detail"}, Rows: rows})
	}

	doc.H2("Manuscript Files")
	if len(d.Files) == 0 {
		doc.PlainText("No manuscript files found.")
	} else {
		rows := make([][]string, len(d.Files))
		for i, f := range d.Files {
			words := FormatCount(f.Words)
			if f.Failed() {
				words = "-"
			}
			rows[i] = []string{f.Name, chapterLabel(f.Chapter), words, string(f.Status)}
		}
		doc.Table(md.TableSet{Header: []string{"File", "Chapter", "Words", "Status"}, Rows: rows})
	}

	doc.H2("Chapter Status")
	if len(d.Tracked) == 0 {
		doc.PlainText("No chapters tracked yet.")
	} else {
		rows := make([][]string, len(d.Tracked))
		for i, t := range d.Tracked {
			rows[i] = []string{t.Key, string(t.Status), FormatCount(t.Words)}
		}
		doc.Table(md.TableSet{Header: []string{"Chapter", "Status", "Words"}, Rows: rows})
	}

	doc.H2("Tracked vs Actual").PlainText(d.Verdict.Message() + ".")

	checks := make([]md.CheckBoxSet, len(d.Components))
	for i, c := range d.Components {
		checks[i] = md.CheckBoxSet{Text: fmt.Sprintf("%s (`%s`)", c.Label, c.Path), Checked: c.Present}
	}
	doc.H2("File System Status").CheckBox(checks)

	if len(d.Recommendations) > 0 {
		doc.H2("Recommendations").BulletList(d.Recommendations...)
	}

	return doc.HorizontalRule().
		PlainText("Generated " + d.GeneratedAt.Format(constants.TimestampFormat)).
		Build()
}

func chapterLabel(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}
