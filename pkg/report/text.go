package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agentstation/novelstat/internal/emoji"
	"github.com/agentstation/novelstat/pkg/constants"
)

// DashboardTitle heads both renderings.
const DashboardTitle = "NOVEL WRITING SYSTEM - STATUS DASHBOARD"

var printer = message.NewPrinter(language.English)

// FormatCount formats n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// WriteText renders the dashboard as the emoji terminal report.
func (d *Dashboard) WriteText(w io.Writer) error {
	var b strings.Builder
	rule := strings.Repeat("=", constants.RuleWidth)

	fmt.Fprintf(&b, "\n%s\n%s %s\n%s\n", rule, emoji.Book, DashboardTitle, rule)

	if !d.Initialized {
		fmt.Fprintf(&b, "%s Error: %s\n", emoji.Error, NotInitializedMessage)
		_, err := io.WriteString(w, b.String())
		return err
	}

	p := d.Progress
	pct := fmt.Sprintf("%.1f%%", d.Percentage)
	fmt.Fprintf(&b, "%s Novel Title: %s\n", emoji.Title, p.NovelTitle)
	fmt.Fprintf(&b, "%s Target Words: %s\n", emoji.Target, FormatCount(d.TargetWords))
	fmt.Fprintf(&b, "%s Current Words: %s\n", emoji.Words, FormatCount(d.ActualWords))
	fmt.Fprintf(&b, "%s Progress: %s\n", emoji.Chart, pct)
	fmt.Fprintf(&b, "%s [%s] %s\n\n", emoji.Bar, ProgressBar(d.Percentage, constants.ProgressBarWidth), pct)

	fmt.Fprintf(&b, "%s Current Chapter: %d\n", emoji.Pin, p.CurrentChapter)
	fmt.Fprintf(&b, "%s Current Scene: %d\n", emoji.Scene, p.CurrentScene)
	fmt.Fprintf(&b, "%s Chapter Status: %s\n", emoji.Clipboard, p.ChapterStatus)
	fmt.Fprintf(&b, "%s Next Milestone: %s\n", emoji.Target, p.NextMilestone)
	fmt.Fprintf(&b, "%s Last Action: %s\n", emoji.Clock, p.LastAction)
	if p.LastSync != nil && !p.LastSync.IsZero() {
		fmt.Fprintf(&b, "%s Last Sync: %s\n", emoji.Clock, p.LastSync.Format(constants.TimestampFormat))
	}

	if len(d.Notices) > 0 {
		b.WriteString("\n")
		for _, n := range d.Notices {
			fmt.Fprintf(&b, "%s %s\n", noticeIcon(n.Level), n.Message)
		}
	}

	section(&b, emoji.Search, "CONSISTENCY CHECK")
	if len(d.Findings) == 0 {
		fmt.Fprintf(&b, "%s No issues found\n", emoji.Success)
	}
	for _, f := range d.Findings {
		fmt.Fprintf(&b, "%s %s\n", emoji.Warning, f.Message)
	}

	section(&b, emoji.Words, "MANUSCRIPT FILES")
	if len(d.Files) == 0 {
		b.WriteString("   No manuscript files found\n")
	}
	for _, f := range d.Files {
		if f.Failed() {
			fmt.Fprintf(&b, "%s %s: unreadable\n", emoji.Error, f.Name)
			continue
		}
		fmt.Fprintf(&b, "%s %s: %s words (%s)\n", emoji.ForStatus(string(f.Status)), f.Name, FormatCount(f.Words), f.Status)
	}

	section(&b, emoji.Book, "CHAPTER STATUS")
	if len(d.Tracked) == 0 {
		b.WriteString("   No chapters tracked yet\n")
	}
	for _, t := range d.Tracked {
		fmt.Fprintf(&b, "%s %s: %s (%s words)\n", emoji.ForStatus(string(t.Status)), t.Key, t.Status, FormatCount(t.Words))
	}

	v := d.Verdict
	section(&b, emoji.Chart, "TRACKED VS ACTUAL")
	fmt.Fprintf(&b, "Tracked chapters: %d (%s words)\n", v.TrackedChapters, FormatCount(v.TrackedWords))
	fmt.Fprintf(&b, "Actual chapters:  %d (%s words)\n", v.ActualChapters, FormatCount(v.ActualWords))
	if v.InSync {
		fmt.Fprintf(&b, "%s %s\n", emoji.Success, v.Message())
	} else {
		fmt.Fprintf(&b, "%s %s\n", emoji.Warning, v.Message())
	}

	d.writeComponents(&b)

	section(&b, emoji.Idea, "RECOMMENDATIONS")
	for _, r := range d.Recommendations {
		fmt.Fprintf(&b, "• %s\n", r)
	}

	fmt.Fprintf(&b, "\n%s\n%s Dashboard updated: %s\n%s\n", rule, emoji.Clock, d.GeneratedAt.Format(constants.TimestampFormat), rule)

	_, err := io.WriteString(w, b.String())
	return err
}

func (d *Dashboard) writeComponents(b *strings.Builder) {
	section(b, emoji.Folder, "FILE SYSTEM STATUS")
	for _, c := range d.Components {
		fmt.Fprintf(b, "%s %s: %s\n", emoji.Check(c.Present), c.Label, c.Path)
	}
}

func section(b *strings.Builder, icon, title string) {
	fmt.Fprintf(b, "\n%s %s:\n%s\n", icon, title, strings.Repeat("-", constants.SectionRuleWidth))
}

func noticeIcon(level NoticeLevel) string {
	switch level {
	case NoticeError:
		return emoji.Error
	case NoticeWarning:
		return emoji.Warning
	default:
		return emoji.Info
	}
}
