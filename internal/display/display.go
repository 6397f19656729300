// Package display renders the human-facing output of a batch run: the
// dry-run plan and the completion summary. Styling degrades to plain text on
// non-TTY output.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shotseq/shotseq/internal/types"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Summary renders the outcome of a batch run.
func Summary(report types.Report) string {
	if report.Eligible == 0 {
		return dimStyle.Render(fmt.Sprintf("No matching files found in %s.", report.Dir))
	}
	if report.DryRun {
		return dryRun(report)
	}

	var b strings.Builder
	if report.RolledBack {
		b.WriteString(errorStyle.Render("Batch aborted: files restored to their original names."))
		b.WriteString("\n")
	} else {
		b.WriteString(headerStyle.Render("Batch rename complete."))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("  %s  %s\n",
		okStyle.Render(fmt.Sprintf("%d renamed", report.Renamed)),
		dimStyle.Render(fmt.Sprintf("of %d eligible in %s (%dms)", report.Eligible, report.Dir, report.ElapsedMS))))

	if report.Failed > 0 {
		b.WriteString(fmt.Sprintf("  %s\n", errorStyle.Render(fmt.Sprintf("%d failed", report.Failed))))
		for _, result := range report.Results {
			switch result.Status {
			case types.StatusRenamed, types.StatusRolledBack, types.StatusPlanned:
				continue
			}
			b.WriteString(fmt.Sprintf("    %s %s\n",
				errorStyle.Render(string(result.Status)+":"),
				fmt.Sprintf("%s (%s)", result.Original, result.Message)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// dryRun lists every planned rename without having touched anything.
func dryRun(report types.Report) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Dry run: %d files would be renamed in %s", report.Eligible, report.Dir)))
	b.WriteString("\n")

	width := 0
	for _, result := range report.Results {
		if len(result.Original) > width {
			width = len(result.Original)
		}
	}
	for _, result := range report.Results {
		b.WriteString(fmt.Sprintf("  %-*s %s %s\n",
			width, result.Original,
			dimStyle.Render("->"),
			warnStyle.Render(result.Final)))
	}
	return strings.TrimRight(b.String(), "\n")
}
