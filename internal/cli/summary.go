package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/watchfire-io/logaudit/internal/models"
	"github.com/watchfire-io/logaudit/internal/report"
)

// summaryItems caps the violations listed per rule on the terminal; the
// report has them all.
const summaryItems = 5

// printSummary writes a short overview of res. Lines are cut to width when
// width is positive.
func printSummary(w io.Writer, res models.AnalysisResult, width int) {
	line := func(s string) {
		if width > 0 {
			s = ansi.Truncate(s, width, "…")
		}
		fmt.Fprintln(w, s)
	}

	fmt.Fprintln(w)
	line(styleLabel.Render("Total entries analyzed: ") + styleValue.Render(fmt.Sprint(res.TotalEntries)))
	if res.Skipped > 0 {
		line(styleWarning.Render(fmt.Sprintf("Skipped %d entries with unreadable hours", res.Skipped)))
	}

	for i, name := range models.RuleNames {
		s := res.Rule(name)
		badge := badgeClean
		if s.Count > 0 {
			badge = badgeViolation
		}
		line(fmt.Sprintf("%s %s",
			styleHeading.Render(fmt.Sprintf("%d. %s", i+1, s.Title)),
			badge.Render(fmt.Sprintf("%d (%.1f%%)", s.Count, s.Percent))))

		for j, v := range s.Violations {
			if j == summaryItems {
				line(styleHint.Render(fmt.Sprintf("    … %d more in the report", len(s.Violations)-summaryItems)))
				break
			}
			line("    " + report.ViolationLine(v))
		}
	}
}
