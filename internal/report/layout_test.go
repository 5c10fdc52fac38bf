package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/logaudit/internal/models"
)

func result(violations map[models.RuleName]int, total int) models.AnalysisResult {
	res := models.AnalysisResult{RunID: "test-run", TotalEntries: total}
	for _, name := range models.RuleNames {
		s := models.RuleSummary{Rule: name, Title: strings.ToUpper(string(name))}
		for i := 0; i < violations[name]; i++ {
			s.Violations = append(s.Violations, models.ViolationRecord{
				Rule:     name,
				Date:     fmt.Sprintf("2024-01-%02d", i%28+1),
				Category: "Coding",
				Details:  fmt.Sprintf("item %d", i),
				Hours:    1,
			})
		}
		s.Count = len(s.Violations)
		s.Percent = models.Percent(s.Count, total)
		res.Rules = append(res.Rules, s)
	}
	return res
}

func TestLayout_SinglePage(t *testing.T) {
	opts := DefaultOptions()
	res := result(map[models.RuleName]int{models.RuleMissingTicket: 1}, 3)
	res.Rules[0].Title = "MISSING TICKET NUMBERS IN CODING/TESTING/DEBUGGING"

	pages := Layout(res, opts)
	require.Len(t, pages, 1)

	lines := pages[0].Lines
	require.Len(t, lines, 9)
	assert.Equal(t, Line{X: 50, Y: 742, Font: fontTitle, Text: "PROJECT LOG ANALYSIS REPORT"}, lines[0])
	assert.Equal(t, "Total entries analyzed: 3", lines[1].Text)
	assert.Equal(t, 712.0, lines[1].Y)
	assert.Equal(t, "1. MISSING TICKET NUMBERS IN CODING/TESTING/DEBUGGING:", lines[2].Text)
	assert.Equal(t, 682.0, lines[2].Y)
	assert.Equal(t, "Violations: 1 (33.3%)", lines[3].Text)
	assert.Equal(t, 60.0, lines[3].X)
	assert.Equal(t, "- 2024-01-01: [Coding] item 0 (1.0)", lines[4].Text)
	assert.Equal(t, 70.0, lines[4].X)
	assert.Equal(t, "2. EXCEEDS_TIME_LIMIT:", lines[5].Text)
	// item at 650, next heading 16 + 10 lower
	assert.Equal(t, 624.0, lines[5].Y)
	assert.Equal(t, "Violations: 0 (0.0%)", lines[6].Text)
	assert.Equal(t, "3. MISSING_PR_REFERENCE:", lines[7].Text)
}

func TestLayout_SectionOrderIsFixed(t *testing.T) {
	res := result(nil, 0)
	// Reverse the stored order; the report order must not change.
	res.Rules[0], res.Rules[2] = res.Rules[2], res.Rules[0]

	pages := Layout(res, DefaultOptions())
	var headings []string
	for _, ln := range pages[0].Lines {
		if ln.Font == fontHeading {
			headings = append(headings, ln.Text)
		}
	}
	assert.Equal(t, []string{
		"1. MISSING_TICKET:",
		"2. EXCEEDS_TIME_LIMIT:",
		"3. MISSING_PR_REFERENCE:",
	}, headings)
}

func TestLayout_Paginates(t *testing.T) {
	opts := DefaultOptions()
	res := result(map[models.RuleName]int{models.RuleExceedsTimeLimit: 120}, 120)

	pages := Layout(res, opts)
	require.Greater(t, len(pages), 1)

	top := opts.Height - opts.TopMargin
	count := 0
	for i, page := range pages {
		require.NotEmpty(t, page.Lines, "page %d", i)
		assert.Equal(t, top, page.Lines[0].Y, "page %d starts at the top margin", i)
		for _, ln := range page.Lines {
			assert.LessOrEqual(t, ln.Y, top)
			assert.GreaterOrEqual(t, ln.Y, opts.BottomMargin)
			if strings.HasPrefix(ln.Text, "- ") {
				count++
			}
		}
	}
	assert.Equal(t, 120, count)

	// First page: title, total, heading, summary, heading, summary, then
	// items from 608 down to 64.
	firstItems := 0
	for _, ln := range pages[0].Lines {
		if strings.HasPrefix(ln.Text, "- ") {
			firstItems++
		}
	}
	assert.Equal(t, 35, firstItems)
}

func TestLayout_TruncatesLongLines(t *testing.T) {
	res := result(map[models.RuleName]int{models.RuleMissingTicket: 1}, 1)
	res.Rules[0].Violations[0].Details = strings.Repeat("é", 150)

	pages := Layout(res, DefaultOptions())
	item := pages[0].Lines[4]
	assert.Equal(t, 100, len([]rune(item.Text)))
	assert.True(t, strings.HasPrefix(item.Text, "- 2024-01-01: [Coding] éé"))
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2.0"},
		{2.5, "2.5"},
		{0.25, "0.25"},
		{3.01, "3.01"},
		{10, "10.0"},
	}
	for _, tt := range tests {
		if got := FormatHours(tt.in); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderText(t *testing.T) {
	opts := DefaultOptions()
	res := result(map[models.RuleName]int{models.RuleMissingPRReference: 1}, 4)

	text := RenderText(Layout(res, opts), opts)
	require.Len(t, text, 1)
	assert.Equal(t, strings.Join([]string{
		"PROJECT LOG ANALYSIS REPORT",
		"",
		"Total entries analyzed: 4",
		"",
		"1. MISSING_TICKET:",
		"  Violations: 0 (0.0%)",
		"",
		"2. EXCEEDS_TIME_LIMIT:",
		"  Violations: 0 (0.0%)",
		"",
		"3. MISSING_PR_REFERENCE:",
		"  Violations: 1 (25.0%)",
		"    - 2024-01-01: [Coding] item 0 (1.0)",
	}, "\n"), text[0])
}

func TestBuildPDF_PageCount(t *testing.T) {
	opts := DefaultOptions()
	res := result(map[models.RuleName]int{models.RuleMissingTicket: 100}, 100)

	pages := Layout(res, opts)
	pdf := buildPDF(pages, res, opts)
	require.NoError(t, pdf.Error())
	assert.Equal(t, len(pages), pdf.PageCount())
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	res := result(map[models.RuleName]int{models.RuleMissingTicket: 2}, 5)
	res.Rules[0].Violations[0].Details = "naïve café work"

	require.NoError(t, WritePDF(path, res, DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestWritePDF_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "report.pdf")
	err := WritePDF(path, result(nil, 0), DefaultOptions())
	assert.Error(t, err)
}
