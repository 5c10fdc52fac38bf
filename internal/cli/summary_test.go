package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/watchfire-io/logaudit/internal/models"
)

func summaryResult() models.AnalysisResult {
	res := models.AnalysisResult{TotalEntries: 8, Skipped: 1}
	for _, name := range models.RuleNames {
		res.Rules = append(res.Rules, models.RuleSummary{Rule: name, Title: strings.ToUpper(string(name))})
	}
	for i := 0; i < 7; i++ {
		res.Rules[1].Violations = append(res.Rules[1].Violations, models.ViolationRecord{
			Date: "2024-01-01", Category: "Coding", Details: fmt.Sprintf("long task number %d with a lot of detail", i), Hours: 4,
		})
	}
	res.Rules[1].Count = 7
	res.Rules[1].Percent = models.Percent(7, 8)
	return res
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, summaryResult(), 0)
	out := ansi.Strip(buf.String())

	assert.Contains(t, out, "Total entries analyzed: 8")
	assert.Contains(t, out, "Skipped 1 entries")
	assert.Contains(t, out, "1. MISSING_TICKET 0 (0.0%)")
	assert.Contains(t, out, "2. EXCEEDS_TIME_LIMIT 7 (87.5%)")
	assert.Contains(t, out, "- 2024-01-01: [Coding] long task number 4 with a lot of detail (4.0)")
	assert.NotContains(t, out, "long task number 5")
	assert.Contains(t, out, "… 2 more in the report")
}

func TestPrintSummary_Truncates(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, summaryResult(), 30)

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 30, "line %q", line)
	}
}
