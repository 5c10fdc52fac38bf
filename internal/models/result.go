package models

// RuleSummary aggregates the violations of a single rule.
type RuleSummary struct {
	Rule       RuleName
	Title      string
	Count      int
	Percent    float64
	Violations []ViolationRecord
}

// AnalysisResult is the finalized output of one analysis run.
type AnalysisResult struct {
	RunID        string
	Source       string
	TotalEntries int
	Records      int
	Skipped      int // numeric tokens that failed to parse
	Rules        []RuleSummary
}

// Rule returns the summary for the named rule, or an empty summary if the
// result has none.
func (r AnalysisResult) Rule(name RuleName) RuleSummary {
	for _, s := range r.Rules {
		if s.Rule == name {
			return s
		}
	}
	return RuleSummary{Rule: name}
}

// Percent returns count as a percentage of total, or 0 when total is 0.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
