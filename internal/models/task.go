package models

// TaskEntry is one unit of logged work extracted from a record description.
type TaskEntry struct {
	Category string
	Details  string
	Hours    float64
}

// RuleName identifies one of the policy checks.
type RuleName string

const (
	RuleMissingTicket      RuleName = "missing_ticket"
	RuleExceedsTimeLimit   RuleName = "exceeds_time_limit"
	RuleMissingPRReference RuleName = "missing_pr_reference"
)

// RuleNames lists the rules in report order.
var RuleNames = []RuleName{
	RuleMissingTicket,
	RuleExceedsTimeLimit,
	RuleMissingPRReference,
}

// ViolationRecord is a task entry that failed one rule.
type ViolationRecord struct {
	Rule     RuleName
	Date     string
	Category string
	Details  string
	Hours    float64
}

// NewViolation tags an entry from the given record date with a rule.
func NewViolation(rule RuleName, date string, entry TaskEntry) ViolationRecord {
	return ViolationRecord{
		Rule:     rule,
		Date:     date,
		Category: entry.Category,
		Details:  entry.Details,
		Hours:    entry.Hours,
	}
}
