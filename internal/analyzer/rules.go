package analyzer

import (
	"strings"

	"github.com/watchfire-io/logaudit/internal/models"
)

// TimeLimit is the number of hours a single entry may take.
const TimeLimit = 3.0

// ticketCategories require a ticket reference.
var ticketCategories = map[string]bool{
	"coding":    true,
	"testing":   true,
	"debug":     true,
	"debugging": true,
}

type rule struct {
	name     models.RuleName
	title    string
	violates func(p Patterns, e models.TaskEntry) bool
}

// rules run in report order; every rule sees every entry.
var rules = []rule{
	{
		name:  models.RuleMissingTicket,
		title: "MISSING TICKET NUMBERS IN CODING/TESTING/DEBUGGING",
		violates: func(p Patterns, e models.TaskEntry) bool {
			return ticketCategories[strings.ToLower(e.Category)] && !p.Ticket.MatchString(e.Details)
		},
	},
	{
		name:  models.RuleExceedsTimeLimit,
		title: "TASKS EXCEEDING 3 HOURS",
		violates: func(_ Patterns, e models.TaskEntry) bool {
			return e.Hours > TimeLimit
		},
	},
	{
		name:  models.RuleMissingPRReference,
		title: "PR REVIEWS WITHOUT REFERENCES",
		violates: func(p Patterns, e models.TaskEntry) bool {
			c := strings.ToLower(e.Category)
			if !strings.Contains(c, "review") && !strings.Contains(c, "pr") {
				return false
			}
			return !p.PR.MatchString(e.Details) && !p.Ticket.MatchString(e.Details)
		},
	},
}

// Classifier checks task entries against the policy rules.
type Classifier struct {
	patterns Patterns
}

// NewClassifier creates a Classifier using the given patterns.
func NewClassifier(p Patterns) *Classifier {
	return &Classifier{patterns: p}
}

// Classify returns the rules the entry violates, in report order.
func (c *Classifier) Classify(e models.TaskEntry) []models.RuleName {
	var out []models.RuleName
	for _, r := range rules {
		if r.violates(c.patterns, e) {
			out = append(out, r.name)
		}
	}
	return out
}
