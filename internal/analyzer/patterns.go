package analyzer

import (
	"fmt"
	"regexp"

	"github.com/watchfire-io/logaudit/internal/models"
)

// Patterns holds the compiled reference patterns.
type Patterns struct {
	Ticket *regexp.Regexp
	PR     *regexp.Regexp
}

// CompilePatterns compiles the ticket and PR expressions. An empty string
// selects the built-in default for that pattern.
func CompilePatterns(ticket, pr string) (Patterns, error) {
	if ticket == "" {
		ticket = models.DefaultTicketPattern
	}
	if pr == "" {
		pr = models.DefaultPRPattern
	}

	t, err := regexp.Compile(ticket)
	if err != nil {
		return Patterns{}, fmt.Errorf("invalid ticket pattern %q: %w", ticket, err)
	}
	p, err := regexp.Compile(pr)
	if err != nil {
		return Patterns{}, fmt.Errorf("invalid PR pattern %q: %w", pr, err)
	}
	return Patterns{Ticket: t, PR: p}, nil
}

// DefaultPatterns returns the compiled built-in patterns.
func DefaultPatterns() Patterns {
	return Patterns{
		Ticket: regexp.MustCompile(models.DefaultTicketPattern),
		PR:     regexp.MustCompile(models.DefaultPRPattern),
	}
}
