package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/watchfire-io/logaudit/internal/models"
)

// taskPattern matches "[Category] details hours". The hours token must not be
// glued to a preceding word character, dot or hyphen, so references such as
// PR-9 or PF12-34 stay part of the details. One separator before the hours
// (space, "(", ":") is consumed.
var taskPattern = regexp.MustCompile(`\[([\p{L}\p{N}_\s-]+)\](?:(.*?)[^\p{L}\p{N}_.\-])??(\d+(?:\.\d+)?)`)

// ExtractTasks returns the task entries embedded in a description, in order
// of appearance. Text without matching entries yields nil.
func ExtractTasks(text string) []models.TaskEntry {
	entries, _ := extractTasks(text)
	return entries
}

// extractTasks also returns the hours tokens that could not be parsed.
func extractTasks(text string) ([]models.TaskEntry, []string) {
	var (
		entries  []models.TaskEntry
		rejected []string
	)
	for _, m := range taskPattern.FindAllStringSubmatch(text, -1) {
		hours, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			rejected = append(rejected, m[3])
			continue
		}
		entries = append(entries, models.TaskEntry{
			Category: strings.TrimSpace(m[1]),
			Details:  strings.TrimSpace(m[2]),
			Hours:    hours,
		})
	}
	return entries, rejected
}
