// Package models defines the data types shared by the analyzer, the report
// renderer and the CLI.
package models

// UnknownDate is used when a record carries no date.
const UnknownDate = "Unknown date"

// LogRecord is one row of a work-log export.
type LogRecord struct {
	Line        int    // 1-based line in the source file, diagnostics only
	Date        string
	Description string
}
