package models

// Built-in defaults used when neither flags, prompts nor the settings file
// supply a value.
const (
	DefaultTicketPattern = `\[PF\d+-\d+\]`
	DefaultPRPattern     = `\bPR-\d+\b`
	DefaultReportSuffix  = "_report.pdf"
)

// PatternsConfig holds the two reference patterns.
type PatternsConfig struct {
	Ticket string `yaml:"ticket"`
	PR     string `yaml:"pr"`
}

// ReportConfig holds report output settings.
type ReportConfig struct {
	Suffix string `yaml:"suffix"` // appended to the source name when no output path is given
	Title  string `yaml:"title"`
}

// Settings represents global application settings.
// This corresponds to ~/.logaudit/settings.yaml.
type Settings struct {
	Version  int            `yaml:"version"`
	Patterns PatternsConfig `yaml:"patterns"`
	Report   ReportConfig   `yaml:"report"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Patterns: PatternsConfig{
			Ticket: DefaultTicketPattern,
			PR:     DefaultPRPattern,
		},
		Report: ReportConfig{
			Suffix: DefaultReportSuffix,
			Title:  "PROJECT LOG ANALYSIS REPORT",
		},
	}
}

// ApplyDefaults fills blank fields left by a partial settings file.
func (s *Settings) ApplyDefaults() {
	d := NewSettings()
	if s.Version == 0 {
		s.Version = d.Version
	}
	if s.Patterns.Ticket == "" {
		s.Patterns.Ticket = d.Patterns.Ticket
	}
	if s.Patterns.PR == "" {
		s.Patterns.PR = d.Patterns.PR
	}
	if s.Report.Suffix == "" {
		s.Report.Suffix = d.Report.Suffix
	}
	if s.Report.Title == "" {
		s.Report.Title = d.Report.Title
	}
}
