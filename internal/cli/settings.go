package cli

import (
	"fmt"
	"io"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/logaudit/internal/config"
	"github.com/watchfire-io/logaudit/internal/models"
)

var resetSettings bool

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show and edit default settings",
	Long: `Show and edit the defaults stored in ~/.logaudit/settings.yaml
(or $LOGAUDIT_HOME/settings.yaml).

This allows you to modify:
  - Ticket reference pattern
  - PR reference pattern
  - Report file suffix
  - Report title

Press Enter to keep the current value for any setting.`,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&resetSettings, "reset", false, "Restore the built-in defaults")
}

func runSettings(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if resetSettings {
		if err := config.SaveSettings(models.NewSettings()); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Fprintln(out, styleSuccess.Render("Settings reset to defaults."))
		return nil
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	changed, err := editSettings(newPrompter(cmd.InOrStdin(), out), settings)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(out, "\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Fprintln(out, styleSuccess.Render("\nSettings updated."))
	return nil
}

// editSettings prompts for each setting, keeping the current value on empty
// input. It reports whether anything changed.
func editSettings(p *prompter, s *models.Settings) (bool, error) {
	printSettings(p.out, s)
	fmt.Fprintln(p.out)

	changed := false
	update := func(label string, field *string, validate func(string) error) error {
		fmt.Fprintf(p.out, "%s [%s]: ", label, *field)
		v, _ := p.readLine()
		if v == "" || v == *field {
			return nil
		}
		if validate != nil {
			if err := validate(v); err != nil {
				return fmt.Errorf("invalid %s: %w", label, err)
			}
		}
		*field = v
		changed = true
		return nil
	}
	compiles := func(v string) error {
		_, err := regexp.Compile(v)
		return err
	}

	if err := update("Ticket pattern", &s.Patterns.Ticket, compiles); err != nil {
		return false, err
	}
	if err := update("PR pattern", &s.Patterns.PR, compiles); err != nil {
		return false, err
	}
	if err := update("Report suffix", &s.Report.Suffix, nil); err != nil {
		return false, err
	}
	if err := update("Report title", &s.Report.Title, nil); err != nil {
		return false, err
	}
	return changed, nil
}

func printSettings(w io.Writer, s *models.Settings) {
	path, _ := config.GlobalSettingsFile()
	fmt.Fprintf(w, "%s %s\n", styleLabel.Render("Settings file:"), styleValue.Render(path))
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render("Ticket pattern:"), styleValue.Render(s.Patterns.Ticket))
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render("PR pattern:    "), styleValue.Render(s.Patterns.PR))
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render("Report suffix: "), styleValue.Render(s.Report.Suffix))
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render("Report title:  "), styleValue.Render(s.Report.Title))
}
