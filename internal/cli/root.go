// Package cli implements the logaudit commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "logaudit [csv-file]",
	Short: "Check work-log exports against the logging policy",
	Long: `logaudit reads a CSV work-log export, extracts the task entries embedded in
its Description column and flags three kinds of policy violations:

  1. Coding/testing/debugging work without a ticket reference
  2. Tasks logged for more than 3 hours
  3. PR reviews without a PR or ticket reference

The findings are written to a paginated PDF report. Anything not given as a
flag is asked for interactively; press Enter to accept the default.

Patterns use Go regular expression syntax (RE2): no look-ahead or
back-references.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runAnalyze,
}

// Execute runs the CLI.
// An interrupt cancels the run between records.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("Error: "+err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	f := rootCmd.Flags()
	f.StringVar(&analyzeOpts.ticketPattern, "ticket-pattern", "", "Regular expression for ticket references")
	f.StringVar(&analyzeOpts.prPattern, "pr-pattern", "", "Regular expression for PR references")
	f.StringVarP(&analyzeOpts.output, "output", "o", "", "Report path (default: <csv-file>_report.pdf)")
	f.BoolVarP(&analyzeOpts.yes, "yes", "y", false, "Accept defaults without prompting")
	f.BoolVar(&analyzeOpts.preview, "preview", false, "Page through the report in the terminal afterwards")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
