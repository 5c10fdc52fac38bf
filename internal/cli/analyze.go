package cli

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/watchfire-io/logaudit/internal/analyzer"
	"github.com/watchfire-io/logaudit/internal/config"
	"github.com/watchfire-io/logaudit/internal/models"
	"github.com/watchfire-io/logaudit/internal/report"
	"github.com/watchfire-io/logaudit/internal/tui"
	"github.com/watchfire-io/logaudit/internal/worklog"
)

type analyzeOptions struct {
	ticketPattern string
	prPattern     string
	output        string
	yes           bool
	preview       bool
}

var analyzeOpts analyzeOptions

func runAnalyze(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	res, path, err := analyzeRun(ctx, newPrompter(cmd.InOrStdin(), out), settings, analyzeOpts, arg)
	if err != nil || path == "" {
		return err
	}

	printSummary(out, res, terminalWidth())
	fmt.Fprintf(out, "\n%s %s\n", styleSuccess.Render("PDF report generated:"), path)

	if analyzeOpts.preview {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(out, styleHint.Render("Skipping preview: not a terminal"))
			return nil
		}
		opts := reportOptions(settings)
		return tui.Run(opts.Title, report.RenderText(report.Layout(res, opts), opts))
	}
	return nil
}

// analyzeRun resolves the inputs, runs the analysis and writes the report.
// An empty path with a nil error means the user aborted.
func analyzeRun(ctx context.Context, p *prompter, settings *models.Settings, opts analyzeOptions, arg string) (models.AnalysisResult, string, error) {
	out := p.out
	interactive := !opts.yes

	if err := checkSettingsPatterns(settings, opts); err != nil {
		return models.AnalysisResult{}, "", err
	}

	fmt.Fprintln(out, styleBrand.Render("Project Log Analyzer"))
	fmt.Fprintln(out, styleHint.Render("--------------------"))

	source, ok, err := p.resolveSource(arg, interactive)
	if err != nil {
		return models.AnalysisResult{}, "", err
	}
	if !ok {
		return models.AnalysisResult{}, "", nil
	}
	fmt.Fprintf(out, "Analyzing: %s\n", source)

	ticket, pr := opts.ticketPattern, opts.prPattern
	if ticket == "" {
		ticket = settings.Patterns.Ticket
		if interactive {
			if ticket, err = p.askPattern("ticket numbers", ticket); err != nil {
				return models.AnalysisResult{}, "", err
			}
		}
	}
	if pr == "" {
		pr = settings.Patterns.PR
		if interactive {
			if pr, err = p.askPattern("PR numbers", pr); err != nil {
				return models.AnalysisResult{}, "", err
			}
		}
	}
	patterns, err := analyzer.CompilePatterns(ticket, pr)
	if err != nil {
		return models.AnalysisResult{}, "", err
	}

	res, err := analyzeFile(ctx, source, patterns)
	if err != nil {
		return models.AnalysisResult{}, "", err
	}

	path := opts.output
	if path == "" {
		path = config.DefaultReportPath(source, settings.Report.Suffix)
		if interactive {
			if path, err = p.ask(fmt.Sprintf("Enter output PDF file path (default: %s):", path), path); err != nil {
				return models.AnalysisResult{}, "", err
			}
		}
	}

	if err := report.WritePDF(path, res, reportOptions(settings)); err != nil {
		return models.AnalysisResult{}, "", err
	}
	logger.Info("report written", zap.String("path", path), zap.String("run_id", res.RunID))
	return res, path, nil
}

// checkSettingsPatterns rejects settings patterns that would be offered as
// defaults but do not compile. Patterns overridden by flags are not checked.
func checkSettingsPatterns(settings *models.Settings, opts analyzeOptions) error {
	if opts.ticketPattern == "" {
		if _, err := regexp.Compile(settings.Patterns.Ticket); err != nil {
			return fmt.Errorf("invalid ticket pattern in settings: %w", err)
		}
	}
	if opts.prPattern == "" {
		if _, err := regexp.Compile(settings.Patterns.PR); err != nil {
			return fmt.Errorf("invalid PR pattern in settings: %w", err)
		}
	}
	return nil
}

func analyzeFile(ctx context.Context, path string, patterns analyzer.Patterns) (models.AnalysisResult, error) {
	f, err := worklog.Open(path)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("error reading CSV file: %w", err)
	}
	defer f.Close()

	res, err := analyzer.Analyze(ctx, f, patterns,
		analyzer.WithLogger(logger),
		analyzer.WithSource(path))
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("error reading CSV file: %w", err)
	}
	return res, nil
}

func reportOptions(settings *models.Settings) report.Options {
	opts := report.DefaultOptions()
	opts.Title = settings.Report.Title
	return opts
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 0
	}
	return w
}
