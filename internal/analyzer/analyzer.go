// Package analyzer extracts task entries from work-log records and checks them
// against the logging policy.
package analyzer

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/watchfire-io/logaudit/internal/models"
)

// RecordSource yields records until it returns io.EOF.
type RecordSource interface {
	Next() (models.LogRecord, error)
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger. Default: no-op.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// WithSource records the input name in the result.
func WithSource(name string) Option {
	return func(a *Analyzer) { a.source = name }
}

// Analyzer accumulates entry counts and violations over a run.
// It is not safe for concurrent use.
type Analyzer struct {
	classifier *Classifier
	logger     *zap.Logger
	runID      string
	source     string

	records    int
	total      int
	skipped    int
	violations map[models.RuleName][]models.ViolationRecord
}

// New creates an Analyzer for one run.
func New(p Patterns, opts ...Option) *Analyzer {
	a := &Analyzer{
		classifier: NewClassifier(p),
		logger:     zap.NewNop(),
		runID:      uuid.NewString(),
		violations: make(map[models.RuleName][]models.ViolationRecord, len(rules)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Add extracts and classifies the entries of one record.
func (a *Analyzer) Add(rec models.LogRecord) {
	a.records++
	entries, rejected := extractTasks(rec.Description)
	for _, tok := range rejected {
		a.skipped++
		a.logger.Warn("skipping entry with unparseable hours",
			zap.Int("line", rec.Line), zap.String("hours", tok))
	}

	for _, e := range entries {
		a.total++
		for _, name := range a.classifier.Classify(e) {
			a.violations[name] = append(a.violations[name], models.NewViolation(name, rec.Date, e))
		}
	}
	a.logger.Debug("record analyzed",
		zap.Int("line", rec.Line),
		zap.Int("entries", len(entries)))
}

// Result finalizes the counts. The returned value shares nothing with the
// Analyzer.
func (a *Analyzer) Result() models.AnalysisResult {
	res := models.AnalysisResult{
		RunID:        a.runID,
		Source:       a.source,
		TotalEntries: a.total,
		Records:      a.records,
		Skipped:      a.skipped,
		Rules:        make([]models.RuleSummary, 0, len(rules)),
	}
	for _, r := range rules {
		v := append([]models.ViolationRecord(nil), a.violations[r.name]...)
		res.Rules = append(res.Rules, models.RuleSummary{
			Rule:       r.name,
			Title:      r.title,
			Count:      len(v),
			Percent:    models.Percent(len(v), a.total),
			Violations: v,
		})
	}
	return res
}

// Analyze reads src to completion and returns the result. Any read error
// aborts the run without a result.
func Analyze(ctx context.Context, src RecordSource, p Patterns, opts ...Option) (models.AnalysisResult, error) {
	a := New(p, opts...)
	for {
		if err := ctx.Err(); err != nil {
			return models.AnalysisResult{}, err
		}
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.AnalysisResult{}, fmt.Errorf("reading records: %w", err)
		}
		a.Add(rec)
	}

	res := a.Result()
	a.logger.Info("analysis complete",
		zap.String("run_id", res.RunID),
		zap.Int("records", res.Records),
		zap.Int("entries", res.TotalEntries),
		zap.Int("skipped", res.Skipped))
	return res, nil
}
