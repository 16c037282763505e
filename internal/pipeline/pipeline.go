package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/drakos74/tumor-knn/infra/config"
	"github.com/drakos74/tumor-knn/internal/dataset"
	"github.com/drakos74/tumor-knn/internal/math/ml"
	"github.com/drakos74/tumor-knn/internal/metrics"
	"github.com/drakos74/tumor-knn/internal/model"
	"github.com/drakos74/tumor-knn/internal/report"
	"github.com/drakos74/tumor-knn/internal/storage"
	"github.com/drakos74/tumor-knn/internal/storage/file/json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	boundsLabel     = "bounds"
	evaluationLabel = "evaluation"
)

// Result is the outcome of a run.
type Result struct {
	Run         string          `json:"run"`
	Bounds      ml.Bounds       `json:"bounds"`
	Evaluations []ml.Evaluation `json:"evaluations"`
}

// Pipeline evaluates the configured k values over a training and a test set.
type Pipeline struct {
	cfg     config.Config
	out     io.Writer
	shard   storage.Shard
	metrics *metrics.Metrics
	run     string
	logger  zerolog.Logger
}

// New creates a new pipeline that writes its report to the given writer.
func New(cfg config.Config, out io.Writer) *Pipeline {
	shard := storage.VoidShard()
	if cfg.ReportDir != "" {
		shard = json.BlobShard(cfg.ReportDir)
	}
	run := uuid.New().String()
	return &Pipeline{
		cfg:     cfg,
		out:     out,
		shard:   shard,
		metrics: metrics.New(),
		run:     run,
		logger:  log.With().Str("run", run).Logger(),
	}
}

// WithShard overrides the storage of the evaluation summaries.
func (p *Pipeline) WithShard(shard storage.Shard) *Pipeline {
	p.shard = shard
	return p
}

// Run executes the whole evaluation.
// Any error aborts the run.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	result := Result{
		Run:         p.run,
		Evaluations: make([]ml.Evaluation, 0, len(p.cfg.K)),
	}

	train, err := dataset.Load(p.cfg.Train)
	if err != nil {
		return result, fmt.Errorf("could not load training set: %w", err)
	}
	test, err := dataset.Load(p.cfg.Test)
	if err != nil {
		return result, fmt.Errorf("could not load test set: %w", err)
	}
	p.metrics.Dataset("train", len(train))
	p.metrics.Dataset("test", len(test))

	// bounds come from the training set only and apply to both sets
	bounds, err := ml.ComputeBounds(train)
	if err != nil {
		return result, fmt.Errorf("could not normalize training set: %w", err)
	}
	result.Bounds = bounds
	train = bounds.NormalizeAll(train)
	test = bounds.NormalizeAll(test)

	persistence, err := p.shard(p.run)
	if err != nil {
		return result, fmt.Errorf("could not create report storage: %w", err)
	}
	if err := persistence.Store(storage.Key{Label: boundsLabel}, bounds); err != nil {
		return result, fmt.Errorf("could not store bounds: %w", err)
	}

	for _, k := range p.cfg.K {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("run interrupted before k=%d: %w", k, err)
		}
		evaluation, err := p.evaluate(ctx, persistence, train, test, k)
		if err != nil {
			return result, err
		}
		result.Evaluations = append(result.Evaluations, evaluation)
	}

	report.Summary(p.out, result.Evaluations)

	if p.cfg.MetricsFile != "" {
		if err := p.metrics.WriteToTextfile(p.cfg.MetricsFile); err != nil {
			return result, err
		}
		p.logger.Info().Str("path", p.cfg.MetricsFile).Msg("wrote metrics")
	}
	return result, nil
}

func (p *Pipeline) evaluate(ctx context.Context, persistence storage.Persistence, train, test []model.Record, k int) (ml.Evaluation, error) {
	evaluation, err := ml.Evaluate(ctx, train, test, k)
	if err != nil {
		return evaluation, fmt.Errorf("could not evaluate k=%d: %w", k, err)
	}

	path := report.OutputPath(p.cfg.Output, k)
	if err := report.SavePredictions(path, evaluation.Predictions); err != nil {
		return evaluation, fmt.Errorf("could not save predictions for k=%d: %w", k, err)
	}

	report.Evaluation(p.out, evaluation)
	p.metrics.Observe(evaluation)

	if err := persistence.Store(storage.Key{Label: evaluationLabel, K: k}, evaluation); err != nil {
		return evaluation, fmt.Errorf("could not store evaluation for k=%d: %w", k, err)
	}

	p.logger.Info().
		Int("k", k).
		Str("predictions", path).
		Int("tp", evaluation.Confusion.TP).
		Int("fp", evaluation.Confusion.FP).
		Int("tn", evaluation.Confusion.TN).
		Int("fn", evaluation.Confusion.FN).
		Str("accuracy", evaluation.Metrics.Accuracy.String()).
		Msg("evaluated")
	return evaluation, nil
}
