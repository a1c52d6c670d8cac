package comparison

import (
	"context"
	"time"

	"otc-compare/core/reconcile"

	"go.uber.org/zap"
)

// Recorder persists a finished batch. The history feature implements it.
type Recorder interface {
	SaveRun(ctx context.Context, runID string, startedAt time.Time, sbGold *float64, records []reconcile.Comparison) error
}

// BatchResult is the response of a full-catalog comparison.
type BatchResult struct {
	RunID       string                 `json:"run_id"`
	StartedAt   time.Time              `json:"started_at"`
	SBGoldPrice *float64               `json:"sb_gold_price"`
	Summary     reconcile.Summary      `json:"summary"`
	Records     []reconcile.Comparison `json:"records"`
	// Error is set when the batch deadline cut the run short.
	Error string `json:"error,omitempty"`
}

// Service serves comparisons from a shared catalog snapshot.
type Service struct {
	cache    *reconcile.SnapshotCache
	recorder Recorder
	logger   *zap.Logger
}

// NewService creates a comparison service. Catalog snapshots are reused for ttl.
func NewService(source reconcile.Source, opts reconcile.Options, ttl time.Duration, logger *zap.Logger) *Service {
	build := func(ctx context.Context) *reconcile.Run {
		return reconcile.NewRun(ctx, source, opts, logger)
	}
	return &Service{
		cache:  reconcile.NewSnapshotCache(ttl, build),
		logger: logger,
	}
}

// WithRecorder makes batch runs persist through r.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// CompareItem compares a single item by name.
func (s *Service) CompareItem(ctx context.Context, name string, manualSBPrice *float64) (*reconcile.Comparison, error) {
	return s.cache.Get(ctx).CompareItem(ctx, name, manualSBPrice)
}

// CompareAll compares every catalog item of the current snapshot.
// A deadline error is reported in the result, not returned.
func (s *Service) CompareAll(ctx context.Context) *BatchResult {
	run := s.cache.Get(ctx)
	records, err := run.CompareAll(ctx)

	result := &BatchResult{
		RunID:     run.ID,
		StartedAt: run.StartedAt,
		Summary:   reconcile.Summarize(records),
		Records:   records,
	}
	if sb, sbErr := run.SBGoldPrice(); sbErr == nil {
		result.SBGoldPrice = &sb
	}
	if err != nil {
		s.logger.Warn("Batch comparison incomplete", zap.String("run_id", run.ID), zap.Error(err))
		result.Error = err.Error()
	}

	if s.recorder != nil {
		if err := s.recorder.SaveRun(ctx, run.ID, run.StartedAt, result.SBGoldPrice, records); err != nil {
			s.logger.Warn("Failed to record batch run", zap.String("run_id", run.ID), zap.Error(err))
		}
	}

	return result
}

// Refresh drops the cached snapshot so the next request refetches both catalogs.
func (s *Service) Refresh() {
	s.cache.Invalidate()
}
