// Package service orchestrates the propagation and sensitivity engines
// behind run bookkeeping: assigning run ids, persisting results, and
// translating structural errors into the Run/Report record shape the
// http layer serves.
package service

import (
	"context"
	"time"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/logging"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/propagation"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/repository"
	"github.com/google/uuid"
)

// RunService drives propagate() calls and records their outcome.
type RunService struct {
	runs   *repository.RunRepository
	opts   propagation.Options
	logger logging.Logger
}

func NewRunService(runs *repository.RunRepository, opts propagation.Options, logger logging.Logger) *RunService {
	if logger == nil {
		logger = logging.Nop
	}
	return &RunService{runs: runs, opts: opts, logger: logger}
}

// Submit runs propagate() synchronously and stores the outcome — either
// a completed Run with its PropagationResult, or a failed Run carrying
// the structural error message. Submit itself only returns an error for
// infrastructure failures (Redis unreachable); a structural fault in
// the model is recorded on the Run, not returned.
func (s *RunService) Submit(ctx context.Context, model *domain.Model, interventions map[string]float64) (*domain.Run, error) {
	run := &domain.Run{
		RunID:         uuid.New().String(),
		ModelTitle:    model.Title,
		SampleCount:   s.opts.SampleCount,
		Interventions: interventions,
		Status:        domain.RunPending,
		CreatedAt:     time.Now(),
	}
	if err := s.runs.Save(ctx, run); err != nil {
		return nil, err
	}

	result, err := propagation.Propagate(model, interventions, s.opts)
	if err != nil {
		run.Status = domain.RunFailed
		run.Error = err.Error()
		s.logger.Warnw("propagation failed", "run", run.RunID, "error", err)
	} else {
		run.Status = domain.RunCompleted
		run.Result = result
	}

	if saveErr := s.runs.Save(ctx, run); saveErr != nil {
		return nil, saveErr
	}
	return run, nil
}

// Get fetches a previously submitted run.
func (s *RunService) Get(ctx context.Context, runID string) (*domain.Run, error) {
	return s.runs.Get(ctx, runID)
}
