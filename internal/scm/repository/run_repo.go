// Package repository persists simulation runs (Redis, transient) and
// sensitivity reports (Postgres, durable).
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/redis/go-redis/v9"
)

const (
	runKeyPrefix     = "scm:run:"
	runEventChannel  = "scm:run:events:"
	runTTL           = 24 * time.Hour
)

// RunRepository stores propagate() runs in Redis so a caller can fetch
// a run's result by id after submitting it, or subscribe for its
// completion event. The service layer saves a run before and after
// propagating it, within the same submitting request.
type RunRepository struct {
	client *redis.Client
}

func NewRunRepository(client *redis.Client) *RunRepository {
	return &RunRepository{client: client}
}

// Save upserts run under its RunID with the standard TTL and publishes
// a completion event on the run's channel when the status is terminal.
func (r *RunRepository) Save(ctx context.Context, run *domain.Run) error {
	run.UpdatedAt = time.Now()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = run.UpdatedAt
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("scm: marshal run: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.runKey(run.RunID), data, runTTL)
	if run.Status == domain.RunCompleted || run.Status == domain.RunFailed {
		pipe.Publish(ctx, r.eventChannel(run.RunID), data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("scm: save run: %w", err)
	}
	return nil
}

// Get retrieves a run by id, returning domain.ErrRunNotFound if absent
// or expired.
func (r *RunRepository) Get(ctx context.Context, runID string) (*domain.Run, error) {
	data, err := r.client.Get(ctx, r.runKey(runID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scm: get run: %w", err)
	}

	var run domain.Run
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("scm: unmarshal run: %w", err)
	}
	return &run, nil
}

// Subscribe returns a pub/sub handle that receives one message when
// runID transitions to a terminal state, for callers that want to await
// completion instead of polling Get.
func (r *RunRepository) Subscribe(ctx context.Context, runID string) *redis.PubSub {
	return r.client.Subscribe(ctx, r.eventChannel(runID))
}

func (r *RunRepository) runKey(runID string) string {
	return runKeyPrefix + runID
}

func (r *RunRepository) eventChannel(runID string) string {
	return runEventChannel + runID
}
