package domain

import "time"

// RunStatus is the lifecycle state of a persisted simulation run.
type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// Run is the persisted record of one propagate() invocation: the
// request that produced it, its lifecycle state, and (once completed)
// its result. Runs are transient — repository.RunRepository stores them
// in Redis with a TTL rather than durably.
type Run struct {
	RunID         string             `json:"runId"`
	ModelTitle    string             `json:"modelTitle,omitempty"`
	SampleCount   int                `json:"sampleCount"`
	Interventions map[string]float64 `json:"interventions,omitempty"`
	Status        RunStatus          `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Result        *PropagationResult `json:"result,omitempty"`
	Error         string             `json:"error,omitempty"`
}
