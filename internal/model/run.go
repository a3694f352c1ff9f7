package model

import "time"

// RunStatus tracks a processing run through its lifecycle.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// RunFailure records a single submission that could not be applied.
type RunFailure struct {
	SubmissionID string `json:"submission_id"`
	Shop         string `json:"shop,omitempty"`
	Error        string `json:"error"`
}

// RunSummary aggregates the outcome of a run.
type RunSummary struct {
	Scanned   int          `json:"scanned"`
	Processed int          `json:"processed"`
	Skipped   int          `json:"skipped"`
	Failed    int          `json:"failed"`
	DryRun    bool         `json:"dry_run,omitempty"`
	Failures  []RunFailure `json:"failures,omitempty"`
}

// Run is one invocation of the processor, single submission or batch.
type Run struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind"`
	Status     RunStatus   `json:"status"`
	Summary    *RunSummary `json:"summary,omitempty"`
	Error      string      `json:"error,omitempty"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt *time.Time  `json:"finished_at,omitempty"`
}
