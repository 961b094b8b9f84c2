package models

import (
	"time"
)

// RunStatus represents the status of a validation run
type RunStatus string

const (
	RunStatusPending    RunStatus = "pending"
	RunStatusProcessing RunStatus = "processing"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// Run represents one validation pass over a content directory
type Run struct {
	ID             string     `json:"run_id" db:"id"`
	Status         RunStatus  `json:"status" db:"status"`
	ContentDir     string     `json:"content_dir" db:"content_dir"`
	IdempotencyKey string     `json:"idempotency_key,omitempty" db:"idempotency_key"`
	TotalTrips     int        `json:"total_trips" db:"total_trips"`
	ValidCount     int        `json:"valid" db:"valid_count"`
	InvalidCount   int        `json:"invalid" db:"invalid_count"`
	WarnedCount    int        `json:"with_warnings" db:"warned_count"`
	DurationMs     int64      `json:"duration_ms,omitempty" db:"duration_ms"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	StartedAt      *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// RunResponse is the API response for run status
type RunResponse struct {
	Run
	Findings     []Finding `json:"findings,omitempty"`
	FindingCount int       `json:"finding_count,omitempty"`
}

// RunRequest represents a validation run request
type RunRequest struct {
	ContentDir     string `json:"content_dir,omitempty"`
	IdempotencyKey string `json:"-"` // From header
}
