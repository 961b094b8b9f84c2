package repository

import (
	"context"

	"github.com/trip-content-validator/internal/database"
	"github.com/trip-content-validator/internal/models"
)

// RunRepository defines the interface for validation run persistence
type RunRepository interface {
	Create(ctx context.Context, run *models.Run) error
	Update(ctx context.Context, run *models.Run) error
	GetByID(ctx context.Context, id string) (*models.Run, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*models.Run, error)
	GetPendingRuns(ctx context.Context) ([]*models.Run, error)
	MarkRunAsProcessing(ctx context.Context, runID string) (bool, error)
	AddResults(ctx context.Context, runID string, results []models.ValidationResult) error
	GetResults(ctx context.Context, runID string) ([]models.ValidationResult, error)
	GetFindings(ctx context.Context, runID string, limit int) ([]models.Finding, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Run RunRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Run: NewRunRepo(db),
	}
}
