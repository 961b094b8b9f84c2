package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/trip-content-validator/internal/config"
	"github.com/trip-content-validator/internal/models"
	"github.com/trip-content-validator/internal/repository"
)

// ErrRunNotFound is returned when a validation run ID does not exist
var ErrRunNotFound = errors.New("validation run not found")

// ValidationService defines the interface for validation operations
type ValidationService interface {
	CreateRun(ctx context.Context, req *models.RunRequest) (*models.Run, error)
	ProcessRun(ctx context.Context, run *models.Run) error
	ValidateDocument(id, raw string) models.ValidationResult
}

// RunService defines the interface for run management
type RunService interface {
	StartProcessor(ctx context.Context)
	StopProcessor()
	GetRun(ctx context.Context, id string) (*models.RunResponse, error)
	GetRunByIdempotencyKey(ctx context.Context, key string) (*models.Run, error)
	GetRunFindings(ctx context.Context, id string, limit int) ([]models.Finding, error)
	GetRunReport(ctx context.Context, id string) (string, error)
	CountRuns(ctx context.Context) (int, error)
	SetValidationService(validationService ValidationService)
}

// Services holds all service interfaces
type Services struct {
	Validation ValidationService
	Run        RunService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	runSvc := newRunService(repos.Run, log)
	validationSvc := newValidationService(repos, cfg, log)

	// Wire up run processor to the validation service
	runSvc.SetValidationService(validationSvc)

	return &Services{
		Validation: validationSvc,
		Run:        runSvc,
	}
}
