package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trip-content-validator/internal/config"
	"github.com/trip-content-validator/internal/content"
	"github.com/trip-content-validator/internal/models"
	"github.com/trip-content-validator/internal/repository"
	"github.com/trip-content-validator/internal/runner"
)

// validationService is the concrete implementation of ValidationService
type validationService struct {
	repos  *repository.Repositories
	runner *runner.Runner
	cfg    *config.Config
	log    zerolog.Logger
}

// newValidationService creates a new ValidationService
func newValidationService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *validationService {
	return &validationService{
		repos:  repos,
		runner: runner.New(log),
		cfg:    cfg,
		log:    log.With().Str("service", "validation").Logger(),
	}
}

// CreateRun creates a new validation run over the content directory
func (s *validationService) CreateRun(ctx context.Context, req *models.RunRequest) (*models.Run, error) {
	contentDir := req.ContentDir
	if contentDir == "" {
		contentDir = s.cfg.Content.Dir
	}

	run := &models.Run{
		ID:             uuid.New().String(),
		Status:         models.RunStatusPending,
		ContentDir:     contentDir,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      time.Now(),
	}

	if err := s.repos.Run.Create(ctx, run); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("run_id", run.ID).
		Str("content_dir", run.ContentDir).
		Msg("Validation run created")

	return run, nil
}

// ProcessRun validates every trip under the run's content directory and
// persists the per-trip results. Validation findings never fail the run;
// only a broken content source or persistence failure does.
func (s *validationService) ProcessRun(ctx context.Context, run *models.Run) error {
	startTime := time.Now()
	// Pending runs come back from the queue without their started_at;
	// carry it in memory so the final full-row update keeps it
	if run.StartedAt == nil {
		run.StartedAt = &startTime
	}

	store := content.NewFileStore(run.ContentDir, s.log)
	results := s.runner.Run(ctx, store)
	summary := models.Summarize(results)

	run.TotalTrips = summary.Total
	run.ValidCount = summary.Valid
	run.InvalidCount = summary.Invalid
	run.WarnedCount = summary.WithWarnings
	run.DurationMs = time.Since(startTime).Milliseconds()
	completedAt := time.Now()
	run.CompletedAt = &completedAt

	sourceFailed := len(results) == 1 && results[0].TripID == runner.CollectionID
	if sourceFailed {
		run.Status = models.RunStatusFailed
	} else {
		run.Status = models.RunStatusCompleted
	}

	if err := s.repos.Run.AddResults(ctx, run.ID, results); err != nil {
		run.Status = models.RunStatusFailed
		s.repos.Run.Update(ctx, run)
		s.log.Error().Err(err).Str("run_id", run.ID).Msg("Failed to persist validation results")
		return err
	}

	if err := s.repos.Run.Update(ctx, run); err != nil {
		s.log.Error().Err(err).Str("run_id", run.ID).Msg("Failed to update validation run")
		return err
	}

	s.log.Info().
		Str("run_id", run.ID).
		Int("total", run.TotalTrips).
		Int("valid", run.ValidCount).
		Int("invalid", run.InvalidCount).
		Int("with_warnings", run.WarnedCount).
		Int64("duration_ms", run.DurationMs).
		Msg("Validation run completed")

	return nil
}

// ValidateDocument validates a single raw document synchronously without
// touching the run store
func (s *validationService) ValidateDocument(id, raw string) models.ValidationResult {
	return s.runner.ValidateDocument(content.Document{ID: id, Raw: raw})
}
