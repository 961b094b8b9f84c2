package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-content-validator/internal/models"
	"github.com/trip-content-validator/internal/report"
	"github.com/trip-content-validator/internal/repository"
)

// runService is the concrete implementation of RunService
type runService struct {
	runRepo           repository.RunRepository
	validationService ValidationService
	log               zerolog.Logger
	ctx               context.Context
	cancel            context.CancelFunc
	wg                sync.WaitGroup
	running           bool
	mu                sync.Mutex
	// Semaphore: buffered channel limiting concurrent run processing
	sem chan struct{}
}

// newRunService creates a new RunService with a bounded worker pool.
// Run processing is I/O-bound (reading content files), so the pool is
// larger than the CPU count.
func newRunService(runRepo repository.RunRepository, log zerolog.Logger) *runService {
	maxWorkers := runtime.NumCPU() * 2
	if maxWorkers < 4 {
		maxWorkers = 4
	}
	if maxWorkers > 16 {
		maxWorkers = 16
	}

	log.Info().Int("max_workers", maxWorkers).Msg("Initializing run service worker pool")

	return &runService{
		runRepo: runRepo,
		log:     log.With().Str("service", "run").Logger(),
		sem:     make(chan struct{}, maxWorkers),
	}
}

// SetValidationService sets the validation service for run processing
func (s *runService) SetValidationService(validationService ValidationService) {
	s.validationService = validationService
}

// StartProcessor starts the background run processor
func (s *runService) StartProcessor(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.log.Info().Msg("Run processor started")

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.log.Info().Msg("Run processor stopping")
			return
		case <-ticker.C:
			s.processPendingRuns()
		}
	}
}

// StopProcessor stops the background run processor
func (s *runService) StopProcessor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.wg.Wait()
	s.running = false
	s.log.Info().Msg("Run processor stopped")
}

// processPendingRuns dispatches all pending runs to the worker pool
func (s *runService) processPendingRuns() {
	runs, err := s.runRepo.GetPendingRuns(s.ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to get pending runs")
		return
	}

	for _, run := range runs {
		// Acquire a semaphore slot; blocks when all workers are busy
		select {
		case s.sem <- struct{}{}:
		case <-s.ctx.Done():
			return
		}

		// Mark as processing atomically so only one worker picks it up
		marked, err := s.runRepo.MarkRunAsProcessing(s.ctx, run.ID)
		if err != nil || !marked {
			<-s.sem
			continue
		}

		s.wg.Add(1)
		go func(r *models.Run) {
			defer s.wg.Done()
			defer func() { <-s.sem }()

			defer func() {
				if rec := recover(); rec != nil {
					s.log.Error().
						Interface("panic", rec).
						Str("run_id", r.ID).
						Msg("Run processing panicked - recovered")
					r.Status = models.RunStatusFailed
					s.runRepo.Update(s.ctx, r)
				}
			}()
			s.processRun(r)
		}(run)
	}
}

// processRun processes a single run
func (s *runService) processRun(run *models.Run) {
	select {
	case <-s.ctx.Done():
		s.log.Warn().Str("run_id", run.ID).Msg("Run processing cancelled due to shutdown")
		return
	default:
	}

	s.log.Info().Str("run_id", run.ID).Msg("Processing validation run")

	if s.validationService == nil {
		return
	}
	if err := s.validationService.ProcessRun(s.ctx, run); err != nil {
		s.log.Error().Err(err).Str("run_id", run.ID).Msg("Run processing failed")
	}
}

// GetRun retrieves a run by ID with a preview of its findings
func (s *runService) GetRun(ctx context.Context, id string) (*models.RunResponse, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}

	// Preview the first 100 findings
	findings, err := s.runRepo.GetFindings(ctx, id, 100)
	if err != nil {
		s.log.Error().Err(err).Str("run_id", id).Msg("Failed to get run findings")
	}

	return &models.RunResponse{
		Run:          *run,
		Findings:     findings,
		FindingCount: len(findings),
	}, nil
}

// GetRunByIdempotencyKey retrieves a run by idempotency key
func (s *runService) GetRunByIdempotencyKey(ctx context.Context, key string) (*models.Run, error) {
	return s.runRepo.GetByIdempotencyKey(ctx, key)
}

// GetRunFindings retrieves findings for a run
func (s *runService) GetRunFindings(ctx context.Context, id string, limit int) ([]models.Finding, error) {
	return s.runRepo.GetFindings(ctx, id, limit)
}

// GetRunReport renders the persisted results of a run as a text report.
// The report is generated on demand, never stored.
func (s *runService) GetRunReport(ctx context.Context, id string) (string, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if run == nil {
		return "", ErrRunNotFound
	}

	results, err := s.runRepo.GetResults(ctx, id)
	if err != nil {
		return "", err
	}

	return report.Generate(results), nil
}

// CountRuns returns the total number of validation runs
func (s *runService) CountRuns(ctx context.Context) (int, error) {
	return s.runRepo.Count(ctx)
}
