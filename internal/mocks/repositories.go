package mocks

import (
	"context"
	"sync"

	"github.com/trip-content-validator/internal/models"
	"github.com/trip-content-validator/internal/repository"
)

// MockRunRepository is an in-memory mock implementation of RunRepository
type MockRunRepository struct {
	mu          sync.Mutex
	Runs        map[string]*models.Run
	Results     map[string][]models.ValidationResult
	CreateError error
	UpdateError error
}

// Verify interface compliance
var _ repository.RunRepository = (*MockRunRepository)(nil)

func NewMockRunRepository() *MockRunRepository {
	return &MockRunRepository{
		Runs:    make(map[string]*models.Run),
		Results: make(map[string][]models.ValidationResult),
	}
}

func (m *MockRunRepository) Create(ctx context.Context, run *models.Run) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *run
	m.Runs[run.ID] = &copied
	return nil
}

func (m *MockRunRepository) Update(ctx context.Context, run *models.Run) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *run
	m.Runs[run.ID] = &copied
	return nil
}

func (m *MockRunRepository) GetByID(ctx context.Context, id string) (*models.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.Runs[id]
	if !ok {
		return nil, nil
	}
	copied := *run
	return &copied, nil
}

func (m *MockRunRepository) GetByIdempotencyKey(ctx context.Context, key string) (*models.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, run := range m.Runs {
		if run.IdempotencyKey == key {
			copied := *run
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockRunRepository) GetPendingRuns(ctx context.Context) ([]*models.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var pending []*models.Run
	for _, run := range m.Runs {
		if run.Status == models.RunStatusPending {
			copied := *run
			pending = append(pending, &copied)
		}
	}
	return pending, nil
}

func (m *MockRunRepository) MarkRunAsProcessing(ctx context.Context, runID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.Runs[runID]
	if !ok || run.Status != models.RunStatusPending {
		return false, nil
	}
	run.Status = models.RunStatusProcessing
	return true, nil
}

func (m *MockRunRepository) AddResults(ctx context.Context, runID string, results []models.ValidationResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results[runID] = append(m.Results[runID], results...)
	return nil
}

func (m *MockRunRepository) GetResults(ctx context.Context, runID string) ([]models.ValidationResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Results[runID], nil
}

func (m *MockRunRepository) GetFindings(ctx context.Context, runID string, limit int) ([]models.Finding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var findings []models.Finding
	for _, res := range m.Results[runID] {
		for i, msg := range res.Errors {
			findings = append(findings, models.Finding{
				TripID: res.TripID, Severity: models.SeverityError, Message: msg, Position: i,
			})
		}
		for i, msg := range res.Warnings {
			findings = append(findings, models.Finding{
				TripID: res.TripID, Severity: models.SeverityWarning, Message: msg, Position: i,
			})
		}
	}
	if limit > 0 && len(findings) > limit {
		findings = findings[:limit]
	}
	return findings, nil
}

func (m *MockRunRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Runs), nil
}
