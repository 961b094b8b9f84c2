package mocks

import (
	"context"

	"github.com/trip-content-validator/internal/models"
	"github.com/trip-content-validator/internal/service"
)

// MockValidationService is a mock implementation of ValidationService
type MockValidationService struct {
	CreateRunFunc   func(ctx context.Context, req *models.RunRequest) (*models.Run, error)
	ProcessFunc     func(ctx context.Context, run *models.Run) error
	ValidateDocFunc func(id, raw string) models.ValidationResult
	CreatedRuns     []*models.Run
	ProcessedRuns   []*models.Run
	ValidatedDocIDs []string
}

// Verify interface compliance
var _ service.ValidationService = (*MockValidationService)(nil)

func NewMockValidationService() *MockValidationService {
	return &MockValidationService{
		CreatedRuns:   make([]*models.Run, 0),
		ProcessedRuns: make([]*models.Run, 0),
	}
}

func (m *MockValidationService) CreateRun(ctx context.Context, req *models.RunRequest) (*models.Run, error) {
	if m.CreateRunFunc != nil {
		return m.CreateRunFunc(ctx, req)
	}
	run := &models.Run{
		ID:         "test-run-id",
		Status:     models.RunStatusPending,
		ContentDir: req.ContentDir,
	}
	m.CreatedRuns = append(m.CreatedRuns, run)
	return run, nil
}

func (m *MockValidationService) ProcessRun(ctx context.Context, run *models.Run) error {
	if m.ProcessFunc != nil {
		return m.ProcessFunc(ctx, run)
	}
	m.ProcessedRuns = append(m.ProcessedRuns, run)
	run.Status = models.RunStatusCompleted
	return nil
}

func (m *MockValidationService) ValidateDocument(id, raw string) models.ValidationResult {
	m.ValidatedDocIDs = append(m.ValidatedDocIDs, id)
	if m.ValidateDocFunc != nil {
		return m.ValidateDocFunc(id, raw)
	}
	return models.ValidationResult{TripID: id, IsValid: true}
}

// MockRunService is a mock implementation of RunService
type MockRunService struct {
	Runs        map[string]*models.RunResponse
	ByIdemKey   map[string]*models.Run
	Findings    map[string][]models.Finding
	Reports     map[string]string
	RunCount    int
	GetRunError error
}

// Verify interface compliance
var _ service.RunService = (*MockRunService)(nil)

func NewMockRunService() *MockRunService {
	return &MockRunService{
		Runs:      make(map[string]*models.RunResponse),
		ByIdemKey: make(map[string]*models.Run),
		Findings:  make(map[string][]models.Finding),
		Reports:   make(map[string]string),
	}
}

func (m *MockRunService) StartProcessor(ctx context.Context) {}

func (m *MockRunService) StopProcessor() {}

func (m *MockRunService) SetValidationService(validationService service.ValidationService) {}

func (m *MockRunService) GetRun(ctx context.Context, id string) (*models.RunResponse, error) {
	if m.GetRunError != nil {
		return nil, m.GetRunError
	}
	return m.Runs[id], nil
}

func (m *MockRunService) GetRunByIdempotencyKey(ctx context.Context, key string) (*models.Run, error) {
	return m.ByIdemKey[key], nil
}

func (m *MockRunService) GetRunFindings(ctx context.Context, id string, limit int) ([]models.Finding, error) {
	findings := m.Findings[id]
	if limit > 0 && len(findings) > limit {
		findings = findings[:limit]
	}
	return findings, nil
}

func (m *MockRunService) GetRunReport(ctx context.Context, id string) (string, error) {
	text, ok := m.Reports[id]
	if !ok {
		return "", service.ErrRunNotFound
	}
	return text, nil
}

func (m *MockRunService) CountRuns(ctx context.Context) (int, error) {
	return m.RunCount, nil
}
