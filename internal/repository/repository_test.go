package repository_test

import (
	"context"
	"testing"

	"github.com/trip-content-validator/internal/mocks"
	"github.com/trip-content-validator/internal/models"
)

func TestMockRunRepository_CreateAndGet(t *testing.T) {
	repo := mocks.NewMockRunRepository()
	ctx := context.Background()

	run := &models.Run{ID: "run-1", Status: models.RunStatusPending, ContentDir: "./content/trips"}
	if err := repo.Create(ctx, run); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored, err := repo.GetByID(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored == nil || stored.ID != "run-1" {
		t.Fatalf("Expected stored run, got %v", stored)
	}

	// The stored copy is independent of the caller's value
	run.Status = models.RunStatusFailed
	stored, _ = repo.GetByID(ctx, "run-1")
	if stored.Status != models.RunStatusPending {
		t.Errorf("Stored run mutated through caller reference: %q", stored.Status)
	}
}

func TestMockRunRepository_GetByIdempotencyKey(t *testing.T) {
	repo := mocks.NewMockRunRepository()
	ctx := context.Background()

	repo.Create(ctx, &models.Run{ID: "run-1", IdempotencyKey: "key-1"})

	run, err := repo.GetByIdempotencyKey(ctx, "key-1")
	if err != nil {
		t.Fatalf("GetByIdempotencyKey failed: %v", err)
	}
	if run == nil || run.ID != "run-1" {
		t.Errorf("Expected run-1, got %v", run)
	}

	run, err = repo.GetByIdempotencyKey(ctx, "unknown")
	if err != nil {
		t.Fatalf("GetByIdempotencyKey failed: %v", err)
	}
	if run != nil {
		t.Errorf("Expected nil for unknown key, got %v", run)
	}
}

func TestMockRunRepository_MarkRunAsProcessing(t *testing.T) {
	repo := mocks.NewMockRunRepository()
	ctx := context.Background()

	repo.Create(ctx, &models.Run{ID: "run-1", Status: models.RunStatusPending})

	marked, err := repo.MarkRunAsProcessing(ctx, "run-1")
	if err != nil {
		t.Fatalf("MarkRunAsProcessing failed: %v", err)
	}
	if !marked {
		t.Fatal("Expected pending run to be marked")
	}

	// A second claim on the same run must fail
	marked, err = repo.MarkRunAsProcessing(ctx, "run-1")
	if err != nil {
		t.Fatalf("MarkRunAsProcessing failed: %v", err)
	}
	if marked {
		t.Error("Run claimed twice")
	}

	marked, _ = repo.MarkRunAsProcessing(ctx, "missing")
	if marked {
		t.Error("Unknown run should not be claimable")
	}
}

func TestMockRunRepository_GetPendingRuns(t *testing.T) {
	repo := mocks.NewMockRunRepository()
	ctx := context.Background()

	repo.Create(ctx, &models.Run{ID: "run-1", Status: models.RunStatusPending})
	repo.Create(ctx, &models.Run{ID: "run-2", Status: models.RunStatusCompleted})
	repo.Create(ctx, &models.Run{ID: "run-3", Status: models.RunStatusPending})

	pending, err := repo.GetPendingRuns(ctx)
	if err != nil {
		t.Fatalf("GetPendingRuns failed: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("Expected 2 pending runs, got %d", len(pending))
	}
}

func TestMockRunRepository_ResultsRoundTrip(t *testing.T) {
	repo := mocks.NewMockRunRepository()
	ctx := context.Background()

	results := []models.ValidationResult{
		{TripID: "alps", IsValid: true},
		{TripID: "broken", IsValid: false, Errors: []string{"title: title is required"}},
	}

	if err := repo.AddResults(ctx, "run-1", results); err != nil {
		t.Fatalf("AddResults failed: %v", err)
	}

	stored, err := repo.GetResults(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetResults failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(stored))
	}
	if stored[0].TripID != "alps" || stored[1].TripID != "broken" {
		t.Errorf("Result order not preserved: %v", stored)
	}
}

func TestMockRunRepository_GetFindingsLimit(t *testing.T) {
	repo := mocks.NewMockRunRepository()
	ctx := context.Background()

	repo.AddResults(ctx, "run-1", []models.ValidationResult{
		{TripID: "broken", IsValid: false,
			Errors:   []string{"title: title is required", "description: description is required"},
			Warnings: []string{"headerImage: image path should start with /"}},
	})

	findings, err := repo.GetFindings(ctx, "run-1", 0)
	if err != nil {
		t.Fatalf("GetFindings failed: %v", err)
	}
	if len(findings) != 3 {
		t.Errorf("Expected 3 findings without limit, got %d", len(findings))
	}

	findings, err = repo.GetFindings(ctx, "run-1", 2)
	if err != nil {
		t.Fatalf("GetFindings failed: %v", err)
	}
	if len(findings) != 2 {
		t.Errorf("Expected 2 findings with limit, got %d", len(findings))
	}
	// Errors come before warnings
	if findings[0].Severity != models.SeverityError {
		t.Errorf("Expected error severity first, got %q", findings[0].Severity)
	}
}

func TestMockRunRepository_Count(t *testing.T) {
	repo := mocks.NewMockRunRepository()
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 runs, got %d", count)
	}

	repo.Create(ctx, &models.Run{ID: "run-1"})
	repo.Create(ctx, &models.Run{ID: "run-2"})

	count, _ = repo.Count(ctx)
	if count != 2 {
		t.Errorf("Expected 2 runs, got %d", count)
	}
}
