package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/trip-content-validator/internal/database"
	"github.com/trip-content-validator/internal/models"
)

// runRepo is the concrete implementation of RunRepository
type runRepo struct {
	db *database.DB
}

// NewRunRepo creates a new run repository
func NewRunRepo(db *database.DB) RunRepository {
	return &runRepo{db: db}
}

// Create inserts a new validation run
func (r *runRepo) Create(ctx context.Context, run *models.Run) error {
	query := `
		INSERT INTO validation_runs (id, status, content_dir, idempotency_key, total_trips,
			valid_count, invalid_count, warned_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.Status, run.ContentDir, nullString(run.IdempotencyKey),
		run.TotalTrips, run.ValidCount, run.InvalidCount, run.WarnedCount, run.CreatedAt,
	)
	return err
}

// Update updates run status and counters
func (r *runRepo) Update(ctx context.Context, run *models.Run) error {
	query := `
		UPDATE validation_runs SET
			status = $1, total_trips = $2, valid_count = $3, invalid_count = $4,
			warned_count = $5, duration_ms = $6, started_at = $7, completed_at = $8
		WHERE id = $9
	`
	_, err := r.db.ExecContext(ctx, query,
		run.Status, run.TotalTrips, run.ValidCount, run.InvalidCount,
		run.WarnedCount, run.DurationMs, run.StartedAt, run.CompletedAt, run.ID,
	)
	return err
}

// GetByID retrieves a run by ID
func (r *runRepo) GetByID(ctx context.Context, id string) (*models.Run, error) {
	query := `
		SELECT id, status, content_dir, idempotency_key, total_trips, valid_count,
			invalid_count, warned_count, duration_ms, created_at, started_at, completed_at
		FROM validation_runs WHERE id = $1
	`
	return r.scanRun(r.db.QueryRowContext(ctx, query, id))
}

// GetByIdempotencyKey retrieves a run by idempotency key
func (r *runRepo) GetByIdempotencyKey(ctx context.Context, key string) (*models.Run, error) {
	query := `
		SELECT id, status, content_dir, idempotency_key, total_trips, valid_count,
			invalid_count, warned_count, duration_ms, created_at, started_at, completed_at
		FROM validation_runs WHERE idempotency_key = $1
	`
	return r.scanRun(r.db.QueryRowContext(ctx, query, key))
}

func (r *runRepo) scanRun(row *sql.Row) (*models.Run, error) {
	var run models.Run
	var idempotencyKey sql.NullString
	var startedAt, completedAt sql.NullTime

	err := row.Scan(
		&run.ID, &run.Status, &run.ContentDir, &idempotencyKey,
		&run.TotalTrips, &run.ValidCount, &run.InvalidCount, &run.WarnedCount,
		&run.DurationMs, &run.CreatedAt, &startedAt, &completedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	run.IdempotencyKey = idempotencyKey.String
	if startedAt.Valid {
		run.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}

	return &run, nil
}

// GetPendingRuns retrieves all pending runs
func (r *runRepo) GetPendingRuns(ctx context.Context) ([]*models.Run, error) {
	query := `
		SELECT id, content_dir, created_at
		FROM validation_runs WHERE status = 'pending'
		ORDER BY created_at
		FOR UPDATE SKIP LOCKED
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		var run models.Run
		if err := rows.Scan(&run.ID, &run.ContentDir, &run.CreatedAt); err != nil {
			continue
		}
		run.Status = models.RunStatusPending
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// MarkRunAsProcessing atomically marks a pending run as processing
func (r *runRepo) MarkRunAsProcessing(ctx context.Context, runID string) (bool, error) {
	query := `
		UPDATE validation_runs SET status = 'processing', started_at = $1
		WHERE id = $2 AND status = 'pending'
	`
	result, err := r.db.ExecContext(ctx, query, time.Now(), runID)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// AddResults persists one row per trip plus one row per finding, using the
// COPY protocol for the findings since a broken collection can produce
// thousands of rows in one run
func (r *runRepo) AddResults(ctx context.Context, runID string, results []models.ValidationResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	resultStmt, err := tx.PrepareContext(ctx, pq.CopyIn("validation_results",
		"run_id", "position", "trip_id", "is_valid",
	))
	if err != nil {
		return err
	}
	for i, res := range results {
		if _, err := resultStmt.ExecContext(ctx, runID, i, res.TripID, res.IsValid); err != nil {
			resultStmt.Close()
			return err
		}
	}
	if _, err := resultStmt.ExecContext(ctx); err != nil {
		resultStmt.Close()
		return err
	}
	if err := resultStmt.Close(); err != nil {
		return err
	}

	findingStmt, err := tx.PrepareContext(ctx, pq.CopyIn("validation_findings",
		"run_id", "trip_id", "severity", "position", "message",
	))
	if err != nil {
		return err
	}
	for _, res := range results {
		for i, msg := range res.Errors {
			if _, err := findingStmt.ExecContext(ctx, runID, res.TripID, models.SeverityError, i, msg); err != nil {
				findingStmt.Close()
				return err
			}
		}
		for i, msg := range res.Warnings {
			if _, err := findingStmt.ExecContext(ctx, runID, res.TripID, models.SeverityWarning, i, msg); err != nil {
				findingStmt.Close()
				return err
			}
		}
	}
	if _, err := findingStmt.ExecContext(ctx); err != nil {
		findingStmt.Close()
		return err
	}
	if err := findingStmt.Close(); err != nil {
		return err
	}

	return tx.Commit()
}

// GetResults reassembles the per-trip results of a run in their original
// input order, with each trip's errors and warnings in emission order
func (r *runRepo) GetResults(ctx context.Context, runID string) ([]models.ValidationResult, error) {
	query := `SELECT position, trip_id, is_valid FROM validation_results WHERE run_id = $1 ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.ValidationResult
	index := make(map[string]int)
	for rows.Next() {
		var pos int
		var res models.ValidationResult
		if err := rows.Scan(&pos, &res.TripID, &res.IsValid); err != nil {
			return nil, err
		}
		index[res.TripID] = len(results)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	findings, err := r.GetFindings(ctx, runID, 0)
	if err != nil {
		return nil, err
	}
	for _, f := range findings {
		i, ok := index[f.TripID]
		if !ok {
			continue
		}
		if f.Severity == models.SeverityError {
			results[i].Errors = append(results[i].Errors, f.Message)
		} else {
			results[i].Warnings = append(results[i].Warnings, f.Message)
		}
	}

	return results, nil
}

// GetFindings retrieves findings for a run, errors before warnings per trip
func (r *runRepo) GetFindings(ctx context.Context, runID string, limit int) ([]models.Finding, error) {
	query := `
		SELECT trip_id, severity, position, message
		FROM validation_findings WHERE run_id = $1
		ORDER BY trip_id, severity, position
	`
	if limit > 0 {
		query += " LIMIT $2"
	}

	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query, runID, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query, runID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var findings []models.Finding
	for rows.Next() {
		var f models.Finding
		if err := rows.Scan(&f.TripID, &f.Severity, &f.Position, &f.Message); err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}

	return findings, rows.Err()
}

// Count returns the total number of validation runs
func (r *runRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM validation_runs`).Scan(&count)
	return count, err
}

// nullString converts an empty string to a SQL NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
