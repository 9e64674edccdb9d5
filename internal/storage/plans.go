package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/claude/planforge/internal/models"
)

// InsertPlan archives one generated plan. Returns true if inserted, false if
// a plan with the same id already exists.
func (db *DB) InsertPlan(ctx context.Context, row models.PlanRow) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO plans (id, profile_hash, week_number, split_id, fallback, plan_json, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT DO NOTHING`,
		row.ID, row.ProfileHash, row.WeekNumber, row.SplitID, row.Fallback, row.PlanJSON, row.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("inserting plan: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListPlans retrieves archived plans in a time range, newest first.
func (db *DB) ListPlans(ctx context.Context, start, end time.Time, limit int) ([]models.PlanRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, profile_hash, week_number, split_id, fallback, plan_json, created_at
		 FROM plans
		 WHERE created_at >= $1 AND created_at < $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var result []models.PlanRow
	for rows.Next() {
		var p models.PlanRow
		if err := rows.Scan(&p.ID, &p.ProfileHash, &p.WeekNumber, &p.SplitID, &p.Fallback, &p.PlanJSON, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// GetPlan retrieves a single archived plan by ID, or nil when absent.
func (db *DB) GetPlan(ctx context.Context, id uuid.UUID) (*models.PlanRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, profile_hash, week_number, split_id, fallback, plan_json, created_at
		 FROM plans
		 WHERE id = $1`,
		id)

	var p models.PlanRow
	err := row.Scan(&p.ID, &p.ProfileHash, &p.WeekNumber, &p.SplitID, &p.Fallback, &p.PlanJSON, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying plan: %w", err)
	}
	return &p, nil
}

// LatestPlanByHash returns the most recent archived plan for a cache key, or
// nil when the key has never been archived.
func (db *DB) LatestPlanByHash(ctx context.Context, profileHash string) (*models.PlanRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, profile_hash, week_number, split_id, fallback, plan_json, created_at
		 FROM plans
		 WHERE profile_hash = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		profileHash)
	if err != nil {
		return nil, fmt.Errorf("querying plan by hash: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var p models.PlanRow
	if err := rows.Scan(&p.ID, &p.ProfileHash, &p.WeekNumber, &p.SplitID, &p.Fallback, &p.PlanJSON, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	return &p, nil
}
