package models

import (
	"time"

	"github.com/google/uuid"
)

// PlanRow is one archived plan in the plans table. ProfileHash is the cache
// key of the (profile, week, catalog) triple; PlanJSON is the full
// WeeklyExercisePlan document.
type PlanRow struct {
	ID          uuid.UUID `json:"id"`
	ProfileHash string    `json:"profile_hash"`
	WeekNumber  int       `json:"week_number"`
	SplitID     string    `json:"split_id"`
	Fallback    bool      `json:"fallback"`
	PlanJSON    []byte    `json:"plan_json"`
	CreatedAt   time.Time `json:"created_at"`
}
