package models

// WorkoutExercise is the final per-exercise prescription.
type WorkoutExercise struct {
	ExerciseID string `json:"exercise_id"`
	Name       string `json:"name"`
	Sets       int    `json:"sets"` // always >= 1
	// Reps is either a plain count ("12"), a range ("8-10"), or a duration
	// ("45-60 sec") for timed work.
	Reps        string `json:"reps"`
	RestSeconds int    `json:"rest_seconds"` // always >= 0
	Tempo       string `json:"tempo"`
	Notes       string `json:"notes,omitempty"`
}

// WorkoutDayExercises is one fully prescribed training day.
type WorkoutDayExercises struct {
	DayName           string                 `json:"day_name"`
	WorkoutType       string                 `json:"workout_type"`
	Exercises         []WorkoutExercise      `json:"exercises"`
	Counts            map[Classification]int `json:"counts"`
	Warmup            []string               `json:"warmup"`
	Cooldown          []string               `json:"cooldown"`
	CoachingTips      []string               `json:"coaching_tips,omitempty"`
	ProgressionNotes  string                 `json:"progression_notes,omitempty"`
	EstimatedCalories int                    `json:"estimated_calories,omitempty"`
}

// SplitAlternative is a runner-up split with its score, returned for
// explainability.
type SplitAlternative struct {
	SplitID   string  `json:"split_id"`
	SplitName string  `json:"split_name"`
	Score     float64 `json:"score"`
}

// ExclusionRecord pairs a removed exercise with the reasons it was removed.
type ExclusionRecord struct {
	ExerciseID string   `json:"exercise_id"`
	Name       string   `json:"name"`
	Reasons    []string `json:"reasons"`
}

// WeeklyExercisePlan is the engine's full output for one mesocycle week.
type WeeklyExercisePlan struct {
	WeekNumber int    `json:"week_number"`
	SplitID    string `json:"split_id"`
	SplitName  string `json:"split_name"`

	Days []WorkoutDayExercises `json:"days"`

	Warnings                 []string          `json:"warnings,omitempty"`
	RequiresMedicalClearance bool              `json:"requires_medical_clearance"`
	Excluded                 []ExclusionRecord `json:"excluded,omitempty"`
	BalanceWarnings          []string          `json:"balance_warnings,omitempty"`

	SplitScore        float64            `json:"split_score"`
	SplitTrace        []string           `json:"split_trace,omitempty"`
	SplitAlternatives []SplitAlternative `json:"split_alternatives,omitempty"`

	// Fallback marks the fixed gentle-movement program substituted when the
	// safety-filtered pool was below the minimum safe size.
	Fallback bool `json:"fallback,omitempty"`
}
