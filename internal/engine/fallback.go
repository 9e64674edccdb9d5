package engine

import (
	"github.com/claude/planforge/internal/engine/params"
	"github.com/claude/planforge/internal/engine/safety"
	"github.com/claude/planforge/internal/models"
)

// fallbackPlan is the fixed, pre-authored minimal program substituted when
// the safety-filtered pool is too thin for a safe, relevant plan. Walking,
// stretching, and breathing: never empty, never unsafe.
func (e *Engine) fallbackPlan(profile models.UserProfile, weekNumber int, filtered safety.Result) models.WeeklyExercisePlan {
	plan := models.WeeklyExercisePlan{
		WeekNumber:               weekNumber,
		SplitID:                  "gentle_movement",
		SplitName:                "Gentle Movement",
		Warnings:                 append([]string{}, filtered.Warnings...),
		RequiresMedicalClearance: filtered.RequiresMedicalClearance,
		Excluded:                 filtered.Excluded,
		Fallback:                 true,
	}
	plan.Warnings = append(plan.Warnings,
		"Too few exercises passed the safety screen for a personalized plan; a gentle movement program was substituted. Review the exclusions with a medical professional.")

	days := []struct {
		name    string
		weekday string
	}{
		{"Gentle Movement A", "Monday"},
		{"Gentle Movement B", "Wednesday"},
		{"Gentle Movement C", "Friday"},
	}

	for _, d := range days {
		plan.Days = append(plan.Days, models.WorkoutDayExercises{
			DayName:     d.name,
			WorkoutType: "recovery",
			Exercises: []models.WorkoutExercise{
				{ExerciseID: "gentle-walk", Name: "Easy Walk", Sets: 1, Reps: "15-20 min", RestSeconds: 0, Tempo: "steady",
					Notes: "Walk at a comfortable, conversational pace for 15-20 minutes."},
				{ExerciseID: "gentle-stretch", Name: "Full-Body Stretch Sequence", Sets: 1, Reps: "8-10", RestSeconds: 30, Tempo: "3-2-3",
					Notes: "Hold each gentle stretch 20-30 seconds; never push into pain."},
				{ExerciseID: "gentle-breathing", Name: "Diaphragmatic Breathing", Sets: 2, Reps: "10", RestSeconds: 60, Tempo: "steady",
					Notes: "Slow nasal breaths into the belly, seated or side-lying."},
			},
			Counts:           map[models.Classification]int{models.ClassCardio: 1, models.ClassIsolation: 2},
			Warmup:           []string{"2-3 minutes of easy marching in place"},
			Cooldown:         params.Cooldown(),
			ProgressionNotes: "Repeat as feels comfortable; add a few minutes of walking each week.",
		})
	}

	return plan
}
