package engine

import (
	"fmt"
	"strings"

	"github.com/claude/planforge/internal/models"
)

// majorMuscles are checked by the post-generation balance report. A muscle
// hit fewer than minWeeklyHits times across the week draws a non-fatal
// warning.
var majorMuscles = []string{"pectorals", "lats", "quadriceps", "hamstrings", "deltoids"}

const minWeeklyHits = 2

// balanceCheck counts weekly hits per major muscle (primary plus secondary)
// across every selected exercise and reports under-covered muscles.
func balanceCheck(days []models.WorkoutDayExercises, classified []models.ClassifiedExercise) []string {
	byID := make(map[string]models.ClassifiedExercise, len(classified))
	for _, ex := range classified {
		byID[ex.ID] = ex
	}

	hits := make(map[string]int, len(majorMuscles))
	for _, day := range days {
		for _, we := range day.Exercises {
			ex, ok := byID[we.ExerciseID]
			if !ok {
				continue
			}
			for _, m := range ex.MuscleUnion() {
				hits[strings.ToLower(m)]++
			}
		}
	}

	var warnings []string
	for _, muscle := range majorMuscles {
		if n := hits[muscle]; n < minWeeklyHits {
			warnings = append(warnings, fmt.Sprintf("%s is trained %dx this week; aim for at least %dx", muscle, n, minWeeklyHits))
		}
	}
	return warnings
}
