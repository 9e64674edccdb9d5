package params

import (
	"strings"
	"testing"

	"github.com/claude/planforge/internal/models"
)

func TestExerciseNotes(t *testing.T) {
	squat := models.ClassifiedExercise{
		Exercise:        models.Exercise{ID: "squat", Name: "Barbell Back Squat"},
		Safety:          models.ExerciseSafetyMetadata{RequiresValsalva: true},
		Classification:  models.ClassCompound,
		ComplexityScore: 9,
	}

	tests := []struct {
		name    string
		profile models.UserProfile
		wants   []string
	}{
		{
			name:    "beginner on a complex lift",
			profile: models.UserProfile{ExperienceLevel: models.ExperienceBeginner},
			wants:   []string{"Master the form", "Priority lift"},
		},
		{
			name:    "pregnancy breathing cue",
			profile: models.UserProfile{ExperienceLevel: models.ExperienceIntermediate, Pregnant: true, PregnancyTrimester: 1},
			wants:   []string{"never hold your breath"},
		},
		{
			name:    "knee injury form cue",
			profile: models.UserProfile{ExperienceLevel: models.ExperienceAdvanced, Injuries: []string{"right knee"}},
			wants:   []string{"around your knee"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExerciseNotes(squat, tt.profile)
			for _, want := range tt.wants {
				if !strings.Contains(got, want) {
					t.Errorf("ExerciseNotes() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestProgressionNotes(t *testing.T) {
	week1 := ProgressionNotes(1, models.GoalStrength)
	week5 := ProgressionNotes(5, models.GoalStrength)
	if week1 != week5 {
		t.Errorf("week 1 and week 5 notes differ:\n%q\n%q", week1, week5)
	}
	if !strings.Contains(ProgressionNotes(4, models.GoalGeneral), "deload") {
		t.Error("week 4 should be the deload week")
	}
	if got := ProgressionNotes(-1, models.GoalStrength); got != week1 {
		t.Errorf("negative week should clamp to week 1, got %q", got)
	}
}

func TestWarmup(t *testing.T) {
	base := Warmup("unknown_type")
	if len(base) != 2 {
		t.Errorf("unknown type warmup has %d steps, want the 2 base steps", len(base))
	}
	if got := Warmup("legs"); len(got) != 3 {
		t.Errorf("legs warmup has %d steps, want 3", len(got))
	}
	if got := Warmup("full_body"); len(got) != 4 {
		t.Errorf("full_body warmup has %d steps, want 4", len(got))
	}
}

func TestWorkoutTips(t *testing.T) {
	day := models.WorkoutDay{Name: "Legs", WorkoutType: "legs"}
	profile := models.UserProfile{
		Age:             70,
		ExperienceLevel: models.ExperienceBeginner,
		FitnessGoal:     models.GoalGeneral,
	}

	tips := WorkoutTips(day, profile)
	joined := strings.Join(tips, " | ")
	for _, want := range []string{"RPE 6-7", "Log every session", "spotter", "Leg day"} {
		if !strings.Contains(joined, want) {
			t.Errorf("WorkoutTips() missing %q in %q", want, joined)
		}
	}
}
