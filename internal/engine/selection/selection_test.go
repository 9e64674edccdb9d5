package selection

import (
	"testing"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/engine/classify"
	"github.com/claude/planforge/internal/engine/safety"
	"github.com/claude/planforge/internal/models"
)

func classifiedCatalog(t *testing.T) []models.ClassifiedExercise {
	t.Helper()
	return classify.All(catalog.Default(), safety.DefaultResolver().Resolve)
}

func legDay() models.WorkoutDay {
	return models.WorkoutDay{
		Name:          "Legs",
		WorkoutType:   "legs",
		FocusAreas:    []string{"legs", "core"},
		MuscleGroups:  []string{"quadriceps", "hamstrings", "glutes", "calves"},
		CompoundFocus: true,
	}
}

func TestRotationOffset(t *testing.T) {
	tests := []struct {
		week int
		want int
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 3}, {5, 0}, {9, 0}, {0, 0}, {-3, 0},
	}
	for _, tt := range tests {
		if got := RotationOffset(tt.week); got != tt.want {
			t.Errorf("RotationOffset(%d) = %d, want %d", tt.week, got, tt.want)
		}
	}
}

func TestDayTarget(t *testing.T) {
	tests := []struct {
		name        string
		level       models.ExperienceLevel
		minutes     int
		daysPerWeek int
		want        int
	}{
		{name: "beginner 60min", level: models.ExperienceBeginner, minutes: 60, daysPerWeek: 3, want: 6},
		{name: "beginner short session clamps to min", level: models.ExperienceBeginner, minutes: 20, daysPerWeek: 3, want: 5},
		{name: "advanced long session clamps to max", level: models.ExperienceAdvanced, minutes: 120, daysPerWeek: 3, want: 12},
		{name: "intermediate 60min", level: models.ExperienceIntermediate, minutes: 60, daysPerWeek: 4, want: 7},
		{name: "high frequency deducts one", level: models.ExperienceIntermediate, minutes: 60, daysPerWeek: 5, want: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayTarget(tt.level, tt.minutes, tt.daysPerWeek); got != tt.want {
				t.Errorf("DayTarget(%v, %d, %d) = %d, want %d", tt.level, tt.minutes, tt.daysPerWeek, got, tt.want)
			}
		})
	}
}

// TestForDayRelevance verifies every pick touches the day's focus areas or
// muscle groups.
func TestForDayRelevance(t *testing.T) {
	pool := classifiedCatalog(t)
	profile := models.UserProfile{
		ExperienceLevel:    models.ExperienceIntermediate,
		FitnessGoal:        models.GoalMuscleGain,
		AvailableEquipment: []string{"barbell", "dumbbell", "machine", "cable", "bench"},
	}
	day := legDay()

	picked := ForDay(pool, day, profile, 3, 1, 60)
	if len(picked) == 0 {
		t.Fatal("ForDay() picked nothing from a full catalog")
	}
	for _, ex := range picked {
		relevant := false
		for _, bp := range ex.BodyParts {
			for _, fa := range day.FocusAreas {
				if bp == fa {
					relevant = true
				}
			}
		}
		for _, m := range ex.MuscleUnion() {
			for _, mg := range day.MuscleGroups {
				if m == mg {
					relevant = true
				}
			}
		}
		if !relevant {
			t.Errorf("%s is irrelevant to the leg day", ex.ID)
		}
	}
}

// TestForDayTargetRespected verifies the day target caps the selection.
func TestForDayTargetRespected(t *testing.T) {
	pool := classifiedCatalog(t)
	profile := models.UserProfile{
		ExperienceLevel:    models.ExperienceBeginner,
		AvailableEquipment: []string{"dumbbell"},
	}
	picked := ForDay(pool, legDay(), profile, 3, 1, 60)
	if target := DayTarget(models.ExperienceBeginner, 60, 3); len(picked) > target {
		t.Errorf("picked %d exercises, target is %d", len(picked), target)
	}
}

// TestForDayNoDuplicates verifies an exercise appears at most once per day.
func TestForDayNoDuplicates(t *testing.T) {
	pool := classifiedCatalog(t)
	profile := models.UserProfile{
		ExperienceLevel:    models.ExperienceAdvanced,
		AvailableEquipment: []string{"barbell", "dumbbell"},
	}
	picked := ForDay(pool, legDay(), profile, 3, 2, 90)
	seen := make(map[string]bool)
	for _, ex := range picked {
		if seen[ex.ID] {
			t.Errorf("%s selected twice in one day", ex.ID)
		}
		seen[ex.ID] = true
	}
}

// TestForDayMesocycleRotation verifies week 1 and week 5 make identical
// picks while some mid-cycle week differs.
func TestForDayMesocycleRotation(t *testing.T) {
	pool := classifiedCatalog(t)
	profile := models.UserProfile{
		ExperienceLevel:    models.ExperienceIntermediate,
		AvailableEquipment: []string{"barbell", "dumbbell", "machine", "cable", "bench"},
	}
	day := legDay()

	week1 := ForDay(pool, day, profile, 3, 1, 60)
	week5 := ForDay(pool, day, profile, 3, 5, 60)
	if len(week1) != len(week5) {
		t.Fatalf("week 1 picked %d, week 5 picked %d", len(week1), len(week5))
	}
	for i := range week1 {
		if week1[i].ID != week5[i].ID {
			t.Errorf("position %d: week 1 has %s, week 5 has %s", i, week1[i].ID, week5[i].ID)
		}
	}

	differs := false
	for w := 2; w <= 4; w++ {
		other := ForDay(pool, day, profile, 3, w, 60)
		if len(other) != len(week1) {
			differs = true
			break
		}
		for i := range other {
			if other[i].ID != week1[i].ID {
				differs = true
			}
		}
	}
	if !differs {
		t.Error("rotation never changed the selection across weeks 2-4")
	}
}

// TestForDayExcludedIDs verifies the user exclude list is honored last.
func TestForDayExcludedIDs(t *testing.T) {
	pool := classifiedCatalog(t)
	base := models.UserProfile{
		ExperienceLevel:    models.ExperienceIntermediate,
		AvailableEquipment: []string{"barbell", "dumbbell", "machine"},
	}

	first := ForDay(pool, legDay(), base, 3, 1, 60)
	if len(first) == 0 {
		t.Fatal("empty baseline selection")
	}

	banned := base
	banned.ExcludedExerciseIDs = []string{first[0].ID}
	second := ForDay(pool, legDay(), banned, 3, 1, 60)
	for _, ex := range second {
		if ex.ID == first[0].ID {
			t.Errorf("excluded exercise %s still selected", ex.ID)
		}
	}
}

// TestForDayEmptyPool verifies graceful degradation instead of an error.
func TestForDayEmptyPool(t *testing.T) {
	picked := ForDay(nil, legDay(), models.UserProfile{ExperienceLevel: models.ExperienceBeginner}, 3, 1, 60)
	if len(picked) != 0 {
		t.Errorf("ForDay(nil pool) = %d picks, want 0", len(picked))
	}
}

// TestForDayEquipmentPreference verifies available equipment outranks raw
// complexity.
func TestForDayEquipmentPreference(t *testing.T) {
	pool := []models.ClassifiedExercise{
		{Exercise: models.Exercise{ID: "machine-lift", Name: "Leg Press", TargetMuscles: []string{"quadriceps"}, BodyParts: []string{"legs"}, Equipment: []string{"machine"}}, Classification: models.ClassCompound, ComplexityScore: 7},
		{Exercise: models.Exercise{ID: "barbell-lift", Name: "Barbell Back Squat", TargetMuscles: []string{"quadriceps"}, BodyParts: []string{"legs"}, Equipment: []string{"barbell"}}, Classification: models.ClassCompound, ComplexityScore: 9},
	}
	profile := models.UserProfile{
		ExperienceLevel:    models.ExperienceBeginner,
		AvailableEquipment: []string{"machine"},
	}

	picked := ForDay(pool, legDay(), profile, 3, 1, 60)
	if len(picked) == 0 {
		t.Fatal("nothing picked")
	}
	if picked[0].ID != "machine-lift" {
		t.Errorf("first pick = %s, want machine-lift (equipment available)", picked[0].ID)
	}
}

func TestBucketQuota(t *testing.T) {
	tests := []struct {
		target int
		frac   float64
		limit  int
		want   int
	}{
		{6, 0.5, 4, 3},
		{6, 0.5, 2, 2},  // capped
		{5, 0.3, 3, 2},  // rounds half up
		{0, 0.5, 4, 0},
	}
	for _, tt := range tests {
		if got := bucketQuota(tt.target, tt.frac, tt.limit); got != tt.want {
			t.Errorf("bucketQuota(%d, %.2f, %d) = %d, want %d", tt.target, tt.frac, tt.limit, got, tt.want)
		}
	}
}
