package engine

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/engine/safety"
	"github.com/claude/planforge/internal/models"
)

func healthyProfile() models.UserProfile {
	return models.UserProfile{
		Age:                    30,
		WeightKG:               75,
		HeightCM:               178,
		FitnessGoal:            models.GoalMuscleGain,
		ExperienceLevel:        models.ExperienceIntermediate,
		AvailableEquipment:     []string{"barbell", "dumbbell", "machine", "cable", "bench", "pull-up bar"},
		WorkoutDurationMinutes: 60,
		WorkoutsPerWeek:        4,
	}
}

// TestGenerateBasics verifies a healthy profile gets a populated,
// non-fallback plan.
func TestGenerateBasics(t *testing.T) {
	e := New()
	plan := e.Generate(healthyProfile(), catalog.Default(), 1)

	if plan.Fallback {
		t.Fatal("healthy profile should not get the fallback program")
	}
	if plan.SplitID == "" || len(plan.Days) == 0 {
		t.Fatalf("plan missing split or days: %+v", plan)
	}
	if plan.SplitScore <= 0 || plan.SplitScore > 100 {
		t.Errorf("split score %.1f outside (0,100]", plan.SplitScore)
	}
	if len(plan.SplitAlternatives) == 0 || len(plan.SplitAlternatives) > 3 {
		t.Errorf("alternatives = %d, want 1-3", len(plan.SplitAlternatives))
	}
	for _, day := range plan.Days {
		if len(day.Exercises) == 0 {
			t.Errorf("day %s has no exercises", day.DayName)
		}
		if len(day.Warmup) == 0 || len(day.Cooldown) == 0 {
			t.Errorf("day %s missing warmup or cooldown", day.DayName)
		}
		if day.EstimatedCalories <= 0 {
			t.Errorf("day %s has no calorie estimate", day.DayName)
		}
		for _, ex := range day.Exercises {
			if ex.Sets < 1 {
				t.Errorf("%s: sets = %d, want >= 1", ex.ExerciseID, ex.Sets)
			}
			if ex.Reps == "" || ex.RestSeconds < 0 {
				t.Errorf("%s: bad prescription %+v", ex.ExerciseID, ex)
			}
		}
		total := 0
		for _, n := range day.Counts {
			total += n
		}
		if total != len(day.Exercises) {
			t.Errorf("day %s counts sum to %d, want %d", day.DayName, total, len(day.Exercises))
		}
	}
}

// TestGenerateDeterministic verifies two identical calls produce
// byte-identical plans.
func TestGenerateDeterministic(t *testing.T) {
	e := New()
	pool := catalog.Default()

	a, err := json.Marshal(e.Generate(healthyProfile(), pool, 2))
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(e.Generate(healthyProfile(), pool, 2))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("identical inputs produced different plans")
	}
}

// TestGenerateMesocycleIdentity verifies week 1 and week 5 share exercise
// selection while progression notes track the raw week.
func TestGenerateMesocycleIdentity(t *testing.T) {
	e := New()
	pool := catalog.Default()

	week1 := e.Generate(healthyProfile(), pool, 1)
	week5 := e.Generate(healthyProfile(), pool, 5)

	if len(week1.Days) != len(week5.Days) {
		t.Fatalf("day counts differ: %d vs %d", len(week1.Days), len(week5.Days))
	}
	for i := range week1.Days {
		d1, d5 := week1.Days[i], week5.Days[i]
		if len(d1.Exercises) != len(d5.Exercises) {
			t.Fatalf("day %s exercise counts differ", d1.DayName)
		}
		for j := range d1.Exercises {
			if d1.Exercises[j].ExerciseID != d5.Exercises[j].ExerciseID {
				t.Errorf("day %s position %d: %s vs %s", d1.DayName, j,
					d1.Exercises[j].ExerciseID, d5.Exercises[j].ExerciseID)
			}
		}
	}
	if week1.WeekNumber == week5.WeekNumber {
		t.Error("week numbers should pass through unchanged")
	}
}

// TestGenerateThirdTrimester runs the end-to-end pregnancy scenario.
func TestGenerateThirdTrimester(t *testing.T) {
	profile := healthyProfile()
	profile.Pregnant = true
	profile.PregnancyTrimester = 3
	profile.FitnessGoal = models.GoalGeneral
	profile.ExperienceLevel = models.ExperienceBeginner
	profile.WorkoutsPerWeek = 3

	e := New()
	plan := e.Generate(profile, catalog.Default(), 1)

	if !plan.RequiresMedicalClearance {
		t.Error("third trimester must require medical clearance")
	}

	resolver := safety.DefaultResolver()
	byID := make(map[string]models.Exercise)
	for _, ex := range catalog.Default() {
		byID[ex.ID] = ex
	}
	for _, day := range plan.Days {
		for _, we := range day.Exercises {
			src, ok := byID[we.ExerciseID]
			if !ok {
				continue // fallback entries are not catalog exercises
			}
			meta := resolver.Resolve(src)
			if meta.IsSupine || meta.IsProne || meta.IsHighImpact {
				t.Errorf("%s (supine=%v prone=%v highImpact=%v) programmed in trimester 3",
					we.ExerciseID, meta.IsSupine, meta.IsProne, meta.IsHighImpact)
			}
		}
	}

	found := false
	for _, w := range plan.Warnings {
		if strings.Contains(w, "Trimester 3") {
			found = true
		}
	}
	if !found {
		t.Errorf("trimester 3 advisory missing from %v", plan.Warnings)
	}
}

// TestGenerateKneeInjury verifies leg days avoid knee-loading patterns.
func TestGenerateKneeInjury(t *testing.T) {
	profile := healthyProfile()
	profile.Injuries = []string{"knee pain"}

	e := New()
	plan := e.Generate(profile, catalog.Default(), 1)
	if plan.Fallback {
		t.Fatal("knee injury alone should not trigger the fallback program")
	}

	banned := []string{"squat", "lunge", "leg press", "jump", "burpee", "pistol"}
	for _, day := range plan.Days {
		for _, we := range day.Exercises {
			lower := strings.ToLower(we.Name)
			for _, kw := range banned {
				if strings.Contains(lower, kw) {
					t.Errorf("knee-loading exercise %q programmed", we.Name)
				}
			}
		}
	}
}

// TestGenerateSenior verifies fall-risk work is excluded at age 70.
func TestGenerateSenior(t *testing.T) {
	profile := healthyProfile()
	profile.Age = 70

	e := New()
	plan := e.Generate(profile, catalog.Default(), 1)

	resolver := safety.DefaultResolver()
	byID := make(map[string]models.Exercise)
	for _, ex := range catalog.Default() {
		byID[ex.ID] = ex
	}
	for _, day := range plan.Days {
		for _, we := range day.Exercises {
			src, ok := byID[we.ExerciseID]
			if !ok {
				continue
			}
			meta := resolver.Resolve(src)
			if meta.HasFallRisk || meta.BalanceRequired == models.BalanceHigh {
				t.Errorf("fall-risk exercise %q programmed at age 70", we.Name)
			}
		}
	}
}

// TestGenerateFallback verifies the gentle-movement substitution when the
// safe pool collapses.
func TestGenerateFallback(t *testing.T) {
	e := New(WithMinSafePool(1000))
	plan := e.Generate(healthyProfile(), catalog.Default(), 3)

	if !plan.Fallback {
		t.Fatal("expected the fallback program")
	}
	if plan.SplitID != "gentle_movement" {
		t.Errorf("fallback split = %q, want gentle_movement", plan.SplitID)
	}
	if len(plan.Days) != 3 {
		t.Errorf("fallback has %d days, want 3", len(plan.Days))
	}
	for _, day := range plan.Days {
		if len(day.Exercises) == 0 {
			t.Errorf("fallback day %s is empty", day.DayName)
		}
	}
	if plan.WeekNumber != 3 {
		t.Errorf("fallback week = %d, want 3", plan.WeekNumber)
	}
}

// TestGenerateExcludedIDs verifies the user exclude list survives the whole
// pipeline.
func TestGenerateExcludedIDs(t *testing.T) {
	e := New()
	baseline := e.Generate(healthyProfile(), catalog.Default(), 1)

	var target string
	for _, day := range baseline.Days {
		if len(day.Exercises) > 0 {
			target = day.Exercises[0].ExerciseID
			break
		}
	}
	if target == "" {
		t.Fatal("baseline plan is empty")
	}

	profile := healthyProfile()
	profile.ExcludedExerciseIDs = []string{target}
	plan := e.Generate(profile, catalog.Default(), 1)
	for _, day := range plan.Days {
		for _, we := range day.Exercises {
			if we.ExerciseID == target {
				t.Errorf("excluded exercise %s still programmed", target)
			}
		}
	}
}

// TestGenerateWeekClamp verifies week numbers below 1 clamp instead of
// breaking rotation.
func TestGenerateWeekClamp(t *testing.T) {
	e := New()
	plan := e.Generate(healthyProfile(), catalog.Default(), 0)
	if plan.WeekNumber != 1 {
		t.Errorf("WeekNumber = %d, want 1", plan.WeekNumber)
	}
}

// TestBalanceCheck verifies under-trained major muscles draw warnings.
func TestBalanceCheck(t *testing.T) {
	classified := []models.ClassifiedExercise{
		{Exercise: models.Exercise{ID: "bench", TargetMuscles: []string{"pectorals"}, SecondaryMuscles: []string{"deltoids"}}},
	}
	days := []models.WorkoutDayExercises{
		{Exercises: []models.WorkoutExercise{
			{ExerciseID: "bench"}, {ExerciseID: "bench"},
		}},
	}

	warnings := balanceCheck(days, classified)
	joined := strings.Join(warnings, " | ")
	for _, muscle := range []string{"lats", "quadriceps", "hamstrings"} {
		if !strings.Contains(joined, muscle) {
			t.Errorf("missing balance warning for %s in %q", muscle, joined)
		}
	}
	if strings.Contains(joined, "pectorals") {
		t.Errorf("pectorals trained 2x should not be flagged: %q", joined)
	}
}
