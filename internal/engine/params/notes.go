package params

import (
	"fmt"
	"math"
	"strings"

	"github.com/claude/planforge/internal/engine/match"
	"github.com/claude/planforge/internal/models"
)

// injuryRegions mirrors the safety filter's region keywords for per-exercise
// form cues. A match here does not exclude; it annotates.
var injuryRegions = []struct {
	region   string
	keywords []string
}{
	{"knee", []string{"knee"}},
	{"lower back", []string{"back pain", "lower back", "lumbar", "herniat", "sciatica"}},
	{"shoulder", []string{"shoulder", "rotator cuff", "impingement"}},
	{"wrist", []string{"wrist", "carpal"}},
	{"ankle", []string{"ankle", "achilles"}},
	{"hip", []string{"hip"}},
	{"elbow", []string{"elbow"}},
}

// regionNameKeywords maps an injury region to exercise-name keywords that
// warrant a form cue even after the safety filter let the exercise through.
var regionNameKeywords = map[string][]string{
	"knee":       {"squat", "lunge", "leg", "calf"},
	"lower back": {"row", "deadlift", "squat", "hinge", "swing"},
	"shoulder":   {"press", "raise", "fly", "pull"},
	"wrist":      {"press", "curl", "push"},
	"ankle":      {"calf", "jump", "run", "step"},
	"hip":        {"squat", "lunge", "thrust", "deadlift"},
	"elbow":      {"curl", "extension", "press"},
}

// ExerciseNotes builds the per-exercise coaching note from independent
// checks, concatenated in a fixed order.
func ExerciseNotes(ex models.ClassifiedExercise, profile models.UserProfile) string {
	var notes []string

	if profile.ExperienceLevel == models.ExperienceBeginner && ex.ComplexityScore >= 8 {
		notes = append(notes, "Master the form with light weight before adding load.")
	}
	if profile.Pregnant && ex.Safety.RequiresValsalva {
		notes = append(notes, "Exhale through the effort; never hold your breath.")
	}
	for _, r := range injuryRegions {
		if !reportsRegion(profile.Injuries, r.keywords) {
			continue
		}
		if match.Any(ex.Name, regionNameKeywords[r.region]) {
			notes = append(notes, fmt.Sprintf("Work carefully around your %s; stop if you feel pain there.", r.region))
		}
	}
	if ex.Classification == models.ClassCompound {
		notes = append(notes, "Priority lift: do this while fresh.")
	}

	return strings.Join(notes, " ")
}

func reportsRegion(entries, keywords []string) bool {
	for _, e := range entries {
		if match.Any(e, keywords) {
			return true
		}
	}
	return false
}

var experienceTips = map[models.ExperienceLevel]string{
	models.ExperienceBeginner:     "Log every session; consistent technique beats extra load for now.",
	models.ExperienceIntermediate: "Push the last set of each exercise a little harder than last week.",
	models.ExperienceAdvanced:     "Autoregulate: drop a set on days when bar speed is clearly off.",
}

// WorkoutTips concatenates goal, experience, safety-condition, and
// workout-type tips for one training day.
func WorkoutTips(day models.WorkoutDay, profile models.UserProfile) []string {
	var tips []string

	if note := GoalNote(profile.FitnessGoal); note != "" {
		tips = append(tips, note)
	}
	if t, ok := experienceTips[profile.ExperienceLevel]; ok {
		tips = append(tips, t)
	}
	if profile.Pregnant {
		tips = append(tips, "Stop immediately on dizziness, pain, or shortness of breath; stay cool and hydrated.")
	}
	if hasCondition(profile, []string{"heart", "cardiac", "cardiovascular"}) {
		tips = append(tips, "Keep effort conversational and monitor how you feel between sets.")
	}
	if profile.Age >= 65 {
		tips = append(tips, "Use rails or a spotter for anything that challenges balance.")
	}
	switch day.WorkoutType {
	case "hiit":
		tips = append(tips, "Hold interval pacing: the last round should look like the first.")
	case "legs", "lower":
		tips = append(tips, "Leg day: hydrate well and give knees a thorough warmup before loading.")
	}

	return tips
}

var goalProgressions = map[models.FitnessGoal]string{
	models.GoalMuscleGain:  "Progress by adding a rep per set until the top of the range, then add load.",
	models.GoalStrength:    "Progress by small load increases on the first lift whenever all sets complete.",
	models.GoalEndurance:   "Progress by trimming rest 5-10 seconds before adding reps.",
	models.GoalWeightLoss:  "Progress by adding a set or shortening rests as sessions get easier.",
	models.GoalAthletic:    "Progress bar speed first; add load only when speed holds.",
	models.GoalGeneral:     "Progress whichever of load or reps feels most comfortable this week.",
	models.GoalFlexibility: "Progress range of motion before load, every time.",
	models.GoalMaintenance: "Hold loads steady; progress is keeping every session on the calendar.",
}

var weekProgressions = [MesocycleWeeks]string{
	"Week 1: moderate loads, technique focus.",
	"Week 2: add 5-10% load where last week's form was solid.",
	"Week 3: peak week, work up to RPE 7-8 on main lifts.",
	"Week 4: deload, cut load about 20% and volume about 30%.",
}

// MesocycleWeeks is the progression cycle length.
const MesocycleWeeks = 4

// ProgressionNotes derives the weekly progression note purely from the
// mesocycle week number plus the goal's progression rule.
func ProgressionNotes(weekNumber int, goal models.FitnessGoal) string {
	if weekNumber < 1 {
		weekNumber = 1
	}
	week := weekProgressions[(weekNumber-1)%MesocycleWeeks]
	if rule, ok := goalProgressions[goal]; ok {
		return week + " " + rule
	}
	return week
}

// Warmup returns the fixed, workout-type-conditioned warmup sequence.
func Warmup(workoutType string) []string {
	warmup := []string{"5 minutes light cardio (bike, brisk walk, or rowing)", "Dynamic joint circles, 30 seconds per joint"}
	switch workoutType {
	case "upper", "push", "chest", "shoulders", "arms":
		warmup = append(warmup, "Shoulder prep: band dislocates and scapular push-ups")
	case "lower", "legs":
		warmup = append(warmup, "Squat activation: 2x10 bodyweight squats and glute bridges")
	case "pull", "back":
		warmup = append(warmup, "Band pull-aparts, 2x15")
	case "hiit":
		warmup = append(warmup, "Progressive pace build-ups, 3x20 seconds")
	case "full_body":
		warmup = append(warmup, "Squat activation: 2x10 bodyweight squats", "Band pull-aparts, 2x15")
	}
	return warmup
}

// Cooldown is the fixed cooldown: light cardio plus static stretching.
func Cooldown() []string {
	return []string{
		"5 minutes easy cardio to bring heart rate down",
		"Static stretching for the muscles worked, 20-30 seconds per hold",
	}
}

var calPerMinute = map[models.ExperienceLevel]float64{
	models.ExperienceBeginner:     5,
	models.ExperienceIntermediate: 6,
	models.ExperienceAdvanced:     7,
}

// EstimateCalories computes the session calorie estimate:
// base[experience] x (bodyweight/70) x goal multiplier x minutes.
func EstimateCalories(profile models.UserProfile, durationMinutes int) int {
	base, ok := calPerMinute[profile.ExperienceLevel]
	if !ok {
		base = calPerMinute[models.ExperienceBeginner]
	}
	weight := profile.WeightKG
	if weight <= 0 {
		weight = 70
	}
	mult := 1.0
	switch profile.FitnessGoal {
	case models.GoalWeightLoss, models.GoalEndurance:
		mult = 1.2
	case models.GoalStrength:
		mult = 0.9
	}
	return int(math.Round(base * (weight / 70) * mult * float64(durationMinutes)))
}
