// Package classify tags exercises as compound, auxiliary, isolation, or
// cardio and assigns a 1-10 complexity score.
//
// Order matters and is a deliberate tie-break: name patterns are checked
// before raw muscle counts, because naming convention is a stronger
// training-classification signal than counting muscles touched.
package classify

import (
	"github.com/claude/planforge/internal/engine/match"
	"github.com/claude/planforge/internal/models"
)

var cardioKeywords = []string{
	"treadmill", "rowing machine", "rower", "jump rope", "burpee",
	"mountain climber", "bike", "cycling", "elliptical", "sprint", "running",
	"jogging", "jumping jack", "stair", "high knees", "battle rope", "swim",
	"ski erg", "assault", "brisk walk",
}

// compoundPattern maps a major-lift naming pattern to its complexity.
// Checked in order; the first hit wins.
type compoundPattern struct {
	keywords   []string
	complexity int
}

var compoundPatterns = []compoundPattern{
	{keywords: []string{"clean", "snatch", "jerk"}, complexity: 10},                                                              // Olympic lifts
	{keywords: []string{"deadlift", "squat", "bench press", "overhead press", "military press"}, complexity: 9},                  // big barbell lifts
	{keywords: []string{"bent-over row", "bent over row", "pendlay row", "barbell row"}, complexity: 8},                          // heavy rows
	{keywords: []string{"pull-up", "pullup", "chin-up", "chinup", "dip", "muscle-up", "muscle up"}, complexity: 7},               // advanced bodyweight
	{keywords: []string{"leg press", "lunge"}, complexity: 7},                                                                    // lower-body machines/patterns
}

var auxiliaryKeywords = []string{
	"dumbbell press", "incline press", "arnold press", "cable row",
	"seated row", "step-up", "step up", "hip thrust", "romanian deadlift",
	"rdl", "glute bridge", "lat pulldown", "pulldown", "chest press",
	"machine press", "face pull", "good morning", "shrug",
}

var isolationKeywords = []string{
	"curl", "extension", "lateral raise", "front raise", "fly", "flye",
	"calf raise", "leg curl", "leg extension", "crunch", "sit-up", "situp",
	"pushdown", "kickback", "pullover", "reverse fly", "wrist",
}

// Classify returns the classification and complexity score for one
// exercise. Complexity is always within [1,10].
func Classify(ex models.Exercise, meta models.ExerciseSafetyMetadata) (models.Classification, int) {
	muscles := len(ex.MuscleUnion())

	// 1. Cardio first: keyword match on name, body parts, or muscles.
	if match.Any(ex.Name, cardioKeywords) ||
		match.ContainsFold(ex.BodyParts, "cardio") ||
		match.ContainsFold(ex.TargetMuscles, "cardiovascular system") {
		if meta.IsHighImpact {
			return models.ClassCardio, 7
		}
		return models.ClassCardio, 4
	}

	// 2. Compound: a major-lift pattern AND at least three distinct muscles.
	compoundHit := false
	for _, p := range compoundPatterns {
		if match.Any(ex.Name, p.keywords) {
			compoundHit = true
			if muscles >= 3 {
				complexity := p.complexity
				if complexity < 9 && match.ContainsFold(ex.Equipment, "barbell") {
					complexity = 8
				}
				return models.ClassCompound, complexity
			}
			break
		}
	}

	// 3. Auxiliary: secondary patterns or exactly two muscles, unless the
	// name already matched a compound pattern.
	if !compoundHit && (match.Any(ex.Name, auxiliaryKeywords) || muscles == 2) {
		return models.ClassAuxiliary, auxiliaryComplexity(ex)
	}

	// 4. Isolation: single-joint keywords or a single muscle.
	if match.Any(ex.Name, isolationKeywords) || muscles == 1 {
		return models.ClassIsolation, isolationComplexity(ex)
	}

	// 5. Fallback purely by muscle count.
	switch {
	case muscles >= 3:
		return models.ClassCompound, 7
	case muscles == 2:
		return models.ClassAuxiliary, 5
	default:
		return models.ClassIsolation, 3
	}
}

// auxiliaryComplexity grades 4-6 by equipment: barbell > dumbbell >
// cable/machine.
func auxiliaryComplexity(ex models.Exercise) int {
	switch {
	case match.ContainsFold(ex.Equipment, "barbell"):
		return 6
	case match.ContainsFold(ex.Equipment, "dumbbell") || match.ContainsFold(ex.Equipment, "kettlebell"):
		return 5
	default:
		return 4
	}
}

// isolationComplexity grades 2-4 by equipment: machine < dumbbell <
// bodyweight.
func isolationComplexity(ex models.Exercise) int {
	switch {
	case match.ContainsFold(ex.Equipment, "machine") || match.ContainsFold(ex.Equipment, "cable"):
		return 2
	case match.ContainsFold(ex.Equipment, "dumbbell") || match.ContainsFold(ex.Equipment, "barbell"):
		return 3
	default:
		return 4
	}
}

// All classifies every exercise in the pool, resolving metadata through the
// given function.
func All(pool []models.Exercise, resolve func(models.Exercise) models.ExerciseSafetyMetadata) []models.ClassifiedExercise {
	out := make([]models.ClassifiedExercise, 0, len(pool))
	for _, ex := range pool {
		meta := resolve(ex)
		class, complexity := Classify(ex, meta)
		out = append(out, models.ClassifiedExercise{
			Exercise:        ex,
			Safety:          meta,
			Classification:  class,
			ComplexityScore: complexity,
		})
	}
	return out
}
