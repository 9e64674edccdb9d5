package models

// Exercise is one catalog entry. The catalog is loaded once at startup and
// never mutated afterwards.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	TargetMuscles    []string `json:"target_muscles"`
	SecondaryMuscles []string `json:"secondary_muscles,omitempty"`
	BodyParts        []string `json:"body_parts"`
	Equipment        []string `json:"equipment"`
	MediaRef         string   `json:"media_ref,omitempty"`
}

// MuscleUnion returns target plus secondary muscles, target first, without
// duplicates. Order is deterministic.
func (e Exercise) MuscleUnion() []string {
	seen := make(map[string]bool, len(e.TargetMuscles)+len(e.SecondaryMuscles))
	union := make([]string, 0, len(e.TargetMuscles)+len(e.SecondaryMuscles))
	for _, m := range e.TargetMuscles {
		if !seen[m] {
			seen[m] = true
			union = append(union, m)
		}
	}
	for _, m := range e.SecondaryMuscles {
		if !seen[m] {
			seen[m] = true
			union = append(union, m)
		}
	}
	return union
}

// ExerciseSafetyMetadata describes position and risk attributes used by the
// safety filter. Values come from a curated table when the exercise name is
// known there, otherwise from name-based inference; curated tags always win.
type ExerciseSafetyMetadata struct {
	IsSupine         bool         `json:"is_supine"`
	IsHighImpact     bool         `json:"is_high_impact"`
	HasFallRisk      bool         `json:"has_fall_risk"`
	RequiresValsalva bool         `json:"requires_valsalva"`
	IsProne          bool         `json:"is_prone"`
	IsInverted       bool         `json:"is_inverted"`
	ImpactLevel      ImpactLevel  `json:"impact_level"`
	BalanceRequired  BalanceLevel `json:"balance_required"`
}

// ClassifiedExercise is an exercise with resolved safety metadata and its
// training classification attached.
type ClassifiedExercise struct {
	Exercise
	Safety          ExerciseSafetyMetadata `json:"safety"`
	Classification  Classification         `json:"classification"`
	ComplexityScore int                    `json:"complexity_score"` // 1..10
}
