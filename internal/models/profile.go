package models

// UserProfile is the full generation input for one user. The engine treats
// it as read-only.
type UserProfile struct {
	Age      int     `json:"age"`
	WeightKG float64 `json:"weight_kg"`
	HeightCM float64 `json:"height_cm"`
	Gender   string  `json:"gender,omitempty"`

	FitnessGoal     FitnessGoal     `json:"fitness_goal"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`

	AvailableEquipment []string `json:"available_equipment"`
	TargetBodyParts    []string `json:"target_body_parts,omitempty"`

	WorkoutDurationMinutes int `json:"workout_duration_minutes"`
	WorkoutsPerWeek        int `json:"workouts_per_week"`

	Injuries          []string `json:"injuries,omitempty"`
	MedicalConditions []string `json:"medical_conditions,omitempty"`
	Medications       []string `json:"medications,omitempty"`

	Pregnant           bool `json:"pregnant,omitempty"`
	PregnancyTrimester int  `json:"pregnancy_trimester,omitempty"` // 1..3 when pregnant
	Breastfeeding      bool `json:"breastfeeding,omitempty"`

	StressLevel    StressLevel `json:"stress_level,omitempty"`
	PrefersVariety bool        `json:"prefers_variety,omitempty"`

	// ExcludedExerciseIDs are exercises the user never wants programmed.
	ExcludedExerciseIDs []string `json:"excluded_exercise_ids,omitempty"`
}

// ActivityLevel derives a rough activity level from weekly frequency. The
// profile carries no explicit field for this, so frequency is the proxy.
func (p UserProfile) ActivityLevel() ActivityLevel {
	switch {
	case p.WorkoutsPerWeek <= 0:
		return ActivitySedentary
	case p.WorkoutsPerWeek <= 2:
		return ActivityLight
	case p.WorkoutsPerWeek <= 4:
		return ActivityModerate
	case p.WorkoutsPerWeek == 5:
		return ActivityActive
	default:
		return ActivityExtreme
	}
}

// SessionMinutes returns the user's preferred session length, falling back
// to the given split default when unset.
func (p UserProfile) SessionMinutes(splitDefault int) int {
	if p.WorkoutDurationMinutes > 0 {
		return p.WorkoutDurationMinutes
	}
	return splitDefault
}
