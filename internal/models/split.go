package models

// WorkoutDay is one training day inside a split template.
type WorkoutDay struct {
	Name          string   `json:"name"`
	Weekday       string   `json:"weekday"`
	FocusAreas    []string `json:"focus_areas"`
	WorkoutType   string   `json:"workout_type"`
	MuscleGroups  []string `json:"muscle_groups"`
	CompoundFocus bool     `json:"compound_focus"`
}

// WorkoutSplit is a weekly training template. Exactly seven fixed templates
// exist; none are created or destroyed at runtime.
type WorkoutSplit struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	MinFrequency     int               `json:"min_frequency"` // ideal days/week range
	MaxFrequency     int               `json:"max_frequency"`
	Days             []WorkoutDay      `json:"days"`
	RestDays         int               `json:"rest_days"`
	ExperienceLevels []ExperienceLevel `json:"experience_levels"`
	FitnessGoals     []FitnessGoal     `json:"fitness_goals"`
	MinimumEquipment []string          `json:"minimum_equipment"`
	VolumePerMuscle  VolumeLevel       `json:"volume_per_muscle"`
	RecoveryDemand   RecoveryDemand    `json:"recovery_demand"`
	SessionMinutes   int               `json:"session_minutes"`
}

// SupportsExperience reports whether the split lists the given level as
// compatible.
func (s WorkoutSplit) SupportsExperience(level ExperienceLevel) bool {
	for _, l := range s.ExperienceLevels {
		if l == level {
			return true
		}
	}
	return false
}

// SupportsGoal reports whether the split lists the given goal as compatible.
func (s WorkoutSplit) SupportsGoal(goal FitnessGoal) bool {
	for _, g := range s.FitnessGoals {
		if g == goal {
			return true
		}
	}
	return false
}

// DistinctDayNames returns how many distinct day names the split contains.
func (s WorkoutSplit) DistinctDayNames() int {
	seen := make(map[string]bool, len(s.Days))
	for _, d := range s.Days {
		seen[d.Name] = true
	}
	return len(seen)
}
