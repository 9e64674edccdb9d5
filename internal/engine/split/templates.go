package split

import "github.com/claude/planforge/internal/models"

// Templates returns the seven fixed weekly split templates in declaration
// order. Declaration order is the tie-break when two splits score equally,
// so it never changes.
func Templates() []models.WorkoutSplit {
	return templates
}

var templates = []models.WorkoutSplit{
	{
		ID:           "full_body_3x",
		Name:         "Full Body 3x",
		MinFrequency: 2,
		MaxFrequency: 4,
		Days: []models.WorkoutDay{
			{Name: "Full Body A", Weekday: "Monday", WorkoutType: "full_body", FocusAreas: []string{"chest", "back", "legs", "core"}, MuscleGroups: []string{"pectorals", "lats", "quadriceps", "abdominals"}, CompoundFocus: true},
			{Name: "Full Body B", Weekday: "Wednesday", WorkoutType: "full_body", FocusAreas: []string{"legs", "shoulders", "back", "core"}, MuscleGroups: []string{"hamstrings", "glutes", "deltoids", "lats", "abdominals"}, CompoundFocus: true},
			{Name: "Full Body C", Weekday: "Friday", WorkoutType: "full_body", FocusAreas: []string{"chest", "legs", "arms", "core"}, MuscleGroups: []string{"pectorals", "quadriceps", "biceps", "triceps", "abdominals"}, CompoundFocus: true},
		},
		RestDays:         4,
		ExperienceLevels: []models.ExperienceLevel{models.ExperienceBeginner, models.ExperienceIntermediate},
		FitnessGoals:     []models.FitnessGoal{models.GoalGeneral, models.GoalStrength, models.GoalMuscleGain, models.GoalWeightLoss},
		MinimumEquipment: []string{"dumbbell"},
		VolumePerMuscle:  models.VolumeModerate,
		RecoveryDemand:   models.RecoveryModerate,
		SessionMinutes:   60,
	},
	{
		ID:           "upper_lower_4x",
		Name:         "Upper/Lower 4x",
		MinFrequency: 4,
		MaxFrequency: 5,
		Days: []models.WorkoutDay{
			{Name: "Upper A", Weekday: "Monday", WorkoutType: "upper", FocusAreas: []string{"chest", "back", "shoulders", "arms"}, MuscleGroups: []string{"pectorals", "lats", "deltoids", "biceps", "triceps"}, CompoundFocus: true},
			{Name: "Lower A", Weekday: "Tuesday", WorkoutType: "lower", FocusAreas: []string{"legs", "core"}, MuscleGroups: []string{"quadriceps", "hamstrings", "glutes", "calves", "abdominals"}, CompoundFocus: true},
			{Name: "Upper B", Weekday: "Thursday", WorkoutType: "upper", FocusAreas: []string{"back", "chest", "shoulders", "arms"}, MuscleGroups: []string{"lats", "pectorals", "deltoids", "biceps", "triceps"}, CompoundFocus: false},
			{Name: "Lower B", Weekday: "Friday", WorkoutType: "lower", FocusAreas: []string{"legs", "core"}, MuscleGroups: []string{"hamstrings", "glutes", "quadriceps", "calves", "abdominals"}, CompoundFocus: false},
		},
		RestDays:         3,
		ExperienceLevels: []models.ExperienceLevel{models.ExperienceIntermediate, models.ExperienceAdvanced},
		FitnessGoals:     []models.FitnessGoal{models.GoalMuscleGain, models.GoalStrength},
		MinimumEquipment: []string{"barbell", "dumbbell"},
		VolumePerMuscle:  models.VolumeHigh,
		RecoveryDemand:   models.RecoveryModerate,
		SessionMinutes:   60,
	},
	{
		ID:           "ppl_3x",
		Name:         "Push/Pull/Legs 3x",
		MinFrequency: 3,
		MaxFrequency: 3,
		Days: []models.WorkoutDay{
			{Name: "Push", Weekday: "Monday", WorkoutType: "push", FocusAreas: []string{"chest", "shoulders", "arms"}, MuscleGroups: []string{"pectorals", "deltoids", "triceps"}, CompoundFocus: true},
			{Name: "Pull", Weekday: "Wednesday", WorkoutType: "pull", FocusAreas: []string{"back", "arms"}, MuscleGroups: []string{"lats", "traps", "rhomboids", "biceps"}, CompoundFocus: true},
			{Name: "Legs", Weekday: "Friday", WorkoutType: "legs", FocusAreas: []string{"legs", "core"}, MuscleGroups: []string{"quadriceps", "hamstrings", "glutes", "calves", "abdominals"}, CompoundFocus: true},
		},
		RestDays:         4,
		ExperienceLevels: []models.ExperienceLevel{models.ExperienceBeginner, models.ExperienceIntermediate},
		FitnessGoals:     []models.FitnessGoal{models.GoalMuscleGain, models.GoalStrength, models.GoalGeneral},
		MinimumEquipment: []string{"dumbbell"},
		VolumePerMuscle:  models.VolumeModerate,
		RecoveryDemand:   models.RecoveryModerate,
		SessionMinutes:   60,
	},
	{
		ID:           "ppl_6x",
		Name:         "Push/Pull/Legs 6x",
		MinFrequency: 5,
		MaxFrequency: 6,
		Days: []models.WorkoutDay{
			{Name: "Push A", Weekday: "Monday", WorkoutType: "push", FocusAreas: []string{"chest", "shoulders", "arms"}, MuscleGroups: []string{"pectorals", "deltoids", "triceps"}, CompoundFocus: true},
			{Name: "Pull A", Weekday: "Tuesday", WorkoutType: "pull", FocusAreas: []string{"back", "arms"}, MuscleGroups: []string{"lats", "traps", "rhomboids", "biceps"}, CompoundFocus: true},
			{Name: "Legs A", Weekday: "Wednesday", WorkoutType: "legs", FocusAreas: []string{"legs", "core"}, MuscleGroups: []string{"quadriceps", "hamstrings", "glutes", "calves"}, CompoundFocus: true},
			{Name: "Push B", Weekday: "Thursday", WorkoutType: "push", FocusAreas: []string{"shoulders", "chest", "arms"}, MuscleGroups: []string{"deltoids", "pectorals", "triceps"}, CompoundFocus: false},
			{Name: "Pull B", Weekday: "Friday", WorkoutType: "pull", FocusAreas: []string{"back", "arms"}, MuscleGroups: []string{"lats", "rhomboids", "biceps"}, CompoundFocus: false},
			{Name: "Legs B", Weekday: "Saturday", WorkoutType: "legs", FocusAreas: []string{"legs", "core"}, MuscleGroups: []string{"hamstrings", "glutes", "quadriceps", "calves", "abdominals"}, CompoundFocus: false},
		},
		RestDays:         1,
		ExperienceLevels: []models.ExperienceLevel{models.ExperienceAdvanced},
		FitnessGoals:     []models.FitnessGoal{models.GoalMuscleGain, models.GoalStrength},
		MinimumEquipment: []string{"barbell", "dumbbell"},
		VolumePerMuscle:  models.VolumeHigh,
		RecoveryDemand:   models.RecoveryHigh,
		SessionMinutes:   75,
	},
	{
		ID:           "bro_split_5x",
		Name:         "Bro Split 5x",
		MinFrequency: 5,
		MaxFrequency: 5,
		Days: []models.WorkoutDay{
			{Name: "Chest", Weekday: "Monday", WorkoutType: "chest", FocusAreas: []string{"chest"}, MuscleGroups: []string{"pectorals", "triceps"}, CompoundFocus: true},
			{Name: "Back", Weekday: "Tuesday", WorkoutType: "back", FocusAreas: []string{"back"}, MuscleGroups: []string{"lats", "traps", "rhomboids", "biceps"}, CompoundFocus: true},
			{Name: "Shoulders", Weekday: "Wednesday", WorkoutType: "shoulders", FocusAreas: []string{"shoulders"}, MuscleGroups: []string{"deltoids", "traps"}, CompoundFocus: false},
			{Name: "Arms", Weekday: "Thursday", WorkoutType: "arms", FocusAreas: []string{"arms"}, MuscleGroups: []string{"biceps", "triceps", "forearms"}, CompoundFocus: false},
			{Name: "Legs", Weekday: "Friday", WorkoutType: "legs", FocusAreas: []string{"legs", "core"}, MuscleGroups: []string{"quadriceps", "hamstrings", "glutes", "calves"}, CompoundFocus: true},
		},
		RestDays:         2,
		ExperienceLevels: []models.ExperienceLevel{models.ExperienceIntermediate, models.ExperienceAdvanced},
		FitnessGoals:     []models.FitnessGoal{models.GoalMuscleGain},
		MinimumEquipment: []string{"dumbbell"},
		VolumePerMuscle:  models.VolumeHigh,
		RecoveryDemand:   models.RecoveryModerate,
		SessionMinutes:   60,
	},
	{
		ID:           "hiit_circuit_4x",
		Name:         "HIIT/Circuit 4x",
		MinFrequency: 3,
		MaxFrequency: 5,
		Days: []models.WorkoutDay{
			{Name: "Circuit A", Weekday: "Monday", WorkoutType: "hiit", FocusAreas: []string{"cardio", "legs", "core"}, MuscleGroups: []string{"quadriceps", "glutes", "abdominals", "cardiovascular system"}, CompoundFocus: false},
			{Name: "Circuit B", Weekday: "Tuesday", WorkoutType: "hiit", FocusAreas: []string{"cardio", "chest", "back"}, MuscleGroups: []string{"pectorals", "lats", "cardiovascular system"}, CompoundFocus: false},
			{Name: "Conditioning", Weekday: "Thursday", WorkoutType: "hiit", FocusAreas: []string{"cardio", "legs"}, MuscleGroups: []string{"hamstrings", "calves", "cardiovascular system"}, CompoundFocus: false},
			{Name: "Core + Cardio", Weekday: "Saturday", WorkoutType: "hiit", FocusAreas: []string{"cardio", "core"}, MuscleGroups: []string{"abdominals", "obliques", "cardiovascular system"}, CompoundFocus: false},
		},
		RestDays:         3,
		ExperienceLevels: []models.ExperienceLevel{models.ExperienceIntermediate, models.ExperienceAdvanced},
		FitnessGoals:     []models.FitnessGoal{models.GoalWeightLoss, models.GoalEndurance, models.GoalAthletic},
		MinimumEquipment: nil, // bodyweight only
		VolumePerMuscle:  models.VolumeModerate,
		RecoveryDemand:   models.RecoveryHigh,
		SessionMinutes:   45,
	},
	{
		ID:           "active_recovery_2x",
		Name:         "Active Recovery 2x",
		MinFrequency: 1,
		MaxFrequency: 3,
		Days: []models.WorkoutDay{
			{Name: "Mobility + Light Cardio", Weekday: "Tuesday", WorkoutType: "recovery", FocusAreas: []string{"cardio", "legs", "core"}, MuscleGroups: []string{"cardiovascular system", "abdominals"}, CompoundFocus: false},
			{Name: "Stretch + Core", Weekday: "Friday", WorkoutType: "recovery", FocusAreas: []string{"core", "back"}, MuscleGroups: []string{"abdominals", "obliques", "lower back"}, CompoundFocus: false},
		},
		RestDays:         5,
		ExperienceLevels: []models.ExperienceLevel{models.ExperienceBeginner},
		FitnessGoals:     []models.FitnessGoal{models.GoalFlexibility, models.GoalMaintenance, models.GoalGeneral},
		MinimumEquipment: nil,
		VolumePerMuscle:  models.VolumeLow,
		RecoveryDemand:   models.RecoveryLow,
		SessionMinutes:   30,
	},
}
