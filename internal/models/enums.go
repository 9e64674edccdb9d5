package models

// Classification buckets exercises by joint count and muscle-group breadth.
type Classification string

const (
	ClassCompound  Classification = "compound"
	ClassAuxiliary Classification = "auxiliary"
	ClassIsolation Classification = "isolation"
	ClassCardio    Classification = "cardio"
)

// ExperienceLevel is the user's self-reported training experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// FitnessGoal is the user's primary training goal.
type FitnessGoal string

const (
	GoalMuscleGain  FitnessGoal = "muscle_gain"
	GoalStrength    FitnessGoal = "strength"
	GoalEndurance   FitnessGoal = "endurance"
	GoalWeightLoss  FitnessGoal = "weight_loss"
	GoalAthletic    FitnessGoal = "athletic_performance"
	GoalGeneral     FitnessGoal = "general_fitness"
	GoalFlexibility FitnessGoal = "flexibility"
	GoalMaintenance FitnessGoal = "maintenance"
)

// ImpactLevel grades how much joint impact an exercise produces.
type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "low"
	ImpactModerate ImpactLevel = "moderate"
	ImpactHigh     ImpactLevel = "high"
)

// BalanceLevel grades how much balance an exercise demands.
type BalanceLevel string

const (
	BalanceLow      BalanceLevel = "low"
	BalanceModerate BalanceLevel = "moderate"
	BalanceHigh     BalanceLevel = "high"
)

// StressLevel is the user's self-reported life stress.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
)

// RecoveryDemand grades how taxing a split is to recover from.
type RecoveryDemand string

const (
	RecoveryLow      RecoveryDemand = "low"
	RecoveryModerate RecoveryDemand = "moderate"
	RecoveryHigh     RecoveryDemand = "high"
)

// VolumeLevel grades per-muscle weekly volume qualitatively.
type VolumeLevel string

const (
	VolumeLow      VolumeLevel = "low"
	VolumeModerate VolumeLevel = "moderate"
	VolumeHigh     VolumeLevel = "high"
)

// ActivityLevel is derived from weekly training frequency; it feeds the
// split selector's recovery-capacity criterion.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityExtreme   ActivityLevel = "extreme"
)
