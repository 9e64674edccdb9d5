package split

import (
	"fmt"
	"sort"

	"github.com/claude/planforge/internal/engine/match"
	"github.com/claude/planforge/internal/models"
)

// Criterion weights. They sum to 100 so a score is directly a percentage.
const (
	weightFrequency  = 30.0
	weightGoal       = 20.0
	weightEquipment  = 15.0
	weightExperience = 15.0
	weightRecovery   = 10.0
	weightVariety    = 10.0

	frequencyPenaltyPerDay = 7.0
)

// compatibleGoals is the goal adjacency table: a split listing any goal on
// the right earns partial credit for a user with the goal on the left.
var compatibleGoals = map[models.FitnessGoal][]models.FitnessGoal{
	models.GoalWeightLoss:  {models.GoalEndurance, models.GoalGeneral},
	models.GoalMuscleGain:  {models.GoalStrength, models.GoalAthletic},
	models.GoalStrength:    {models.GoalMuscleGain, models.GoalAthletic},
	models.GoalEndurance:   {models.GoalWeightLoss, models.GoalGeneral, models.GoalAthletic},
	models.GoalAthletic:    {models.GoalStrength, models.GoalEndurance, models.GoalMuscleGain},
	models.GoalGeneral:     {models.GoalWeightLoss, models.GoalEndurance, models.GoalMaintenance},
	models.GoalFlexibility: {models.GoalMaintenance, models.GoalGeneral},
	models.GoalMaintenance: {models.GoalGeneral, models.GoalFlexibility},
}

// ScoredSplit is one template with its total score and the per-criterion
// breakdown trace.
type ScoredSplit struct {
	Split     models.WorkoutSplit
	Score     float64
	Breakdown []string
}

// Selection always holds exactly one selected split plus up to three ranked
// alternatives. There is no "no split found" state: the lowest scorer still
// wins when everything scores poorly.
type Selection struct {
	Selected     ScoredSplit
	Alternatives []ScoredSplit
}

// Select scores every template against the profile and returns the best
// match. Ties keep template declaration order (stable sort).
func Select(profile models.UserProfile) Selection {
	return SelectFrom(Templates(), profile)
}

// SelectFrom scores the given templates; split out so tests can run against
// a reduced set.
func SelectFrom(splits []models.WorkoutSplit, profile models.UserProfile) Selection {
	scored := make([]ScoredSplit, 0, len(splits))
	for _, s := range splits {
		scored = append(scored, Score(s, profile))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	sel := Selection{Selected: scored[0]}
	rest := scored[1:]
	if len(rest) > 3 {
		rest = rest[:3]
	}
	sel.Alternatives = append(sel.Alternatives, rest...)
	return sel
}

// Score computes the weighted sum for one split, recording each criterion's
// contribution in the breakdown.
func Score(s models.WorkoutSplit, profile models.UserProfile) ScoredSplit {
	out := ScoredSplit{Split: s}

	add := func(label string, pts, max float64) {
		out.Score += pts
		out.Breakdown = append(out.Breakdown, fmt.Sprintf("%s: %.1f/%.0f", label, pts, max))
	}

	add("frequency", frequencyScore(s, profile), weightFrequency)
	add("goal", goalScore(s, profile), weightGoal)
	add("equipment", equipmentScore(s, profile), weightEquipment)
	add("experience", experienceScore(s, profile), weightExperience)
	add("recovery", recoveryScore(s, profile), weightRecovery)
	add("variety", varietyScore(s, profile), weightVariety)

	return out
}

// frequencyScore gives full credit inside the split's ideal range, then
// deducts 7 points per day of distance, floored at zero.
func frequencyScore(s models.WorkoutSplit, profile models.UserProfile) float64 {
	freq := profile.WorkoutsPerWeek
	if freq >= s.MinFrequency && freq <= s.MaxFrequency {
		return weightFrequency
	}
	var gap int
	if freq < s.MinFrequency {
		gap = s.MinFrequency - freq
	} else {
		gap = freq - s.MaxFrequency
	}
	pts := weightFrequency - frequencyPenaltyPerDay*float64(gap)
	if pts < 0 {
		return 0
	}
	return pts
}

func goalScore(s models.WorkoutSplit, profile models.UserProfile) float64 {
	if s.SupportsGoal(profile.FitnessGoal) {
		return weightGoal
	}
	for _, g := range compatibleGoals[profile.FitnessGoal] {
		if s.SupportsGoal(g) {
			return weightGoal / 2
		}
	}
	return 0
}

// equipmentScore gives full credit when every required item is available
// and proportional credit otherwise. A barbell satisfies a dumbbell
// requirement; bodyweight requirements are always satisfied.
func equipmentScore(s models.WorkoutSplit, profile models.UserProfile) float64 {
	if len(s.MinimumEquipment) == 0 {
		return weightEquipment
	}
	available := 0
	for _, req := range s.MinimumEquipment {
		if HasEquipment(profile.AvailableEquipment, req) {
			available++
		}
	}
	return weightEquipment * float64(available) / float64(len(s.MinimumEquipment))
}

// HasEquipment reports whether the user's equipment satisfies one required
// item. Shared with the exercise selector so both stages agree on the
// barbell-for-dumbbell substitution.
func HasEquipment(owned []string, required string) bool {
	if required == "" || required == "bodyweight" || required == "none" {
		return true
	}
	if match.ContainsFold(owned, required) {
		return true
	}
	if required == "dumbbell" && match.ContainsFold(owned, "barbell") {
		return true
	}
	return false
}

func experienceScore(s models.WorkoutSplit, profile models.UserProfile) float64 {
	if s.SupportsExperience(profile.ExperienceLevel) {
		return weightExperience
	}
	switch profile.ExperienceLevel {
	case models.ExperienceAdvanced:
		return 10
	case models.ExperienceBeginner:
		if s.SupportsExperience(models.ExperienceIntermediate) {
			return 7
		}
	case models.ExperienceIntermediate:
		if s.SupportsExperience(models.ExperienceBeginner) {
			return 5
		}
	}
	return 0
}

// recoveryScore rewards splits whose recovery demand matches the user's
// capacity: stressed or senior users get low-demand splits, highly active
// users get high-demand splits, everyone else gets moderate-demand splits.
func recoveryScore(s models.WorkoutSplit, profile models.UserProfile) float64 {
	limited := profile.StressLevel == models.StressHigh || profile.Age >= 65
	activity := profile.ActivityLevel()

	switch {
	case limited:
		switch s.RecoveryDemand {
		case models.RecoveryLow:
			return 10
		case models.RecoveryModerate:
			return 5
		default:
			return 0
		}
	case activity == models.ActivityActive || activity == models.ActivityExtreme:
		switch s.RecoveryDemand {
		case models.RecoveryHigh:
			return 10
		case models.RecoveryModerate:
			return 5
		default:
			return 0
		}
	default:
		switch s.RecoveryDemand {
		case models.RecoveryModerate:
			return 10
		case models.RecoveryLow:
			return 5
		default:
			return 0
		}
	}
}

// varietyScore rewards distinct training days for variety-seeking users and
// simpler structures otherwise.
func varietyScore(s models.WorkoutSplit, profile models.UserProfile) float64 {
	if profile.PrefersVariety {
		switch distinct := s.DistinctDayNames(); {
		case distinct >= 4:
			return 10
		case distinct == 3:
			return 7
		default:
			return 3
		}
	}
	if len(s.Days) <= 3 {
		return 10
	}
	return 5
}
