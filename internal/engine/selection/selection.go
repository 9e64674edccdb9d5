// Package selection picks a varied, weekly-rotated exercise subset for each
// training day from the safety-passed, classified pool.
package selection

import (
	"sort"

	"github.com/claude/planforge/internal/engine/match"
	"github.com/claude/planforge/internal/engine/split"
	"github.com/claude/planforge/internal/models"
)

// MesocycleWeeks is the fixed rotation period: selection rotates over a
// 4-week mesocycle, so week 1 and week 5 produce identical rotation.
const MesocycleWeeks = 4

// RotationOffset returns the bucket rotation for a mesocycle week.
func RotationOffset(weekNumber int) int {
	if weekNumber < 1 {
		weekNumber = 1
	}
	return (weekNumber - 1) % MesocycleWeeks
}

// countBounds is the per-experience exercise-count envelope.
type countBounds struct {
	min, max          int
	avgMinutesPerLift int
}

var boundsByExperience = map[models.ExperienceLevel]countBounds{
	models.ExperienceBeginner:     {min: 5, max: 8, avgMinutesPerLift: 8},
	models.ExperienceIntermediate: {min: 6, max: 10, avgMinutesPerLift: 7},
	models.ExperienceAdvanced:     {min: 7, max: 12, avgMinutesPerLift: 6},
}

// quota is the per-bucket share of the day target, each individually capped.
type quota struct {
	compoundFrac, auxiliaryFrac, isolationFrac float64
	compoundCap, auxiliaryCap, isolationCap    int
}

type quotaKey struct {
	level         models.ExperienceLevel
	compoundFocus bool
}

var quotaTable = map[quotaKey]quota{
	{models.ExperienceBeginner, true}:      {0.50, 0.30, 0.20, 4, 3, 2},
	{models.ExperienceBeginner, false}:     {0.30, 0.40, 0.30, 3, 3, 3},
	{models.ExperienceIntermediate, true}:  {0.50, 0.30, 0.20, 5, 3, 3},
	{models.ExperienceIntermediate, false}: {0.35, 0.35, 0.30, 4, 4, 3},
	{models.ExperienceAdvanced, true}:      {0.45, 0.35, 0.20, 6, 4, 3},
	{models.ExperienceAdvanced, false}:     {0.35, 0.35, 0.30, 5, 4, 4},
}

// DayTarget computes how many exercises a session should hold:
// clamp(floor((sessionMinutes-10)/avg), min, max), minus one on schedules
// of five or more days per week.
func DayTarget(level models.ExperienceLevel, sessionMinutes, daysPerWeek int) int {
	b, ok := boundsByExperience[level]
	if !ok {
		b = boundsByExperience[models.ExperienceBeginner]
	}
	target := (sessionMinutes - 10) / b.avgMinutesPerLift
	if target < b.min {
		target = b.min
	}
	if target > b.max {
		target = b.max
	}
	if daysPerWeek >= 5 {
		target--
	}
	return target
}

// ForDay selects exercises for one training day. It never errors: a thin
// relevant pool simply yields fewer exercises than the target.
func ForDay(pool []models.ClassifiedExercise, day models.WorkoutDay, profile models.UserProfile, daysPerWeek, weekNumber int, sessionMinutes int) []models.ClassifiedExercise {
	relevant := filterRelevant(pool, day)

	// Cardio-classified work rides in the auxiliary bucket; cardio days use
	// the auxiliary parameter table downstream.
	var compounds, auxiliaries, isolations []models.ClassifiedExercise
	for _, ex := range relevant {
		switch ex.Classification {
		case models.ClassCompound:
			compounds = append(compounds, ex)
		case models.ClassIsolation:
			isolations = append(isolations, ex)
		default:
			auxiliaries = append(auxiliaries, ex)
		}
	}

	target := DayTarget(profile.ExperienceLevel, sessionMinutes, daysPerWeek)
	q, ok := quotaTable[quotaKey{profile.ExperienceLevel, day.CompoundFocus}]
	if !ok {
		q = quotaTable[quotaKey{models.ExperienceBeginner, false}]
	}

	offset := RotationOffset(weekNumber)
	picker := &varietyPicker{owned: profile.AvailableEquipment}

	selected := picker.pick(compounds, bucketQuota(target, q.compoundFrac, q.compoundCap), offset)
	selected = append(selected, picker.pick(auxiliaries, bucketQuota(target, q.auxiliaryFrac, q.auxiliaryCap), offset)...)
	selected = append(selected, picker.pick(isolations, bucketQuota(target, q.isolationFrac, q.isolationCap), offset)...)

	// Backfill preferentially from the auxiliary bucket when short.
	if len(selected) < target {
		selected = append(selected, picker.pick(auxiliaries, target-len(selected), offset)...)
	}
	if len(selected) < target {
		selected = append(selected, picker.pick(isolations, target-len(selected), offset)...)
	}

	// Final user exclude-list filter; counts are re-derived by the caller
	// from whatever remains.
	if len(profile.ExcludedExerciseIDs) > 0 {
		kept := selected[:0]
		for _, ex := range selected {
			if !match.ContainsFold(profile.ExcludedExerciseIDs, ex.ID) {
				kept = append(kept, ex)
			}
		}
		selected = kept
	}

	return selected
}

func bucketQuota(target int, frac float64, limit int) int {
	n := int(frac*float64(target) + 0.5)
	if n > limit {
		n = limit
	}
	if n < 0 {
		n = 0
	}
	return n
}

// filterRelevant keeps exercises whose body parts or muscles intersect the
// day's targets.
func filterRelevant(pool []models.ClassifiedExercise, day models.WorkoutDay) []models.ClassifiedExercise {
	var out []models.ClassifiedExercise
	for _, ex := range pool {
		if match.Intersects(ex.BodyParts, day.FocusAreas) || match.Intersects(ex.MuscleUnion(), day.MuscleGroups) {
			out = append(out, ex)
		}
	}
	return out
}

// varietyPicker greedily accepts candidates that introduce a new primary
// muscle or a new equipment type relative to what this day already holds,
// then falls back to top-of-list fill. State carries across buckets so the
// whole day stays varied.
type varietyPicker struct {
	owned       []string
	seenMuscles []string
	seenEquip   []string
	taken       []string // exercise IDs already selected today
}

func (p *varietyPicker) pick(bucket []models.ClassifiedExercise, n, offset int) []models.ClassifiedExercise {
	if n <= 0 || len(bucket) == 0 {
		return nil
	}

	rotated := rotate(bucket, offset)
	type scored struct {
		ex    models.ClassifiedExercise
		score float64
	}
	ranked := make([]scored, 0, len(rotated))
	for i, ex := range rotated {
		s := float64(ex.ComplexityScore)
		if p.available(ex) {
			s += 10
		}
		s -= 0.01 * float64(i) // positional tiebreak: earlier after rotation wins
		ranked = append(ranked, scored{ex: ex, score: s})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	var out []models.ClassifiedExercise
	accept := func(ex models.ClassifiedExercise) {
		out = append(out, ex)
		p.taken = append(p.taken, ex.ID)
		for _, m := range ex.TargetMuscles {
			if !match.ContainsFold(p.seenMuscles, m) {
				p.seenMuscles = append(p.seenMuscles, m)
			}
		}
		for _, eq := range ex.Equipment {
			if !match.ContainsFold(p.seenEquip, eq) {
				p.seenEquip = append(p.seenEquip, eq)
			}
		}
	}

	// Pass 1: variety-constrained.
	for _, c := range ranked {
		if len(out) >= n {
			break
		}
		if match.ContainsFold(p.taken, c.ex.ID) {
			continue
		}
		if p.introducesVariety(c.ex) {
			accept(c.ex)
		}
	}
	// Pass 2: top-of-list fill when variety can't be satisfied.
	for _, c := range ranked {
		if len(out) >= n {
			break
		}
		if match.ContainsFold(p.taken, c.ex.ID) {
			continue
		}
		accept(c.ex)
	}

	return out
}

func (p *varietyPicker) introducesVariety(ex models.ClassifiedExercise) bool {
	if len(p.seenMuscles) == 0 && len(p.seenEquip) == 0 {
		return true
	}
	for _, m := range ex.TargetMuscles {
		if !match.ContainsFold(p.seenMuscles, m) {
			return true
		}
	}
	for _, eq := range ex.Equipment {
		if !match.ContainsFold(p.seenEquip, eq) {
			return true
		}
	}
	return false
}

func (p *varietyPicker) available(ex models.ClassifiedExercise) bool {
	if len(ex.Equipment) == 0 {
		return true
	}
	for _, eq := range ex.Equipment {
		if split.HasEquipment(p.owned, eq) {
			return true
		}
	}
	return false
}

func rotate(list []models.ClassifiedExercise, offset int) []models.ClassifiedExercise {
	if len(list) == 0 {
		return nil
	}
	k := offset % len(list)
	out := make([]models.ClassifiedExercise, 0, len(list))
	out = append(out, list[k:]...)
	out = append(out, list[:k]...)
	return out
}
