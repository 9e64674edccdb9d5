// Package params assigns sets, reps, rest, and tempo per exercise, applies
// goal and medical modifiers, and produces warmup/cooldown sequences,
// coaching notes, and a calorie estimate.
package params

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/claude/planforge/internal/engine/match"
	"github.com/claude/planforge/internal/models"
)

// Prescription is the numeric working state before rendering into a
// models.WorkoutExercise.
type Prescription struct {
	Sets        int
	RepsMin     int
	RepsMax     int
	RestSeconds int
	Tempo       string
	Timed       bool // reps are seconds of work, not counts
}

// baseEntry is one cell of the (experience x classification) base table.
type baseEntry struct {
	sets, repsMin, repsMax, rest int
	tempo                        string
}

type baseKey struct {
	level models.ExperienceLevel
	class models.Classification
}

// Cardio uses the auxiliary row with timed work; see Base.
var baseTable = map[baseKey]baseEntry{
	{models.ExperienceBeginner, models.ClassCompound}:      {3, 10, 12, 90, "2-0-2"},
	{models.ExperienceBeginner, models.ClassAuxiliary}:     {3, 10, 12, 60, "2-0-2"},
	{models.ExperienceBeginner, models.ClassIsolation}:     {2, 12, 15, 45, "2-0-2"},
	{models.ExperienceIntermediate, models.ClassCompound}:  {4, 8, 10, 120, "2-0-2"},
	{models.ExperienceIntermediate, models.ClassAuxiliary}: {3, 10, 12, 75, "2-0-2"},
	{models.ExperienceIntermediate, models.ClassIsolation}: {3, 12, 15, 60, "2-1-2"},
	{models.ExperienceAdvanced, models.ClassCompound}:      {5, 6, 8, 180, "3-1-2"},
	{models.ExperienceAdvanced, models.ClassAuxiliary}:     {4, 8, 12, 90, "2-0-2"},
	{models.ExperienceAdvanced, models.ClassIsolation}:     {3, 12, 20, 60, "2-1-2"},
}

// timed work bounds (seconds) per experience for cardio-classified work.
var cardioSeconds = map[models.ExperienceLevel][2]int{
	models.ExperienceBeginner:     {30, 45},
	models.ExperienceIntermediate: {45, 60},
	models.ExperienceAdvanced:     {60, 90},
}

// Base returns the starting prescription for an exercise class. Cardio
// borrows the auxiliary row (sets/rest) with timed reps and a steady tempo.
func Base(level models.ExperienceLevel, class models.Classification) Prescription {
	if class == models.ClassCardio {
		aux := lookupBase(level, models.ClassAuxiliary)
		secs := cardioSeconds[level]
		if secs == [2]int{} {
			secs = cardioSeconds[models.ExperienceBeginner]
		}
		return Prescription{
			Sets:        aux.sets,
			RepsMin:     secs[0],
			RepsMax:     secs[1],
			RestSeconds: aux.rest,
			Tempo:       "steady",
			Timed:       true,
		}
	}
	e := lookupBase(level, class)
	return Prescription{Sets: e.sets, RepsMin: e.repsMin, RepsMax: e.repsMax, RestSeconds: e.rest, Tempo: e.tempo}
}

func lookupBase(level models.ExperienceLevel, class models.Classification) baseEntry {
	if e, ok := baseTable[baseKey{level, class}]; ok {
		return e
	}
	return baseTable[baseKey{models.ExperienceBeginner, models.ClassAuxiliary}]
}

// GoalAdjustment multiplies the base prescription and may override tempo.
type GoalAdjustment struct {
	RepsMult      float64
	SetsMult      float64
	RestMult      float64
	TempoOverride string
	IntensityNote string
}

var goalAdjustments = map[models.FitnessGoal]GoalAdjustment{
	models.GoalMuscleGain:  {1.0, 1.1, 0.9, "", "Take working sets close to failure, leaving 1-2 reps in reserve."},
	models.GoalStrength:    {0.7, 1.2, 1.3, "3-1-1", "Heavy loads demand full recovery: do not cut rests short."},
	models.GoalEndurance:   {1.5, 0.9, 0.6, "2-0-2", "Short rests keep the heart rate elevated through the session."},
	models.GoalWeightLoss:  {1.3, 1.0, 0.7, "", "Keep rest periods short to maximize energy expenditure."},
	models.GoalAthletic:    {0.9, 1.1, 1.0, "1-0-1", "Move the load with intent: speed and quality over grinding fatigue."},
	models.GoalGeneral:     {1.0, 1.0, 1.0, "", "Work at a steady RPE 6-7 and leave each session feeling capable of more."},
	models.GoalFlexibility: {1.2, 0.8, 0.8, "3-2-3", "Slow tempo through the fullest pain-free range of motion."},
	models.GoalMaintenance: {1.0, 0.9, 1.0, "", "Hold current loads and focus on crisp movement quality."},
}

// GoalNote returns the goal's intensity note for workout-level tips.
func GoalNote(goal models.FitnessGoal) string {
	return goalAdjustments[goal].IntensityNote
}

// ApplyGoal scales the prescription by the goal table. Rep bounds are
// multiplied and rounded with max clamped >= min and min clamped >= 1;
// sets are rounded and clamped >= 1. Timed (cardio) rep bounds are left
// alone so durations stay sensible.
func ApplyGoal(p Prescription, goal models.FitnessGoal) Prescription {
	adj, ok := goalAdjustments[goal]
	if !ok {
		return p
	}
	if !p.Timed {
		p.RepsMin = roundMult(p.RepsMin, adj.RepsMult)
		p.RepsMax = roundMult(p.RepsMax, adj.RepsMult)
	}
	p.Sets = roundMult(p.Sets, adj.SetsMult)
	p.RestSeconds = roundMult(p.RestSeconds, adj.RestMult)
	if adj.TempoOverride != "" && !p.Timed {
		p.Tempo = adj.TempoOverride
	}
	return clampFloors(p)
}

// MedicalAdjuster applies the cumulative, individually clamped medical
// modifiers and reports the warnings they emit. Build one per generation
// run so condition matching happens once, not per exercise.
type MedicalAdjuster struct {
	setsMult  float64
	restFloor int
	warnings  []string
}

// NewMedicalAdjuster inspects the profile and precomputes the combined
// modifier. Modifiers are cumulative; each is clamped independently.
func NewMedicalAdjuster(profile models.UserProfile) *MedicalAdjuster {
	m := &MedicalAdjuster{setsMult: 1.0}

	raiseFloor := func(floor int) {
		if floor > m.restFloor {
			m.restFloor = floor
		}
	}

	if profile.Pregnant {
		switch profile.PregnancyTrimester {
		case 2:
			m.setsMult *= 0.8
			raiseFloor(90)
			m.warnings = append(m.warnings, "Trimester 2: set volume reduced 20% and rests lengthened.")
		case 3:
			m.setsMult *= 0.6
			raiseFloor(120)
			m.warnings = append(m.warnings, "Trimester 3: set volume reduced 40% and rests lengthened.")
		}
	}
	if hasCondition(profile, []string{"heart", "cardiac", "cardiovascular"}) {
		m.setsMult *= 0.6
		raiseFloor(180)
		m.warnings = append(m.warnings, "Heart condition: set volume reduced 40% with full three-minute rests.")
	}
	if hasCondition(profile, []string{"hypertension", "high blood pressure"}) {
		raiseFloor(120)
		m.warnings = append(m.warnings, "Hypertension: rests lengthened to keep blood pressure response moderate.")
	}
	if profile.StressLevel == models.StressHigh {
		m.setsMult *= 0.8
		m.warnings = append(m.warnings, "High stress: set volume reduced 20% to protect recovery.")
	}
	if profile.Age >= 65 {
		m.setsMult *= 0.8
		raiseFloor(120)
		m.warnings = append(m.warnings, "Age 65+: set volume reduced 20% and rests lengthened.")
	}

	return m
}

// Warnings returns the modifier warnings, one per active modifier.
func (m *MedicalAdjuster) Warnings() []string {
	return m.warnings
}

// Apply scales a prescription by the combined medical modifier.
func (m *MedicalAdjuster) Apply(p Prescription) Prescription {
	p.Sets = roundMult(p.Sets, m.setsMult)
	if p.RestSeconds < m.restFloor {
		p.RestSeconds = m.restFloor
	}
	return clampFloors(p)
}

func hasCondition(profile models.UserProfile, keywords []string) bool {
	for _, c := range profile.MedicalConditions {
		if match.Any(c, keywords) {
			return true
		}
	}
	return false
}

// clampFloors enforces the unconditional invariants: sets >= 1, rep lower
// bound >= 1 and <= the upper bound, rest >= 0.
func clampFloors(p Prescription) Prescription {
	if p.Sets < 1 {
		p.Sets = 1
	}
	if p.RepsMin < 1 {
		p.RepsMin = 1
	}
	if p.RepsMax < p.RepsMin {
		p.RepsMax = p.RepsMin
	}
	if p.RestSeconds < 0 {
		p.RestSeconds = 0
	}
	return p
}

func roundMult(v int, mult float64) int {
	return int(math.Round(float64(v) * mult))
}

// RenderReps formats the rep prescription: a plain count, a "min-max"
// range, or a duration for timed work.
func RenderReps(p Prescription) string {
	if p.Timed {
		if p.RepsMin == p.RepsMax {
			return fmt.Sprintf("%d sec", p.RepsMin)
		}
		return fmt.Sprintf("%d-%d sec", p.RepsMin, p.RepsMax)
	}
	if p.RepsMin == p.RepsMax {
		return strconv.Itoa(p.RepsMin)
	}
	return fmt.Sprintf("%d-%d", p.RepsMin, p.RepsMax)
}

// ParseReps parses a rendered rep string back into bounds. Used by tests
// and by callers that post-process plans.
func ParseReps(s string) (min, max int, timed bool, err error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutSuffix(s, " sec"); ok {
		timed = true
		s = rest
	}
	lo, hi, found := strings.Cut(s, "-")
	min, err = strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, false, fmt.Errorf("parsing reps %q: %w", s, err)
	}
	if !found {
		return min, min, timed, nil
	}
	max, err = strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, false, fmt.Errorf("parsing reps %q: %w", s, err)
	}
	return min, max, timed, nil
}

// Assign produces the final prescription for one classified exercise.
func Assign(ex models.ClassifiedExercise, profile models.UserProfile, med *MedicalAdjuster) Prescription {
	p := Base(profile.ExperienceLevel, ex.Classification)
	p = ApplyGoal(p, profile.FitnessGoal)
	p = med.Apply(p)
	return p
}
