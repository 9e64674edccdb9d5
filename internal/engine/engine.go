// Package engine is the deterministic workout-generation pipeline: safety
// filtering, split selection, classification, per-day exercise selection,
// and parameter assignment. A single Generate call is pure and synchronous:
// identical inputs (including week number) always produce identical output.
package engine

import (
	"github.com/claude/planforge/internal/engine/classify"
	"github.com/claude/planforge/internal/engine/params"
	"github.com/claude/planforge/internal/engine/safety"
	"github.com/claude/planforge/internal/engine/selection"
	"github.com/claude/planforge/internal/engine/split"
	"github.com/claude/planforge/internal/models"
)

// Engine bundles the rule tables and resolver one generation run consults.
// All fields are immutable after construction, so a single Engine is safe
// to share across concurrent calls.
type Engine struct {
	filter      *safety.Filter
	resolver    *safety.Resolver
	minSafePool int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules swaps the safety rule tables, for tests or tuning.
func WithRules(rules safety.RuleSet) Option {
	return func(e *Engine) { e.filter = safety.NewFilter(rules, e.resolver) }
}

// WithMinSafePool overrides the minimum safety-passed pool size below which
// the fallback program is substituted.
func WithMinSafePool(n int) Option {
	return func(e *Engine) { e.minSafePool = n }
}

// New builds an engine over the default rule tables and curated metadata.
func New(opts ...Option) *Engine {
	e := &Engine{
		resolver:    safety.DefaultResolver(),
		minSafePool: safety.MinSafePool,
	}
	e.filter = safety.NewFilter(safety.DefaultRuleSet(), e.resolver)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClassifyCatalog returns every exercise with its resolved safety metadata
// and training classification attached, in catalog order.
func (e *Engine) ClassifyCatalog(catalog []models.Exercise) []models.ClassifiedExercise {
	return classify.All(catalog, e.resolver.Resolve)
}

// Preview runs only the safety tier against a profile, for explainability
// surfaces that want the allowed/excluded breakdown without a full plan.
func (e *Engine) Preview(catalog []models.Exercise, profile models.UserProfile) safety.Result {
	return e.filter.Apply(catalog, profile)
}

// Generate produces the weekly plan for the given profile, catalog, and
// mesocycle week number. It never returns an error: when the safe pool is
// too thin it returns the fixed gentle-movement fallback program instead.
func (e *Engine) Generate(profile models.UserProfile, catalog []models.Exercise, weekNumber int) models.WeeklyExercisePlan {
	if weekNumber < 1 {
		weekNumber = 1
	}

	filtered := e.filter.Apply(catalog, profile)

	if len(filtered.Allowed) < e.minSafePool {
		return e.fallbackPlan(profile, weekNumber, filtered)
	}

	sel := split.Select(profile)
	chosen := sel.Selected.Split

	classified := classify.All(filtered.Allowed, e.resolver.Resolve)
	med := params.NewMedicalAdjuster(profile)

	plan := models.WeeklyExercisePlan{
		WeekNumber:               weekNumber,
		SplitID:                  chosen.ID,
		SplitName:                chosen.Name,
		Warnings:                 append([]string{}, filtered.Warnings...),
		RequiresMedicalClearance: filtered.RequiresMedicalClearance,
		Excluded:                 filtered.Excluded,
		SplitScore:               sel.Selected.Score,
		SplitTrace:               sel.Selected.Breakdown,
	}
	plan.Warnings = append(plan.Warnings, med.Warnings()...)
	for _, alt := range sel.Alternatives {
		plan.SplitAlternatives = append(plan.SplitAlternatives, models.SplitAlternative{
			SplitID:   alt.Split.ID,
			SplitName: alt.Split.Name,
			Score:     alt.Score,
		})
	}

	sessionMinutes := profile.SessionMinutes(chosen.SessionMinutes)
	daysPerWeek := len(chosen.Days)

	for _, day := range chosen.Days {
		picked := selection.ForDay(classified, day, profile, daysPerWeek, weekNumber, sessionMinutes)

		dayPlan := models.WorkoutDayExercises{
			DayName:           day.Name,
			WorkoutType:       day.WorkoutType,
			Counts:            make(map[models.Classification]int),
			Warmup:            params.Warmup(day.WorkoutType),
			Cooldown:          params.Cooldown(),
			CoachingTips:      params.WorkoutTips(day, profile),
			ProgressionNotes:  params.ProgressionNotes(weekNumber, profile.FitnessGoal),
			EstimatedCalories: params.EstimateCalories(profile, sessionMinutes),
		}
		for _, ex := range picked {
			p := params.Assign(ex, profile, med)
			dayPlan.Exercises = append(dayPlan.Exercises, models.WorkoutExercise{
				ExerciseID:  ex.ID,
				Name:        ex.Name,
				Sets:        p.Sets,
				Reps:        params.RenderReps(p),
				RestSeconds: p.RestSeconds,
				Tempo:       p.Tempo,
				Notes:       params.ExerciseNotes(ex, profile),
			})
			dayPlan.Counts[ex.Classification]++
		}
		plan.Days = append(plan.Days, dayPlan)
	}

	plan.BalanceWarnings = balanceCheck(plan.Days, classified)

	return plan
}
