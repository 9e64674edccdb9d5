package safety

import (
	"strings"

	"github.com/claude/planforge/internal/engine/match"
	"github.com/claude/planforge/internal/models"
)

// Resolver resolves safety metadata for an exercise: exact-name lookup in a
// curated table first, name-based inference as the fallback. Curated tags
// always take precedence over inference.
type Resolver struct {
	manual map[string]models.ExerciseSafetyMetadata // keyed by lowercased name
}

// NewResolver builds a resolver over the given curated table. The map is
// copied with lowercased keys so callers can hand in literal names.
func NewResolver(manual map[string]models.ExerciseSafetyMetadata) *Resolver {
	m := make(map[string]models.ExerciseSafetyMetadata, len(manual))
	for name, meta := range manual {
		m[strings.ToLower(name)] = meta
	}
	return &Resolver{manual: m}
}

// DefaultResolver returns a resolver over the built-in curated table.
func DefaultResolver() *Resolver {
	return NewResolver(curatedMetadata)
}

// Resolve returns the safety metadata for the exercise.
func (r *Resolver) Resolve(ex models.Exercise) models.ExerciseSafetyMetadata {
	if meta, ok := r.manual[strings.ToLower(ex.Name)]; ok {
		return meta
	}
	return InferMetadata(ex)
}

// Inference keyword tables. Matching is substring and case-insensitive.
var (
	supineKeywords = []string{
		"bench press", "lying", "floor press", "crunch", "sit-up", "situp",
		"glute bridge", "hip thrust", "leg raise", "dead bug", "chest fly",
	}
	proneKeywords = []string{
		"superman", "prone", "back extension", "plank", "push-up", "pushup",
	}
	highImpactKeywords = []string{
		"jump", "sprint", "burpee", "bound", "hop", "plyo", "jumping jack",
	}
	moderateImpactKeywords = []string{
		"run", "jog", "mountain climber", "skip", "shuffle",
	}
	highBalanceKeywords = []string{
		"single-leg", "single leg", "pistol", "bosu", "balance", "handstand",
		"box jump", "walking lunge",
	}
	moderateBalanceKeywords = []string{
		"lunge", "step-up", "step up", "split squat", "kettlebell swing",
		"overhead squat",
	}
	valsalvaKeywords = []string{
		"deadlift", "squat", "press", "clean", "snatch", "jerk", "row",
	}
	invertedKeywords = []string{
		"handstand", "inverted", "decline", "pike", "headstand",
	}
)

// InferMetadata derives safety metadata from the exercise name and
// equipment. It is deliberately conservative: ambiguous names inherit the
// riskier tag.
func InferMetadata(ex models.Exercise) models.ExerciseSafetyMetadata {
	name := ex.Name

	meta := models.ExerciseSafetyMetadata{
		ImpactLevel:     models.ImpactLow,
		BalanceRequired: models.BalanceLow,
	}

	meta.IsSupine = match.Any(name, supineKeywords)
	meta.IsProne = match.Any(name, proneKeywords)
	meta.IsInverted = match.Any(name, invertedKeywords)
	meta.RequiresValsalva = match.Any(name, valsalvaKeywords)

	switch {
	case match.Any(name, highImpactKeywords):
		meta.IsHighImpact = true
		meta.ImpactLevel = models.ImpactHigh
	case match.Any(name, moderateImpactKeywords):
		meta.ImpactLevel = models.ImpactModerate
	}

	switch {
	case match.Any(name, highBalanceKeywords):
		meta.BalanceRequired = models.BalanceHigh
		meta.HasFallRisk = true
	case match.Any(name, moderateBalanceKeywords):
		meta.BalanceRequired = models.BalanceModerate
	}

	return meta
}

// curatedMetadata is the manually reviewed table. Entries here override
// whatever inference would produce, in both directions: they can add tags
// inference misses and clear tags inference over-applies.
var curatedMetadata = map[string]models.ExerciseSafetyMetadata{
	"barbell back squat": {
		RequiresValsalva: true,
		ImpactLevel:      models.ImpactLow,
		BalanceRequired:  models.BalanceModerate,
	},
	"conventional deadlift": {
		RequiresValsalva: true,
		ImpactLevel:      models.ImpactLow,
		BalanceRequired:  models.BalanceLow,
	},
	"barbell bench press": {
		IsSupine:         true,
		RequiresValsalva: true,
		ImpactLevel:      models.ImpactLow,
		BalanceRequired:  models.BalanceLow,
	},
	"overhead press": {
		RequiresValsalva: true,
		ImpactLevel:      models.ImpactLow,
		BalanceRequired:  models.BalanceModerate,
	},
	"box jump": {
		IsHighImpact:    true,
		HasFallRisk:     true,
		ImpactLevel:     models.ImpactHigh,
		BalanceRequired: models.BalanceHigh,
	},
	"burpee": {
		IsHighImpact:    true,
		IsProne:         true,
		ImpactLevel:     models.ImpactHigh,
		BalanceRequired: models.BalanceModerate,
	},
	"plank": {
		IsProne:         true,
		ImpactLevel:     models.ImpactLow,
		BalanceRequired: models.BalanceLow,
	},
	"glute bridge": {
		IsSupine:        true,
		ImpactLevel:     models.ImpactLow,
		BalanceRequired: models.BalanceLow,
	},
	"handstand push-up": {
		IsInverted:      true,
		HasFallRisk:     true,
		ImpactLevel:     models.ImpactLow,
		BalanceRequired: models.BalanceHigh,
	},
	"walking lunge": {
		HasFallRisk:     true,
		ImpactLevel:     models.ImpactModerate,
		BalanceRequired: models.BalanceHigh,
	},
	"treadmill run": {
		IsHighImpact:    true,
		ImpactLevel:     models.ImpactHigh,
		BalanceRequired: models.BalanceLow,
	},
	"stationary bike": {
		ImpactLevel:     models.ImpactLow,
		BalanceRequired: models.BalanceLow,
	},
	"rowing machine": {
		ImpactLevel:     models.ImpactLow,
		BalanceRequired: models.BalanceLow,
	},
	"jump rope": {
		IsHighImpact:    true,
		ImpactLevel:     models.ImpactHigh,
		BalanceRequired: models.BalanceModerate,
	},
	"single-leg romanian deadlift": {
		HasFallRisk:      true,
		RequiresValsalva: false,
		ImpactLevel:      models.ImpactLow,
		BalanceRequired:  models.BalanceHigh,
	},
}
