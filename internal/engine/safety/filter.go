package safety

import (
	"fmt"

	"github.com/claude/planforge/internal/engine/match"
	"github.com/claude/planforge/internal/models"
)

// MinSafePool is the default minimum number of safety-passed exercises the
// caller should require before trusting a generated plan.
const MinSafePool = 5

// Result is the filter output. The filter never errors: an empty Allowed
// list is a valid, degenerate result the caller checks against MinSafePool.
type Result struct {
	Allowed                  []models.Exercise
	Excluded                 []models.ExclusionRecord
	Warnings                 []string
	RequiresMedicalClearance bool
}

// Filter removes exercises unsafe for a user's medical, injury, pregnancy,
// and age profile. Rules apply in strict priority order: pregnancy, then
// medical conditions, then injuries, then breastfeeding/age advisories,
// then medication advisories. Pregnancy and diagnosed disease carry the
// highest safety cost of a false negative, so they go first.
type Filter struct {
	rules    RuleSet
	resolver *Resolver
}

// NewFilter builds a filter over the given rule set and metadata resolver.
func NewFilter(rules RuleSet, resolver *Resolver) *Filter {
	return &Filter{rules: rules, resolver: resolver}
}

// DefaultFilter returns a filter over the built-in tables.
func DefaultFilter() *Filter {
	return NewFilter(DefaultRuleSet(), DefaultResolver())
}

// Apply runs every rule tier against the candidate list. The output list is
// always a subset of the input; no exercise is ever added.
func (f *Filter) Apply(candidates []models.Exercise, profile models.UserProfile) Result {
	var res Result

	// Collect matched rules once; per-exercise checks reuse them.
	var preg *PregnancyRule
	if profile.Pregnant {
		rule, ok := f.rules.Pregnancy[profile.PregnancyTrimester]
		if !ok {
			rule = f.rules.Pregnancy[3] // unknown trimester: most conservative
		}
		preg = &rule
		res.RequiresMedicalClearance = true
		res.Warnings = append(res.Warnings, rule.Advisory, rule.IntensityCap)
	}

	var conditions []ConditionRule
	for _, rule := range f.rules.Conditions {
		if matchesAnyEntry(profile.MedicalConditions, rule.Keywords) {
			conditions = append(conditions, rule)
			res.Warnings = append(res.Warnings, rule.Warning)
			if rule.RequiresClearance {
				res.RequiresMedicalClearance = true
			}
		}
	}

	var injuries []InjuryRule
	for _, rule := range f.rules.Injuries {
		if matchesAnyEntry(profile.Injuries, rule.Keywords) {
			injuries = append(injuries, rule)
		}
	}

	senior := profile.Age >= f.rules.SeniorAge
	if senior {
		res.Warnings = append(res.Warnings, f.rules.SeniorAdvisory)
	}
	if profile.Breastfeeding {
		res.Warnings = append(res.Warnings, f.rules.BreastfeedingAdvisory)
	}
	for _, rule := range f.rules.Medications {
		if matchesAnyEntry(profile.Medications, rule.Keywords) {
			res.Warnings = append(res.Warnings, rule.Warning)
		}
	}

	for _, ex := range candidates {
		meta := f.resolver.Resolve(ex)
		var reasons []string

		if preg != nil {
			reasons = append(reasons, pregnancyReasons(ex, meta, *preg)...)
		}
		for _, rule := range conditions {
			if match.Any(ex.Name, rule.ExcludeKeywords) {
				reasons = append(reasons, fmt.Sprintf("unsuitable with reported %s", rule.Name))
			}
		}
		for _, rule := range injuries {
			// Region exclusion matches body parts and muscles both: "lower
			// back" is a muscle in the catalog vocabulary, not a body part.
			if match.AnyOf(ex.BodyParts, rule.ExcludedBodyParts) || match.AnyOf(ex.MuscleUnion(), rule.ExcludedBodyParts) {
				reasons = append(reasons, fmt.Sprintf("loads the %s region", rule.Region))
			} else if match.Any(ex.Name, rule.ExcludeKeywords) {
				reasons = append(reasons, fmt.Sprintf("may aggravate a reported %s issue", rule.Region))
			}
		}
		if senior && (meta.BalanceRequired == models.BalanceHigh || meta.HasFallRisk) {
			reasons = append(reasons, "high balance demand or fall risk at age 65+")
		}

		if len(reasons) > 0 {
			res.Excluded = append(res.Excluded, models.ExclusionRecord{
				ExerciseID: ex.ID,
				Name:       ex.Name,
				Reasons:    reasons,
			})
			continue
		}
		res.Allowed = append(res.Allowed, ex)
	}

	return res
}

func pregnancyReasons(ex models.Exercise, meta models.ExerciseSafetyMetadata, rule PregnancyRule) []string {
	var reasons []string
	if rule.ExcludeSupine && meta.IsSupine {
		reasons = append(reasons, fmt.Sprintf("supine position in trimester %d", rule.Trimester))
	}
	if rule.ExcludeHighImpact && meta.IsHighImpact {
		reasons = append(reasons, fmt.Sprintf("high impact in trimester %d", rule.Trimester))
	}
	if rule.ExcludeProne && meta.IsProne {
		reasons = append(reasons, fmt.Sprintf("prone position in trimester %d", rule.Trimester))
	}
	if match.Any(ex.Name, rule.ExcludeKeywords) {
		reasons = append(reasons, fmt.Sprintf("movement pattern flagged for trimester %d", rule.Trimester))
	}
	return reasons
}

// matchesAnyEntry reports whether any free-text entry contains any keyword.
func matchesAnyEntry(entries, keywords []string) bool {
	for _, entry := range entries {
		if match.Any(entry, keywords) {
			return true
		}
	}
	return false
}
