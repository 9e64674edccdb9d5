package safety

import (
	"testing"

	"github.com/claude/planforge/internal/models"
)

func TestInferMetadata(t *testing.T) {
	tests := []struct {
		name string
		ex   models.Exercise
		want models.ExerciseSafetyMetadata
	}{
		{
			name: "supine valsalva bench press",
			ex:   models.Exercise{Name: "Dumbbell Bench Press"},
			want: models.ExerciseSafetyMetadata{IsSupine: true, RequiresValsalva: true, ImpactLevel: models.ImpactLow, BalanceRequired: models.BalanceLow},
		},
		{
			name: "high impact jump",
			ex:   models.Exercise{Name: "Box Jump Over"},
			want: models.ExerciseSafetyMetadata{IsHighImpact: true, HasFallRisk: true, ImpactLevel: models.ImpactHigh, BalanceRequired: models.BalanceHigh},
		},
		{
			name: "moderate impact run",
			ex:   models.Exercise{Name: "Hill Run"},
			want: models.ExerciseSafetyMetadata{ImpactLevel: models.ImpactModerate, BalanceRequired: models.BalanceLow},
		},
		{
			name: "prone plank variant",
			ex:   models.Exercise{Name: "Plank Shoulder Tap"},
			want: models.ExerciseSafetyMetadata{IsProne: true, ImpactLevel: models.ImpactLow, BalanceRequired: models.BalanceLow},
		},
		{
			name: "single-leg balance demand",
			ex:   models.Exercise{Name: "Single-Leg Calf Raise"},
			want: models.ExerciseSafetyMetadata{HasFallRisk: true, ImpactLevel: models.ImpactLow, BalanceRequired: models.BalanceHigh},
		},
		{
			name: "plain machine work",
			ex:   models.Exercise{Name: "Leg Extension"},
			want: models.ExerciseSafetyMetadata{ImpactLevel: models.ImpactLow, BalanceRequired: models.BalanceLow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferMetadata(tt.ex); got != tt.want {
				t.Errorf("InferMetadata(%q) = %+v, want %+v", tt.ex.Name, got, tt.want)
			}
		})
	}
}

// TestResolveCuratedWins verifies the curated table overrides inference in
// both directions.
func TestResolveCuratedWins(t *testing.T) {
	r := DefaultResolver()

	// Inference would tag any "deadlift" with valsalva; the curated entry
	// for the single-leg variant clears it.
	meta := r.Resolve(models.Exercise{Name: "Single-Leg Romanian Deadlift"})
	if meta.RequiresValsalva {
		t.Error("curated entry should clear the inferred valsalva tag")
	}
	if meta.BalanceRequired != models.BalanceHigh || !meta.HasFallRisk {
		t.Errorf("curated balance tags lost: %+v", meta)
	}

	// Lookup is case-insensitive on the exercise name.
	upper := r.Resolve(models.Exercise{Name: "BOX JUMP"})
	if !upper.IsHighImpact || !upper.HasFallRisk {
		t.Errorf("case-insensitive curated lookup failed: %+v", upper)
	}
}

func TestResolveFallsBackToInference(t *testing.T) {
	r := DefaultResolver()
	meta := r.Resolve(models.Exercise{Name: "Depth Jump"})
	if !meta.IsHighImpact {
		t.Errorf("uncurated name should fall through to inference: %+v", meta)
	}
}
