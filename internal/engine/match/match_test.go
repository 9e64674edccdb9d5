package match

import "testing"

func TestAny(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		keywords []string
		want     bool
	}{
		{name: "substring hit", s: "Goblet Squat", keywords: []string{"squat"}, want: true},
		{name: "case insensitive", s: "BARBELL CURL", keywords: []string{"curl"}, want: true},
		{name: "keyword inside word", s: "Squat Jump", keywords: []string{"jump"}, want: true},
		{name: "no hit", s: "Plank", keywords: []string{"squat", "curl"}, want: false},
		{name: "empty keywords", s: "Plank", keywords: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Any(tt.s, tt.keywords); got != tt.want {
				t.Errorf("Any(%q, %v) = %v, want %v", tt.s, tt.keywords, got, tt.want)
			}
		})
	}
}

func TestFirst(t *testing.T) {
	if got := First("Barbell Back Squat", []string{"deadlift", "squat"}); got != "squat" {
		t.Errorf("First() = %q, want %q", got, "squat")
	}
	if got := First("Plank", []string{"squat"}); got != "" {
		t.Errorf("First() = %q, want empty", got)
	}
}

func TestAnyOf(t *testing.T) {
	if !AnyOf([]string{"lower back", "glutes"}, []string{"back"}) {
		t.Error("AnyOf() missed substring match across list")
	}
	if AnyOf([]string{"chest"}, []string{"legs"}) {
		t.Error("AnyOf() reported false match")
	}
}

func TestIntersects(t *testing.T) {
	if !Intersects([]string{"Pectorals"}, []string{"pectorals", "lats"}) {
		t.Error("Intersects() should be case-insensitive")
	}
	if Intersects([]string{"lower back"}, []string{"back"}) {
		t.Error("Intersects() must use whole-element equality, not substrings")
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold([]string{"Barbell", "Dumbbell"}, "barbell") {
		t.Error("ContainsFold() should fold case")
	}
	if ContainsFold([]string{"barbell"}, "bar") {
		t.Error("ContainsFold() must not match partial elements")
	}
}
