// Package match holds the keyword-matching helpers shared by the engine
// stages. All matching is case-insensitive substring matching: "squat"
// matches "Goblet Squat" and "Squat Jump" identically.
package match

import "strings"

// Any reports whether s contains any of the keywords.
func Any(s string, keywords []string) bool {
	ls := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(ls, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// First returns the first keyword contained in s, or "" when none match.
func First(s string, keywords []string) string {
	ls := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(ls, strings.ToLower(kw)) {
			return kw
		}
	}
	return ""
}

// AnyOf reports whether any element of list contains any of the keywords.
func AnyOf(list, keywords []string) bool {
	for _, s := range list {
		if Any(s, keywords) {
			return true
		}
	}
	return false
}

// Intersects reports whether the two lists share an element, ignoring case.
func Intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if strings.EqualFold(x, y) {
				return true
			}
		}
	}
	return false
}

// ContainsFold reports whether list contains s, ignoring case.
func ContainsFold(list []string, s string) bool {
	for _, x := range list {
		if strings.EqualFold(x, s) {
			return true
		}
	}
	return false
}
