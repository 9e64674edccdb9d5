package media

import (
	"fmt"
	"strings"

	"github.com/claude/planforge/internal/models"
)

// curatedLibrary serves professionally filmed loops for the most common
// barbell and dumbbell movements. Free tier, highest priority.
type curatedLibrary struct{}

// curatedSlugs maps lowercased exercise names to asset slugs.
var curatedSlugs = map[string]string{
	"barbell back squat":    "barbell-back-squat-side",
	"conventional deadlift": "conventional-deadlift-side",
	"barbell bench press":   "barbell-bench-press-45",
	"overhead press":        "overhead-press-front",
	"bent-over row":         "bent-over-row-side",
	"pull-up":               "pull-up-rear",
	"romanian deadlift":     "romanian-deadlift-side",
	"walking lunge":         "walking-lunge-side",
	"barbell hip thrust":    "barbell-hip-thrust-side",
	"dumbbell curl":         "dumbbell-curl-front",
}

func (curatedLibrary) Name() string  { return "curated" }
func (curatedLibrary) Premium() bool { return false }

func (curatedLibrary) HasMedia(ex models.Exercise) bool {
	_, ok := curatedSlugs[strings.ToLower(ex.Name)]
	return ok
}

func (curatedLibrary) MediaURL(ex models.Exercise) string {
	return fmt.Sprintf("https://cdn.planforge.dev/curated/%s.mp4", curatedSlugs[strings.ToLower(ex.Name)])
}

// MediaSources lists the transcoded variants the curated pipeline produces
// for every asset.
func (c curatedLibrary) MediaSources(ex models.Exercise) []Source {
	slug := curatedSlugs[strings.ToLower(ex.Name)]
	return []Source{
		{URL: c.MediaURL(ex), Kind: "video", Quality: "1080p"},
		{URL: fmt.Sprintf("https://cdn.planforge.dev/curated/%s.webm", slug), Kind: "video", Quality: "1080p"},
		{URL: fmt.Sprintf("https://cdn.planforge.dev/curated/%s-720.mp4", slug), Kind: "video", Quality: "720p"},
	}
}

// premiumClips serves coached walkthrough videos for every exercise with a
// catalog id. Premium entitlement required.
type premiumClips struct{}

func (premiumClips) Name() string  { return "premium-coaching" }
func (premiumClips) Premium() bool { return true }

func (premiumClips) HasMedia(ex models.Exercise) bool {
	return ex.ID != ""
}

func (premiumClips) MediaURL(ex models.Exercise) string {
	return fmt.Sprintf("https://cdn.planforge.dev/coaching/%s.mp4", ex.ID)
}

func (p premiumClips) MediaSources(ex models.Exercise) []Source {
	return []Source{
		{URL: p.MediaURL(ex), Kind: "video", Quality: "1080p"},
		{URL: fmt.Sprintf("https://cdn.planforge.dev/coaching/%s-audio.m4a", ex.ID), Kind: "audio"},
	}
}

// catalogPassthrough falls back to whatever media_ref the catalog entry
// carries. Lowest priority; keeps Resolve total for any catalog that ships
// its own assets.
type catalogPassthrough struct{}

func (catalogPassthrough) Name() string  { return "catalog" }
func (catalogPassthrough) Premium() bool { return false }

func (catalogPassthrough) HasMedia(ex models.Exercise) bool {
	return ex.MediaRef != ""
}

func (catalogPassthrough) MediaURL(ex models.Exercise) string {
	return ex.MediaRef
}

func (catalogPassthrough) MediaSources(ex models.Exercise) []Source {
	return []Source{{URL: ex.MediaRef, Kind: kindFromURL(ex.MediaRef)}}
}
