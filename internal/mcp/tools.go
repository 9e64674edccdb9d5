package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/planforge/internal/engine/match"
	"github.com/claude/planforge/internal/engine/split"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/plancache"
)

// parseProfile decodes the profile JSON that every tool accepts.
func parseProfile(raw string) (models.UserProfile, error) {
	var profile models.UserProfile
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decoding profile: %w", err)
	}
	return profile, nil
}

// --- Tool definitions ---

var toolGenerateWorkoutPlan = mcp.NewTool("generate_workout_plan",
	mcp.WithDescription("Generate a complete weekly workout plan for a user profile. Returns the selected split with its score trace, per-day exercise prescriptions (sets, reps, rest, tempo), warmup/cooldown, warnings, and any safety exclusions. Deterministic: the same profile and week always produce the same plan; weeks rotate on a 4-week mesocycle."),
	mcp.WithString("profile", mcp.Required(), mcp.Description("User profile as a JSON object: age, weight_kg, height_cm, fitness_goal, experience_level, available_equipment, workouts_per_week, workout_duration_minutes, plus optional injuries, medical_conditions, medications, pregnancy fields, stress_level, and excluded_exercise_ids")),
	mcp.WithNumber("week_number", mcp.Description("Mesocycle week number (1-based). Defaults to 1.")),
)

var toolPreviewSplitScores = mcp.NewTool("preview_split_scores",
	mcp.WithDescription("Score every split template against a profile without generating a plan. Returns the winner and ranked alternatives with per-criterion score breakdowns (frequency, goal, equipment, experience, recovery, variety)."),
	mcp.WithString("profile", mcp.Required(), mcp.Description("User profile as a JSON object")),
)

var toolCheckExerciseSafety = mcp.NewTool("check_exercise_safety",
	mcp.WithDescription("Run only the safety filter for a profile. Returns which catalog exercises are allowed, which are excluded with reasons, advisory warnings, and whether medical clearance is required."),
	mcp.WithString("profile", mcp.Required(), mcp.Description("User profile as a JSON object")),
	mcp.WithString("exercise_id", mcp.Description("Restrict the report to a single catalog exercise id")),
)

var toolGetExerciseMedia = mcp.NewTool("get_exercise_media",
	mcp.WithDescription("Resolve the demonstration video or image for a catalog exercise through the media provider chain."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Catalog exercise id")),
	mcp.WithBoolean("premium", mcp.Description("Whether the caller holds a premium entitlement. Defaults to false.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise catalog with training classification, complexity score, and safety metadata. Optionally filter by body part or equipment."),
	mcp.WithString("body_part", mcp.Description("Filter by body part (e.g. 'chest', 'legs', 'core')")),
	mcp.WithString("equipment", mcp.Description("Filter by equipment (e.g. 'barbell', 'bodyweight')")),
)

// --- Tool handlers ---

func (h *handlers) generateWorkoutPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("profile")
	if err != nil {
		return mcp.NewToolResultError("profile parameter is required"), nil
	}
	profile, err := parseProfile(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid profile: " + err.Error()), nil
	}
	week := req.GetInt("week_number", 1)
	if week < 1 {
		week = 1
	}

	key, err := plancache.Hash(profile, week, h.catalogVersion)
	if err != nil {
		h.log.Error("mcp generate_workout_plan hash", "error", err)
		return mcp.NewToolResultError("failed to generate plan"), nil
	}

	plan, _, err := h.cache.GetOrGenerate(ctx, key, func() models.WeeklyExercisePlan {
		return h.engine.Generate(profile, h.catalog, week)
	})
	if err != nil {
		h.log.Error("mcp generate_workout_plan", "key", key, "error", err)
		return mcp.NewToolResultError("failed to generate plan"), nil
	}

	result, err := mcp.NewToolResultJSON(plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) previewSplitScores(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("profile")
	if err != nil {
		return mcp.NewToolResultError("profile parameter is required"), nil
	}
	profile, err := parseProfile(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid profile: " + err.Error()), nil
	}

	sel := split.Select(profile)

	type scored struct {
		SplitID   string   `json:"split_id"`
		SplitName string   `json:"split_name"`
		Score     float64  `json:"score"`
		Breakdown []string `json:"breakdown"`
	}
	out := struct {
		Selected     scored   `json:"selected"`
		Alternatives []scored `json:"alternatives"`
	}{
		Selected: scored{sel.Selected.Split.ID, sel.Selected.Split.Name, sel.Selected.Score, sel.Selected.Breakdown},
	}
	for _, alt := range sel.Alternatives {
		out.Alternatives = append(out.Alternatives, scored{alt.Split.ID, alt.Split.Name, alt.Score, alt.Breakdown})
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) checkExerciseSafety(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("profile")
	if err != nil {
		return mcp.NewToolResultError("profile parameter is required"), nil
	}
	profile, err := parseProfile(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid profile: " + err.Error()), nil
	}

	pool := h.catalog
	if id := req.GetString("exercise_id", ""); id != "" {
		pool = nil
		for _, ex := range h.catalog {
			if ex.ID == id {
				pool = []models.Exercise{ex}
				break
			}
		}
		if pool == nil {
			return mcp.NewToolResultError("unknown exercise_id: " + id), nil
		}
	}

	res := h.engine.Preview(pool, profile)
	result, err := mcp.NewToolResultJSON(map[string]any{
		"allowed_count":              len(res.Allowed),
		"allowed":                    res.Allowed,
		"excluded":                   res.Excluded,
		"warnings":                   res.Warnings,
		"requires_medical_clearance": res.RequiresMedicalClearance,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseMedia(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	var found *models.Exercise
	for i := range h.catalog {
		if h.catalog[i].ID == id {
			found = &h.catalog[i]
			break
		}
	}
	if found == nil {
		return mcp.NewToolResultError("unknown exercise_id: " + id), nil
	}

	premium := req.GetBool("premium", false)
	ref, ok := h.media.Resolve(*found, premium)
	if !ok {
		return mcp.NewToolResultError("no media available for " + id), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"url":      ref.URL,
		"kind":     ref.Kind,
		"provider": ref.Provider,
		"sources":  h.media.Sources(*found, premium),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bodyPart := req.GetString("body_part", "")
	equipment := req.GetString("equipment", "")

	var out []models.ClassifiedExercise
	for _, ex := range h.engine.ClassifyCatalog(h.catalog) {
		if bodyPart != "" && !match.ContainsFold(ex.BodyParts, bodyPart) {
			continue
		}
		if equipment != "" && !match.ContainsFold(ex.Equipment, equipment) {
			continue
		}
		out = append(out, ex)
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"catalog_version": h.catalogVersion,
		"exercises":       out,
		"count":           len(out),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
