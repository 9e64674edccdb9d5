package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/claude/planforge/internal/engine/split"
	"github.com/claude/planforge/internal/media"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/plancache"
)

type generateRequest struct {
	Profile    models.UserProfile `json:"profile"`
	WeekNumber int                `json:"week_number"`
}

type generateResponse struct {
	Plan        models.WeeklyExercisePlan `json:"plan"`
	ProfileHash string                    `json:"profile_hash"`
	CacheHit    bool                      `json:"cache_hit"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.WeekNumber < 1 {
		req.WeekNumber = 1
	}
	if req.Profile.WorkoutsPerWeek < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "profile.workouts_per_week must be at least 1"})
		return
	}

	key, err := plancache.Hash(req.Profile, req.WeekNumber, s.catalogVersion)
	if err != nil {
		s.log.Error("hashing profile", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate plan"})
		return
	}

	plan, hit, err := s.cache.GetOrGenerate(r.Context(), key, func() models.WeeklyExercisePlan {
		return s.engine.Generate(req.Profile, s.catalog, req.WeekNumber)
	})
	if err != nil {
		s.log.Error("generating plan", "key", key, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate plan"})
		return
	}

	if s.db != nil && !hit {
		if err := s.archivePlan(r, key, plan); err != nil {
			// Archival is best effort; the plan is still valid.
			s.log.Warn("archiving plan", "key", key, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Plan:        plan,
		ProfileHash: key,
		CacheHit:    hit,
	})
}

func (s *Server) archivePlan(r *http.Request, key string, plan models.WeeklyExercisePlan) error {
	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	_, err = s.db.InsertPlan(r.Context(), models.PlanRow{
		ID:          uuid.New(),
		ProfileHash: key,
		WeekNumber:  plan.WeekNumber,
		SplitID:     plan.SplitID,
		Fallback:    plan.Fallback,
		PlanJSON:    raw,
		CreatedAt:   s.now().UTC(),
	})
	return err
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "plan archive not configured"})
		return
	}

	// A profile hash narrows the listing to the newest archived plan for
	// that exact generation input.
	if hash := r.URL.Query().Get("profile_hash"); hash != "" {
		row, err := s.db.LatestPlanByHash(r.Context(), hash)
		if err != nil {
			s.log.Error("fetching plan by hash", "hash", hash, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch plan"})
			return
		}
		if row == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no plan archived for profile hash"})
			return
		}
		writeJSON(w, http.StatusOK, row)
		return
	}

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
	}

	rows, err := s.db.ListPlans(r.Context(), start, end, limit)
	if err != nil {
		s.log.Error("listing plans", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list plans"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": rows, "count": len(rows)})
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "plan archive not configured"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid plan id"})
		return
	}

	row, err := s.db.GetPlan(r.Context(), id)
	if err != nil {
		s.log.Error("fetching plan", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch plan"})
		return
	}
	if row == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleListSplits(w http.ResponseWriter, r *http.Request) {
	templates := split.Templates()
	writeJSON(w, http.StatusOK, map[string]any{"splits": templates, "count": len(templates)})
}

type scoredSplitJSON struct {
	SplitID   string   `json:"split_id"`
	SplitName string   `json:"split_name"`
	Score     float64  `json:"score"`
	Breakdown []string `json:"breakdown"`
}

func (s *Server) handleScoreSplits(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	sel := split.Select(profile)
	resp := struct {
		Selected     scoredSplitJSON   `json:"selected"`
		Alternatives []scoredSplitJSON `json:"alternatives"`
	}{Selected: toScoredJSON(sel.Selected)}
	for _, alt := range sel.Alternatives {
		resp.Alternatives = append(resp.Alternatives, toScoredJSON(alt))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toScoredJSON(sc split.ScoredSplit) scoredSplitJSON {
	return scoredSplitJSON{
		SplitID:   sc.Split.ID,
		SplitName: sc.Split.Name,
		Score:     sc.Score,
		Breakdown: sc.Breakdown,
	}
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	classified := s.engine.ClassifyCatalog(s.catalog)
	writeJSON(w, http.StatusOK, map[string]any{
		"catalog_version": s.catalogVersion,
		"exercises":       classified,
		"count":           len(classified),
	})
}

func (s *Server) handleSafetyPreview(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	res := s.engine.Preview(s.catalog, profile)
	writeJSON(w, http.StatusOK, map[string]any{
		"allowed_count":              len(res.Allowed),
		"allowed":                    res.Allowed,
		"excluded":                   res.Excluded,
		"warnings":                   res.Warnings,
		"requires_medical_clearance": res.RequiresMedicalClearance,
	})
}

func (s *Server) handleGetMedia(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "exerciseID")
	var found *models.Exercise
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			found = &s.catalog[i]
			break
		}
	}
	if found == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown exercise id"})
		return
	}

	premium := r.URL.Query().Get("premium") == "true"
	ref, ok := s.media.Resolve(*found, premium)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no media available"})
		return
	}
	writeJSON(w, http.StatusOK, mediaResponse{
		Reference: ref,
		Sources:   s.media.Sources(*found, premium),
	})
}

type mediaResponse struct {
	media.Reference
	Sources []media.Source `json:"sources"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"catalog_version": s.catalogVersion,
		"exercise_count":  len(s.catalog),
	})
}

// parseTimeRange reads start/end query params, accepting RFC3339 or plain
// dates. Defaults to the last 7 days.
func parseTimeRange(r *http.Request) (time.Time, time.Time, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -7)

	if v := r.URL.Query().Get("start"); v != "" {
		t, err := parseTime(v)
		if err != nil {
			return start, end, fmt.Errorf("invalid start time: %w", err)
		}
		start = t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := parseTime(v)
		if err != nil {
			return start, end, fmt.Errorf("invalid end time: %w", err)
		}
		end = t
	}
	return start, end, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
