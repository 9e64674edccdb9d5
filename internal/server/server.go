package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/claude/planforge/internal/engine"
	"github.com/claude/planforge/internal/media"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/plancache"
	"github.com/claude/planforge/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	engine         *engine.Engine
	catalog        []models.Exercise
	catalogVersion string
	cache          *plancache.Cache
	db             *storage.DB // nil when the plan archive is disabled
	media          *media.Registry
	log            *slog.Logger
	apiKey         string
	router         chi.Router

	now func() time.Time
}

// New creates a new Server with all routes configured. db may be nil to run
// without the plan archive.
func New(eng *engine.Engine, catalog []models.Exercise, catalogVersion string, cache *plancache.Cache, db *storage.DB, mediaReg *media.Registry, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		engine:         eng,
		catalog:        catalog,
		catalogVersion: catalogVersion,
		cache:          cache,
		db:             db,
		media:          mediaReg,
		log:            log,
		apiKey:         apiKey,
		router:         chi.NewRouter(),
		now:            time.Now,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Plan generation and archive (API key required)
	s.router.Route("/api/v1/plans", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/generate", s.handleGeneratePlan)
		r.Get("/", s.handleListPlans)
		r.Get("/{id}", s.handleGetPlan)
	})

	// Read-only catalog and explainability endpoints (no auth — tsnet
	// handles access)
	s.router.Get("/api/v1/splits", s.handleListSplits)
	s.router.Post("/api/v1/splits/score", s.handleScoreSplits)
	s.router.Get("/api/v1/exercises", s.handleListExercises)
	s.router.Post("/api/v1/safety/preview", s.handleSafetyPreview)
	s.router.Get("/api/v1/media/{exerciseID}", s.handleGetMedia)
	s.router.Get("/api/v1/health", s.handleHealth)
}
