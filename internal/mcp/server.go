package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/planforge/internal/engine"
	"github.com/claude/planforge/internal/media"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/plancache"
)

// New creates an MCP server exposing plan generation and the explainability
// surfaces as tools.
func New(eng *engine.Engine, catalog []models.Exercise, catalogVersion string, cache *plancache.Cache, mediaReg *media.Registry, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("PlanForge", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("PlanForge workout planning server. Generate deterministic weekly workout plans from a user profile, preview split scoring, and check which exercises a profile's safety rules exclude. Plans are rule-driven: the same profile and week always yield the same plan."),
	)

	h := &handlers{
		engine:         eng,
		catalog:        catalog,
		catalogVersion: catalogVersion,
		cache:          cache,
		media:          mediaReg,
		log:            log,
	}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGenerateWorkoutPlan, Handler: h.generateWorkoutPlan},
		server.ServerTool{Tool: toolPreviewSplitScores, Handler: h.previewSplitScores},
		server.ServerTool{Tool: toolCheckExerciseSafety, Handler: h.checkExerciseSafety},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetExerciseMedia, Handler: h.getExerciseMedia},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resSplitCatalog, Handler: h.splitCatalog},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	engine         *engine.Engine
	catalog        []models.Exercise
	catalogVersion string
	cache          *plancache.Cache
	media          *media.Registry
	log            *slog.Logger
}

// --- Resource definitions ---

var resSplitCatalog = mcp.NewResource(
	"planforge://split_catalog",
	"Split Catalog",
	mcp.WithResourceDescription("All workout split templates with frequency ranges, day structure, goal and experience compatibility, and recovery demand"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"planforge://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("The full exercise catalog with training classification, complexity, and safety metadata"),
	mcp.WithMIMEType("application/json"),
)
