package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/engine"
	"github.com/claude/planforge/internal/mcp"
	"github.com/claude/planforge/internal/media"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/plancache"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	catalogPath := flag.String("catalog", "", "path to exercise catalog JSON (default: built-in)")
	cachePath := flag.String("cache", "", "path to shared plan cache SQLite file (default: in-process only)")
	flag.Parse()

	// Logs go to stderr: stdout is the MCP transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var cat []models.Exercise
	var err error
	if *catalogPath != "" {
		cat, err = catalog.Load(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading catalog: %v\n", err)
			os.Exit(1)
		}
	} else {
		cat = catalog.Default()
	}

	var store *plancache.Store
	if *cachePath != "" {
		store, err = plancache.OpenStore(*cachePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening plan cache: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}
	cache := plancache.New(store, time.Hour, log)

	s := mcp.New(engine.New(), cat, catalog.Version(cat), cache, media.DefaultRegistry(), Version, log)

	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
