package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailscale.com/tsnet"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/config"
	"github.com/claude/planforge/internal/engine"
	"github.com/claude/planforge/internal/media"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/plancache"
	"github.com/claude/planforge/internal/server"
	"github.com/claude/planforge/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("PlanForge starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Plan archive is optional: migrations and the pool only run when a
	// database is configured.
	ctx := context.Background()
	var db *storage.DB
	if cfg.Database.Enabled() {
		dsn := cfg.Database.DSN()
		if err := storage.RunMigrations(dsn, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied")

		if *migrateOnly {
			log.Info("migrate-only: exiting")
			return
		}

		db, err = storage.New(ctx, dsn)
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		log.Info("database connected")
	} else if *migrateOnly {
		log.Error("migrate-only requires a configured database")
		os.Exit(1)
	}

	// Load the exercise catalog
	var cat []models.Exercise
	if cfg.Engine.CatalogPath != "" {
		cat, err = catalog.Load(cfg.Engine.CatalogPath)
		if err != nil {
			log.Error("failed to load catalog", "path", cfg.Engine.CatalogPath, "error", err)
			os.Exit(1)
		}
	} else {
		cat = catalog.Default()
	}
	catVersion := catalog.Version(cat)
	log.Info("catalog loaded", "exercises", len(cat), "version", catVersion)

	// Engine
	var opts []engine.Option
	if cfg.Engine.MinSafePool > 0 {
		opts = append(opts, engine.WithMinSafePool(cfg.Engine.MinSafePool))
	}
	eng := engine.New(opts...)

	// Plan cache: always an in-process tier, plus a shared SQLite store
	// when a path is configured.
	var store *plancache.Store
	if cfg.Cache.Path != "" {
		store, err = plancache.OpenStore(cfg.Cache.Path)
		if err != nil {
			log.Error("failed to open plan cache store", "path", cfg.Cache.Path, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		log.Info("plan cache store opened", "path", cfg.Cache.Path)
	}
	cache := plancache.New(store, time.Duration(cfg.Cache.TTLMinutes)*time.Minute, log)

	// Create server
	srv := server.New(eng, cat, catVersion, cache, db, media.DefaultRegistry(), cfg.Auth.APIKey, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
			AuthKey:  cfg.Tailscale.AuthKey,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
