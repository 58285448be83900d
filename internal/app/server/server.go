package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"workforce/internal/domain/scoring"
	"workforce/internal/platform/ai"
	"workforce/internal/platform/config"
	"workforce/internal/platform/db"
	"workforce/internal/platform/jobs"
	"workforce/internal/platform/metrics"
	reportshandler "workforce/internal/transport/http/handlers/reports"
	scoreshandler "workforce/internal/transport/http/handlers/scores"
	"workforce/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	store := scoring.NewStore(pool)
	aiClient := ai.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	collector := metrics.New()

	sweeper := jobs.New(store, cfg, collector)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("scoring sweep schedule invalid: %v", err)
	}
	defer sweeper.Stop()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Get("/metricsz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(collector.Snapshot())
	})

	router.Route("/api/v1", func(r chi.Router) {
		scoresHandler := scoreshandler.NewHandler(store)
		scoresHandler.RegisterRoutes(r)

		reportsHandler := reportshandler.NewHandler(store, aiClient, cfg.ReportTopRisk)
		reportsHandler.RegisterRoutes(r)
	})

	log.Printf("workforce scoring server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
