package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resourcing/internal/domain/dashboard"
	"resourcing/internal/domain/resource"
	"resourcing/internal/platform/config"
	"resourcing/internal/platform/db"
	"resourcing/internal/platform/metrics"
	"resourcing/internal/transport/http/api"
	dashboardhandler "resourcing/internal/transport/http/handlers/dashboard"
	resourceshandler "resourcing/internal/transport/http/handlers/resources"
	"resourcing/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Router  http.Handler
	Metrics *metrics.Collector
}

// New opens the shared pool, applies migrations, and wires the router.
// The pool is the only long-lived shared resource; handlers receive it
// through their stores, never through globals.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	collector := metrics.New()

	resourceStore := resource.NewStore(pool)
	dashboardService := dashboard.NewService(dashboard.NewStore(pool))

	resourcesHandler := resourceshandler.NewHandler(resourceStore, cfg.DefaultPageSize, cfg.MaxPageSize)
	dashboardHandler := dashboardhandler.NewHandler(dashboardService)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

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

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.JSON(w, http.StatusOK, collector.Snapshot())
		})
	}

	registerAPI := func(r chi.Router) {
		resourcesHandler.RegisterRoutes(r)
		dashboardHandler.RegisterRoutes(r)
	}
	router.Route("/api/v1", registerAPI)
	// Legacy clients address the endpoints at the root.
	router.Group(registerAPI)

	return &App{Config: cfg, DB: pool, Router: router, Metrics: collector}, nil
}

func (a *App) Close() {
	a.DB.Close()
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("resourcing server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
