package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forgo/roster/api/internal/config"
	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/handler"
	"github.com/forgo/roster/api/internal/middleware"
	"github.com/forgo/roster/api/internal/repository"
	"github.com/forgo/roster/api/internal/repository/memory"
	"github.com/forgo/roster/api/internal/repository/postgres"
	"github.com/forgo/roster/api/internal/service"
)

// stores bundles one storage backend's per-entity stores plus the hooks the
// rest of the wiring needs (health pings, shutdown).
type stores struct {
	people         service.PersonStore
	groups         service.GroupStore
	administrators service.AdministratorStore
	memberships    service.MembershipStore
	pinger         handler.Pinger
	close          func() error
}

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	st, err := openStores(ctx, cfg)
	if err != nil {
		slog.Error("failed to open storage backend",
			slog.String("driver", cfg.Database.Driver),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	defer func() { _ = st.close() }()

	slog.Info("storage backend ready", slog.String("driver", cfg.Database.Driver))

	// Initialize services
	personService := service.NewPersonService(service.PersonServiceConfig{
		PersonStore:     st.people,
		MembershipStore: st.memberships,
	})
	groupService := service.NewGroupService(service.GroupServiceConfig{
		GroupStore:      st.groups,
		MembershipStore: st.memberships,
	})
	administratorService := service.NewAdministratorService(service.AdministratorServiceConfig{
		AdministratorStore: st.administrators,
	})
	membershipService := service.NewMembershipService(service.MembershipServiceConfig{
		PersonStore:     st.people,
		GroupStore:      st.groups,
		MembershipStore: st.memberships,
	})

	// Initialize handlers
	translator := handler.NewTranslator(cfg.Server.Env, logger)

	personHandler := handler.NewPersonHandler(handler.PersonHandlerConfig{
		PersonService:     personService,
		MembershipService: membershipService,
		Translator:        translator,
	})
	groupHandler := handler.NewGroupHandler(handler.GroupHandlerConfig{
		GroupService:      groupService,
		MembershipService: membershipService,
		Translator:        translator,
	})
	administratorHandler := handler.NewAdministratorHandler(handler.AdministratorHandlerConfig{
		AdministratorService: administratorService,
		Translator:           translator,
	})
	healthHandler := handler.NewHealthHandler(st.pinger, translator)

	// Validate guarantees a real secret in production; development falls
	// back to the same default the admin-token command uses.
	secret := cfg.Auth.Secret
	if secret == "" {
		secret = "dev-secret"
		slog.Warn("AUTH_JWT_SECRET not set, using the development default")
	}

	auth := middleware.Auth(middleware.AuthConfig{
		Secret:   []byte(secret),
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
	}, translator)

	mux := handler.NewRouter(handler.RouterConfig{
		PersonHandler:        personHandler,
		GroupHandler:         groupHandler,
		AdministratorHandler: administratorHandler,
		HealthHandler:        healthHandler,
		Translator:           translator,
		Auth:                 auth,
	})

	// Metrics registry and endpoint
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		metrics.Instrument,
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// openStores connects the configured storage backend, runs its migrations,
// and returns its per-entity stores.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := postgres.Open(ctx, cfg.Database.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &stores{
			people:         postgres.NewPersonStore(db),
			groups:         postgres.NewGroupStore(db),
			administrators: postgres.NewAdministratorStore(db),
			memberships:    postgres.NewMembershipStore(db),
			pinger:         sqlPinger{db},
			close:          db.Close,
		}, nil

	case "memory":
		return &stores{
			people:         memory.NewPersonStore(),
			groups:         memory.NewGroupStore(),
			administrators: memory.NewAdministratorStore(),
			memberships:    memory.NewMembershipStore(),
			pinger:         memoryPinger{},
			close:          func() error { return nil },
		}, nil

	default: // surreal
		db := database.NewSurrealDB(database.Config{
			Host:      cfg.Database.Host,
			Port:      cfg.Database.Port,
			User:      cfg.Database.User,
			Password:  cfg.Database.Password,
			Namespace: cfg.Database.Namespace,
			Database:  cfg.Database.Database,
		})
		if err := db.Connect(ctx); err != nil {
			return nil, err
		}
		if err := repository.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &stores{
			people:         repository.NewPersonRepository(db),
			groups:         repository.NewGroupRepository(db),
			administrators: repository.NewAdministratorRepository(db),
			memberships:    repository.NewMembershipRepository(db),
			pinger:         db,
			close:          db.Close,
		}, nil
	}
}

type sqlPinger struct{ db *sql.DB }

func (p sqlPinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

// memoryPinger reports the in-memory backend as always reachable.
type memoryPinger struct{}

func (memoryPinger) Ping(context.Context) error { return nil }
