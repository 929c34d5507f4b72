// Command seed wipes the configured storage backend and fills it with
// development data: a couple of administrators, ten people, ten groups, and
// a handful of random memberships.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/forgo/roster/api/internal/config"
	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/repository"
	"github.com/forgo/roster/api/internal/repository/memory"
	"github.com/forgo/roster/api/internal/repository/postgres"
	"github.com/forgo/roster/api/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var (
		people         service.PersonStore
		groups         service.GroupStore
		administrators service.AdministratorStore
		memberships    service.MembershipStore
		closeStore     = func() error { return nil }
	)

	switch cfg.Database.Driver {
	case "postgres":
		db, err := postgres.Open(ctx, cfg.Database.PostgresDSN)
		if err != nil {
			slog.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			slog.Error("migration failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		people = postgres.NewPersonStore(db)
		groups = postgres.NewGroupStore(db)
		administrators = postgres.NewAdministratorStore(db)
		memberships = postgres.NewMembershipStore(db)
		closeStore = db.Close

	case "memory":
		slog.Warn("seeding the in-memory backend only affects this process")
		people = memory.NewPersonStore()
		groups = memory.NewGroupStore()
		administrators = memory.NewAdministratorStore()
		memberships = memory.NewMembershipStore()

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
			slog.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := repository.Migrate(ctx, db); err != nil {
			slog.Error("migration failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		people = repository.NewPersonRepository(db)
		groups = repository.NewGroupRepository(db)
		administrators = repository.NewAdministratorRepository(db)
		memberships = repository.NewMembershipRepository(db)
		closeStore = db.Close
	}
	defer func() { _ = closeStore() }()

	personService := service.NewPersonService(service.PersonServiceConfig{
		PersonStore:     people,
		MembershipStore: memberships,
	})
	groupService := service.NewGroupService(service.GroupServiceConfig{
		GroupStore:      groups,
		MembershipStore: memberships,
	})
	administratorService := service.NewAdministratorService(service.AdministratorServiceConfig{
		AdministratorStore: administrators,
	})
	membershipService := service.NewMembershipService(service.MembershipServiceConfig{
		PersonStore:     people,
		GroupStore:      groups,
		MembershipStore: memberships,
	})

	seeder := service.NewSeederService(service.SeederServiceConfig{
		PersonService:        personService,
		GroupService:         groupService,
		AdministratorService: administratorService,
		MembershipService:    membershipService,
		Logger:               logger,
	})

	if err := seeder.Run(ctx); err != nil {
		slog.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seeding complete", slog.String("driver", cfg.Database.Driver))
}
