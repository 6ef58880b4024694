package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"band-practice-go/internal/config"
	"band-practice-go/internal/db"
	cleanupdomain "band-practice-go/internal/domain/cleanup"
	membersdomain "band-practice-go/internal/domain/members"
	practicesdomain "band-practice-go/internal/domain/practices"
	"band-practice-go/internal/repository/inmemory"
	membersrepo "band-practice-go/internal/repository/postgres/members"
	practicesrepo "band-practice-go/internal/repository/postgres/practices"
	"band-practice-go/internal/seed"
	"band-practice-go/internal/transport/httpserver"
	"band-practice-go/internal/transport/httpserver/handler"
	"band-practice-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	log        logger.Logger
	httpServer *http.Server
	db         *gorm.DB
	scheduler  *cleanupdomain.Scheduler

	Members   *membersdomain.Service
	Practices *practicesdomain.Service
	Cleanup   *cleanupdomain.Service
	Seeder    *seed.Seeder
}

type repositories struct {
	members   membersdomain.Repository
	practices practicesdomain.Repository
	wipers    []seed.Wiper
}

func New(cfg config.Config, log logger.Logger) (*App, error) {
	loc, err := cfg.Cleanup.Location()
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, log: log}

	repos, err := a.openStore()
	if err != nil {
		return nil, err
	}

	a.Members = membersdomain.NewService(repos.members)
	a.Practices = practicesdomain.NewService(repos.practices)
	a.Cleanup = cleanupdomain.NewService(repos.practices, loc, log)
	a.Seeder = seed.NewSeeder(a.Members, a.Practices, loc, log, repos.wipers...)

	if cfg.Cleanup.Enabled {
		log.Info("app: initializing cleanup scheduler", "schedule", cfg.Cleanup.Schedule, "timezone", loc.String())
		a.scheduler, err = cleanupdomain.NewScheduler(a.Cleanup, cfg.Cleanup.Schedule, loc, cfg.Cleanup.Timeout, log)
		if err != nil {
			_ = a.closeStore()
			return nil, err
		}
	}

	log.Info("app: initializing router")
	handlers := handler.New(a.Members, a.Practices, a.Cleanup, loc, log)
	router := httpserver.NewRouter(cfg, handlers)
	a.httpServer = httpserver.New(cfg, router)

	return a, nil
}

func (a *App) openStore() (repositories, error) {
	if a.cfg.Store == config.StoreMemory {
		a.log.Info("app: using in-memory store")
		store := inmemory.NewStore()
		members, practices := store.Members(), store.Practices()
		return repositories{
			members:   members,
			practices: practices,
			wipers:    []seed.Wiper{practices, members},
		}, nil
	}

	a.log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(a.cfg.DB, a.log)
	if err != nil {
		return repositories{}, err
	}
	a.db = dbConn

	if a.cfg.DB.AutoMigrate {
		if err := db.Migrate(dbConn, a.log); err != nil {
			_ = a.closeStore()
			return repositories{}, fmt.Errorf("migrate: %w", err)
		}
	}

	members, practices := membersrepo.NewPostgres(dbConn), practicesrepo.NewPostgres(dbConn)
	return repositories{
		members:   members,
		practices: practices,
		wipers:    []seed.Wiper{practices, members},
	}, nil
}

// Migrate applies pending migrations. It is a no-op for the in-memory store.
func (a *App) Migrate() error {
	if a.db == nil {
		return nil
	}
	return db.Migrate(a.db, a.log)
}

// StartBackground starts the cleanup scheduler, if enabled.
func (a *App) StartBackground() {
	if a.scheduler != nil {
		a.scheduler.Start()
	}
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

// Close stops the scheduler, waiting up to ctx for a running cleanup, and
// releases the database.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.scheduler != nil {
		if err := a.scheduler.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
		}
	}
	if err := a.closeStore(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (a *App) closeStore() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	a.db = nil
	return sqlDB.Close()
}
