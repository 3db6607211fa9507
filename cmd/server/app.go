package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dpoletti/pokertrain/internal/config"
	"github.com/dpoletti/pokertrain/internal/domain/progression"
	"github.com/dpoletti/pokertrain/internal/generation"
	"github.com/dpoletti/pokertrain/internal/platform/memcache"
	"github.com/dpoletti/pokertrain/internal/platform/postgres"
	"github.com/dpoletti/pokertrain/internal/service"
	"github.com/dpoletti/pokertrain/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	scoreStore   store.KnowledgeScoreStore
	attemptStore store.QuestionAttemptStore
	cache        store.QuestionCache

	// Services
	generator       generation.Generator
	progressionSvc  progression.Service
	trainingService service.TrainingService
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logger, and database connection must be
// established before calling it.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.scoreStore = postgres.NewKnowledgeScoreStore(db, logger)
	app.attemptStore = postgres.NewQuestionAttemptStore(db, logger)
	app.cache = memcache.NewQuestionCache()

	fallback, err := generation.ParseFallbackPolicy(cfg.Training.FallbackPolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback policy: %w", err)
	}
	app.generator = generation.New(generation.Config{
		MaxSynthesisAttempts: cfg.Training.MaxSynthesisAttempts,
		Fallback:             fallback,
	}, nil)

	app.progressionSvc = progression.NewDefaultService()

	app.trainingService = service.NewTrainingService(
		db,
		app.scoreStore,
		app.attemptStore,
		app.cache,
		app.generator,
		app.progressionSvc,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
