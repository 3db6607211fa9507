package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dpoletti/pokertrain/internal/api"
	apiMiddleware "github.com/dpoletti/pokertrain/internal/api/middleware"
	"github.com/dpoletti/pokertrain/internal/api/shared"
)

// appName identifies the service in the health check response.
const appName = "pokertrain"

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.CORS(app.config.Server.CORSOrigins))

	trainingHandler := api.NewTrainingHandler(
		app.trainingService,
		app.config.Training.DefaultUserID,
		app.logger,
	)
	statsHandler := api.NewStatsHandler(
		app.trainingService,
		app.config.Training.DefaultUserID,
		app.logger,
	)
	handsHandler := api.NewHandsHandler()

	r.Route("/api", func(r chi.Router) {
		// Hand reference endpoints
		r.Get("/hands/rankings", handsHandler.GetRankings)
		r.Get("/hands/starting", handsHandler.GetStartingHands)

		// Training endpoints
		r.Get("/training/question", trainingHandler.GetQuestion)
		r.Post("/training/answer", trainingHandler.SubmitAnswer)
		r.Get("/training/types", trainingHandler.GetQuestionTypes)

		// Stats endpoints
		r.Get("/stats", statsHandler.GetStats)
		r.Post("/stats/reset", statsHandler.ResetStats)
	})

	// Health check endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.HealthResponse{
			Status: "ok",
			App:    appName,
		})
	})

	return r
}
