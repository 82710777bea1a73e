package routes

import (
	"net/http"

	"github.com/templui/healthjournal/internal/app"
	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/handler"
	"github.com/templui/healthjournal/internal/metrics"
	"github.com/templui/healthjournal/internal/middleware"
	"github.com/templui/healthjournal/internal/response"
)

// SetupRoutes builds the API handler. The returned stop function ends the
// rate limiter's background cleanup.
func SetupRoutes(app *app.App) (http.Handler, func()) {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	goal := handler.NewGoalHandler(app.GoalService)
	medication := handler.NewMedicationHandler(app.MedicationService)
	mood := handler.NewMoodHandler(app.MoodService)
	symptom := handler.NewSymptomHandler(app.SymptomService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", health.Health)
	if app.Cfg.MetricsEnabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	// ============================================================================
	// PROTECTED ROUTES (/api/v1/*)
	// ============================================================================

	// Goals
	mux.HandleFunc("POST /api/v1/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/v1/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("PATCH /api/v1/goals/{goalId}/progress", middleware.RequireAuth(goal.UpdateProgress))

	// Medications
	mux.HandleFunc("POST /api/v1/medications", middleware.RequireAuth(medication.Create))
	mux.HandleFunc("GET /api/v1/medications", middleware.RequireAuth(medication.ByDate))

	// Moods
	mux.HandleFunc("POST /api/v1/moods", middleware.RequireAuth(mood.Upsert))
	mux.HandleFunc("GET /api/v1/moods", middleware.RequireAuth(mood.Range))

	// Symptoms
	mux.HandleFunc("POST /api/v1/symptoms", middleware.RequireAuth(symptom.Create))
	mux.HandleFunc("GET /api/v1/symptoms", middleware.RequireAuth(symptom.Range))

	// Assets (only with a configured bucket)
	if app.AssetService != nil {
		asset := handler.NewAssetHandler(app.AssetService, app.Cfg.UploadMaxBytes)
		mux.HandleFunc("POST /api/v1/assets", middleware.RequireAuth(asset.Upload))
		mux.HandleFunc("DELETE /api/v1/assets/{key...}", middleware.RequireAuth(asset.Delete))
	}

	// ============================================================================
	// LEGACY ROUTES (paths used by existing clients)
	// ============================================================================

	mux.HandleFunc("POST /api/goals/addgoal", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals/getgoals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("PATCH /api/goals/update-progress/{goalId}", middleware.RequireAuth(goal.UpdateProgress))
	mux.HandleFunc("POST /api/medications/addmedication", middleware.RequireAuth(medication.Create))
	mux.HandleFunc("GET /api/medications/getmedication", middleware.RequireAuth(medication.ByDate))

	// Everything else answers with the envelope instead of the mux's plain text.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, apperr.NotFoundf("Route not found."))
	})

	rateLimiter := middleware.NewRateLimiter(app.Cfg.RateLimitRPS, app.Cfg.RateLimitBurst)

	h := middleware.Chain(mux,
		middleware.Recover,
		middleware.RequestID,
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
		rateLimiter.Handler,
		metrics.InstrumentHandler,
	)

	return h, rateLimiter.Stop
}
