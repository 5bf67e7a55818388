package routes

import (
	"net/http"

	"github.com/medicino/medicino/internal/api/handlers"
	"github.com/medicino/medicino/internal/api/middleware"
	"github.com/medicino/medicino/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler      *handlers.AuthHandler
	diagnosisHandler *handlers.DiagnosisHandler
	conditionHandler *handlers.ConditionHandler
	medicineHandler  *handlers.MedicineHandler
	healthHandler    *handlers.HealthHandler

	verifier        middleware.TokenVerifier
	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
	allowedOrigins  []string
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	diagnosisHandler *handlers.DiagnosisHandler,
	conditionHandler *handlers.ConditionHandler,
	medicineHandler *handlers.MedicineHandler,
	healthHandler *handlers.HealthHandler,
	verifier middleware.TokenVerifier,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
	allowedOrigins []string,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		authHandler:      authHandler,
		diagnosisHandler: diagnosisHandler,
		conditionHandler: conditionHandler,
		medicineHandler:  medicineHandler,
		healthHandler:    healthHandler,
		verifier:         verifier,
		cacheMiddleware:  cacheMiddleware,
		metrics:          metrics,
		allowedOrigins:   allowedOrigins,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	requireAuth := middleware.RequireAuth(r.verifier)

	// Health check endpoint
	r.mux.HandleFunc("GET /health", r.healthHandler.Health)

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/register", r.authHandler.Register)
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.Handle("POST /api/auth/change-password", requireAuth(http.HandlerFunc(r.authHandler.ChangePassword)))

	// Profile endpoints
	r.mux.Handle("GET /api/user/profile", requireAuth(http.HandlerFunc(r.authHandler.GetProfile)))
	r.mux.Handle("PUT /api/user/profile", requireAuth(http.HandlerFunc(r.authHandler.UpdateProfile)))

	// Diagnosis endpoints
	r.mux.Handle("POST /api/diagnose", requireAuth(http.HandlerFunc(r.diagnosisHandler.Diagnose)))
	r.mux.Handle("GET /api/diagnose/history", requireAuth(http.HandlerFunc(r.diagnosisHandler.GetHistory)))
	r.mux.Handle("POST /api/diagnose/{id}/feedback", requireAuth(http.HandlerFunc(r.diagnosisHandler.SubmitFeedback)))

	// Condition catalog endpoints
	r.mux.HandleFunc("GET /api/conditions", r.conditionHandler.ListConditions)
	r.mux.HandleFunc("GET /api/conditions/search", r.conditionHandler.SearchConditions)
	r.mux.HandleFunc("GET /api/conditions/categories", r.conditionHandler.GetCategories)
	r.mux.HandleFunc("GET /api/conditions/{id}", r.conditionHandler.GetCondition)
	r.mux.Handle("POST /api/conditions", requireAuth(http.HandlerFunc(r.conditionHandler.CreateCondition)))

	// Medicine catalog endpoints
	r.mux.HandleFunc("GET /api/medicines", r.medicineHandler.ListMedicines)
	r.mux.HandleFunc("GET /api/medicines/search", r.medicineHandler.SearchMedicines)
	r.mux.HandleFunc("GET /api/medicines/categories", r.medicineHandler.GetCategories)
	r.mux.HandleFunc("GET /api/medicines/{id}", r.medicineHandler.GetMedicine)
	r.mux.Handle("POST /api/medicines", requireAuth(http.HandlerFunc(r.medicineHandler.CreateMedicine)))

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
