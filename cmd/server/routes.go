package main

import (
	"fmt"
	"net/http"

	"github.com/HammerMeetNail/aistackhub/internal/config"
	"github.com/HammerMeetNail/aistackhub/internal/handlers"
	"github.com/HammerMeetNail/aistackhub/internal/logging"
	"github.com/HammerMeetNail/aistackhub/internal/middleware"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

type routerDeps struct {
	health        *handlers.HealthHandler
	directory     services.DirectoryServiceInterface
	questionnaire services.QuestionnaireServiceInterface
	recommend     services.RecommendationServiceInterface
	shares        services.ShareServiceInterface
	rateStore     middleware.RateStore
}

// newRouter registers every route and wraps the mux in the middleware chain.
func newRouter(cfg *config.Config, logger *logging.Logger, deps routerDeps) (http.Handler, error) {
	directoryHandler := handlers.NewDirectoryHandler(deps.directory)
	questionnaireHandler := handlers.NewQuestionnaireHandler(deps.questionnaire)
	recommendationHandler := handlers.NewRecommendationHandler(deps.recommend)
	shareHandler := handlers.NewShareHandler(deps.shares, deps.questionnaire)
	pageHandler, err := handlers.NewPageHandler(handlers.Templates, deps.shares)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	securityHeaders := middleware.NewSecurityHeaders(cfg.Server.Secure)
	cacheControl := middleware.NewCacheControl()
	compress := middleware.NewCompress()
	requestLogger := middleware.NewRequestLogger(logger)

	// Session creation and sharing are the only endpoints that write state.
	clientKey := middleware.ClientKey(cfg.Server.TrustProxy)
	sessionLimiter := middleware.NewRateLimiter(deps.rateStore, cfg.RateLimit.Limit, cfg.RateLimit.Window, "ratelimit:questionnaire:", clientKey)
	shareLimiter := middleware.NewRateLimiter(deps.rateStore, cfg.RateLimit.Limit, cfg.RateLimit.Window, "ratelimit:share:", clientKey)

	mux := http.NewServeMux()

	// Health endpoints (no rate limit)
	if deps.health != nil {
		mux.HandleFunc("GET /health", deps.health.Health)
		mux.HandleFunc("GET /ready", deps.health.Ready)
		mux.HandleFunc("GET /live", deps.health.Live)
	}

	// Directory endpoints
	mux.HandleFunc("GET /api/tools", directoryHandler.ListTools)
	mux.HandleFunc("GET /api/tools/categories", directoryHandler.GetCategories)
	mux.HandleFunc("GET /api/tools/{id}", directoryHandler.GetTool)
	mux.HandleFunc("GET /api/workflows", directoryHandler.ListWorkflows)
	mux.HandleFunc("GET /api/workflows/{slug}", directoryHandler.GetWorkflow)

	// Questionnaire endpoints
	mux.HandleFunc("GET /api/questionnaire/options", questionnaireHandler.Options)
	mux.Handle("POST /api/questionnaire", sessionLimiter.Middleware(http.HandlerFunc(questionnaireHandler.Create)))
	mux.HandleFunc("GET /api/questionnaire/{id}", questionnaireHandler.Get)
	mux.HandleFunc("PUT /api/questionnaire/{id}/role", questionnaireHandler.SelectRole)
	mux.HandleFunc("PUT /api/questionnaire/{id}/experience", questionnaireHandler.SelectExperience)
	mux.HandleFunc("POST /api/questionnaire/{id}/focus", questionnaireHandler.ToggleFocus)
	mux.HandleFunc("PUT /api/questionnaire/{id}/budget", questionnaireHandler.SelectBudget)
	mux.HandleFunc("PUT /api/questionnaire/{id}/industry", questionnaireHandler.SelectIndustry)
	mux.HandleFunc("POST /api/questionnaire/{id}/generate", questionnaireHandler.Generate)
	mux.HandleFunc("POST /api/questionnaire/{id}/restart", questionnaireHandler.Restart)

	// Stateless recommendation
	mux.HandleFunc("POST /api/recommendations", recommendationHandler.Recommend)

	// Share endpoints
	mux.Handle("POST /api/stacks", shareLimiter.Middleware(http.HandlerFunc(shareHandler.Create)))
	mux.HandleFunc("GET /api/stacks/{id}", shareHandler.Get)
	mux.HandleFunc("GET /api/stacks/{id}/export", shareHandler.Export)

	// Share landing page
	mux.HandleFunc("GET /s/{id}", pageHandler.SharedStack)
	mux.HandleFunc("/", pageHandler.NotFound)

	// Build middleware chain (order matters: last applied runs first)
	var handler http.Handler = mux
	handler = cacheControl.Apply(handler)
	handler = compress.Apply(handler)
	handler = securityHeaders.Apply(handler)
	handler = requestLogger.Apply(handler)

	return handler, nil
}
