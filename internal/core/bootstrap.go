package core

import (
	"fmt"
	"net/http"
	"time"

	"analytics-api/internal/analytics"
	c "analytics-api/internal/cache"
	"analytics-api/internal/configuration"
	h "analytics-api/internal/helpers"
	m "analytics-api/internal/middlewares"
	"analytics-api/internal/models"
	"analytics-api/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func NewRouter(
	config models.Configuration,
	repository analytics.IUserAnalyticsRepository,
	cache c.ICache,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(time.Duration(config.App.RequestTimeoutSeconds) * time.Second))
	r.Use(m.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		h.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(m.RateLimit(cache, config.App.TrustedProxies, config.App.RateLimitPerMinute))
		apiRouter.Use(m.Authenticate(config.App.JWTSecret))

		apiRouter.Mount("/analytics", services.AnalyticsService{
			Repository: repository,
			Now:        time.Now,
		}.Routes())
	})

	if config.Telemetry.Tracing.Enabled {
		return otelhttp.NewHandler(r, configuration.AppName)
	}
	return r
}

func StartHTTPServer(config models.Configuration, repository analytics.IUserAnalyticsRepository, cache c.ICache) {
	zap.L().Info("HTTP server starting", zap.Int("port", config.App.Port))

	timeout := time.Duration(config.App.RequestTimeoutSeconds) * time.Second
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.App.Port),
		Handler:      NewRouter(config, repository, cache),
		ReadTimeout:  timeout,
		WriteTimeout: timeout + time.Second,
		IdleTimeout:  timeout,
	}

	err := server.ListenAndServe()
	if err != nil {
		zap.L().Error("Failed to start the app", zap.Error(err))
	}
}
