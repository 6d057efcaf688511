package main

import (
	"context"

	"analytics-api/internal/analytics"
	"analytics-api/internal/configuration"
	"analytics-api/internal/core"
	"analytics-api/internal/database"

	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)
	defer func() { _ = zap.L().Sync() }()

	ctx := context.Background()

	tracerProvider := core.NewTracerProvider(ctx, config.Telemetry.Tracing)
	if tracerProvider != nil {
		defer func() { _ = tracerProvider.Shutdown(ctx) }()
	}

	profiler := core.StartProfiler(config.Telemetry.Profiling, configuration.AppName)
	if profiler != nil {
		defer func() { _ = profiler.Stop() }()
	}

	db := database.InitDB(config.Database)

	cache := core.NewCache(config.Cache)
	if cache != nil {
		defer func() { _ = cache.Close() }()
	}

	core.StartHTTPServer(config, analytics.NewSQLRepository(db), cache)
}
