// Package app contains the application setup for the catalog service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nvoronin/gocatalog/internal/catalog/service"
	"github.com/nvoronin/gocatalog/internal/catalog/store"
	"github.com/nvoronin/gocatalog/internal/catalog/transport/rest"
	"github.com/nvoronin/gocatalog/internal/config"
	"github.com/nvoronin/gocatalog/pkg/server"
	"github.com/nvoronin/gocatalog/pkg/web"
)

type Dependencies struct {
	CatalogService service.CatalogService
	Logger         *slog.Logger
	Metrics        *web.Metrics
}

func SetupDependencies(logger *slog.Logger) *Dependencies {
	cService := service.NewService(store.NewInMemoryStore())

	return &Dependencies{
		CatalogService: cService,
		Logger:         logger,
		Metrics:        web.NewMetrics(),
	}
}

// SetupHttpHandler initializes the HTTP routes for the catalog application.
// Also used by handler tests to build a fully wired router.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger, deps.Metrics)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the catalog application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	catalogHandler := rest.NewHandler(deps.CatalogService, deps.Logger)
	catalogHandler.RegisterRoutes(mux)
	mux.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
}

// SetupHttpServer creates and configures an HTTP server for the catalog
// application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
