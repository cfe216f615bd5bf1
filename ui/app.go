// Package ui serves the interactive analysis surface: an upload form, the
// per-run report page, and a methodology page. The server is stateless
// between runs; each upload triggers one synchronous pipeline execution.
package ui

import (
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"disasterscope/app"
	"disasterscope/internal"
	"disasterscope/internal/config"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	analysis  *app.AnalysisService
	templates *template.Template
	cfg       *config.Config
	log       *internal.Logger
}

// NewApp creates a new UI application
func NewApp(cfg *config.Config, analysis *app.AnalysisService, log *internal.Logger) (*App, error) {
	funcMap := template.FuncMap{
		"png": func(img []byte) template.URL {
			return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(img))
		},
		"fmtFloat": func(v float64) string {
			return fmt.Sprintf("%.4g", v)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		analysis:  analysis,
		templates: templates,
		cfg:       cfg,
		log:       log,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/upload", a.handleUpload)
	a.router.Get("/methodology", a.handleMethodology)
	a.router.Get("/healthz", a.handleHealth)
}

// Router exposes the configured router
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server
func (a *App) Start() error {
	addr := ":" + a.cfg.Server.Port
	a.log.Info("[ui] listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
