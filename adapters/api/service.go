// Package api exposes the analysis pipeline as a JSON surface for
// programmatic clients. The handlers mirror the UI flow: one multipart
// upload in, one complete report out, nothing retained between requests.
package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"disasterscope/app"
	"disasterscope/internal"
	"disasterscope/internal/config"
)

// Service wires the pipeline behind a gin engine
type Service struct {
	router   *gin.Engine
	analysis *app.AnalysisService
	cfg      *config.Config
	log      *internal.Logger
}

// NewService creates the JSON API service
func NewService(cfg *config.Config, analysis *app.AnalysisService, log *internal.Logger) *Service {
	gin.SetMode(cfg.Server.GinMode)

	s := &Service{
		router:   gin.Default(),
		analysis: analysis,
		cfg:      cfg,
		log:      log,
	}
	s.setupRoutes()
	return s
}

func (s *Service) setupRoutes() {
	v1 := s.router.Group("/api/v1")
	v1.POST("/analyze", s.handleAnalyze)
	v1.GET("/healthz", s.handleHealth)
}

// handleAnalyze accepts a dataset upload and returns the full report as
// JSON. Chart images arrive base64-encoded in the charts object.
func (s *Service) handleAnalyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("dataset")
	if err != nil {
		s.log.Warn("[api] no file uploaded: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	maxBytes := int64(s.cfg.Upload.MaxFileMB) * 1024 * 1024
	if header.Size > maxBytes {
		s.log.Warn("[api] file too large: %d bytes", header.Size)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size (%.1f MB) exceeds the %dMB limit",
				float64(header.Size)/(1024*1024), s.cfg.Upload.MaxFileMB),
		})
		return
	}

	if !s.allowedExtension(header.Filename) {
		s.log.Warn("[api] rejected extension: %s", header.Filename)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only .csv and .xlsx files are allowed"})
		return
	}

	report, err := s.analysis.Analyze(c.Request.Context(), header.Filename, file)
	if err != nil {
		s.log.Error("[api] run failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to analyze dataset: %v", err)})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Service) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Service) allowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range s.cfg.Upload.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Router exposes the configured engine
func (s *Service) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server
func (s *Service) Start() error {
	addr := ":" + s.cfg.Server.Port
	s.log.Info("[api] listening on %s", addr)
	return s.router.Run(addr)
}
