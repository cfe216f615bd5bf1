package ui

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"disasterscope/internal/errors"
)

// handleIndex shows the upload prompt. No computation happens until a file
// arrives.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.render(w, "index.html", map[string]interface{}{
		"MaxUploadMB": a.cfg.Upload.MaxFileMB,
	})
}

// handleUpload accepts one dataset file, runs the pipeline to completion,
// and renders the full report. A run either completes or fails atomically;
// there is no partial-results display.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(a.cfg.Upload.MaxFileMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, header, err := r.FormFile("dataset")
	if err != nil {
		a.log.Warn("[upload] no file in request: %v", err)
		a.renderError(w, http.StatusBadRequest, "No file uploaded. Choose a .csv or .xlsx dataset first.")
		return
	}
	defer file.Close()

	if !a.allowedExtension(header.Filename) {
		a.log.Warn("[upload] rejected extension: %s", header.Filename)
		a.renderError(w, http.StatusBadRequest, "Only .csv and .xlsx files are allowed.")
		return
	}

	report, err := a.analysis.Analyze(r.Context(), header.Filename, file)
	if err != nil {
		a.log.Error("[upload] run failed: %v", err)
		status := http.StatusBadRequest
		if errors.GetCode(err) == errors.CodeInternalError {
			status = http.StatusInternalServerError
		}
		a.renderError(w, status, "The file could not be read as a dataset: "+err.Error())
		return
	}

	a.render(w, "report.html", report)
}

// handleMethodology renders the embedded markdown description of each
// pipeline stage.
func (a *App) handleMethodology(w http.ResponseWriter, r *http.Request) {
	src, err := embeddedFiles.ReadFile("static/methodology.md")
	if err != nil {
		a.renderError(w, http.StatusInternalServerError, "Methodology document unavailable.")
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	body := markdown.ToHTML(src, p, renderer)

	a.render(w, "methodology.html", map[string]interface{}{
		"Body": template.HTML(body),
	})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (a *App) allowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range a.cfg.Upload.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (a *App) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, name, data); err != nil {
		a.log.Error("[render] template %s failed: %v", name, err)
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

func (a *App) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := a.templates.ExecuteTemplate(w, "error.html", map[string]interface{}{
		"Message": message,
	}); err != nil {
		http.Error(w, message, status)
	}
}
