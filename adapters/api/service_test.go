package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disasterscope/app"
	"disasterscope/internal"
	"disasterscope/internal/config"
)

func testService() *Service {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8081", GinMode: gin.TestMode},
		Upload: config.UploadConfig{MaxFileMB: 10, Extensions: []string{".csv", ".xlsx"}},
		Pipeline: config.PipelineConfig{
			Sentinel:       "Unknown",
			CategoryColumn: "country",
			PreviewRows:    5,
		},
	}
	log := internal.NewLogger(internal.LogLevelError)
	analysis := app.NewAnalysisService(cfg.Pipeline, log)
	return NewService(cfg, analysis, log)
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("dataset", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAnalyzeEndpoint(t *testing.T) {
	s := testService()
	csv := "country,disastertype,location,continent\nIndia,Flood,Kerala,Asia\n,Drought,,Africa\n"

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, uploadRequest(t, "disasters.csv", csv))

	require.Equal(t, http.StatusOK, rec.Code)

	var report struct {
		Filename      string `json:"filename"`
		RowCount      int    `json:"row_count"`
		ColumnCount   int    `json:"column_count"`
		CountryCounts []struct {
			Key   string `json:"key"`
			Count int    `json:"count"`
		} `json:"country_counts"`
		Charts struct {
			CountryBar string `json:"country_bar"`
		} `json:"charts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Equal(t, "disasters.csv", report.Filename)
	assert.Equal(t, 2, report.RowCount)
	assert.Equal(t, 4, report.ColumnCount)
	assert.Len(t, report.CountryCounts, 2)
	assert.NotEmpty(t, report.Charts.CountryBar)
}

func TestAnalyzeEndpointNoFile(t *testing.T) {
	s := testService()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
}

func TestAnalyzeEndpointBadExtension(t *testing.T) {
	s := testService()

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, uploadRequest(t, "notes.txt", "hello"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ".csv and .xlsx")
}

func TestAnalyzeEndpointUnreadableFile(t *testing.T) {
	s := testService()

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, uploadRequest(t, "broken.csv", "a,b\n1\n"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to analyze")
}

func TestHealthEndpoint(t *testing.T) {
	s := testService()

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
