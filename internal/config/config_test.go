package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Upload.MaxFileMB)
	assert.Equal(t, []string{".csv", ".xlsx"}, cfg.Upload.Extensions)
	assert.Equal(t, "Unknown", cfg.Pipeline.Sentinel)
	assert.Equal(t, "country", cfg.Pipeline.CategoryColumn)
	assert.Equal(t, 5, cfg.Pipeline.PreviewRows)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("SENTINEL", "N/A")
	t.Setenv("PREVIEW_ROWS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Upload.MaxFileMB)
	assert.Equal(t, "N/A", cfg.Pipeline.Sentinel)
	assert.Equal(t, 10, cfg.Pipeline.PreviewRows)
}

func TestLoadRejectsNonPositiveUploadLimit(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositivePreviewRows(t *testing.T) {
	t.Setenv("PREVIEW_ROWS", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Upload.MaxFileMB)
}
