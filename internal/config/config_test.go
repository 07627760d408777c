package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("MAILTRIAGE_LLM_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout())
	assert.Equal(t, 1000, cfg.Classifier.MaxInputChars)
	assert.InDelta(t, 0.3, cfg.Classifier.Temperature, 1e-6)
	assert.Equal(t, 150, cfg.Classifier.MaxTokens)
	assert.Equal(t, 500, cfg.Drafter.MaxInputChars)
	assert.Greater(t, cfg.Drafter.MaxTokens, cfg.Classifier.MaxTokens)
	assert.Equal(t, []string{"txt", "pdf"}, cfg.Upload.AllowedExtensions)
	assert.Equal(t, int64(16<<20), cfg.Upload.MaxBytes())
	assert.Equal(t, 10, cfg.Input.MinContentLength)
	assert.Len(t, cfg.CORS.AllowedOrigins, 4)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAILTRIAGE_LLM_PROVIDER", " Claude ")
	t.Setenv("MAILTRIAGE_LLM_API_KEY", "sk-ant")
	t.Setenv("MAILTRIAGE_LLM_TIMEOUT_SECS", "5")
	t.Setenv("MAILTRIAGE_UPLOAD_ALLOWED_EXTENSIONS", ".TXT, pdf, ,md")
	t.Setenv("MAILTRIAGE_DRAFTER_TEMPERATURE", "0.7")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant", cfg.LLM.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout())
	assert.Equal(t, []string{"txt", "pdf", "md"}, cfg.Upload.AllowedExtensions)
	assert.True(t, cfg.Upload.IsAllowed("md"))
	assert.False(t, cfg.Upload.IsAllowed("docx"))
	assert.InDelta(t, 0.7, cfg.Drafter.Temperature, 1e-6)
}

func TestLoad_OpenAIKeyAlias(t *testing.T) {
	t.Setenv("MAILTRIAGE_LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-legacy")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-legacy", cfg.LLM.APIKey)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAILTRIAGE_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestValidate_MissingAPIKey(t *testing.T) {
	t.Setenv("MAILTRIAGE_LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is required")
}

func TestValidate_Limits(t *testing.T) {
	cfg := &config.Config{
		LLM:        config.LLMConfig{Provider: "openai", APIKey: "sk"},
		Classifier: config.ModelCallConfig{MaxInputChars: 1000, MaxTokens: 0},
		Drafter:    config.ModelCallConfig{MaxInputChars: 500, MaxTokens: 300},
		Upload:     config.UploadConfig{AllowedExtensions: []string{"txt"}, MaxSizeMB: 16},
		Batch:      config.BatchConfig{Concurrency: 0},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens")
	assert.Contains(t, err.Error(), "batch concurrency")
	assert.NotContains(t, err.Error(), "api key")
}
