package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is built once at startup and
// treated as read-only afterwards.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	CORS       CORSConfig
	LLM        LLMConfig
	Classifier ModelCallConfig
	Drafter    ModelCallConfig
	Upload     UploadConfig
	Input      InputConfig
	Batch      BatchConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LLMConfig holds the language-model provider settings shared by the
// classification and drafting calls.
type LLMConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	BaseURL     string `mapstructure:"base_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Timeout returns the per-call deadline for model requests.
func (l *LLMConfig) Timeout() time.Duration {
	if l.TimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(l.TimeoutSecs) * time.Second
}

// ModelCallConfig holds sampling and prompt-size limits for one model call.
type ModelCallConfig struct {
	MaxInputChars int     `mapstructure:"max_input_chars"`
	Temperature   float32 `mapstructure:"temperature"`
	MaxTokens     int     `mapstructure:"max_tokens"`
}

// UploadConfig holds document upload settings.
type UploadConfig struct {
	Dir               string   `mapstructure:"dir"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
	MaxSizeMB         int64    `mapstructure:"max_size_mb"`
}

// MaxBytes returns the upload size limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxSizeMB << 20
}

// IsAllowed reports whether ext (without dot, lowercase) is on the allow-list.
func (u *UploadConfig) IsAllowed(ext string) bool {
	for _, allowed := range u.AllowedExtensions {
		if allowed == ext {
			return true
		}
	}
	return false
}

// InputConfig holds caller-side content validation settings.
type InputConfig struct {
	MinContentLength int `mapstructure:"min_content_length"`
}

// BatchConfig holds settings for batch classification.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// Validate checks settings whose absence must stop the process from starting.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		errs = append(errs, errors.New("llm api key is required (set MAILTRIAGE_LLM_API_KEY or OPENAI_API_KEY)"))
	}
	if c.LLM.Provider == "" {
		errs = append(errs, errors.New("llm provider is required"))
	}
	if c.Classifier.MaxTokens <= 0 || c.Drafter.MaxTokens <= 0 {
		errs = append(errs, errors.New("classifier and drafter max_tokens must be positive"))
	}
	if c.Classifier.MaxInputChars <= 0 || c.Drafter.MaxInputChars <= 0 {
		errs = append(errs, errors.New("classifier and drafter max_input_chars must be positive"))
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		errs = append(errs, errors.New("at least one upload extension must be allowed"))
	}
	if c.Upload.MaxSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("upload max_size_mb must be positive, got %d", c.Upload.MaxSizeMB))
	}
	if c.Batch.Concurrency <= 0 {
		errs = append(errs, fmt.Errorf("batch concurrency must be positive, got %d", c.Batch.Concurrency))
	}
	return errors.Join(errs...)
}

// Load reads configuration from environment variables with the MAILTRIAGE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MAILTRIAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":5000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5000,http://127.0.0.1:5000")

	// LLM defaults
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout_secs", 30)

	// Classification call: near-deterministic, short structured answer
	v.SetDefault("classifier.max_input_chars", 1000)
	v.SetDefault("classifier.temperature", 0.3)
	v.SetDefault("classifier.max_tokens", 150)

	// Drafting call: some variety, room for a few lines of prose
	v.SetDefault("drafter.max_input_chars", 500)
	v.SetDefault("drafter.temperature", 0.5)
	v.SetDefault("drafter.max_tokens", 300)

	// Upload defaults
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.allowed_extensions", "txt,pdf")
	v.SetDefault("upload.max_size_mb", 16)

	v.SetDefault("input.min_content_length", 10)
	v.SetDefault("batch.concurrency", 4)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string][]string{
		"server.port":                {"MAILTRIAGE_SERVER_PORT"},
		"server.read_timeout":        {"MAILTRIAGE_SERVER_READ_TIMEOUT"},
		"server.write_timeout":       {"MAILTRIAGE_SERVER_WRITE_TIMEOUT"},
		"server.environment":         {"MAILTRIAGE_SERVER_ENVIRONMENT"},
		"log.level":                  {"MAILTRIAGE_LOG_LEVEL"},
		"log.format":                 {"MAILTRIAGE_LOG_FORMAT"},
		"cors.allowed_origins":       {"MAILTRIAGE_CORS_ALLOWED_ORIGINS"},
		"llm.provider":               {"MAILTRIAGE_LLM_PROVIDER"},
		"llm.api_key":                {"MAILTRIAGE_LLM_API_KEY", "OPENAI_API_KEY"},
		"llm.model":                  {"MAILTRIAGE_LLM_MODEL"},
		"llm.base_url":               {"MAILTRIAGE_LLM_BASE_URL"},
		"llm.timeout_secs":           {"MAILTRIAGE_LLM_TIMEOUT_SECS"},
		"classifier.max_input_chars": {"MAILTRIAGE_CLASSIFIER_MAX_INPUT_CHARS"},
		"classifier.temperature":     {"MAILTRIAGE_CLASSIFIER_TEMPERATURE"},
		"classifier.max_tokens":      {"MAILTRIAGE_CLASSIFIER_MAX_TOKENS"},
		"drafter.max_input_chars":    {"MAILTRIAGE_DRAFTER_MAX_INPUT_CHARS"},
		"drafter.temperature":        {"MAILTRIAGE_DRAFTER_TEMPERATURE"},
		"drafter.max_tokens":         {"MAILTRIAGE_DRAFTER_MAX_TOKENS"},
		"upload.dir":                 {"MAILTRIAGE_UPLOAD_DIR"},
		"upload.allowed_extensions":  {"MAILTRIAGE_UPLOAD_ALLOWED_EXTENSIONS"},
		"upload.max_size_mb":         {"MAILTRIAGE_UPLOAD_MAX_SIZE_MB"},
		"input.min_content_length":   {"MAILTRIAGE_INPUT_MIN_CONTENT_LENGTH"},
		"batch.concurrency":          {"MAILTRIAGE_BATCH_CONCURRENCY"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if MAILTRIAGE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MAILTRIAGE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins"), false),
	}
	cfg.LLM = LLMConfig{
		Provider:    strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
		APIKey:      strings.TrimSpace(v.GetString("llm.api_key")),
		Model:       v.GetString("llm.model"),
		BaseURL:     v.GetString("llm.base_url"),
		TimeoutSecs: v.GetInt("llm.timeout_secs"),
	}
	cfg.Classifier = ModelCallConfig{
		MaxInputChars: v.GetInt("classifier.max_input_chars"),
		Temperature:   float32(v.GetFloat64("classifier.temperature")),
		MaxTokens:     v.GetInt("classifier.max_tokens"),
	}
	cfg.Drafter = ModelCallConfig{
		MaxInputChars: v.GetInt("drafter.max_input_chars"),
		Temperature:   float32(v.GetFloat64("drafter.temperature")),
		MaxTokens:     v.GetInt("drafter.max_tokens"),
	}
	cfg.Upload = UploadConfig{
		Dir:               v.GetString("upload.dir"),
		AllowedExtensions: splitList(v.GetString("upload.allowed_extensions"), true),
		MaxSizeMB:         v.GetInt64("upload.max_size_mb"),
	}
	cfg.Input = InputConfig{
		MinContentLength: v.GetInt("input.min_content_length"),
	}
	cfg.Batch = BatchConfig{
		Concurrency: v.GetInt("batch.concurrency"),
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blanks. With extensions
// set, entries are lowercased and stripped of a leading dot.
func splitList(raw string, extensions bool) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if extensions {
			item = strings.ToLower(strings.TrimPrefix(item, "."))
		}
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
