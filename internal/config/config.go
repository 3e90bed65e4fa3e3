package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	LLM     LLMConfig
	Upload  UploadConfig
	Archive ArchiveConfig
	Email   EmailConfig
	CORS    CORSConfig
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

// LLMProviderConfig holds settings for a single model provider.
type LLMProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// LLMConfig holds structured model client settings with an optional
// secondary provider for rate-limit fallback.
type LLMConfig struct {
	Primary   LLMProviderConfig `mapstructure:"primary"`
	Secondary LLMProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (l *LLMConfig) SecondaryConfig() *LLMProviderConfig {
	if l.Secondary.Provider != "" {
		return &l.Secondary
	}
	return nil
}

// UploadConfig holds claim upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxFiles      int   `mapstructure:"max_files"`
}

// ArchiveConfig holds raw-upload archival settings.
type ArchiveConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// EmailConfig holds reviewer notification settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	ReviewerTo  string `mapstructure:"reviewer_to"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the
// SUPERCLAIMS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SUPERCLAIMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Model provider defaults
	v.SetDefault("llm.primary.provider", "groq")
	v.SetDefault("llm.primary.api_key", "")
	v.SetDefault("llm.primary.default_model", "llama-3.3-70b-versatile")
	v.SetDefault("llm.primary.max_retries", 3)
	v.SetDefault("llm.primary.timeout_secs", 120)
	v.SetDefault("llm.secondary.provider", "")
	v.SetDefault("llm.secondary.api_key", "")
	v.SetDefault("llm.secondary.default_model", "")
	v.SetDefault("llm.secondary.max_retries", 3)
	v.SetDefault("llm.secondary.timeout_secs", 120)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)
	v.SetDefault("upload.max_files", 10)

	// Archive defaults (off unless a bucket is configured)
	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.bucket", "superclaims-uploads")
	v.SetDefault("archive.endpoint", "")
	v.SetDefault("archive.access_key", "")
	v.SetDefault("archive.secret_key", "")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@superclaims.local")
	v.SetDefault("email.from_name", "SuperClaims")
	v.SetDefault("email.reviewer_to", "")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "SUPERCLAIMS_SERVER_PORT",
		"server.read_timeout":          "SUPERCLAIMS_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "SUPERCLAIMS_SERVER_WRITE_TIMEOUT",
		"server.environment":           "SUPERCLAIMS_SERVER_ENVIRONMENT",
		"log.level":                    "SUPERCLAIMS_LOG_LEVEL",
		"log.format":                   "SUPERCLAIMS_LOG_FORMAT",
		"llm.primary.provider":         "SUPERCLAIMS_LLM_PRIMARY_PROVIDER",
		"llm.primary.api_key":          "SUPERCLAIMS_LLM_PRIMARY_API_KEY",
		"llm.primary.default_model":    "SUPERCLAIMS_LLM_PRIMARY_DEFAULT_MODEL",
		"llm.primary.max_retries":      "SUPERCLAIMS_LLM_PRIMARY_MAX_RETRIES",
		"llm.primary.timeout_secs":     "SUPERCLAIMS_LLM_PRIMARY_TIMEOUT_SECS",
		"llm.secondary.provider":       "SUPERCLAIMS_LLM_SECONDARY_PROVIDER",
		"llm.secondary.api_key":        "SUPERCLAIMS_LLM_SECONDARY_API_KEY",
		"llm.secondary.default_model":  "SUPERCLAIMS_LLM_SECONDARY_DEFAULT_MODEL",
		"llm.secondary.max_retries":    "SUPERCLAIMS_LLM_SECONDARY_MAX_RETRIES",
		"llm.secondary.timeout_secs":   "SUPERCLAIMS_LLM_SECONDARY_TIMEOUT_SECS",
		"upload.max_file_size_mb":      "SUPERCLAIMS_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_files":             "SUPERCLAIMS_UPLOAD_MAX_FILES",
		"archive.enabled":              "SUPERCLAIMS_ARCHIVE_ENABLED",
		"archive.region":               "SUPERCLAIMS_ARCHIVE_REGION",
		"archive.bucket":               "SUPERCLAIMS_ARCHIVE_BUCKET",
		"archive.endpoint":             "SUPERCLAIMS_ARCHIVE_ENDPOINT",
		"archive.access_key":           "SUPERCLAIMS_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":           "SUPERCLAIMS_ARCHIVE_SECRET_KEY",
		"email.provider":               "SUPERCLAIMS_EMAIL_PROVIDER",
		"email.region":                 "SUPERCLAIMS_EMAIL_REGION",
		"email.from_address":           "SUPERCLAIMS_EMAIL_FROM_ADDRESS",
		"email.from_name":              "SUPERCLAIMS_EMAIL_FROM_NAME",
		"email.reviewer_to":            "SUPERCLAIMS_EMAIL_REVIEWER_TO",
		"cors.allowed_origins":         "SUPERCLAIMS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	// Railway/Heroku/Render set a PORT env var. Use it if
	// SUPERCLAIMS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SUPERCLAIMS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         serverPort,
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			Environment:  v.GetString("server.environment"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		LLM: LLMConfig{
			Primary: LLMProviderConfig{
				Provider:     v.GetString("llm.primary.provider"),
				APIKey:       v.GetString("llm.primary.api_key"),
				DefaultModel: v.GetString("llm.primary.default_model"),
				MaxRetries:   v.GetInt("llm.primary.max_retries"),
				TimeoutSecs:  v.GetInt("llm.primary.timeout_secs"),
			},
			Secondary: LLMProviderConfig{
				Provider:     v.GetString("llm.secondary.provider"),
				APIKey:       v.GetString("llm.secondary.api_key"),
				DefaultModel: v.GetString("llm.secondary.default_model"),
				MaxRetries:   v.GetInt("llm.secondary.max_retries"),
				TimeoutSecs:  v.GetInt("llm.secondary.timeout_secs"),
			},
		},
		Upload: UploadConfig{
			MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
			MaxFiles:      v.GetInt("upload.max_files"),
		},
		Archive: ArchiveConfig{
			Enabled:   v.GetBool("archive.enabled"),
			Region:    v.GetString("archive.region"),
			Bucket:    v.GetString("archive.bucket"),
			Endpoint:  v.GetString("archive.endpoint"),
			AccessKey: v.GetString("archive.access_key"),
			SecretKey: v.GetString("archive.secret_key"),
		},
		Email: EmailConfig{
			Provider:    v.GetString("email.provider"),
			Region:      v.GetString("email.region"),
			FromAddress: v.GetString("email.from_address"),
			FromName:    v.GetString("email.from_name"),
			ReviewerTo:  v.GetString("email.reviewer_to"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(v.GetString("cors.allowed_origins"), ","),
		},
	}

	return cfg, nil
}
