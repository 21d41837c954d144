package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Parser ParserConfig
	BCRA   BCRAConfig
	Padron PadronConfig
	S3     S3Config
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

// ParserProviderConfig holds settings for a single vision LLM provider.
type ParserProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ParserConfig holds vision parser settings with multi-provider support.
type ParserConfig struct {
	// Legacy flat fields (backwards-compatible)
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`

	// Multi-provider fields
	Primary   ParserProviderConfig `mapstructure:"primary"`
	Secondary ParserProviderConfig `mapstructure:"secondary"`
}

// PrimaryConfig returns the primary provider config, falling back to legacy flat fields.
func (p *ParserConfig) PrimaryConfig() *ParserProviderConfig {
	if p.Primary.Provider != "" {
		return &p.Primary
	}
	return &ParserProviderConfig{
		Provider:     p.Provider,
		APIKey:       p.APIKey,
		DefaultModel: p.DefaultModel,
		TimeoutSecs:  p.TimeoutSecs,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (p *ParserConfig) SecondaryConfig() *ParserProviderConfig {
	if p.Secondary.Provider != "" {
		return &p.Secondary
	}
	return nil
}

// BCRAConfig holds Central de Deudores API settings.
type BCRAConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	UserAgent   string `mapstructure:"user_agent"`
}

// PadronConfig holds AFIP padrón A13 lookup settings. The lookup is disabled
// unless all credentials are present.
type PadronConfig struct {
	URL              string `mapstructure:"url"`
	Token            string `mapstructure:"token"`
	Sign             string `mapstructure:"sign"`
	CUITRepresentada string `mapstructure:"cuit_representada"`
	Environment      string `mapstructure:"environment"`
	TimeoutSecs      int    `mapstructure:"timeout_secs"`
}

// Enabled reports whether the padrón credentials are fully configured.
func (p *PadronConfig) Enabled() bool {
	return p.Token != "" && p.Sign != "" && p.CUITRepresentada != ""
}

// S3Config holds AWS S3 settings for optional upload archival. Archival is
// disabled when Bucket is empty; MaxFileSizeMB bounds uploads either way.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// Load reads configuration from environment variables with the CHEQUERO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CHEQUERO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Parser defaults (legacy flat)
	v.SetDefault("parser.provider", "gemini")
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "gemini-2.5-flash")
	v.SetDefault("parser.timeout_secs", 120)

	// Parser primary/secondary defaults
	v.SetDefault("parser.primary.provider", "")
	v.SetDefault("parser.primary.api_key", "")
	v.SetDefault("parser.primary.default_model", "")
	v.SetDefault("parser.primary.timeout_secs", 120)
	v.SetDefault("parser.secondary.provider", "")
	v.SetDefault("parser.secondary.api_key", "")
	v.SetDefault("parser.secondary.default_model", "")
	v.SetDefault("parser.secondary.timeout_secs", 120)

	// BCRA defaults
	v.SetDefault("bcra.base_url", "https://api.bcra.gob.ar")
	v.SetDefault("bcra.timeout_secs", 30)
	v.SetDefault("bcra.user_agent", "chequero/1.0")

	// Padrón defaults
	v.SetDefault("padron.url", "https://app.afipsdk.com/api/v1/afip/requests")
	v.SetDefault("padron.token", "")
	v.SetDefault("padron.sign", "")
	v.SetDefault("padron.cuit_representada", "")
	v.SetDefault("padron.environment", "dev")
	v.SetDefault("padron.timeout_secs", 30)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "CHEQUERO_SERVER_PORT",
		"server.read_timeout":            "CHEQUERO_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "CHEQUERO_SERVER_WRITE_TIMEOUT",
		"server.environment":             "CHEQUERO_SERVER_ENVIRONMENT",
		"log.level":                      "CHEQUERO_LOG_LEVEL",
		"log.format":                     "CHEQUERO_LOG_FORMAT",
		"cors.allowed_origins":           "CHEQUERO_CORS_ALLOWED_ORIGINS",
		"parser.provider":                "CHEQUERO_PARSER_PROVIDER",
		"parser.api_key":                 "CHEQUERO_PARSER_API_KEY",
		"parser.default_model":           "CHEQUERO_PARSER_DEFAULT_MODEL",
		"parser.timeout_secs":            "CHEQUERO_PARSER_TIMEOUT_SECS",
		"parser.primary.provider":        "CHEQUERO_PARSER_PRIMARY_PROVIDER",
		"parser.primary.api_key":         "CHEQUERO_PARSER_PRIMARY_API_KEY",
		"parser.primary.default_model":   "CHEQUERO_PARSER_PRIMARY_DEFAULT_MODEL",
		"parser.primary.timeout_secs":    "CHEQUERO_PARSER_PRIMARY_TIMEOUT_SECS",
		"parser.secondary.provider":      "CHEQUERO_PARSER_SECONDARY_PROVIDER",
		"parser.secondary.api_key":       "CHEQUERO_PARSER_SECONDARY_API_KEY",
		"parser.secondary.default_model": "CHEQUERO_PARSER_SECONDARY_DEFAULT_MODEL",
		"parser.secondary.timeout_secs":  "CHEQUERO_PARSER_SECONDARY_TIMEOUT_SECS",
		"bcra.base_url":                  "CHEQUERO_BCRA_BASE_URL",
		"bcra.timeout_secs":              "CHEQUERO_BCRA_TIMEOUT_SECS",
		"bcra.user_agent":                "CHEQUERO_BCRA_USER_AGENT",
		"padron.url":                     "CHEQUERO_PADRON_URL",
		"padron.token":                   "CHEQUERO_PADRON_TOKEN",
		"padron.sign":                    "CHEQUERO_PADRON_SIGN",
		"padron.cuit_representada":       "CHEQUERO_PADRON_CUIT_REPRESENTADA",
		"padron.environment":             "CHEQUERO_PADRON_ENVIRONMENT",
		"padron.timeout_secs":            "CHEQUERO_PADRON_TIMEOUT_SECS",
		"s3.region":                      "CHEQUERO_S3_REGION",
		"s3.bucket":                      "CHEQUERO_S3_BUCKET",
		"s3.endpoint":                    "CHEQUERO_S3_ENDPOINT",
		"s3.access_key":                  "CHEQUERO_S3_ACCESS_KEY",
		"s3.secret_key":                  "CHEQUERO_S3_SECRET_KEY",
		"s3.max_file_size_mb":            "CHEQUERO_S3_MAX_FILE_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CHEQUERO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CHEQUERO_SERVER_PORT") == "" {
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

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Parser = ParserConfig{
		Provider:     v.GetString("parser.provider"),
		APIKey:       v.GetString("parser.api_key"),
		DefaultModel: v.GetString("parser.default_model"),
		TimeoutSecs:  v.GetInt("parser.timeout_secs"),
		Primary: ParserProviderConfig{
			Provider:     v.GetString("parser.primary.provider"),
			APIKey:       v.GetString("parser.primary.api_key"),
			DefaultModel: v.GetString("parser.primary.default_model"),
			TimeoutSecs:  v.GetInt("parser.primary.timeout_secs"),
		},
		Secondary: ParserProviderConfig{
			Provider:     v.GetString("parser.secondary.provider"),
			APIKey:       v.GetString("parser.secondary.api_key"),
			DefaultModel: v.GetString("parser.secondary.default_model"),
			TimeoutSecs:  v.GetInt("parser.secondary.timeout_secs"),
		},
	}

	cfg.BCRA = BCRAConfig{
		BaseURL:     v.GetString("bcra.base_url"),
		TimeoutSecs: v.GetInt("bcra.timeout_secs"),
		UserAgent:   v.GetString("bcra.user_agent"),
	}

	cfg.Padron = PadronConfig{
		URL:              v.GetString("padron.url"),
		Token:            v.GetString("padron.token"),
		Sign:             v.GetString("padron.sign"),
		CUITRepresentada: v.GetString("padron.cuit_representada"),
		Environment:      v.GetString("padron.environment"),
		TimeoutSecs:      v.GetInt("padron.timeout_secs"),
	}

	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
	}

	return cfg, nil
}
