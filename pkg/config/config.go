package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Backend Backend
	Session SessionConfig
	CORS    CORSConfig
	Log     LogConfig
	Exports ExportsConfig
	Seed    SeedConfig
}

// Backend describes the remote school API this client talks to.
type Backend struct {
	URL            string
	RequestTimeout time.Duration
}

// SessionConfig governs token persistence and the login flow.
type SessionConfig struct {
	TokenFile    string
	LoginTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportsConfig toggles CSV/PDF list exports.
type ExportsConfig struct {
	Enabled bool
}

// SeedConfig gates the explicit admin seed action. Seeding is never run
// automatically at startup.
type SeedConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Backend = Backend{
		URL:            strings.TrimRight(v.GetString("BACKEND_URL"), "/"),
		RequestTimeout: parseDuration(v.GetString("BACKEND_REQUEST_TIMEOUT"), 30*time.Second),
	}

	cfg.Session = SessionConfig{
		TokenFile:    v.GetString("SESSION_TOKEN_FILE"),
		LoginTimeout: parseDuration(v.GetString("LOGIN_TIMEOUT"), 10*time.Second),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Exports = ExportsConfig{Enabled: v.GetBool("ENABLE_EXPORTS")}
	cfg.Seed = SeedConfig{Enabled: v.GetBool("ENABLE_SEED")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/client")

	v.SetDefault("BACKEND_URL", "http://localhost:8000")
	v.SetDefault("BACKEND_REQUEST_TIMEOUT", "30s")

	v.SetDefault("SESSION_TOKEN_FILE", ".session/token.json")
	v.SetDefault("LOGIN_TIMEOUT", "10s")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_EXPORTS", true)
	v.SetDefault("ENABLE_SEED", false)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
