package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment is the runtime environment the process was started in
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads ENV, with CI=true taking precedence. Anything
// unrecognised is development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch Environment(os.Getenv("ENV")) {
	case Production:
		return Production
	case Test:
		return Test
	default:
		return Development
	}
}

// IsCI reports whether the process runs under CI
func IsCI() bool { return GetEnvironment() == CI }

// IsProduction reports whether the process runs in production
func IsProduction() bool { return GetEnvironment() == Production }

// DefaultAllowedOrigins are the frontends allowed to call the API when
// ALLOWED_ORIGINS is not set.
var DefaultAllowedOrigins = []string{
	"http://127.0.0.1:5500",
	"http://localhost:5500",
	"https://calorie-craft-frontend.netlify.app",
}

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Spoonacular catalog configuration
	SpoonacularAPIKey      string
	SpoonacularBaseURL     string
	SpoonacularResultLimit int
	CatalogTimeout         time.Duration

	// CORS configuration
	AllowedOrigins []string

	// Redis configuration, used only for rate limiting
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	RateLimitPerMinute int
	LogLevel           string
}

// LoadConfig creates a new Config from environment variables, an optional
// .env file and Docker secrets, then validates it.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env != Production {
		// A missing .env file is normal outside local development.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg, err := load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func load(env Environment) (*Config, error) {
	s := source{preferSecrets: env == Production}

	cfg := &Config{
		ServerHost:         s.get("SERVER_HOST", "server_host", "0.0.0.0"),
		ServerPort:         s.get("SERVER_PORT", "server_port", "3000"),
		SpoonacularAPIKey:  s.get("SPOONACULAR_API_KEY", "spoonacular_api_key", ""),
		SpoonacularBaseURL: strings.TrimRight(s.get("SPOONACULAR_BASE_URL", "", "https://api.spoonacular.com"), "/"),
		RedisURL:           s.get("REDIS_URL", "redis_url", ""),
		RedisHost:          s.get("REDIS_HOST", "redis_host", ""),
		RedisPort:          s.get("REDIS_PORT", "redis_port", "6379"),
		RedisPassword:      s.get("REDIS_PASSWORD", "redis_password", ""),
		LogLevel:           s.get("LOG_LEVEL", "", "info"),
		AllowedOrigins:     DefaultAllowedOrigins,
	}

	if origins := s.get("ALLOWED_ORIGINS", "", ""); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	var err error
	if cfg.SpoonacularResultLimit, err = atoi("SPOONACULAR_RESULT_LIMIT", s.get("SPOONACULAR_RESULT_LIMIT", "", "10")); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = atoi("REDIS_DB", s.get("REDIS_DB", "", "0")); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = atoi("RATE_LIMIT_PER_MINUTE", s.get("RATE_LIMIT_PER_MINUTE", "", "30")); err != nil {
		return nil, err
	}

	timeout := s.get("CATALOG_TIMEOUT", "", "10s")
	if cfg.CatalogTimeout, err = time.ParseDuration(timeout); err != nil {
		return nil, fmt.Errorf("invalid CATALOG_TIMEOUT %q: %w", timeout, err)
	}

	return cfg, nil
}

// source resolves a setting from the environment or a Docker secret.
// In production secrets win over environment variables.
type source struct {
	preferSecrets bool
}

func (s source) get(envKey, secretName, fallback string) string {
	env := strings.TrimSpace(os.Getenv(envKey))
	secret := ""
	if secretName != "" {
		secret = readSecret(secretName)
	}

	first, second := env, secret
	if s.preferSecrets {
		first, second = secret, env
	}

	switch {
	case first != "":
		return first
	case second != "":
		return second
	default:
		return fallback
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func atoi(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RedisEnabled reports whether enough Redis settings are present to try a connection.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}
