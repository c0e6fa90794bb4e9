package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// maxResultLimit is the largest page size the catalog accepts.
const maxResultLimit = 100

// ValidateConfig checks the configuration and reports every problem found.
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	if cfg.SpoonacularAPIKey == "" {
		msg := "is required (set SPOONACULAR_API_KEY or the spoonacular_api_key secret)"
		if IsCI() {
			msg = "SPOONACULAR_API_KEY environment variable is required in CI environment"
		}
		errs = append(errs, ValidationError{Field: "SPOONACULAR_API_KEY", Message: msg})
	}

	if u, err := url.Parse(cfg.SpoonacularBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "SPOONACULAR_BASE_URL", Message: fmt.Sprintf("%q is not an absolute URL", cfg.SpoonacularBaseURL)})
	}

	if cfg.SpoonacularResultLimit < 1 || cfg.SpoonacularResultLimit > maxResultLimit {
		errs = append(errs, ValidationError{Field: "SPOONACULAR_RESULT_LIMIT", Message: fmt.Sprintf("must be between 1 and %d", maxResultLimit)})
	}

	if cfg.CatalogTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "CATALOG_TIMEOUT", Message: "must be positive"})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("%q is not a valid port", cfg.ServerPort)})
	}

	if cfg.RateLimitPerMinute < 1 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_PER_MINUTE", Message: "must be at least 1"})
	}

	if len(cfg.AllowedOrigins) == 0 {
		errs = append(errs, ValidationError{Field: "ALLOWED_ORIGINS", Message: "must list at least one origin"})
	}

	if len(errs) == 0 {
		return nil
	}

	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, e.Error())
	}
	return fmt.Errorf("configuration validation failed:\n%s", strings.Join(lines, "\n"))
}
