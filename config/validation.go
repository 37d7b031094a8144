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

// ValidateConfig checks every field and reports all problems at once. The
// process refuses to start without a Murf API key.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.MurfAPIKey == "" {
		errors = append(errors, ValidationError{
			Field:   "MURF_API_KEY",
			Message: "environment variable is missing (or set MURF_API_KEY_FILE / murf_api_key secret)",
		}.Error())
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errors = append(errors, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}.Error())
	}

	if u, err := url.Parse(cfg.MurfBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{Field: "MURF_BASE_URL", Message: fmt.Sprintf("invalid URL %q", cfg.MurfBaseURL)}.Error())
	}

	if cfg.MurfVoicesTimeout <= 0 {
		errors = append(errors, ValidationError{Field: "MURF_VOICES_TIMEOUT", Message: "must be positive"}.Error())
	}
	if cfg.MurfTTSTimeout <= 0 {
		errors = append(errors, ValidationError{Field: "MURF_TTS_TIMEOUT", Message: "must be positive"}.Error())
	}

	for _, origin := range cfg.CORSAllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errors = append(errors, ValidationError{Field: "CORS_ALLOWED_ORIGINS", Message: fmt.Sprintf("origin %q must be * or start with http:// or https://", origin)}.Error())
		}
	}

	if cfg.RedisURL != "" {
		if cfg.TTSRateLimit <= 0 {
			errors = append(errors, ValidationError{Field: "TTS_RATE_LIMIT", Message: "must be positive when REDIS_URL is set"}.Error())
		}
		if cfg.TTSRateWindow <= 0 {
			errors = append(errors, ValidationError{Field: "TTS_RATE_WINDOW", Message: "must be positive when REDIS_URL is set"}.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
