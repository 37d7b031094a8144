package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string `mapstructure:"server_port"`
	ServerHost string `mapstructure:"server_host"`

	// Murf speech API configuration
	MurfAPIKey        string        `mapstructure:"murf_api_key"`
	MurfBaseURL       string        `mapstructure:"murf_base_url"`
	MurfVoicesTimeout time.Duration `mapstructure:"murf_voices_timeout"`
	MurfTTSTimeout    time.Duration `mapstructure:"murf_tts_timeout"`

	// Synthesis defaults applied when a request omits them
	DefaultVoiceID string `mapstructure:"tts_default_voice"`
	DefaultFormat  string `mapstructure:"tts_default_format"`

	// Redis backs the speech rate limiter; empty disables it
	RedisURL      string        `mapstructure:"redis_url"`
	TTSRateLimit  int           `mapstructure:"tts_rate_limit"`
	TTSRateWindow time.Duration `mapstructure:"tts_rate_window"`

	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	LogLevel           string   `mapstructure:"log_level"`

	Environment Environment `mapstructure:"-"`
}

// Address returns the host:port pair the HTTP server listens on.
func (c *Config) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}

var defaults = map[string]any{
	"server_port":          "5000",
	"server_host":          "",
	"murf_api_key":         "",
	"murf_base_url":        "https://api.murf.ai",
	"murf_voices_timeout":  10 * time.Second,
	"murf_tts_timeout":     30 * time.Second,
	"tts_default_voice":    "en-US-ken",
	"tts_default_format":   "MP3",
	"redis_url":            "",
	"tts_rate_limit":       30,
	"tts_rate_window":      time.Minute,
	"cors_allowed_origins": []string{"http://localhost:5173", "http://localhost:5000"},
	"log_level":            "",
}

// LoadConfig creates a new Config instance from defaults, an optional config
// file named by CONFIG_FILE, environment variables and Docker secrets.
func LoadConfig() (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.Environment = GetEnvironment()

	cfg.MurfAPIKey = strings.TrimSpace(cfg.MurfAPIKey)
	if cfg.MurfAPIKey == "" {
		key, err := loadAPIKeyFile()
		if err != nil {
			return nil, err
		}
		cfg.MurfAPIKey = key
	}
	cfg.CORSAllowedOrigins = splitOrigins(cfg.CORSAllowedOrigins)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadAPIKeyFile falls back to MURF_API_KEY_FILE and then the murf_api_key
// Docker secret.
func loadAPIKeyFile() (string, error) {
	if path := os.Getenv("MURF_API_KEY_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return readSecret("murf_api_key"), nil
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

// splitOrigins flattens comma separated entries, since env values arrive as a
// single string.
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, origin := range strings.Split(item, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}
