package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/agents"
)

type Config struct {
	Port               string
	DatabaseURL        string
	RedisURL           string
	SlackToken         string
	SlackSigningSecret string
	DefaultProfile     string
	CategoryRulesPath  string
	PythonBin          string
	WhisperModel       string
	ScriptsDir         string
	UploadDir          string
	Timezone           string
	LogLevel           string
	SessionTTL         time.Duration
}

// LoadConfig loads configuration from environment variables
// It first tries to load from .env file, then falls back to system environment variables
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		SlackToken:         getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DefaultProfile:     getEnv("DEFAULT_PROFILE", agents.DefaultProfile),
		CategoryRulesPath:  getEnv("CATEGORY_RULES_PATH", ""),
		PythonBin:          getEnv("PYTHON_BIN", "python3"),
		WhisperModel:       getEnv("WHISPER_MODEL", "base"),
		ScriptsDir:         getEnv("SCRIPTS_DIR", "scripts"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		Timezone:           getEnv("TIMEZONE", "UTC"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		SessionTTL:         getDuration("SESSION_TTL", 30*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// SlackEnabled reports whether the Slack bot should be started
func (c *Config) SlackEnabled() bool {
	return c.SlackToken != ""
}

// Validate checks the configuration and normalizes DefaultProfile to its canonical name
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.SlackToken != "" && c.SlackSigningSecret == "" {
		return fmt.Errorf("SLACK_SIGNING_SECRET is required when SLACK_BOT_TOKEN is set")
	}
	profile, err := agents.LookupProfile(c.DefaultProfile)
	if err != nil {
		return fmt.Errorf("DEFAULT_PROFILE: %w", err)
	}
	c.DefaultProfile = profile.Name
	if c.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR is required")
	}
	return nil
}
