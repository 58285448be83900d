package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	Environment        string
	RunMigrations      bool
	RunSeed            bool
	AnthropicAPIKey    string
	AnthropicModel     string
	ScoreSweepSchedule string
	ReportTopRisk      int
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		Environment:        getEnv("APP_ENV", "development"),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:            getEnvBool("RUN_SEED", false),
		AnthropicAPIKey:    getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:     getEnv("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		ScoreSweepSchedule: getEnv("SCORE_SWEEP_SCHEDULE", "0 6 * * *"),
		ReportTopRisk:      getEnvInt("REPORT_TOP_RISK", 10),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.ReportTopRisk <= 0 {
		return fmt.Errorf("REPORT_TOP_RISK must be positive")
	}
	if c.Environment == "production" && c.RunSeed {
		return fmt.Errorf("RUN_SEED must be disabled in production")
	}
	return nil
}
