package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Workspace WorkspaceConfig
	Log       LogConfig
}

// WorkspaceConfig holds workspace generation and mutation settings.
type WorkspaceConfig struct {
	CreatorID         string   // seed user bound to Secretary
	IDMode            string   // "uuid" or "sequence"
	DefaultToolCount  int      // catalog tools given to teams created after onboarding
	MessageTimeLayout string   // time.Format layout of message timestamps
	Teams             []string // team names used when onboarding names none (comma-separated in env)
}

// LogConfig holds zap logger settings.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()      // .env
	_ = godotenv.Load("env") // env (no leading dot)

	cfg := &Config{
		Workspace: WorkspaceConfig{
			CreatorID:         getEnv("CLUB_CREATOR_ID", "user-1"),
			IDMode:            strings.ToLower(getEnv("CLUB_ID_MODE", "uuid")),
			DefaultToolCount:  getEnvInt("CLUB_DEFAULT_TOOL_COUNT", 4),
			MessageTimeLayout: getEnv("CLUB_MESSAGE_TIME_LAYOUT", "03:04 PM"),
			Teams:             splitTrim(getEnv("CLUB_TEAMS", ""), ","),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Workspace.IDMode {
	case "uuid", "sequence":
	default:
		return fmt.Errorf("CLUB_ID_MODE: unsupported mode %q", c.Workspace.IDMode)
	}
	if c.Workspace.DefaultToolCount < 0 {
		return fmt.Errorf("CLUB_DEFAULT_TOOL_COUNT: must not be negative, got %d", c.Workspace.DefaultToolCount)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT: unsupported format %q", c.Log.Format)
	}
	return nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitTrim(s, sep string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, sep) {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
