package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store backend selectors.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config captures environment driven configuration values for the timetable
// tool.
type Config struct {
	DataDir   string
	Store     string
	SQLiteDSN string
	LogLevel  string
	LogFormat string
}

// Load parses configuration from the process environment. A .env file in the
// working directory is merged in first without overriding variables that are
// already set.
//
// Every value has a default; validation failures for the enumerated values
// are accumulated and reported together.
func Load() (Config, error) {
	// Ignore a missing .env file; it is an optional convenience.
	_ = godotenv.Load()

	cfg := Config{
		DataDir:   "data",
		Store:     StoreJSON,
		SQLiteDSN: "file:timetable.db",
		LogLevel:  "info",
		LogFormat: "text",
	}

	invalid := make([]string, 0, 2)

	if dir := strings.TrimSpace(os.Getenv("TIMETABLE_DATA_DIR")); dir != "" {
		cfg.DataDir = dir
	}

	if store := strings.TrimSpace(os.Getenv("TIMETABLE_STORE")); store != "" {
		switch strings.ToLower(store) {
		case StoreJSON, StoreSQLite:
			cfg.Store = strings.ToLower(store)
		default:
			invalid = append(invalid, "TIMETABLE_STORE")
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("TIMETABLE_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if level := strings.TrimSpace(os.Getenv("TIMETABLE_LOG_LEVEL")); level != "" {
		switch strings.ToLower(level) {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = strings.ToLower(level)
		default:
			invalid = append(invalid, "TIMETABLE_LOG_LEVEL")
		}
	}

	if format := strings.TrimSpace(os.Getenv("TIMETABLE_LOG_FORMAT")); format != "" {
		switch strings.ToLower(format) {
		case "text", "json":
			cfg.LogFormat = strings.ToLower(format)
		default:
			invalid = append(invalid, "TIMETABLE_LOG_FORMAT")
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
