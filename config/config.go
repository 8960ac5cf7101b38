// Package config exposes the process configuration for attendix.
// Values come from the environment first, then an optional TOML file,
// then built-in defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

// DBDriver selects the relational backend.
type DBDriver string

const (
	SQLite   DBDriver = "sqlite"
	Postgres DBDriver = "postgres"
)

// fileConfig mirrors the optional TOML config file. Every field has an
// environment override, so the file only supplies defaults.
type fileConfig struct {
	Listen        string `toml:"listen"`
	Port          int    `toml:"port"`
	WebDomain     string `toml:"web_domain"`
	SessionSecret string `toml:"session_secret"`
	SessionMaxAge int    `toml:"session_max_age"`
	DBDriver      string `toml:"db_driver"`
	DBFolder      string `toml:"db_folder"`
	PostgresDSN   string `toml:"postgres_dsn"`
	LogFolder     string `toml:"log_folder"`
}

var (
	loadOnce sync.Once
	file     fileConfig
)

// loadFile reads .env and the TOML config file once. A missing file is
// not an error; a malformed one is reported on stderr and ignored.
func loadFile() {
	loadOnce.Do(func() {
		_ = godotenv.Load()

		path := os.Getenv("ATTENDIX_CONFIG")
		if path == "" {
			path = "attendix.toml"
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return
		}
		if err := toml.Unmarshal(data, &file); err != nil {
			fmt.Fprintf(os.Stderr, "invalid config file %s: %v\n", path, err)
			file = fileConfig{}
		}
	})
}

func fromEnv(key, fileValue, defaultValue string) string {
	loadFile()
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func IsDebug() bool {
	return os.Getenv("ATTENDIX_DEBUG") == "true"
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("ATTENDIX_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func GetLogFolder() string {
	return fromEnv("ATTENDIX_LOG_FOLDER", file.LogFolder, "/var/log")
}

func GetListen() string {
	return fromEnv("ATTENDIX_LISTEN", file.Listen, "")
}

func GetPort() int {
	loadFile()
	if value := os.Getenv("ATTENDIX_PORT"); value != "" {
		if port, err := strconv.Atoi(value); err == nil {
			return port
		}
	}
	if file.Port > 0 {
		return file.Port
	}
	return 8080
}

// GetWebDomain returns the expected Host header, empty to accept any.
func GetWebDomain() string {
	return fromEnv("ATTENDIX_WEB_DOMAIN", file.WebDomain, "")
}

// GetSessionSecret returns the cookie-store secret, empty if unset.
// The web server generates a per-process secret when none is configured.
func GetSessionSecret() string {
	return fromEnv("ATTENDIX_SESSION_SECRET", file.SessionSecret, "")
}

// GetSessionMaxAge returns the session lifetime in minutes.
func GetSessionMaxAge() int {
	loadFile()
	if value := os.Getenv("ATTENDIX_SESSION_MAX_AGE"); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil && minutes > 0 {
			return minutes
		}
	}
	if file.SessionMaxAge > 0 {
		return file.SessionMaxAge
	}
	return 60
}

func GetDBDriver() DBDriver {
	return DBDriver(fromEnv("ATTENDIX_DB_DRIVER", file.DBDriver, string(SQLite)))
}

func GetDBFolderPath() string {
	return fromEnv("ATTENDIX_DB_FOLDER", file.DBFolder, "/etc/attendix")
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

// GetPostgresDSN returns the connection string for the postgres driver.
func GetPostgresDSN() string {
	return fromEnv("ATTENDIX_PG_DSN", file.PostgresDSN,
		"host=localhost port=5432 user=postgres dbname=attendix sslmode=disable")
}
