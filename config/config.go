package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of the desk. The defaults reproduce a plain
// interactive session writing LHMS_12345.txt into the working directory.
type Config struct {
	SessionID string `env:"HOTEL_SESSION_ID" envDefault:"12345"`
	ReportDir string `env:"HOTEL_REPORT_DIR" envDefault:"."`

	// HTTPAddr enables the read-only status API when set, e.g. ":8080".
	HTTPAddr    string   `env:"HOTEL_HTTP_ADDR"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	ArchiveEnabled bool `env:"HOTEL_ARCHIVE_ENABLED" envDefault:"false"`
	Database       Database
}

// Database is the MySQL target of the bill archive.
type Database struct {
	URL         string `env:"MYSQL_URL"`
	FallbackURL string `env:"DATABASE_URL"`
	User        string `env:"DB_USER" envDefault:"root"`
	Pass        string `env:"DB_PASS"`
	Host        string `env:"DB_HOST" envDefault:"127.0.0.1"`
	Port        string `env:"DB_PORT" envDefault:"3306"`
	Name        string `env:"DB_NAME" envDefault:"hotel_db"`
}

// Load reads an optional .env file and then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionID == "" {
		return Config{}, errors.New("HOTEL_SESSION_ID must not be empty")
	}
	return cfg, nil
}
