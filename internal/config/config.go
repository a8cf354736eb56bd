package config

import (
	"net/url"
	"os"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port        string
	FlashSecret string
	Database    Database
}

// Database selects the database host, name and driver.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Driver   string
}

// Load reads the configuration from environment variables, falling
// back to development defaults.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		FlashSecret: getenv("FLASH_SECRET", "devsecret"),
		Database: Database{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "postgres"),
			Password: getenv("DB_PASS", ""),
			Name:     getenv("DB_NAME", "librarydb"),
			Driver:   getenv("DB_DRIVER", "postgres"),
		},
	}
}

// DriverName maps the configured driver to a registered sql driver:
// "pgx" selects the pgx stdlib driver, anything else lib/pq.
func (d Database) DriverName() string {
	if d.Driver == "pgx" {
		return "pgx"
	}
	return "postgres"
}

// DSN builds the postgres connection string.
func (d Database) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
