package config

import (
	"log"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHost        = "0.0.0.0"
	defaultPort        = "8000"
	defaultDatabaseURL = "cinema.db"
)

type Config struct {
	Host        string
	Port        string
	DatabaseURL string
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development. Every knob has a workable default;
// DATABASE_URL accepts either a sqlite file path or a postgres:// URL.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	cfg := &Config{
		Host:        getEnv("HOST", defaultHost),
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
	}
	return cfg
}

// Addr is the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}
