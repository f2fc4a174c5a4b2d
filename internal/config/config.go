// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted in DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the process configuration.
type Config struct {
	Addr           string
	WebDir         string
	DatabaseDriver string
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	SeedDemo       bool
	AdminEmail     string
	AdminPassword  string
	OIDC           OIDC
}

// OIDC holds the optional single sign-on settings.
type OIDC struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether SSO is configured.
func (o OIDC) Enabled() bool {
	return o.Issuer != ""
}

// Load reads envFiles (".env" when none are given) into the environment
// without overriding variables that are already set, then builds a Config.
// A missing default .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load env file: %w", err)
		}
	}

	c := &Config{
		Addr:           env("ADDR", ":8080"),
		WebDir:         env("WEB_DIR", "web"),
		DatabaseDriver: env("DATABASE_DRIVER", DriverSQLite),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminEmail:     env("ADMIN_EMAIL", "admin@canteen.com"),
		AdminPassword:  env("ADMIN_PASSWORD", "admin123"),
		OIDC: OIDC{
			Issuer:       os.Getenv("OIDC_ISSUER"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
		},
	}

	var err error
	if c.TokenTTL, err = time.ParseDuration(env("TOKEN_TTL", "168h")); err != nil || c.TokenTTL <= 0 {
		return nil, fmt.Errorf("config: TOKEN_TTL must be a positive duration: %q", os.Getenv("TOKEN_TTL"))
	}
	if c.SeedDemo, err = strconv.ParseBool(env("SEED_DEMO", "true")); err != nil {
		return nil, fmt.Errorf("config: SEED_DEMO: %w", err)
	}

	if c.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseURL == "" {
			c.DatabaseURL = "canteen.db"
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return nil, errors.New("config: DATABASE_URL is required for postgres")
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("config: unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.OIDC.Enabled() && (c.OIDC.ClientID == "" || c.OIDC.RedirectURL == "") {
		return nil, errors.New("config: OIDC_ISSUER requires OIDC_CLIENT_ID and OIDC_REDIRECT_URL")
	}
	return c, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
