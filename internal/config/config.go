// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"FOLIO_DB_PATH" envDefault:"./data/folio.db"`
	SessionSecret string `env:"FOLIO_SESSION_SECRET,required"`
	ServerHost    string `env:"FOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"FOLIO_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"FOLIO_ENV" envDefault:"development"`
	LogLevel      string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`

	// Localization
	DefaultLanguage string `env:"FOLIO_DEFAULT_LANGUAGE" envDefault:"en"` // Used when no language is configured

	// Public URL prefixes
	StaticURL string `env:"FOLIO_STATIC_URL" envDefault:"/static/"`
	MediaURL  string `env:"FOLIO_MEDIA_URL" envDefault:"/media/"`
	MediaDir  string `env:"FOLIO_MEDIA_DIR" envDefault:"./data/media"` // Served under MediaURL when it is a local path

	// Admin API (Basic auth, argon2id hash); an empty hash disables it
	AdminUser         string `env:"FOLIO_ADMIN_USER" envDefault:"admin"`
	AdminPasswordHash string `env:"FOLIO_ADMIN_PASSWORD_HASH"`

	// Contact intake rate limiting, per client IP
	ContactRateLimit float64 `env:"FOLIO_CONTACT_RATE_LIMIT" envDefault:"0.2"` // Requests per second
	ContactRateBurst int     `env:"FOLIO_CONTACT_RATE_BURST" envDefault:"3"`

	// Origins allowed to submit cross-origin unsafe requests (CSRF)
	TrustedOrigins []string `env:"FOLIO_TRUSTED_ORIGINS" envSeparator:","`

	// Seeding configuration
	DoSeed bool `env:"FOLIO_DO_SEED" envDefault:"false"` // Seed demo content into an empty database
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// AdminEnabled returns true if admin credentials are configured.
func (c Config) AdminEnabled() bool {
	return c.AdminUser != "" && c.AdminPasswordHash != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("FOLIO_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("FOLIO_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("FOLIO_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	cfg.DefaultLanguage = strings.ToLower(strings.TrimSpace(cfg.DefaultLanguage))
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "en"
	}

	if cfg.ContactRateLimit <= 0 || cfg.ContactRateBurst <= 0 {
		return nil, fmt.Errorf("FOLIO_CONTACT_RATE_LIMIT and FOLIO_CONTACT_RATE_BURST must be positive")
	}

	origins := cfg.TrustedOrigins[:0]
	for _, o := range cfg.TrustedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, strings.TrimRight(o, "/"))
		}
	}
	cfg.TrustedOrigins = origins

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
