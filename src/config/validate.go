package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("server.port is required")
	}
	if strings.Contains(c.Server.AllowedOrigins, "*") {
		return fmt.Errorf("server.allowed_origins cannot contain a wildcard: credentials are allowed")
	}
	if strings.TrimSpace(c.Mongo.URI) == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	if strings.TrimSpace(c.Mongo.Database) == "" {
		return fmt.Errorf("mongo.database is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %s)", c.Auth.TokenTTL)
	}
	if c.SMTP.SMTPEnabled() && (c.SMTP.Port <= 0 || c.SMTP.Port > 65535) {
		return fmt.Errorf("smtp.port must be a valid port (got %d)", c.SMTP.Port)
	}
	if c.Effects.Timeout <= 0 {
		return fmt.Errorf("effects.timeout must be > 0 (got %s)", c.Effects.Timeout)
	}
	return nil
}
