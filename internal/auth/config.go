package auth

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds authentication settings. Values come from config/auth.yaml
// with environment overrides for the secret.
type Config struct {
	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
	BcryptCost    int    `yaml:"bcrypt_cost"`
}

// DefaultConfig returns the fallback configuration used when no auth.yaml
// is present. The JWT secret still has to come from elsewhere.
func DefaultConfig() *Config {
	return &Config{
		TokenTTLHours: 24,
		BcryptCost:    0, // bcrypt default
	}
}

// TokenTTL returns the token lifetime as a duration
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// LoadConfig loads authentication configuration from the given yaml file.
// A missing file is not an error; defaults and environment variables apply.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("error parsing auth config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	// Environment overrides for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the authentication configuration
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
