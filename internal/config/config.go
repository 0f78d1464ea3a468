package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `json:"server"`
	Security SecurityConfig `json:"security"`
	Market   MarketConfig   `json:"market"`
	Logging  LoggingConfig  `json:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	CORSOrigin   string        `json:"cors_origin"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// SecurityConfig holds token settings
type SecurityConfig struct {
	JWTSecret string        `json:"jwt_secret"`
	TokenTTL  time.Duration `json:"token_ttl"`
}

// MarketConfig holds marketplace business settings
type MarketConfig struct {
	// AdminOwnerID is the owner attributed to projects synthesized
	// when an admin-seeded asset is unlisted.
	AdminOwnerID   string `json:"admin_owner_id"`
	AdminOwnerName string `json:"admin_owner_name"`

	ManagementFeeRate  float64 `json:"management_fee_rate"`
	TransactionFeeRate float64 `json:"transaction_fee_rate"`

	// SyntheticDeadlineDays is the funding deadline applied to
	// synthesized projects that carry none of their own.
	SyntheticDeadlineDays int `json:"synthetic_deadline_days"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `json:"level"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Default config
	config := &Config{
		Server: ServerConfig{
			Host:       "0.0.0.0",
			Port:       5000,
			CORSOrigin: "http://localhost:3000",
		},
		Security: SecurityConfig{
			JWTSecret: "dev-secret-change-me",
			TokenTTL:  7 * 24 * time.Hour,
		},
		Market: MarketConfig{
			AdminOwnerID:          "admin-001",
			AdminOwnerName:        "Lakeside Exchange Operations",
			ManagementFeeRate:     0.02,
			TransactionFeeRate:    0.01,
			SyntheticDeadlineDays: 90,
		},
		Logging: LoggingConfig{
			Level: "debug",
		},
	}

	// Load from file if exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	overrideWithEnv(config)

	return config, nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		config.Server.CORSOrigin = origin
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Security.JWTSecret = secret
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
