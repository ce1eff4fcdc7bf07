package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverInMemory = "inmem"
	StorageDriverPostgres = "postgres"
)

// Config represents the application configuration structure
type Config struct {
	Environment string `default:"prod"`

	ListenAddress  string   `default:":8080" split_words:"true"`
	AllowedOrigins []string `default:"http://*,https://*" split_words:"true"`

	StorageDriver string        `default:"inmem" split_words:"true"`
	PostgresDSN   string        `split_words:"true"`
	CacheLifetime time.Duration `default:"5m" split_words:"true"`

	SessionLifetime time.Duration `default:"30m" split_words:"true"`
	DefaultPageSize int           `default:"42" split_words:"true"`
	MaxPageSize     int           `default:"500" split_words:"true"`
	Truncation      int           `default:"1"`

	AdminToken string `split_words:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("symbolist", config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects configurations that would lead to silently wrong pagination
func (config *Config) Validate() error {
	if config.DefaultPageSize < 1 {
		return fmt.Errorf("the default page size has to be at least 1 (got %d)", config.DefaultPageSize)
	}
	if config.MaxPageSize < config.DefaultPageSize {
		return fmt.Errorf("the maximum page size (%d) must not be smaller than the default one (%d)", config.MaxPageSize, config.DefaultPageSize)
	}
	if config.Truncation < 0 {
		return fmt.Errorf("the truncation must not be negative (got %d)", config.Truncation)
	}
	if config.SessionLifetime <= 0 {
		return errors.New("the session lifetime has to be positive")
	}
	switch config.StorageDriver {
	case StorageDriverInMemory:
	case StorageDriverPostgres:
		if config.PostgresDSN == "" {
			return errors.New("the postgres storage driver requires a DSN")
		}
	default:
		return fmt.Errorf("unknown storage driver '%s'", config.StorageDriver)
	}
	return nil
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return strings.ToLower(config.Environment) == "prod"
}

// String renders the configuration without secrets
func (config Config) String() string {
	if config.AdminToken != "" {
		config.AdminToken = "<redacted>"
	}
	if config.PostgresDSN != "" {
		config.PostgresDSN = "<redacted>"
	}
	type plain Config
	return fmt.Sprintf("%+v", plain(config))
}
