package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		// Driver selects the snapshot backend: file, sqlite, postgres or memory
		Driver     string `yaml:"driver" env:"STORAGE_DRIVER"`
		FilePath   string `yaml:"file_path" env:"STORAGE_FILE_PATH"`
		SQLitePath string `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH"`

		Database struct {
			Host         string `yaml:"host" env:"DB_HOST"`
			Port         string `yaml:"port" env:"DB_PORT"`
			User         string `yaml:"user" env:"DB_USER"`
			Password     string `yaml:"password" env:"DB_PASSWORD"`
			DBName       string `yaml:"dbname" env:"DB_NAME"`
			SSLMode      string `yaml:"sslmode" env:"DB_SSLMODE"`
			MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		} `yaml:"database"`
	} `yaml:"storage"`

	UI struct {
		// ToastDuration controls how long a toast stays visible before auto-dismiss
		ToastDuration string `yaml:"toast_duration" env:"UI_TOAST_DURATION"`
	} `yaml:"ui"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Storage defaults
	config.Storage.Driver = "file"
	config.Storage.FilePath = "data/registrar.json"
	config.Storage.SQLitePath = "data/registrar.db"
	config.Storage.Database.Host = "localhost"
	config.Storage.Database.Port = "5432"
	config.Storage.Database.User = "postgres"
	config.Storage.Database.Password = "postgres"
	config.Storage.Database.DBName = "registrar"
	config.Storage.Database.SSLMode = "disable"
	config.Storage.Database.MaxOpenConns = 10

	// UI defaults
	config.UI.ToastDuration = "3s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	err := processStructFields(config)
	if err != nil {
		return err
	}

	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Storage.Driver {
	case "file":
		if config.Storage.FilePath == "" {
			return fmt.Errorf("storage file path is required for the file driver")
		}
	case "sqlite":
		if config.Storage.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required for the sqlite driver")
		}
	case "postgres":
		if config.Storage.Database.Host == "" {
			return fmt.Errorf("database host is required for the postgres driver")
		}
	case "memory":
		// No backing configuration needed
	default:
		return fmt.Errorf("unknown storage driver: %s", config.Storage.Driver)
	}

	if _, err := time.ParseDuration(config.UI.ToastDuration); err != nil {
		return fmt.Errorf("invalid toast duration format: %w", err)
	}

	return nil
}

// ToastDuration returns the parsed toast auto-dismiss duration.
func (c *Config) ToastDuration() time.Duration {
	d, err := time.ParseDuration(c.UI.ToastDuration)
	if err != nil {
		return 3 * time.Second
	}
	return d
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Storage.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Storage.Database.User,
		c.Storage.Database.Password,
		c.Storage.Database.Host,
		c.Storage.Database.Port,
		c.Storage.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	// Convert string to lowercase for checking
	valueLower := strings.ToLower(valueStr)
	if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
		return true
	}
	if valueLower == "false" || valueLower == "0" || valueLower == "no" {
		return false
	}

	return defaultValue
}
