package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the Pekarnya server.
type Config struct {
	// Listen is the address the Pekarnya server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel is the log level used when no --log-level flag is given.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// SessionKey is the key used to sign session data.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
// If no config file is found, the defaults are used.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("PEKARNYA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFileFound bool
	if path != "" {
		// Use specific config file
		v.SetConfigFile(path)
	} else {
		// Search for config in common locations
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pekarnya")
		v.AddConfigPath("/etc/pekarnya")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileFound = true
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if configFileFound {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with PEKARNYA_ prefix will override config file values")
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:3003")
	v.SetDefault("log_level", "info")
	v.SetDefault("database.path", "./data/pekarnya.db")
	v.SetDefault("session_max_age", 0) // session cookie, no expiry
}

// validateConfig validates the configuration.
func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing pekarnya config")
	}
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if c.SessionKey == "" {
		log.Warn("No session key configured, sessions will not survive restarts")
	}
	return nil
}
