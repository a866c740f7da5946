package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string        `mapstructure:"env"`             // current application environment (local, dev, production etc)
	TelegramAPIToken string        `mapstructure:"-"`               // Telegram API token loaded from environment
	CatalogPath      string        `mapstructure:"catalog_path"`    // path to the .json or .xlsx catalog
	Timezone         string        `mapstructure:"timezone"`        // default timezone for users who have not set one
	SessionSize      int           `mapstructure:"session_size"`    // maximum cards per study session
	SearchDebounce   time.Duration `mapstructure:"search_debounce"` // quiet period before a typed search runs
	Storage          Storage       `mapstructure:"storage"`         // key/value store section
	DB               DB            `mapstructure:"database"`        // database configuration section
	Reminders        Reminders     `mapstructure:"reminders"`       // daily reminder section
}

// Storage selects the key/value engine.
type Storage struct {
	Engine string `mapstructure:"engine"` // sqlite, postgres, file or memory
	Path   string `mapstructure:"path"`   // file path for the sqlite and file engines
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Reminders configures the hourly reminder job.
type Reminders struct {
	Enabled bool `mapstructure:"enabled"`
	Hour    int  `mapstructure:"hour"` // local hour at which users are reminded
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// RequireToken reports an error when the Telegram token is not set.
func (c *Config) RequireToken() error {
	if c.TelegramAPIToken == "" {
		return fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	return nil
}

// Load reads configuration from config files and environment variables.
// An explicit file path overrides the ./config lookup.
func Load(file string) (*Config, error) {
	// A missing .env file is fine, variables may come from the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("catalog_path", "assets/catalog.json")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("session_size", 15)
	v.SetDefault("search_debounce", "300ms")
	v.SetDefault("storage.engine", "sqlite")
	v.SetDefault("storage.path", "data/vault.db")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("reminders.enabled", true)
	v.SetDefault("reminders.hour", 9)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if strings.EqualFold(cfg.Storage.Engine, "postgres") && cfg.DB.URL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
	}

	return &cfg, nil
}
