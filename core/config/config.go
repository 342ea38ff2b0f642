package config

import (
	"reflect"
	"strings"

	"custom-hats/core/catalog"
	"custom-hats/core/database"
	"custom-hats/core/logger"
	"custom-hats/core/retry"
	"custom-hats/core/server"
	"custom-hats/core/storage"
	"custom-hats/feature/hats"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage holding bundles.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the host database connection.
	Database database.Config `mapstructure:"database"`
	// Catalog describes the asset bundle.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Retry holds the integration backoff timing.
	Retry retry.Config `mapstructure:"retry"`
	// Hats holds the merge settings.
	Hats hats.Config `mapstructure:"hats"`
}

// Validate checks the sections that have constraints beyond their types.
func (c *Config) Validate() error {
	if err := c.Retry.Validate(); err != nil {
		return err
	}
	return c.Hats.Validate()
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. RETRY_FAILURE_INTERVAL -> retry.failure_interval)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set the default (even if empty) to register the key for AutomaticEnv.
		// Durations and comma separated lists are decoded from these strings by viper's hooks.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
