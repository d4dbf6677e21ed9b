package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"taskflow/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	// Database is the path of the SQLite slot database.
	Database string `mapstructure:"database"`
	// PostgresDSN switches persistence to a Postgres slot table when
	// non-empty.
	PostgresDSN string `mapstructure:"postgres_dsn"`
	// KeyMap holds per-action key binding overrides.
	KeyMap map[string]string `mapstructure:"keymap"`
}

// Load reads the configuration, creating a default config file on the
// first run. An empty configPath means the default location under the
// user's config directory.
func Load(configPath string) (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	configDir := filepath.Join(homeDir, ".config", "taskflow")
	config := Config{
		Database: filepath.Join(configDir, "taskflow.db"),
		KeyMap:   keymaps.GetDefaultKeyMappings(),
	}

	v := viper.New()
	v.SetConfigType("json")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}
	v.SetDefault("database", config.Database)
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("keymap", config.KeyMap)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return config, err
		}
		// Config file not found, write the defaults so the user has
		// something to edit
		if configPath == "" {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return config, err
			}
			if err := v.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
				return config, err
			}
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, nil
}
