package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Docs     DocsConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// DocsConfig holds the document library settings.
type DocsConfig struct {
	Dir string
}

// LogConfig holds file logging settings. The TUI owns stdout, so logs
// always go to a file.
type LogConfig struct {
	Path  string
	Debug bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string
	InitialTab int
}

// Load reads configuration from file and env. Env var overrides use prefix ARCANUM_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "arcanum")

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir, "arcanum.db"))
	v.SetDefault("docs.dir", filepath.Join(os.Getenv("HOME"), "Documents", "arcanum"))
	v.SetDefault("log.path", filepath.Join(dataDir, "arcanum.log"))
	v.SetDefault("log.debug", false)
	v.SetDefault("ui.date_format", "02/01/2006")
	v.SetDefault("ui.initial_tab", 0)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ARCANUM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "arcanum"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ARCANUM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("ARCANUM_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "arcanum", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("docs.dir", cfg.Docs.Dir)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.debug", cfg.Log.Debug)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.initial_tab", cfg.UI.InitialTab)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
