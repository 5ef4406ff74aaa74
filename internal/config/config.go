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
	Form     FormConfig
	Engine   EngineConfig
	Database DatabaseConfig
}

// FormConfig locates the form definition and language files.
type FormConfig struct {
	Path     string
	Language string
}

// EngineConfig carries the engine flags passed through at construction.
type EngineConfig struct {
	Progressbar    bool
	Standalone     bool
	Navigation     bool
	Timer          bool
	TimerStartStep string `mapstructure:"timer_start_step"`
	TimerStopStep  string `mapstructure:"timer_stop_step"`
}

// DatabaseConfig holds sqlite settings for the submission store.
type DatabaseConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use
// prefix FLOWFORM_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("form.path", "")
	v.SetDefault("form.language", "")
	v.SetDefault("engine.progressbar", true)
	v.SetDefault("engine.standalone", true)
	v.SetDefault("engine.navigation", true)
	v.SetDefault("engine.timer", false)
	v.SetDefault("engine.timer_start_step", "")
	v.SetDefault("engine.timer_stop_step", "")
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "flowform", "flowform.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FLOWFORM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "flowform"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FLOWFORM")
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

// Save writes the provided config to disk, creating the config
// directory if needed. Used by the first-run scaffolding.
func Save(cfg Config) error {
	path := os.Getenv("FLOWFORM_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "flowform", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("form.path", cfg.Form.Path)
	v.Set("form.language", cfg.Form.Language)
	v.Set("engine.progressbar", cfg.Engine.Progressbar)
	v.Set("engine.standalone", cfg.Engine.Standalone)
	v.Set("engine.navigation", cfg.Engine.Navigation)
	v.Set("engine.timer", cfg.Engine.Timer)
	v.Set("engine.timer_start_step", cfg.Engine.TimerStartStep)
	v.Set("engine.timer_stop_step", cfg.Engine.TimerStopStep)
	v.Set("database.path", cfg.Database.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
