package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads and merges configuration from global and project sources
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Return defaults if no home dir
	}

	cwd, err := os.Getwd()
	if err != nil {
		return cfg, nil // Return defaults if no cwd
	}

	// Load global config first
	globalPath := filepath.Join(home, ".tinytask", "config.yaml")
	if err := loadFile(globalPath, cfg); err != nil && !os.IsNotExist(err) {
		// Malformed config falls back to whatever merged so far
	}

	// Load project config (overrides global)
	projectPath := filepath.Join(cwd, ".tinytask.yaml")
	if err := loadFile(projectPath, cfg); err != nil && !os.IsNotExist(err) {
		// Same fallback
	}

	// Environment override for the data directory
	if dir := os.Getenv("TINYTASK_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	// Guard values the engine depends on
	if cfg.UpcomingHorizonDays <= 0 {
		cfg.UpcomingHorizonDays = DefaultConfig().UpcomingHorizonDays
	}
	if cfg.Export.TagDelimiter == "" {
		cfg.Export.TagDelimiter = DefaultConfig().Export.TagDelimiter
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tinytask", "config.yaml")
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".tinytask.yaml")
}
