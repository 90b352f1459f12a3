package config

import (
	"os"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:             "1",
		DefaultPriority:     "medium",
		UpcomingHorizonDays: 7,
		Export: ExportConfig{
			TagDelimiter: ",",
		},
	}
}

// WriteDefault writes the default global configuration to a file
func WriteDefault(path string) error {
	content := `# tinytask Global Configuration
version: "1"

# Data directory holding tasks.json and archive.json
# Defaults to ~/.tinytask when empty; TINYTASK_DATA_DIR overrides both.
data_dir: ""

# Priority assigned to new tasks created without one
default_priority: medium

# Day horizon for the "upcoming" due window
upcoming_horizon_days: 7

# Tabular export
export:
  # Delimiter used to join tags in flat rows
  tag_delimiter: ","
`
	return os.WriteFile(path, []byte(content), 0644)
}
