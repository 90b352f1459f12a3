package config

// Config represents the full tinytask configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Data directory holding tasks.json and archive.json
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// Priority assigned to new tasks created without one
	DefaultPriority string `yaml:"default_priority" mapstructure:"default_priority"`

	// Day horizon for the "upcoming" due window
	UpcomingHorizonDays int `yaml:"upcoming_horizon_days" mapstructure:"upcoming_horizon_days"`

	// Export configuration
	Export ExportConfig `yaml:"export" mapstructure:"export"`
}

// ExportConfig configures tabular export output
type ExportConfig struct {
	// Delimiter used to join tags in flat rows
	TagDelimiter string `yaml:"tag_delimiter" mapstructure:"tag_delimiter"`
}
