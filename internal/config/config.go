package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Allancgx/warnings-ng-plugin/internal/constants"
	"github.com/spf13/viper"
)

// Default settings for report handling and execution
const (
	// DefaultOutputFormat is used when no format is configured
	DefaultOutputFormat = "text"

	// DefaultMaxGoroutines bounds concurrent report evaluation
	DefaultMaxGoroutines = 4

	// DefaultTimeoutSeconds bounds a whole batch evaluation
	DefaultTimeoutSeconds = 300
)

// Config represents the main configuration structure
type Config struct {
	// Gate holds the quality gate thresholds
	Gate GateConfig `json:"gate" mapstructure:"gate" yaml:"gate"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Reports holds report discovery configuration
	Reports ReportsConfig `json:"reports" mapstructure:"reports" yaml:"reports"`

	// Performance holds batch execution configuration
	Performance PerformanceConfig `json:"performance" mapstructure:"performance" yaml:"performance"`
}

// ThresholdConfig holds the per-severity limits of one threshold set.
// A value of 0 disables the check for that severity.
type ThresholdConfig struct {
	// All is the limit for the issue count across all severities
	All int `json:"all" mapstructure:"all" yaml:"all"`

	// High is the limit for high priority issues
	High int `json:"high" mapstructure:"high" yaml:"high"`

	// Normal is the limit for normal priority issues
	Normal int `json:"normal" mapstructure:"normal" yaml:"normal"`

	// Low is the limit for low priority issues
	Low int `json:"low" mapstructure:"low" yaml:"low"`
}

// IsEnabled reports whether any severity has a positive limit
func (t ThresholdConfig) IsEnabled() bool {
	return t.All > 0 || t.High > 0 || t.Normal > 0 || t.Low > 0
}

// GateConfig holds the four threshold sets of the quality gate.
// Reached failed thresholds fail the build; reached unstable
// thresholds mark it unstable. Total thresholds apply to all issues
// of a run, new thresholds only to issues introduced since the
// reference build.
type GateConfig struct {
	TotalFailed   ThresholdConfig `json:"total_failed" mapstructure:"total_failed" yaml:"total_failed"`
	TotalUnstable ThresholdConfig `json:"total_unstable" mapstructure:"total_unstable" yaml:"total_unstable"`
	NewFailed     ThresholdConfig `json:"new_failed" mapstructure:"new_failed" yaml:"new_failed"`
	NewUnstable   ThresholdConfig `json:"new_unstable" mapstructure:"new_unstable" yaml:"new_unstable"`
}

// IsEnabled reports whether any threshold set has a positive limit
func (g GateConfig) IsEnabled() bool {
	return g.TotalFailed.IsEnabled() ||
		g.TotalUnstable.IsEnabled() ||
		g.NewFailed.IsEnabled() ||
		g.NewUnstable.IsEnabled()
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, html
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowDetails controls whether per-report details are shown
	ShowDetails bool `json:"show_details" mapstructure:"show_details" yaml:"show_details"`
}

// ReportsConfig holds configuration for report file discovery
type ReportsConfig struct {
	// IncludePatterns specifies file patterns to include
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns specifies file patterns to exclude, gitignore style
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// Recursive controls whether directories are searched recursively
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`
}

// PerformanceConfig holds configuration for batch execution
type PerformanceConfig struct {
	// MaxGoroutines bounds concurrent report evaluation
	MaxGoroutines int `json:"max_goroutines" mapstructure:"max_goroutines" yaml:"max_goroutines"`

	// TimeoutSeconds bounds a whole batch evaluation
	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns the default configuration. All gate thresholds
// default to 0, so an unconfigured gate passes every report.
func DefaultConfig() *Config {
	return &Config{
		Gate: GateConfig{},
		Output: OutputConfig{
			Format:      DefaultOutputFormat,
			ShowDetails: false,
		},
		Reports: ReportsConfig{
			IncludePatterns: []string{"*.json", "*.yaml", "*.yml"},
			ExcludePatterns: []string{},
			Recursive:       true,
		},
		Performance: PerformanceConfig{
			MaxGoroutines:  DefaultMaxGoroutines,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// discoverConfigFile finds the appropriate config file path
func discoverConfigFile(targetPath string) string {
	return findDefaultConfig(targetPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// Create a new viper instance to avoid race conditions
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Unmarshal into config struct
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadConfigWithTarget loads configuration with target path context.
// If no config path is given, the usual locations are searched starting
// from the target path.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = discoverConfigFile(targetPath)
	}

	return loadConfigFromFile(configPath)
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common locations.
// targetPath is the path being evaluated (a report file or directory).
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		constants.DefaultConfigFile,
		"qgate.yml",
		".qgate.yaml",
		".qgate.yml",
		"qgate.json",
		".qgate.json",
	}

	// If targetPath is provided, search from there upward
	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			// If it's a file, start from its directory
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			// Search from target directory up to the filesystem root
			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}

				parent := filepath.Dir(dir)
				if parent == dir ||
					dir == volume ||
					(volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	// Fallback to current directory
	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, "qgate"), candidates); config != "" {
			return config
		}
	}

	// Check ~/.config/qgate/ (XDG default) and the home directory
	if home, err := os.UserHomeDir(); err == nil {
		configDir := filepath.Join(home, ".config", "qgate")
		if config := searchConfigInDirectory(configDir, candidates); config != "" {
			return config
		}

		if config := searchConfigInDirectory(home, candidates); config != "" {
			return config
		}
	}

	// Check the config environment variable as fallback
	if envConfig := os.Getenv(constants.ConfigEnvVar); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	// Validate gate thresholds
	thresholdSets := map[string]ThresholdConfig{
		"total_failed":   c.Gate.TotalFailed,
		"total_unstable": c.Gate.TotalUnstable,
		"new_failed":     c.Gate.NewFailed,
		"new_unstable":   c.Gate.NewUnstable,
	}

	for name, set := range thresholdSets {
		limits := map[string]int{
			"all":    set.All,
			"high":   set.High,
			"normal": set.Normal,
			"low":    set.Low,
		}
		for severity, limit := range limits {
			if limit < 0 {
				return fmt.Errorf("gate.%s.%s must be >= 0, got %d", name, severity, limit)
			}
		}
	}

	// Validate output format
	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
		"html": true,
	}

	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml, html", c.Output.Format)
	}

	// Validate include patterns (at least one must be specified)
	if len(c.Reports.IncludePatterns) == 0 {
		return fmt.Errorf("reports.include_patterns cannot be empty")
	}

	// Validate performance settings
	if c.Performance.MaxGoroutines < 0 {
		return fmt.Errorf("performance.max_goroutines must be >= 0, got %d", c.Performance.MaxGoroutines)
	}

	if c.Performance.TimeoutSeconds < 0 {
		return fmt.Errorf("performance.timeout_seconds must be >= 0, got %d", c.Performance.TimeoutSeconds)
	}

	return nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	// Create a new viper instance to avoid race conditions
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set all config values in viper
	v.Set("gate", config.Gate)
	v.Set("output", config.Output)
	v.Set("reports", config.Reports)
	v.Set("performance", config.Performance)

	return v.WriteConfig()
}
