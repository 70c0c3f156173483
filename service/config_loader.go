package service

import (
	"fmt"

	"github.com/Allancgx/warnings-ng-plugin/domain"
	"github.com/Allancgx/warnings-ng-plugin/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.EvaluateRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return c.convertToEvaluateRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, honoring any
// discoverable qgate config file
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.EvaluateRequest {
	cfg, err := config.LoadConfigWithTarget("", "")
	if err == nil {
		return c.convertToEvaluateRequest(cfg)
	}

	// Fall back to hardcoded default configuration
	cfg = config.DefaultConfig()
	return c.convertToEvaluateRequest(cfg)
}

// MergeConfig merges CLI flags with configuration file
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.EvaluateRequest, override *domain.EvaluateRequest) *domain.EvaluateRequest {
	// Start with base configuration
	merged := *base

	// Always override paths as they come from command arguments
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	// Output configuration
	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}

	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}

	if override.ShowDetails {
		merged.ShowDetails = override.ShowDetails
	}

	// Report discovery
	if len(override.IncludePatterns) > 0 {
		merged.IncludePatterns = override.IncludePatterns
	}

	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}

	// Config path is always from override if provided
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}

// convertToEvaluateRequest converts a Config to EvaluateRequest
func (c *ConfigurationLoaderImpl) convertToEvaluateRequest(cfg *config.Config) *domain.EvaluateRequest {
	return &domain.EvaluateRequest{
		// Paths are set by the caller, not from config
		Paths: []string{},

		// Output settings
		OutputFormat: domain.OutputFormat(cfg.Output.Format),
		ShowDetails:  cfg.Output.ShowDetails,

		// Report discovery settings
		Recursive:       cfg.Reports.Recursive,
		IncludePatterns: cfg.Reports.IncludePatterns,
		ExcludePatterns: cfg.Reports.ExcludePatterns,
	}
}

// ValidateConfig validates the evaluation request
func (c *ConfigurationLoaderImpl) ValidateConfig(req *domain.EvaluateRequest) error {
	validFormats := map[domain.OutputFormat]bool{
		domain.OutputFormatText: true,
		domain.OutputFormatJSON: true,
		domain.OutputFormatYAML: true,
		domain.OutputFormatHTML: true,
	}

	if !validFormats[req.OutputFormat] {
		return fmt.Errorf("invalid output format: %s (must be one of: text, json, yaml, html)",
			req.OutputFormat)
	}

	return nil
}
