package constants

import "strings"

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "qgate"

	// DefaultConfigFile is the default config file name
	DefaultConfigFile = "qgate.yaml"

	// ConfigEnvVar names the environment variable pointing at a config file
	ConfigEnvVar = "QGATE_CONFIG"
)

// Report file extensions accepted by the report loader
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// IsReportExtension reports whether ext is a supported report file
// extension. Matching is case-insensitive.
func IsReportExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ExtJSON, ExtYAML, ExtYML:
		return true
	}
	return false
}
