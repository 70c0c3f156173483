package config

import (
	"fmt"
	"strings"
)

// Strictness represents the gate strictness level
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// StrictnessPreset holds gate thresholds for a strictness level
type StrictnessPreset struct {
	TotalFailedAll   int
	TotalUnstableAll int
	NewFailedAll     int
	NewFailedHigh    int
	NewUnstableAll   int
}

// GetStrictnessPresets returns presets for different strictness levels
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			TotalFailedAll:   500,
			TotalUnstableAll: 200,
			NewFailedAll:     0, // New issues tolerated
			NewFailedHigh:    0,
			NewUnstableAll:   0,
		},
		StrictnessStandard: {
			TotalFailedAll:   100,
			TotalUnstableAll: 50,
			NewFailedAll:     25,
			NewFailedHigh:    0,
			NewUnstableAll:   10,
		},
		StrictnessStrict: {
			TotalFailedAll:   50,
			TotalUnstableAll: 20,
			NewFailedAll:     5,
			NewFailedHigh:    1, // Any new high priority issue fails the build
			NewUnstableAll:   1,
		},
	}
}

// GateConfigForStrictness returns the gate section for a strictness level
func GateConfigForStrictness(strictness Strictness) GateConfig {
	preset, ok := GetStrictnessPresets()[strictness]
	if !ok {
		preset = GetStrictnessPresets()[StrictnessStandard]
	}

	return GateConfig{
		TotalFailed:   ThresholdConfig{All: preset.TotalFailedAll},
		TotalUnstable: ThresholdConfig{All: preset.TotalUnstableAll},
		NewFailed:     ThresholdConfig{All: preset.NewFailedAll, High: preset.NewFailedHigh},
		NewUnstable:   ThresholdConfig{All: preset.NewUnstableAll},
	}
}

// GetFullConfigTemplate returns the documented config template as YAML
func GetFullConfigTemplate(strictness Strictness) string {
	preset, ok := GetStrictnessPresets()[strictness]
	if !ok {
		preset = GetStrictnessPresets()[StrictnessStandard]
	}

	return `# qgate configuration
# Documentation: https://github.com/Allancgx/warnings-ng-plugin

# ==============================================================================
# QUALITY GATE THRESHOLDS
# ==============================================================================
# Every limit compares an issue count against a threshold: the check trips
# once the count is greater than or equal to the limit. A limit of 0
# disables that check entirely.
#
# total_* limits apply to all issues of a run, new_* limits only to issues
# introduced since the reference build. Reached *_failed limits fail the
# build (exit code 2); reached *_unstable limits mark it unstable (exit
# code 1). Failure always wins over unstable.
gate:
  total_failed:
    all: ` + fmt.Sprint(preset.TotalFailedAll) + `
    high: 0
    normal: 0
    low: 0

  total_unstable:
    all: ` + fmt.Sprint(preset.TotalUnstableAll) + `
    high: 0
    normal: 0
    low: 0

  new_failed:
    all: ` + fmt.Sprint(preset.NewFailedAll) + `
    high: ` + fmt.Sprint(preset.NewFailedHigh) + `
    normal: 0
    low: 0

  new_unstable:
    all: ` + fmt.Sprint(preset.NewUnstableAll) + `
    high: 0
    normal: 0
    low: 0

# ==============================================================================
# OUTPUT SETTINGS
# ==============================================================================
output:
  # Output format: text, json, yaml, html
  format: text

  # Show per-report details in text output
  show_details: false

# ==============================================================================
# REPORT DISCOVERY
# ==============================================================================
# Controls which report files are evaluated when a directory is given
reports:
  # File patterns to include
  include_patterns:
    - "*.json"
    - "*.yaml"
    - "*.yml"

  # Patterns to exclude, gitignore style
  exclude_patterns: []

  # Search directories recursively
  recursive: true

# ==============================================================================
# PERFORMANCE
# ==============================================================================
performance:
  # Number of reports evaluated concurrently
  max_goroutines: 4

  # Timeout for a whole batch run in seconds
  timeout_seconds: 300
`
}

// GetMinimalConfigTemplate returns a minimal config template
func GetMinimalConfigTemplate() string {
	return `# qgate configuration (minimal)
# See full options: https://github.com/Allancgx/warnings-ng-plugin

gate:
  total_failed:
    all: 100
  total_unstable:
    all: 50
  new_failed:
    all: 25
  new_unstable:
    all: 10

output:
  format: text
`
}

// ParseStrictness maps a strictness name to its constant, defaulting
// to standard for unknown values
func ParseStrictness(s string) Strictness {
	switch Strictness(strings.ToLower(strings.TrimSpace(s))) {
	case StrictnessRelaxed:
		return StrictnessRelaxed
	case StrictnessStrict:
		return StrictnessStrict
	default:
		return StrictnessStandard
	}
}
