package domain

import (
	"fmt"
	"strings"
)

// Severity represents the priority of a reported issue
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityNormal Severity = "normal"
	SeverityLow    Severity = "low"
)

// ParseSeverity maps a severity string from an analysis report to a
// canonical severity. Common aliases from other tools are accepted;
// unknown values fold to normal so every issue lands in exactly one bucket.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "error", "critical", "blocker":
		return SeverityHigh
	case "low", "info", "minor":
		return SeverityLow
	default:
		return SeverityNormal
	}
}

// Issue represents a single finding from a static analysis tool
type Issue struct {
	// Rule or check identifier (e.g. "S1481", "unused-variable")
	Rule string `json:"rule,omitempty" yaml:"rule,omitempty"`

	// Human-readable description of the finding
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Severity as reported by the tool
	Severity string `json:"severity" yaml:"severity"`

	// File location if applicable
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"`

	// New marks issues introduced since the reference build
	New bool `json:"new,omitempty" yaml:"new,omitempty"`
}

// IssueStats holds the issue counts a quality gate is evaluated against.
// Total counts cover all issues of the run; new counts cover only issues
// introduced since the reference build. The per-severity counts are
// expected to sum to at most the corresponding overall count.
type IssueStats struct {
	Total       int `json:"total" yaml:"total"`
	TotalHigh   int `json:"total_high" yaml:"total_high"`
	TotalNormal int `json:"total_normal" yaml:"total_normal"`
	TotalLow    int `json:"total_low" yaml:"total_low"`

	New       int `json:"new" yaml:"new"`
	NewHigh   int `json:"new_high" yaml:"new_high"`
	NewNormal int `json:"new_normal" yaml:"new_normal"`
	NewLow    int `json:"new_low" yaml:"new_low"`
}

// Add accumulates the counts of other into s
func (s *IssueStats) Add(other IssueStats) {
	s.Total += other.Total
	s.TotalHigh += other.TotalHigh
	s.TotalNormal += other.TotalNormal
	s.TotalLow += other.TotalLow
	s.New += other.New
	s.NewHigh += other.NewHigh
	s.NewNormal += other.NewNormal
	s.NewLow += other.NewLow
}

// Validate checks that no count is negative
func (s IssueStats) Validate() error {
	counts := map[string]int{
		"total":        s.Total,
		"total_high":   s.TotalHigh,
		"total_normal": s.TotalNormal,
		"total_low":    s.TotalLow,
		"new":          s.New,
		"new_high":     s.NewHigh,
		"new_normal":   s.NewNormal,
		"new_low":      s.NewLow,
	}
	for name, count := range counts {
		if count < 0 {
			return fmt.Errorf("%s cannot be negative, got %d", name, count)
		}
	}
	return nil
}

// Report represents an analysis report loaded from a file.
// A report carries either precomputed stats, a list of issues,
// or both. When stats are present they are authoritative.
type Report struct {
	// Tool identifies the analyzer that produced the report
	Tool string `json:"tool,omitempty" yaml:"tool,omitempty"`

	// Stats holds precomputed issue counts
	Stats *IssueStats `json:"stats,omitempty" yaml:"stats,omitempty"`

	// Issues holds the individual findings
	Issues []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// ComputeStats derives the issue counts the gate is evaluated against.
// Precomputed stats win over the issue list; without stats the issues
// are tallied by severity, counting new issues separately.
func (r *Report) ComputeStats() IssueStats {
	if r.Stats != nil {
		return *r.Stats
	}

	var stats IssueStats
	for _, issue := range r.Issues {
		stats.Total++
		severity := ParseSeverity(issue.Severity)
		switch severity {
		case SeverityHigh:
			stats.TotalHigh++
		case SeverityLow:
			stats.TotalLow++
		default:
			stats.TotalNormal++
		}

		if issue.New {
			stats.New++
			switch severity {
			case SeverityHigh:
				stats.NewHigh++
			case SeverityLow:
				stats.NewLow++
			default:
				stats.NewNormal++
			}
		}
	}
	return stats
}
