package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Allancgx/warnings-ng-plugin/domain"
	"github.com/Allancgx/warnings-ng-plugin/internal/constants"
	"gopkg.in/yaml.v3"
)

// ReportLoaderImpl implements the ReportLoader interface
type ReportLoaderImpl struct{}

// NewReportLoader creates a new report loader
func NewReportLoader() *ReportLoaderImpl {
	return &ReportLoaderImpl{}
}

// Load reads and parses a report file. The format is chosen by file
// extension: .json for JSON, .yaml or .yml for YAML. Reports with
// negative precomputed counts are rejected here so the gate never
// sees them.
func (l *ReportLoaderImpl) Load(path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, domain.NewParseError(fmt.Sprintf("failed to read report %s", path), err)
	}

	var report domain.Report
	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtJSON:
		if err := json.Unmarshal(data, &report); err != nil {
			return nil, domain.NewParseError(fmt.Sprintf("failed to parse JSON report %s", path), err)
		}
	case constants.ExtYAML, constants.ExtYML:
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, domain.NewParseError(fmt.Sprintf("failed to parse YAML report %s", path), err)
		}
	default:
		return nil, domain.NewDomainError(domain.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported report format for %s (expected .json, .yaml or .yml)", path), nil)
	}

	if report.Stats != nil {
		if err := report.Stats.Validate(); err != nil {
			return nil, domain.NewParseError(fmt.Sprintf("invalid issue counts in %s", path), err)
		}
	}

	return &report, nil
}

// Aggregate derives the issue counts a gate is evaluated against
func (l *ReportLoaderImpl) Aggregate(report *domain.Report) (domain.IssueStats, error) {
	if report == nil {
		return domain.IssueStats{}, domain.NewInvalidInputError("report must not be nil", nil)
	}

	stats := report.ComputeStats()
	if err := stats.Validate(); err != nil {
		return domain.IssueStats{}, err
	}
	return stats, nil
}
