package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Allancgx/warnings-ng-plugin/domain"
	"gopkg.in/yaml.v3"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct {
	showDetails bool
}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// NewOutputFormatterWithDetails creates a formatter that includes
// per-report issue counts in text output
func NewOutputFormatterWithDetails(showDetails bool) *OutputFormatterImpl {
	return &OutputFormatterImpl{showDetails: showDetails}
}

// WriteJSON writes data as JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Write writes the evaluation response in the specified format
func (f *OutputFormatterImpl) Write(response *domain.EvaluateResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return f.writeJSON(response, writer)
	case domain.OutputFormatYAML:
		return f.writeYAML(response, writer)
	case domain.OutputFormatHTML:
		return f.writeHTML(response, writer)
	case domain.OutputFormatText:
		return f.writeText(response, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// writeJSON writes the evaluation response as JSON
func (f *OutputFormatterImpl) writeJSON(response *domain.EvaluateResponse, writer io.Writer) error {
	return WriteJSON(writer, response)
}

// writeYAML writes the evaluation response as YAML
func (f *OutputFormatterImpl) writeYAML(response *domain.EvaluateResponse, writer io.Writer) error {
	data, err := yaml.Marshal(response)
	if err != nil {
		return err
	}
	_, err = writer.Write(data)
	return err
}

// writeText writes the evaluation response as plain text
func (f *OutputFormatterImpl) writeText(response *domain.EvaluateResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Quality Gate Evaluation ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)

	// Summary
	fmt.Fprintf(writer, "Summary:\n")
	fmt.Fprintf(writer, "  Reports evaluated: %d\n", response.Summary.ReportsEvaluated)
	fmt.Fprintf(writer, "  Total issues: %d\n", response.Summary.TotalIssues)
	fmt.Fprintf(writer, "  New issues: %d\n", response.Summary.NewIssues)
	fmt.Fprintf(writer, "  Violations: %d\n", response.Summary.TotalViolations)
	fmt.Fprintf(writer, "\n")

	// Per-report verdicts
	for _, report := range response.Reports {
		fmt.Fprintf(writer, "%s: %s\n", report.Path, statusLabel(report.Status))
		if report.Tool != "" {
			fmt.Fprintf(writer, "  Tool: %s\n", report.Tool)
		}
		if f.showDetails {
			fmt.Fprintf(writer, "  Issues: %d total (%d high, %d normal, %d low), %d new\n",
				report.Stats.Total, report.Stats.TotalHigh, report.Stats.TotalNormal,
				report.Stats.TotalLow, report.Stats.New)
		}
		for _, violation := range report.Violations {
			fmt.Fprintf(writer, "  - %s\n", violation)
		}
	}

	// Warnings
	if len(response.Warnings) > 0 {
		fmt.Fprintf(writer, "\nWarnings:\n")
		for _, w := range response.Warnings {
			fmt.Fprintf(writer, "  - %s\n", w)
		}
	}

	fmt.Fprintf(writer, "\nOverall: %s\n", statusLabel(response.Status))

	return nil
}

// statusLabel renders a verdict in the uppercase form used in violation messages
func statusLabel(status domain.Status) string {
	return strings.ToUpper(string(status))
}
