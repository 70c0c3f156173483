package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatHTML OutputFormat = "html"
)

// EvaluateRequest represents a request for quality gate evaluation
type EvaluateRequest struct {
	// Input report files or directories to evaluate
	Paths []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	ShowDetails  bool

	// Configuration
	ConfigPath string

	// Report discovery options
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string
}

// ReportEvaluation represents the gate verdict for a single report
type ReportEvaluation struct {
	// Path of the evaluated report file
	Path string `json:"path" yaml:"path"`

	// Tool that produced the report, if declared
	Tool string `json:"tool,omitempty" yaml:"tool,omitempty"`

	// Counts the gate was evaluated against
	Stats IssueStats `json:"stats" yaml:"stats"`

	// Verdict for this report
	Status Status `json:"status" yaml:"status"`

	// One message per reached threshold, in evaluation order
	Violations []string `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// EvaluateSummary provides aggregate statistics across all reports
type EvaluateSummary struct {
	ReportsEvaluated int `json:"reports_evaluated" yaml:"reports_evaluated"`
	TotalIssues      int `json:"total_issues" yaml:"total_issues"`
	NewIssues        int `json:"new_issues" yaml:"new_issues"`
	TotalViolations  int `json:"total_violations" yaml:"total_violations"`
	FailedReports    int `json:"failed_reports" yaml:"failed_reports"`
	UnstableReports  int `json:"unstable_reports" yaml:"unstable_reports"`
}

// EvaluateResponse represents the complete evaluation result
type EvaluateResponse struct {
	// Overall verdict, the worst of all per-report verdicts
	Status Status `json:"status" yaml:"status"`

	// Per-report evaluations
	Reports []ReportEvaluation `json:"reports" yaml:"reports"`

	// Aggregate statistics
	Summary EvaluateSummary `json:"summary" yaml:"summary"`

	// Warnings encountered while loading reports
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// GateService defines the core business logic for gate evaluation
type GateService interface {
	// Evaluate applies the configured quality gate to a single report
	Evaluate(ctx context.Context, path string, report *Report) (*ReportEvaluation, error)

	// IsEnabled reports whether any threshold is configured
	IsEnabled() bool
}

// ReportLoader defines the interface for reading analysis reports
type ReportLoader interface {
	// Load reads and parses a report file
	Load(path string) (*Report, error)

	// Aggregate derives issue counts from a report
	Aggregate(report *Report) (IssueStats, error)
}

// OutputFormatter defines the interface for formatting evaluation results
type OutputFormatter interface {
	// Write writes the formatted response to the writer
	Write(response *EvaluateResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*EvaluateRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *EvaluateRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *EvaluateRequest, override *EvaluateRequest) *EvaluateRequest
}

// ProgressManager creates progress tasks for long-running operations
type ProgressManager interface {
	// StartTask creates a new progress task with a description and total count
	StartTask(description string, total int) TaskProgress

	// IsInteractive returns true if progress bars should be shown
	IsInteractive() bool

	// Close cleans up all tasks
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	// Increment adds n to the current progress
	Increment(n int)

	// Describe updates the current item description
	Describe(description string)

	// Complete marks the task as finished
	Complete()
}

// ExecutableTask represents a unit of work for parallel execution
type ExecutableTask interface {
	// Name returns the task name for error reporting
	Name() string

	// IsEnabled reports whether the task should run
	IsEnabled() bool

	// Execute runs the task
	Execute(ctx context.Context) (interface{}, error)
}

// TaskExecutor runs a batch of tasks, bounding concurrency
type TaskExecutor interface {
	// Execute runs all enabled tasks and returns an aggregated error
	// if any of them failed
	Execute(ctx context.Context, tasks []ExecutableTask) error
}
