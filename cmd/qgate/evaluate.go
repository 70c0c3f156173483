package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Allancgx/warnings-ng-plugin/app"
	"github.com/Allancgx/warnings-ng-plugin/domain"
	"github.com/Allancgx/warnings-ng-plugin/internal/config"
	"github.com/Allancgx/warnings-ng-plugin/service"
	"github.com/spf13/cobra"
)

// exitCodeError is the exit code for operational failures, distinct
// from the gate verdict codes
const exitCodeError = 3

// ExitError carries an exit code through cobra's error handling
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

var (
	evalConfigPath  string
	evalFormat      string
	evalJSON        bool
	evalOutputPath  string
	evalShowDetails bool
	evalQuiet       bool
	evalRecursive   bool
	evalInclude     []string
	evalExclude     []string
)

// thresholdFlags lists the threshold flag names with their help text,
// in registration order
var thresholdFlags = []struct {
	name  string
	usage string
}{
	{"total-failed-all", "Fail when the total number of issues reaches N (0 disables)"},
	{"total-failed-high", "Fail when the number of high priority issues reaches N (0 disables)"},
	{"total-failed-normal", "Fail when the number of normal priority issues reaches N (0 disables)"},
	{"total-failed-low", "Fail when the number of low priority issues reaches N (0 disables)"},
	{"total-unstable-all", "Mark unstable when the total number of issues reaches N (0 disables)"},
	{"total-unstable-high", "Mark unstable when the number of high priority issues reaches N (0 disables)"},
	{"total-unstable-normal", "Mark unstable when the number of normal priority issues reaches N (0 disables)"},
	{"total-unstable-low", "Mark unstable when the number of low priority issues reaches N (0 disables)"},
	{"new-failed-all", "Fail when the number of new issues reaches N (0 disables)"},
	{"new-failed-high", "Fail when the number of new high priority issues reaches N (0 disables)"},
	{"new-failed-normal", "Fail when the number of new normal priority issues reaches N (0 disables)"},
	{"new-failed-low", "Fail when the number of new low priority issues reaches N (0 disables)"},
	{"new-unstable-all", "Mark unstable when the number of new issues reaches N (0 disables)"},
	{"new-unstable-high", "Mark unstable when the number of new high priority issues reaches N (0 disables)"},
	{"new-unstable-normal", "Mark unstable when the number of new normal priority issues reaches N (0 disables)"},
	{"new-unstable-low", "Mark unstable when the number of new low priority issues reaches N (0 disables)"},
}

func evaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate [path...]",
		Short: "Evaluate analysis reports against the quality gate",
		Long: `Evaluate static analysis reports against configured thresholds.

Reports are JSON or YAML files carrying issue counts or issue lists.
Directories are searched for report files using the configured include
and exclude patterns.

Exit codes:
  0 - Quality gate passed
  1 - Quality gate unstable
  2 - Quality gate failed
  3 - Evaluation error (file not found, parse error, etc.)

Examples:
  # Evaluate a single report with config file thresholds
  qgate evaluate checkstyle.json

  # Evaluate every report in a directory
  qgate evaluate reports/

  # Fail at 100 issues, mark unstable at 50
  qgate evaluate --total-failed-all 100 --total-unstable-all 50 reports/

  # Fail on any new high priority issue
  qgate evaluate --new-failed-high 1 reports/

  # JSON output for machine parsing
  qgate evaluate --json reports/`,
		RunE:          runEvaluate,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	for _, flag := range thresholdFlags {
		cmd.Flags().Int(flag.name, 0, flag.usage)
	}

	cmd.Flags().StringVarP(&evalConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVarP(&evalFormat, "format", "f", "text",
		"Output format: text, json, yaml, html")
	cmd.Flags().BoolVar(&evalJSON, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().StringVarP(&evalOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&evalShowDetails, "show-details", false,
		"Show per-report issue counts in text output")
	cmd.Flags().BoolVarP(&evalQuiet, "quiet", "q", false,
		"Suppress progress output")
	cmd.Flags().BoolVar(&evalRecursive, "recursive", true,
		"Search directories recursively")
	cmd.Flags().StringSliceVar(&evalInclude, "include", nil,
		"Report file patterns to include")
	cmd.Flags().StringSliceVar(&evalExclude, "exclude", nil,
		"Patterns to exclude, gitignore style")

	return cmd
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &ExitError{Code: exitCodeError, Message: "no report paths specified"}
	}

	// Load configuration, discovering a config file near the target
	cfg, err := config.LoadConfigWithTarget(evalConfigPath, args[0])
	if err != nil {
		return &ExitError{Code: exitCodeError, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	applyFlagOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: exitCodeError, Message: fmt.Sprintf("invalid configuration: %v", err)}
	}

	format := domain.OutputFormat(cfg.Output.Format)

	// Resolve the output writer
	out := io.Writer(os.Stdout)
	if evalOutputPath != "" {
		file, err := os.Create(evalOutputPath)
		if err != nil {
			return &ExitError{Code: exitCodeError, Message: fmt.Sprintf("failed to create output file: %v", err)}
		}
		defer file.Close()
		out = file
	}

	// Progress bars only make sense for interactive text output
	pm := service.NewProgressManager(!evalQuiet && format == domain.OutputFormatText)
	defer pm.Close()

	uc, err := app.NewEvaluateUseCaseBuilder().
		WithGateService(service.NewGateService(&cfg.Gate)).
		WithReportLoader(service.NewReportLoader()).
		WithOutputFormatter(service.NewOutputFormatterWithDetails(cfg.Output.ShowDetails)).
		WithExecutor(service.NewParallelExecutorWithProgress(&cfg.Performance, pm)).
		Build()
	if err != nil {
		return &ExitError{Code: exitCodeError, Message: err.Error()}
	}

	req := domain.EvaluateRequest{
		Paths:           args,
		OutputFormat:    format,
		OutputWriter:    out,
		ShowDetails:     cfg.Output.ShowDetails,
		ConfigPath:      evalConfigPath,
		Recursive:       cfg.Reports.Recursive,
		IncludePatterns: cfg.Reports.IncludePatterns,
		ExcludePatterns: cfg.Reports.ExcludePatterns,
	}

	response, err := uc.Execute(context.Background(), req)
	if err != nil {
		return &ExitError{Code: exitCodeError, Message: err.Error()}
	}

	// The verdict becomes the exit code; output is already printed
	if code := response.Status.ExitCode(); code != 0 {
		return &ExitError{Code: code, Message: ""}
	}
	return nil
}

// applyFlagOverrides overlays explicitly set CLI flags on the loaded
// configuration. Config file values win for everything left unset.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	targets := map[string]*int{
		"total-failed-all":      &cfg.Gate.TotalFailed.All,
		"total-failed-high":     &cfg.Gate.TotalFailed.High,
		"total-failed-normal":   &cfg.Gate.TotalFailed.Normal,
		"total-failed-low":      &cfg.Gate.TotalFailed.Low,
		"total-unstable-all":    &cfg.Gate.TotalUnstable.All,
		"total-unstable-high":   &cfg.Gate.TotalUnstable.High,
		"total-unstable-normal": &cfg.Gate.TotalUnstable.Normal,
		"total-unstable-low":    &cfg.Gate.TotalUnstable.Low,
		"new-failed-all":        &cfg.Gate.NewFailed.All,
		"new-failed-high":       &cfg.Gate.NewFailed.High,
		"new-failed-normal":     &cfg.Gate.NewFailed.Normal,
		"new-failed-low":        &cfg.Gate.NewFailed.Low,
		"new-unstable-all":      &cfg.Gate.NewUnstable.All,
		"new-unstable-high":     &cfg.Gate.NewUnstable.High,
		"new-unstable-normal":   &cfg.Gate.NewUnstable.Normal,
		"new-unstable-low":      &cfg.Gate.NewUnstable.Low,
	}
	for name, target := range targets {
		if cmd.Flags().Changed(name) {
			value, _ := cmd.Flags().GetInt(name)
			*target = value
		}
	}

	if evalJSON {
		cfg.Output.Format = string(domain.OutputFormatJSON)
	} else if cmd.Flags().Changed("format") {
		cfg.Output.Format = evalFormat
	}
	if cmd.Flags().Changed("show-details") {
		cfg.Output.ShowDetails = evalShowDetails
	}
	if cmd.Flags().Changed("recursive") {
		cfg.Reports.Recursive = evalRecursive
	}
	if cmd.Flags().Changed("include") {
		cfg.Reports.IncludePatterns = evalInclude
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Reports.ExcludePatterns = evalExclude
	}
}
