package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Allancgx/warnings-ng-plugin/domain"
	"github.com/Allancgx/warnings-ng-plugin/internal/version"
)

// EvaluateUseCase orchestrates the quality gate evaluation workflow
type EvaluateUseCase struct {
	gateService domain.GateService
	loader      domain.ReportLoader
	formatter   domain.OutputFormatter
	executor    domain.TaskExecutor
	fileHelper  *FileHelper
}

// NewEvaluateUseCase creates a new evaluate use case
func NewEvaluateUseCase(
	gateService domain.GateService,
	loader domain.ReportLoader,
	formatter domain.OutputFormatter,
	executor domain.TaskExecutor,
) *EvaluateUseCase {
	return &EvaluateUseCase{
		gateService: gateService,
		loader:      loader,
		formatter:   formatter,
		executor:    executor,
		fileHelper:  NewFileHelper(),
	}
}

// Execute performs the complete evaluation workflow: collect report
// files, evaluate each against the gate, write the formatted result.
// The returned response carries the overall verdict for the exit code.
func (uc *EvaluateUseCase) Execute(ctx context.Context, req domain.EvaluateRequest) (*domain.EvaluateResponse, error) {
	// Validate input
	if err := uc.validateRequest(&req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	// Resolve report file paths
	files, err := ResolveReportPaths(
		uc.fileHelper,
		req.Paths,
		req.Recursive,
		req.IncludePatterns,
		req.ExcludePatterns,
	)
	if err != nil {
		return nil, domain.NewFileNotFoundError("failed to collect report files", err)
	}

	if len(files) == 0 {
		return nil, domain.NewInvalidInputError("no report files found in the specified paths", nil)
	}

	// Evaluate all reports
	response, err := uc.evaluate(ctx, files)
	if err != nil {
		return nil, err
	}

	// Write output
	writer := req.OutputWriter
	if writer == nil {
		writer = os.Stdout
	}
	if err := uc.formatter.Write(response, req.OutputFormat, writer); err != nil {
		return nil, domain.NewOutputError("failed to write evaluation results", err)
	}

	return response, nil
}

// evaluate runs one task per report file and aggregates the verdicts.
// A report that cannot be loaded becomes a warning, not a failure, so
// the remaining reports are still evaluated.
func (uc *EvaluateUseCase) evaluate(ctx context.Context, files []string) (*domain.EvaluateResponse, error) {
	tasks := make([]*reportTask, len(files))
	executables := make([]domain.ExecutableTask, len(files))
	for i, file := range files {
		task := &reportTask{
			path:        file,
			loader:      uc.loader,
			gateService: uc.gateService,
		}
		tasks[i] = task
		executables[i] = task
	}

	if err := uc.executor.Execute(ctx, executables); err != nil {
		return nil, domain.NewEvaluationError("report evaluation aborted", err)
	}

	response := &domain.EvaluateResponse{
		Status:      domain.StatusSuccess,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}

	if !uc.gateService.IsEnabled() {
		response.Warnings = append(response.Warnings, "no quality gate thresholds configured")
	}

	// Tasks are collected in input order so the output is deterministic
	var skipped []string
	var total domain.IssueStats
	for _, task := range tasks {
		if task.warning != "" {
			skipped = append(skipped, task.warning)
			continue
		}

		evaluation := *task.result
		response.Reports = append(response.Reports, evaluation)
		response.Status = domain.WorseOf(response.Status, evaluation.Status)
		response.Summary.TotalViolations += len(evaluation.Violations)
		total.Add(evaluation.Stats)

		switch evaluation.Status {
		case domain.StatusFailure:
			response.Summary.FailedReports++
		case domain.StatusUnstable:
			response.Summary.UnstableReports++
		}
	}

	if len(response.Reports) == 0 {
		return nil, domain.NewEvaluationError("no reports could be evaluated",
			fmt.Errorf("%s", strings.Join(skipped, "; ")))
	}

	response.Warnings = append(response.Warnings, skipped...)
	response.Summary.ReportsEvaluated = len(response.Reports)
	response.Summary.TotalIssues = total.Total
	response.Summary.NewIssues = total.New

	return response, nil
}

// validateRequest validates the evaluate request and applies defaults
func (uc *EvaluateUseCase) validateRequest(req *domain.EvaluateRequest) error {
	if len(req.Paths) == 0 {
		return fmt.Errorf("no report paths specified")
	}

	if req.OutputFormat == "" {
		req.OutputFormat = domain.OutputFormatText
	}

	switch req.OutputFormat {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML, domain.OutputFormatHTML:
	default:
		return fmt.Errorf("unsupported output format: %s", req.OutputFormat)
	}

	return nil
}

// reportTask loads and evaluates a single report file
type reportTask struct {
	path        string
	loader      domain.ReportLoader
	gateService domain.GateService

	result  *domain.ReportEvaluation
	warning string
}

// Name returns the report path for error reporting
func (t *reportTask) Name() string {
	return t.path
}

// IsEnabled always returns true, every resolved report is evaluated
func (t *reportTask) IsEnabled() bool {
	return true
}

// Execute loads the report and applies the gate. Data problems are
// recorded on the task as warnings; only cancellation is returned as
// an error.
func (t *reportTask) Execute(ctx context.Context) (interface{}, error) {
	report, err := t.loader.Load(t.path)
	if err != nil {
		t.warning = fmt.Sprintf("skipped %s: %v", t.path, err)
		return nil, nil
	}

	evaluation, err := t.gateService.Evaluate(ctx, t.path, report)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		t.warning = fmt.Sprintf("skipped %s: %v", t.path, err)
		return nil, nil
	}

	t.result = evaluation
	return evaluation, nil
}

// EvaluateUseCaseBuilder provides a builder pattern for creating EvaluateUseCase
type EvaluateUseCaseBuilder struct {
	gateService domain.GateService
	loader      domain.ReportLoader
	formatter   domain.OutputFormatter
	executor    domain.TaskExecutor
	fileHelper  *FileHelper
}

// NewEvaluateUseCaseBuilder creates a new builder
func NewEvaluateUseCaseBuilder() *EvaluateUseCaseBuilder {
	return &EvaluateUseCaseBuilder{}
}

// WithGateService sets the gate service
func (b *EvaluateUseCaseBuilder) WithGateService(gateService domain.GateService) *EvaluateUseCaseBuilder {
	b.gateService = gateService
	return b
}

// WithReportLoader sets the report loader
func (b *EvaluateUseCaseBuilder) WithReportLoader(loader domain.ReportLoader) *EvaluateUseCaseBuilder {
	b.loader = loader
	return b
}

// WithOutputFormatter sets the output formatter
func (b *EvaluateUseCaseBuilder) WithOutputFormatter(formatter domain.OutputFormatter) *EvaluateUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithExecutor sets the task executor
func (b *EvaluateUseCaseBuilder) WithExecutor(executor domain.TaskExecutor) *EvaluateUseCaseBuilder {
	b.executor = executor
	return b
}

// WithFileHelper sets the file helper
func (b *EvaluateUseCaseBuilder) WithFileHelper(fileHelper *FileHelper) *EvaluateUseCaseBuilder {
	b.fileHelper = fileHelper
	return b
}

// Build creates the EvaluateUseCase with the configured dependencies
func (b *EvaluateUseCaseBuilder) Build() (*EvaluateUseCase, error) {
	if b.gateService == nil {
		return nil, fmt.Errorf("gate service is required")
	}
	if b.loader == nil {
		return nil, fmt.Errorf("report loader is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}
	if b.executor == nil {
		return nil, fmt.Errorf("task executor is required")
	}

	uc := &EvaluateUseCase{
		gateService: b.gateService,
		loader:      b.loader,
		formatter:   b.formatter,
		executor:    b.executor,
		fileHelper:  b.fileHelper,
	}

	if uc.fileHelper == nil {
		uc.fileHelper = NewFileHelper()
	}

	return uc, nil
}
