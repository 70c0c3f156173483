package service

import (
	"context"
	"fmt"

	"github.com/Allancgx/warnings-ng-plugin/domain"
	"github.com/Allancgx/warnings-ng-plugin/internal/config"
	"github.com/Allancgx/warnings-ng-plugin/internal/gate"
)

// GateServiceImpl implements the GateService interface
type GateServiceImpl struct {
	gate gate.Gate
}

// NewGateService creates a gate service from threshold configuration
func NewGateService(cfg *config.GateConfig) *GateServiceImpl {
	return &GateServiceImpl{
		gate: BuildGate(cfg),
	}
}

// NewGateServiceFromGate creates a gate service around an existing gate
func NewGateServiceFromGate(g gate.Gate) *GateServiceImpl {
	return &GateServiceImpl{gate: g}
}

// BuildGate converts threshold configuration into an evaluatable gate
func BuildGate(cfg *config.GateConfig) gate.Gate {
	return gate.New(gate.Thresholds{
		FailedTotalAll:    cfg.TotalFailed.All,
		FailedTotalHigh:   cfg.TotalFailed.High,
		FailedTotalNormal: cfg.TotalFailed.Normal,
		FailedTotalLow:    cfg.TotalFailed.Low,

		UnstableTotalAll:    cfg.TotalUnstable.All,
		UnstableTotalHigh:   cfg.TotalUnstable.High,
		UnstableTotalNormal: cfg.TotalUnstable.Normal,
		UnstableTotalLow:    cfg.TotalUnstable.Low,

		FailedNewAll:    cfg.NewFailed.All,
		FailedNewHigh:   cfg.NewFailed.High,
		FailedNewNormal: cfg.NewFailed.Normal,
		FailedNewLow:    cfg.NewFailed.Low,

		UnstableNewAll:    cfg.NewUnstable.All,
		UnstableNewHigh:   cfg.NewUnstable.High,
		UnstableNewNormal: cfg.NewUnstable.Normal,
		UnstableNewLow:    cfg.NewUnstable.Low,
	})
}

// Evaluate applies the quality gate to a single report
func (s *GateServiceImpl) Evaluate(ctx context.Context, path string, report *domain.Report) (*domain.ReportEvaluation, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("gate evaluation cancelled: %w", ctx.Err())
	default:
	}

	if report == nil {
		return nil, domain.NewInvalidInputError("report must not be nil", nil)
	}

	stats := report.ComputeStats()
	if err := stats.Validate(); err != nil {
		return nil, domain.NewEvaluationError(fmt.Sprintf("invalid issue counts in %s", path), err)
	}

	result := s.gate.Evaluate(stats)

	return &domain.ReportEvaluation{
		Path:       path,
		Tool:       report.Tool,
		Stats:      stats,
		Status:     toDomainStatus(result.Status()),
		Violations: result.Violations(),
	}, nil
}

// IsEnabled reports whether any threshold is configured
func (s *GateServiceImpl) IsEnabled() bool {
	return s.gate.IsEnabled()
}

// toDomainStatus translates the evaluation verdict into the domain status
func toDomainStatus(status gate.Status) domain.Status {
	switch status {
	case gate.StatusFailure:
		return domain.StatusFailure
	case gate.StatusUnstable:
		return domain.StatusUnstable
	default:
		return domain.StatusSuccess
	}
}
