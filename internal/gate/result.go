package gate

import (
	"fmt"

	"github.com/Allancgx/warnings-ng-plugin/domain"
)

// Status is the verdict of a gate evaluation. Failure strictly
// dominates unstable, unstable dominates success.
type Status int

const (
	StatusSuccess Status = iota
	StatusUnstable
	StatusFailure
)

// String returns the uppercase verdict name as used in violation messages
func (s Status) String() string {
	switch s {
	case StatusUnstable:
		return "UNSTABLE"
	case StatusFailure:
		return "FAILURE"
	default:
		return "SUCCESS"
	}
}

// Descriptions for violation messages, indexed by severity
var (
	totalDescriptions = [numSeverities]string{
		"Total number of issues",
		"Number of high priority issues",
		"Number of normal priority issues",
		"Number of low priority issues",
	}
	newDescriptions = [numSeverities]string{
		"Number of new issues",
		"Number of new high priority issues",
		"Number of new normal priority issues",
		"Number of new low priority issues",
	}
)

// Result captures a single gate evaluation. It snapshots the gate and
// the evaluated counts so violation messages can be derived later.
type Result struct {
	gate  Gate
	stats domain.IssueStats

	totalFailed   ThresholdResult
	totalUnstable ThresholdResult
	newFailed     ThresholdResult
	newUnstable   ThresholdResult
}

// Evaluate checks the issue counts of a run against the gate. The
// failed and unstable categories are evaluated independently; total
// thresholds see the overall counts, new thresholds the new counts.
func (g Gate) Evaluate(stats domain.IssueStats) Result {
	return Result{
		gate:  g,
		stats: stats,
		totalFailed: g.totalFailed.Evaluate(
			stats.Total, stats.TotalHigh, stats.TotalNormal, stats.TotalLow),
		totalUnstable: g.totalUnstable.Evaluate(
			stats.Total, stats.TotalHigh, stats.TotalNormal, stats.TotalLow),
		newFailed: g.newFailed.Evaluate(
			stats.New, stats.NewHigh, stats.NewNormal, stats.NewLow),
		newUnstable: g.newUnstable.Evaluate(
			stats.New, stats.NewHigh, stats.NewNormal, stats.NewLow),
	}
}

// TotalFailed returns the evaluation of the total failed thresholds
func (r Result) TotalFailed() ThresholdResult {
	return r.totalFailed
}

// TotalUnstable returns the evaluation of the total unstable thresholds
func (r Result) TotalUnstable() ThresholdResult {
	return r.totalUnstable
}

// NewFailed returns the evaluation of the new failed thresholds
func (r Result) NewFailed() ThresholdResult {
	return r.newFailed
}

// NewUnstable returns the evaluation of the new unstable thresholds
func (r Result) NewUnstable() ThresholdResult {
	return r.newUnstable
}

// Status derives the overall verdict. Any reached failed threshold
// yields failure regardless of the unstable categories.
func (r Result) Status() Status {
	if !r.totalFailed.IsSuccess() || !r.newFailed.IsSuccess() {
		return StatusFailure
	}
	if !r.totalUnstable.IsSuccess() || !r.newUnstable.IsSuccess() {
		return StatusUnstable
	}
	return StatusSuccess
}

// IsSuccess reports whether no threshold of any category was reached
func (r Result) IsSuccess() bool {
	return r.Status() == StatusSuccess
}

// Violations returns one message per reached threshold. Categories
// appear in the order total failed, total unstable, new failed, new
// unstable; severities within a category in the order all, high,
// normal, low. The messages are diagnostic only, the verdict is
// always derived from Status.
func (r Result) Violations() []string {
	totalCounts := [numSeverities]int{
		r.stats.Total, r.stats.TotalHigh, r.stats.TotalNormal, r.stats.TotalLow,
	}
	newCounts := [numSeverities]int{
		r.stats.New, r.stats.NewHigh, r.stats.NewNormal, r.stats.NewLow,
	}

	var messages []string
	messages = appendViolations(messages, StatusFailure, r.totalFailed, r.gate.totalFailed, totalDescriptions, totalCounts)
	messages = appendViolations(messages, StatusUnstable, r.totalUnstable, r.gate.totalUnstable, totalDescriptions, totalCounts)
	messages = appendViolations(messages, StatusFailure, r.newFailed, r.gate.newFailed, newDescriptions, newCounts)
	messages = appendViolations(messages, StatusUnstable, r.newUnstable, r.gate.newUnstable, newDescriptions, newCounts)
	return messages
}

func appendViolations(messages []string, label Status, result ThresholdResult, set ThresholdSet,
	descriptions [numSeverities]string, counts [numSeverities]int) []string {
	for s := All; s <= Low; s++ {
		if result.Reached(s) {
			messages = append(messages, fmt.Sprintf("%s -> %s: %d - Quality Gate: %d",
				label, descriptions[s], counts[s], set.Limit(s)))
		}
	}
	return messages
}
