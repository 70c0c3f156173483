package gate

import (
	"strings"
	"testing"

	"github.com/Allancgx/warnings-ng-plugin/domain"
)

func TestResult_Status_DisabledGateAlwaysSucceeds(t *testing.T) {
	g := New(Thresholds{})

	result := g.Evaluate(domain.IssueStats{
		Total: 1000, TotalHigh: 500, TotalNormal: 300, TotalLow: 200,
		New: 900, NewHigh: 400, NewNormal: 300, NewLow: 200,
	})

	if result.Status() != StatusSuccess {
		t.Errorf("Disabled gate should evaluate to success, got %s", result.Status())
	}
	if len(result.Violations()) != 0 {
		t.Errorf("Disabled gate should emit no violations, got %d", len(result.Violations()))
	}
}

func TestResult_Status_Verdicts(t *testing.T) {
	tests := []struct {
		name     string
		gate     Gate
		stats    domain.IssueStats
		expected Status
	}{
		{
			"all pass",
			New(Thresholds{FailedTotalAll: 10, UnstableTotalAll: 5}),
			domain.IssueStats{Total: 4},
			StatusSuccess,
		},
		{
			"total unstable reached",
			New(Thresholds{FailedTotalAll: 10, UnstableTotalAll: 5}),
			domain.IssueStats{Total: 5},
			StatusUnstable,
		},
		{
			"total failed reached",
			New(Thresholds{FailedTotalAll: 10, UnstableTotalAll: 5}),
			domain.IssueStats{Total: 10},
			StatusFailure,
		},
		{
			"new unstable reached",
			New(Thresholds{UnstableNewHigh: 2}),
			domain.IssueStats{New: 5, NewHigh: 2},
			StatusUnstable,
		},
		{
			"new failed reached",
			New(Thresholds{FailedNewAll: 3}),
			domain.IssueStats{New: 3},
			StatusFailure,
		},
		{
			"failure dominates unstable",
			New(Thresholds{FailedTotalAll: 10, UnstableTotalAll: 5, UnstableNewAll: 1}),
			domain.IssueStats{Total: 20, New: 4},
			StatusFailure,
		},
		{
			"unstable only when failed categories pass",
			New(Thresholds{FailedTotalAll: 100, UnstableTotalLow: 3, UnstableNewAll: 2}),
			domain.IssueStats{Total: 50, TotalLow: 3, New: 2},
			StatusUnstable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.gate.Evaluate(tt.stats)
			if got := result.Status(); got != tt.expected {
				t.Errorf("Status() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestResult_Evaluate_TotalAndNewCountsRoutedSeparately(t *testing.T) {
	// Total thresholds must see the total counts, new thresholds
	// the new counts, never the other way round.
	g := New(Thresholds{FailedTotalAll: 10, FailedNewAll: 10})

	onlyTotals := g.Evaluate(domain.IssueStats{Total: 15, New: 0})
	if !onlyTotals.TotalFailed().Reached(All) {
		t.Error("Total count 15 should reach total limit 10")
	}
	if onlyTotals.NewFailed().Reached(All) {
		t.Error("New count 0 should not reach new limit 10")
	}

	onlyNew := g.Evaluate(domain.IssueStats{Total: 0, New: 15})
	if onlyNew.TotalFailed().Reached(All) {
		t.Error("Total count 0 should not reach total limit 10")
	}
	if !onlyNew.NewFailed().Reached(All) {
		t.Error("New count 15 should reach new limit 10")
	}
}

func TestResult_Evaluate_FailedAndUnstableIndependent(t *testing.T) {
	g := New(Thresholds{FailedTotalAll: 20, UnstableTotalAll: 10})

	result := g.Evaluate(domain.IssueStats{Total: 15})

	if result.TotalFailed().Reached(All) {
		t.Error("Count 15 should not reach failed limit 20")
	}
	if !result.TotalUnstable().Reached(All) {
		t.Error("Count 15 should reach unstable limit 10")
	}
	if result.Status() != StatusUnstable {
		t.Errorf("Expected unstable, got %s", result.Status())
	}
}

func TestResult_Violations_SingleTotalFailure(t *testing.T) {
	g := New(Thresholds{FailedTotalAll: 10})

	result := g.Evaluate(domain.IssueStats{Total: 15})

	violations := result.Violations()
	if len(violations) != 1 {
		t.Fatalf("Expected exactly 1 violation, got %d: %v", len(violations), violations)
	}

	msg := violations[0]
	if msg != "FAILURE -> Total number of issues: 15 - Quality Gate: 10" {
		t.Errorf("Unexpected message: %s", msg)
	}
}

func TestResult_Violations_MessageTexts(t *testing.T) {
	g := New(Thresholds{
		FailedTotalAll:    1,
		FailedTotalHigh:   1,
		FailedTotalNormal: 1,
		FailedTotalLow:    1,

		UnstableNewAll:    1,
		UnstableNewHigh:   1,
		UnstableNewNormal: 1,
		UnstableNewLow:    1,
	})

	result := g.Evaluate(domain.IssueStats{
		Total: 9, TotalHigh: 4, TotalNormal: 3, TotalLow: 2,
		New: 6, NewHigh: 3, NewNormal: 2, NewLow: 1,
	})

	expected := []string{
		"FAILURE -> Total number of issues: 9 - Quality Gate: 1",
		"FAILURE -> Number of high priority issues: 4 - Quality Gate: 1",
		"FAILURE -> Number of normal priority issues: 3 - Quality Gate: 1",
		"FAILURE -> Number of low priority issues: 2 - Quality Gate: 1",
		"UNSTABLE -> Number of new issues: 6 - Quality Gate: 1",
		"UNSTABLE -> Number of new high priority issues: 3 - Quality Gate: 1",
		"UNSTABLE -> Number of new normal priority issues: 2 - Quality Gate: 1",
		"UNSTABLE -> Number of new low priority issues: 1 - Quality Gate: 1",
	}

	violations := result.Violations()
	if len(violations) != len(expected) {
		t.Fatalf("Expected %d violations, got %d: %v", len(expected), len(violations), violations)
	}
	for i, want := range expected {
		if violations[i] != want {
			t.Errorf("violations[%d] = %q, want %q", i, violations[i], want)
		}
	}
}

func TestResult_Violations_CategoryOrder(t *testing.T) {
	// One reached threshold per category; messages must appear in
	// the order total failed, total unstable, new failed, new unstable.
	g := New(Thresholds{
		FailedTotalAll:   1,
		UnstableTotalAll: 1,
		FailedNewAll:     1,
		UnstableNewAll:   1,
	})

	result := g.Evaluate(domain.IssueStats{Total: 5, New: 3})

	violations := result.Violations()
	if len(violations) != 4 {
		t.Fatalf("Expected 4 violations, got %d", len(violations))
	}

	prefixes := []string{
		"FAILURE -> Total number of issues",
		"UNSTABLE -> Total number of issues",
		"FAILURE -> Number of new issues",
		"UNSTABLE -> Number of new issues",
	}
	for i, prefix := range prefixes {
		if !strings.HasPrefix(violations[i], prefix) {
			t.Errorf("violations[%d] = %q, want prefix %q", i, violations[i], prefix)
		}
	}
}

func TestResult_Violations_SeverityOrderWithinCategory(t *testing.T) {
	g := New(Thresholds{
		FailedTotalAll:    1,
		FailedTotalHigh:   1,
		FailedTotalNormal: 1,
		FailedTotalLow:    1,
	})

	result := g.Evaluate(domain.IssueStats{Total: 10, TotalHigh: 5, TotalNormal: 3, TotalLow: 2})

	violations := result.Violations()
	if len(violations) != 4 {
		t.Fatalf("Expected 4 violations, got %d", len(violations))
	}

	order := []string{
		"Total number of issues",
		"high priority issues",
		"normal priority issues",
		"low priority issues",
	}
	for i, fragment := range order {
		if !strings.Contains(violations[i], fragment) {
			t.Errorf("violations[%d] = %q, want to contain %q", i, violations[i], fragment)
		}
	}
}

func TestResult_Violations_OnlyReachedSeveritiesEmit(t *testing.T) {
	g := New(Thresholds{
		FailedTotalAll:  100,
		FailedTotalHigh: 2,
		FailedTotalLow:  50,
	})

	result := g.Evaluate(domain.IssueStats{Total: 10, TotalHigh: 3, TotalLow: 1})

	violations := result.Violations()
	if len(violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d: %v", len(violations), violations)
	}
	if !strings.Contains(violations[0], "high priority") {
		t.Errorf("Expected the high priority message, got %q", violations[0])
	}
}

func TestResult_Violations_TotalBeforeNew(t *testing.T) {
	g := New(Thresholds{UnstableTotalAll: 1, FailedNewAll: 1})

	result := g.Evaluate(domain.IssueStats{Total: 3, New: 2})

	violations := result.Violations()
	if len(violations) != 2 {
		t.Fatalf("Expected 2 violations, got %d", len(violations))
	}
	// Total categories come first even when their verdict is weaker.
	if !strings.HasPrefix(violations[0], "UNSTABLE -> Total number of issues") {
		t.Errorf("First message should be the total unstable one, got %q", violations[0])
	}
	if !strings.HasPrefix(violations[1], "FAILURE -> Number of new issues") {
		t.Errorf("Second message should be the new failed one, got %q", violations[1])
	}
}

func TestResult_IsSuccess(t *testing.T) {
	g := New(Thresholds{FailedTotalAll: 5})

	if !g.Evaluate(domain.IssueStats{Total: 4}).IsSuccess() {
		t.Error("Count below limit should be successful")
	}
	if g.Evaluate(domain.IssueStats{Total: 5}).IsSuccess() {
		t.Error("Count at limit should not be successful")
	}
}

func TestStatus_String(t *testing.T) {
	names := map[Status]string{
		StatusSuccess:  "SUCCESS",
		StatusUnstable: "UNSTABLE",
		StatusFailure:  "FAILURE",
	}

	for status, expected := range names {
		if got := status.String(); got != expected {
			t.Errorf("String() = %s, want %s", got, expected)
		}
	}
}
