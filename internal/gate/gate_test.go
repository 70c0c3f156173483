package gate

import "testing"

func TestNew_WiresAllSixteenLimits(t *testing.T) {
	g := New(Thresholds{
		FailedTotalAll:    1,
		FailedTotalHigh:   2,
		FailedTotalNormal: 3,
		FailedTotalLow:    4,

		UnstableTotalAll:    5,
		UnstableTotalHigh:   6,
		UnstableTotalNormal: 7,
		UnstableTotalLow:    8,

		FailedNewAll:    9,
		FailedNewHigh:   10,
		FailedNewNormal: 11,
		FailedNewLow:    12,

		UnstableNewAll:    13,
		UnstableNewHigh:   14,
		UnstableNewNormal: 15,
		UnstableNewLow:    16,
	})

	if g.TotalFailed() != NewThresholdSet(1, 2, 3, 4) {
		t.Error("totalFailed limits not wired from FailedTotal fields")
	}
	if g.TotalUnstable() != NewThresholdSet(5, 6, 7, 8) {
		t.Error("totalUnstable limits not wired from UnstableTotal fields")
	}
	if g.NewFailed() != NewThresholdSet(9, 10, 11, 12) {
		t.Error("newFailed limits not wired from FailedNew fields")
	}
	if g.NewUnstable() != NewThresholdSet(13, 14, 15, 16) {
		t.Error("newUnstable limits not wired from UnstableNew fields")
	}
}

func TestGate_IsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		gate    Gate
		enabled bool
	}{
		{"zero gate", New(Thresholds{}), false},
		{"total failed only", New(Thresholds{FailedTotalAll: 1}), true},
		{"total unstable only", New(Thresholds{UnstableTotalLow: 3}), true},
		{"new failed only", New(Thresholds{FailedNewHigh: 2}), true},
		{"new unstable only", New(Thresholds{UnstableNewNormal: 4}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.gate.IsEnabled(); got != tt.enabled {
				t.Errorf("IsEnabled() = %v, want %v", got, tt.enabled)
			}
		})
	}
}

func TestBuilder_Defaults(t *testing.T) {
	g := NewBuilder().Build()

	if g.IsEnabled() {
		t.Error("Builder without thresholds should produce a disabled gate")
	}
	if g != New(Thresholds{}) {
		t.Error("Builder default should equal the zero gate")
	}
}

func TestBuilder_EquivalentToFlatConstruction(t *testing.T) {
	flat := New(Thresholds{
		FailedTotalAll:    10,
		FailedTotalHigh:   5,
		UnstableTotalAll:  8,
		FailedNewAll:      3,
		UnstableNewAll:    2,
		UnstableNewNormal: 1,
	})

	built := NewBuilder().
		WithTotalFailed(NewThresholdSet(10, 5, 0, 0)).
		WithTotalUnstable(NewThresholdSet(8, 0, 0, 0)).
		WithNewFailed(NewThresholdSet(3, 0, 0, 0)).
		WithNewUnstable(NewThresholdSet(2, 0, 1, 0)).
		Build()

	if flat != built {
		t.Error("Flat and builder construction of the same limits should compare equal")
	}
}

func TestBuilder_RoundTrip(t *testing.T) {
	original := New(Thresholds{
		FailedTotalAll:   7,
		UnstableTotalLow: 2,
		FailedNewHigh:    1,
		UnstableNewAll:   4,
	})

	rebuilt := NewBuilder().
		WithTotalFailed(original.TotalFailed()).
		WithTotalUnstable(original.TotalUnstable()).
		WithNewFailed(original.NewFailed()).
		WithNewUnstable(original.NewUnstable()).
		Build()

	if original != rebuilt {
		t.Error("Rebuilding a gate from its own threshold sets should yield an equal gate")
	}
}

func TestGate_EqualityIsConstructionPathIndependent(t *testing.T) {
	a := New(Thresholds{FailedTotalAll: 5, UnstableNewLow: 3})
	b := NewBuilder().
		WithTotalFailed(NewThresholdSet(5, 0, 0, 0)).
		WithNewUnstable(NewThresholdSet(0, 0, 0, 3)).
		Build()
	c := New(Thresholds{FailedTotalAll: 5, UnstableNewLow: 4})

	if a != b {
		t.Error("Equal limits should compare equal regardless of construction path")
	}
	if a == c {
		t.Error("Differing limits should not compare equal")
	}
}

func TestGate_UsableAsMapKey(t *testing.T) {
	seen := map[Gate]int{}

	seen[New(Thresholds{FailedTotalAll: 5})]++
	seen[NewBuilder().WithTotalFailed(NewThresholdSet(5, 0, 0, 0)).Build()]++
	seen[New(Thresholds{FailedTotalAll: 6})]++

	if len(seen) != 2 {
		t.Fatalf("Expected 2 distinct gates in map, got %d", len(seen))
	}
	if seen[New(Thresholds{FailedTotalAll: 5})] != 2 {
		t.Error("Equal gates from different construction paths should hash to the same key")
	}
}
