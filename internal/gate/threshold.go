package gate

// Severity indexes the per-priority slots of a threshold set.
// All spans issues of every priority; High, Normal, and Low cover one
// priority band each. Checks run in the order All, High, Normal, Low.
type Severity int

const (
	All Severity = iota
	High
	Normal
	Low

	numSeverities = 4
)

var severityNames = [numSeverities]string{"all", "high", "normal", "low"}

// String returns the lowercase severity name
func (s Severity) String() string {
	if s < All || s > Low {
		return "unknown"
	}
	return severityNames[s]
}

// ThresholdSet holds one limit per severity. A limit of zero disables
// the check for that severity entirely; a positive limit is reached
// once the observed count is greater than or equal to it.
type ThresholdSet struct {
	limits [numSeverities]int
}

// NewThresholdSet creates a threshold set from per-severity limits.
// The total limit applies to the issue count across all priorities.
func NewThresholdSet(total, high, normal, low int) ThresholdSet {
	return ThresholdSet{limits: [numSeverities]int{total, high, normal, low}}
}

// Limit returns the configured limit for the given severity
func (t ThresholdSet) Limit(s Severity) int {
	return t.limits[s]
}

// IsEnabled reports whether any severity has a positive limit
func (t ThresholdSet) IsEnabled() bool {
	for _, limit := range t.limits {
		if limit > 0 {
			return true
		}
	}
	return false
}

// Evaluate checks the observed counts against the limits. The enabled
// check precedes the comparison, so a disabled severity never trips
// even when its count is zero or negative.
func (t ThresholdSet) Evaluate(total, high, normal, low int) ThresholdResult {
	counts := [numSeverities]int{total, high, normal, low}

	var result ThresholdResult
	for s := All; s <= Low; s++ {
		result.reached[s] = t.limits[s] > 0 && counts[s] >= t.limits[s]
	}
	return result
}

// ThresholdResult records which severities of a threshold set were
// reached during an evaluation.
type ThresholdResult struct {
	reached [numSeverities]bool
}

// Reached reports whether the limit for the given severity was reached
func (r ThresholdResult) Reached(s Severity) bool {
	return r.reached[s]
}

// IsSuccess reports whether no limit was reached
func (r ThresholdResult) IsSuccess() bool {
	for _, reached := range r.reached {
		if reached {
			return false
		}
	}
	return true
}
