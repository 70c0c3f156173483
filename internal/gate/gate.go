package gate

// Thresholds is the flat set of limits a Gate is built from. Field
// names follow the category (failed or unstable), the issue scope
// (total or new), and the severity. A zero value disables the
// corresponding check.
type Thresholds struct {
	FailedTotalAll    int
	FailedTotalHigh   int
	FailedTotalNormal int
	FailedTotalLow    int

	UnstableTotalAll    int
	UnstableTotalHigh   int
	UnstableTotalNormal int
	UnstableTotalLow    int

	FailedNewAll    int
	FailedNewHigh   int
	FailedNewNormal int
	FailedNewLow    int

	UnstableNewAll    int
	UnstableNewHigh   int
	UnstableNewNormal int
	UnstableNewLow    int
}

// Gate bundles the four threshold sets of a quality gate. Gates are
// immutable values; two gates compare equal iff all their limits match,
// regardless of how either was constructed.
type Gate struct {
	totalFailed   ThresholdSet
	totalUnstable ThresholdSet
	newFailed     ThresholdSet
	newUnstable   ThresholdSet
}

// New creates a gate from a flat set of named limits
func New(t Thresholds) Gate {
	return Gate{
		totalFailed:   NewThresholdSet(t.FailedTotalAll, t.FailedTotalHigh, t.FailedTotalNormal, t.FailedTotalLow),
		totalUnstable: NewThresholdSet(t.UnstableTotalAll, t.UnstableTotalHigh, t.UnstableTotalNormal, t.UnstableTotalLow),
		newFailed:     NewThresholdSet(t.FailedNewAll, t.FailedNewHigh, t.FailedNewNormal, t.FailedNewLow),
		newUnstable:   NewThresholdSet(t.UnstableNewAll, t.UnstableNewHigh, t.UnstableNewNormal, t.UnstableNewLow),
	}
}

// TotalFailed returns the threshold set that fails the run on overall counts
func (g Gate) TotalFailed() ThresholdSet {
	return g.totalFailed
}

// TotalUnstable returns the threshold set that marks the run unstable on overall counts
func (g Gate) TotalUnstable() ThresholdSet {
	return g.totalUnstable
}

// NewFailed returns the threshold set that fails the run on new issue counts
func (g Gate) NewFailed() ThresholdSet {
	return g.newFailed
}

// NewUnstable returns the threshold set that marks the run unstable on new issue counts
func (g Gate) NewUnstable() ThresholdSet {
	return g.newUnstable
}

// IsEnabled reports whether any of the four threshold sets is enabled.
// A disabled gate evaluates every run as successful.
func (g Gate) IsEnabled() bool {
	return g.totalFailed.IsEnabled() ||
		g.totalUnstable.IsEnabled() ||
		g.newFailed.IsEnabled() ||
		g.newUnstable.IsEnabled()
}

// Builder assembles a gate from per-category threshold sets.
// Categories left unset default to the disabled set.
type Builder struct {
	totalFailed   ThresholdSet
	totalUnstable ThresholdSet
	newFailed     ThresholdSet
	newUnstable   ThresholdSet
}

// NewBuilder creates a builder with all categories disabled
func NewBuilder() *Builder {
	return &Builder{}
}

// WithTotalFailed sets the threshold set that fails the run on overall counts
func (b *Builder) WithTotalFailed(t ThresholdSet) *Builder {
	b.totalFailed = t
	return b
}

// WithTotalUnstable sets the threshold set that marks the run unstable on overall counts
func (b *Builder) WithTotalUnstable(t ThresholdSet) *Builder {
	b.totalUnstable = t
	return b
}

// WithNewFailed sets the threshold set that fails the run on new issue counts
func (b *Builder) WithNewFailed(t ThresholdSet) *Builder {
	b.newFailed = t
	return b
}

// WithNewUnstable sets the threshold set that marks the run unstable on new issue counts
func (b *Builder) WithNewUnstable(t ThresholdSet) *Builder {
	b.newUnstable = t
	return b
}

// Build creates the gate
func (b *Builder) Build() Gate {
	return Gate{
		totalFailed:   b.totalFailed,
		totalUnstable: b.totalUnstable,
		newFailed:     b.newFailed,
		newUnstable:   b.newUnstable,
	}
}
