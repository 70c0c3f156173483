package domain

// Status represents the outcome of a quality gate evaluation
type Status string

const (
	StatusSuccess  Status = "success"
	StatusUnstable Status = "unstable"
	StatusFailure  Status = "failure"
)

// statusRank orders statuses from best to worst
var statusRank = map[Status]int{
	StatusSuccess:  0,
	StatusUnstable: 1,
	StatusFailure:  2,
}

// WorseOf returns the worse of two statuses.
// Failure dominates unstable, unstable dominates success.
func WorseOf(a, b Status) Status {
	if statusRank[b] > statusRank[a] {
		return b
	}
	return a
}

// IsWorseThan reports whether s is strictly worse than other
func (s Status) IsWorseThan(other Status) bool {
	return statusRank[s] > statusRank[other]
}

// ExitCode maps the status to a process exit code for CI pipelines
func (s Status) ExitCode() int {
	switch s {
	case StatusUnstable:
		return 1
	case StatusFailure:
		return 2
	default:
		return 0
	}
}
