package slotting

import "time"

// Status is the outcome of one solve invocation. Infeasibility and a hit
// time limit are valid results, not errors.
type Status int32

const (
	StatusOptimal Status = iota + 1
	// StatusFeasible means the time limit cut the search short but an
	// incumbent exists; the solution is usable, not proven optimal.
	StatusFeasible
	StatusInfeasible
	// StatusTimeout means the time limit was hit before any incumbent
	// was found.
	StatusTimeout
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusTimeout:
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// SolveOptions carries the per-invocation solver settings. TimeLimit is
// a hard upper bound on blocking time; zero means no limit.
type SolveOptions struct {
	TimeLimit time.Duration
}

// Result is the solver's answer. Values holds one entry per model
// variable, in model column order; it is nil unless an incumbent exists.
// Bound is the best proven bound on the objective.
type Result struct {
	Status Status
	Obj    float64
	Bound  float64
	Values []float64
}

// Solver is the only boundary the core depends on: it accepts a frozen
// model and returns a result. Implementations must be safe to call with
// models they did not build and must honor the time limit.
type Solver interface {
	Solve(m *Model, opts SolveOptions) (*Result, error)
}
