// Package slotting formulates warehouse slotting as a mixed-integer
// linear program: partition storage locations into a small number of
// storage classes and assign every product to exactly one class, trading
// the fixed cost of opened storage area against a handling cost driven
// by travel distance and pick volume.
//
// The bilinear distance-times-throughput term is linearized through
// McCormick envelopes, so any MILP solver can handle the result. The
// package itself only builds and reads back models; solving happens
// behind the Solver interface (see the grb and bnb subpackages).
package slotting

// SolveInstance runs the whole pipeline for one instance: validate,
// build, solve, extract. Infeasibility and a hit time limit come back as
// a Result without an Assignment, not as an error.
func SolveInstance(inst Instance, s Solver, opts SolveOptions) (*Assignment, *Result, error) {
	params, err := LoadInstance(inst)
	if err != nil {
		return nil, nil, err
	}
	model, err := BuildModel(params)
	if err != nil {
		return nil, nil, err
	}
	res, err := s.Solve(model, opts)
	if err != nil {
		return nil, nil, err
	}
	if res.Status != StatusOptimal && res.Status != StatusFeasible {
		return nil, res, nil
	}
	a, err := Extract(model, res)
	if err != nil {
		return nil, res, err
	}
	return a, res, nil
}
