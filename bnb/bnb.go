// Package bnb is a small deterministic branch-and-bound MILP solver
// over a dense bounded-variable simplex. It exists as a reference
// backend: no cgo, no license, reproducible results, suitable for tests
// and for instances of modest size. Production runs should prefer the
// grb backend.
package bnb

import (
	"errors"
	"math"
	"time"

	"git.solver4all.com/azaryc2s/slotting"
)

const (
	defaultIntTol   = 1e-5
	defaultMaxNodes = 200000
	pruneEps        = 1e-9
)

// Solver is safe for reuse across models. The zero value uses the
// default tolerances.
type Solver struct {
	// IntTol is the integrality tolerance: a binary variable within
	// IntTol of 0 or 1 counts as integral.
	IntTol float64
	// MaxNodes caps the search; hitting it is reported like a time limit.
	MaxNodes int
}

type node struct {
	lower []float64
	upper []float64
}

func (s *Solver) Solve(m *slotting.Model, opts slotting.SolveOptions) (*slotting.Result, error) {
	intTol := s.IntTol
	if intTol <= 0 {
		intTol = defaultIntTol
	}
	maxNodes := s.MaxNodes
	if maxNodes <= 0 {
		maxNodes = defaultMaxNodes
	}
	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	rel := newRelaxation(m)

	root := &node{lower: make([]float64, len(m.Vars)), upper: make([]float64, len(m.Vars))}
	for i, v := range m.Vars {
		root.lower[i] = v.Lower
		root.upper[i] = v.Upper
	}

	var (
		bestX    []float64
		bestObj  = math.Inf(1)
		haveBest bool
		bound    = math.Inf(-1)
		stopped  bool
	)

	stack := []*node{root}
	nodes := 0
	for len(stack) > 0 {
		if nodes >= maxNodes || (!deadline.IsZero() && time.Now().After(deadline)) {
			stopped = true
			break
		}
		nodes++

		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		obj, x, err := rel.solve(nd.lower, nd.upper, deadline)
		switch {
		case errors.Is(err, errInfeasible):
			continue
		case errors.Is(err, errStalled):
			stopped = true
		case err != nil:
			return &slotting.Result{Status: slotting.StatusError}, err
		}
		if stopped {
			break
		}
		if nodes == 1 {
			bound = obj
		}
		if haveBest && obj >= bestObj-pruneEps {
			continue
		}

		branch := fractionalBinary(m, x, intTol)
		if branch < 0 {
			if !haveBest || obj < bestObj {
				bestObj = obj
				bestX = x
				haveBest = true
			}
			continue
		}

		lo := child(nd)
		lo.upper[branch] = 0
		hi := child(nd)
		hi.lower[branch] = 1
		// explore the side the relaxation leans toward first
		if x[branch] >= 0.5 {
			stack = append(stack, lo, hi)
		} else {
			stack = append(stack, hi, lo)
		}
	}

	res := &slotting.Result{Bound: bound}
	switch {
	case stopped && haveBest:
		res.Status = slotting.StatusFeasible
	case stopped:
		res.Status = slotting.StatusTimeout
	case haveBest:
		res.Status = slotting.StatusOptimal
		res.Bound = bestObj
	default:
		res.Status = slotting.StatusInfeasible
		return res, nil
	}
	res.Obj = bestObj
	res.Values = bestX
	return res, nil
}

// fractionalBinary returns the index of the most fractional binary
// variable, or -1 if all binaries are integral within tol.
func fractionalBinary(m *slotting.Model, x []float64, tol float64) int {
	best := -1
	bestDist := tol
	for i, v := range m.Vars {
		if v.Type != slotting.Binary {
			continue
		}
		dist := math.Abs(x[i] - math.Round(x[i]))
		if dist > bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

func child(nd *node) *node {
	c := &node{
		lower: append([]float64(nil), nd.lower...),
		upper: append([]float64(nil), nd.upper...),
	}
	return c
}
