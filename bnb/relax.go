package bnb

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"git.solver4all.com/azaryc2s/slotting"
)

// relaxation holds the bound-independent part of the LP relaxation:
// dense constraint rows split by sense, with >= rows negated into <=.
type relaxation struct {
	n      int
	c      []float64
	eqRows [][]float64
	eqRHS  []float64
	leRows [][]float64
	leRHS  []float64
}

func newRelaxation(m *slotting.Model) *relaxation {
	n := len(m.Vars)
	r := &relaxation{n: n, c: make([]float64, n)}
	for i, v := range m.Vars {
		r.c[i] = v.Obj
	}
	for _, con := range m.Constrs {
		row := make([]float64, n)
		for i, idx := range con.Ind {
			row[idx] += con.Val[i]
		}
		switch con.Sense {
		case slotting.Equal:
			r.eqRows = append(r.eqRows, row)
			r.eqRHS = append(r.eqRHS, con.RHS)
		case slotting.LessEqual:
			r.leRows = append(r.leRows, row)
			r.leRHS = append(r.leRHS, con.RHS)
		case slotting.GreaterEqual:
			neg := make([]float64, n)
			for j, v := range row {
				neg[j] = -v
			}
			r.leRows = append(r.leRows, neg)
			r.leRHS = append(r.leRHS, -con.RHS)
		}
	}
	return r
}

// solve runs the bounded simplex on the relaxation under the given
// variable bounds. Only the <= rows get a slack column; rows the
// all-at-lower-bound starting point violates get a phase-one artificial.
func (r *relaxation) solve(lower, upper []float64, deadline time.Time) (obj float64, x []float64, err error) {
	for i := range lower {
		if upper[i]-lower[i] < 0 {
			return 0, nil, errInfeasible
		}
	}

	nEq := len(r.eqRows)
	nLe := len(r.leRows)
	m := nEq + nLe
	cols := r.n + nLe + m // structural, slack, artificial columns

	a := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	lo := make([]float64, cols)
	up := make([]float64, cols)
	copy(lo, lower)
	copy(up, upper)
	for j := r.n; j < cols; j++ {
		up[j] = math.Inf(1)
	}
	for i, row := range r.eqRows {
		for j, v := range row {
			a.Set(i, j, v)
		}
		b[i] = r.eqRHS[i]
	}
	for k, row := range r.leRows {
		for j, v := range row {
			a.Set(nEq+k, j, v)
		}
		a.Set(nEq+k, r.n+k, 1)
		b[nEq+k] = r.leRHS[k]
	}

	// start with every structural variable at its lower bound and one
	// basic variable per row: the slack where it can absorb the
	// residual, otherwise an artificial signed to stay nonnegative
	xs := make([]float64, cols)
	for j := 0; j < r.n; j++ {
		xs[j] = lo[j]
	}
	basis := make([]int, m)
	phase1 := make([]float64, cols)
	for i := 0; i < m; i++ {
		res := b[i]
		for j := 0; j < r.n; j++ {
			res -= a.At(i, j) * xs[j]
		}
		art := r.n + nLe + i
		if i >= nEq && res >= 0 {
			slack := r.n + (i - nEq)
			xs[slack] = res
			basis[i] = slack
			up[art] = 0
			continue
		}
		if res < 0 {
			a.Set(i, art, -1)
			xs[art] = -res
		} else {
			a.Set(i, art, 1)
			xs[art] = res
		}
		basis[i] = art
		phase1[art] = 1
	}

	sx := &boundedSimplex{
		m: m, n: cols, a: a, b: b, lo: lo, up: up,
		basis: basis, x: xs, deadline: deadline,
		inBasis: make([]bool, cols),
		atUpper: make([]bool, cols),
	}
	for _, j := range basis {
		sx.inBasis[j] = true
	}

	if err := sx.run(phase1); err != nil {
		return 0, nil, err
	}
	infeas := 0.0
	for i := 0; i < m; i++ {
		infeas += xs[r.n+nLe+i]
	}
	if infeas > feasTol {
		return 0, nil, errInfeasible
	}

	// phase two: original costs, artificials pinned at zero
	for j := r.n + nLe; j < cols; j++ {
		up[j] = 0
	}
	cost := make([]float64, cols)
	copy(cost, r.c)
	if err := sx.run(cost); err != nil {
		return 0, nil, err
	}
	sx.refine()

	x = make([]float64, r.n)
	copy(x, xs[:r.n])
	for j, v := range r.c {
		obj += v * x[j]
	}
	return obj, x, nil
}
