package bnb

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

var (
	errInfeasible = errors.New("relaxation infeasible")
	errStalled    = errors.New("relaxation stopped")
	errUnbounded  = errors.New("relaxation unbounded")
)

const (
	costTol       = 1e-9
	pivotTol      = 1e-9
	feasTol       = 1e-7
	ratioTieTol   = 1e-12
	defaultLPIter = 20000
)

// boundedSimplex is a dense two-phase primal simplex for
//
//	min c*x  s.t.  a*x = b,  lo <= x <= up
//
// Variable bounds are handled natively instead of being turned into
// rows, so the tiny epsilon lower bounds never show up in the basis
// matrices next to the large envelope coefficients. Entering and
// leaving variables follow Bland's rule, so degenerate vertices cannot
// cycle the iteration; the iteration cap and the deadline bound each
// call regardless.
type boundedSimplex struct {
	m, n int
	a    *mat.Dense
	b    []float64
	lo   []float64
	up   []float64

	basis   []int
	inBasis []bool
	atUpper []bool
	x       []float64

	deadline time.Time
}

func (s *boundedSimplex) run(c []float64) error {
	var (
		lu  mat.LU
		bm  = mat.NewDense(s.m, s.m, nil)
		cb  = mat.NewVecDense(s.m, nil)
		y   = mat.NewVecDense(s.m, nil)
		col = mat.NewVecDense(s.m, nil)
		w   = mat.NewVecDense(s.m, nil)
	)
	for iter := 0; iter < defaultLPIter; iter++ {
		if iter%32 == 0 && !s.deadline.IsZero() && time.Now().After(s.deadline) {
			return errStalled
		}

		for i, j := range s.basis {
			for r := 0; r < s.m; r++ {
				bm.Set(r, i, s.a.At(r, j))
			}
			cb.SetVec(i, c[j])
		}
		lu.Factorize(bm)
		if err := luSolve(&lu, y, true, cb); err != nil {
			return err
		}

		// entering variable: first nonbasic column whose reduced cost
		// improves the objective off its current bound
		enter := -1
		dir := 1.0
		for j := 0; j < s.n; j++ {
			if s.inBasis[j] || s.up[j]-s.lo[j] <= 0 {
				continue
			}
			d := c[j]
			for i := 0; i < s.m; i++ {
				d -= y.AtVec(i) * s.a.At(i, j)
			}
			if !s.atUpper[j] && d < -costTol {
				enter, dir = j, 1
				break
			}
			if s.atUpper[j] && d > costTol {
				enter, dir = j, -1
				break
			}
		}
		if enter < 0 {
			return nil
		}

		for i := 0; i < s.m; i++ {
			col.SetVec(i, s.a.At(i, enter))
		}
		if err := luSolve(&lu, w, false, col); err != nil {
			return err
		}

		// ratio test: the step is limited by the entering variable's
		// opposite bound and by every basic variable hitting one of
		// its own; ties go to the smallest variable index
		step := s.up[enter] - s.lo[enter]
		leave := -1
		leaveUpper := false
		for i := 0; i < s.m; i++ {
			delta := -dir * w.AtVec(i)
			k := s.basis[i]
			var t float64
			var hitsUpper bool
			switch {
			case delta > pivotTol:
				if math.IsInf(s.up[k], 1) {
					continue
				}
				t = (s.up[k] - s.x[k]) / delta
				hitsUpper = true
			case delta < -pivotTol:
				t = (s.lo[k] - s.x[k]) / delta
			default:
				continue
			}
			if t < 0 {
				t = 0
			}
			if t < step-ratioTieTol {
				step, leave, leaveUpper = t, i, hitsUpper
			} else if t < step+ratioTieTol && leave >= 0 && k < s.basis[leave] {
				leave, leaveUpper = i, hitsUpper
			}
		}
		if leave < 0 && math.IsInf(step, 1) {
			return errUnbounded
		}

		s.x[enter] += dir * step
		for i := 0; i < s.m; i++ {
			s.x[s.basis[i]] -= dir * step * w.AtVec(i)
		}
		if leave < 0 {
			// bound flip: the entering variable runs to its other
			// bound and stays nonbasic
			s.atUpper[enter] = !s.atUpper[enter]
			s.x[enter] = s.lo[enter]
			if s.atUpper[enter] {
				s.x[enter] = s.up[enter]
			}
			continue
		}
		k := s.basis[leave]
		s.inBasis[k] = false
		s.atUpper[k] = leaveUpper
		s.x[k] = s.lo[k]
		if leaveUpper {
			s.x[k] = s.up[k]
		}
		s.basis[leave] = enter
		s.inBasis[enter] = true
	}
	return errStalled
}

// refine recomputes the basic values from a fresh factorization to shed
// the drift the incremental updates accumulate.
func (s *boundedSimplex) refine() {
	var lu mat.LU
	bm := mat.NewDense(s.m, s.m, nil)
	rhs := mat.NewVecDense(s.m, nil)
	xb := mat.NewVecDense(s.m, nil)
	for i, j := range s.basis {
		for r := 0; r < s.m; r++ {
			bm.Set(r, i, s.a.At(r, j))
		}
	}
	for i := 0; i < s.m; i++ {
		v := s.b[i]
		for j := 0; j < s.n; j++ {
			if !s.inBasis[j] {
				v -= s.a.At(i, j) * s.x[j]
			}
		}
		rhs.SetVec(i, v)
	}
	lu.Factorize(bm)
	if err := luSolve(&lu, xb, false, rhs); err != nil {
		return
	}
	for i, j := range s.basis {
		s.x[j] = xb.AtVec(i)
	}
}

// luSolve treats near-singularity warnings as usable results; an
// exactly unsolvable system still fails.
func luSolve(lu *mat.LU, dst *mat.VecDense, trans bool, b *mat.VecDense) error {
	if err := lu.SolveVecTo(dst, trans, b); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return err
		}
	}
	return nil
}
