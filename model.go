package slotting

import "fmt"

// Variable types and constraint senses mirror the single-character
// conventions of the usual MILP file formats and solver bindings.
const (
	Continuous int8 = 'C'
	Binary     int8 = 'B'
)

const (
	Equal        int8 = '='
	LessEqual    int8 = '<'
	GreaterEqual int8 = '>'
)

// Variable is one column of the model: bounds, type and its coefficient
// in the (always minimized) objective.
type Variable struct {
	Name  string
	Type  int8
	Lower float64
	Upper float64
	Obj   float64
}

// Constraint is one row of the model, as a sparse coefficient list over
// variable indices.
type Constraint struct {
	Name  string
	Ind   []int32
	Val   []float64
	Sense int8
	RHS   float64
}

// Model is a fully assembled MILP, ready to be handed to a solver
// backend. It is built once by BuildModel and never mutated afterwards;
// a caller needing a different model builds a fresh one.
type Model struct {
	Name    string
	Vars    []Variable
	Constrs []Constraint

	params Parameters
	bounds Bounds

	startX, startY         int
	startE, startT, startN int
	startR, startZ         int
}

// Params returns the parameters the model was built from.
func (m *Model) Params() Parameters { return m.params }

// GlobalBounds returns the box bounds used by the linearization.
func (m *Model) GlobalBounds() Bounds { return m.bounds }

/* Index bookkeeping. All variables live in one flat column space; the
   start offsets follow the creation order in BuildModel. */

func (m *Model) XIndex(p, c int) int32 { return int32(m.startX + p*m.params.Classes + c) }
func (m *Model) YIndex(l, c int) int32 { return int32(m.startY + l*m.params.Classes + c) }
func (m *Model) EIndex(c int) int32    { return int32(m.startE + c) }
func (m *Model) TIndex(c int) int32    { return int32(m.startT + c) }
func (m *Model) NIndex(c int) int32    { return int32(m.startN + c) }
func (m *Model) RIndex(c int) int32    { return int32(m.startR + c) }
func (m *Model) ZIndex(c int) int32    { return int32(m.startZ + c) }

// BuildModel assembles the complete mixed-integer linear model for the
// given parameters.
//
// The handling term of the true objective is sum_c (T_c/E_c)*N_c, which
// is nonlinear in the assignment variables. The build introduces a free
// ratio variable r_c and couples both bilinear products (T_c with r_c*E_c
// and z_c with r_c*N_c) through their four-inequality envelopes; the
// result is a relaxation whose tightness depends on the width of the
// boxes, not an exact reformulation.
func BuildModel(prm Parameters) (*Model, error) {
	if prm.Products <= 0 || prm.Classes <= 0 || prm.Locations <= 0 {
		return nil, &ModelBuildError{Reason: "empty index domain"}
	}
	b := ComputeBounds(prm)
	if b.RMin > b.RMax {
		return nil, &ModelBuildError{Reason: fmt.Sprintf("inverted ratio bounds [%g, %g]", b.RMin, b.RMax)}
	}

	m := &Model{
		Name:   "slotting",
		params: prm,
		bounds: b,
	}

	/* Variables. x_p_c and y_l_c are the assignment and allocation
	   indicators; E, T, N, r, z are the per-class aggregates. */

	m.startX = 0
	for p := 0; p < prm.Products; p++ {
		for c := 0; c < prm.Classes; c++ {
			m.Vars = append(m.Vars, Variable{
				Name: fmt.Sprintf("x_%d_%d", p, c), Type: Binary, Lower: 0, Upper: 1,
			})
		}
	}
	m.startY = len(m.Vars)
	for l := 0; l < prm.Locations; l++ {
		for c := 0; c < prm.Classes; c++ {
			m.Vars = append(m.Vars, Variable{
				Name: fmt.Sprintf("y_%d_%d", l, c), Type: Binary, Lower: 0, Upper: 1,
			})
		}
	}
	m.startE = len(m.Vars)
	for c := 0; c < prm.Classes; c++ {
		m.Vars = append(m.Vars, Variable{
			Name: fmt.Sprintf("E_%d", c), Type: Continuous,
			Lower: b.EMin, Upper: b.EMax, Obj: prm.FixedCost,
		})
	}
	m.startT = len(m.Vars)
	for c := 0; c < prm.Classes; c++ {
		m.Vars = append(m.Vars, Variable{
			Name: fmt.Sprintf("T_%d", c), Type: Continuous,
			Lower: 0, Upper: b.EMax * b.RMax,
		})
	}
	m.startN = len(m.Vars)
	for c := 0; c < prm.Classes; c++ {
		m.Vars = append(m.Vars, Variable{
			Name: fmt.Sprintf("N_%d", c), Type: Continuous,
			Lower: b.NMin, Upper: b.NMax,
		})
	}
	m.startR = len(m.Vars)
	for c := 0; c < prm.Classes; c++ {
		m.Vars = append(m.Vars, Variable{
			Name: fmt.Sprintf("r_%d", c), Type: Continuous,
			Lower: b.RMin, Upper: b.RMax,
		})
	}
	m.startZ = len(m.Vars)
	for c := 0; c < prm.Classes; c++ {
		m.Vars = append(m.Vars, Variable{
			Name: fmt.Sprintf("z_%d", c), Type: Continuous,
			Lower: 0, Upper: b.RMax * b.NMax, Obj: 2 * prm.HandleCost,
		})
	}

	/* Definitional equalities: the class aggregates are sums over the
	   chosen indicators, nothing more. */

	for c := 0; c < prm.Classes; c++ {
		var (
			ind []int32
			val []float64
		)
		for l := 0; l < prm.Locations; l++ {
			ind = append(ind, m.YIndex(l, c))
			val = append(val, prm.Area[l])
		}
		ind = append(ind, m.EIndex(c))
		val = append(val, -1.0)
		m.Constrs = append(m.Constrs, Constraint{
			Name: fmt.Sprintf("def_E_%d", c), Ind: ind, Val: val, Sense: Equal, RHS: 0,
		})
	}
	for c := 0; c < prm.Classes; c++ {
		var (
			ind []int32
			val []float64
		)
		for l := 0; l < prm.Locations; l++ {
			ind = append(ind, m.YIndex(l, c))
			val = append(val, prm.Area[l]*prm.Depth[l])
		}
		ind = append(ind, m.TIndex(c))
		val = append(val, -1.0)
		m.Constrs = append(m.Constrs, Constraint{
			Name: fmt.Sprintf("def_T_%d", c), Ind: ind, Val: val, Sense: Equal, RHS: 0,
		})
	}
	for c := 0; c < prm.Classes; c++ {
		var (
			ind []int32
			val []float64
		)
		for p := 0; p < prm.Products; p++ {
			ind = append(ind, m.XIndex(p, c))
			val = append(val, prm.Demand[p])
		}
		ind = append(ind, m.NIndex(c))
		val = append(val, -1.0)
		m.Constrs = append(m.Constrs, Constraint{
			Name: fmt.Sprintf("def_N_%d", c), Ind: ind, Val: val, Sense: Equal, RHS: 0,
		})
	}

	/* Every product belongs to exactly one class. */

	for p := 0; p < prm.Products; p++ {
		var (
			ind []int32
			val []float64
		)
		for c := 0; c < prm.Classes; c++ {
			ind = append(ind, m.XIndex(p, c))
			val = append(val, 1.0)
		}
		m.Constrs = append(m.Constrs, Constraint{
			Name: fmt.Sprintf("assign_%d", p), Ind: ind, Val: val, Sense: Equal, RHS: 1,
		})
	}

	/* A location belongs to at most one class; idle locations are fine. */

	for l := 0; l < prm.Locations; l++ {
		var (
			ind []int32
			val []float64
		)
		for c := 0; c < prm.Classes; c++ {
			ind = append(ind, m.YIndex(l, c))
			val = append(val, 1.0)
		}
		m.Constrs = append(m.Constrs, Constraint{
			Name: fmt.Sprintf("loc_once_%d", l), Ind: ind, Val: val, Sense: LessEqual, RHS: 1,
		})
	}

	/* Envelope rows coupling T_c to r_c*E_c and z_c to r_c*N_c. */

	for c := 0; c < prm.Classes; c++ {
		m.Constrs = append(m.Constrs, envelopeRows(
			fmt.Sprintf("mcc_TE_%d", c),
			m.TIndex(c), m.RIndex(c), m.EIndex(c),
			b.RMin, b.RMax, b.EMin, b.EMax,
		)...)
		m.Constrs = append(m.Constrs, envelopeRows(
			fmt.Sprintf("mcc_zN_%d", c),
			m.ZIndex(c), m.RIndex(c), m.NIndex(c),
			b.RMin, b.RMax, b.NMin, b.NMax,
		)...)
	}

	return m, nil
}
