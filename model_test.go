package slotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(t *testing.T, products, classes, locations int) Parameters {
	t.Helper()
	area := make([]float64, locations)
	depth := make([]float64, locations)
	demand := make([]float64, products)
	for l := 0; l < locations; l++ {
		area[l] = 10 + 2*float64(l)
		depth[l] = 5 + float64(l)
	}
	for p := 0; p < products; p++ {
		demand[p] = 100 + 5*float64(p)
	}
	params, err := LoadParameters(products, classes, locations, area, depth, demand, 1000, 2)
	require.NoError(t, err)
	return params
}

func TestBuildModelShape(t *testing.T) {
	params := testParams(t, 4, 2, 3)
	m, err := BuildModel(params)
	require.NoError(t, err)

	// x: 4*2, y: 3*2, aggregates: 5 per class
	assert.Len(t, m.Vars, 4*2+3*2+5*2)
	// definitional: 3 per class, assignment: 4, uniqueness: 3, envelopes: 8 per class
	assert.Len(t, m.Constrs, 3*2+4+3+8*2)

	b := m.GlobalBounds()
	for c := 0; c < 2; c++ {
		e := m.Vars[m.EIndex(c)]
		assert.Equal(t, b.EMin, e.Lower)
		assert.Equal(t, b.EMax, e.Upper)
		assert.Equal(t, params.FixedCost, e.Obj)

		z := m.Vars[m.ZIndex(c)]
		assert.Equal(t, 0.0, z.Lower)
		assert.InDelta(t, b.RMax*b.NMax, z.Upper, 1e-9)
		assert.Equal(t, 2*params.HandleCost, z.Obj)

		r := m.Vars[m.RIndex(c)]
		assert.Equal(t, b.RMin, r.Lower)
		assert.Equal(t, b.RMax, r.Upper)
	}

	assert.Equal(t, "x_0_0", m.Vars[m.XIndex(0, 0)].Name)
	assert.Equal(t, "x_3_1", m.Vars[m.XIndex(3, 1)].Name)
	assert.Equal(t, "y_2_0", m.Vars[m.YIndex(2, 0)].Name)
	for _, name := range []string{"x_0_0", "y_2_1"} {
		found := false
		for _, v := range m.Vars {
			if v.Name == name {
				found = true
				assert.Equal(t, Binary, v.Type)
			}
		}
		assert.True(t, found, name)
	}
}

func TestBuildModelDefinitionalRows(t *testing.T) {
	params := testParams(t, 2, 2, 2)
	m, err := BuildModel(params)
	require.NoError(t, err)

	var defE *Constraint
	for i := range m.Constrs {
		if m.Constrs[i].Name == "def_E_0" {
			defE = &m.Constrs[i]
		}
	}
	require.NotNil(t, defE)
	assert.Equal(t, Equal, defE.Sense)
	assert.Equal(t, 0.0, defE.RHS)
	// area coefficients on y_l_0 and -1 on E_0
	require.Len(t, defE.Ind, 3)
	assert.Equal(t, m.YIndex(0, 0), defE.Ind[0])
	assert.Equal(t, 10.0, defE.Val[0])
	assert.Equal(t, m.YIndex(1, 0), defE.Ind[1])
	assert.Equal(t, 12.0, defE.Val[1])
	assert.Equal(t, m.EIndex(0), defE.Ind[2])
	assert.Equal(t, -1.0, defE.Val[2])
}

func TestBuildModelErrors(t *testing.T) {
	var mberr *ModelBuildError

	_, err := BuildModel(Parameters{})
	require.Error(t, err)
	assert.ErrorAs(t, err, &mberr)

	params := testParams(t, 2, 2, 2)
	params.RMin = 10
	params.RMax = 2
	_, err = BuildModel(params)
	require.Error(t, err)
	assert.ErrorAs(t, err, &mberr)
}

// evalRow checks one envelope row at a concrete (w, u, v) point.
func evalRow(c Constraint, vals map[int32]float64) (lhs, rhs float64, sense int8) {
	for i, idx := range c.Ind {
		lhs += c.Val[i] * vals[idx]
	}
	return lhs, c.RHS, c.Sense
}

func TestEnvelopeSoundness(t *testing.T) {
	const (
		uLo, uUp = 0.1, 19.0
		vLo, vUp = 1e-6, 360.0
	)
	rows := envelopeRows("env", 0, 1, 2, uLo, uUp, vLo, vUp)
	require.Len(t, rows, 4)

	steps := 25
	for i := 0; i <= steps; i++ {
		for j := 0; j <= steps; j++ {
			u := uLo + (uUp-uLo)*float64(i)/float64(steps)
			v := vLo + (vUp-vLo)*float64(j)/float64(steps)
			vals := map[int32]float64{0: u * v, 1: u, 2: v}
			for _, row := range rows {
				lhs, rhs, sense := evalRow(row, vals)
				switch sense {
				case GreaterEqual:
					assert.GreaterOrEqual(t, lhs+1e-9, rhs, "u=%g v=%g row=%s", u, v, row.Name)
				case LessEqual:
					assert.LessOrEqual(t, lhs-1e-9, rhs, "u=%g v=%g row=%s", u, v, row.Name)
				}
			}
		}
	}
}

// With one factor at a bound the envelope collapses to the exact product.
func TestEnvelopeExactAtBounds(t *testing.T) {
	const (
		uLo, uUp = 0.5, 4.0
		vLo, vUp = 1.0, 10.0
	)
	for _, u := range []float64{uLo, uUp} {
		for _, v := range []float64{2.0, 7.5, vUp} {
			// tightest lower and upper planes on w at this (u, v)
			lower := maxf(uLo*v+vLo*u-uLo*vLo, uUp*v+vUp*u-uUp*vUp)
			upper := minf(uUp*v+vLo*u-uUp*vLo, uLo*v+vUp*u-uLo*vUp)
			assert.InDelta(t, u*v, lower, 1e-9)
			assert.InDelta(t, u*v, upper, 1e-9)
		}
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
