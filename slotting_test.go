package slotting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.solver4all.com/azaryc2s/slotting"
	"git.solver4all.com/azaryc2s/slotting/bnb"
)

// linearInstance builds the reproducible toy instance with linear ramps
// on area, depth and demand.
func linearInstance(products, classes, locations int) slotting.Instance {
	inst := slotting.Instance{
		Name: "linear", Type: "SLOT",
		Products: products, Classes: classes, Locations: locations,
		Area:   make([]float64, locations),
		Depth:  make([]float64, locations),
		Demand: make([]float64, products),

		FixedCost:  1000,
		HandleCost: 2,
	}
	for l := 0; l < locations; l++ {
		inst.Area[l] = 10 + 2*float64(l)
		inst.Depth[l] = 5 + float64(l)
	}
	for p := 0; p < products; p++ {
		inst.Demand[p] = 100 + 5*float64(p)
	}
	return inst
}

func TestSolveInstanceScenario(t *testing.T) {
	inst := linearInstance(20, 4, 15)

	a, res, err := slotting.SolveInstance(inst, &bnb.Solver{}, slotting.SolveOptions{})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Contains(t, []slotting.Status{slotting.StatusOptimal, slotting.StatusFeasible}, res.Status)

	assert.InDelta(t, 1180.004, res.Obj, 1e-2)

	require.NotNil(t, a)
	for p, c := range a.ProductClass {
		assert.GreaterOrEqual(t, c, 0, "product %d", p)
		assert.Less(t, c, inst.Classes, "product %d", p)
	}

	// opening real area is never worth it here; at least one class must
	// end up without any allocated location
	counts := a.ClassLocationCount(inst.Classes)
	empty := 0
	for _, n := range counts {
		if n == 0 {
			empty++
		}
	}
	assert.GreaterOrEqual(t, empty, 1)
}

func TestSolveInstanceSingleClass(t *testing.T) {
	inst := linearInstance(3, 1, 2)

	a, res, err := slotting.SolveInstance(inst, &bnb.Solver{}, slotting.SolveOptions{})
	require.NoError(t, err)
	require.Equal(t, slotting.StatusOptimal, res.Status)

	require.NotNil(t, a)
	for p, c := range a.ProductClass {
		assert.Equal(t, 0, c, "product %d", p)
	}
	for l, c := range a.LocationClass {
		if c >= 0 {
			assert.Equal(t, 0, c, "location %d", l)
		}
	}
}

func TestSolveInstanceIdempotent(t *testing.T) {
	inst := linearInstance(6, 2, 4)

	_, first, err := slotting.SolveInstance(inst, &bnb.Solver{}, slotting.SolveOptions{})
	require.NoError(t, err)
	_, second, err := slotting.SolveInstance(inst, &bnb.Solver{}, slotting.SolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Obj, second.Obj)
}

func TestSolveInstanceZeroAreaInfeasible(t *testing.T) {
	inst := linearInstance(3, 2, 2)
	inst.Area = []float64{0, 0}

	// with no area anywhere the class area variables cannot reach their
	// epsilon lower bound
	a, res, err := slotting.SolveInstance(inst, &bnb.Solver{}, slotting.SolveOptions{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, slotting.StatusInfeasible, res.Status)
	assert.Nil(t, a)
}

func TestSolveInstanceValidation(t *testing.T) {
	inst := linearInstance(3, 2, 2)
	inst.Demand = inst.Demand[:2]

	_, _, err := slotting.SolveInstance(inst, &bnb.Solver{}, slotting.SolveOptions{})
	require.Error(t, err)
	var verr *slotting.ValidationError
	assert.ErrorAs(t, err, &verr)
}
