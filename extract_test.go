package slotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solvedValues builds a value vector for m with every variable at zero.
func solvedValues(m *Model) []float64 {
	return make([]float64, len(m.Vars))
}

func TestExtractNearBinary(t *testing.T) {
	m, err := BuildModel(testParams(t, 2, 2, 2))
	require.NoError(t, err)

	vals := solvedValues(m)
	// solvers return near-binary values inside their tolerance
	vals[m.XIndex(0, 0)] = 0.93
	vals[m.XIndex(0, 1)] = 0.07
	vals[m.XIndex(1, 1)] = 1.0000001
	vals[m.YIndex(0, 0)] = 0.999
	// location 1 stays idle

	a, err := Extract(m, &Result{Status: StatusOptimal, Values: vals})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, a.ProductClass)
	assert.Equal(t, []int{0, -1}, a.LocationClass)
	assert.Equal(t, []int{1}, a.IdleLocations())
	assert.Equal(t, []int{1, 0}, a.ClassLocationCount(2))
}

func TestExtractUnassignedProduct(t *testing.T) {
	m, err := BuildModel(testParams(t, 2, 2, 2))
	require.NoError(t, err)

	vals := solvedValues(m)
	vals[m.XIndex(0, 0)] = 1
	// product 1 left at zero everywhere

	_, err = Extract(m, &Result{Status: StatusOptimal, Values: vals})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 1")
}

func TestExtractDoubleAssignment(t *testing.T) {
	m, err := BuildModel(testParams(t, 2, 2, 2))
	require.NoError(t, err)

	vals := solvedValues(m)
	vals[m.XIndex(0, 0)] = 1
	vals[m.XIndex(0, 1)] = 1
	vals[m.XIndex(1, 0)] = 1

	_, err = Extract(m, &Result{Status: StatusOptimal, Values: vals})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 0")
}

func TestExtractDoubleAllocation(t *testing.T) {
	m, err := BuildModel(testParams(t, 1, 2, 2))
	require.NoError(t, err)

	vals := solvedValues(m)
	vals[m.XIndex(0, 0)] = 1
	vals[m.YIndex(1, 0)] = 1
	vals[m.YIndex(1, 1)] = 1

	_, err = Extract(m, &Result{Status: StatusOptimal, Values: vals})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location 1")
}

func TestExtractNoValues(t *testing.T) {
	m, err := BuildModel(testParams(t, 1, 1, 1))
	require.NoError(t, err)

	_, err = Extract(m, &Result{Status: StatusInfeasible})
	assert.Error(t, err)

	_, err = Extract(m, &Result{Status: StatusOptimal, Values: []float64{1}})
	assert.Error(t, err)
}
