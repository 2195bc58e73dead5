package slotting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLPFormat(t *testing.T) {
	m, err := BuildModel(testParams(t, 2, 1, 2))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, m.WriteTo(&sb))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "\\ slotting:"))
	assert.Contains(t, out, "Minimize")
	assert.Contains(t, out, " obj:")
	assert.Contains(t, out, "1000 E_0")
	assert.Contains(t, out, "4 z_0")
	assert.Contains(t, out, "Subject To")
	assert.Contains(t, out, " def_E_0:")
	assert.Contains(t, out, "- 1 E_0 = 0")
	assert.Contains(t, out, " assign_0:")
	assert.Contains(t, out, "= 1")
	assert.Contains(t, out, " loc_once_0:")
	assert.Contains(t, out, "<= 1")
	assert.Contains(t, out, " mcc_TE_0_lo1:")
	assert.Contains(t, out, "Bounds")
	assert.Contains(t, out, "1e-06 <= E_0 <=")
	assert.Contains(t, out, "Binaries")
	assert.Contains(t, out, "x_0_0")
	assert.Contains(t, out, "y_1_0")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "End"))
}
