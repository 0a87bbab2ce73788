package sparkline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatches(t *testing.T) {
	assert.Equal(t, []span{{0, 8}}, batches(8, 0))
	assert.Equal(t, []span{{0, 8}}, batches(8, 8))
	assert.Equal(t, []span{{0, 8}}, batches(8, 20))
	assert.Equal(t, []span{{0, 3}, {3, 6}, {6, 8}}, batches(8, 3))
	assert.Equal(t, []span{{0, 2}, {2, 4}}, batches(4, 2))
}

func TestAssembleReversesRows(t *testing.T) {
	rows, err := assemble([][]string{{"a", "b"}, {"c", "d"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"bd", "ac"}, rows)
}

func TestAssembleInconsistentHeights(t *testing.T) {
	_, err := assemble([][]string{{"a", "b"}, {"c"}})
	assert.ErrorIs(t, err, ErrAssembly)
}

func TestJoinBlocks(t *testing.T) {
	rows := joinBlocks([][]string{{"ab", "cd"}, {"e", "f"}})
	assert.Equal(t, []string{"ab e", "cd f"}, rows)
	assert.Equal(t, []string{"x"}, joinBlocks([][]string{{"x"}}))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, Width(0, 3))
	assert.Equal(t, 8, Width(8, 0))
	assert.Equal(t, 10, Width(8, 3))
	assert.Equal(t, 8, Width(8, 8))
	assert.Equal(t, 5, Width(4, 2))
}
