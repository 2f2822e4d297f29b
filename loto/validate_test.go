package loto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validFixture is a hand-built grid satisfying every ticket rule:
// two numbers in the even columns, one in the odd ones, three in the
// last, five per row, ascending down each column.
func validFixture() Grid {
	return Grid{
		{1, 0, 21, 0, 41, 0, 61, 0, 81},
		{0, 10, 0, 30, 0, 50, 0, 70, 85},
		{5, 0, 25, 0, 45, 0, 65, 0, 90},
	}
}

func TestValidateFixture(t *testing.T) {
	require.NoError(t, Validate(validFixture()))
}

func TestValidateRejectsDescendingColumn(t *testing.T) {
	g := validFixture()
	// Swap two values within column 8; the column becomes 90,85,81.
	g[0][8], g[2][8] = g[2][8], g[0][8]
	assert.Error(t, Validate(g))
}

func TestValidateRejectsRowImbalance(t *testing.T) {
	g := validFixture()
	// Move a number between rows: row 0 gets 4 numbers, row 1 gets 6.
	g[1][0] = g[0][0]
	g[0][0] = Empty
	assert.Error(t, Validate(g))
}

func TestValidateRejectsOutOfRangeValue(t *testing.T) {
	g := validFixture()
	g[0][0] = 10 // column 0 only holds 1-9
	assert.Error(t, Validate(g))
}

func TestValidateRejectsDuplicateValue(t *testing.T) {
	g := validFixture()
	g[2][8] = g[1][8] // 85 twice in column 8
	assert.Error(t, Validate(g))
}

func TestValidateRejectsEmptyColumn(t *testing.T) {
	g := validFixture()
	// Drain column 1 and park a number in column 0 instead to keep
	// row balance; column 1 now has zero numbers.
	g[1][0] = 2
	g[1][1] = Empty
	assert.Error(t, Validate(g))
}

func TestValidateAllowsFullColumn(t *testing.T) {
	// Three numbers in one column is the cap, not a violation.
	g := Grid{
		{1, 0, 21, 0, 41, 0, 61, 0, 81},
		{2, 10, 0, 30, 0, 50, 0, 70, 0},
		{5, 0, 25, 0, 45, 0, 65, 0, 90},
	}
	assert.NoError(t, Validate(g))
}
