package loto

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Grid dimensions and placement limits for a Lô Tô ticket.
const (
	Rows          = 3
	Cols          = 9
	NumbersPerRow = 5
	TotalNumbers  = Rows * NumbersPerRow
	maxPerColumn  = 3
)

// Empty marks a blank cell inside a Grid.
const Empty = 0

// columnRanges fixes the inclusive value band each column draws from.
// Column 0 holds 1-9 and column 8 holds 80-90; the bands in between
// cover a full decade each.
var columnRanges = [Cols]struct{ Min, Max int }{
	{1, 9},
	{10, 19},
	{20, 29},
	{30, 39},
	{40, 49},
	{50, 59},
	{60, 69},
	{70, 79},
	{80, 90},
}

// ColumnRange returns the inclusive [min,max] value band of a column.
func ColumnRange(col int) (min, max int) {
	r := columnRanges[col]
	return r.Min, r.Max
}

// Grid is a 3x9 Lô Tô ticket: 15 numbers and 12 blanks. A blank cell
// holds Empty. Row 0 is the top row, column 0 the leftmost. Grids are
// values; marking called numbers is the caller's overlay, never a
// mutation of the grid.
type Grid [Rows][Cols]int

// Cell returns the number at (row, col) and whether the cell is filled.
func (g Grid) Cell(row, col int) (int, bool) {
	v := g[row][col]
	return v, v != Empty
}

// Numbers returns the 15 placed numbers in row-major order.
func (g Grid) Numbers() []int {
	nums := make([]int, 0, TotalNumbers)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g[r][c] != Empty {
				nums = append(nums, g[r][c])
			}
		}
	}
	return nums
}

// Contains reports whether n is placed anywhere on the ticket.
func (g Grid) Contains(n int) bool {
	if n < 1 || n > 90 {
		return false
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g[r][c] == n {
				return true
			}
		}
	}
	return false
}

// MarshalJSON encodes the grid as a 3x9 JSON array with null for
// blanks. This is the canonical serialization: two structurally equal
// grids always produce identical bytes, and it is the input to Hash.
func (g Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]*int, Rows)
	for r := 0; r < Rows; r++ {
		rows[r] = make([]*int, Cols)
		for c := 0; c < Cols; c++ {
			if g[r][c] != Empty {
				v := g[r][c]
				rows[r][c] = &v
			}
		}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes the canonical 3x9 array-of-nullable-ints form.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]*int
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) != Rows {
		return fmt.Errorf("loto: grid must have %d rows, got %d", Rows, len(rows))
	}
	var out Grid
	for r, row := range rows {
		if len(row) != Cols {
			return fmt.Errorf("loto: row %d must have %d cells, got %d", r, Cols, len(row))
		}
		for c, cell := range row {
			if cell != nil {
				out[r][c] = *cell
			}
		}
	}
	*g = out
	return nil
}

// Hash returns the hex SHA-256 of the canonical serialization. The
// pair (room, hash) is the uniqueness key the persistence layer
// enforces; structural equality of grids implies equal hashes.
func (g Grid) Hash() string {
	data, err := g.MarshalJSON()
	if err != nil {
		// Marshalling a fixed-shape value cannot fail.
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
