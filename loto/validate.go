package loto

import "fmt"

// Validate re-checks every structural rule of a Lô Tô ticket
// independently of how the grid was built:
//
//  1. 3 rows of 9 cells (guaranteed by the Grid type itself)
//  2. exactly 5 numbers per row
//  3. between 1 and 3 numbers per column
//  4. exactly 15 numbers, pairwise distinct
//  5. every number inside its column's value band
//  6. numbers strictly ascending down each column
//
// The generator runs this on every candidate before returning it, and
// callers may use it to re-validate stored tickets.
func Validate(g Grid) error {
	seen := make(map[int]bool, TotalNumbers)
	total := 0

	for r := 0; r < Rows; r++ {
		filled := 0
		for c := 0; c < Cols; c++ {
			v := g[r][c]
			if v == Empty {
				continue
			}
			filled++
			total++
			if min, max := ColumnRange(c); v < min || v > max {
				return fmt.Errorf("loto: value %d at (%d,%d) outside column range [%d,%d]", v, r, c, min, max)
			}
			if seen[v] {
				return fmt.Errorf("loto: duplicate value %d", v)
			}
			seen[v] = true
		}
		if filled != NumbersPerRow {
			return fmt.Errorf("loto: row %d has %d numbers, want %d", r, filled, NumbersPerRow)
		}
	}

	if total != TotalNumbers {
		return fmt.Errorf("loto: grid has %d numbers, want %d", total, TotalNumbers)
	}

	for c := 0; c < Cols; c++ {
		filled := 0
		prev := 0
		for r := 0; r < Rows; r++ {
			v := g[r][c]
			if v == Empty {
				continue
			}
			filled++
			if prev != 0 && v <= prev {
				return fmt.Errorf("loto: column %d not strictly ascending (%d then %d)", c, prev, v)
			}
			prev = v
		}
		if filled < 1 || filled > maxPerColumn {
			return fmt.Errorf("loto: column %d has %d numbers, want 1..%d", c, filled, maxPerColumn)
		}
	}

	return nil
}
