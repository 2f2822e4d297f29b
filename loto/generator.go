package loto

import (
	"errors"
	"math/rand"
	"sort"
)

// MaxAttempts bounds the retry loop inside Generate. Exhausting it is
// effectively unreachable for the 15-over-3x9 constraint space; seeing
// ErrGenerationExhausted in practice points at an algorithmic bug, not
// bad luck.
const MaxAttempts = 100

// ErrGenerationExhausted is returned when no valid grid could be
// constructed within MaxAttempts.
var ErrGenerationExhausted = errors.New("loto: ticket generation attempts exhausted")

// intSource is the randomness the generator consumes. *rand.Rand
// satisfies it for seeded tests.
type intSource interface {
	Intn(n int) int
}

// globalSource delegates to math/rand's locked global generator so the
// default Generator is safe for concurrent callers.
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// Generator builds valid Lô Tô ticket grids. Every call to Generate is
// independent; the zero-cost default (see Generate) shares nothing
// between goroutines.
type Generator struct {
	rng      intSource
	attempts int
	check    func(Grid) error
}

// NewGenerator returns a Generator backed by the process-wide random
// source.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(globalSource{})
}

// NewGeneratorWithSource returns a Generator drawing randomness from
// src. Pass a seeded *rand.Rand for reproducible tests; uniformity is
// the only requirement.
func NewGeneratorWithSource(src intSource) *Generator {
	return &Generator{rng: src, attempts: MaxAttempts, check: Validate}
}

var defaultGenerator = NewGenerator()

// Generate produces one valid ticket grid using the default generator.
func Generate() (Grid, error) {
	return defaultGenerator.Generate()
}

// Generate constructs a grid satisfying all ticket rules, retrying
// failed attempts up to the attempt budget. A failed attempt leaves no
// state behind; only exhausting the budget surfaces an error.
func (g *Generator) Generate() (Grid, error) {
	for attempt := 0; attempt < g.attempts; attempt++ {
		grid, ok := g.build()
		if !ok {
			continue
		}
		if err := g.check(grid); err != nil {
			continue
		}
		return grid, nil
	}
	return Grid{}, ErrGenerationExhausted
}

// build runs one construction attempt. ok=false means the attempt hit
// a dead end (a column had no eligible row left) and should simply be
// retried.
func (g *Generator) build() (Grid, bool) {
	counts := g.columnCounts()
	rowsByCol, ok := g.assignRows(counts)
	if !ok {
		return Grid{}, false
	}

	var grid Grid
	for c := 0; c < Cols; c++ {
		values := g.drawValues(c, counts[c])
		// Both lists are sorted ascending, so zipping them keeps
		// each column strictly ascending top to bottom.
		for i, r := range rowsByCol[c] {
			grid[r][c] = values[i]
		}
	}
	return grid, true
}

// columnCounts gives every column one number, then deals the remaining
// six to random columns capped at three each.
func (g *Generator) columnCounts() [Cols]int {
	var counts [Cols]int
	for c := range counts {
		counts[c] = 1
	}
	placed := Cols
	for placed < TotalNumbers {
		c := g.rng.Intn(Cols)
		if counts[c] >= maxPerColumn {
			continue
		}
		counts[c]++
		placed++
	}
	return counts
}

// assignRows picks a row for each number of each column, uniformly
// among rows that still have capacity and were not already used by the
// same column. Row capacity can run out late in the scan for some
// count vectors; that is a normal dead end, not an error.
func (g *Generator) assignRows(counts [Cols]int) ([Cols][]int, bool) {
	var assigned [Cols][]int
	var rowLoad [Rows]int

	for c := 0; c < Cols; c++ {
		var used [Rows]bool
		for n := 0; n < counts[c]; n++ {
			eligible := make([]int, 0, Rows)
			for r := 0; r < Rows; r++ {
				if !used[r] && rowLoad[r] < NumbersPerRow {
					eligible = append(eligible, r)
				}
			}
			if len(eligible) == 0 {
				return assigned, false
			}
			r := eligible[g.rng.Intn(len(eligible))]
			used[r] = true
			rowLoad[r]++
			assigned[c] = append(assigned[c], r)
		}
		sort.Ints(assigned[c])
	}

	// Consistency check; unreachable if the capacity bookkeeping
	// above is correct.
	for r := 0; r < Rows; r++ {
		if rowLoad[r] != NumbersPerRow {
			return assigned, false
		}
	}
	return assigned, true
}

// drawValues samples n distinct values from the column's band and
// returns them sorted ascending.
func (g *Generator) drawValues(col, n int) []int {
	min, max := ColumnRange(col)
	pool := make([]int, 0, max-min+1)
	for v := min; v <= max; v++ {
		pool = append(pool, v)
	}
	for i := 0; i < n; i++ {
		j := i + g.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	values := pool[:n:n]
	sort.Ints(values)
	return values
}
