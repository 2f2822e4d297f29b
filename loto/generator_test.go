package loto

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStructuralValidity(t *testing.T) {
	gen := NewGeneratorWithSource(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		g, err := gen.Generate()
		require.NoError(t, err)
		require.NoError(t, Validate(g), "grid %d: %v", i, g)
	}
}

func TestGenerateRowAndColumnCounts(t *testing.T) {
	gen := NewGeneratorWithSource(rand.New(rand.NewSource(43)))
	for i := 0; i < 200; i++ {
		g, err := gen.Generate()
		require.NoError(t, err)

		for r := 0; r < Rows; r++ {
			filled := 0
			for c := 0; c < Cols; c++ {
				if g[r][c] != Empty {
					filled++
				}
			}
			assert.Equal(t, NumbersPerRow, filled, "row %d of grid %d", r, i)
		}
		for c := 0; c < Cols; c++ {
			filled := 0
			for r := 0; r < Rows; r++ {
				if g[r][c] != Empty {
					filled++
				}
			}
			assert.GreaterOrEqual(t, filled, 1, "column %d of grid %d", c, i)
			assert.LessOrEqual(t, filled, maxPerColumn, "column %d of grid %d", c, i)
		}
	}
}

func TestGenerateBoundaryValuesReachable(t *testing.T) {
	gen := NewGeneratorWithSource(rand.New(rand.NewSource(44)))
	boundaries := map[int]bool{1: false, 9: false, 10: false, 79: false, 80: false, 90: false}

	for i := 0; i < 1000; i++ {
		g, err := gen.Generate()
		require.NoError(t, err)
		for _, n := range g.Numbers() {
			if _, ok := boundaries[n]; ok {
				boundaries[n] = true
			}
		}
	}
	for n, seen := range boundaries {
		assert.True(t, seen, "boundary value %d never appeared in 1000 grids", n)
	}
}

func TestGenerateGridsDiffer(t *testing.T) {
	gen := NewGeneratorWithSource(rand.New(rand.NewSource(45)))
	hashes := make(map[string]bool)
	for i := 0; i < 100; i++ {
		g, err := gen.Generate()
		require.NoError(t, err)
		hashes[g.Hash()] = true
	}
	// Identical consecutive grids from a 10^25-sized space would
	// point at broken randomness.
	assert.Greater(t, len(hashes), 95)
}

func TestGenerateExhaustion(t *testing.T) {
	gen := NewGeneratorWithSource(rand.New(rand.NewSource(46)))
	checks := 0
	gen.check = func(Grid) error {
		checks++
		return errors.New("forced validation failure")
	}

	_, err := gen.Generate()
	require.ErrorIs(t, err, ErrGenerationExhausted)
	// Every constructed candidate is validated once; dead-end
	// attempts burn budget without reaching validation.
	assert.LessOrEqual(t, checks, MaxAttempts)
	assert.Greater(t, checks, 0)
}

func TestGenerateSucceedsAfterFailedAttempts(t *testing.T) {
	gen := NewGeneratorWithSource(rand.New(rand.NewSource(47)))
	failures := 3
	gen.check = func(g Grid) error {
		if failures > 0 {
			failures--
			return errors.New("forced validation failure")
		}
		return Validate(g)
	}

	g, err := gen.Generate()
	require.NoError(t, err)
	require.NoError(t, Validate(g))
	assert.Equal(t, 0, failures)
}

func TestGenerateConcurrent(t *testing.T) {
	// The default generator shares only the locked global rand.
	done := make(chan error)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				g, err := Generate()
				if err != nil {
					done <- err
					return
				}
				if err := Validate(g); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
