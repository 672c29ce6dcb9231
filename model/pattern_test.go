package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"golife/utils"
)

func TestNewPattern_BuiltIns(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		kind  PatternKind
		cells int
	}{
		{Block, 4},
		{Blinker, 3},
		{Glider, 5},
	} {
		tc := tc
		t.Run(tc.kind.String(), func(t *testing.T) {
			t.Parallel()

			p := NewPattern(tc.kind)
			require.Equal(t, tc.kind, p.Kind)
			require.Len(t, p.Cells, tc.cells)
		})
	}
}

func TestPlace(t *testing.T) {
	t.Parallel()

	t.Run("places all cells at the origin offset", func(t *testing.T) {
		t.Parallel()

		g, err := NewGrid(10, 10)
		require.NoError(t, err)

		require.NoError(t, g.Place(NewPattern(Block), 4, 4))
		require.ElementsMatch(t,
			[]Cell{{4, 4}, {5, 4}, {4, 5}, {5, 5}},
			g.LiveCells(),
		)
	})

	t.Run("rejects out-of-bounds placement without partial writes", func(t *testing.T) {
		t.Parallel()

		g, err := NewGrid(4, 4)
		require.NoError(t, err)

		err = g.Place(NewPattern(Glider), 2, 2)
		require.ErrorIs(t, errors.Cause(err), ErrInvalidGrid)
		require.Zero(t, g.CountLivingCells(), "a failed placement must not write any cell")
	})

	t.Run("custom pattern", func(t *testing.T) {
		t.Parallel()

		g, err := NewGrid(5, 5)
		require.NoError(t, err)

		p := CustomPattern([]Cell{{0, 0}, {1, 1}})
		require.Equal(t, Custom, p.Kind)
		require.NoError(t, g.Place(p, 1, 1))
		require.ElementsMatch(t, []Cell{{1, 1}, {2, 2}}, g.LiveCells())
	})
}

func TestResetWithInterestingPatterns(t *testing.T) {
	t.Parallel()

	config := utils.DefaultConfig()
	config.RandomDensity = 0

	g, err := NewGrid(30, 20)
	require.NoError(t, err)
	g.Set(0, 0, true)

	g.ResetWithInterestingPatterns(config)
	require.False(t, g.Get(0, 0), "reset must clear earlier state")
	require.Positive(t, g.CountLivingCells(), "seeding must place pattern cells even with zero random density")
}
