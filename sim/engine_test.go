package sim

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"golife/events"
	"golife/model"
	"golife/rules"
)

func blinkerGrid(t *testing.T) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(7, 7)
	require.NoError(t, err)
	require.NoError(t, g.Place(model.NewPattern(model.Blinker), 2, 3))
	return g
}

func blockGrid(t *testing.T) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(6, 6)
	require.NoError(t, err)
	require.NoError(t, g.Place(model.NewPattern(model.Block), 2, 2))
	return g
}

func TestStep_IncrementsGenerationAndPreservesPrevious(t *testing.T) {
	t.Parallel()

	grid := blinkerGrid(t)
	before := grid.Clone()
	engine := NewEngine(grid, rules.ApplyConwayRules)
	require.Zero(t, engine.Generation())

	next := engine.Step()
	require.Equal(t, 1, engine.Generation())
	require.Same(t, next, engine.Grid())
	require.True(t, grid.Equal(before), "the stepped-from grid must stay intact for replay")

	engine.Step()
	require.Equal(t, 2, engine.Generation())
	require.True(t, engine.Grid().Equal(before), "blinker returns after two generations")
}

func TestRun_CompletesRequestedTurns(t *testing.T) {
	t.Parallel()

	engine := NewEngine(blinkerGrid(t), rules.ApplyConwayRules)

	final, err := engine.Run(context.Background(), 6)
	require.NoError(t, err)
	require.Equal(t, 6, engine.Generation())
	require.Same(t, final, engine.Grid())
}

func TestRun_TurnLimits(t *testing.T) {
	t.Parallel()

	t.Run("negative turn count", func(t *testing.T) {
		t.Parallel()

		engine := NewEngine(blockGrid(t), rules.ApplyConwayRules)
		_, err := engine.Run(context.Background(), -1)
		require.Error(t, err)
	})

	t.Run("over the generation cap", func(t *testing.T) {
		t.Parallel()

		engine := NewEngine(blockGrid(t), rules.ApplyConwayRules)
		_, err := engine.Run(context.Background(), MaxGenerations+1)
		require.ErrorIs(t, errors.Cause(err), ErrTooManyGenerations)
		require.Zero(t, engine.Generation(), "the cap must be enforced before any step")
	})

	t.Run("zero turns is a no-op", func(t *testing.T) {
		t.Parallel()

		engine := NewEngine(blockGrid(t), rules.ApplyConwayRules)
		_, err := engine.Run(context.Background(), 0)
		require.NoError(t, err)
		require.Zero(t, engine.Generation())
	})
}

func TestRun_EmitsEvents(t *testing.T) {
	t.Parallel()

	ch := make(chan events.Event, 16)
	engine := NewEngine(blinkerGrid(t), rules.ApplyConwayRules, WithEvents(ch))

	_, err := engine.Run(context.Background(), 4)
	require.NoError(t, err)
	close(ch)

	var turnsSeen []int
	var final *events.FinalTurnComplete
	for ev := range ch {
		switch e := ev.(type) {
		case events.TurnComplete:
			turnsSeen = append(turnsSeen, e.CompletedTurns())
		case events.FinalTurnComplete:
			final = &e
		}
	}

	require.Equal(t, []int{1, 2, 3, 4}, turnsSeen)
	require.NotNil(t, final, "a finished run must emit FinalTurnComplete")
	require.Equal(t, 4, final.Turn)
	require.Len(t, final.Alive, 3, "blinker still has three cells after an even number of turns")
}

func TestRun_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan events.Event, 4)
	engine := NewEngine(blinkerGrid(t), rules.ApplyConwayRules, WithEvents(ch))

	_, err := engine.Run(ctx, 100)
	require.Error(t, err)
	require.ErrorIs(t, errors.Cause(err), context.Canceled)
	require.Zero(t, engine.Generation())

	close(ch)
	var quitSeen bool
	for ev := range ch {
		if sc, ok := ev.(events.StateChange); ok && sc.NewState == events.Quitting {
			quitSeen = true
		}
	}
	require.True(t, quitSeen, "cancellation must emit a Quitting state change")
}

func TestRun_PeriodicAliveCellsCount(t *testing.T) {
	t.Parallel()

	const turns = 5000

	ch := make(chan events.Event, turns+64)
	engine := NewEngine(blockGrid(t), rules.ApplyConwayRules,
		WithEvents(ch),
		WithReportInterval(time.Millisecond),
	)

	// Enough turns that the 1ms report ticker fires mid-run.
	_, err := engine.Run(context.Background(), turns)
	require.NoError(t, err)
	close(ch)

	var counts int
	for ev := range ch {
		if acc, ok := ev.(events.AliveCellsCount); ok {
			require.Equal(t, 4, acc.Count, "a block holds four cells forever")
			counts++
		}
	}
	require.Positive(t, counts)
}

func TestIsStagnant(t *testing.T) {
	t.Parallel()

	t.Run("still life detected after two steps", func(t *testing.T) {
		t.Parallel()

		engine := NewEngine(blockGrid(t), rules.ApplyConwayRules)
		require.False(t, engine.IsStagnant())

		engine.Step()
		require.False(t, engine.IsStagnant(), "one observation is not enough to call a cycle")

		engine.Step()
		require.True(t, engine.IsStagnant())
	})

	t.Run("period-2 oscillator detected", func(t *testing.T) {
		t.Parallel()

		engine := NewEngine(blinkerGrid(t), rules.ApplyConwayRules)
		engine.Step()
		engine.Step()
		require.False(t, engine.IsStagnant(), "two distinct phases seen so far")

		engine.Step()
		require.True(t, engine.IsStagnant())
	})

	t.Run("active pattern is not stagnant", func(t *testing.T) {
		t.Parallel()

		g, err := model.NewGrid(20, 20)
		require.NoError(t, err)
		require.NoError(t, g.Place(model.NewPattern(model.Glider), 3, 3))

		engine := NewEngine(g, rules.ApplyConwayRules)
		for i := 0; i < 4; i++ {
			engine.Step()
			require.False(t, engine.IsStagnant())
		}
	})
}

func TestReset(t *testing.T) {
	t.Parallel()

	engine := NewEngine(blockGrid(t), rules.ApplyConwayRules)
	engine.Step()
	engine.Step()
	require.Equal(t, 2, engine.Generation())
	require.True(t, engine.IsStagnant())

	fresh := blinkerGrid(t)
	engine.Reset(fresh)
	require.Zero(t, engine.Generation())
	require.Same(t, fresh, engine.Grid())
	require.False(t, engine.IsStagnant())
}
