// Package sim drives a Game of Life session: it owns the current grid and
// the generation counter, and advances them one pure step at a time.
package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"golife/events"
	"golife/model"
	"golife/rules"
)

// MaxGenerations caps how many generations a single Run may request.
const MaxGenerations = 10_000

// ErrTooManyGenerations reports a Run request beyond MaxGenerations.
var ErrTooManyGenerations = errors.New("too many generations")

const defaultReportInterval = 2 * time.Second

// Engine evolves a grid generation by generation. Each step computes the
// next grid entirely from a snapshot of the current one; earlier grids are
// never written to, so callers may keep them for history or replay. The
// engine performs no I/O beyond its logger.
type Engine struct {
	grid       *model.Grid
	rule       rules.RuleFunc
	pool       *model.GridPool
	log        *slog.Logger
	events     chan<- events.Event
	reportTick time.Duration
	generation int
	recent     []string // state hashes of recent generations, newest last
}

// Option configures an Engine.
type Option func(*Engine)

// WithPool reuses pooled buffers for next-generation grids.
func WithPool(pool *model.GridPool) Option {
	return func(e *Engine) { e.pool = pool }
}

// WithLogger sets the logger used for per-step reporting.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithEvents attaches a channel receiving simulation events. Sends are
// blocking; the channel should be buffered or actively drained.
func WithEvents(ch chan<- events.Event) Option {
	return func(e *Engine) { e.events = ch }
}

// WithReportInterval sets how often Run emits AliveCellsCount events.
func WithReportInterval(d time.Duration) Option {
	return func(e *Engine) { e.reportTick = d }
}

// NewEngine creates an engine over an already-validated grid.
func NewEngine(grid *model.Grid, rule rules.RuleFunc, opts ...Option) *Engine {
	e := &Engine{
		grid:       grid,
		rule:       rule,
		log:        slog.Default(),
		reportTick: defaultReportInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the current generation's grid.
func (e *Engine) Grid() *model.Grid {
	return e.grid
}

// Generation returns how many steps have been applied since construction
// or the last Reset.
func (e *Engine) Generation() int {
	return e.generation
}

// Reset replaces the current grid, zeroing the generation counter and the
// stagnation history.
func (e *Engine) Reset(grid *model.Grid) {
	e.grid = grid
	e.generation = 0
	e.recent = nil
}

// Step advances the simulation by one generation and returns the new grid.
// The previous grid is left intact.
func (e *Engine) Step() *model.Grid {
	e.grid = e.grid.NextGeneration(e.rule, e.pool)
	e.generation++

	e.log.Debug("generation complete",
		slog.Int("generation", e.generation),
		slog.Int("population", e.grid.CountLivingCells()),
	)

	if e.events != nil {
		e.events <- events.TurnComplete{Turn: e.generation}
	}

	e.trackHistory()

	return e.grid
}

// maxCyclePeriod bounds the oscillator periods stagnation detection sees.
const maxCyclePeriod = 3

func (e *Engine) trackHistory() {
	e.recent = append(e.recent, e.grid.GetGridHash())
	if len(e.recent) > maxCyclePeriod+1 {
		e.recent = e.recent[1:]
	}
}

// IsStagnant reports whether the current grid repeats one of the previous
// few generations, i.e. the simulation reached a still life or a short
// oscillator (period up to maxCyclePeriod).
func (e *Engine) IsStagnant() bool {
	if len(e.recent) < 2 {
		return false
	}

	current := e.recent[len(e.recent)-1]
	for i := len(e.recent) - 2; i >= 0; i-- {
		if e.recent[i] == current {
			return true
		}
	}
	return false
}

// Run advances the simulation by turns generations, stopping early on
// context cancellation. Population reports are emitted periodically while
// running; a FinalTurnComplete event fires when all turns are done.
func (e *Engine) Run(ctx context.Context, turns int) (*model.Grid, error) {
	if turns < 0 {
		return nil, errors.Errorf("[Run] negative turn count: %d", turns)
	}
	if turns > MaxGenerations {
		return nil, errors.Wrapf(ErrTooManyGenerations, "[Run] requested %d turns, limit %d", turns, MaxGenerations)
	}

	ticker := time.NewTicker(e.reportTick)
	defer ticker.Stop()

	for i := 0; i < turns; i++ {
		select {
		case <-ctx.Done():
			if e.events != nil {
				e.events <- events.StateChange{Turn: e.generation, NewState: events.Quitting}
			}
			return e.grid, errors.Wrap(ctx.Err(), "[Run] simulation cancelled")
		case <-ticker.C:
			if e.events != nil {
				e.events <- events.AliveCellsCount{Turn: e.generation, Count: e.grid.CountLivingCells()}
			}
		default:
		}

		e.Step()
	}

	if e.events != nil {
		e.events <- events.FinalTurnComplete{Turn: e.generation, Alive: e.grid.LiveCells()}
	}

	return e.grid, nil
}
