package model

import (
	"github.com/pkg/errors"

	"golife/utils"
)

// PatternKind identifies one of the well-known seed patterns.
type PatternKind int

const (
	Block PatternKind = iota
	Blinker
	Glider
	Custom
)

func (k PatternKind) String() string {
	switch k {
	case Block:
		return "block"
	case Blinker:
		return "blinker"
	case Glider:
		return "glider"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// Pattern is a named set of live cells relative to a (0,0) origin.
type Pattern struct {
	Kind  PatternKind
	Cells []Cell
}

// NewPattern returns the canonical cell list for a built-in pattern kind.
func NewPattern(kind PatternKind) Pattern {
	switch kind {
	case Block:
		return Pattern{Kind: Block, Cells: []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
	case Blinker:
		return Pattern{Kind: Blinker, Cells: []Cell{{0, 0}, {1, 0}, {2, 0}}}
	case Glider:
		return Pattern{Kind: Glider, Cells: []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}}
	default:
		return Pattern{Kind: Custom}
	}
}

// CustomPattern wraps an explicit cell list.
func CustomPattern(cells []Cell) Pattern {
	return Pattern{Kind: Custom, Cells: cells}
}

// Place writes the pattern's live cells at the given origin. Every
// translated cell must land inside the grid; nothing is written when any
// cell falls outside.
func (g *Grid) Place(p Pattern, startX, startY int) error {
	for _, c := range p.Cells {
		x, y := startX+c.X, startY+c.Y
		if x < 0 || x >= g.width || y < 0 || y >= g.height {
			return errors.Wrapf(ErrInvalidGrid,
				"[Place] %s cell (%d,%d) outside %dx%d grid", p.Kind, x, y, g.width, g.height)
		}
	}

	for _, c := range p.Cells {
		g.Set(startX+c.X, startY+c.Y, true)
	}
	return nil
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	for _, c := range NewPattern(Glider).Cells {
		g.Set(startX+c.X, startY+c.Y, true)
	}
}

// AddOscillator adds a blinker oscillator pattern
func (g *Grid) AddOscillator(startX, startY int) {
	for _, c := range NewPattern(Blinker).Cells {
		g.Set(startX+c.X, startY+c.Y, true)
	}
}

// ResetWithInterestingPatterns clears the grid and adds various interesting patterns
func (g *Grid) ResetWithInterestingPatterns(config utils.Config) {
	g.Clear()

	// Add some simple patterns
	if g.width >= 10 && g.height >= 10 {
		// Add some gliders
		g.AddGlider(5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(g.width-8, 5)
		}

		// Add oscillators
		g.AddOscillator(g.width/4, g.height/4)
		if g.width >= 30 {
			g.AddOscillator(3*g.width/4, 3*g.height/4)
		}
	}

	// Add random life using configurable density
	g.Randomize(config.RandomDensity)
}
