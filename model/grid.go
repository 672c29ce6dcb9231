package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"golife/rules"
)

// ErrInvalidGrid reports malformed grid construction input: non-positive
// dimensions, ragged rows, or out-of-bounds pattern coordinates.
var ErrInvalidGrid = errors.New("invalid grid")

// Cell is a single grid position.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid represents the game board
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid of dead cells with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidGrid, "[NewGrid] dimensions must be positive, got %dx%d", width, height)
	}

	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// NewGridFromRows creates a grid from row-major cell states. Every row must
// have the same length; the input is copied, never aliased.
func NewGridFromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "[NewGridFromRows] grid must have at least one row and one column")
	}

	width := len(rows[0])
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidGrid,
				"[NewGridFromRows] row %d has length %d, expected %d", y, len(row), width)
		}
		cells[y] = make([]bool, width)
		copy(cells[y], row)
	}

	return &Grid{
		width:  width,
		height: len(rows),
		cells:  cells,
	}, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			// Clear existing cells
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y][x] = false
		}
	}
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]bool, g.height)
	for y := range g.cells {
		cells[y] = make([]bool, g.width)
		copy(cells[y], g.cells[y])
	}
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Equal reports whether both grids have identical dimensions and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountNeighbors counts living cells in the 8-cell Moore neighborhood.
// The boundary is fixed: cells beyond the grid edge are treated as dead.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	// Calculate bounds once using efficient integer min/max
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	// Count neighbors in the bounded region
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// NextGeneration computes the next generation of the grid under the given
// rule. The receiver is never written to: the result is a fresh grid (or a
// pooled one when pool is non-nil) of identical dimensions, so callers can
// keep earlier generations for history or replay. Rows are partitioned
// across workers; each cell reads only the prior snapshot, so partitions
// never conflict.
func (g *Grid) NextGeneration(rule rules.RuleFunc, pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = &Grid{}
		next.Reset(g.width, g.height)
	}

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					if rule(g.CountNeighbors(x, y), g.cells[y][x]) {
						next.cells[y][x] = true
					}
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes.
	_ = eg.Wait()

	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// LiveCells returns the coordinates of all living cells in row-major order.
func (g *Grid) LiveCells() []Cell {
	var cells []Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// GetGridHash returns an efficient MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Grid) InjectRandomLife(count int) {
	for i := 0; i < count; i++ {
		g.Set(rand.Intn(g.width), rand.Intn(g.height), true)
	}
}

// Randomize fills the grid with random living cells
func (g *Grid) Randomize(density float64) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.Set(x, y, rand.Float64() < density)
		}
	}
}
