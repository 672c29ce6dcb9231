package model

import "sync"

// GridPool recycles next-generation buffers so long simulation runs do not
// allocate a fresh grid per step.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resetting it to the given dimensions.
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put returns a grid to the pool, clearing its state.
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}

// GridToPool returns a grid to the pool for reuse; a nil pool is a no-op.
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil {
		return
	}

	pool.Put(grid)
}
