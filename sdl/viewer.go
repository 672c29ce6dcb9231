// Package sdl renders the board in a live window. It is optional glue: the
// simulation itself never imports it, the run loop pushes grids in.
//
// SDL requires its calls to happen on one OS thread; callers should
// runtime.LockOSThread before creating a Viewer and keep rendering from
// that goroutine.
package sdl

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"golife/model"
)

const windowTitle = "Game of Life"

// Viewer owns the SDL window and renderer for one session.
type Viewer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
}

// NewViewer opens a window sized to the grid dimensions times scale.
func NewViewer(width, height, scale int) (*Viewer, error) {
	if scale < 1 {
		scale = 1
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "[NewViewer] failed to init SDL")
	}

	window, err := sdl.CreateWindow(
		windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width*scale), int32(height*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "[NewViewer] failed to create window")
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "[NewViewer] failed to create renderer")
	}

	return &Viewer{
		window:   window,
		renderer: renderer,
		scale:    int32(scale),
	}, nil
}

// Render draws the grid: black background, white live cells.
func (v *Viewer) Render(g *model.Grid) {
	_ = v.renderer.SetDrawColor(0, 0, 0, 255)
	_ = v.renderer.Clear()

	_ = v.renderer.SetDrawColor(255, 255, 255, 255)
	for _, c := range g.LiveCells() {
		_ = v.renderer.FillRect(&sdl.Rect{
			X: int32(c.X) * v.scale,
			Y: int32(c.Y) * v.scale,
			W: v.scale,
			H: v.scale,
		})
	}

	v.renderer.Present()
}

// PollQuit drains pending window events and reports whether the user asked
// to quit (window close or ESC).
func (v *Viewer) PollQuit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
		}
	}
	return false
}

// Close tears down the renderer, window and SDL itself.
func (v *Viewer) Close() {
	_ = v.renderer.Destroy()
	_ = v.window.Destroy()
	sdl.Quit()
}
