// Package window handles SDL2 window and 2D renderer creation.
package window

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps the SDL2 window and its accelerated 2D renderer.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
}

// New creates a new window with a 2D renderer.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	slog.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rendererFlags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	slog.Info("window created",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"fullscreen", cfg.Fullscreen,
		"vsync", cfg.VSync,
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	slog.Info("closing window")

	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// Renderer returns the 2D renderer.
func (w *Window) Renderer() *sdl.Renderer {
	return w.renderer
}

// Present flips the back buffer to the screen.
func (w *Window) Present() {
	w.renderer.Present()
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
