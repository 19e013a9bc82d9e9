package sdlhost

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
)

type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string
}

var window *Window

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func initWindow(title string, width, height int32) (*Window, error) {
	if width <= 0 {
		width = envSize("WINDOW_WIDTH", defaultWindowWidth)
	}
	if height <= 0 {
		height = envSize("WINDOW_HEIGHT", defaultWindowHeight)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	return &Window{
		Window:   w,
		Renderer: renderer,
		Title:    title,
	}, nil
}

func (window *Window) closeWindow() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}
