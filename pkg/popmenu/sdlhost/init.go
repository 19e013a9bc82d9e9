package sdlhost

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

type Options struct {
	WindowTitle       string
	WindowWidth       int32 // Falls back to WINDOW_WIDTH, then 1024
	WindowHeight      int32 // Falls back to WINDOW_HEIGHT, then 768
	Theme             *Theme
	FontPath          string
	FontBytes         []byte // Embedded TTF, preferred over FontPath
	FontSize          int
	LogFilename       string
	InputMappingBytes []byte
}

func DefaultOptions(title string) Options {
	return Options{
		WindowTitle: title,
		FontSize:    18,
	}
}

// Init initializes SDL, opens the window and loads fonts.
// Must be called before NewScreen!
func Init(options Options) error {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if os.Getenv("POPMENU_DEBUG") != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	if options.Theme != nil {
		SetTheme(*options.Theme)
	}

	if options.InputMappingBytes != nil {
		SetInputMappingBytes(options.InputMappingBytes)
	}

	if options.FontSize <= 0 {
		options.FontSize = 18
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to initialize SDL_ttf: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		internal.GetInternalLogger().Warn("SDL_image init incomplete, icons may not load", "error", err)
	}

	w, err := initWindow(options.WindowTitle, options.WindowWidth, options.WindowHeight)
	if err != nil {
		cleanup()
		return err
	}
	window = w

	if err := initFonts(options.FontBytes, fontCandidates(options.FontPath), options.FontSize); err != nil {
		cleanup()
		return err
	}

	return nil
}

// Close tidies up SDL.
// Must be called after all UI functions!
func Close() {
	cleanup()
	internal.CloseLogger()
}

func cleanup() {
	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
