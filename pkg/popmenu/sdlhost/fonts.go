package sdlhost

import (
	"errors"
	"fmt"
	"os"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var errNoFont = errors.New("no font configured: set Options.FontPath, Theme.FontPath or FALLBACK_FONT")

type fontsManager struct {
	RowFont     *ttf.Font
	TriggerFont *ttf.Font
}

var Fonts fontsManager

// CalculateFontSizeForResolution scales a font size designed for a 1024 wide screen.
func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// damp the growth above 1x
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	if scaled := int(float32(baseSize) * scaleFactor); scaled > 0 {
		return scaled
	}
	return 1
}

func initFonts(data []byte, paths []string, size int) error {
	screenWidth := GetWindow().GetWidth()
	fontSize := CalculateFontSizeForResolution(size, screenWidth)

	open := func() (*ttf.Font, error) {
		if len(data) > 0 {
			return LoadFontBytes(data, fontSize)
		}
		return loadFont(paths, fontSize)
	}

	row, err := open()
	if err != nil {
		return err
	}
	trigger, err := open()
	if err != nil {
		row.Close()
		return err
	}

	Fonts = fontsManager{RowFont: row, TriggerFont: trigger}
	return nil
}

// loadFont opens the first usable path.
func loadFont(paths []string, size int) (*ttf.Font, error) {
	var lastErr error = errNoFont
	for _, path := range paths {
		if path == "" {
			continue
		}
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font, nil
		}
		internal.GetInternalLogger().Debug("Failed to load font, trying next", "path", path, "error", err)
		lastErr = fmt.Errorf("failed to load font %q: %w", path, err)
	}
	return nil, lastErr
}

// LoadFontBytes opens a font embedded in the application binary.
func LoadFontBytes(data []byte, size int) (*ttf.Font, error) {
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create RW from font data: %w", err)
	}
	font, err := ttf.OpenFontRW(rw, 1, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load font data: %w", err)
	}
	return font, nil
}

func fontCandidates(optionPath string) []string {
	return []string{optionPath, GetTheme().FontPath, os.Getenv("FALLBACK_FONT")}
}

func closeFonts() {
	if Fonts.RowFont != nil {
		Fonts.RowFont.Close()
	}
	if Fonts.TriggerFont != nil {
		Fonts.TriggerFont.Close()
	}
	Fonts = fontsManager{}
}
