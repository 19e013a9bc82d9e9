package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"
)

type Theme struct {
	BackgroundColor      sdl.Color // Screen background
	TriggerColor         sdl.Color // Button fill
	TriggerTextColor     sdl.Color // Button label
	MenuColor            sdl.Color // Menu background
	TextColor            sdl.Color // Row title
	HighlightColor       sdl.Color // Pressed row background
	HighlightedTextColor sdl.Color // Title on a pressed row
	SeparatorColor       sdl.Color // Line between rows
	ShadowColor          sdl.Color // Menu shadow, drawn at ShadowOpacity
	MaskColor            sdl.Color // Dismiss mask, drawn at the mask's opacity
	FontPath             string
}

// ShadowOpacity is the peak opacity of the menu shadow.
const ShadowOpacity = 0.15

var currentTheme = DefaultTheme()

func DefaultTheme() Theme {
	return Theme{
		BackgroundColor:      HexToColor(0xF2F2F7),
		TriggerColor:         HexToColor(0xFF3B30),
		TriggerTextColor:     HexToColor(0xFFFFFF),
		MenuColor:            HexToColor(0xFFFFFF),
		TextColor:            HexToColor(0x000000),
		HighlightColor:       HexToColor(0xE5E5EA),
		HighlightedTextColor: HexToColor(0x000000),
		SeparatorColor:       HexToColor(0xC6C6C8),
		ShadowColor:          HexToColor(0x000000),
		MaskColor:            HexToColor(0x000000),
	}
}

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}

func HexToColor(hex uint32) sdl.Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return sdl.Color{R: r, G: g, B: b, A: 255}
}

// withOpacity scales the colour's alpha by opacity in [0, 1].
func withOpacity(c sdl.Color, opacity float64) sdl.Color {
	c.A = uint8(float64(c.A) * max(0, min(1, opacity)))
	return c
}
