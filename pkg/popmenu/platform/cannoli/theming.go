package cannoli

import (
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/sdlhost"
)

func InitCannoliTheme(fontPath string) sdlhost.Theme {
	return sdlhost.Theme{
		BackgroundColor:      sdlhost.HexToColor(0xFFFFFF),
		TriggerColor:         sdlhost.HexToColor(0x008080),
		TriggerTextColor:     sdlhost.HexToColor(0xFFFFFF),
		MenuColor:            sdlhost.HexToColor(0x1E2329),
		TextColor:            sdlhost.HexToColor(0xFFFFFF),
		HighlightColor:       sdlhost.HexToColor(0x008080),
		HighlightedTextColor: sdlhost.HexToColor(0x000000),
		SeparatorColor:       sdlhost.HexToColor(0x3A3F45),
		ShadowColor:          sdlhost.HexToColor(0x000000),
		MaskColor:            sdlhost.HexToColor(0x000000),
		FontPath:             fontPath,
	}
}
