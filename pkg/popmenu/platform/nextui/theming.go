package nextui

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/sdlhost"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	// NextValPathEnvVar points at a static nextval dump, used off device.
	NextValPathEnvVar = "NEXTVAL_PATH"

	nextValExec = "/mnt/SDCARD/.system/tg5040/bin/nextval.elf"
)

// NextVal is the theme dump printed by the NextUI nextval tool.
type NextVal struct {
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	Color3   string `json:"color3"`
	Color4   string `json:"color4"`
	Color5   string `json:"color5"`
	Color6   string `json:"color6"`
	BGColor  string `json:"bgcolor"`
	Font     int    `json:"font"`
	FontPath string `json:"fontpath"`
}

var defaultTheme = sdlhost.Theme{
	BackgroundColor:      sdlhost.HexToColor(0x000000),
	TriggerColor:         sdlhost.HexToColor(0x9B2257),
	TriggerTextColor:     sdlhost.HexToColor(0xFFFFFF),
	MenuColor:            sdlhost.HexToColor(0x1E2329),
	TextColor:            sdlhost.HexToColor(0xFFFFFF),
	HighlightColor:       sdlhost.HexToColor(0xFFFFFF),
	HighlightedTextColor: sdlhost.HexToColor(0x000000),
	SeparatorColor:       sdlhost.HexToColor(0x3A3F45),
	ShadowColor:          sdlhost.HexToColor(0x000000),
	MaskColor:            sdlhost.HexToColor(0x000000),
}

// InitNextUITheme reads the device theme, or NEXTVAL_PATH when set.
func InitNextUITheme() sdlhost.Theme {
	var nv *NextVal
	var err error

	if path := os.Getenv(NextValPathEnvVar); path != "" {
		nv, err = InitStaticNextVal(path)
	} else {
		nv, err = loadNextVal()
	}

	if err != nil {
		return defaultTheme
	}

	return ThemeFromNextVal(nv)
}

func ThemeFromNextVal(nv *NextVal) sdlhost.Theme {
	theme := defaultTheme
	theme.HighlightColor = parseHexColor(nv.Color1)
	theme.TriggerColor = parseHexColor(nv.Color2)
	theme.TriggerTextColor = parseHexColor(nv.Color3)
	theme.TextColor = parseHexColor(nv.Color4)
	theme.HighlightedTextColor = parseHexColor(nv.Color5)
	theme.SeparatorColor = parseHexColor(nv.Color6)
	theme.BackgroundColor = parseHexColor(nv.BGColor)
	theme.FontPath = nv.FontPath
	return theme
}

func InitStaticNextVal(filePath string) (*NextVal, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return parseNextVal(data)
}

func parseNextVal(data []byte) (*NextVal, error) {
	var nextval NextVal
	if err := json.Unmarshal(data, &nextval); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	return &nextval, nil
}

func loadNextVal() (*NextVal, error) {
	output, err := exec.Command(nextValExec).Output()
	if err != nil {
		internal.GetInternalLogger().Error("Error executing command!", "error", err)
		return nil, err
	}

	nextval, err := parseNextVal([]byte(strings.TrimSpace(string(output))))
	if err != nil {
		internal.GetInternalLogger().Error("Error parsing nextval output", "error", err)
		return nil, err
	}
	return nextval, nil
}

// parseHexColor falls back to red so a broken theme is visible.
func parseHexColor(hexStr string) sdl.Color {
	hexStr = strings.TrimPrefix(strings.TrimPrefix(hexStr, "0x"), "#")

	hex, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return sdl.Color{R: 255, A: 255}
	}
	return sdlhost.HexToColor(uint32(hex))
}
