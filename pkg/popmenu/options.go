package popmenu

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// MenuConfig holds the layout and styling knobs of a menu.
// The menu height is never configured directly; it is derived from the item count.
type MenuConfig struct {
	Anchor         AnchorCorner `json:"anchor" toml:"anchor"`
	Width          float64      `json:"width" toml:"width"`
	RowHeight      float64      `json:"row_height" toml:"row_height"`
	Spacing        float64      `json:"spacing" toml:"spacing"` // Gap between trigger and menu
	CornerRadius   float64      `json:"corner_radius" toml:"corner_radius"`
	HasShadow      bool         `json:"has_shadow" toml:"has_shadow"`
	HasDismissMask bool         `json:"has_dismiss_mask" toml:"has_dismiss_mask"` // Translucent overlay that hides the menu when tapped
	TitleInsets    Insets       `json:"title_insets" toml:"title_insets"`
}

func DefaultMenuConfig() MenuConfig {
	return MenuConfig{
		Anchor:         AnchorBottomLeft,
		Width:          160,
		RowHeight:      44,
		Spacing:        4,
		CornerRadius:   8,
		HasShadow:      true,
		HasDismissMask: false,
		TitleInsets:    Insets{Left: 16, Right: 16},
	}
}

// Validate checks the config can produce a displayable menu.
func (c MenuConfig) Validate() error {
	if !positiveFinite(c.Width) {
		return fmt.Errorf("%w: width %v", ErrDegenerateGeometry, c.Width)
	}
	if !positiveFinite(c.RowHeight) {
		return fmt.Errorf("%w: row height %v", ErrDegenerateGeometry, c.RowHeight)
	}
	if !(c.CornerRadius >= 0) || math.IsInf(c.CornerRadius, 0) {
		return fmt.Errorf("%w: corner radius %v", ErrInvalidConfig, c.CornerRadius)
	}
	if math.IsNaN(c.Spacing) || math.IsInf(c.Spacing, 0) {
		return fmt.Errorf("%w: spacing %v", ErrInvalidConfig, c.Spacing)
	}
	if !c.Anchor.Valid() {
		return fmt.Errorf("%w: anchor %d", ErrInvalidConfig, int(c.Anchor))
	}
	return nil
}

// positiveFinite rejects NaN, which fails every comparison.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

type ConfigFormat string

const (
	ConfigFormatTOML ConfigFormat = "toml"
	ConfigFormatJSON ConfigFormat = "json"
)

// LoadConfig reads a TOML or JSON file, chosen by extension, on top of DefaultMenuConfig.
func LoadConfig(path string) (MenuConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MenuConfig{}, fmt.Errorf("error reading config file: %w", err)
	}

	format := ConfigFormat(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	return ParseConfig(data, format)
}

// ParseConfig decodes data on top of DefaultMenuConfig and validates the result.
func ParseConfig(data []byte, format ConfigFormat) (MenuConfig, error) {
	cfg := DefaultMenuConfig()

	var err error
	switch format {
	case ConfigFormatTOML:
		err = toml.Unmarshal(data, &cfg)
	case ConfigFormatJSON:
		err = json.Unmarshal(data, &cfg)
	default:
		return MenuConfig{}, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, format)
	}
	if err != nil {
		return MenuConfig{}, fmt.Errorf("error parsing %s config: %w", format, err)
	}

	if err := cfg.Validate(); err != nil {
		return MenuConfig{}, err
	}
	return cfg, nil
}
