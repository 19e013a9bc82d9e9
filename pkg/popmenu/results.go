package popmenu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyShowing     = errors.New("menu is already showing")
	ErrNoHostContainer    = errors.New("no host container for trigger")
	ErrDegenerateGeometry = errors.New("menu has zero area")
	ErrInvalidConfig      = errors.New("invalid menu config")
	ErrNotShowing         = errors.New("menu is not showing")
	ErrItemOutOfRange     = errors.New("menu item index out of range")
)

// AnchorCorner selects which corner of the trigger the menu is placed against.
type AnchorCorner int

const (
	// AnchorTopLeft puts the menu above the trigger, right edges aligned.
	AnchorTopLeft AnchorCorner = iota
	// AnchorBottomLeft puts the menu below the trigger, right edges aligned.
	AnchorBottomLeft
	// AnchorTopRight puts the menu above the trigger, left edges aligned.
	AnchorTopRight
	// AnchorBottomRight puts the menu below the trigger, left edges aligned.
	AnchorBottomRight
)

var anchorNames = map[AnchorCorner]string{
	AnchorTopLeft:     "top_left",
	AnchorBottomLeft:  "bottom_left",
	AnchorTopRight:    "top_right",
	AnchorBottomRight: "bottom_right",
}

func (a AnchorCorner) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AnchorCorner(%d)", int(a))
}

func (a AnchorCorner) Valid() bool {
	_, ok := anchorNames[a]
	return ok
}

// IsTop reports whether the menu opens above the trigger.
func (a AnchorCorner) IsTop() bool {
	return a == AnchorTopLeft || a == AnchorTopRight
}

// IsLeft reports whether the menu extends to the left of the trigger.
func (a AnchorCorner) IsLeft() bool {
	return a == AnchorTopLeft || a == AnchorBottomLeft
}

func (a AnchorCorner) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: unknown anchor %d", ErrInvalidConfig, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText accepts the snake_case names as well as camel case ("bottomLeft").
func (a *AnchorCorner) UnmarshalText(text []byte) error {
	raw := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(string(text)), "-", "_"))
	for corner, name := range anchorNames {
		if raw == name || raw == strings.ReplaceAll(name, "_", "") {
			*a = corner
			return nil
		}
	}
	return fmt.Errorf("%w: unknown anchor %q", ErrInvalidConfig, string(text))
}

// MenuState is the lifecycle state of a MenuController.
type MenuState int32

const (
	MenuStateHidden MenuState = iota
	MenuStateShowing
	MenuStateVisible
	MenuStateHiding
)

func (s MenuState) String() string {
	switch s {
	case MenuStateHidden:
		return "hidden"
	case MenuStateShowing:
		return "showing"
	case MenuStateVisible:
		return "visible"
	case MenuStateHiding:
		return "hiding"
	}
	return fmt.Sprintf("MenuState(%d)", int32(s))
}

// IsUp reports whether the menu is attached and accepting input.
func (s MenuState) IsUp() bool {
	return s == MenuStateShowing || s == MenuStateVisible
}
