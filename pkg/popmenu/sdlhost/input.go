package sdlhost

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const MappingPathEnvVar = "INPUT_MAPPING_PATH"

var inputMappingBytes []byte

func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

// InputMapping lists the keys that dismiss an open menu.
type InputMapping struct {
	DismissKeys map[sdl.Keycode]bool
}

type mappingFile struct {
	DismissKeys []int `json:"dismiss_keys"`
}

func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		DismissKeys: map[sdl.Keycode]bool{
			sdl.K_ESCAPE:    true,
			sdl.K_AC_BACK:   true,
			sdl.K_BACKSPACE: true,
		},
	}
}

// GetInputMapping prefers bytes set with SetInputMappingBytes, then INPUT_MAPPING_PATH, then the defaults.
func GetInputMapping() *InputMapping {
	logger := internal.GetInternalLogger()

	if inputMappingBytes != nil {
		mapping, err := LoadInputMappingFromBytes(inputMappingBytes)
		if err == nil {
			return mapping
		}
		logger.Error("Failed to parse input mapping bytes, using default", "error", err)
	}

	if path := os.Getenv(MappingPathEnvVar); path != "" {
		mapping, err := LoadInputMappingFromJSON(path)
		if err == nil {
			return mapping
		}
		logger.Error("Failed to load input mapping, using default", "path", path, "error", err)
	}

	return DefaultInputMapping()
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading input mapping: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var file mappingFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing input mapping: %w", err)
	}

	mapping := &InputMapping{DismissKeys: make(map[sdl.Keycode]bool, len(file.DismissKeys))}
	for _, key := range file.DismissKeys {
		mapping.DismissKeys[sdl.Keycode(key)] = true
	}
	return mapping, nil
}

type eventKind int

const (
	eventNone eventKind = iota
	eventPress
	eventRelease
	eventDismiss
	eventResize
	eventQuit
)

type event struct {
	kind  eventKind
	point popmenu.Point
}

// translate turns an SDL event into a host event. Touch input arrives as the mouse events SDL synthesises from it.
func (m *InputMapping) translate(e sdl.Event) event {
	switch ev := e.(type) {
	case *sdl.QuitEvent:
		return event{kind: eventQuit}
	case *sdl.MouseButtonEvent:
		if ev.Button != sdl.BUTTON_LEFT {
			return event{}
		}
		p := popmenu.Point{X: float64(ev.X), Y: float64(ev.Y)}
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			return event{kind: eventPress, point: p}
		}
		return event{kind: eventRelease, point: p}
	case *sdl.KeyboardEvent:
		if ev.Type == sdl.KEYDOWN && m.DismissKeys[ev.Keysym.Sym] {
			return event{kind: eventDismiss}
		}
	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_RESIZED || ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return event{kind: eventResize}
		}
	}
	return event{}
}
