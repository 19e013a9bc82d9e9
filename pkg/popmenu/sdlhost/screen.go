package sdlhost

import (
	"slices"
	"time"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

const frameDelay = 16

// Panel groups buttons under a common origin.
type Panel struct {
	parent popmenu.Node
	origin popmenu.Point
}

func NewPanel(parent popmenu.Node, origin popmenu.Point) *Panel {
	return &Panel{parent: parent, origin: origin}
}

func (p *Panel) Parent() popmenu.Node {
	return p.parent
}

func (p *Panel) Origin() popmenu.Point {
	return p.origin
}

// Button is a tappable trigger. Frame is in its parent's space.
type Button struct {
	ID     string
	Title  string
	Frame  popmenu.Rect
	OnTap  func(button *Button)
	parent popmenu.Node
}

func NewButton(id, title string, parent popmenu.Node, frame popmenu.Rect) *Button {
	return &Button{ID: id, Title: title, Frame: frame, parent: parent}
}

func (b *Button) Parent() popmenu.Node {
	return b.parent
}

func (b *Button) TriggerID() string {
	return b.ID
}

// Screen is the window level Container. It owns the frame loop that drives menu animations.
type Screen struct {
	renderer    *sdl.Renderer
	window      *Window
	animator    *popmenu.FrameAnimator
	input       *InputMapping
	rows        *RowRenderer
	rowRenderer popmenu.RowRenderer

	buttons     []*Button
	overlays    []*popmenu.Overlay
	controllers []*popmenu.MenuController

	pressed *popmenu.Overlay
	running atomic.Bool
}

// NewScreen must be called after Init.
func NewScreen() *Screen {
	w := GetWindow()
	rows := NewRowRenderer(w.Renderer, Fonts.RowFont)
	return &Screen{
		renderer:    w.Renderer,
		window:      w,
		animator:    popmenu.NewFrameAnimator(),
		input:       GetInputMapping(),
		rows:        rows,
		rowRenderer: rows,
	}
}

func (s *Screen) Parent() popmenu.Node {
	return nil
}

func (s *Screen) Bounds() popmenu.Rect {
	return popmenu.Rect{Width: float64(s.window.GetWidth()), Height: float64(s.window.GetHeight())}
}

func (s *Screen) FrameOf(triggerID string) (popmenu.Rect, bool) {
	for _, b := range s.buttons {
		if b.ID == triggerID {
			return popmenu.ConvertRect(b.Frame, b.parent, s)
		}
	}
	return popmenu.Rect{}, false
}

func (s *Screen) Attach(overlay *popmenu.Overlay) {
	if slices.Contains(s.overlays, overlay) {
		return
	}
	s.overlays = append(s.overlays, overlay)
}

func (s *Screen) Detach(overlay *popmenu.Overlay) {
	s.overlays = slices.DeleteFunc(s.overlays, func(o *popmenu.Overlay) bool { return o == overlay })
	if s.pressed == overlay {
		s.pressed = nil
	}
}

func (s *Screen) AddButton(button *Button) {
	s.buttons = append(s.buttons, button)
}

// RemoveButton drops the button. Menus anchored to it keep their last frame.
func (s *Screen) RemoveButton(id string) {
	s.buttons = slices.DeleteFunc(s.buttons, func(b *Button) bool { return b.ID == id })
}

// SetRowRenderer replaces the SDL row renderer. Pass nil to restore it.
func (s *Screen) SetRowRenderer(r popmenu.RowRenderer) {
	if r == nil {
		r = s.rows
	}
	s.rowRenderer = r
}

// NewMenuController creates a controller animated by this screen's frame loop.
func (s *Screen) NewMenuController(model *popmenu.MenuModel) *popmenu.MenuController {
	options := popmenu.DefaultControllerOptions()
	options.Animator = s.animator
	c := popmenu.NewMenuController(model, options)
	s.controllers = append(s.controllers, c)
	return c
}

// Run processes events and draws until Stop is called or the window is closed.
func (s *Screen) Run() {
	s.running.Store(true)
	last := time.Now()

	for s.running.Load() {
		for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
			s.handle(s.input.translate(e))
		}

		now := time.Now()
		s.animator.Advance(now.Sub(last))
		last = now

		s.render()
		sdl.Delay(frameDelay)
	}

	for _, c := range s.controllers {
		c.Close()
	}
	s.rows.destroy()
}

func (s *Screen) Stop() {
	s.running.Store(false)
}

func (s *Screen) handle(e event) {
	switch e.kind {
	case eventQuit:
		s.Stop()
	case eventPress:
		s.press(e.point)
	case eventRelease:
		s.release(e.point)
	case eventDismiss:
		if top := s.topmost(popmenu.OverlayMenu); top != nil {
			top.Handler.Hide()
		}
	case eventResize:
		internal.GetInternalLogger().Debug("Window resized", "bounds", s.Bounds())
		for _, c := range s.controllers {
			if c.State().IsUp() {
				c.Relayout()
			}
		}
	}
}

func (s *Screen) topmost(kind popmenu.OverlayKind) *popmenu.Overlay {
	for i := len(s.overlays) - 1; i >= 0; i-- {
		if o := s.overlays[i]; o.Kind == kind && !o.Exiting {
			return o
		}
	}
	return nil
}

func (s *Screen) press(p popmenu.Point) {
	s.clearPressed()
	top := s.topmostInteractive()
	if top == nil {
		return
	}
	if index, ok := top.RowAt(p); ok {
		top.Highlighted = index
		s.pressed = top
	}
}

func (s *Screen) topmostInteractive() *popmenu.Overlay {
	for i := len(s.overlays) - 1; i >= 0; i-- {
		if !s.overlays[i].Exiting {
			return s.overlays[i]
		}
	}
	return nil
}

func (s *Screen) clearPressed() {
	if s.pressed != nil {
		s.pressed.Highlighted = -1
		s.pressed = nil
	}
}

// release routes a tap to the topmost overlay under p, falling back to the buttons.
// Overlays that are exiting let taps through.
func (s *Screen) release(p popmenu.Point) {
	s.clearPressed()
	logger := internal.GetInternalLogger()

	for i := len(s.overlays) - 1; i >= 0; i-- {
		o := s.overlays[i]
		if o.Exiting {
			continue
		}
		switch o.Kind {
		case popmenu.OverlayMenu:
			index, ok := o.RowAt(p)
			if !ok {
				if o.DrawnFrame().Contains(p) {
					return
				}
				continue
			}
			if err := o.Handler.Select(index); err != nil {
				logger.Debug("Row tap ignored", "index", index, "error", err)
			}
			return
		case popmenu.OverlayMask:
			if o.Frame.Contains(p) && o.Handler.TapOutside() {
				return
			}
		}
	}

	for i := len(s.buttons) - 1; i >= 0; i-- {
		b := s.buttons[i]
		frame, ok := s.FrameOf(b.ID)
		if ok && frame.Contains(p) {
			if b.OnTap != nil {
				b.OnTap(b)
			}
			return
		}
	}
}

func (s *Screen) render() {
	theme := GetTheme()
	bg := theme.BackgroundColor
	s.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	s.renderer.Clear()

	for _, b := range s.buttons {
		s.renderButton(b)
	}

	for _, o := range s.overlays {
		switch o.Kind {
		case popmenu.OverlayMask:
			s.renderMask(o)
		case popmenu.OverlayMenu:
			s.renderMenu(o)
		}
	}

	s.renderer.Present()
}
