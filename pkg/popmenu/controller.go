package popmenu

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"go.uber.org/atomic"
)

const (
	EnterDuration = 250 * time.Millisecond
	ExitDuration  = 200 * time.Millisecond

	// HiddenScale is the menu scale at the start of the entrance and the end of the exit.
	HiddenScale = 0.9
	// MaskOpacity is the dismiss mask's opacity once the menu is visible.
	MaskOpacity = 0.1
)

type ControllerOptions struct {
	Animator Animator
	Logger   *slog.Logger
}

// DefaultControllerOptions uses a private FrameAnimator, which only suits tests and hosts
// that call Advance on it through Animator().
func DefaultControllerOptions() ControllerOptions {
	return ControllerOptions{
		Animator: NewFrameAnimator(),
		Logger:   internal.GetInternalLogger(),
	}
}

// MenuController drives one menu through Hidden, Showing, Visible and Hiding.
// All methods except State must be called from the UI thread.
type MenuController struct {
	model    *MenuModel
	animator Animator
	logger   *slog.Logger

	state atomic.Int32

	// binding, valid while state != Hidden; the trigger is held by id only
	host        Container
	triggerID   string
	triggerRect Rect
	menu        *Overlay
	mask        *Overlay

	cancelAnimation func()
	unsubscribe     func()
}

func NewMenuController(model *MenuModel, options ControllerOptions) *MenuController {
	if options.Animator == nil {
		options.Animator = NewFrameAnimator()
	}
	if options.Logger == nil {
		options.Logger = internal.GetInternalLogger()
	}

	c := &MenuController{
		model:    model,
		animator: options.Animator,
		logger:   options.Logger,
	}
	c.unsubscribe = model.OnChange(c.modelChanged)
	return c
}

func (c *MenuController) State() MenuState {
	return MenuState(c.state.Load())
}

func (c *MenuController) setState(s MenuState) {
	prev := MenuState(c.state.Swap(int32(s)))
	c.logger.Debug("Menu state changed", "from", prev.String(), "to", s.String(), "trigger", c.triggerID)
}

func (c *MenuController) Model() *MenuModel {
	return c.model
}

func (c *MenuController) Animator() Animator {
	return c.animator
}

// Frame is the menu's current frame in the host's space. It reports false while Hidden.
func (c *MenuController) Frame() (Rect, bool) {
	if c.menu == nil {
		return Rect{}, false
	}
	return c.menu.Frame, true
}

// MenuOverlay is the attached menu layer, nil while Hidden.
func (c *MenuController) MenuOverlay() *Overlay {
	return c.menu
}

// MaskOverlay is the attached dismiss mask, nil while Hidden or when the mask is disabled.
func (c *MenuController) MaskOverlay() *Overlay {
	return c.mask
}

// Show attaches the menu to the trigger's host and starts the entrance.
// A nil resolver walks the trigger's ancestors with ResolveHost.
func (c *MenuController) Show(trigger Trigger, resolver HostResolver) error {
	if state := c.State(); state != MenuStateHidden {
		c.logger.Warn("Menu already showing", "state", state.String(), "trigger", c.triggerID)
		return ErrAlreadyShowing
	}

	if trigger == nil {
		return fmt.Errorf("%w: nil trigger", ErrNoHostContainer)
	}
	if resolver == nil {
		resolver = ResolveHost
	}

	host, ok := resolver(trigger)
	if !ok || host == nil {
		c.logger.Warn("No host container for menu trigger", "trigger", trigger.TriggerID())
		return fmt.Errorf("%w: trigger %q", ErrNoHostContainer, trigger.TriggerID())
	}

	triggerRect, ok := host.FrameOf(trigger.TriggerID())
	if !ok {
		c.logger.Warn("Host container does not hold menu trigger", "trigger", trigger.TriggerID())
		return fmt.Errorf("%w: trigger %q not found in host", ErrNoHostContainer, trigger.TriggerID())
	}

	if err := c.model.Validate(); err != nil {
		c.logger.Warn("Menu not shown", "trigger", trigger.TriggerID(), "error", err)
		return err
	}

	config := c.model.Config()
	frame := ComputeFrame(triggerRect, host.Bounds(), config.Anchor, config.Spacing, c.model.Size())

	c.host = host
	c.triggerID = trigger.TriggerID()
	c.triggerRect = triggerRect

	if config.HasDismissMask {
		c.mask = newMaskOverlay(host.Bounds(), c)
		host.Attach(c.mask)
	}

	c.menu = newMenuOverlay(frame, config, c.model.Items(), c)
	c.menu.Opacity = 0
	c.menu.Scale = HiddenScale
	host.Attach(c.menu)

	c.setState(MenuStateShowing)
	c.beginEnter()
	return nil
}

func (c *MenuController) beginEnter() {
	menu, mask := c.menu, c.mask
	from := c.snapshot()

	c.cancelAnimation = c.animator.Animate(EnterDuration,
		func(p float64) {
			menu.Opacity = lerp(from.opacity, 1, p)
			menu.Scale = lerp(from.scale, 1, p)
			if mask != nil {
				mask.Opacity = lerp(from.maskOpacity, MaskOpacity, p)
			}
		},
		func(finished bool) {
			if !finished {
				return
			}
			c.cancelAnimation = nil
			c.setState(MenuStateVisible)
		},
	)
}

// Hide starts the exit transition. It is a no-op while Hidden or Hiding.
// Hiding during the entrance cancels it and exits from the current values.
func (c *MenuController) Hide() {
	if !c.State().IsUp() {
		return
	}

	c.stopAnimation()
	c.setState(MenuStateHiding)
	c.menu.Exiting = true
	c.menu.Highlighted = -1
	if c.mask != nil {
		c.mask.Exiting = true
	}
	c.beginExit()
}

func (c *MenuController) beginExit() {
	menu, mask := c.menu, c.mask
	from := c.snapshot()

	c.cancelAnimation = c.animator.Animate(ExitDuration,
		func(p float64) {
			menu.Opacity = lerp(from.opacity, 0, p)
			menu.Scale = lerp(from.scale, HiddenScale, p)
			if mask != nil {
				mask.Opacity = lerp(from.maskOpacity, 0, p)
			}
		},
		func(finished bool) {
			if !finished {
				return
			}
			c.cancelAnimation = nil
			c.teardown()
		},
	)
}

// Select runs the action of row index and then hides the menu, whether or not an action is set.
// A panic raised by the action reaches the caller after the hide has been started.
func (c *MenuController) Select(index int) error {
	if !c.State().IsUp() {
		return ErrNotShowing
	}

	items := c.menu.Items
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %d of %d", ErrItemOutOfRange, index, len(items))
	}

	c.menu.Highlighted = -1
	c.logger.Debug("Menu item selected", "index", index, "title", items[index].Title, "trigger", c.triggerID)

	defer c.Hide()

	if action := items[index].Action; action != nil {
		action()
	}
	return nil
}

// TapOutside handles a tap on the dismiss mask. It reports false, leaving the menu up,
// when the mask is disabled or the menu is not up.
func (c *MenuController) TapOutside() bool {
	if c.mask == nil || !c.State().IsUp() {
		return false
	}
	c.Hide()
	return true
}

// Relayout recomputes the menu's size and position for the current items, config and host bounds.
// It runs automatically when the model changes.
func (c *MenuController) Relayout() {
	if !c.State().IsUp() {
		return
	}

	if err := c.model.Validate(); err != nil {
		c.logger.Warn("Menu can no longer be displayed, hiding", "trigger", c.triggerID, "error", err)
		c.Hide()
		return
	}

	if r, ok := c.host.FrameOf(c.triggerID); ok {
		c.triggerRect = r
	}

	config := c.model.Config()
	bounds := c.host.Bounds()

	c.menu.Config = config
	c.menu.Items = c.model.Items()
	c.menu.Highlighted = -1
	c.menu.Frame = ComputeFrame(c.triggerRect, bounds, config.Anchor, config.Spacing, c.model.Size())

	if c.mask != nil {
		c.mask.Frame = bounds
	}
}

func (c *MenuController) modelChanged() {
	c.Relayout()
}

// Close stops any running transition, detaches immediately and stops observing the model.
// The controller must not be used afterwards.
func (c *MenuController) Close() {
	c.stopAnimation()
	if c.State() != MenuStateHidden {
		c.teardown()
	}
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *MenuController) stopAnimation() {
	if c.cancelAnimation == nil {
		return
	}
	cancel := c.cancelAnimation
	c.cancelAnimation = nil
	cancel()
}

func (c *MenuController) teardown() {
	if c.host != nil {
		if c.menu != nil {
			c.host.Detach(c.menu)
		}
		if c.mask != nil {
			c.host.Detach(c.mask)
		}
	}

	c.host = nil
	c.menu = nil
	c.mask = nil
	c.triggerRect = Rect{}
	c.setState(MenuStateHidden)
	c.triggerID = ""
}

type visualState struct {
	opacity     float64
	scale       float64
	maskOpacity float64
}

func (c *MenuController) snapshot() visualState {
	v := visualState{opacity: c.menu.Opacity, scale: c.menu.Scale}
	if c.mask != nil {
		v.maskOpacity = c.mask.Opacity
	}
	return v
}
