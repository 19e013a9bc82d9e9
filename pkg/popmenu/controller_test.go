package popmenu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	host     *testHost
	button   *testButton
	model    *MenuModel
	animator *FrameAnimator
	ctrl     *MenuController
}

func newFixture(t *testing.T, mutate func(*MenuConfig)) *fixture {
	t.Helper()

	host := newTestHost(375, 812)
	button := host.add(&testButton{id: "more", parent: host, frame: demoTrigger})

	cfg := DefaultMenuConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	model := NewMenuModel(cfg)
	model.SetItems([]MenuItem{{Title: "One"}, {Title: "Two"}, {Title: "Three"}})

	animator := NewFrameAnimator()
	ctrl := NewMenuController(model, ControllerOptions{Animator: animator, Logger: discardLogger()})
	t.Cleanup(ctrl.Close)

	return &fixture{host: host, button: button, model: model, animator: animator, ctrl: ctrl}
}

func (f *fixture) finishEnter() {
	f.animator.Advance(EnterDuration)
}

func (f *fixture) finishExit() {
	f.animator.Advance(ExitDuration)
}

func withMask(cfg *MenuConfig) {
	cfg.HasDismissMask = true
}

func TestShowAttachesAndAnimatesIn(t *testing.T) {
	f := newFixture(t, withMask)

	require.NoError(t, f.ctrl.Show(f.button, nil))
	assert.Equal(t, MenuStateShowing, f.ctrl.State())
	require.Len(t, f.host.overlays, 2)
	assert.Equal(t, OverlayMask, f.host.overlays[0].Kind, "mask sits below the menu")
	assert.Equal(t, OverlayMenu, f.host.overlays[1].Kind)

	menu := f.ctrl.MenuOverlay()
	assert.Equal(t, Rect{X: 0, Y: 142, Width: 160, Height: 132}, menu.Frame)
	assert.Equal(t, 0.0, menu.Opacity)
	assert.Equal(t, HiddenScale, menu.Scale)
	assert.Equal(t, f.host.bounds, f.ctrl.MaskOverlay().Frame)

	f.animator.Advance(EnterDuration / 2)
	assert.Equal(t, MenuStateShowing, f.ctrl.State())
	assert.Greater(t, menu.Opacity, 0.0)
	assert.Less(t, menu.Opacity, 1.0)

	f.animator.Advance(EnterDuration / 2)
	assert.Equal(t, MenuStateVisible, f.ctrl.State())
	assert.Equal(t, 1.0, menu.Opacity)
	assert.Equal(t, 1.0, menu.Scale)
	assert.InDelta(t, MaskOpacity, f.ctrl.MaskOverlay().Opacity, 1e-9)
}

func TestShowWithoutMask(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.ctrl.Show(f.button, nil))
	require.Len(t, f.host.overlays, 1)
	assert.Nil(t, f.ctrl.MaskOverlay())
}

func TestShowTwiceReportsAlreadyShowing(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.ctrl.Show(f.button, nil))
	assert.ErrorIs(t, f.ctrl.Show(f.button, nil), ErrAlreadyShowing)
	assert.Equal(t, 1, f.host.attaches)

	f.finishEnter()
	assert.ErrorIs(t, f.ctrl.Show(f.button, nil), ErrAlreadyShowing)
	assert.Equal(t, 1, f.host.attaches)
	assert.Equal(t, MenuStateVisible, f.ctrl.State())
}

func TestShowWithoutHost(t *testing.T) {
	f := newFixture(t, withMask)

	err := f.ctrl.Show(orphan{id: "lost"}, nil)
	assert.ErrorIs(t, err, ErrNoHostContainer)
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
	assert.Zero(t, f.host.attaches)

	err = f.ctrl.Show(f.button, func(Trigger) (Container, bool) { return nil, false })
	assert.ErrorIs(t, err, ErrNoHostContainer)

	stranger := &testButton{id: "stranger", parent: f.host}
	assert.ErrorIs(t, f.ctrl.Show(stranger, nil), ErrNoHostContainer)
	assert.Zero(t, f.host.attaches)
}

func TestShowWithCustomResolver(t *testing.T) {
	f := newFixture(t, nil)
	other := newTestHost(1024, 768)
	other.add(&testButton{id: "more", parent: other, frame: Rect{X: 500, Y: 500, Width: 40, Height: 40}})

	require.NoError(t, f.ctrl.Show(f.button, func(Trigger) (Container, bool) { return other, true }))
	assert.Zero(t, f.host.attaches)
	assert.Equal(t, 1, other.attaches)

	frame, ok := f.ctrl.Frame()
	require.True(t, ok)
	assert.Equal(t, Rect{X: 380, Y: 544, Width: 160, Height: 132}, frame)
}

func TestShowEmptyMenuIsDegenerate(t *testing.T) {
	f := newFixture(t, withMask)
	f.model.SetItems(nil)

	assert.ErrorIs(t, f.ctrl.Show(f.button, nil), ErrDegenerateGeometry)
	assert.Zero(t, f.host.attaches)
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
}

func TestShowNonFiniteGeometryIsDegenerate(t *testing.T) {
	f := newFixture(t, func(cfg *MenuConfig) { cfg.Width = math.NaN() })
	assert.ErrorIs(t, f.ctrl.Show(f.button, nil), ErrDegenerateGeometry)

	f = newFixture(t, func(cfg *MenuConfig) { cfg.RowHeight = math.Inf(1) })
	assert.ErrorIs(t, f.ctrl.Show(f.button, nil), ErrDegenerateGeometry)
	assert.Zero(t, f.host.attaches)
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
}

func TestShowZeroWidthIsDegenerate(t *testing.T) {
	f := newFixture(t, func(cfg *MenuConfig) { cfg.Width = 0 })

	assert.ErrorIs(t, f.ctrl.Show(f.button, nil), ErrDegenerateGeometry)
	assert.Zero(t, f.host.attaches)
}

func TestHideDetachesAfterExit(t *testing.T) {
	f := newFixture(t, withMask)
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	f.ctrl.Hide()
	assert.Equal(t, MenuStateHiding, f.ctrl.State())
	assert.Len(t, f.host.overlays, 2, "still attached while the exit runs")

	f.ctrl.Hide()
	assert.Equal(t, MenuStateHiding, f.ctrl.State())

	menu := f.ctrl.MenuOverlay()
	f.finishExit()
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
	assert.Empty(t, f.host.overlays)
	assert.Equal(t, 0.0, menu.Opacity)
	assert.Equal(t, HiddenScale, menu.Scale)
	assert.Nil(t, f.ctrl.MenuOverlay())

	_, ok := f.ctrl.Frame()
	assert.False(t, ok)

	f.ctrl.Hide()
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
}

func TestShowAgainAfterHidden(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()
	f.ctrl.Hide()
	f.finishExit()

	require.NoError(t, f.ctrl.Show(f.button, nil))
	assert.Equal(t, 2, f.host.attaches)
	assert.Len(t, f.host.overlays, 1)
}

func TestHideDuringEntranceInterrupts(t *testing.T) {
	f := newFixture(t, withMask)
	require.NoError(t, f.ctrl.Show(f.button, nil))

	f.animator.Advance(EnterDuration / 2)
	menu := f.ctrl.MenuOverlay()
	midOpacity := menu.Opacity

	f.ctrl.Hide()
	assert.Equal(t, MenuStateHiding, f.ctrl.State())
	assert.Equal(t, 1, f.animator.Active(), "entrance cancelled, exit running")

	f.animator.Advance(ExitDuration / 4)
	assert.Less(t, menu.Opacity, midOpacity)

	f.animator.Advance(ExitDuration)
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
	assert.Empty(t, f.host.overlays)
	assert.Zero(t, f.animator.Active())
}

func TestSelectRunsActionOnceThenHides(t *testing.T) {
	f := newFixture(t, nil)
	calls := make([]int, 3)
	f.model.SetItems([]MenuItem{
		{Title: "One", Action: func() { calls[0]++ }},
		{Title: "Two", Action: func() { calls[1]++ }},
		{Title: "Three", Action: func() { calls[2]++ }},
	})
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	f.ctrl.MenuOverlay().Highlighted = 1
	require.NoError(t, f.ctrl.Select(1))
	assert.Equal(t, []int{0, 1, 0}, calls)
	assert.Equal(t, -1, f.ctrl.MenuOverlay().Highlighted)
	assert.Equal(t, MenuStateHiding, f.ctrl.State())

	assert.ErrorIs(t, f.ctrl.Select(1), ErrNotShowing)
	assert.Equal(t, []int{0, 1, 0}, calls)

	f.finishExit()
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
}

func TestSelectWithoutActionStillHides(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	require.NoError(t, f.ctrl.Select(2))
	assert.Equal(t, MenuStateHiding, f.ctrl.State())
}

func TestSelectBadIndex(t *testing.T) {
	f := newFixture(t, nil)
	assert.ErrorIs(t, f.ctrl.Select(0), ErrNotShowing)

	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	assert.ErrorIs(t, f.ctrl.Select(3), ErrItemOutOfRange)
	assert.ErrorIs(t, f.ctrl.Select(-1), ErrItemOutOfRange)
	assert.Equal(t, MenuStateVisible, f.ctrl.State())
}

func TestSelectPanicPropagatesAfterHideStarts(t *testing.T) {
	f := newFixture(t, withMask)
	f.model.SetItems([]MenuItem{{Title: "Boom", Action: func() { panic("boom") }}})
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	assert.PanicsWithValue(t, "boom", func() { _ = f.ctrl.Select(0) })
	assert.Equal(t, MenuStateHiding, f.ctrl.State())

	f.finishExit()
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
	assert.Empty(t, f.host.overlays)
}

func TestTapOutside(t *testing.T) {
	f := newFixture(t, withMask)
	assert.False(t, f.ctrl.TapOutside(), "nothing to dismiss while hidden")

	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	assert.True(t, f.ctrl.TapOutside())
	assert.Equal(t, MenuStateHiding, f.ctrl.State())
}

func TestTapOutsidePassesThroughWithoutMask(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	assert.False(t, f.ctrl.TapOutside())
	assert.Equal(t, MenuStateVisible, f.ctrl.State())
}

func TestItemsChangedWhileVisible(t *testing.T) {
	f := newFixture(t, func(cfg *MenuConfig) { cfg.Anchor = AnchorTopRight })
	f.button.frame = Rect{X: 10, Y: 400, Width: 100, Height: 50}
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	frame, _ := f.ctrl.Frame()
	assert.Equal(t, Rect{X: 10, Y: 400 - 132 - 4, Width: 160, Height: 132}, frame)

	f.model.SetItems([]MenuItem{{Title: "Only"}})
	frame, _ = f.ctrl.Frame()
	assert.Equal(t, Rect{X: 10, Y: 400 - 44 - 4, Width: 160, Height: 44}, frame)
	assert.Len(t, f.ctrl.MenuOverlay().Items, 1)
	assert.Equal(t, MenuStateVisible, f.ctrl.State())
	assert.Equal(t, 1, f.host.attaches)
}

func TestItemsChangedDuringEntranceLastWriteWins(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.Show(f.button, nil))

	f.model.SetItems(make([]MenuItem, 5))
	f.model.SetItems(make([]MenuItem, 2))
	f.finishEnter()

	frame, _ := f.ctrl.Frame()
	assert.Equal(t, 88.0, frame.Height)
	assert.Equal(t, MenuStateVisible, f.ctrl.State())
}

func TestItemsClearedWhileVisibleHides(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	f.model.SetItems(nil)
	assert.Equal(t, MenuStateHiding, f.ctrl.State())
	f.finishExit()
	assert.Empty(t, f.host.overlays)
}

func TestRelayoutFollowsHostBounds(t *testing.T) {
	f := newFixture(t, withMask)
	f.button.frame = Rect{X: 300, Y: 700, Width: 60, Height: 40}
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	frame, _ := f.ctrl.Frame()
	assert.Equal(t, Rect{X: 200, Y: 680, Width: 160, Height: 132}, frame)

	f.host.bounds = Rect{Width: 1024, Height: 768}
	f.ctrl.Relayout()

	frame, _ = f.ctrl.Frame()
	assert.Equal(t, Rect{X: 200, Y: 636, Width: 160, Height: 132}, frame)
	assert.Equal(t, f.host.bounds, f.ctrl.MaskOverlay().Frame)
}

func TestCloseDetachesImmediately(t *testing.T) {
	f := newFixture(t, withMask)
	require.NoError(t, f.ctrl.Show(f.button, nil))

	f.ctrl.Close()
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
	assert.Empty(t, f.host.overlays)
	assert.Zero(t, f.animator.Active())

	f.model.SetItems([]MenuItem{{Title: "late"}})
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
}

func TestOverlayHandlerRoutesToController(t *testing.T) {
	f := newFixture(t, withMask)
	selected := -1
	f.model.SetItems([]MenuItem{{Title: "A"}, {Title: "B", Action: func() { selected = 1 }}})
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	menu := f.ctrl.MenuOverlay()
	index, ok := menu.RowAt(Point{X: menu.Frame.X + 5, Y: menu.Frame.Y + 50})
	require.True(t, ok)
	require.NoError(t, menu.Handler.Select(index))
	assert.Equal(t, 1, selected)
}

func TestHideMarksOverlaysExiting(t *testing.T) {
	f := newFixture(t, withMask)
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	menu, mask := f.ctrl.MenuOverlay(), f.ctrl.MaskOverlay()
	assert.False(t, menu.Exiting)
	assert.False(t, mask.Exiting)
	menu.Highlighted = 1

	f.ctrl.Hide()
	assert.True(t, menu.Exiting)
	assert.True(t, mask.Exiting)
	assert.Equal(t, -1, menu.Highlighted)

	f.finishExit()
	require.NoError(t, f.ctrl.Show(f.button, nil))
	assert.False(t, f.ctrl.MenuOverlay().Exiting)
}

func TestConfigChangedWhileVisible(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	frame, _ := f.ctrl.Frame()
	assert.Equal(t, Rect{X: 0, Y: 142, Width: 160, Height: 132}, frame)

	cfg := f.model.Config()
	cfg.Anchor = AnchorBottomRight
	cfg.RowHeight = 48
	f.model.SetConfig(cfg)

	frame, _ = f.ctrl.Frame()
	assert.Equal(t, Rect{X: 10, Y: 142, Width: 160, Height: 144}, frame)
	assert.Equal(t, cfg, f.ctrl.MenuOverlay().Config)
	assert.Equal(t, MenuStateVisible, f.ctrl.State())

	cfg.Anchor = AnchorTopRight
	cfg.Spacing = 8
	f.model.SetConfig(cfg)

	// clamped to the top of the host
	frame, _ = f.ctrl.Frame()
	assert.Equal(t, Rect{X: 10, Y: 0, Width: 160, Height: 144}, frame)
}

func TestConfigChangedDuringEntrance(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.animator.Advance(EnterDuration / 2)

	cfg := f.model.Config()
	cfg.Width = 200
	f.model.SetConfig(cfg)
	assert.Equal(t, MenuStateShowing, f.ctrl.State())

	f.finishEnter()
	frame, _ := f.ctrl.Frame()
	assert.Equal(t, 200.0, frame.Width)
	assert.Equal(t, MenuStateVisible, f.ctrl.State())
}

func TestConfigBecomingDegenerateWhileVisibleHides(t *testing.T) {
	f := newFixture(t, withMask)
	require.NoError(t, f.ctrl.Show(f.button, nil))
	f.finishEnter()

	cfg := f.model.Config()
	cfg.Width = 0
	f.model.SetConfig(cfg)
	assert.Equal(t, MenuStateHiding, f.ctrl.State())

	f.finishExit()
	assert.Equal(t, MenuStateHidden, f.ctrl.State())
	assert.Empty(t, f.host.overlays)
}
