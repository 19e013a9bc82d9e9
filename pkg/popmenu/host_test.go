package popmenu

import (
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHost struct {
	parent   Node
	bounds   Rect
	buttons  map[string]*testButton
	overlays []*Overlay
	attaches int
}

func newTestHost(width, height float64) *testHost {
	return &testHost{
		bounds:  Rect{Width: width, Height: height},
		buttons: make(map[string]*testButton),
	}
}

func (h *testHost) Parent() Node { return h.parent }
func (h *testHost) Bounds() Rect { return h.bounds }

func (h *testHost) FrameOf(id string) (Rect, bool) {
	b, ok := h.buttons[id]
	if !ok {
		return Rect{}, false
	}
	return ConvertRect(b.frame, b.parent, h)
}

func (h *testHost) Attach(o *Overlay) {
	h.attaches++
	h.overlays = append(h.overlays, o)
}

func (h *testHost) Detach(o *Overlay) {
	h.overlays = slices.DeleteFunc(h.overlays, func(x *Overlay) bool { return x == o })
}

func (h *testHost) add(b *testButton) *testButton {
	h.buttons[b.id] = b
	return b
}

type testPanel struct {
	parent Node
	origin Point
}

func (p *testPanel) Parent() Node   { return p.parent }
func (p *testPanel) Origin() Point { return p.origin }

type testButton struct {
	id     string
	parent Node
	frame  Rect
}

func (b *testButton) Parent() Node      { return b.parent }
func (b *testButton) TriggerID() string { return b.id }

// orphan has no ancestors at all.
type orphan struct{ id string }

func (o orphan) Parent() Node      { return nil }
func (o orphan) TriggerID() string { return o.id }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestResolveHostWalksAncestors(t *testing.T) {
	host := newTestHost(375, 812)
	panel := &testPanel{parent: host, origin: Point{X: 20, Y: 30}}
	button := &testButton{id: "more", parent: panel}

	got, ok := ResolveHost(button)
	require.True(t, ok)
	assert.Same(t, host, got)

	_, ok = ResolveHost(orphan{id: "lost"})
	assert.False(t, ok)

	_, ok = ResolveHost(nil)
	assert.False(t, ok)
}

func TestConvertRectThroughPanels(t *testing.T) {
	host := newTestHost(375, 812)
	outer := &testPanel{parent: host, origin: Point{X: 20, Y: 30}}
	inner := &testPanel{parent: outer, origin: Point{X: 5, Y: 7}}

	r, ok := ConvertRect(Rect{X: 1, Y: 2, Width: 100, Height: 50}, inner, host)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 26, Y: 39, Width: 100, Height: 50}, r)

	r, ok = ConvertRect(Rect{X: 1, Y: 2, Width: 3, Height: 4}, host, host)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 1, Y: 2, Width: 3, Height: 4}, r)

	_, ok = ConvertRect(Rect{}, inner, newTestHost(1, 1))
	assert.False(t, ok)
}

func TestOverlayRowsAndHitTest(t *testing.T) {
	cfg := DefaultMenuConfig()
	items := []MenuItem{{Title: "One"}, {Title: "Two", IconFilename: "two.png"}, {Title: "Three"}}
	o := newMenuOverlay(Rect{X: 10, Y: 100, Width: 160, Height: 132}, cfg, items, nil)

	rows := o.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, Rect{X: 10, Y: 144, Width: 160, Height: 44}, rows[1].Frame)
	assert.Equal(t, "two.png", rows[1].IconFilename)
	assert.Equal(t, cfg.TitleInsets, rows[2].Insets)
	assert.True(t, rows[1].HasIcon)
	assert.False(t, rows[0].HasIcon)

	i, ok := o.RowAt(Point{X: 50, Y: 100})
	require.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = o.RowAt(Point{X: 50, Y: 188})
	require.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = o.RowAt(Point{X: 50, Y: 232})
	assert.False(t, ok)
	_, ok = o.RowAt(Point{X: 5, Y: 120})
	assert.False(t, ok)

	o.Highlighted = 1
	var rendered []Row
	o.Render(rowRecorder(func(r Row) { rendered = append(rendered, r) }))
	require.Len(t, rendered, 3)
	assert.True(t, rendered[1].Highlighted)
	assert.False(t, rendered[0].Highlighted)

	mask := newMaskOverlay(Rect{Width: 10, Height: 10}, nil)
	assert.Nil(t, mask.Rows())
}

type rowRecorder func(Row)

func (f rowRecorder) RenderRow(r Row) { f(r) }

func TestOverlayHitTestFollowsScale(t *testing.T) {
	o := newMenuOverlay(Rect{X: 10, Y: 100, Width: 160, Height: 132}, DefaultMenuConfig(), make([]MenuItem, 3), nil)
	o.Scale = HiddenScale

	// inside Frame but outside the drawn menu
	_, ok := o.RowAt(Point{X: o.Frame.X + 1, Y: o.Frame.Y + 1})
	assert.False(t, ok)

	drawn := o.DrawnFrame()
	assert.InDelta(t, 144, drawn.Width, 1e-9)
	assert.InDelta(t, 118.8, drawn.Height, 1e-9)

	i, ok := o.RowAt(Point{X: drawn.X + 1, Y: drawn.Y + 1})
	require.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = o.RowAt(Point{X: drawn.X + 1, Y: drawn.MaxY() - 1})
	require.True(t, ok)
	assert.Equal(t, 2, i)
}
