package popmenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	demoTrigger = Rect{X: 10, Y: 88, Width: 100, Height: 50}
	phoneBounds = Rect{Width: 375, Height: 812}
	threeRows   = Size{Width: 160, Height: 132}
)

func TestAnchorOriginPerCorner(t *testing.T) {
	cases := []struct {
		anchor AnchorCorner
		want   Point
	}{
		{AnchorTopLeft, Point{X: -50, Y: 88 - 132 - 4}},
		{AnchorBottomLeft, Point{X: -50, Y: 142}},
		{AnchorTopRight, Point{X: 10, Y: 88 - 132 - 4}},
		{AnchorBottomRight, Point{X: 10, Y: 142}},
	}

	for _, tc := range cases {
		t.Run(tc.anchor.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, anchorOrigin(demoTrigger, tc.anchor, 4, threeRows))
		})
	}
}

func TestComputeFrameSpacingFromTrigger(t *testing.T) {
	trigger := Rect{X: 200, Y: 400, Width: 100, Height: 50}

	for _, anchor := range []AnchorCorner{AnchorTopLeft, AnchorBottomLeft, AnchorTopRight, AnchorBottomRight} {
		f := ComputeFrame(trigger, phoneBounds, anchor, 4, threeRows)
		if anchor.IsTop() {
			assert.Equal(t, 4.0, trigger.Y-f.MaxY(), anchor.String())
		} else {
			assert.Equal(t, 4.0, f.Y-trigger.MaxY(), anchor.String())
		}
		if anchor.IsLeft() {
			assert.Equal(t, trigger.MaxX(), f.MaxX(), anchor.String())
		} else {
			assert.Equal(t, trigger.X, f.X, anchor.String())
		}
	}
}

func TestComputeFrameBottomLeftClamped(t *testing.T) {
	f := ComputeFrame(demoTrigger, phoneBounds, AnchorBottomLeft, 4, threeRows)
	assert.Equal(t, Rect{X: 0, Y: 142, Width: 160, Height: 132}, f)
}

func TestComputeFrameIsDeterministic(t *testing.T) {
	a := ComputeFrame(demoTrigger, phoneBounds, AnchorTopRight, 12, threeRows)
	b := ComputeFrame(demoTrigger, phoneBounds, AnchorTopRight, 12, threeRows)
	assert.Equal(t, a, b)
}

func TestClampOriginLaw(t *testing.T) {
	sizes := []Size{{160, 132}, {400, 44}, {100, 900}, {375, 812}}
	origins := []Point{{-500, -500}, {0, 0}, {100, 300}, {370, 800}, {9999, 9999}}

	for _, size := range sizes {
		for _, origin := range origins {
			got := ClampOrigin(origin, phoneBounds, size)
			assert.GreaterOrEqual(t, got.X, 0.0)
			assert.GreaterOrEqual(t, got.Y, 0.0)
			assert.LessOrEqual(t, got.X, max(0, phoneBounds.Width-size.Width))
			assert.LessOrEqual(t, got.Y, max(0, phoneBounds.Height-size.Height))
		}
	}
}

func TestClampOriginOversizePinsToZero(t *testing.T) {
	got := ClampOrigin(Point{X: 50, Y: 60}, phoneBounds, Size{Width: 500, Height: 1000})
	assert.Equal(t, Point{}, got)
}

func TestMenuHeightLaw(t *testing.T) {
	for _, r := range []float64{1, 44, 48, 0.5} {
		for n := 0; n <= 20; n++ {
			assert.Equal(t, float64(n)*r, MenuHeight(n, r))
		}
	}

	cfg := DefaultMenuConfig()
	assert.Equal(t, Size{Width: 160, Height: 132}, MenuSize(cfg, 3))
}
