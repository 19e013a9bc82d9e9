package sdlhost

import (
	"math"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func toSDLRect(r popmenu.Rect) sdl.Rect {
	return sdl.Rect{
		X: int32(math.Round(r.X)),
		Y: int32(math.Round(r.Y)),
		W: int32(math.Round(r.Width)),
		H: int32(math.Round(r.Height)),
	}
}

// scaleAbout scales r about the point c, the way a view transform scales its subviews.
func scaleAbout(r popmenu.Rect, c popmenu.Point, factor float64) popmenu.Rect {
	return popmenu.Rect{
		X:      c.X + (r.X-c.X)*factor,
		Y:      c.Y + (r.Y-c.Y)*factor,
		Width:  r.Width * factor,
		Height: r.Height * factor,
	}
}

func fillRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)
}

func DrawRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}

	radius = min(radius, rect.W/2, rect.H/2)
	if radius <= 0 {
		fillRect(renderer, rect, color)
		return
	}

	gfx.BoxColor(renderer, rect.X+radius, rect.Y, rect.X+rect.W-radius-1, rect.Y+rect.H-1, color)
	gfx.BoxColor(renderer, rect.X, rect.Y+radius, rect.X+radius-1, rect.Y+rect.H-radius-1, color)
	gfx.BoxColor(renderer, rect.X+rect.W-radius, rect.Y+radius, rect.X+rect.W-1, rect.Y+rect.H-radius-1, color)

	drawCornerQuadrant(renderer, rect.X+radius, rect.Y+radius, radius, -1, -1, color)
	drawCornerQuadrant(renderer, rect.X+rect.W-radius-1, rect.Y+radius, radius, 1, -1, color)
	drawCornerQuadrant(renderer, rect.X+radius, rect.Y+rect.H-radius-1, radius, -1, 1, color)
	drawCornerQuadrant(renderer, rect.X+rect.W-radius-1, rect.Y+rect.H-radius-1, radius, 1, 1, color)
}

// drawCornerQuadrant fills one quarter disc so translucent colours do not overlap the boxes.
func drawCornerQuadrant(renderer *sdl.Renderer, cx, cy, radius int32, dx, dy int32, color sdl.Color) {
	start, end := quadrantAngles(dx, dy)
	gfx.FilledPieColor(renderer, cx, cy, radius, start, end, color)
}

func quadrantAngles(dx, dy int32) (int32, int32) {
	switch {
	case dx > 0 && dy > 0:
		return 0, 90
	case dx < 0 && dy > 0:
		return 90, 180
	case dx < 0 && dy < 0:
		return 180, 270
	default:
		return 270, 360
	}
}

// drawText renders text left aligned at x, vertically centred in bounds and clipped to maxWidth.
func drawText(renderer *sdl.Renderer, font *ttf.Font, text string, x int32, bounds sdl.Rect, maxWidth int32, color sdl.Color) {
	if text == "" || font == nil || maxWidth <= 0 {
		return
	}

	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: color.R, G: color.G, B: color.B, A: 255})
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	texture.SetAlphaMod(color.A)

	w := min(surface.W, maxWidth)
	src := sdl.Rect{W: w, H: surface.H}
	dst := sdl.Rect{
		X: x,
		Y: bounds.Y + (bounds.H-surface.H)/2,
		W: w,
		H: surface.H,
	}
	renderer.Copy(texture, &src, &dst)
}

// drawTextCentered centres text in bounds.
func drawTextCentered(renderer *sdl.Renderer, font *ttf.Font, text string, bounds sdl.Rect, color sdl.Color) {
	if text == "" || font == nil {
		return
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return
	}
	x := bounds.X + (bounds.W-int32(w))/2
	drawText(renderer, font, text, max(bounds.X, x), bounds, bounds.W, color)
}
