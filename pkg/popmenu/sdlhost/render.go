package sdlhost

import (
	"math"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	iconInsetVertical = 12
	iconInsetLeading  = 16
	iconTitleGap      = 8
	separatorInset    = 16
	shadowLayers      = 3
)

// RowRenderer draws menu rows with SDL. Hosts may swap it for their own popmenu.RowRenderer.
type RowRenderer struct {
	renderer *sdl.Renderer
	font     *ttf.Font
	icons    *iconCache

	// set per menu before its rows are drawn
	opacity float64
	scale   float64
	center  popmenu.Point
}

func NewRowRenderer(renderer *sdl.Renderer, font *ttf.Font) *RowRenderer {
	return &RowRenderer{
		renderer: renderer,
		font:     font,
		icons:    newIconCache(renderer),
		opacity:  1,
		scale:    1,
	}
}

func (r *RowRenderer) RenderRow(row popmenu.Row) {
	theme := GetTheme()
	frame := scaleAbout(row.Frame, r.center, r.scale)
	rect := toSDLRect(frame)

	textColor := theme.TextColor
	if row.Highlighted {
		fillRect(r.renderer, rect, withOpacity(theme.HighlightColor, r.opacity))
		textColor = theme.HighlightedTextColor
	}

	textX := frame.X + row.Insets.Left*r.scale

	if row.HasIcon {
		side := max(0, frame.Height-2*iconInsetVertical*r.scale)
		iconFrame := popmenu.Rect{
			X:      frame.X + iconInsetLeading*r.scale,
			Y:      frame.Y + iconInsetVertical*r.scale,
			Width:  side,
			Height: side,
		}
		if texture := r.icons.get(row.IconFilename, row.IconBytes); texture != nil {
			dst := toSDLRect(iconFrame)
			texture.SetAlphaMod(uint8(255 * r.opacity))
			r.renderer.Copy(texture, nil, &dst)
		}
		textX = iconFrame.MaxX() + iconTitleGap*r.scale
	}

	textBounds := toSDLRect(frame.Inset(popmenu.Insets{Top: row.Insets.Top * r.scale, Bottom: row.Insets.Bottom * r.scale}))
	maxWidth := int32(math.Floor(frame.MaxX() - row.Insets.Right*r.scale - textX))
	drawText(r.renderer, r.font, row.Title, int32(math.Round(textX)), textBounds, maxWidth, withOpacity(textColor, r.opacity))
}

func (r *RowRenderer) destroy() {
	r.icons.destroy()
}

func (s *Screen) renderMask(o *popmenu.Overlay) {
	fillRect(s.renderer, toSDLRect(o.Frame), withOpacity(GetTheme().MaskColor, o.Opacity))
}

func (s *Screen) renderMenu(o *popmenu.Overlay) {
	if o.Opacity <= 0 {
		return
	}

	theme := GetTheme()
	center := o.Frame.Center()
	frame := o.DrawnFrame()
	radius := int32(math.Round(o.Config.CornerRadius * o.Scale))

	if o.Config.HasShadow {
		// approximates a blurred shadow of radius CornerRadius with a few widening layers
		spread := max(1, o.Config.CornerRadius) * o.Scale
		for i := shadowLayers; i >= 1; i-- {
			grow := spread * float64(i) / shadowLayers
			layer := frame.Inset(popmenu.Insets{Top: -grow, Left: -grow, Bottom: -grow, Right: -grow})
			opacity := ShadowOpacity * o.Opacity / shadowLayers
			DrawRoundedRect(s.renderer, toSDLRect(layer), radius+int32(grow), withOpacity(theme.ShadowColor, opacity))
		}
	}

	DrawRoundedRect(s.renderer, toSDLRect(frame), radius, withOpacity(theme.MenuColor, o.Opacity))

	s.rows.opacity = o.Opacity
	s.rows.scale = o.Scale
	s.rows.center = center

	clip := toSDLRect(frame)
	s.renderer.SetClipRect(&clip)
	o.Render(s.rowRenderer)
	s.renderSeparators(o, center)
	s.renderer.SetClipRect(nil)
}

func (s *Screen) renderSeparators(o *popmenu.Overlay, center popmenu.Point) {
	color := withOpacity(GetTheme().SeparatorColor, o.Opacity)
	s.renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	for i := 1; i < len(o.Items); i++ {
		row := scaleAbout(o.RowFrame(i), center, o.Scale)
		y := int32(math.Round(row.Y))
		x1 := int32(math.Round(row.X + separatorInset*o.Scale))
		x2 := int32(math.Round(row.MaxX() - separatorInset*o.Scale))
		s.renderer.DrawLine(x1, y, x2, y)
	}
}

func (s *Screen) renderButton(b *Button) {
	frame, ok := s.FrameOf(b.ID)
	if !ok {
		return
	}
	theme := GetTheme()
	rect := toSDLRect(frame)
	fillRect(s.renderer, rect, theme.TriggerColor)
	drawTextCentered(s.renderer, Fonts.TriggerFont, b.Title, rect, theme.TriggerTextColor)
}
