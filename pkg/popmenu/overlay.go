package popmenu

import "slices"

type OverlayKind int

const (
	OverlayMask OverlayKind = iota
	OverlayMenu
)

func (k OverlayKind) String() string {
	if k == OverlayMask {
		return "mask"
	}
	return "menu"
}

// OverlayHandler receives the input a host routes to an overlay.
type OverlayHandler interface {
	// Select is called when row index of a menu overlay is tapped.
	Select(index int) error
	// TapOutside is called when a mask overlay is tapped. It reports whether the tap was consumed.
	TapOutside() bool
	// Hide dismisses the menu, e.g. on a back key.
	Hide()
}

// Overlay is a layer attached to a Container while a menu is up.
// Hosts read it to draw and write Highlighted while a row is pressed.
type Overlay struct {
	Kind        OverlayKind
	Frame       Rect
	Opacity     float64
	Scale       float64
	Config      MenuConfig
	Items       []MenuItem
	Highlighted int  // Pressed row, -1 when none
	Exiting     bool // Set once the exit starts; hosts let input pass through
	Handler     OverlayHandler
}

func newMaskOverlay(bounds Rect, handler OverlayHandler) *Overlay {
	return &Overlay{
		Kind:        OverlayMask,
		Frame:       bounds,
		Scale:       1,
		Highlighted: -1,
		Handler:     handler,
	}
}

func newMenuOverlay(frame Rect, config MenuConfig, items []MenuItem, handler OverlayHandler) *Overlay {
	return &Overlay{
		Kind:        OverlayMenu,
		Frame:       frame,
		Scale:       1,
		Config:      config,
		Items:       slices.Clone(items),
		Highlighted: -1,
		Handler:     handler,
	}
}

// Row describes one menu row for a RowRenderer.
type Row struct {
	Index        int
	Title        string
	IconFilename string
	IconBytes    []byte
	Insets       Insets
	Frame        Rect
	Highlighted  bool
	HasIcon      bool
}

// RowRenderer draws a single menu row. The core only guarantees that rows tile the menu frame.
type RowRenderer interface {
	RenderRow(row Row)
}

// RowFrame is the unscaled frame of row index.
func (o *Overlay) RowFrame(index int) Rect {
	return Rect{
		X:      o.Frame.X,
		Y:      o.Frame.Y + float64(index)*o.Config.RowHeight,
		Width:  o.Frame.Width,
		Height: o.Config.RowHeight,
	}
}

// Rows returns the row descriptors of a menu overlay.
func (o *Overlay) Rows() []Row {
	if o.Kind != OverlayMenu {
		return nil
	}
	rows := make([]Row, len(o.Items))
	for i, item := range o.Items {
		rows[i] = Row{
			Index:        i,
			Title:        item.Title,
			IconFilename: item.IconFilename,
			IconBytes:    item.IconBytes,
			Insets:       o.Config.TitleInsets,
			Frame:        o.RowFrame(i),
			Highlighted:  i == o.Highlighted,
			HasIcon:      item.HasIcon(),
		}
	}
	return rows
}

// DrawnFrame is Frame scaled about its centre by Scale, the area the menu covers on screen.
func (o *Overlay) DrawnFrame() Rect {
	return o.Frame.Scale(o.Scale)
}

// RowAt returns the row under p, which is in the container's space.
// It hit-tests the drawn rows, so it follows Scale during transitions.
func (o *Overlay) RowAt(p Point) (int, bool) {
	drawn := o.DrawnFrame()
	rowHeight := o.Config.RowHeight * o.Scale
	if o.Kind != OverlayMenu || !(rowHeight > 0) || !drawn.Contains(p) {
		return -1, false
	}
	index := int((p.Y - drawn.Y) / rowHeight)
	if index < 0 || index >= len(o.Items) {
		return -1, false
	}
	return index, true
}

// Render sends every row of a menu overlay to r.
func (o *Overlay) Render(r RowRenderer) {
	for _, row := range o.Rows() {
		r.RenderRow(row)
	}
}
