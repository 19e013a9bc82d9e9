package popmenu

// MenuHeight is the height of a menu with itemCount rows.
func MenuHeight(itemCount int, rowHeight float64) float64 {
	return float64(itemCount) * rowHeight
}

// MenuSize is the frame size of a menu with itemCount rows.
func MenuSize(config MenuConfig, itemCount int) Size {
	return Size{Width: config.Width, Height: MenuHeight(itemCount, config.RowHeight)}
}

// ComputeFrame places a menu of the given size against the trigger and clamps it into parent.
// trigger must already be expressed in parent's coordinate space.
func ComputeFrame(trigger, parent Rect, anchor AnchorCorner, spacing float64, size Size) Rect {
	origin := anchorOrigin(trigger, anchor, spacing, size)
	return NewRect(ClampOrigin(origin, parent, size), size)
}

func anchorOrigin(trigger Rect, anchor AnchorCorner, spacing float64, size Size) Point {
	var origin Point

	if anchor.IsLeft() {
		origin.X = trigger.X - size.Width + trigger.Width
	} else {
		origin.X = trigger.X
	}

	if anchor.IsTop() {
		origin.Y = trigger.Y - size.Height - spacing
	} else {
		origin.Y = trigger.Y + trigger.Height + spacing
	}

	return origin
}

// ClampOrigin keeps a menu of the given size inside parent's width and height.
// A menu larger than parent is pinned to 0 and overflows the far edge.
func ClampOrigin(origin Point, parent Rect, size Size) Point {
	maxX := parent.Width - size.Width
	maxY := parent.Height - size.Height

	return Point{
		X: max(0, min(origin.X, maxX)),
		Y: max(0, min(origin.Y, maxY)),
	}
}
