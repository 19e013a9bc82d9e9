package popmenu

type Point struct {
	X, Y float64
}

type Size struct {
	Width, Height float64
}

// Empty reports whether the size encloses no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is a frame in the coordinate space of some container.
type Rect struct {
	X      float64 `json:"x" toml:"x"`
	Y      float64 `json:"y" toml:"y"`
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

func NewRect(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains uses half-open bounds so adjacent rows never both claim a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

func (r Rect) Offset(by Point) Rect {
	r.X += by.X
	r.Y += by.Y
	return r
}

// Inset shrinks the rect by the given insets. Width and height never go below zero.
func (r Rect) Inset(in Insets) Rect {
	r.X += in.Left
	r.Y += in.Top
	r.Width = max(0, r.Width-in.Left-in.Right)
	r.Height = max(0, r.Height-in.Top-in.Bottom)
	return r
}

// Scale scales the rect about its centre.
func (r Rect) Scale(factor float64) Rect {
	c := r.Center()
	w := r.Width * factor
	h := r.Height * factor
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

type Insets struct {
	Top    float64 `json:"top" toml:"top"`
	Left   float64 `json:"left" toml:"left"`
	Bottom float64 `json:"bottom" toml:"bottom"`
	Right  float64 `json:"right" toml:"right"`
}
