package entity

// Vec is a 2D point or vector in scene coordinates.
// The scene origin is its center and Y grows upward.
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle given by its minimum corner and size
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns a rectangle of the given size centered on c
func RectAround(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// MaxX returns the right edge
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the top edge
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Intersects reports whether r and o overlap with non-zero area
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// SceneBounds returns the visible area of a w x h scene centered on the origin
func SceneBounds(w, h float64) Rect {
	return Rect{X: -w / 2, Y: -h / 2, W: w, H: h}
}
