package geom

// Rect is an axis-aligned rectangle described by its upper-left and
// bottom-right corners.
type Rect struct {
	UL, BR Point
}

// NewRect builds a rectangle from its upper-left corner and a size.
func NewRect(ul Point, width, height int) Rect {
	return Rect{
		UL: ul,
		BR: Point{X: ul.X + width, Y: ul.Y + height},
	}
}

// RectFromCorners builds a rectangle from its two corners.
func RectFromCorners(ul, br Point) Rect {
	return Rect{UL: ul, BR: br}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int {
	return r.BR.X - r.UL.X
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int {
	return r.BR.Y - r.UL.Y
}

// MoveBy shifts both corners by the given displacement, preserving size.
func (r *Rect) MoveBy(v Vector) {
	r.UL.MoveBy(v)
	r.BR.MoveBy(v)
}

// MoveTo relocates the upper-left corner to target and re-derives the
// bottom-right corner from the rectangle's size before the move, so the
// rectangle keeps its dimensions across relocation.
func (r *Rect) MoveTo(target Point) {
	size := Vector{DX: r.Width(), DY: r.Height()}
	r.UL.MoveTo(target)
	r.BR.MoveTo(target)
	r.BR.MoveBy(size)
}

// Overlaps reports whether the two rectangles intersect: their x-intervals
// [UL.X, BR.X] must intersect and their y-intervals must intersect.
func (r Rect) Overlaps(other Rect) bool {
	return r.UL.X <= other.BR.X && other.UL.X <= r.BR.X &&
		r.UL.Y <= other.BR.Y && other.UL.Y <= r.BR.Y
}
