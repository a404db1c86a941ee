package geom

// Point is a position on the surface with integer coordinates. Points are
// copied by value wherever they are used.
type Point struct {
	X, Y int
}

// MoveBy shifts the point by the given displacement.
func (p *Point) MoveBy(v Vector) {
	p.X += v.DX
	p.Y += v.DY
}

// MoveTo overwrites the point's coordinates with the target's.
func (p *Point) MoveTo(target Point) {
	p.X = target.X
	p.Y = target.Y
}

// Diff returns the displacement spanning from p1 to p2, i.e. the size vector
// of the rectangle whose upper-left corner is p1 and bottom-right corner is p2.
func Diff(p1, p2 Point) Vector {
	return Vector{DX: p2.X - p1.X, DY: p2.Y - p1.Y}
}
