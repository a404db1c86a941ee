// Package geom provides the integer 2D value types the runtime moves and
// collides: displacement vectors, positions, and axis-aligned rectangles.
package geom

// Vector is a 2D displacement with integer offsets. It is a pure value and
// carries no identity.
type Vector struct {
	DX, DY int
}

// Negated returns the vector with both offsets sign-flipped.
func (v Vector) Negated() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

// Inverted returns the vector with its offsets swapped.
func (v Vector) Inverted() Vector {
	return Vector{DX: v.DY, DY: v.DX}
}

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{DX: v.DX + o.DX, DY: v.DY + o.DY}
}

// Sub returns the component-wise difference of v and o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{DX: v.DX - o.DX, DY: v.DY - o.DY}
}

// AddAssign accumulates o into v.
func (v *Vector) AddAssign(o Vector) {
	v.DX += o.DX
	v.DY += o.DY
}

// SubAssign subtracts o from v in place.
func (v *Vector) SubAssign(o Vector) {
	v.DX -= o.DX
	v.DY -= o.DY
}
