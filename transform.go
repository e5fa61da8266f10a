package rcgal

import "golang.org/x/image/math/f64"

import "github.com/rcgal/rcgal/efloat"

// Returns the point transformed by the given affine matrix. The
// matrix is in row major order, so the result is:
//   x' = m[0]*x + m[1]*y + m[2]
//   y' = m[3]*x + m[4]*y + m[5]
//
// Returns [NotFiniteInput] if the matrix has infinite or NaN elements
// (or the point came from overflowing raw arithmetic), and [Overflow]
// if the transformed coordinates can't be represented.
func (self Point) Transform(matrix f64.Aff3) (Point, error) {
	if !self.IsFinite() || !isFiniteAff3(matrix) {
		return Point{}, NotFiniteInput
	}
	x := matrix[0]*self.x + matrix[1]*self.y + matrix[2]
	y := matrix[3]*self.x + matrix[4]*self.y + matrix[5]
	point := Point{ x: x, y: y }
	if !point.IsFinite() { return Point{}, Overflow }
	return point, nil
}

// Returns the vector transformed by the linear part of the given
// affine matrix. Translation elements (m[2] and m[5]) are ignored,
// as vectors are displacements, but they must still be finite.
// Errors are the same as in [Point.Transform]().
func (self Vector) Transform(matrix f64.Aff3) (Vector, error) {
	if !self.IsFinite() || !isFiniteAff3(matrix) {
		return Vector{}, NotFiniteInput
	}
	x := matrix[0]*self.x + matrix[1]*self.y
	y := matrix[3]*self.x + matrix[4]*self.y
	vector := Vector{ x: x, y: y }
	if !vector.IsFinite() { return Vector{}, Overflow }
	return vector, nil
}

func isFiniteAff3(matrix f64.Aff3) bool {
	for _, elem := range matrix {
		if !efloat.IsFinite(elem) { return false }
	}
	return true
}
