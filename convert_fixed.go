package rcgal

import "golang.org/x/image/math/fixed"

import "github.com/rcgal/rcgal/efixed"
import "github.com/rcgal/rcgal/efloat"

// Conversions to and from 26.6 fixed point coordinates, as used by
// golang.org/x/image/font and other rasterization packages. Unlike
// the float64 conversions, converting to fixed point rounds to the
// nearest 1/64th (ties away from zero) and can fail.

// Creates a point from a [fixed.Point26_6]. Conversion is exact and
// can't fail, as fixed point values are always finite.
//
// [fixed.Point26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Point26_6
func PointFromFixed(point fixed.Point26_6) Point {
	x, y := efixed.PointToFloat64s(point)
	return Point{ x: x, y: y }
}

// Returns the point coordinates rounded to a [fixed.Point26_6].
// Returns [Overflow] if a coordinate is outside the fixed point range,
// or [NotFiniteInput] if the point came from overflowing raw arithmetic.
//
// [fixed.Point26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Point26_6
func (self Point) Fixed() (fixed.Point26_6, error) {
	return toFixed(self.x, self.y)
}

// Creates a vector from a [fixed.Point26_6]. Conversion is exact and
// can't fail.
//
// [fixed.Point26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Point26_6
func VectorFromFixed(point fixed.Point26_6) Vector {
	x, y := efixed.PointToFloat64s(point)
	return Vector{ x: x, y: y }
}

// Returns the vector components rounded to a [fixed.Point26_6].
// Errors are the same as in [Point.Fixed]().
//
// [fixed.Point26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Point26_6
func (self Vector) Fixed() (fixed.Point26_6, error) {
	return toFixed(self.x, self.y)
}

func toFixed(x, y float64) (fixed.Point26_6, error) {
	point, ok := efixed.PointFromFloat64s(x, y)
	if ok { return point, nil }
	if !efloat.IsFinite(x) || !efloat.IsFinite(y) {
		return fixed.Point26_6{}, NotFiniteInput
	}
	return fixed.Point26_6{}, Overflow
}
