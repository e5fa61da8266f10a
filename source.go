package rcgal

import "github.com/golang/geo/r2"

// Anything that can be converted to a [Point]. Conversions must
// return [NotFiniteInput] for non-finite coordinates.
type PointSource interface {
	ToPoint() (Point, error)
}

// Anything that can be converted to a [Vector]. Conversions must
// return [NotFiniteInput] for non-finite components.
type VectorSource interface {
	ToVector() (Vector, error)
}

// A raw, unvalidated pair of coordinates. Useful to pass plain
// values to functions expecting a [PointSource] or [VectorSource]:
//   line, err := rcgal.NewLine(rcgal.Coords{0, 1}, rcgal.Coords{1, 1})
// An [f64.Vec2] can be converted directly with rcgal.Coords(vec2).
//
// [f64.Vec2]: https://pkg.go.dev/golang.org/x/image/math/f64#Vec2
type Coords [2]float64

// Returns the coordinates of a [r2.Point] as Coords.
//
// [r2.Point]: https://pkg.go.dev/github.com/golang/geo/r2#Point
func CoordsFromR2(point r2.Point) Coords {
	return Coords{ point.X, point.Y }
}

// Implements [PointSource].
func (self Coords) ToPoint() (Point, error) {
	return NewPoint(self[0], self[1])
}

// Implements [VectorSource].
func (self Coords) ToVector() (Vector, error) {
	return NewVector(self[0], self[1])
}
