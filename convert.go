package rcgal

import "golang.org/x/image/math/f64"
import "github.com/golang/geo/r2"

// Conversions from and to other vector math packages. Conversions
// to external types are lossless and always succeed, while conversions
// from external types re-validate the coordinates and return
// [NotFiniteInput] if needed. Round trips are bit-exact.

// Creates a point from an [f64.Vec2].
//
// [f64.Vec2]: https://pkg.go.dev/golang.org/x/image/math/f64#Vec2
func PointFromVec2(vec f64.Vec2) (Point, error) {
	return NewPoint(vec[0], vec[1])
}

// Returns the point coordinates as an [f64.Vec2].
//
// [f64.Vec2]: https://pkg.go.dev/golang.org/x/image/math/f64#Vec2
func (self Point) Vec2() f64.Vec2 {
	return f64.Vec2{ self.x, self.y }
}

// Creates a vector from an [f64.Vec2].
//
// [f64.Vec2]: https://pkg.go.dev/golang.org/x/image/math/f64#Vec2
func VectorFromVec2(vec f64.Vec2) (Vector, error) {
	return NewVector(vec[0], vec[1])
}

// Returns the vector components as an [f64.Vec2].
//
// [f64.Vec2]: https://pkg.go.dev/golang.org/x/image/math/f64#Vec2
func (self Vector) Vec2() f64.Vec2 {
	return f64.Vec2{ self.x, self.y }
}

// Creates a point from a [r2.Point].
//
// [r2.Point]: https://pkg.go.dev/github.com/golang/geo/r2#Point
func PointFromR2(point r2.Point) (Point, error) {
	return NewPoint(point.X, point.Y)
}

// Returns the point coordinates as a [r2.Point].
//
// [r2.Point]: https://pkg.go.dev/github.com/golang/geo/r2#Point
func (self Point) R2() r2.Point {
	return r2.Point{ X: self.x, Y: self.y }
}

// Creates a vector from a [r2.Point] (which r2 also uses for vectors).
//
// [r2.Point]: https://pkg.go.dev/github.com/golang/geo/r2#Point
func VectorFromR2(point r2.Point) (Vector, error) {
	return NewVector(point.X, point.Y)
}

// Returns the vector components as a [r2.Point].
//
// [r2.Point]: https://pkg.go.dev/github.com/golang/geo/r2#Point
func (self Vector) R2() r2.Point {
	return r2.Point{ X: self.x, Y: self.y }
}
