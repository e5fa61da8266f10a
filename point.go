package rcgal

import "github.com/rcgal/rcgal/efloat"

// An immutable 2D location with finite coordinates.
//
// Points can only be created through [NewPoint]() and the conversion
// functions, all of which reject infinities and NaNs. The zero value
// is the origin. Points are plain values, safe to copy and share.
//
// The raw arithmetic methods ([Point.Add](), [Point.Sub]() and
// [Point.Translate]()) don't validate their results, see their
// documentation for details.
type Point struct {
	x float64
	y float64
}

// Creates a point from a pair of coordinates. Returns [NotFiniteInput]
// if any of them is infinite or NaN. Zero, subnormal and any other
// finite values are accepted and stored exactly.
func NewPoint(x, y float64) (Point, error) {
	if !efloat.IsFinite(x) || !efloat.IsFinite(y) {
		return Point{}, NotFiniteInput
	}
	return Point{ x: x, y: y }, nil
}

// Returns the x coordinate.
func (self Point) X() float64 { return self.x }

// Returns the y coordinate.
func (self Point) Y() float64 { return self.y }

// Returns the Euclidean distance between the two points.
//
// The distance is computed without squaring the raw differences, so
// it doesn't overflow or underflow prematurely. [Overflow] is returned
// if the distance itself is too big to be represented (e.g. between
// points at -math.MaxFloat64 and +math.MaxFloat64). Distance is
// symmetric: a.Distance(b) == b.Distance(a) exactly.
func (self Point) Distance(other Point) (float64, error) {
	return hypotResult(self.x - other.x, self.y - other.y, "Point.Distance")
}

// Returns whether both coordinates are finite. This is always true
// for points that didn't come from raw arithmetic.
func (self Point) IsFinite() bool {
	return efloat.IsFinite(self.x) && efloat.IsFinite(self.y)
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.x, self.y
}

// Re-validates the point. Implements [PointSource].
func (self Point) ToPoint() (Point, error) {
	return NewPoint(self.x, self.y)
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	return formatPair(self.x, self.y)
}
