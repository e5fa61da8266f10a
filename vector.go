package rcgal

import "math"

import "github.com/rcgal/rcgal/efloat"

// Tolerance used by [Vector.IsUnit]().
const unitTolerance = 4*0x1p-52

// An immutable 2D displacement with finite components.
//
// Like [Point], vectors can only be created through validating
// functions, and the zero value is the zero vector. Vectors returned
// by [Vector.Normalize]() are additionally guaranteed to have unit
// length, but ordinary vectors carry no length guarantee.
type Vector struct {
	x float64
	y float64
}

// Creates a vector from a pair of components. Returns [NotFiniteInput]
// if any of them is infinite or NaN.
func NewVector(x, y float64) (Vector, error) {
	if !efloat.IsFinite(x) || !efloat.IsFinite(y) {
		return Vector{}, NotFiniteInput
	}
	return Vector{ x: x, y: y }, nil
}

// Returns the x component.
func (self Vector) X() float64 { return self.x }

// Returns the y component.
func (self Vector) Y() float64 { return self.y }

// Returns the Euclidean length of the vector.
//
// Like [Point.Distance](), the length is computed without squaring
// the raw components, and [Overflow] is returned only if the length
// itself exceeds the float64 range.
func (self Vector) Length() (float64, error) {
	return hypotResult(self.x, self.y, "Vector.Length")
}

// Returns the unit vector with the same direction.
//
// Both components are first divided by the largest component
// magnitude, which brings the vector to a safe range where its length
// is between 1 and √2, and only then divided by that length. This
// avoids overflows for huge vectors and underflows for tiny ones.
//
// Returns [InvalidInput] if the largest component magnitude is not a
// normal number. In particular, the zero vector can't be normalized, nor
// can vectors whose components are all subnormal.
func (self Vector) Normalize() (Vector, error) {
	scale := efloat.MaxAbs(self.x, self.y)
	if !efloat.IsNormal(scale) { return Vector{}, InvalidInput }

	x, y := self.x/scale, self.y/scale
	length := efloat.Hypot(x, y) // in [1, √2]
	return Vector{ x: x/length, y: y/length }, nil
}

// Returns whether the vector has length 1 within a few ulps.
func (self Vector) IsUnit() bool {
	length, err := self.Length()
	if err != nil { return false }
	return math.Abs(length - 1) <= unitTolerance
}

// Returns whether both components are finite. This is always true
// for vectors that didn't come from raw arithmetic.
func (self Vector) IsFinite() bool {
	return efloat.IsFinite(self.x) && efloat.IsFinite(self.y)
}

// Returns the vector components as a pair of float64s.
func (self Vector) ToFloat64s() (x, y float64) {
	return self.x, self.y
}

// Re-validates the vector. Implements [VectorSource].
func (self Vector) ToVector() (Vector, error) {
	return NewVector(self.x, self.y)
}

// Returns a textual representation of the vector (e.g.: "(0.6, 0.8)").
func (self Vector) String() string {
	return formatPair(self.x, self.y)
}
