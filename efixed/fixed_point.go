// efixed is a utility subpackage containing the conversions between
// float64 coordinates and their [fixed.Int26_6] representation. rcgal
// uses it for the fixed point interop methods of points and vectors,
// but it can also be used on its own.
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package efixed

import "math"
import "golang.org/x/image/math/fixed"

// Bounds of the float64 values exactly representable as fixed.Int26_6.
const (
	MaxFloat64 float64 = +33554431.984375
	MinFloat64 float64 = -33554432
	Delta      float64 = 0.015625 // 1.0/64.0
)

// Converts a value from its fixed.Int26_6 representation to its float64
// representation. Conversion is always exact.
func ToFloat64(value fixed.Int26_6) float64 {
	return float64(value)/64.0
}

// Converts the given float64 to the nearest fixed.Int26_6, rounding
// away from zero in case of ties. The second return value is false
// if the value is NaN, infinite, or can't be rounded into the
// fixed.Int26_6 range.
func FromFloat64(value float64) (fixed.Int26_6, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) { return 0, false }

	// bound checks before scaling, as value*64 could overflow
	if value > MaxFloat64 + Delta/2 || value < MinFloat64 - Delta/2 {
		return 0, false
	}

	// scaling by a power of two is exact, so rounding happens only once
	rounded := math.Round(value*64)
	if rounded > math.MaxInt32 || rounded < math.MinInt32 { return 0, false }
	return fixed.Int26_6(rounded), true
}

// Converts a pair of float64 coordinates to a [fixed.Point26_6].
// See [FromFloat64]() for the rounding and failure rules.
func PointFromFloat64s(x, y float64) (fixed.Point26_6, bool) {
	fx, ok := FromFloat64(x)
	if !ok { return fixed.Point26_6{}, false }
	fy, ok := FromFloat64(y)
	if !ok { return fixed.Point26_6{}, false }
	return fixed.Point26_6{ X: fx, Y: fy }, true
}

// Converts a [fixed.Point26_6] to a pair of float64 coordinates.
// Conversion is always exact.
func PointToFloat64s(point fixed.Point26_6) (x, y float64) {
	return ToFloat64(point.X), ToFloat64(point.Y)
}
