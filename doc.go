// rcgal is a small package of finite precision 2D geometric primitives:
// points, vectors and lines.
//
// Every value is created through a validating function that returns
// an error instead of silently producing NaNs or infinities:
//   a, err := rcgal.NewPoint(0, 0)
//   if err != nil { ... } // rcgal.NotFiniteInput
//   b, err := rcgal.NewPoint(3, 4)
//   if err != nil { ... }
//   dist, err := a.Distance(b) // 5
//   if err != nil { ... } // rcgal.Overflow
//
// Lines always store a unit direction:
//   line, err := rcgal.NewLine(a, b.Sub(a))
//   if err != nil { ... } // rcgal.InvalidInput for zero directions
//   fmt.Println(line.Direction()) // (0.6, 0.8)
//
// All errors are one of [NotFiniteInput], [InvalidInput] or [Overflow].
// Lengths, distances and normalization are computed with algorithms
// that scale the values before squaring them, so they don't overflow
// or underflow until the result itself can't be represented.
//
// Points and vectors convert losslessly to [f64.Vec2] and [r2.Point],
// and can be rounded to 26.6 fixed point values through [Point.Fixed]().
// The floating point classification rules live in the efloat subpackage.
//
// [f64.Vec2]: https://pkg.go.dev/golang.org/x/image/math/f64#Vec2
// [r2.Point]: https://pkg.go.dev/github.com/golang/geo/r2#Point
package rcgal
