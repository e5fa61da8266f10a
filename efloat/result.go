package efloat

import "math"

// Outcome of classifying a computed value that was derived
// exclusively from finite inputs.
type Result uint8

const (
	Valid      Result = 0 // zero, subnormal or normal
	Overflowed Result = 1 // the true value exceeds the float64 range
	Impossible Result = 2 // NaN from finite inputs, always a bug
)

// Classifies a value computed from finite operands. Finite values
// are [Valid], infinities mean the mathematically well defined result
// was too big to represent ([Overflowed]), and NaN can't be produced
// by the operations rcgal performs on finite values, so it's reported
// as [Impossible].
func ClassifyResult(value float64) Result {
	switch Classify(value) {
	case Zero, Subnormal, Normal:
		return Valid
	case Infinite:
		return Overflowed
	default:
		return Impossible
	}
}

// Returns the name of the result (e.g.: "Overflowed").
func (self Result) String() string {
	switch self {
	case Valid: return "Valid"
	case Overflowed: return "Overflowed"
	case Impossible: return "Impossible"
	default:
		panic("invalid efloat.Result")
	}
}

// Returns sqrt(a*a + b*b) without undue overflow or underflow.
//
// The larger magnitude is factored out before squaring, so only the
// ratio between both values (which is at most 1) is ever squared. The
// result is infinite only if the true hypotenuse exceeds [math.MaxFloat64].
// Symmetric in both its arguments and in their signs.
func Hypot(a, b float64) float64 {
	return math.Hypot(a, b)
}

// Returns the value with the greatest magnitude among the absolute
// values of a and b. NaN is returned if any of them is NaN.
func MaxAbs(a, b float64) float64 {
	a, b = math.Abs(a), math.Abs(b)
	if a != a || b != b { return math.NaN() }
	if a >= b { return a }
	return b
}
