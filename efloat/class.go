package efloat

import "math"

// Smallest positive normal float64 (2^-1022). Values below this
// magnitude (other than zero) are subnormals.
const MinNormal float64 = 0x1p-1022

// Floating point category of a float64 value. The zero value is
// [Zero], which is also the category of negative zero.
type Class uint8

const (
	Zero      Class = 0 // +0 or -0
	Subnormal Class = 1 // nonzero, magnitude below MinNormal
	Normal    Class = 2 // finite, magnitude at or above MinNormal
	Infinite  Class = 3 // +Inf or -Inf
	NaN       Class = 4
)

// Returns the category of the given value.
func Classify(value float64) Class {
	if value != value { return NaN }
	abs := math.Abs(value)
	if abs == 0 { return Zero }
	if abs < MinNormal { return Subnormal }
	if abs > math.MaxFloat64 { return Infinite }
	return Normal
}

// Returns whether the value is neither infinite nor NaN. Zero and
// subnormals are finite.
func IsFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// Returns whether the value is a normal number. Zero, subnormals,
// infinities and NaN are not.
func IsNormal(value float64) bool {
	return Classify(value) == Normal
}

// Returns whether the class is finite ([Zero], [Subnormal] or [Normal]).
func (self Class) IsFinite() bool {
	return self <= Normal
}

// Returns the name of the class (e.g.: "Subnormal").
func (self Class) String() string {
	switch self {
	case Zero: return "Zero"
	case Subnormal: return "Subnormal"
	case Normal: return "Normal"
	case Infinite: return "Infinite"
	case NaN: return "NaN"
	default:
		panic("invalid efloat.Class")
	}
}
