package rcgal

import "strconv"

import "github.com/rcgal/rcgal/efloat"

// Computes the hypotenuse of x and y and classifies the result.
// The operation name is only used for the panic message.
func hypotResult(x, y float64, operation string) (float64, error) {
	// raw arithmetic can produce NaN components, which must be
	// rejected before they can be mistaken for a broken hypot
	if x != x || y != y { return 0, NotFiniteInput }

	return classifyResult(efloat.Hypot(x, y), operation)
}

// Applies the efloat result policy to a value computed from
// non-NaN inputs. NaN results panic, as they can only be bugs.
func classifyResult(value float64, operation string) (float64, error) {
	switch efloat.ClassifyResult(value) {
	case efloat.Valid:
		return value, nil
	case efloat.Overflowed:
		return 0, Overflow
	default:
		panic("broken code: " + operation + " produced NaN from non-NaN inputs")
	}
}

// Returns "(x, y)" with the shortest exact representation of each value.
func formatPair(x, y float64) string {
	xs := strconv.FormatFloat(x, 'g', -1, 64)
	ys := strconv.FormatFloat(y, 'g', -1, 64)
	return "(" + xs + ", " + ys + ")"
}
