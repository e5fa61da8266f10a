package rcgal

import "math"

import "github.com/rcgal/rcgal/efloat"

const machineEpsilon = 0x1p-52

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

// Relative equality with an absolute epsilon of efloat.MinNormal and
// a max relative difference of machineEpsilon.
func relEq(a, b float64) bool {
	if a == b { return true }
	if math.IsInf(a, 0) || math.IsInf(b, 0) { return false }
	diff := math.Abs(a - b)
	if diff <= efloat.MinNormal { return true }
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= largest*machineEpsilon
}

func mustPoint(x, y float64) Point {
	point, err := NewPoint(x, y)
	if err != nil { panic(err) }
	return point
}

func mustVector(x, y float64) Vector {
	vector, err := NewVector(x, y)
	if err != nil { panic(err) }
	return vector
}
