// efloat is a small utility subpackage with the floating point
// classification policy used by rcgal. It decides whether a float64
// is finite, normal, subnormal and so on, and whether a computed
// result can be returned to the user, must be reported as an overflow,
// or can only be explained by a bug.
//
// Most users won't need this package directly, but it can be handy
// if you are validating coordinates before handing them to rcgal.
package efloat
