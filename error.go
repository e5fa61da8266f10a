package rcgal

// Error kinds reported by rcgal operations. Every failing operation
// returns exactly one of them, and the kind alone tells which contract
// was violated. Compare with == or [errors.Is].
type Error uint8

const (
	NotFiniteInput Error = 1 // an input coordinate is infinite or NaN
	InvalidInput   Error = 2 // finite input that doesn't meet a stronger precondition
	Overflow       Error = 3 // the result can't be represented as a finite float64
)

// Returns the name of the error kind (e.g.: "NotFiniteInput").
func (self Error) Error() string {
	switch self {
	case NotFiniteInput: return "NotFiniteInput"
	case InvalidInput: return "InvalidInput"
	case Overflow: return "Overflow"
	default:
		panic("invalid rcgal.Error")
	}
}

// Same as [Error.Error]().
func (self Error) String() string { return self.Error() }
