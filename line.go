package rcgal

// A 2D line, defined by an anchor point it passes through and
// a unit direction vector.
//
// The zero value is not a valid line, as its direction has length
// zero. Use [NewLine]() to create lines.
type Line struct {
	location  Point
	direction Vector // always a unit vector
}

// Creates a line passing through the given location towards the
// given direction. The direction is normalized, so it can have any
// length as long as [Vector.Normalize]() accepts it.
//
// Returns [NotFiniteInput] if the location or direction can't be
// converted due to infinite or NaN coordinates, and [InvalidInput] if
// the direction's largest component magnitude isn't a normal number
// (zero or subnormal directions). Location errors take precedence.
func NewLine(location PointSource, direction VectorSource) (Line, error) {
	point, err := location.ToPoint()
	if err != nil { return Line{}, err }
	vector, err := direction.ToVector()
	if err != nil { return Line{}, err }
	unit, err := vector.Normalize()
	if err != nil { return Line{}, err }
	return Line{ location: point, direction: unit }, nil
}

// Same as [NewLine](), but taking the raw location and direction
// coordinates.
func LineFromFloat64s(x, y, dx, dy float64) (Line, error) {
	return NewLine(Coords{ x, y }, Coords{ dx, dy })
}

// Returns the anchor point through which the line passes.
func (self Line) Location() Point { return self.location }

// Returns the direction of the line. Always a unit vector
// for lines created with [NewLine]().
func (self Line) Direction() Vector { return self.direction }

// Returns whether the line was created through [NewLine]() (or
// any other constructor), as opposed to being a zero value.
func (self Line) IsValid() bool {
	return self.location.IsFinite() && self.direction.IsUnit()
}

// Returns a textual representation of the line
// (e.g.: "line through (5, 6) towards (0.6, 0.8)").
func (self Line) String() string {
	if !self.IsValid() { return "invalid line" }
	return "line through " + self.location.String() + " towards " + self.direction.String()
}

