package rcgal

// Raw arithmetic between points and vectors.
//
// These operations don't validate their results. With valid operands
// the only way to get a non-finite result is an overflow of the
// subtraction or addition itself (e.g. math.MaxFloat64 - -math.MaxFloat64),
// in which case the returned value violates the finiteness invariant.
// Such values are rejected by [Point.ToPoint](), [Vector.ToVector]()
// and every function taking a [PointSource] or [VectorSource], and
// [Point.Distance]() / [Vector.Length]() report them as [Overflow].
// Use [Point.CheckedSub]() and [Point.CheckedAdd]() when the result
// must be validated immediately.

// Returns the displacement vector from other to self.
func (self Point) Sub(other Point) Vector {
	return Vector{ x: self.x - other.x, y: self.y - other.y }
}

// Returns the point translated by the given vector.
func (self Point) Add(vector Vector) Point {
	return Point{ x: self.x + vector.x, y: self.y + vector.y }
}

// Returns the point translated by the given displacement.
func (self Point) Translate(dx, dy float64) Point {
	return Point{ x: self.x + dx, y: self.y + dy }
}

// Like [Point.Sub](), but returns [Overflow] if the result is not finite.
func (self Point) CheckedSub(other Point) (Vector, error) {
	vector := self.Sub(other)
	if !vector.IsFinite() { return Vector{}, Overflow }
	return vector, nil
}

// Like [Point.Add](), but returns [Overflow] if the result is not finite.
func (self Point) CheckedAdd(vector Vector) (Point, error) {
	point := self.Add(vector)
	if !point.IsFinite() { return Point{}, Overflow }
	return point, nil
}

// Returns the sum of both vectors.
func (self Vector) Add(other Vector) Vector {
	return Vector{ x: self.x + other.x, y: self.y + other.y }
}

// Returns the difference of both vectors.
func (self Vector) Sub(other Vector) Vector {
	return Vector{ x: self.x - other.x, y: self.y - other.y }
}

// Returns the vector with both components negated. Never overflows.
func (self Vector) Neg() Vector {
	return Vector{ x: -self.x, y: -self.y }
}

// Returns the vector multiplied by the given factor.
func (self Vector) Scale(factor float64) Vector {
	return Vector{ x: self.x*factor, y: self.y*factor }
}
