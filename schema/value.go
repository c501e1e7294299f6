package schema

// ValueKind discriminates the two shapes a lookup can produce.
type ValueKind int

const (
	KindScalar ValueKind = iota
	KindVector
)

// Value is the tagged result of a single row lookup: either one text value
// or an ordered sequence of text values. The driver flattens a vector one
// level into the overall result list and appends a scalar as-is.
type Value struct {
	kind   ValueKind
	scalar string
	vector []string
}

// Scalar wraps a single text value.
func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Vector wraps an ordered sequence of text values.
func Vector(vs ...string) Value {
	return Value{kind: KindVector, vector: vs}
}

// Kind reports whether the value is a scalar or a vector.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Flatten returns the value as a flat slice: one element for a scalar, the
// elements in order for a vector.
func (v Value) Flatten() []string {
	if v.kind == KindVector {
		return v.vector
	}
	return []string{v.scalar}
}
