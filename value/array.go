package value

import (
	"fmt"
	"strings"

	"github.com/modelbase/pavo/format"
)

// Array is a homogeneous ordered sequence of scalar values. Elements are
// floats, strings, timestamps or durations; integers are promoted to floats
// on construction so the element kind stays closed.
type Array struct {
	ValueType format.IndexType
	Values    []Value
	IndexName string
}

// NewArray builds an array from values, inferring the element kind from the
// first element. An empty array defaults to float elements. Mixed element
// kinds are rejected.
func NewArray(values []Value) (*Array, error) {
	valueType := format.IndexFloat
	if len(values) > 0 {
		vt, ok := ScalarIndexType(values[0])
		if !ok {
			return nil, fmt.Errorf("array element 0 has non-scalar kind %T", values[0])
		}
		valueType = vt
	}

	a := &Array{ValueType: valueType, Values: values, IndexName: DefaultArrayIndexName}
	for i, v := range values {
		vt, ok := ScalarIndexType(v)
		if !ok || vt != valueType {
			return nil, fmt.Errorf("array element %d does not have element kind %s", i, valueType)
		}
	}

	return a, nil
}

// NewFloatArray builds a float array from native values.
func NewFloatArray(values []float64) *Array {
	elems := make([]Value, len(values))
	for i, v := range values {
		elems[i] = Float(v)
	}

	return &Array{ValueType: format.IndexFloat, Values: elems, IndexName: DefaultArrayIndexName}
}

// NewStringArray builds a string array from native values.
func NewStringArray(values []string) *Array {
	elems := make([]Value, len(values))
	for i, v := range values {
		elems[i] = String(v)
	}

	return &Array{ValueType: format.IndexString, Values: elems, IndexName: DefaultArrayIndexName}
}

// ScalarIndexType classifies a value as one of the index/element scalar
// kinds. Booleans, nulls and containers report ok=false.
func ScalarIndexType(v Value) (format.IndexType, bool) {
	switch v.(type) {
	case Float:
		return format.IndexFloat, true
	case String:
		return format.IndexString, true
	case DateTime:
		return format.IndexDateTime, true
	case Duration:
		return format.IndexDuration, true
	default:
		return 0, false
	}
}

func (a *Array) isValue()          {}
func (a *Array) Type() format.Type { return format.TypeArray }

func (a *Array) Equal(other Value) bool {
	o, ok := other.(*Array)
	if !ok || o.ValueType != a.ValueType || o.IndexName != a.IndexName || len(o.Values) != len(a.Values) {
		return false
	}

	for i, v := range a.Values {
		if !v.Equal(o.Values[i]) {
			return false
		}
	}

	return true
}

func (a *Array) Clone() Value {
	values := make([]Value, len(a.Values))
	for i, v := range a.Values {
		values[i] = v.Clone()
	}

	return &Array{ValueType: a.ValueType, Values: values, IndexName: a.IndexName}
}

func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
