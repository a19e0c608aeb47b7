package value

import "github.com/modelbase/pavo/format"

// Default index names for the indexed container kinds.
const (
	DefaultArrayIndexName       = "i"
	DefaultTimePatternIndexName = "p"
	DefaultTimeSeriesIndexName  = "t"
	DefaultMapIndexName         = "x"
)

// Value is the closed variant over every parameter-value kind.
//
// Implementations live in this package only; isValue keeps the set closed.
type Value interface {
	isValue()

	// Type returns the wire type of the value. Plain scalars return
	// format.TypeNone since they are stored untagged.
	Type() format.Type

	// Equal reports exact structural equality with another value.
	Equal(other Value) bool

	// Clone returns a deep copy. The copy shares no mutable state with
	// the receiver.
	Clone() Value

	// String returns the display form of the value, the form used when
	// enumerating permitted values in resolver errors.
	String() string
}

var (
	_ Value = Float(0)
	_ Value = Bool(false)
	_ Value = String("")
	_ Value = Null
	_ Value = DateTime{}
	_ Value = Duration{}
	_ Value = (*Array)(nil)
	_ Value = (*TimePattern)(nil)
	_ Value = (*TimeSeriesFixedResolution)(nil)
	_ Value = (*TimeSeriesVariableResolution)(nil)
	_ Value = (*Map)(nil)
	_ Value = (*Table)(nil)
)

// IsScalar reports whether v is one of the plain scalar kinds (Float, Bool,
// String, Null). Calendar scalars are not plain: they carry a type tag.
func IsScalar(v Value) bool {
	switch v.(type) {
	case Float, Bool, String, null:
		return true
	default:
		return false
	}
}

// IsIndexed reports whether v is a container with at least one indexing
// dimension (array, time pattern, time series, map, table).
func IsIndexed(v Value) bool {
	switch v.(type) {
	case *Array, *TimePattern, *TimeSeriesFixedResolution, *TimeSeriesVariableResolution, *Map, *Table:
		return true
	default:
		return false
	}
}

// Of converts a native Go scalar into its Value. Integers are promoted to
// Float, matching the promotion the wire format applies on construction.
// Unsupported kinds report ok=false.
func Of(v any) (Value, bool) {
	switch x := v.(type) {
	case nil:
		return Null, true
	case bool:
		return Bool(x), true
	case int:
		return Float(x), true
	case int32:
		return Float(x), true
	case int64:
		return Float(x), true
	case float32:
		return Float(x), true
	case float64:
		return Float(x), true
	case string:
		return String(x), true
	case Value:
		return x, true
	default:
		return nil, false
	}
}
