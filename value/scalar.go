package value

import (
	"github.com/modelbase/pavo/format"
	"github.com/modelbase/pavo/internal/jsonw"
)

// Float is a plain numeric scalar. The model has no integer kind: integers
// are promoted to Float on construction, so a stored 23 and a stored 23.0
// are the same value.
type Float float64

func (f Float) isValue()          {}
func (f Float) Type() format.Type { return format.TypeNone }

func (f Float) Equal(other Value) bool {
	o, ok := other.(Float)
	return ok && o == f
}

func (f Float) Clone() Value { return f }

// String renders the float in the wire dialect: integral values keep a
// trailing ".0" so they stay distinguishable from integers.
func (f Float) String() string { return jsonw.FormatFloat(float64(f)) }

// Bool is a plain boolean scalar.
type Bool bool

func (b Bool) isValue()          {}
func (b Bool) Type() format.Type { return format.TypeNone }

func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && o == b
}

func (b Bool) Clone() Value { return b }

func (b Bool) String() string {
	if b {
		return "true"
	}

	return "false"
}

// String is a plain text scalar.
type String string

func (s String) isValue()          {}
func (s String) Type() format.Type { return format.TypeNone }

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && o == s
}

func (s String) Clone() Value   { return s }
func (s String) String() string { return string(s) }

// null is the absent value. Use the Null singleton.
type null struct{}

// Null is the single null value. Rows whose blob is the JSON literal null
// decode to it, and the resolver exempts it from value-list membership.
var Null = null{}

func (n null) isValue()          {}
func (n null) Type() format.Type { return format.TypeNone }

func (n null) Equal(other Value) bool {
	_, ok := other.(null)
	return ok
}

func (n null) Clone() Value   { return Null }
func (n null) String() string { return "null" }
