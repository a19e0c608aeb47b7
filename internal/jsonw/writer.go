// Package jsonw implements the deterministic JSON dialect of the persisted
// wire format.
//
// Stored blobs are the bit-exact contract shared with every other tool that
// reads the database, so the writer cannot delegate to a generic JSON
// marshaler: object members keep insertion order, separators are ", " and
// ": ", non-ASCII characters are escaped as \uXXXX, and floats always carry
// a decimal point (or an exponent) so numeric values survive a round trip
// without collapsing into integers.
package jsonw

import (
	"math"
	"strconv"
	"strings"

	"github.com/modelbase/pavo/internal/pool"
)

// Writer builds a wire-format JSON document into a pooled buffer.
//
// The zero value is not usable; obtain instances with NewWriter and return
// the buffer with Release after taking the bytes.
type Writer struct {
	buf *pool.ByteBuffer
	// needSep tracks whether the next element at the current nesting level
	// must be preceded by the ", " separator.
	needSep []bool
}

// NewWriter returns a writer backed by a pooled buffer.
func NewWriter() *Writer {
	return &Writer{
		buf:     pool.GetBuffer(),
		needSep: make([]bool, 0, 8),
	}
}

// Bytes returns a copy of the document written so far. The copy is owned by
// the caller and stays valid after Release.
func (w *Writer) Bytes() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())

	return out
}

// Release returns the underlying buffer to the pool. The writer must not be
// used afterwards.
func (w *Writer) Release() {
	pool.PutBuffer(w.buf)
	w.buf = nil
}

func (w *Writer) sep() {
	if n := len(w.needSep); n > 0 {
		if w.needSep[n-1] {
			w.buf.MustWrite([]byte(", "))
		} else {
			w.needSep[n-1] = true
		}
	}
}

// BeginObject opens a JSON object.
func (w *Writer) BeginObject() {
	w.sep()
	w.buf.MustWriteByte('{')
	w.needSep = append(w.needSep, false)
}

// EndObject closes the innermost object.
func (w *Writer) EndObject() {
	w.buf.MustWriteByte('}')
	w.needSep = w.needSep[:len(w.needSep)-1]
}

// BeginArray opens a JSON array.
func (w *Writer) BeginArray() {
	w.sep()
	w.buf.MustWriteByte('[')
	w.needSep = append(w.needSep, false)
}

// EndArray closes the innermost array.
func (w *Writer) EndArray() {
	w.buf.MustWriteByte(']')
	w.needSep = w.needSep[:len(w.needSep)-1]
}

// Key writes an object member key followed by the ": " separator.
func (w *Writer) Key(name string) {
	w.sep()
	w.writeString(name)
	w.buf.MustWrite([]byte(": "))
	// The value that follows is part of this member, not a new element, so
	// it must not be preceded by another separator.
	w.needSep[len(w.needSep)-1] = false
}

// String writes a string value.
func (w *Writer) String(s string) {
	w.sep()
	w.writeString(s)
}

// Float writes a numeric value in the wire float form.
func (w *Writer) Float(f float64) {
	w.sep()
	w.buf.MustWrite([]byte(FormatFloat(f)))
}

// Int writes an integer value without a decimal point.
func (w *Writer) Int(i int64) {
	w.sep()
	w.buf.MustWrite([]byte(strconv.FormatInt(i, 10)))
}

// Bool writes a boolean value.
func (w *Writer) Bool(b bool) {
	w.sep()
	if b {
		w.buf.MustWrite([]byte("true"))
	} else {
		w.buf.MustWrite([]byte("false"))
	}
}

// Null writes the null literal.
func (w *Writer) Null() {
	w.sep()
	w.buf.MustWrite([]byte("null"))
}

// Raw writes pre-encoded JSON verbatim, preceded by a separator when one is
// due. The caller guarantees data is a valid document fragment.
func (w *Writer) Raw(data []byte) {
	w.sep()
	w.buf.MustWrite(data)
}

const hexDigits = "0123456789abcdef"

// writeString escapes and quotes s. Non-ASCII runes are written as \uXXXX
// escapes (surrogate pairs beyond the basic plane) to match the dialect the
// rest of the toolchain produces.
func (w *Writer) writeString(s string) {
	w.buf.MustWriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			w.buf.MustWrite([]byte(`\"`))
		case r == '\\':
			w.buf.MustWrite([]byte(`\\`))
		case r == '\n':
			w.buf.MustWrite([]byte(`\n`))
		case r == '\r':
			w.buf.MustWrite([]byte(`\r`))
		case r == '\t':
			w.buf.MustWrite([]byte(`\t`))
		case r == '\b':
			w.buf.MustWrite([]byte(`\b`))
		case r == '\f':
			w.buf.MustWrite([]byte(`\f`))
		case r < 0x20 || r > 0x7e:
			w.writeEscaped(r)
		default:
			w.buf.MustWriteByte(byte(r))
		}
	}
	w.buf.MustWriteByte('"')
}

func (w *Writer) writeEscaped(r rune) {
	if r > 0xffff {
		// Encode as a UTF-16 surrogate pair.
		r -= 0x10000
		hi := 0xd800 + (r >> 10)
		lo := 0xdc00 + (r & 0x3ff)
		w.writeEscaped(hi)
		w.writeEscaped(lo)

		return
	}

	w.buf.MustWrite([]byte{'\\', 'u',
		hexDigits[(r>>12)&0xf], hexDigits[(r>>8)&0xf],
		hexDigits[(r>>4)&0xf], hexDigits[r&0xf]})
}

// FormatFloat renders f in the wire float form: the shortest decimal that
// round-trips, always carrying a decimal point or an exponent. Plain
// notation is used while the decimal exponent stays within [-4, 16);
// outside that range the value switches to scientific notation with a
// two-digit, signed exponent.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		exp, _ := strconv.Atoi(s[i+1:])
		if exp >= -4 && exp < 16 {
			s = strconv.FormatFloat(f, 'f', -1, 64)
		} else {
			s = padExponent(s, i)
		}
	}

	if strings.IndexByte(s, '.') < 0 && strings.IndexByte(s, 'e') < 0 {
		s += ".0"
	}

	return s
}

// padExponent normalizes an 'e' exponent to at least two digits with an
// explicit sign, e.g. "1e17" becomes "1e+17" and "1e-5" becomes "1e-05".
func padExponent(s string, ePos int) string {
	mant, exp := s[:ePos], s[ePos+1:]

	sign := "+"
	if exp[0] == '+' || exp[0] == '-' {
		sign = string(exp[0])
		exp = exp[1:]
	}

	if len(exp) < 2 {
		exp = "0" + exp
	}

	return mant + "e" + sign + exp
}
