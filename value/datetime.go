package value

import (
	"fmt"
	"time"

	"github.com/modelbase/pavo/errs"
	"github.com/modelbase/pavo/format"
)

// dateTimeLayouts are the accepted textual timestamp forms, tried in order.
// Timestamps are naive calendar instants: no zone designator is written and
// none is accepted.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateTime is a calendar timestamp scalar.
type DateTime struct {
	t time.Time
}

// NewDateTime wraps a time.Time as a DateTime value. Any location
// information is discarded: the wire format carries naive timestamps.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// ParseDateTime parses a textual timestamp in any accepted layout.
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return DateTime{t: t}, nil
		}
	}

	return DateTime{}, fmt.Errorf("%w: %q", errs.ErrBadTimestamp, s)
}

// Time returns the underlying instant.
func (d DateTime) Time() time.Time { return d.t }

func (d DateTime) isValue()          {}
func (d DateTime) Type() format.Type { return format.TypeDateTime }

func (d DateTime) Equal(other Value) bool {
	o, ok := other.(DateTime)
	return ok && o.t.Equal(d.t)
}

func (d DateTime) Clone() Value { return d }

// String returns the canonical textual form, seconds precision by default
// with microseconds appended only when the instant has a fractional part.
func (d DateTime) String() string {
	if d.t.Nanosecond() != 0 {
		return d.t.Format("2006-01-02T15:04:05.000000")
	}

	return d.t.Format("2006-01-02T15:04:05")
}

// Before reports whether d precedes other.
func (d DateTime) Before(other DateTime) bool { return d.t.Before(other.t) }
