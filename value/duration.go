package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/modelbase/pavo/errs"
	"github.com/modelbase/pavo/format"
)

// DurationUnit is the calendar unit of a Duration.
type DurationUnit uint8

const (
	UnitSecond DurationUnit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitMonth
	UnitYear
)

// unitSuffixes holds the canonical single-letter suffixes. Case matters:
// "m" is minute while "M" is month, and "Y" is year.
var unitSuffixes = [...]string{
	UnitSecond: "s",
	UnitMinute: "m",
	UnitHour:   "h",
	UnitDay:    "D",
	UnitMonth:  "M",
	UnitYear:   "Y",
}

var unitWords = [...]string{
	UnitSecond: "second",
	UnitMinute: "minute",
	UnitHour:   "hour",
	UnitDay:    "day",
	UnitMonth:  "month",
	UnitYear:   "year",
}

// Suffix returns the canonical single-letter suffix of the unit.
func (u DurationUnit) Suffix() string { return unitSuffixes[u] }

func (u DurationUnit) String() string { return unitWords[u] }

// Duration is a calendar duration scalar: an integer count of a calendar
// unit. Month and year counts have no fixed length in seconds, which is why
// this is not a time.Duration.
type Duration struct {
	Count int
	Unit  DurationUnit
}

// NewDuration builds a duration from a count and unit.
func NewDuration(count int, unit DurationUnit) Duration {
	return Duration{Count: count, Unit: unit}
}

// ParseDuration parses a textual duration.
//
// Accepted forms:
//   - canonical: an integer followed by a unit suffix, e.g. "7s", "30m",
//     "3M", "8Y"
//   - verbose: an integer, whitespace, and a unit word with optional
//     plural "s", e.g. "4 seconds", "1 hour"
//   - bare integer: a count of minutes, kept for legacy rows
func ParseDuration(s string) (Duration, error) {
	trimmed := strings.TrimSpace(s)

	digits := 0
	for digits < len(trimmed) && (trimmed[digits] >= '0' && trimmed[digits] <= '9' || digits == 0 && (trimmed[digits] == '-' || trimmed[digits] == '+')) {
		digits++
	}

	count, err := strconv.Atoi(trimmed[:digits])
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q", errs.ErrBadDuration, s)
	}

	rest := strings.TrimSpace(trimmed[digits:])
	if rest == "" {
		return Duration{Count: count, Unit: UnitMinute}, nil
	}

	unit, ok := parseDurationUnit(rest)
	if !ok {
		return Duration{}, fmt.Errorf("%w: %q", errs.ErrBadDuration, s)
	}

	return Duration{Count: count, Unit: unit}, nil
}

func parseDurationUnit(s string) (DurationUnit, bool) {
	switch s {
	case "s":
		return UnitSecond, true
	case "m":
		return UnitMinute, true
	case "h":
		return UnitHour, true
	case "D", "d":
		return UnitDay, true
	case "M":
		return UnitMonth, true
	case "Y", "y":
		return UnitYear, true
	}

	word := strings.ToLower(strings.TrimSuffix(s, "s"))
	for unit, name := range unitWords {
		if word == name {
			return DurationUnit(unit), true
		}
	}

	return 0, false
}

func (d Duration) isValue()          {}
func (d Duration) Type() format.Type { return format.TypeDuration }

func (d Duration) Equal(other Value) bool {
	o, ok := other.(Duration)
	return ok && o == d
}

func (d Duration) Clone() Value { return d }

// String returns the canonical textual form, e.g. "7s" or "3M".
func (d Duration) String() string {
	return strconv.Itoa(d.Count) + d.Unit.Suffix()
}

// AddTo advances an instant by the duration. Second, minute and hour counts
// shift by an exact number of seconds; day, month and year counts use
// calendar arithmetic so crossing a month boundary behaves like a calendar,
// not like a fixed number of hours.
func (d Duration) AddTo(t time.Time) time.Time {
	switch d.Unit {
	case UnitSecond:
		return t.Add(time.Duration(d.Count) * time.Second)
	case UnitMinute:
		return t.Add(time.Duration(d.Count) * time.Minute)
	case UnitHour:
		return t.Add(time.Duration(d.Count) * time.Hour)
	case UnitDay:
		return t.AddDate(0, 0, d.Count)
	case UnitMonth:
		return t.AddDate(0, d.Count, 0)
	case UnitYear:
		return t.AddDate(d.Count, 0, 0)
	default:
		return t
	}
}
