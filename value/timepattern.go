package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/modelbase/pavo/format"
)

// TimePattern maps recurring calendar intervals to numeric values, e.g.
// "M1-4,M9-12" covering the cold months and "M5-8" the warm ones.
//
// A pattern string is a union of interval intersections: unions separated
// by "," and intersections by ";". Each interval is a campaign prefix
// (Y, M, D, WD, h, m, s) followed by a range "<lo>-<hi>" or a single value.
type TimePattern struct {
	Patterns  []string
	Values    []float64
	IndexName string
}

// NewTimePattern builds a time pattern. Pattern and value counts must match
// and every pattern string must parse.
func NewTimePattern(patterns []string, values []float64) (*TimePattern, error) {
	if len(patterns) != len(values) {
		return nil, fmt.Errorf("pattern count %d does not match value count %d", len(patterns), len(values))
	}

	for _, p := range patterns {
		if err := ValidatePattern(p); err != nil {
			return nil, err
		}
	}

	return &TimePattern{Patterns: patterns, Values: values, IndexName: DefaultTimePatternIndexName}, nil
}

// patternPrefixes are the recognized interval campaign prefixes, longest
// first so "WD" wins over a bare prefix match.
var patternPrefixes = []string{"WD", "Y", "M", "D", "h", "m", "s"}

// ValidatePattern checks a single pattern string against the interval
// grammar.
func ValidatePattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return fmt.Errorf("empty time pattern")
	}

	for _, union := range strings.Split(pattern, ",") {
		for _, interval := range strings.Split(union, ";") {
			if err := validateInterval(strings.TrimSpace(interval)); err != nil {
				return fmt.Errorf("invalid time pattern %q: %w", pattern, err)
			}
		}
	}

	return nil
}

func validateInterval(interval string) error {
	matched := false
	var rest string
	for _, prefix := range patternPrefixes {
		if strings.HasPrefix(interval, prefix) {
			matched = true
			rest = interval[len(prefix):]

			break
		}
	}

	if !matched {
		return fmt.Errorf("unknown interval prefix in %q", interval)
	}
	if rest == "" {
		return fmt.Errorf("missing interval bounds in %q", interval)
	}

	lo, hi, ranged := strings.Cut(rest, "-")
	if _, err := strconv.Atoi(lo); err != nil {
		return fmt.Errorf("bad lower bound in %q", interval)
	}
	if ranged {
		if _, err := strconv.Atoi(hi); err != nil {
			return fmt.Errorf("bad upper bound in %q", interval)
		}
	}

	return nil
}

func (tp *TimePattern) isValue()          {}
func (tp *TimePattern) Type() format.Type { return format.TypeTimePattern }

func (tp *TimePattern) Equal(other Value) bool {
	o, ok := other.(*TimePattern)
	if !ok || o.IndexName != tp.IndexName || len(o.Patterns) != len(tp.Patterns) {
		return false
	}

	for i := range tp.Patterns {
		if o.Patterns[i] != tp.Patterns[i] || o.Values[i] != tp.Values[i] {
			return false
		}
	}

	return true
}

func (tp *TimePattern) Clone() Value {
	patterns := make([]string, len(tp.Patterns))
	copy(patterns, tp.Patterns)
	values := make([]float64, len(tp.Values))
	copy(values, tp.Values)

	return &TimePattern{Patterns: patterns, Values: values, IndexName: tp.IndexName}
}

func (tp *TimePattern) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range tp.Patterns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p)
		sb.WriteString(": ")
		sb.WriteString(strconv.FormatFloat(tp.Values[i], 'g', -1, 64))
	}
	sb.WriteByte('}')

	return sb.String()
}
