// Package convert implements structural conversions between generic nested
// maps and their specialized container counterparts.
//
// A map keyed by timestamps with scalar values is the same data as a
// variable-resolution time series; Generalize and SpecializeLeaves move
// between the two representations without losing structure, and
// FlattenToTable / ToNestedDict project maps into tabular and plain nested
// forms for export pipelines.
//
// All conversions return freshly built values and never mutate their input.
package convert

import (
	"github.com/modelbase/pavo/format"
	"github.com/modelbase/pavo/value"
)

// SpecializeLeaves recursively replaces eligible leaf maps with their
// specialized container counterpart.
//
// A leaf map is one whose every value is a plain scalar. When such a map is
// keyed by timestamps and all of its values are numbers, it becomes an
// equivalent variable-resolution time series with the same index name and
// default flags. Any other map keeps its shape; non-leaf maps are recursed
// into without being altered themselves.
//
// SpecializeLeaves is the inverse of Generalize for eligible inputs:
// SpecializeLeaves(Generalize(x)) == x exactly, index names included.
func SpecializeLeaves(v value.Value) value.Value {
	m, ok := v.(*value.Map)
	if !ok {
		return v
	}

	if m.IndexType == format.IndexDateTime && m.IsLeaf() {
		if ts, ok := leafSeries(m); ok {
			return ts
		}
	}

	pairs := make([]value.MapPair, len(m.Pairs))
	for i, p := range m.Pairs {
		pairs[i] = value.MapPair{Index: p.Index.Clone(), Value: SpecializeLeaves(p.Value)}
	}

	return &value.Map{IndexType: m.IndexType, Pairs: pairs, IndexName: m.IndexName}
}

// leafSeries converts a timestamp-keyed leaf map into a time series,
// reporting ok=false when any value is not a plain number.
func leafSeries(m *value.Map) (*value.TimeSeriesVariableResolution, bool) {
	stamps := make([]value.DateTime, len(m.Pairs))
	values := make([]float64, len(m.Pairs))
	for i, p := range m.Pairs {
		stamp, ok := p.Index.(value.DateTime)
		if !ok {
			return nil, false
		}
		f, ok := p.Value.(value.Float)
		if !ok {
			return nil, false
		}
		stamps[i] = stamp
		values[i] = float64(f)
	}

	return &value.TimeSeriesVariableResolution{
		Stamps:    stamps,
		Values:    values,
		IndexName: m.IndexName,
	}, true
}

// Generalize converts specialized containers into equivalent generic maps,
// deriving the pairs from the container's own indexing: arrays index by
// running position, time patterns by pattern string, and both time series
// forms by timestamp. Nested map values are generalized recursively, so a
// map of time series becomes a map of maps. Scalars and tables pass
// through unchanged.
func Generalize(v value.Value) value.Value {
	switch x := v.(type) {
	case *value.Array:
		pairs := make([]value.MapPair, len(x.Values))
		for i, elem := range x.Values {
			pairs[i] = value.MapPair{Index: value.Float(i), Value: elem.Clone()}
		}

		return &value.Map{IndexType: format.IndexFloat, Pairs: pairs, IndexName: x.IndexName}
	case *value.TimePattern:
		pairs := make([]value.MapPair, len(x.Patterns))
		for i, pattern := range x.Patterns {
			pairs[i] = value.MapPair{Index: value.String(pattern), Value: value.Float(x.Values[i])}
		}

		return &value.Map{IndexType: format.IndexString, Pairs: pairs, IndexName: x.IndexName}
	case *value.TimeSeriesFixedResolution:
		return stampPairs(x.Stamps(), x.Values, x.IndexName)
	case *value.TimeSeriesVariableResolution:
		return stampPairs(x.Stamps, x.Values, x.IndexName)
	case *value.Map:
		pairs := make([]value.MapPair, len(x.Pairs))
		for i, p := range x.Pairs {
			pairs[i] = value.MapPair{Index: p.Index.Clone(), Value: Generalize(p.Value)}
		}

		return &value.Map{IndexType: x.IndexType, Pairs: pairs, IndexName: x.IndexName}
	default:
		return v
	}
}

func stampPairs(stamps []value.DateTime, values []float64, indexName string) *value.Map {
	pairs := make([]value.MapPair, len(stamps))
	for i, stamp := range stamps {
		pairs[i] = value.MapPair{Index: stamp, Value: value.Float(values[i])}
	}

	return &value.Map{IndexType: format.IndexDateTime, Pairs: pairs, IndexName: indexName}
}

// FlattenToTable walks a possibly unevenly nested map depth-first and emits
// one row per leaf as [index_1, ..., index_k, value].
//
// When sibling branches nest to different depths the rows come out with
// different widths; pad=true appends empty markers until every row spans
// the full column count, pad=false leaves the rows jagged.
func FlattenToTable(m *value.Map, pad bool, empty value.Value) [][]value.Value {
	var rows [][]value.Value
	flattenInto(m, nil, &rows)

	if pad {
		width := 0
		for _, row := range rows {
			if len(row) > width {
				width = len(row)
			}
		}
		for i, row := range rows {
			for len(row) < width {
				row = append(row, empty)
			}
			rows[i] = row
		}
	}

	return rows
}

func flattenInto(m *value.Map, prefix []value.Value, rows *[][]value.Value) {
	for _, p := range m.Pairs {
		path := append(append([]value.Value{}, prefix...), p.Index)
		if child, ok := p.Value.(*value.Map); ok {
			flattenInto(child, path, rows)
			continue
		}

		*rows = append(*rows, append(path, p.Value))
	}
}

// ToNestedDict converts a map into ordinary nested key-value form. Keys are
// the stringified indexes, scalar values become their native Go kinds, and
// embedded maps recurse. Specialized container values are generalized
// first so the result is plain data all the way down.
func ToNestedDict(m *value.Map) map[string]any {
	out := make(map[string]any, len(m.Pairs))
	for _, p := range m.Pairs {
		key := p.Index.String()
		if _, exists := out[key]; exists {
			// Duplicate indexes resolve by first match.
			continue
		}
		out[key] = nestedValue(p.Value)
	}

	return out
}

func nestedValue(v value.Value) any {
	switch x := v.(type) {
	case value.Float:
		return float64(x)
	case value.Bool:
		return bool(x)
	case value.String:
		return string(x)
	case value.DateTime, value.Duration:
		return x.String()
	case *value.Map:
		return ToNestedDict(x)
	case *value.Array, *value.TimePattern, *value.TimeSeriesFixedResolution, *value.TimeSeriesVariableResolution:
		generalized, _ := Generalize(v).(*value.Map)
		return ToNestedDict(generalized)
	default:
		return nil
	}
}
