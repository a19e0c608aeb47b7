package blob

import (
	"fmt"

	"github.com/modelbase/pavo/internal/jsonw"
	"github.com/modelbase/pavo/value"
)

// Encode converts a value into its stored blob and type tag.
//
// Plain scalars encode as bare JSON literals with an empty tag (the type
// column stores NULL for them). Every other kind encodes as the JSON object
// shape fixed by the wire contract, tagged with its kind's tag string.
//
// Encoding never mutates v and is deterministic: identical input produces
// identical bytes on every call.
func Encode(v value.Value) ([]byte, string, error) {
	if v == nil {
		v = value.Null
	}

	w := jsonw.NewWriter()
	defer w.Release()

	if err := encodeInto(w, v, false); err != nil {
		return nil, "", err
	}

	tag, _ := v.Type().Tag()

	return w.Bytes(), tag, nil
}

// encodeInto writes the wire form of v. When embedded is true the value is
// a non-scalar child of a Map and its object form carries a leading "type"
// member instead of an external tag.
func encodeInto(w *jsonw.Writer, v value.Value, embedded bool) error {
	if v == nil {
		return fmt.Errorf("cannot encode a nil value")
	}

	switch x := v.(type) {
	case value.Float:
		w.Float(float64(x))
	case value.Bool:
		w.Bool(bool(x))
	case value.String:
		w.String(string(x))
	case value.DateTime:
		beginTagged(w, x, embedded)
		w.Key("data")
		w.String(x.String())
		w.EndObject()
	case value.Duration:
		beginTagged(w, x, embedded)
		w.Key("data")
		w.String(x.String())
		w.EndObject()
	case *value.Array:
		encodeArray(w, x, embedded)
	case *value.TimePattern:
		encodeTimePattern(w, x, embedded)
	case *value.TimeSeriesFixedResolution:
		encodeFixedSeries(w, x, embedded)
	case *value.TimeSeriesVariableResolution:
		encodeVariableSeries(w, x, embedded)
	case *value.Map:
		return encodeMap(w, x, embedded)
	case *value.Table:
		return encodeTable(w, x)
	default:
		if x.Equal(value.Null) {
			w.Null()
			return nil
		}

		return fmt.Errorf("cannot encode value of kind %T", v)
	}

	return nil
}

// beginTagged opens the object form of a tagged kind, writing the "type"
// member first when the value is embedded inside a Map.
func beginTagged(w *jsonw.Writer, v value.Value, embedded bool) {
	w.BeginObject()
	if embedded {
		w.Key("type")
		tag, _ := v.Type().Tag()
		w.String(tag)
	}
}

func encodeArray(w *jsonw.Writer, a *value.Array, embedded bool) {
	beginTagged(w, a, embedded)
	w.Key("value_type")
	w.String(a.ValueType.String())
	w.Key("data")
	w.BeginArray()
	for _, elem := range a.Values {
		writeIndexScalar(w, elem)
	}
	w.EndArray()
	writeIndexName(w, a.IndexName, value.DefaultArrayIndexName)
	w.EndObject()
}

func encodeTimePattern(w *jsonw.Writer, tp *value.TimePattern, embedded bool) {
	beginTagged(w, tp, embedded)
	w.Key("data")
	w.BeginObject()
	for i, pattern := range tp.Patterns {
		w.Key(pattern)
		w.Float(tp.Values[i])
	}
	w.EndObject()
	writeIndexName(w, tp.IndexName, value.DefaultTimePatternIndexName)
	w.EndObject()
}

func encodeFixedSeries(w *jsonw.Writer, ts *value.TimeSeriesFixedResolution, embedded bool) {
	beginTagged(w, ts, embedded)
	w.Key("index")
	w.BeginObject()
	w.Key("start")
	w.String(ts.Start.String())
	w.Key("resolution")
	if len(ts.Resolution) == 1 {
		w.String(ts.Resolution[0].String())
	} else {
		w.BeginArray()
		for _, r := range ts.Resolution {
			w.String(r.String())
		}
		w.EndArray()
	}
	w.Key("ignore_year")
	w.Bool(ts.IgnoreYear)
	w.Key("repeat")
	w.Bool(ts.Repeat)
	w.EndObject()
	w.Key("data")
	w.BeginArray()
	for _, v := range ts.Values {
		w.Float(v)
	}
	w.EndArray()
	writeIndexName(w, ts.IndexName, value.DefaultTimeSeriesIndexName)
	w.EndObject()
}

func encodeVariableSeries(w *jsonw.Writer, ts *value.TimeSeriesVariableResolution, embedded bool) {
	beginTagged(w, ts, embedded)
	w.Key("data")
	w.BeginObject()
	for i, stamp := range ts.Stamps {
		w.Key(stamp.String())
		w.Float(ts.Values[i])
	}
	w.EndObject()
	// Both flags default to false for explicit stamps; the index object is
	// written only when one of them deviates.
	if ts.IgnoreYear || ts.Repeat {
		w.Key("index")
		w.BeginObject()
		w.Key("ignore_year")
		w.Bool(ts.IgnoreYear)
		w.Key("repeat")
		w.Bool(ts.Repeat)
		w.EndObject()
	}
	writeIndexName(w, ts.IndexName, value.DefaultTimeSeriesIndexName)
	w.EndObject()
}

func encodeMap(w *jsonw.Writer, m *value.Map, embedded bool) error {
	beginTagged(w, m, embedded)
	w.Key("index_type")
	w.String(m.IndexType.String())
	w.Key("data")
	w.BeginArray()
	for _, pair := range m.Pairs {
		w.BeginArray()
		writeIndexScalar(w, pair.Index)
		if err := encodeInto(w, pair.Value, true); err != nil {
			return err
		}
		w.EndArray()
	}
	w.EndArray()
	writeIndexName(w, m.IndexName, value.DefaultMapIndexName)
	w.EndObject()

	return nil
}

// encodeTable writes a table as a header row of column names followed by
// one array per value row.
func encodeTable(w *jsonw.Writer, t *value.Table) error {
	w.BeginArray()
	w.BeginArray()
	for _, name := range t.Header {
		w.String(name)
	}
	w.EndArray()
	for _, row := range t.Rows {
		w.BeginArray()
		for _, cell := range row {
			if err := encodeInto(w, cell, true); err != nil {
				return err
			}
		}
		w.EndArray()
	}
	w.EndArray()

	return nil
}

// writeIndexScalar writes a Map index or Array element in its wire form:
// floats as numbers, everything else as its textual form.
func writeIndexScalar(w *jsonw.Writer, v value.Value) {
	if f, ok := v.(value.Float); ok {
		w.Float(float64(f))
		return
	}

	w.String(v.String())
}

// writeIndexName writes the optional index_name member, omitted when the
// name is the kind's default.
func writeIndexName(w *jsonw.Writer, name, defaultName string) {
	if name != "" && name != defaultName {
		w.Key("index_name")
		w.String(name)
	}
}
