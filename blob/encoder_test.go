package blob

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbase/pavo/format"
	"github.com/modelbase/pavo/value"
)

func TestEncode_PlainScalars(t *testing.T) {
	tests := []struct {
		name     string
		input    value.Value
		expected string
	}{
		{"integral float", value.Float(23), "23.0"},
		{"fraction", value.Float(-2.3), "-2.3"},
		{"bool", value.Bool(true), "true"},
		{"string", value.String("base_gas"), `"base_gas"`},
		{"null", value.Null, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, tag, err := Encode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
			assert.Empty(t, tag, "plain scalars are stored untagged")
		})
	}
}

func TestEncode_NilIsNull(t *testing.T) {
	data, tag, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
	assert.Empty(t, tag)
}

func TestEncode_DateTime(t *testing.T) {
	dt, err := value.ParseDateTime("2019-06-26T12:50:13")
	require.NoError(t, err)

	data, tag, err := Encode(dt)
	require.NoError(t, err)
	assert.Equal(t, `{"data": "2019-06-26T12:50:13"}`, string(data))
	assert.Equal(t, format.TagDateTime, tag)
}

func TestEncode_Duration(t *testing.T) {
	data, tag, err := Encode(value.NewDuration(4, value.UnitSecond))
	require.NoError(t, err)
	assert.Equal(t, `{"data": "4s"}`, string(data))
	assert.Equal(t, format.TagDuration, tag)
}

func TestEncode_FloatArray(t *testing.T) {
	data, tag, err := Encode(value.NewFloatArray([]float64{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, `{"value_type": "float", "data": [1.0, 2.0]}`, string(data))
	assert.Equal(t, format.TagArray, tag)
}

func TestEncode_ArrayWithCustomIndexName(t *testing.T) {
	a := value.NewStringArray([]string{"helsinki", "espoo"})
	a.IndexName = "node"

	data, _, err := Encode(a)
	require.NoError(t, err)
	assert.Equal(t, `{"value_type": "str", "data": ["helsinki", "espoo"], "index_name": "node"}`, string(data))
}

func TestEncode_MapPair(t *testing.T) {
	m, err := value.NewMap([]value.MapPair{
		{Index: value.String("a"), Value: value.Float(-2.3)},
	})
	require.NoError(t, err)

	data, tag, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, `{"index_type": "str", "data": [["a", -2.3]]}`, string(data))
	assert.Equal(t, format.TagMap, tag)
}

func TestEncode_VariableSeries_IndexObjectOnlyWhenFlagged(t *testing.T) {
	stamps := []value.DateTime{
		mustStamp(t, "2019-06-01T00:00:00"),
		mustStamp(t, "2019-06-01T01:00:00"),
	}

	plain, err := value.NewTimeSeriesVariableResolution(stamps, []float64{4, 5.5}, false, false)
	require.NoError(t, err)
	data, tag, err := Encode(plain)
	require.NoError(t, err)
	assert.Equal(t, `{"data": {"2019-06-01T00:00:00": 4.0, "2019-06-01T01:00:00": 5.5}}`, string(data))
	assert.Equal(t, format.TagTimeSeries, tag)

	flagged, err := value.NewTimeSeriesVariableResolution(stamps, []float64{4, 5.5}, false, true)
	require.NoError(t, err)
	data, _, err = Encode(flagged)
	require.NoError(t, err)
	assert.Equal(t,
		`{"data": {"2019-06-01T00:00:00": 4.0, "2019-06-01T01:00:00": 5.5}, "index": {"ignore_year": false, "repeat": true}}`,
		string(data))
}

func TestEncode_Deterministic(t *testing.T) {
	m, err := value.NewMap([]value.MapPair{
		{Index: value.String("gas"), Value: value.NewFloatArray([]float64{1, 2, 3})},
		{Index: value.String("coal"), Value: value.Float(12)},
	})
	require.NoError(t, err)

	first, _, err := Encode(m)
	require.NoError(t, err)
	second, _, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncode_Golden(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) value.Value
	}{
		{
			name: "fixed_series",
			build: func(t *testing.T) value.Value {
				ts, err := value.NewTimeSeriesFixedResolution(
					mustStamp(t, "2007-01-01T00:00:00"),
					[]value.Duration{value.NewDuration(1, value.UnitHour)},
					[]float64{1, 2, 3}, false, false)
				require.NoError(t, err)

				return ts
			},
		},
		{
			name: "time_pattern",
			build: func(t *testing.T) value.Value {
				tp, err := value.NewTimePattern([]string{"M1-4,M9-12", "M5-8"}, []float64{300, 221.5})
				require.NoError(t, err)

				return tp
			},
		},
		{
			name: "nested_map",
			build: func(t *testing.T) value.Value {
				inner, err := value.NewMap([]value.MapPair{
					{Index: mustStamp(t, "2019-01-01T00:00:00"), Value: value.Float(1)},
					{Index: mustStamp(t, "2019-01-01T01:00:00"), Value: value.Float(2)},
				})
				require.NoError(t, err)
				outer, err := value.NewMap([]value.MapPair{
					{Index: value.String("scenario_a"), Value: inner},
					{Index: value.String("flag"), Value: value.Bool(true)},
				})
				require.NoError(t, err)

				return outer
			},
		},
		{
			name: "table",
			build: func(t *testing.T) value.Value {
				tbl, err := value.NewTable([]string{"node", "demand"}, [][]value.Value{
					{value.String("helsinki"), value.Float(120)},
					{value.String("espoo"), value.Null},
				})
				require.NoError(t, err)

				return tbl
			},
		},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, _, err := Encode(tt.build(t))
			require.NoError(t, err)
			g.Assert(t, tt.name, data)
		})
	}
}

func mustStamp(t *testing.T, s string) value.DateTime {
	t.Helper()
	dt, err := value.ParseDateTime(s)
	require.NoError(t, err)

	return dt
}
