package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbase/pavo/format"
	"github.com/modelbase/pavo/value"
)

func mustStamp(t *testing.T, s string) value.DateTime {
	t.Helper()
	dt, err := value.ParseDateTime(s)
	require.NoError(t, err)

	return dt
}

func TestSpecializeLeaves_TimestampLeafBecomesSeries(t *testing.T) {
	m, err := value.NewMap([]value.MapPair{
		{Index: mustStamp(t, "2019-01-01T00:00:00"), Value: value.Float(1)},
		{Index: mustStamp(t, "2019-01-01T01:00:00"), Value: value.Float(2)},
	})
	require.NoError(t, err)
	m.IndexName = "stamp"

	got := SpecializeLeaves(m)
	ts, ok := got.(*value.TimeSeriesVariableResolution)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, ts.Values)
	assert.Equal(t, "stamp", ts.IndexName)
	assert.False(t, ts.IgnoreYear)
	assert.False(t, ts.Repeat)
}

func TestSpecializeLeaves_NonNumericLeafStaysMap(t *testing.T) {
	m, err := value.NewMap([]value.MapPair{
		{Index: mustStamp(t, "2019-01-01T00:00:00"), Value: value.String("off")},
	})
	require.NoError(t, err)

	got := SpecializeLeaves(m)
	_, ok := got.(*value.Map)
	assert.True(t, ok)
}

func TestSpecializeLeaves_Recurses(t *testing.T) {
	leaf, err := value.NewMap([]value.MapPair{
		{Index: mustStamp(t, "2019-01-01T00:00:00"), Value: value.Float(1)},
	})
	require.NoError(t, err)
	outer, err := value.NewMap([]value.MapPair{
		{Index: value.String("scenario_a"), Value: leaf},
	})
	require.NoError(t, err)

	got := SpecializeLeaves(outer).(*value.Map)
	_, ok := got.Pairs[0].Value.(*value.TimeSeriesVariableResolution)
	assert.True(t, ok)
}

func TestGeneralize(t *testing.T) {
	t.Run("array indexes by position", func(t *testing.T) {
		got := Generalize(value.NewFloatArray([]float64{5, 6})).(*value.Map)
		assert.Equal(t, format.IndexFloat, got.IndexType)
		assert.Equal(t, value.DefaultArrayIndexName, got.IndexName)
		assert.True(t, got.Pairs[0].Index.Equal(value.Float(0)))
		assert.True(t, got.Pairs[1].Index.Equal(value.Float(1)))
		assert.True(t, got.Pairs[1].Value.Equal(value.Float(6)))
	})

	t.Run("time pattern indexes by pattern", func(t *testing.T) {
		tp, err := value.NewTimePattern([]string{"M1-6", "M7-12"}, []float64{1, 2})
		require.NoError(t, err)

		got := Generalize(tp).(*value.Map)
		assert.Equal(t, format.IndexString, got.IndexType)
		assert.True(t, got.Pairs[0].Index.Equal(value.String("M1-6")))
	})

	t.Run("fixed series materializes stamps", func(t *testing.T) {
		ts, err := value.NewTimeSeriesFixedResolution(
			mustStamp(t, "2019-01-01T00:00:00"),
			[]value.Duration{value.NewDuration(1, value.UnitHour)},
			[]float64{1, 2}, false, false)
		require.NoError(t, err)

		got := Generalize(ts).(*value.Map)
		assert.Equal(t, format.IndexDateTime, got.IndexType)
		assert.True(t, got.Pairs[1].Index.Equal(mustStamp(t, "2019-01-01T01:00:00")))
	})

	t.Run("scalars pass through", func(t *testing.T) {
		assert.True(t, Generalize(value.Float(1)).Equal(value.Float(1)))
		assert.True(t, Generalize(value.Null).Equal(value.Null))
	})
}

func TestSpecializeGeneralize_RoundTrip(t *testing.T) {
	ts, err := value.NewTimeSeriesVariableResolution(
		[]value.DateTime{mustStamp(t, "2019-01-01T00:00:00"), mustStamp(t, "2019-06-01T12:30:00")},
		[]float64{-4, 5.5}, false, false)
	require.NoError(t, err)
	ts.IndexName = "period"

	back := SpecializeLeaves(Generalize(ts))
	require.True(t, ts.Equal(back), "round trip changed the value: %s", back)
}

func TestFlattenToTable(t *testing.T) {
	leaf, err := value.NewMap([]value.MapPair{
		{Index: value.String("x"), Value: value.Float(1)},
		{Index: value.String("y"), Value: value.Float(2)},
	})
	require.NoError(t, err)
	m, err := value.NewMap([]value.MapPair{
		{Index: value.String("deep"), Value: leaf},
		{Index: value.String("shallow"), Value: value.Float(3)},
	})
	require.NoError(t, err)

	t.Run("jagged", func(t *testing.T) {
		rows := FlattenToTable(m, false, nil)
		require.Len(t, rows, 3)
		assert.Len(t, rows[0], 3)
		assert.Len(t, rows[2], 2)
		assert.True(t, rows[0][1].Equal(value.String("x")))
		assert.True(t, rows[2][1].Equal(value.Float(3)))
	})

	t.Run("padded", func(t *testing.T) {
		rows := FlattenToTable(m, true, value.Null)
		require.Len(t, rows, 3)
		for _, row := range rows {
			assert.Len(t, row, 3)
		}
		assert.True(t, rows[2][2].Equal(value.Null))
	})
}

func TestToNestedDict(t *testing.T) {
	leaf, err := value.NewMap([]value.MapPair{
		{Index: value.String("demand"), Value: value.Float(120)},
	})
	require.NoError(t, err)
	m, err := value.NewMap([]value.MapPair{
		{Index: value.String("helsinki"), Value: leaf},
		{Index: value.String("enabled"), Value: value.Bool(true)},
		{Index: value.String("levels"), Value: value.NewFloatArray([]float64{7})},
	})
	require.NoError(t, err)

	got := ToNestedDict(m)
	assert.Equal(t, map[string]any{"demand": 120.0}, got["helsinki"])
	assert.Equal(t, true, got["enabled"])
	// Containers are generalized first, so the array arrives as a
	// position-keyed mapping.
	assert.Equal(t, map[string]any{"0.0": 7.0}, got["levels"])
}

func TestToNestedDict_DuplicateIndexesFirstMatch(t *testing.T) {
	m, err := value.NewMap([]value.MapPair{
		{Index: value.String("a"), Value: value.Float(1)},
		{Index: value.String("a"), Value: value.Float(2)},
	})
	require.NoError(t, err)

	got := ToNestedDict(m)
	assert.Equal(t, 1.0, got["a"])
}

func TestConversions_DoNotMutateInput(t *testing.T) {
	ts, err := value.NewTimeSeriesVariableResolution(
		[]value.DateTime{mustStamp(t, "2019-01-01T00:00:00")}, []float64{1}, false, false)
	require.NoError(t, err)
	snapshot := ts.Clone()

	Generalize(ts)
	assert.True(t, ts.Equal(snapshot))
}
