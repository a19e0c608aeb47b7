package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDateTime(t *testing.T, s string) DateTime {
	t.Helper()
	d, err := ParseDateTime(s)
	require.NoError(t, err)

	return d
}

func TestFixedSeries_Stamps(t *testing.T) {
	start := mustDateTime(t, "2019-01-01T00:00:00")

	ts, err := NewTimeSeriesFixedResolution(start, []Duration{NewDuration(1, UnitHour)}, []float64{1, 2, 3}, false, false)
	require.NoError(t, err)

	stamps := ts.Stamps()
	require.Len(t, stamps, 3)
	assert.Equal(t, "2019-01-01T00:00:00", stamps[0].String())
	assert.Equal(t, "2019-01-01T01:00:00", stamps[1].String())
	assert.Equal(t, "2019-01-01T02:00:00", stamps[2].String())
}

func TestFixedSeries_Stamps_CyclingResolutions(t *testing.T) {
	start := mustDateTime(t, "2019-01-01T00:00:00")
	resolution := []Duration{NewDuration(1, UnitHour), NewDuration(30, UnitMinute)}

	ts, err := NewTimeSeriesFixedResolution(start, resolution, []float64{1, 2, 3, 4}, false, false)
	require.NoError(t, err)

	stamps := ts.Stamps()
	require.Len(t, stamps, 4)
	assert.Equal(t, "2019-01-01T00:00:00", stamps[0].String())
	assert.Equal(t, "2019-01-01T01:00:00", stamps[1].String())
	assert.Equal(t, "2019-01-01T01:30:00", stamps[2].String())
	assert.Equal(t, "2019-01-01T02:30:00", stamps[3].String())
}

func TestNewTimeSeriesFixedResolution_RequiresResolution(t *testing.T) {
	_, err := NewTimeSeriesFixedResolution(mustDateTime(t, "2019-01-01"), nil, []float64{1}, false, false)
	require.Error(t, err)
}

func TestNewTimeSeriesVariableResolution_CountMismatch(t *testing.T) {
	stamps := []DateTime{mustDateTime(t, "2019-01-01"), mustDateTime(t, "2019-01-02")}
	_, err := NewTimeSeriesVariableResolution(stamps, []float64{1}, false, false)
	require.Error(t, err)
}

func TestSeriesEquality_FlagsMatter(t *testing.T) {
	stamps := []DateTime{mustDateTime(t, "2019-01-01")}

	a, err := NewTimeSeriesVariableResolution(stamps, []float64{1}, false, false)
	require.NoError(t, err)
	b, err := NewTimeSeriesVariableResolution(stamps, []float64{1}, true, false)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
}

func TestSeriesEquality_FixedVsVariableNeverEqual(t *testing.T) {
	start := mustDateTime(t, "2019-01-01T00:00:00")
	fixed, err := NewTimeSeriesFixedResolution(start, []Duration{NewDuration(1, UnitHour)}, []float64{1}, false, false)
	require.NoError(t, err)
	variable, err := NewTimeSeriesVariableResolution([]DateTime{start}, []float64{1}, false, false)
	require.NoError(t, err)

	assert.False(t, fixed.Equal(variable))
	assert.False(t, variable.Equal(fixed))
}
