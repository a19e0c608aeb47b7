package value

import (
	"fmt"
	"strings"

	"github.com/modelbase/pavo/format"
)

// TimeSeriesFixedResolution is a time series whose stamps advance from a
// start instant by one or more repeating resolution steps. With multiple
// resolutions the steps cycle: start, +r0, +r0+r1, ..., wrapping around the
// resolution list as long as there are values.
type TimeSeriesFixedResolution struct {
	Start      DateTime
	Resolution []Duration
	Values     []float64
	IgnoreYear bool
	Repeat     bool
	IndexName  string
}

// NewTimeSeriesFixedResolution builds a fixed-resolution series. At least
// one resolution step is required.
func NewTimeSeriesFixedResolution(start DateTime, resolution []Duration, values []float64, ignoreYear, repeat bool) (*TimeSeriesFixedResolution, error) {
	if len(resolution) == 0 {
		return nil, fmt.Errorf("fixed resolution time series requires at least one resolution step")
	}

	return &TimeSeriesFixedResolution{
		Start:      start,
		Resolution: resolution,
		Values:     values,
		IgnoreYear: ignoreYear,
		Repeat:     repeat,
		IndexName:  DefaultTimeSeriesIndexName,
	}, nil
}

// Stamps materializes the timestamp of every value.
func (ts *TimeSeriesFixedResolution) Stamps() []DateTime {
	stamps := make([]DateTime, len(ts.Values))
	t := ts.Start.Time()
	for i := range ts.Values {
		stamps[i] = NewDateTime(t)
		t = ts.Resolution[i%len(ts.Resolution)].AddTo(t)
	}

	return stamps
}

func (ts *TimeSeriesFixedResolution) isValue()          {}
func (ts *TimeSeriesFixedResolution) Type() format.Type { return format.TypeTimeSeries }

func (ts *TimeSeriesFixedResolution) Equal(other Value) bool {
	o, ok := other.(*TimeSeriesFixedResolution)
	if !ok || !o.Start.Equal(ts.Start) || o.IgnoreYear != ts.IgnoreYear || o.Repeat != ts.Repeat ||
		o.IndexName != ts.IndexName || len(o.Resolution) != len(ts.Resolution) || len(o.Values) != len(ts.Values) {
		return false
	}

	for i, r := range ts.Resolution {
		if o.Resolution[i] != r {
			return false
		}
	}
	for i, v := range ts.Values {
		if o.Values[i] != v {
			return false
		}
	}

	return true
}

func (ts *TimeSeriesFixedResolution) Clone() Value {
	resolution := make([]Duration, len(ts.Resolution))
	copy(resolution, ts.Resolution)
	values := make([]float64, len(ts.Values))
	copy(values, ts.Values)

	return &TimeSeriesFixedResolution{
		Start:      ts.Start,
		Resolution: resolution,
		Values:     values,
		IgnoreYear: ts.IgnoreYear,
		Repeat:     ts.Repeat,
		IndexName:  ts.IndexName,
	}
}

func (ts *TimeSeriesFixedResolution) String() string {
	steps := make([]string, len(ts.Resolution))
	for i, r := range ts.Resolution {
		steps[i] = r.String()
	}

	return fmt.Sprintf("time series from %s by %s (%d values)",
		ts.Start, strings.Join(steps, ","), len(ts.Values))
}

// TimeSeriesVariableResolution is a time series with an explicit timestamp
// per value.
type TimeSeriesVariableResolution struct {
	Stamps     []DateTime
	Values     []float64
	IgnoreYear bool
	Repeat     bool
	IndexName  string
}

// NewTimeSeriesVariableResolution builds a variable-resolution series.
// Stamp and value counts must match.
func NewTimeSeriesVariableResolution(stamps []DateTime, values []float64, ignoreYear, repeat bool) (*TimeSeriesVariableResolution, error) {
	if len(stamps) != len(values) {
		return nil, fmt.Errorf("stamp count %d does not match value count %d", len(stamps), len(values))
	}

	return &TimeSeriesVariableResolution{
		Stamps:     stamps,
		Values:     values,
		IgnoreYear: ignoreYear,
		Repeat:     repeat,
		IndexName:  DefaultTimeSeriesIndexName,
	}, nil
}

func (ts *TimeSeriesVariableResolution) isValue()          {}
func (ts *TimeSeriesVariableResolution) Type() format.Type { return format.TypeTimeSeries }

func (ts *TimeSeriesVariableResolution) Equal(other Value) bool {
	o, ok := other.(*TimeSeriesVariableResolution)
	if !ok || o.IgnoreYear != ts.IgnoreYear || o.Repeat != ts.Repeat ||
		o.IndexName != ts.IndexName || len(o.Stamps) != len(ts.Stamps) {
		return false
	}

	for i, s := range ts.Stamps {
		if !o.Stamps[i].Equal(s) || o.Values[i] != ts.Values[i] {
			return false
		}
	}

	return true
}

func (ts *TimeSeriesVariableResolution) Clone() Value {
	stamps := make([]DateTime, len(ts.Stamps))
	copy(stamps, ts.Stamps)
	values := make([]float64, len(ts.Values))
	copy(values, ts.Values)

	return &TimeSeriesVariableResolution{
		Stamps:     stamps,
		Values:     values,
		IgnoreYear: ts.IgnoreYear,
		Repeat:     ts.Repeat,
		IndexName:  ts.IndexName,
	}
}

func (ts *TimeSeriesVariableResolution) String() string {
	if len(ts.Stamps) == 0 {
		return "time series (empty)"
	}

	return fmt.Sprintf("time series %s..%s (%d values)",
		ts.Stamps[0], ts.Stamps[len(ts.Stamps)-1], len(ts.Stamps))
}
