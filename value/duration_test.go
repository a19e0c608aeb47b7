package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected Duration
	}{
		{"7s", Duration{Count: 7, Unit: UnitSecond}},
		{"30m", Duration{Count: 30, Unit: UnitMinute}},
		{"1h", Duration{Count: 1, Unit: UnitHour}},
		{"2D", Duration{Count: 2, Unit: UnitDay}},
		{"2d", Duration{Count: 2, Unit: UnitDay}},
		{"3M", Duration{Count: 3, Unit: UnitMonth}},
		{"8Y", Duration{Count: 8, Unit: UnitYear}},
		{"4 seconds", Duration{Count: 4, Unit: UnitSecond}},
		{"1 hour", Duration{Count: 1, Unit: UnitHour}},
		{"12 months", Duration{Count: 12, Unit: UnitMonth}},
		{"15", Duration{Count: 15, Unit: UnitMinute}},
		{" 5 minutes ", Duration{Count: 5, Unit: UnitMinute}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseDuration_CaseSignificantUnits(t *testing.T) {
	minute, err := ParseDuration("3m")
	require.NoError(t, err)
	month, err := ParseDuration("3M")
	require.NoError(t, err)

	assert.Equal(t, UnitMinute, minute.Unit)
	assert.Equal(t, UnitMonth, month.Unit)
	assert.False(t, minute.Equal(month))
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "7 fortnights", "s7", "1.5h"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDuration(input)
			require.Error(t, err)
		})
	}
}

func TestDuration_String(t *testing.T) {
	assert.Equal(t, "7s", NewDuration(7, UnitSecond).String())
	assert.Equal(t, "3M", NewDuration(3, UnitMonth).String())
	assert.Equal(t, "30m", NewDuration(30, UnitMinute).String())
	assert.Equal(t, "8Y", NewDuration(8, UnitYear).String())
}

func TestDuration_AddTo(t *testing.T) {
	start := time.Date(2019, 1, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, start.Add(90*time.Second), NewDuration(90, UnitSecond).AddTo(start))
	assert.Equal(t, start.Add(2*time.Hour), NewDuration(2, UnitHour).AddTo(start))
	// Calendar month arithmetic, not a fixed number of hours.
	assert.Equal(t, time.Date(2019, 3, 3, 12, 0, 0, 0, time.UTC), NewDuration(1, UnitMonth).AddTo(start))
	assert.Equal(t, time.Date(2020, 1, 31, 12, 0, 0, 0, time.UTC), NewDuration(1, UnitYear).AddTo(start))
}
