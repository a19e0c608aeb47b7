package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbase/pavo/format"
)

func TestNewArray_InfersElementKind(t *testing.T) {
	dt, err := ParseDateTime("2019-01-01")
	require.NoError(t, err)

	tests := []struct {
		name     string
		values   []Value
		expected format.IndexType
	}{
		{"floats", []Value{Float(1), Float(2)}, format.IndexFloat},
		{"strings", []Value{String("a"), String("b")}, format.IndexString},
		{"timestamps", []Value{dt}, format.IndexDateTime},
		{"durations", []Value{NewDuration(1, UnitHour)}, format.IndexDuration},
		{"empty defaults to float", nil, format.IndexFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArray(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a.ValueType)
			assert.Equal(t, DefaultArrayIndexName, a.IndexName)
		})
	}
}

func TestNewArray_RejectsMixedKinds(t *testing.T) {
	_, err := NewArray([]Value{Float(1), String("two")})
	require.Error(t, err)

	_, err = NewArray([]Value{Bool(true)})
	require.Error(t, err)
}

func TestArray_String(t *testing.T) {
	a := NewFloatArray([]float64{1, 2.5})
	assert.Equal(t, "[1.0, 2.5]", a.String())
}
