package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbase/pavo/errs"
	"github.com/modelbase/pavo/format"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, `["23.0", null]`, string(Join([]byte("23.0"), "")))
	assert.Equal(t, `["{\"data\": \"4s\"}", "duration"]`, string(Join([]byte(`{"data": "4s"}`), format.TagDuration)))
}

func TestSplit_InvertsJoin(t *testing.T) {
	tests := []struct {
		name string
		data string
		tag  string
	}{
		{"plain scalar", "23.0", ""},
		{"quoted string", `"base_gas"`, ""},
		{"duration", `{"data": "4s"}`, format.TagDuration},
		{"map", `{"index_type": "str", "data": [["a", 1.0]]}`, format.TagMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, tag, err := Split(Join([]byte(tt.data), tt.tag))
			require.NoError(t, err)
			assert.Equal(t, tt.data, string(data))
			assert.Equal(t, tt.tag, tag)
		})
	}
}

func TestSplit_LegacyShapes(t *testing.T) {
	t.Run("bare object with type member", func(t *testing.T) {
		data, tag, err := Split([]byte(`{"type": "duration", "data": "4s"}`))
		require.NoError(t, err)
		assert.Equal(t, format.TagDuration, tag)
		assert.Equal(t, `{"type": "duration", "data": "4s"}`, string(data))
	})

	t.Run("bare scalar keeps its literal form", func(t *testing.T) {
		data, tag, err := Split([]byte(`"base_gas"`))
		require.NoError(t, err)
		assert.Empty(t, tag)
		assert.Equal(t, `"base_gas"`, string(data))

		data, tag, err = Split([]byte("23.0"))
		require.NoError(t, err)
		assert.Empty(t, tag)
		assert.Equal(t, "23.0", string(data))
	})
}

func TestSplit_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"object without type", `{"data": "4s"}`},
		{"one element array", `["23.0"]`},
		{"three element array", `["23.0", null, null]`},
		{"non-string value", `[23.0, null]`},
		{"non-string tag", `["23.0", 7]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Split([]byte(tt.data))
			require.ErrorIs(t, err, errs.ErrMalformedValue)
		})
	}
}
