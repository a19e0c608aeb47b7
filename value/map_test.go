package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbase/pavo/format"
)

func TestNewMap_InfersIndexKind(t *testing.T) {
	m, err := NewMap([]MapPair{
		{Index: String("a"), Value: Float(1)},
		{Index: String("b"), Value: Float(2)},
	})
	require.NoError(t, err)
	assert.Equal(t, format.IndexString, m.IndexType)
	assert.Equal(t, DefaultMapIndexName, m.IndexName)

	empty, err := NewMap(nil)
	require.NoError(t, err)
	assert.Equal(t, format.IndexString, empty.IndexType)
}

func TestNewMap_RejectsMixedIndexKinds(t *testing.T) {
	_, err := NewMap([]MapPair{
		{Index: String("a"), Value: Float(1)},
		{Index: Float(2), Value: Float(2)},
	})
	require.Error(t, err)
}

func TestMap_Get_FirstMatchWins(t *testing.T) {
	m, err := NewMap([]MapPair{
		{Index: String("a"), Value: Float(1)},
		{Index: String("a"), Value: Float(2)},
	})
	require.NoError(t, err)

	v, ok := m.Get(String("a"))
	require.True(t, ok)
	assert.True(t, v.Equal(Float(1)))

	_, ok = m.Get(String("missing"))
	assert.False(t, ok)
}

func TestMap_IsLeaf(t *testing.T) {
	leaf, err := NewMap([]MapPair{{Index: String("a"), Value: Float(1)}})
	require.NoError(t, err)
	assert.True(t, leaf.IsLeaf())

	nested, err := NewMap([]MapPair{{Index: String("a"), Value: leaf}})
	require.NoError(t, err)
	assert.False(t, nested.IsLeaf())
}
