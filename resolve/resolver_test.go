package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbase/pavo/errs"
	"github.com/modelbase/pavo/format"
	"github.com/modelbase/pavo/value"
)

func newList(t *testing.T, ids []int64, values []value.Value) *ValueList {
	t.Helper()
	list, err := NewValueList(ids, values)
	require.NoError(t, err)

	return list
}

func TestResolve_Match(t *testing.T) {
	list := newList(t,
		[]int64{11, 12, 13},
		[]value.Value{value.String("A"), value.String("B"), value.String("C")})

	ref, err := Resolve(value.String("B"), list)
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, int64(12), ref.ID)
	assert.Equal(t, "12", string(ref.Value))
	assert.Equal(t, format.TagListValueRef, ref.Type)
}

func TestResolve_MissEnumeratesAllowedValues(t *testing.T) {
	list := newList(t,
		[]int64{11, 12, 13},
		[]value.Value{value.String("A"), value.String("B"), value.String("C")})

	_, err := Resolve(value.String("D"), list)
	require.ErrorIs(t, err, errs.ErrNotInList)

	var re *errs.ReferenceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "D", re.Candidate)
	assert.Equal(t, []string{"A", "B", "C"}, re.Allowed)
	assert.Equal(t, "D is not in the list of allowed values [A, B, C]", re.Error())
}

func TestResolve_PassThrough(t *testing.T) {
	t.Run("nil list", func(t *testing.T) {
		ref, err := Resolve(value.String("anything"), nil)
		require.NoError(t, err)
		assert.Nil(t, ref)
	})

	t.Run("null candidate", func(t *testing.T) {
		list := newList(t, []int64{1}, []value.Value{value.Float(1)})
		ref, err := Resolve(value.Null, list)
		require.NoError(t, err)
		assert.Nil(t, ref)
	})

	t.Run("nil candidate", func(t *testing.T) {
		list := newList(t, []int64{1}, []value.Value{value.Float(1)})
		ref, err := Resolve(nil, list)
		require.NoError(t, err)
		assert.Nil(t, ref)
	})
}

func TestResolve_StructuralEquality(t *testing.T) {
	permitted, err := value.NewMap([]value.MapPair{
		{Index: value.String("a"), Value: value.Float(1)},
	})
	require.NoError(t, err)
	list := newList(t, []int64{7}, []value.Value{permitted})

	// A structurally equal but distinct instance matches.
	candidate, err := value.NewMap([]value.MapPair{
		{Index: value.String("a"), Value: value.Float(1)},
	})
	require.NoError(t, err)

	ref, err := Resolve(candidate, list)
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, int64(7), ref.ID)
}

func TestResolve_TypedScalarsDoNotCrossMatch(t *testing.T) {
	list := newList(t, []int64{1}, []value.Value{value.Float(23)})

	_, err := Resolve(value.String("23.0"), list)
	require.ErrorIs(t, err, errs.ErrNotInList)
}

func TestResolve_FirstMatchWins(t *testing.T) {
	list := newList(t,
		[]int64{5, 6},
		[]value.Value{value.Float(1), value.Float(1)})

	ref, err := Resolve(value.Float(1), list)
	require.NoError(t, err)
	assert.Equal(t, int64(5), ref.ID)
}

func TestValueList_Len(t *testing.T) {
	list := newList(t, []int64{1, 2}, []value.Value{value.Float(1), value.Float(2)})
	assert.Equal(t, 2, list.Len())
}
