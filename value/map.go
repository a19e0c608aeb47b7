package value

import (
	"fmt"
	"strings"

	"github.com/modelbase/pavo/format"
)

// MapPair is one (index, value) entry of a Map. The index is one of the
// scalar index kinds; the value may be any Value, including a nested Map.
type MapPair struct {
	Index Value
	Value Value
}

// Map is an ordered associative container. Pairs keep insertion order and
// the format does not require unique indexes: lookups and conversions go by
// first match when duplicates occur.
type Map struct {
	IndexType format.IndexType
	Pairs     []MapPair
	IndexName string
}

// NewMap builds a map from ordered pairs, inferring the index kind from the
// first pair. An empty map defaults to a string index. Every index must
// share one scalar kind.
func NewMap(pairs []MapPair) (*Map, error) {
	indexType := format.IndexString
	if len(pairs) > 0 {
		it, ok := ScalarIndexType(pairs[0].Index)
		if !ok {
			return nil, fmt.Errorf("map index 0 has non-scalar kind %T", pairs[0].Index)
		}
		indexType = it
	}

	for i, p := range pairs {
		it, ok := ScalarIndexType(p.Index)
		if !ok || it != indexType {
			return nil, fmt.Errorf("map index %d does not have index kind %s", i, indexType)
		}
	}

	return &Map{IndexType: indexType, Pairs: pairs, IndexName: DefaultMapIndexName}, nil
}

// Get returns the value of the first pair whose index equals idx.
func (m *Map) Get(idx Value) (Value, bool) {
	for _, p := range m.Pairs {
		if p.Index.Equal(idx) {
			return p.Value, true
		}
	}

	return nil, false
}

func (m *Map) isValue()          {}
func (m *Map) Type() format.Type { return format.TypeMap }

func (m *Map) Equal(other Value) bool {
	o, ok := other.(*Map)
	if !ok || o.IndexType != m.IndexType || o.IndexName != m.IndexName || len(o.Pairs) != len(m.Pairs) {
		return false
	}

	for i, p := range m.Pairs {
		if !p.Index.Equal(o.Pairs[i].Index) || !p.Value.Equal(o.Pairs[i].Value) {
			return false
		}
	}

	return true
}

func (m *Map) Clone() Value {
	pairs := make([]MapPair, len(m.Pairs))
	for i, p := range m.Pairs {
		pairs[i] = MapPair{Index: p.Index.Clone(), Value: p.Value.Clone()}
	}

	return &Map{IndexType: m.IndexType, Pairs: pairs, IndexName: m.IndexName}
}

func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range m.Pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Index.String())
		sb.WriteString(": ")
		sb.WriteString(p.Value.String())
	}
	sb.WriteByte('}')

	return sb.String()
}

// IsLeaf reports whether every value in the map is a plain scalar. Leaf
// maps are the targets of container specialization.
func (m *Map) IsLeaf() bool {
	for _, p := range m.Pairs {
		if !IsScalar(p.Value) {
			return false
		}
	}

	return true
}
