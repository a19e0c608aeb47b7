package blob

import (
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/modelbase/pavo/errs"
	"github.com/modelbase/pavo/format"
)

// DimensionCount reports the indexing depth of a stored value: 0 for
// scalars (plain, date_time, duration), 1 for the rank-1 containers
// (array, time_pattern, time_series), and 1 plus the deepest child for
// map and table. An empty map still counts its own index dimension.
//
// The counter peeks at the structure of the blob instead of rebuilding the
// value tree: only the pair values of maps (and the cells of tables) are
// inspected, and only deep enough to classify them.
func DimensionCount(data []byte, tag string) (int, error) {
	typ, ok := format.ParseTag(tag)
	if !ok {
		return 0, errs.NewFormatError(errs.ErrUnknownTypeTag, data, tag)
	}

	n, err := dimensionOfTyped(data, typ)
	if err != nil {
		return 0, errs.NewFormatError(err, data, tag)
	}

	return n, nil
}

func dimensionOfTyped(data []byte, typ format.Type) (int, error) {
	switch typ {
	case format.TypeNone, format.TypeDateTime, format.TypeDuration, format.TypeListValueRef:
		return 0, nil
	case format.TypeArray, format.TypeTimePattern, format.TypeTimeSeries:
		return 1, nil
	case format.TypeMap:
		return dimensionOfMap(data)
	case format.TypeTable:
		return dimensionOfTable(data)
	default:
		return 0, errs.ErrUnknownTypeTag
	}
}

func dimensionOfMap(data []byte) (int, error) {
	pairData, pairType, _, err := jsonparser.Get(data, "data")
	if err != nil {
		return 0, fmt.Errorf("%w: map requires a \"data\" member", errs.ErrMalformedValue)
	}

	deepest := 0
	visit := func(child []byte, childType jsonparser.ValueType) error {
		n, err := dimensionOfNested(child, childType)
		if err != nil {
			return err
		}
		if n > deepest {
			deepest = n
		}

		return nil
	}

	switch pairType {
	case jsonparser.Array:
		elems, err := arrayElems(pairData)
		if err != nil {
			return 0, err
		}
		for i, elem := range elems {
			if elem.typ != jsonparser.Array {
				return 0, fmt.Errorf("%w: map row %d must be an [index, value] pair", errs.ErrMalformedValue, i)
			}
			pair, err := arrayElems(elem.data)
			if err != nil {
				return 0, err
			}
			if len(pair) != 2 {
				return 0, fmt.Errorf("%w: map row %d must have exactly two columns", errs.ErrMalformedValue, i)
			}
			if err := visit(pair[1].data, pair[1].typ); err != nil {
				return 0, err
			}
		}
	case jsonparser.Object:
		err = jsonparser.ObjectEach(pairData, func(_, v []byte, vt jsonparser.ValueType, _ int) error {
			return visit(v, vt)
		})
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}
	default:
		return 0, fmt.Errorf("%w: map data must be a JSON array or object", errs.ErrMalformedValue)
	}

	return 1 + deepest, nil
}

func dimensionOfTable(data []byte) (int, error) {
	rows, err := arrayElems(data)
	if err != nil {
		return 0, err
	}

	deepest := 0
	for _, row := range rows[min(1, len(rows)):] {
		if row.typ != jsonparser.Array {
			return 0, fmt.Errorf("%w: table rows must be JSON arrays", errs.ErrMalformedValue)
		}
		cells, err := arrayElems(row.data)
		if err != nil {
			return 0, err
		}
		for _, cell := range cells {
			n, err := dimensionOfNested(cell.data, cell.typ)
			if err != nil {
				return 0, err
			}
			if n > deepest {
				deepest = n
			}
		}
	}

	return 1 + deepest, nil
}

// dimensionOfNested classifies an embedded map value or table cell without
// decoding it: scalar literals contribute 0, embedded tagged objects the
// dimension of their kind.
func dimensionOfNested(data []byte, vtype jsonparser.ValueType) (int, error) {
	if vtype != jsonparser.Object {
		return 0, nil
	}

	tag, err := jsonparser.GetString(data, "type")
	if err != nil {
		return 0, fmt.Errorf("%w: embedded value must carry a \"type\" member", errs.ErrMalformedValue)
	}

	typ, ok := format.ParseTag(tag)
	if !ok || typ == format.TypeNone {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownTypeTag, tag)
	}

	return dimensionOfTyped(data, typ)
}
