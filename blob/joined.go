package blob

import (
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/modelbase/pavo/errs"
	"github.com/modelbase/pavo/internal/jsonw"
)

// Join packs a (blob, tag) column pair into the single-string interchange
// form: a JSON array of the blob text and the tag, with null standing in
// for the absent tag of plain scalars.
//
// Split is the exact inverse for everything Join produces.
func Join(data []byte, tag string) []byte {
	w := jsonw.NewWriter()
	defer w.Release()

	w.BeginArray()
	w.String(string(data))
	if tag == "" {
		w.Null()
	} else {
		w.String(tag)
	}
	w.EndArray()

	return w.Bytes()
}

// Split unpacks the single-string interchange form back into the (blob,
// tag) column pair.
//
// Three shapes are accepted:
//   - the canonical two-element array produced by Join
//   - a legacy bare object carrying its own "type" member, split into the
//     object itself and that member's value
//   - any other bare scalar literal, split into itself and the empty tag
func Split(joined []byte) ([]byte, string, error) {
	vdata, vtype, _, err := jsonparser.Get(joined)
	if err != nil {
		return nil, "", errs.NewFormatError(fmt.Errorf("%w: %v", errs.ErrMalformedValue, err), joined, "")
	}

	switch vtype {
	case jsonparser.Array:
		return splitPair(joined, vdata)
	case jsonparser.Object:
		tag, err := jsonparser.GetString(vdata, "type")
		if err != nil {
			return nil, "", errs.NewFormatError(
				fmt.Errorf("%w: joined object must carry a \"type\" member", errs.ErrMalformedValue), joined, "")
		}

		return cloneBytes(vdata), tag, nil
	default:
		// A bare scalar literal is its own blob; keep the original bytes so
		// string literals stay quoted.
		return cloneBytes(joined), "", nil
	}
}

func splitPair(joined, vdata []byte) ([]byte, string, error) {
	elems, err := arrayElems(vdata)
	if err != nil {
		return nil, "", errs.NewFormatError(err, joined, "")
	}
	if len(elems) != 2 {
		return nil, "", errs.NewFormatError(
			fmt.Errorf("%w: joined form must have exactly two elements", errs.ErrMalformedValue), joined, "")
	}
	if elems[0].typ != jsonparser.String {
		return nil, "", errs.NewFormatError(
			fmt.Errorf("%w: joined value must be a string", errs.ErrMalformedValue), joined, "")
	}

	text, err := jsonparser.ParseString(elems[0].data)
	if err != nil {
		return nil, "", errs.NewFormatError(fmt.Errorf("%w: %v", errs.ErrMalformedValue, err), joined, "")
	}

	switch elems[1].typ {
	case jsonparser.Null:
		return []byte(text), "", nil
	case jsonparser.String:
		tag, err := jsonparser.ParseString(elems[1].data)
		if err != nil {
			return nil, "", errs.NewFormatError(fmt.Errorf("%w: %v", errs.ErrMalformedValue, err), joined, "")
		}

		return []byte(text), tag, nil
	default:
		return nil, "", errs.NewFormatError(
			fmt.Errorf("%w: joined tag must be a string or null", errs.ErrMalformedValue), joined, "")
	}
}

// cloneBytes copies a jsonparser-returned slice, which aliases the input.
func cloneBytes(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	return out
}
