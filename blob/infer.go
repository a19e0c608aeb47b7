package blob

import (
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/modelbase/pavo/errs"
	"github.com/modelbase/pavo/value"
)

// Scalar type names used when an explicit classification of an untagged
// row is needed, e.g. by schema upgrades.
const (
	ScalarFloat  = "float"
	ScalarBool   = "bool"
	ScalarString = "str"
	ScalarNull   = "null"
)

// InferScalarType classifies a plain scalar value into its canonical
// scalar type name. Non-scalar kinds are rejected: they already carry an
// explicit tag and never need inference.
func InferScalarType(v value.Value) (string, error) {
	switch v.(type) {
	case value.Bool:
		return ScalarBool, nil
	case value.Float:
		return ScalarFloat, nil
	case value.String:
		return ScalarString, nil
	}

	if v != nil && v.Equal(value.Null) {
		return ScalarNull, nil
	}

	return "", fmt.Errorf("cannot infer a scalar type for kind %T", v)
}

// InferScalarTypeFromBlob classifies the bare scalar literal stored in an
// untagged row. The JSON literal kind decides the classification, so the
// literals true and false are booleans, never numbers.
func InferScalarTypeFromBlob(data []byte) (string, error) {
	_, vtype, _, err := jsonparser.Get(data)
	if err != nil {
		return "", errs.NewFormatError(fmt.Errorf("%w: %v", errs.ErrMalformedValue, err), data, "")
	}

	switch vtype {
	case jsonparser.Boolean:
		return ScalarBool, nil
	case jsonparser.Number:
		return ScalarFloat, nil
	case jsonparser.String:
		return ScalarString, nil
	case jsonparser.Null:
		return ScalarNull, nil
	default:
		return "", errs.NewFormatError(fmt.Errorf("%w: expected a plain scalar literal", errs.ErrMalformedValue), data, "")
	}
}
