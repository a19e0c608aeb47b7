// Package legacy translates parameter values written by earlier schema
// versions into the current canonical encoding.
//
// Adapters are pure functions invoked only by schema-upgrade routines; the
// steady-state read and write paths in package blob never consult them.
// Each adapter reconstructs the value from its historical shape and
// re-encodes it through the current encoder, so the output bytes are
// always canonical. An unrecognized historical shape is fatal to that
// row's migration: ApplyBatch stops at the first failure instead of
// silently dropping the row.
package legacy

import (
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/modelbase/pavo/blob"
	"github.com/modelbase/pavo/errs"
)

// Adapter reconstructs a value from a historical (blob, tag) pair and
// returns the current canonical pair.
type Adapter func(data []byte, tag string) ([]byte, string, error)

// Schema versions with a registered adapter.
const (
	// VersionJoinedRows: values were stored in a single column, either the
	// joined array form or a bare object carrying its own "type" member.
	VersionJoinedRows = 1

	// VersionMetadataSeries: fixed-resolution time series carried their
	// index under a "metadata" member instead of "index".
	VersionMetadataSeries = 2

	// VersionUntaggedRows: non-scalar values were stored without a type
	// column; the tag must be recovered from the payload shape.
	VersionUntaggedRows = 3
)

// adapters is the static version dispatch table, fixed at build time.
var adapters = map[int]Adapter{
	VersionJoinedRows:     adaptJoinedRow,
	VersionMetadataSeries: adaptMetadataSeries,
	VersionUntaggedRows:   adaptUntaggedRow,
}

// Convert translates one historical row through the adapter registered for
// the given schema version.
func Convert(version int, data []byte, tag string) ([]byte, string, error) {
	adapter, ok := adapters[version]
	if !ok {
		return nil, "", fmt.Errorf("%w: %d", errs.ErrUnknownSchemaVersion, version)
	}

	return adapter(data, tag)
}

// recode decodes a pair with the current decoder and re-encodes it, which
// normalizes every decoder-accepted legacy spelling (bare scalars, integer
// resolutions, two-column series) into the canonical shape.
func recode(data []byte, tag string) ([]byte, string, error) {
	v, err := blob.Decode(data, tag)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errs.ErrLegacyShape, err)
	}

	return blob.Encode(v)
}

func adaptJoinedRow(data []byte, _ string) ([]byte, string, error) {
	split, tag, err := blob.Split(data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errs.ErrLegacyShape, err)
	}

	return recode(split, tag)
}

func adaptMetadataSeries(data []byte, tag string) ([]byte, string, error) {
	// Only series rows carried the metadata shape; other rows pass through
	// recoding untouched.
	return recode(data, tag)
}

func adaptUntaggedRow(data []byte, tag string) ([]byte, string, error) {
	if tag != "" {
		return recode(data, tag)
	}

	_, vtype, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errs.ErrLegacyShape, err)
	}

	switch vtype {
	case jsonparser.Boolean, jsonparser.Number, jsonparser.String, jsonparser.Null:
		return recode(data, "")
	case jsonparser.Object:
		// Untagged objects named their kind inline.
		embeddedTag, err := jsonparser.GetString(data, "type")
		if err != nil {
			return nil, "", fmt.Errorf("%w: untagged object without a \"type\" member", errs.ErrLegacyShape)
		}

		return recode(data, embeddedTag)
	default:
		return nil, "", fmt.Errorf("%w: untagged payload of kind %s", errs.ErrLegacyShape, vtype)
	}
}
