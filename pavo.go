// Package pavo is a pure, stateless codec for engineering-model parameter
// values stored as (blob, type tag) column pairs in a relational store.
//
// Every parameter value is one of a closed family of kinds: plain scalars,
// calendar timestamps and durations, ordered arrays, piecewise time
// patterns, time series with fixed or variable resolution, arbitrarily
// nested associative maps, and flat columnar tables. The codec converts
// losslessly between the in-memory model (package value) and the stored
// blob + tag representation, converts between generic nested maps and
// their specialized container counterparts, and resolves values against
// enumerated value lists.
//
// # Scope
//
// The codec performs no database I/O, enforces no relational integrity and
// caches nothing across calls: it is a transformation layer between the
// relational row source above it and the model layer below it. Everything
// here is safe for unlimited concurrent use.
//
// # Basic Usage
//
// Encoding and decoding a value:
//
//	ts, _ := value.NewTimeSeriesVariableResolution(stamps, values, false, false)
//	data, tag, err := pavo.Encode(ts)
//	...
//	decoded, err := pavo.Decode(data, tag)
//
// Resolving a value against a parameter's value list:
//
//	list, _ := resolve.NewValueList(ids, permitted)
//	ref, err := resolve.Resolve(candidate, list)
//
// # Package Structure
//
// This package provides top-level wrappers around the blob package for the
// most common operations. Packages value, convert, resolve, legacy and
// archive expose the full API.
package pavo

import (
	"github.com/modelbase/pavo/blob"
	"github.com/modelbase/pavo/value"
)

// Encode converts a value into its stored blob and type tag.
// See blob.Encode.
func Encode(v value.Value) ([]byte, string, error) {
	return blob.Encode(v)
}

// Decode converts a stored blob and type tag back into a value.
// See blob.Decode.
func Decode(data []byte, tag string) (value.Value, error) {
	return blob.Decode(data, tag)
}

// Join packs a (blob, tag) pair into the single-string interchange form.
// See blob.Join.
func Join(data []byte, tag string) []byte {
	return blob.Join(data, tag)
}

// Split unpacks the single-string interchange form into a (blob, tag)
// pair. See blob.Split.
func Split(joined []byte) ([]byte, string, error) {
	return blob.Split(joined)
}

// DimensionCount reports the indexing depth of a stored value.
// See blob.DimensionCount.
func DimensionCount(data []byte, tag string) (int, error) {
	return blob.DimensionCount(data, tag)
}

// InferScalarType classifies a plain scalar into its canonical scalar type
// name. See blob.InferScalarType.
func InferScalarType(v value.Value) (string, error) {
	return blob.InferScalarType(v)
}
