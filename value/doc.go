// Package value defines the in-memory model for parameter values.
//
// A Value is one of a closed family of kinds: plain scalars (Float, Bool,
// String, Null), calendar scalars (DateTime, Duration), rank-1 containers
// (Array, TimePattern, the two TimeSeries forms), the recursive Map
// container, and the flat columnar Table. The family is closed on purpose:
// encoders, decoders and converters switch exhaustively over it, so adding
// a kind is a deliberate wire-format change, never an accident.
//
// # Ownership
//
// Containers own their children exclusively. A Value forms a strict tree;
// sharing a child between two parents or building a cycle is not supported,
// and Clone performs a deep copy for that reason.
//
// # Equality
//
// Equal is structural and exact: floats compare with ==, timestamps with
// time.Time.Equal, containers element-wise in order, and index names
// participate in container equality. This is the equality the converter
// round-trip law and the list-reference resolver are defined against.
package value
