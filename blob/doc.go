// Package blob converts parameter values between their in-memory model and
// the stored (blob, type tag) column pair.
//
// The package is the steady-state read/write boundary of the codec:
//
//   - Encode turns a value.Value into its canonical blob and tag.
//   - Decode turns a blob and tag back into a value.Value, failing with a
//     *errs.FormatError on any malformed input.
//   - InferScalarType classifies untagged scalar rows.
//   - DimensionCount reports the indexing depth of a stored value without
//     reconstructing it in full.
//   - Join and Split translate between the column pair and the companion
//     single-string interchange form.
//
// Every function is pure: no I/O, no shared mutable state, safe for
// unlimited concurrent use. The exact JSON shapes produced by Encode are a
// bit-exact contract with the other tools reading the same database, which
// is why encoding goes through the internal wire-format writer rather than
// a generic JSON marshaler.
package blob
