// Package resolve matches decoded parameter values against the ordered
// enumeration of permitted values ("value list") a parameter may be
// associated with, substituting list references for matched values.
//
// Resolution is stateless and purely functional: a ValueList is an
// immutable snapshot the caller builds from its relational row source, and
// Resolve never mutates it. The CRUD integrity layer calls Resolve for
// every incoming (value, type) pair whose parameter carries a list.
package resolve

import (
	"strconv"

	"github.com/modelbase/pavo/blob"
	"github.com/modelbase/pavo/errs"
	"github.com/modelbase/pavo/format"
	"github.com/modelbase/pavo/internal/hash"
	"github.com/modelbase/pavo/value"
)

// ValueList is the ordered enumeration of permitted values for a
// parameter, with the row identifier of every element.
//
// Construction pre-computes a fingerprint bucket per element so resolving
// many rows against one list stays cheap for large lists; structural
// equality remains the authority on every lookup.
type ValueList struct {
	ids    []int64
	values []value.Value
	// buckets maps the fingerprint of an element's canonical encoding to
	// the ascending element positions sharing it.
	buckets map[uint64][]int
}

// NewValueList builds a list snapshot from parallel identifier and value
// slices. Order is the list order and drives first-match resolution.
func NewValueList(ids []int64, values []value.Value) (*ValueList, error) {
	buckets := make(map[uint64][]int, len(values))
	for i, v := range values {
		data, tag, err := blob.Encode(v)
		if err != nil {
			return nil, err
		}
		fp := hash.Fingerprint(data, tag)
		buckets[fp] = append(buckets[fp], i)
	}

	return &ValueList{ids: ids, values: values, buckets: buckets}, nil
}

// Len returns the number of permitted values.
func (l *ValueList) Len() int { return len(l.values) }

// Ref is the substitution produced by a successful resolution: the
// (value, type) pair that replaces the candidate's, plus the matched list
// element's identifier.
type Ref struct {
	ID    int64
	Value []byte
	Type  string
}

// Resolve matches a decoded candidate against the permitted list.
//
// Without a list (nil) the candidate passes through unchanged and Resolve
// returns (nil, nil); the null value is likewise exempt, since defaults
// are not subject to list membership. Otherwise the list is scanned in
// order for the first value structurally equal to the candidate; a match
// yields the replacement Ref, and a miss fails with a
// *errs.ReferenceError enumerating every permitted value's display form
// in list order.
func Resolve(candidate value.Value, list *ValueList) (*Ref, error) {
	if list == nil {
		return nil, nil
	}
	if candidate == nil || candidate.Equal(value.Null) {
		return nil, nil
	}

	if pos, ok := list.find(candidate); ok {
		id := list.ids[pos]

		return &Ref{
			ID:    id,
			Value: []byte(strconv.FormatInt(id, 10)),
			Type:  format.TagListValueRef,
		}, nil
	}

	allowed := make([]string, len(list.values))
	for i, v := range list.values {
		allowed[i] = v.String()
	}

	return nil, &errs.ReferenceError{Candidate: candidate.String(), Allowed: allowed}
}

// find locates the first list element structurally equal to the candidate.
func (l *ValueList) find(candidate value.Value) (int, bool) {
	data, tag, err := blob.Encode(candidate)
	if err != nil {
		// Unencodable candidates cannot match an encodable list element;
		// fall back to a full scan to keep behavior purely structural.
		for i, v := range l.values {
			if v.Equal(candidate) {
				return i, true
			}
		}

		return 0, false
	}

	for _, pos := range l.buckets[hash.Fingerprint(data, tag)] {
		if l.values[pos].Equal(candidate) {
			return pos, true
		}
	}

	return 0, false
}
