package format

// Type identifies a parameter-value kind on the wire.
//
// Plain scalars (numbers, booleans, strings, null) carry no explicit tag in
// the database; they are represented here as TypeNone. Every other kind has
// a fixed short tag string stored next to the value blob.
type Type uint8

const (
	TypeNone        Type = 0x0 // TypeNone represents an untagged plain scalar.
	TypeDateTime    Type = 0x1 // TypeDateTime represents a calendar timestamp.
	TypeDuration    Type = 0x2 // TypeDuration represents a calendar duration.
	TypeArray       Type = 0x3 // TypeArray represents a homogeneous ordered sequence.
	TypeTimePattern Type = 0x4 // TypeTimePattern represents a piecewise time pattern.
	TypeTimeSeries  Type = 0x5 // TypeTimeSeries represents a fixed or variable resolution series.
	TypeMap         Type = 0x6 // TypeMap represents an ordered associative container.
	TypeTable       Type = 0x7 // TypeTable represents a flat columnar record batch.

	// TypeListValueRef replaces a resolved value with a reference into an
	// enumerated value list. Produced by the resolver, never by the encoder.
	TypeListValueRef Type = 0x8
)

// Tag strings as stored in the type column. These are part of the persisted
// wire contract and must never change.
const (
	TagDateTime     = "date_time"
	TagDuration     = "duration"
	TagArray        = "array"
	TagTimePattern  = "time_pattern"
	TagTimeSeries   = "time_series"
	TagMap          = "map"
	TagTable        = "table"
	TagListValueRef = "list_value_ref"
)

// tagNames is the static kind-to-tag table. It is fixed at build time and
// never mutated at run time.
var tagNames = [...]string{
	TypeNone:         "",
	TypeDateTime:     TagDateTime,
	TypeDuration:     TagDuration,
	TypeArray:        TagArray,
	TypeTimePattern:  TagTimePattern,
	TypeTimeSeries:   TagTimeSeries,
	TypeMap:          TagMap,
	TypeTable:        TagTable,
	TypeListValueRef: TagListValueRef,
}

// String returns the wire tag for the type, or "Unknown" for an
// unrecognized value. TypeNone renders as the empty string since untagged
// scalars store NULL in the type column.
func (t Type) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}

	return "Unknown"
}

// Tag returns the wire tag string and whether the type carries one.
// TypeNone and unknown types report false.
func (t Type) Tag() (string, bool) {
	if t == TypeNone || int(t) >= len(tagNames) {
		return "", false
	}

	return tagNames[t], true
}

// ParseTag maps a stored tag string back to its Type.
//
// An empty tag maps to TypeNone. Unknown tags report ok=false; the decoder
// turns that into a format error carrying the offending tag.
func ParseTag(tag string) (Type, bool) {
	switch tag {
	case "":
		return TypeNone, true
	case TagDateTime:
		return TypeDateTime, true
	case TagDuration:
		return TypeDuration, true
	case TagArray:
		return TypeArray, true
	case TagTimePattern:
		return TypeTimePattern, true
	case TagTimeSeries:
		return TypeTimeSeries, true
	case TagMap:
		return TypeMap, true
	case TagTable:
		return TypeTable, true
	case TagListValueRef:
		return TypeListValueRef, true
	default:
		return TypeNone, false
	}
}

// IndexType identifies the scalar kind of a Map index or Array element.
type IndexType uint8

const (
	IndexString   IndexType = 0x1 // IndexString indexes by plain strings.
	IndexFloat    IndexType = 0x2 // IndexFloat indexes by floating point numbers.
	IndexDateTime IndexType = 0x3 // IndexDateTime indexes by calendar timestamps.
	IndexDuration IndexType = 0x4 // IndexDuration indexes by calendar durations.
)

// indexNames maps index kinds to their wire names ("index_type" and
// "value_type" fields share this vocabulary, with "str" for strings).
var indexNames = [...]string{
	IndexString:   "str",
	IndexFloat:    "float",
	IndexDateTime: TagDateTime,
	IndexDuration: TagDuration,
}

// String returns the wire name of the index kind.
func (it IndexType) String() string {
	if it >= IndexString && int(it) < len(indexNames) {
		return indexNames[it]
	}

	return "Unknown"
}

// ParseIndexType maps a wire name ("str", "float", "date_time", "duration")
// back to its IndexType.
func ParseIndexType(name string) (IndexType, bool) {
	switch name {
	case "str":
		return IndexString, true
	case "float":
		return IndexFloat, true
	case TagDateTime:
		return IndexDateTime, true
	case TagDuration:
		return IndexDuration, true
	default:
		return 0, false
	}
}
