package blob

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"

	"github.com/modelbase/pavo/errs"
	"github.com/modelbase/pavo/format"
	"github.com/modelbase/pavo/value"
)

// defaultSeriesStart is the start instant assumed for time series stored as
// a bare array of values.
const defaultSeriesStart = "0001-01-01T00:00:00"

// Decode converts a stored blob and type tag back into a value.
//
// The tag selects the decoder; an empty tag means a plain scalar literal.
// Any malformed payload, unknown tag or shape mismatch fails with a
// *errs.FormatError carrying the offending bytes and tag. Decode never
// returns a partially built value.
func Decode(data []byte, tag string) (value.Value, error) {
	typ, ok := format.ParseTag(tag)
	if !ok {
		return nil, errs.NewFormatError(errs.ErrUnknownTypeTag, data, tag)
	}

	v, err := decodeTyped(data, typ)
	if err != nil {
		var fe *errs.FormatError
		if errors.As(err, &fe) {
			return nil, err
		}

		return nil, errs.NewFormatError(err, data, tag)
	}

	return v, nil
}

func decodeTyped(data []byte, typ format.Type) (value.Value, error) {
	switch typ {
	case format.TypeNone, format.TypeListValueRef:
		return decodeScalar(data)
	case format.TypeDateTime:
		return decodeDateTime(data)
	case format.TypeDuration:
		return decodeDuration(data)
	case format.TypeArray:
		return decodeArray(data)
	case format.TypeTimePattern:
		return decodeTimePattern(data)
	case format.TypeTimeSeries:
		return decodeTimeSeries(data)
	case format.TypeMap:
		return decodeMap(data)
	case format.TypeTable:
		return decodeTable(data)
	default:
		return nil, errs.ErrUnknownTypeTag
	}
}

// decodeScalar parses a bare JSON scalar literal.
func decodeScalar(data []byte) (value.Value, error) {
	vdata, vtype, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
	}

	return parseScalar(vdata, vtype)
}

func parseScalar(vdata []byte, vtype jsonparser.ValueType) (value.Value, error) {
	switch vtype {
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(vdata)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}

		return value.Bool(b), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(vdata)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}

		return value.Float(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(vdata)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}

		return value.String(s), nil
	case jsonparser.Null:
		return value.Null, nil
	default:
		return nil, fmt.Errorf("%w: expected a plain scalar literal", errs.ErrMalformedValue)
	}
}

// decodeDateTime accepts {"data": "<stamp>"} or a bare stamp string.
func decodeDateTime(data []byte) (value.Value, error) {
	s, err := dataString(data)
	if err != nil {
		return nil, err
	}

	return value.ParseDateTime(s)
}

// decodeDuration accepts {"data": "<duration>"} where the payload is a
// duration string or an integer count of minutes, or the bare forms of
// either.
func decodeDuration(data []byte) (value.Value, error) {
	s, err := dataString(data)
	if err != nil {
		return nil, err
	}

	return value.ParseDuration(s)
}

// dataString extracts the "data" member of an object payload, or the
// payload itself when it is a bare string or number literal.
func dataString(data []byte) (string, error) {
	vdata, vtype, _, err := jsonparser.Get(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
	}

	if vtype == jsonparser.Object {
		vdata, vtype, _, err = jsonparser.Get(vdata, "data")
		if err != nil {
			return "", fmt.Errorf("%w: missing \"data\" member", errs.ErrMalformedValue)
		}
	}

	switch vtype {
	case jsonparser.String:
		s, err := jsonparser.ParseString(vdata)
		if err != nil {
			return "", fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}

		return s, nil
	case jsonparser.Number:
		return string(vdata), nil
	default:
		return "", fmt.Errorf("%w: expected a string or number payload", errs.ErrMalformedValue)
	}
}

// rawElem is one undecoded element of a JSON array.
type rawElem struct {
	data []byte
	typ  jsonparser.ValueType
}

func arrayElems(data []byte) ([]rawElem, error) {
	var elems []rawElem
	var inner error
	_, err := jsonparser.ArrayEach(data, func(v []byte, vt jsonparser.ValueType, _ int, err error) {
		if err != nil && inner == nil {
			inner = err
		}
		elems = append(elems, rawElem{data: v, typ: vt})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
	}
	if inner != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, inner)
	}

	return elems, nil
}

// optionalString returns the string member under key, or fallback when the
// member is absent.
func optionalString(data []byte, key, fallback string) (string, error) {
	s, err := jsonparser.GetString(data, key)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: bad %q member: %v", errs.ErrMalformedValue, key, err)
	}

	return s, nil
}

func optionalBool(data []byte, fallback bool, keys ...string) (bool, error) {
	b, err := jsonparser.GetBoolean(data, keys...)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return fallback, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: bad %q member: %v", errs.ErrMalformedValue, keys[len(keys)-1], err)
	}

	return b, nil
}

// decodeArray accepts the tagged object shape or a bare JSON array whose
// element kind defaults to float.
func decodeArray(data []byte) (value.Value, error) {
	vdata, vtype, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
	}

	valueTypeName := "float"
	indexName := value.DefaultArrayIndexName
	elemData := vdata

	if vtype == jsonparser.Object {
		if valueTypeName, err = optionalString(vdata, "value_type", "float"); err != nil {
			return nil, err
		}
		if indexName, err = optionalString(vdata, "index_name", value.DefaultArrayIndexName); err != nil {
			return nil, err
		}

		elemData, vtype, _, err = jsonparser.Get(vdata, "data")
		if err != nil {
			return nil, fmt.Errorf("%w: missing \"data\" member", errs.ErrMalformedValue)
		}
	}

	if vtype != jsonparser.Array {
		return nil, fmt.Errorf("%w: array data must be a JSON array", errs.ErrMalformedValue)
	}

	valueType, ok := format.ParseIndexType(valueTypeName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown value_type %q", errs.ErrMalformedValue, valueTypeName)
	}

	elems, err := arrayElems(elemData)
	if err != nil {
		return nil, err
	}

	values := make([]value.Value, len(elems))
	for i, elem := range elems {
		if values[i], err = parseIndexScalar(elem.data, elem.typ, valueType); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}

	return &value.Array{ValueType: valueType, Values: values, IndexName: indexName}, nil
}

// parseIndexScalar parses an Array element or Map index of the given kind.
// Indexes arriving as object keys are always strings, so numeric kinds also
// accept numeric strings.
func parseIndexScalar(data []byte, vtype jsonparser.ValueType, kind format.IndexType) (value.Value, error) {
	asString := func() (string, error) {
		if vtype != jsonparser.String {
			return "", fmt.Errorf("%w: expected a string, got %s", errs.ErrMalformedValue, vtype)
		}

		return jsonparser.ParseString(data)
	}

	switch kind {
	case format.IndexFloat:
		if vtype == jsonparser.Number {
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
			}

			return value.Float(f), nil
		}

		s, err := asString()
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errs.ErrMalformedValue, s)
		}

		return value.Float(f), nil
	case format.IndexString:
		s, err := asString()
		if err != nil {
			return nil, err
		}

		return value.String(s), nil
	case format.IndexDateTime:
		s, err := asString()
		if err != nil {
			return nil, err
		}

		return value.ParseDateTime(s)
	case format.IndexDuration:
		if vtype == jsonparser.Number {
			return value.ParseDuration(string(data))
		}

		s, err := asString()
		if err != nil {
			return nil, err
		}

		return value.ParseDuration(s)
	default:
		return nil, fmt.Errorf("%w: unknown index kind", errs.ErrMalformedValue)
	}
}

// decodeTimePattern accepts {"data": {...}} or a bare pattern object.
func decodeTimePattern(data []byte) (value.Value, error) {
	vdata, vtype, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
	}
	if vtype != jsonparser.Object {
		return nil, fmt.Errorf("%w: time pattern must be a JSON object", errs.ErrMalformedValue)
	}

	indexName := value.DefaultTimePatternIndexName
	patternData := vdata
	if inner, innerType, _, err := jsonparser.Get(vdata, "data"); err == nil {
		if innerType != jsonparser.Object {
			return nil, fmt.Errorf("%w: time pattern data must be a JSON object", errs.ErrMalformedValue)
		}
		patternData = inner
		if indexName, err = optionalString(vdata, "index_name", value.DefaultTimePatternIndexName); err != nil {
			return nil, err
		}
	}

	var patterns []string
	var values []float64
	err = jsonparser.ObjectEach(patternData, func(key, v []byte, vt jsonparser.ValueType, _ int) error {
		pattern, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}
		if vt != jsonparser.Number {
			return fmt.Errorf("pattern %q value must be a number", pattern)
		}
		f, err := jsonparser.ParseFloat(v)
		if err != nil {
			return err
		}
		patterns = append(patterns, pattern)
		values = append(values, f)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
	}

	return &value.TimePattern{Patterns: patterns, Values: values, IndexName: indexName}, nil
}

// decodeTimeSeries disambiguates the legacy-compatible series shapes:
//
//  1. an object with a "metadata" member is the legacy fixed-resolution
//     shape (metadata plays the role of the index object)
//  2. an object whose "index" member carries "start" or "resolution" is the
//     fixed-resolution shape
//  3. anything else is variable resolution: a stamp-to-value mapping or a
//     two-column array; a bare array of plain numbers is a fixed-resolution
//     series with default start and resolution
func decodeTimeSeries(data []byte) (value.Value, error) {
	vdata, vtype, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
	}

	switch vtype {
	case jsonparser.Array:
		return decodeSeriesFromArray(vdata)
	case jsonparser.Object:
		return decodeSeriesFromObject(vdata)
	default:
		return nil, fmt.Errorf("%w: time series must be a JSON object or array", errs.ErrMalformedValue)
	}
}

func decodeSeriesFromArray(vdata []byte) (value.Value, error) {
	elems, err := arrayElems(vdata)
	if err != nil {
		return nil, err
	}

	if len(elems) > 0 && elems[0].typ == jsonparser.Array {
		// Two-column [stamp, value] rows.
		stamps, values, err := parseSeriesPairs(elems)
		if err != nil {
			return nil, err
		}

		return &value.TimeSeriesVariableResolution{
			Stamps: stamps, Values: values,
			IndexName: value.DefaultTimeSeriesIndexName,
		}, nil
	}

	// A bare run of values: fixed resolution with all defaults.
	values := make([]float64, len(elems))
	for i, elem := range elems {
		if elem.typ != jsonparser.Number {
			return nil, fmt.Errorf("%w: time series value %d must be a number", errs.ErrMalformedValue, i)
		}
		if values[i], err = jsonparser.ParseFloat(elem.data); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}
	}

	start, _ := value.ParseDateTime(defaultSeriesStart)

	return &value.TimeSeriesFixedResolution{
		Start:      start,
		Resolution: []value.Duration{value.NewDuration(1, value.UnitHour)},
		Values:     values,
		IgnoreYear: true,
		Repeat:     true,
		IndexName:  value.DefaultTimeSeriesIndexName,
	}, nil
}

func decodeSeriesFromObject(vdata []byte) (value.Value, error) {
	indexData, indexType, _, indexErr := jsonparser.Get(vdata, "metadata")
	fixed := indexErr == nil

	if !fixed {
		indexData, indexType, _, indexErr = jsonparser.Get(vdata, "index")
		if indexErr == nil && indexType == jsonparser.Object {
			_, _, _, startErr := jsonparser.Get(indexData, "start")
			_, _, _, resErr := jsonparser.Get(indexData, "resolution")
			fixed = startErr == nil || resErr == nil
		}
	}

	if fixed {
		if indexType != jsonparser.Object {
			return nil, fmt.Errorf("%w: time series index must be a JSON object", errs.ErrMalformedValue)
		}

		return decodeFixedSeries(vdata, indexData)
	}

	return decodeVariableSeries(vdata, indexErr == nil, indexData)
}

func decodeFixedSeries(vdata, indexData []byte) (value.Value, error) {
	startText, startErr := jsonparser.GetString(indexData, "start")
	hasStart := startErr == nil
	if !hasStart {
		startText = defaultSeriesStart
	}
	start, err := value.ParseDateTime(startText)
	if err != nil {
		return nil, err
	}

	resolution, err := parseResolution(indexData)
	if err != nil {
		return nil, err
	}

	// An omitted start means the series describes a generic year, so
	// ignore_year (and repeat) default accordingly.
	ignoreYear, err := optionalBool(indexData, !hasStart, "ignore_year")
	if err != nil {
		return nil, err
	}
	repeat, err := optionalBool(indexData, !hasStart, "repeat")
	if err != nil {
		return nil, err
	}

	indexName, err := optionalString(vdata, "index_name", value.DefaultTimeSeriesIndexName)
	if err != nil {
		return nil, err
	}

	elemData, elemType, _, err := jsonparser.Get(vdata, "data")
	if err != nil || elemType != jsonparser.Array {
		return nil, fmt.Errorf("%w: fixed resolution time series requires a \"data\" array", errs.ErrMalformedValue)
	}

	elems, err := arrayElems(elemData)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(elems))
	for i, elem := range elems {
		if elem.typ != jsonparser.Number {
			return nil, fmt.Errorf("%w: time series value %d must be a number", errs.ErrMalformedValue, i)
		}
		if values[i], err = jsonparser.ParseFloat(elem.data); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}
	}

	return &value.TimeSeriesFixedResolution{
		Start:      start,
		Resolution: resolution,
		Values:     values,
		IgnoreYear: ignoreYear,
		Repeat:     repeat,
		IndexName:  indexName,
	}, nil
}

// parseResolution reads the "resolution" member: a duration string, an
// integer count of minutes, or an array of either. A missing member
// defaults to one hour.
func parseResolution(indexData []byte) ([]value.Duration, error) {
	resData, resType, _, err := jsonparser.Get(indexData, "resolution")
	if err != nil {
		return []value.Duration{value.NewDuration(1, value.UnitHour)}, nil
	}

	parseOne := func(data []byte, vt jsonparser.ValueType) (value.Duration, error) {
		switch vt {
		case jsonparser.String:
			s, err := jsonparser.ParseString(data)
			if err != nil {
				return value.Duration{}, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
			}

			return value.ParseDuration(s)
		case jsonparser.Number:
			return value.ParseDuration(string(data))
		default:
			return value.Duration{}, fmt.Errorf("%w: resolution must be a string or number", errs.ErrMalformedValue)
		}
	}

	if resType != jsonparser.Array {
		r, err := parseOne(resData, resType)
		if err != nil {
			return nil, err
		}

		return []value.Duration{r}, nil
	}

	elems, err := arrayElems(resData)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, fmt.Errorf("%w: empty resolution list", errs.ErrMalformedValue)
	}

	resolution := make([]value.Duration, len(elems))
	for i, elem := range elems {
		if resolution[i], err = parseOne(elem.data, elem.typ); err != nil {
			return nil, err
		}
	}

	return resolution, nil
}

func decodeVariableSeries(vdata []byte, hasIndex bool, indexData []byte) (value.Value, error) {
	ignoreYear := false
	repeat := false
	if hasIndex {
		var err error
		if ignoreYear, err = optionalBool(indexData, false, "ignore_year"); err != nil {
			return nil, err
		}
		if repeat, err = optionalBool(indexData, false, "repeat"); err != nil {
			return nil, err
		}
	}

	indexName := value.DefaultTimeSeriesIndexName
	stampData, stampType, _, err := jsonparser.Get(vdata, "data")
	if err != nil {
		// The whole object is a bare stamp-to-value mapping.
		stampData, stampType = vdata, jsonparser.Object
	} else if indexName, err = optionalString(vdata, "index_name", value.DefaultTimeSeriesIndexName); err != nil {
		return nil, err
	}

	var stamps []value.DateTime
	var values []float64

	switch stampType {
	case jsonparser.Object:
		err = jsonparser.ObjectEach(stampData, func(key, v []byte, vt jsonparser.ValueType, _ int) error {
			stampText, err := jsonparser.ParseString(key)
			if err != nil {
				return err
			}
			stamp, err := value.ParseDateTime(stampText)
			if err != nil {
				return err
			}
			if vt != jsonparser.Number {
				return fmt.Errorf("value at %s must be a number", stampText)
			}
			f, err := jsonparser.ParseFloat(v)
			if err != nil {
				return err
			}
			stamps = append(stamps, stamp)
			values = append(values, f)

			return nil
		})
		if err != nil {
			if errors.Is(err, errs.ErrBadTimestamp) {
				return nil, err
			}

			return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}
	case jsonparser.Array:
		elems, err := arrayElems(stampData)
		if err != nil {
			return nil, err
		}
		if stamps, values, err = parseSeriesPairs(elems); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: time series data must be a JSON object or array", errs.ErrMalformedValue)
	}

	return &value.TimeSeriesVariableResolution{
		Stamps:     stamps,
		Values:     values,
		IgnoreYear: ignoreYear,
		Repeat:     repeat,
		IndexName:  indexName,
	}, nil
}

// parseSeriesPairs parses two-column [stamp, value] rows.
func parseSeriesPairs(elems []rawElem) ([]value.DateTime, []float64, error) {
	stamps := make([]value.DateTime, 0, len(elems))
	values := make([]float64, 0, len(elems))

	for i, elem := range elems {
		if elem.typ != jsonparser.Array {
			return nil, nil, fmt.Errorf("%w: time series row %d must be a [stamp, value] pair", errs.ErrMalformedValue, i)
		}

		pair, err := arrayElems(elem.data)
		if err != nil {
			return nil, nil, err
		}
		if len(pair) != 2 {
			return nil, nil, fmt.Errorf("%w: time series row %d must have exactly two columns", errs.ErrMalformedValue, i)
		}

		stampText, err := jsonparser.ParseString(pair[0].data)
		if err != nil || pair[0].typ != jsonparser.String {
			return nil, nil, fmt.Errorf("%w: time series row %d has a malformed stamp", errs.ErrMalformedValue, i)
		}
		stamp, err := value.ParseDateTime(stampText)
		if err != nil {
			return nil, nil, err
		}

		if pair[1].typ != jsonparser.Number {
			return nil, nil, fmt.Errorf("%w: time series row %d has a non-numeric value", errs.ErrMalformedValue, i)
		}
		f, err := jsonparser.ParseFloat(pair[1].data)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}

		stamps = append(stamps, stamp)
		values = append(values, f)
	}

	return stamps, values, nil
}

// decodeMap decodes the tagged map shape. Pairs arrive either as a
// two-column array, which preserves duplicate indexes, or as a JSON object.
func decodeMap(data []byte) (value.Value, error) {
	indexTypeName, err := jsonparser.GetString(data, "index_type")
	if err != nil {
		return nil, fmt.Errorf("%w: map requires an \"index_type\" member", errs.ErrMalformedValue)
	}
	indexType, ok := format.ParseIndexType(indexTypeName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown index_type %q", errs.ErrMalformedValue, indexTypeName)
	}

	indexName, err := optionalString(data, "index_name", value.DefaultMapIndexName)
	if err != nil {
		return nil, err
	}

	pairData, pairType, _, err := jsonparser.Get(data, "data")
	if err != nil {
		return nil, fmt.Errorf("%w: map requires a \"data\" member", errs.ErrMalformedValue)
	}

	var pairs []value.MapPair

	switch pairType {
	case jsonparser.Array:
		elems, err := arrayElems(pairData)
		if err != nil {
			return nil, err
		}
		pairs = make([]value.MapPair, 0, len(elems))
		for i, elem := range elems {
			if elem.typ != jsonparser.Array {
				return nil, fmt.Errorf("%w: map row %d must be an [index, value] pair", errs.ErrMalformedValue, i)
			}
			pair, err := arrayElems(elem.data)
			if err != nil {
				return nil, err
			}
			if len(pair) != 2 {
				return nil, fmt.Errorf("%w: map row %d must have exactly two columns", errs.ErrMalformedValue, i)
			}

			idx, err := parseIndexScalar(pair[0].data, pair[0].typ, indexType)
			if err != nil {
				return nil, fmt.Errorf("map row %d: %w", i, err)
			}
			val, err := decodeNested(pair[1].data, pair[1].typ)
			if err != nil {
				return nil, fmt.Errorf("map row %d: %w", i, err)
			}
			pairs = append(pairs, value.MapPair{Index: idx, Value: val})
		}
	case jsonparser.Object:
		err = jsonparser.ObjectEach(pairData, func(key, v []byte, vt jsonparser.ValueType, _ int) error {
			idx, err := parseIndexScalar(key, jsonparser.String, indexType)
			if err != nil {
				return err
			}
			val, err := decodeNested(v, vt)
			if err != nil {
				return err
			}
			pairs = append(pairs, value.MapPair{Index: idx, Value: val})

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}
	default:
		return nil, fmt.Errorf("%w: map data must be a JSON array or object", errs.ErrMalformedValue)
	}

	return &value.Map{IndexType: indexType, Pairs: pairs, IndexName: indexName}, nil
}

// decodeNested decodes a Map pair value or Table cell: a raw scalar
// literal, or an embedded object whose "type" member names its kind.
func decodeNested(data []byte, vtype jsonparser.ValueType) (value.Value, error) {
	if vtype != jsonparser.Object {
		return parseScalar(data, vtype)
	}

	tag, err := jsonparser.GetString(data, "type")
	if err != nil {
		return nil, fmt.Errorf("%w: embedded value must carry a \"type\" member", errs.ErrMalformedValue)
	}

	typ, ok := format.ParseTag(tag)
	if !ok || typ == format.TypeNone {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownTypeTag, tag)
	}

	return decodeTyped(data, typ)
}

// decodeTable decodes a header row of column names followed by value rows.
func decodeTable(data []byte) (value.Value, error) {
	rows, err := arrayElems(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return value.NewTable(nil, nil)
	}
	if rows[0].typ != jsonparser.Array {
		return nil, fmt.Errorf("%w: table rows must be JSON arrays", errs.ErrMalformedValue)
	}

	headerElems, err := arrayElems(rows[0].data)
	if err != nil {
		return nil, err
	}
	header := make([]string, len(headerElems))
	for i, elem := range headerElems {
		if elem.typ != jsonparser.String {
			return nil, fmt.Errorf("%w: table header cell %d must be a string", errs.ErrMalformedValue, i)
		}
		if header[i], err = jsonparser.ParseString(elem.data); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrMalformedValue, err)
		}
	}

	body := make([][]value.Value, 0, len(rows)-1)
	for r, row := range rows[1:] {
		if row.typ != jsonparser.Array {
			return nil, fmt.Errorf("%w: table row %d must be a JSON array", errs.ErrMalformedValue, r+1)
		}
		cells, err := arrayElems(row.data)
		if err != nil {
			return nil, err
		}
		decoded := make([]value.Value, len(cells))
		for c, cell := range cells {
			if decoded[c], err = decodeNested(cell.data, cell.typ); err != nil {
				return nil, fmt.Errorf("table cell (%d, %d): %w", r+1, c, err)
			}
		}
		body = append(body, decoded)
	}

	return value.NewTable(header, body)
}
