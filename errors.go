package geojson

import (
	"errors"
	"fmt"
)

// Errors returned while reading a GeoJSON object from text or from a
// generic JSON object. The set is closed: every parse failure surfaces
// as exactly one of these values, or as *CrsUnknownTypeError.
var (
	ErrMalformedJSON                  = errors.New("geojson: malformed JSON")
	ErrGeoJSONExpectedObject          = errors.New("geojson: non-object type for GeoJSON")
	ErrGeoJSONUnknownType             = errors.New("geojson: unknown GeoJSON object type")
	ErrGeometryUnknownType            = errors.New("geojson: unknown 'geometry' object type")
	ErrCrsExpectedObject              = errors.New("geojson: non-object type for a 'crs' object")
	ErrBboxExpectedArray              = errors.New("geojson: non-array type for a 'bbox' object")
	ErrBboxExpectedNumericValues      = errors.New("geojson: non-numeric value within 'bbox' array")
	ErrPropertiesExpectedObjectOrNull = errors.New("geojson: neither object type nor null type for 'properties' object")
	ErrFeatureInvalidGeometryValue    = errors.New("geojson: neither object type nor null type for 'geometry' field on 'feature' object")
	ErrExpectedStringValue            = errors.New("geojson: expected a string value")
	ErrExpectedProperty               = errors.New("geojson: expected a GeoJSON property")
	ErrExpectedFloatValue             = errors.New("geojson: expected a floating-point value")
	ErrExpectedArrayValue             = errors.New("geojson: expected an array")
	ErrExpectedObjectValue            = errors.New("geojson: expected an object")
)

// CrsUnknownTypeError reports an unrecognized 'crs' object type. It is
// the one error in the set that carries the offending value.
type CrsUnknownTypeError struct {
	Type string
}

func (e *CrsUnknownTypeError) Error() string {
	return fmt.Sprintf("geojson: unknown type %q for a 'crs' object", e.Type)
}
