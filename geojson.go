// Package geojson converts GeoJSON text to a typed object model and
// back. Parsing validates the structural rules of the format and fails
// fast with one of the errors in errors.go; serialization emits keys in
// a fixed canonical order and preserves unknown ("foreign") members
// verbatim, so a parse/serialize round trip is lossless.
//
// The package performs no I/O and keeps no state between calls.
// Recursion over nested GeometryCollections and features is bounded
// only by the call stack; limiting input depth is the caller's concern.
package geojson

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Position locates a point in coordinate space: longitude, latitude and
// any further dimensions the data carries. No arity is enforced here.
type Position = []float64

// Bbox is a flat bounding box descriptor, 2xN values for N dimensions.
// No arity is enforced here.
type Bbox = []float64

// Coordinate shapes shared by the geometry variants.
type (
	PointType      = Position
	LineStringType = []Position
	PolygonType    = [][]Position
)

// Member is a single JSON object member, used for foreign members kept
// verbatim across a round trip. Order within a member list matters.
type Member struct {
	Key   string
	Value json.RawMessage
}

// GeoJSON is a top-level GeoJSON object: a Geometry, a Feature or a
// FeatureCollection. The set is closed.
type GeoJSON interface {
	json.Marshaler
	fmt.Stringer
	isGeoJSON()
}

// Parse converts a GeoJSON text document into its typed representation.
// The first structural violation aborts the whole parse; there is no
// partial result.
func Parse(s string) (GeoJSON, error) {
	if !gjson.Valid(s) {
		return nil, ErrMalformedJSON
	}

	res := gjson.Parse(s)
	if !res.IsObject() {
		return nil, ErrMalformedJSON
	}

	obj, err := objectOf(res)
	if err != nil {
		return nil, err
	}

	return fromObject(obj)
}

// fromObject routes on the "type" discriminator to the matching model.
func fromObject(obj object) (GeoJSON, error) {
	typ, err := obj.typeOf()
	if err != nil {
		return nil, err
	}

	switch typ {
	case "Point", "MultiPoint", "LineString", "MultiLineString",
		"Polygon", "MultiPolygon", "GeometryCollection":
		g, err := geometryFromObject(obj)
		if err != nil {
			return nil, err
		}
		return g, nil

	case "Feature":
		f, err := featureFromObject(obj)
		if err != nil {
			return nil, err
		}
		return f, nil

	case "FeatureCollection":
		fc, err := featureCollectionFromObject(obj)
		if err != nil {
			return nil, err
		}
		return fc, nil

	default:
		return nil, ErrGeoJSONUnknownType
	}
}

// topObject decodes data for the per-type UnmarshalJSON entry points.
func topObject(data []byte) (object, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformedJSON
	}

	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return nil, ErrGeoJSONExpectedObject
	}

	return objectOf(res)
}

func marshalString(m json.Marshaler) string {
	b, err := m.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}
