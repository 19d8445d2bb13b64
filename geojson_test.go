package geojson

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_Dispatch(t *testing.T) {
	tests := []struct {
		input string
		want  string // concrete type name
	}{
		{`{"type":"Point","coordinates":[1,2]}`, "Geometry"},
		{`{"type":"MultiPoint","coordinates":[[1,2]]}`, "Geometry"},
		{`{"type":"LineString","coordinates":[[1,2],[3,4]]}`, "Geometry"},
		{`{"type":"MultiLineString","coordinates":[[[1,2],[3,4]]]}`, "Geometry"},
		{`{"type":"Polygon","coordinates":[[[1,2],[3,4],[1,2]]]}`, "Geometry"},
		{`{"type":"MultiPolygon","coordinates":[[[[1,2],[3,4],[1,2]]]]}`, "Geometry"},
		{`{"type":"GeometryCollection","geometries":[]}`, "Geometry"},
		{`{"type":"Feature"}`, "Feature"},
		{`{"type":"FeatureCollection","features":[]}`, "FeatureCollection"},
	}

	for _, tt := range tests {
		doc := mustParse(t, tt.input)

		var got string
		switch doc.(type) {
		case Geometry:
			got = "Geometry"
		case Feature:
			got = "Feature"
		case FeatureCollection:
			got = "FeatureCollection"
		}
		if got != tt.want {
			t.Errorf("Parse(%s) yielded %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not json", `{not json`, ErrMalformedJSON},
		{"empty", ``, ErrMalformedJSON},
		{"top-level array", `[{"type":"Point"}]`, ErrMalformedJSON},
		{"top-level string", `"Point"`, ErrMalformedJSON},
		{"missing type", `{"coordinates":[1,2]}`, ErrExpectedProperty},
		{"unknown top-level type", `{"type":"Foo"}`, ErrGeoJSONUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

// Round-trip idempotence over a spread of documents: parse, serialize,
// parse again, compare the typed values.
func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{"type":"Point","coordinates":[-120.66029,35.2812]}`,
		`{"type":"Point","coordinates":[1,2,3]}`,
		`{"type":"MultiPoint","coordinates":[]}`,
		`{"type":"LineString","coordinates":[[101,0],[102,1]],"bbox":[101,0,102,1]}`,
		`{"type":"Polygon","coordinates":[[[100,0],[101,0],[101,1],[100,0]]],"custom":42}`,
		`{"type":"GeometryCollection","geometries":[` +
			`{"type":"Point","coordinates":[100,0]},` +
			`{"type":"GeometryCollection","geometries":[{"type":"LineString","coordinates":[[1,2],[3,4]]}]}]}`,
		`{"type":"Feature","geometry":null,"properties":{"a":1,"b":[true,null],"c":{"d":"e"}},"id":99}`,
		`{"type":"Feature",` +
			`"crs":{"type":"link","properties":{"href":"http://example.com/crs","type":"proj4"}},` +
			`"geometry":{"type":"Point","coordinates":[0,0]},"properties":null,"note":"x"}`,
		`{"type":"FeatureCollection","features":[` +
			`{"type":"Feature","geometry":{"type":"Point","coordinates":[102,0.5]},"properties":{"prop0":"value0"}},` +
			`{"type":"Feature","geometry":null,"properties":null,"id":"second"}],` +
			`"bbox":[102,0,103,1]}`,
	}

	for _, doc := range docs {
		first := mustParse(t, doc)
		second := mustParse(t, first.String())
		if !reflect.DeepEqual(second, first) {
			t.Errorf("round trip changed value for %s:\nfirst:  %#v\nsecond: %#v", doc, first, second)
		}
	}
}

// Serialization is deterministic: the same value always renders to the
// same text.
func TestSerializeDeterministic(t *testing.T) {
	doc := mustParse(t, `{"b":1,"a":2,"type":"Point","coordinates":[1,2]}`)
	first := doc.String()
	second := doc.String()
	if first != second {
		t.Errorf("String() not deterministic: %s vs %s", first, second)
	}

	want := `{"b":1,"a":2,"type":"Point","coordinates":[1,2]}`
	if first != want {
		t.Errorf("String() = %s, want %s", first, want)
	}
}
