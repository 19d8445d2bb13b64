package geomconv

import (
	"errors"
	"reflect"
	"testing"

	"github.com/twpayne/go-geom"

	"github.com/woozymasta/geojson"
)

func TestToGeom_Point(t *testing.T) {
	g, err := ToGeom(geojson.Geometry{Value: geojson.Point{1, 2}})
	if err != nil {
		t.Fatalf("ToGeom() failed: %v", err)
	}

	point, ok := g.(*geom.Point)
	if !ok {
		t.Fatalf("ToGeom() = %T, want *geom.Point", g)
	}
	if point.Layout() != geom.XY {
		t.Errorf("Layout() = %v, want XY", point.Layout())
	}
	if !reflect.DeepEqual(point.Coords(), geom.Coord{1, 2}) {
		t.Errorf("Coords() = %v, want [1 2]", point.Coords())
	}
}

func TestToGeom_PointXYZ(t *testing.T) {
	g, err := ToGeom(geojson.Geometry{Value: geojson.Point{1, 2, 3}})
	if err != nil {
		t.Fatalf("ToGeom() failed: %v", err)
	}
	if g.Layout() != geom.XYZ {
		t.Errorf("Layout() = %v, want XYZ", g.Layout())
	}
}

func TestToGeom_ShortPosition(t *testing.T) {
	_, err := ToGeom(geojson.Geometry{Value: geojson.Point{1}})
	if !errors.Is(err, ErrShortPosition) {
		t.Errorf("ToGeom() error = %v, want %v", err, ErrShortPosition)
	}
}

func TestToGeom_Polygon(t *testing.T) {
	value := geojson.Polygon{{{100, 0}, {101, 0}, {101, 1}, {100, 0}}}
	g, err := ToGeom(geojson.Geometry{Value: value})
	if err != nil {
		t.Fatalf("ToGeom() failed: %v", err)
	}

	polygon, ok := g.(*geom.Polygon)
	if !ok {
		t.Fatalf("ToGeom() = %T, want *geom.Polygon", g)
	}
	if polygon.NumLinearRings() != 1 {
		t.Errorf("NumLinearRings() = %d, want 1", polygon.NumLinearRings())
	}
}

func TestToGeom_Collection(t *testing.T) {
	value := geojson.GeometryCollection{
		geojson.Geometry{Value: geojson.Point{1, 2}},
		geojson.Geometry{Value: geojson.LineString{{1, 2}, {3, 4}}},
	}
	g, err := ToGeom(geojson.Geometry{Value: value})
	if err != nil {
		t.Fatalf("ToGeom() failed: %v", err)
	}

	gc, ok := g.(*geom.GeometryCollection)
	if !ok {
		t.Fatalf("ToGeom() = %T, want *geom.GeometryCollection", g)
	}
	if gc.NumGeoms() != 2 {
		t.Errorf("NumGeoms() = %d, want 2", gc.NumGeoms())
	}
}

func TestFromGeom_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value geojson.Value
	}{
		{"point", geojson.Point{1, 2}},
		{"multi point", geojson.MultiPoint{{1, 2}, {3, 4}}},
		{"line string", geojson.LineString{{101, 0}, {102, 1}}},
		{"multi line string", geojson.MultiLineString{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}}},
		{"polygon", geojson.Polygon{{{100, 0}, {101, 0}, {101, 1}, {100, 0}}}},
		{"multi polygon", geojson.MultiPolygon{{{{1, 2}, {3, 4}, {5, 6}, {1, 2}}}}},
		{"collection", geojson.GeometryCollection{
			geojson.Geometry{Value: geojson.Point{1, 2}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted, err := ToGeom(geojson.Geometry{Value: tt.value})
			if err != nil {
				t.Fatalf("ToGeom() failed: %v", err)
			}

			back, err := FromGeom(converted)
			if err != nil {
				t.Fatalf("FromGeom() failed: %v", err)
			}
			if !reflect.DeepEqual(back.Value, tt.value) {
				t.Errorf("round trip = %#v, want %#v", back.Value, tt.value)
			}
		})
	}
}

func TestFromGeom_LineString(t *testing.T) {
	ls := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{1, 2}, {3, 4}})

	g, err := FromGeom(ls)
	if err != nil {
		t.Fatalf("FromGeom() failed: %v", err)
	}
	want := geojson.LineString{{1, 2}, {3, 4}}
	if !reflect.DeepEqual(g.Value, want) {
		t.Errorf("Value = %#v, want %#v", g.Value, want)
	}
}
