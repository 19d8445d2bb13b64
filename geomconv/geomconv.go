// Package geomconv converts between the geojson geometry model and the
// planar geometry types of github.com/twpayne/go-geom.
//
// The coordinate layout is inferred from position arity: two values map
// to geom.XY, three to geom.XYZ, four to geom.XYZM. Mixed arities
// within one geometry are rejected by go-geom itself.
package geomconv

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/woozymasta/geojson"
)

// ErrShortPosition is returned when a position carries fewer than two
// dimensions, which no go-geom layout can represent.
var ErrShortPosition = errors.New("geomconv: position has fewer than two dimensions")

// ToGeom converts a geojson geometry value to its go-geom counterpart.
// Bbox, CRS and foreign members are dropped: go-geom types carry
// coordinates only.
func ToGeom(g geojson.Geometry) (geom.T, error) {
	switch v := g.Value.(type) {
	case geojson.Point:
		layout, err := layoutFor(geojson.Position(v))
		if err != nil {
			return nil, err
		}
		return geom.NewPoint(layout).SetCoords(geom.Coord(v))

	case geojson.MultiPoint:
		layout, err := layoutForSeq([]geojson.Position(v))
		if err != nil {
			return nil, err
		}
		return geom.NewMultiPoint(layout).SetCoords(coords1(v))

	case geojson.LineString:
		layout, err := layoutForSeq([]geojson.Position(v))
		if err != nil {
			return nil, err
		}
		return geom.NewLineString(layout).SetCoords(coords1(v))

	case geojson.MultiLineString:
		layout, err := layoutForSeq2([][]geojson.Position(v))
		if err != nil {
			return nil, err
		}
		return geom.NewMultiLineString(layout).SetCoords(coords2(v))

	case geojson.Polygon:
		layout, err := layoutForSeq2([][]geojson.Position(v))
		if err != nil {
			return nil, err
		}
		return geom.NewPolygon(layout).SetCoords(coords2(v))

	case geojson.MultiPolygon:
		layout, err := layoutForSeq3([][][]geojson.Position(v))
		if err != nil {
			return nil, err
		}
		return geom.NewMultiPolygon(layout).SetCoords(coords3(v))

	case geojson.GeometryCollection:
		gc := geom.NewGeometryCollection()
		for _, nested := range v {
			t, err := ToGeom(nested)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(t); err != nil {
				return nil, err
			}
		}
		return gc, nil

	default:
		return nil, fmt.Errorf("geomconv: unsupported geometry value %T", g.Value)
	}
}

// FromGeom converts a go-geom geometry to a geojson Geometry with no
// bbox, CRS or foreign members.
func FromGeom(t geom.T) (geojson.Geometry, error) {
	switch g := t.(type) {
	case *geom.Point:
		return geojson.Geometry{Value: geojson.Point(g.Coords())}, nil

	case *geom.MultiPoint:
		return geojson.Geometry{Value: geojson.MultiPoint(positions1(g.Coords()))}, nil

	case *geom.LineString:
		return geojson.Geometry{Value: geojson.LineString(positions1(g.Coords()))}, nil

	case *geom.MultiLineString:
		return geojson.Geometry{Value: geojson.MultiLineString(positions2(g.Coords()))}, nil

	case *geom.Polygon:
		return geojson.Geometry{Value: geojson.Polygon(positions2(g.Coords()))}, nil

	case *geom.MultiPolygon:
		return geojson.Geometry{Value: geojson.MultiPolygon(positions3(g.Coords()))}, nil

	case *geom.GeometryCollection:
		geoms := make([]geojson.Geometry, 0, g.NumGeoms())
		for _, nested := range g.Geoms() {
			converted, err := FromGeom(nested)
			if err != nil {
				return geojson.Geometry{}, err
			}
			geoms = append(geoms, converted)
		}
		return geojson.Geometry{Value: geojson.GeometryCollection(geoms)}, nil

	default:
		return geojson.Geometry{}, fmt.Errorf("geomconv: unsupported geometry type %T", t)
	}
}

func layoutFor(pos geojson.Position) (geom.Layout, error) {
	switch {
	case len(pos) == 2:
		return geom.XY, nil
	case len(pos) == 3:
		return geom.XYZ, nil
	case len(pos) >= 4:
		return geom.XYZM, nil
	default:
		return geom.NoLayout, ErrShortPosition
	}
}

// layoutForSeq infers the layout from the first position found; empty
// sequences default to XY so empty geometries stay representable.
func layoutForSeq(seq []geojson.Position) (geom.Layout, error) {
	if len(seq) == 0 {
		return geom.XY, nil
	}
	return layoutFor(seq[0])
}

func layoutForSeq2(seq [][]geojson.Position) (geom.Layout, error) {
	if len(seq) == 0 {
		return geom.XY, nil
	}
	return layoutForSeq(seq[0])
}

func layoutForSeq3(seq [][][]geojson.Position) (geom.Layout, error) {
	if len(seq) == 0 {
		return geom.XY, nil
	}
	return layoutForSeq2(seq[0])
}

func coords1(seq []geojson.Position) []geom.Coord {
	out := make([]geom.Coord, 0, len(seq))
	for _, pos := range seq {
		out = append(out, geom.Coord(pos))
	}
	return out
}

func coords2(seq [][]geojson.Position) [][]geom.Coord {
	out := make([][]geom.Coord, 0, len(seq))
	for _, line := range seq {
		out = append(out, coords1(line))
	}
	return out
}

func coords3(seq [][][]geojson.Position) [][][]geom.Coord {
	out := make([][][]geom.Coord, 0, len(seq))
	for _, poly := range seq {
		out = append(out, coords2(poly))
	}
	return out
}

func positions1(coords []geom.Coord) []geojson.Position {
	out := make([]geojson.Position, 0, len(coords))
	for _, c := range coords {
		out = append(out, geojson.Position(c))
	}
	return out
}

func positions2(coords [][]geom.Coord) [][]geojson.Position {
	out := make([][]geojson.Position, 0, len(coords))
	for _, line := range coords {
		out = append(out, positions1(line))
	}
	return out
}

func positions3(coords [][][]geom.Coord) [][][]geojson.Position {
	out := make([][][]geojson.Position, 0, len(coords))
	for _, poly := range coords {
		out = append(out, positions2(poly))
	}
	return out
}
