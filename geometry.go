package geojson

import (
	"encoding/json"
)

// Value is the underlying geometry value, one of the seven GeoJSON
// geometry kinds. The set is closed.
type Value interface {
	// typeName is the canonical "type" discriminator of the variant.
	typeName() string
}

// Point holds one position.
type Point PointType

// MultiPoint holds a sequence of positions.
type MultiPoint []Position

// LineString holds a sequence of positions.
type LineString LineStringType

// MultiLineString holds a sequence of line strings.
type MultiLineString []LineStringType

// Polygon holds a sequence of rings.
type Polygon PolygonType

// MultiPolygon holds a sequence of polygons.
type MultiPolygon []PolygonType

// GeometryCollection holds nested geometries, each a full Geometry with
// its own optional metadata. Nesting depth is unbounded.
type GeometryCollection []Geometry

func (Point) typeName() string              { return "Point" }
func (MultiPoint) typeName() string         { return "MultiPoint" }
func (LineString) typeName() string         { return "LineString" }
func (MultiLineString) typeName() string    { return "MultiLineString" }
func (Polygon) typeName() string            { return "Polygon" }
func (MultiPolygon) typeName() string       { return "MultiPolygon" }
func (GeometryCollection) typeName() string { return "GeometryCollection" }

// Geometry is a geometry object: the value itself plus optional bbox,
// CRS and pass-through foreign members.
type Geometry struct {
	Value          Value
	Bbox           Bbox
	Crs            Crs
	ForeignMembers []Member
}

// NewGeometry returns a Geometry holding value, with no bbox, CRS or
// foreign members.
func NewGeometry(value Value) *Geometry {
	return &Geometry{Value: value}
}

func (Geometry) isGeoJSON() {}

func geometryFromObject(obj object) (Geometry, error) {
	typ, err := obj.typeOf()
	if err != nil {
		return Geometry{}, err
	}

	var value Value
	switch typ {
	case "Point":
		res, err := obj.require("coordinates")
		if err != nil {
			return Geometry{}, err
		}
		pos, err := positionOf(res)
		if err != nil {
			return Geometry{}, err
		}
		value = Point(pos)

	case "MultiPoint":
		coords, err := requireCoords1(obj)
		if err != nil {
			return Geometry{}, err
		}
		value = MultiPoint(coords)

	case "LineString":
		coords, err := requireCoords1(obj)
		if err != nil {
			return Geometry{}, err
		}
		value = LineString(coords)

	case "MultiLineString":
		coords, err := requireCoords2(obj)
		if err != nil {
			return Geometry{}, err
		}
		value = MultiLineString(coords)

	case "Polygon":
		coords, err := requireCoords2(obj)
		if err != nil {
			return Geometry{}, err
		}
		value = Polygon(coords)

	case "MultiPolygon":
		res, err := obj.require("coordinates")
		if err != nil {
			return Geometry{}, err
		}
		coords, err := coords3(res)
		if err != nil {
			return Geometry{}, err
		}
		value = MultiPolygon(coords)

	case "GeometryCollection":
		res, err := obj.require("geometries")
		if err != nil {
			return Geometry{}, err
		}
		elems, err := asArray(res)
		if err != nil {
			return Geometry{}, err
		}

		geoms := make([]Geometry, 0, len(elems))
		for _, e := range elems {
			gobj, err := objectOf(e)
			if err != nil {
				return Geometry{}, err
			}
			g, err := geometryFromObject(gobj)
			if err != nil {
				return Geometry{}, err
			}
			geoms = append(geoms, g)
		}
		value = GeometryCollection(geoms)

	default:
		return Geometry{}, ErrGeometryUnknownType
	}

	bbox, err := obj.bbox()
	if err != nil {
		return Geometry{}, err
	}
	crs, err := obj.crs()
	if err != nil {
		return Geometry{}, err
	}
	fm := obj.foreignMembers("type", "coordinates", "geometries", "bbox", "crs")

	return Geometry{Value: value, Bbox: bbox, Crs: crs, ForeignMembers: fm}, nil
}

func requireCoords1(obj object) ([]Position, error) {
	res, err := obj.require("coordinates")
	if err != nil {
		return nil, err
	}
	return coords1(res)
}

func requireCoords2(obj object) ([][]Position, error) {
	res, err := obj.require("coordinates")
	if err != nil {
		return nil, err
	}
	return coords2(res)
}

// MarshalJSON renders the geometry with keys in canonical order: crs,
// bbox, foreign members, type, then coordinates or geometries.
func (g Geometry) MarshalJSON() ([]byte, error) {
	b := newObjectBuilder()
	if err := writeCommon(b, g.Crs, g.Bbox, g.ForeignMembers); err != nil {
		return nil, err
	}

	typ, err := json.Marshal(g.Value.typeName())
	if err != nil {
		return nil, err
	}
	b.field("type", typ)

	payload, err := json.Marshal(g.Value)
	if err != nil {
		return nil, err
	}
	if _, ok := g.Value.(GeometryCollection); ok {
		b.field("geometries", payload)
	} else {
		b.field("coordinates", payload)
	}

	return b.finish(), nil
}

// UnmarshalJSON parses a single geometry object.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	obj, err := topObject(data)
	if err != nil {
		return err
	}

	parsed, err := geometryFromObject(obj)
	if err != nil {
		return err
	}

	*g = parsed
	return nil
}

func (g Geometry) String() string {
	return marshalString(g)
}
