package geojson

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Properties is the free-form property map of a feature. Values are
// arbitrary JSON, kept verbatim in compact form.
type Properties map[string]json.RawMessage

// Feature is a feature object: optional geometry, free-form properties
// and identifier, plus the shared optional metadata.
type Feature struct {
	Geometry   *Geometry
	Properties Properties

	// ID is the feature identifier, a string or a number per the
	// format, preserved verbatim. Nil means absent.
	ID json.RawMessage

	Bbox           Bbox
	Crs            Crs
	ForeignMembers []Member
}

func (Feature) isGeoJSON() {}

func featureFromObject(obj object) (Feature, error) {
	var geometry *Geometry
	if res, ok := obj.find("geometry"); ok {
		switch {
		case res.Type == gjson.Null:
			// explicit null is the same as absent
		case res.IsObject():
			gobj, err := objectOf(res)
			if err != nil {
				return Feature{}, err
			}
			g, err := geometryFromObject(gobj)
			if err != nil {
				return Feature{}, err
			}
			geometry = &g
		default:
			return Feature{}, ErrFeatureInvalidGeometryValue
		}
	}

	var properties Properties
	if res, ok := obj.find("properties"); ok {
		switch {
		case res.Type == gjson.Null:
		case res.IsObject():
			properties = make(Properties)
			res.ForEach(func(key, val gjson.Result) bool {
				properties[key.String()] = rawValue(val)
				return true
			})
		default:
			return Feature{}, ErrPropertiesExpectedObjectOrNull
		}
	}

	var id json.RawMessage
	if res, ok := obj.find("id"); ok && res.Type != gjson.Null {
		id = rawValue(res)
	}

	bbox, err := obj.bbox()
	if err != nil {
		return Feature{}, err
	}
	crs, err := obj.crs()
	if err != nil {
		return Feature{}, err
	}
	fm := obj.foreignMembers("type", "geometry", "properties", "id", "bbox", "crs")

	return Feature{
		Geometry:       geometry,
		Properties:     properties,
		ID:             id,
		Bbox:           bbox,
		Crs:            crs,
		ForeignMembers: fm,
	}, nil
}

// MarshalJSON renders the feature with keys in canonical order. The
// geometry and properties members are always present, null when unset;
// the id member is omitted when unset.
func (f Feature) MarshalJSON() ([]byte, error) {
	b := newObjectBuilder()
	if err := writeCommon(b, f.Crs, f.Bbox, f.ForeignMembers); err != nil {
		return nil, err
	}
	b.field("type", []byte(`"Feature"`))

	if f.Geometry != nil {
		g, err := f.Geometry.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.field("geometry", g)
	} else {
		b.field("geometry", []byte("null"))
	}

	if f.Properties != nil {
		p, err := json.Marshal(f.Properties)
		if err != nil {
			return nil, err
		}
		b.field("properties", p)
	} else {
		b.field("properties", []byte("null"))
	}

	if f.ID != nil {
		b.field("id", f.ID)
	}

	return b.finish(), nil
}

// UnmarshalJSON parses a single feature object.
func (f *Feature) UnmarshalJSON(data []byte) error {
	obj, err := topObject(data)
	if err != nil {
		return err
	}

	parsed, err := featureFromObject(obj)
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}

func (f Feature) String() string {
	return marshalString(f)
}
