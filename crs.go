package geojson

import (
	"encoding/json"
)

// Crs describes a coordinate reference system, either named by
// identifier or linked by URI.
type Crs interface {
	json.Marshaler
	isCrs()
}

// NamedCrs identifies a coordinate reference system by name, e.g.
// "urn:ogc:def:crs:OGC:1.3:CRS84".
type NamedCrs struct {
	Name string
}

// LinkedCrs points at a coordinate reference system by URI. Type is the
// optional hint of the dereferenced format; empty means not given.
type LinkedCrs struct {
	Href string
	Type string
}

func (NamedCrs) isCrs()  {}
func (LinkedCrs) isCrs() {}

// crsFromObject reads a {"type": ..., "properties": {...}} CRS object.
func crsFromObject(obj object) (Crs, error) {
	typ, err := obj.typeOf()
	if err != nil {
		return nil, err
	}

	res, err := obj.require("properties")
	if err != nil {
		return nil, err
	}
	props, err := objectOf(res)
	if err != nil {
		return nil, err
	}

	switch typ {
	case "name":
		res, err := props.require("name")
		if err != nil {
			return nil, err
		}
		name, err := asString(res)
		if err != nil {
			return nil, err
		}
		return NamedCrs{Name: name}, nil

	case "link":
		res, err := props.require("href")
		if err != nil {
			return nil, err
		}
		href, err := asString(res)
		if err != nil {
			return nil, err
		}

		var linkType string
		if res, ok := props.find("type"); ok {
			linkType, err = asString(res)
			if err != nil {
				return nil, err
			}
		}
		return LinkedCrs{Href: href, Type: linkType}, nil

	default:
		return nil, &CrsUnknownTypeError{Type: typ}
	}
}

func (c NamedCrs) MarshalJSON() ([]byte, error) {
	name, err := json.Marshal(c.Name)
	if err != nil {
		return nil, err
	}

	props := newObjectBuilder()
	props.field("name", name)

	b := newObjectBuilder()
	b.field("type", []byte(`"name"`))
	b.field("properties", props.finish())
	return b.finish(), nil
}

func (c LinkedCrs) MarshalJSON() ([]byte, error) {
	href, err := json.Marshal(c.Href)
	if err != nil {
		return nil, err
	}

	props := newObjectBuilder()
	props.field("href", href)
	if c.Type != "" {
		typ, err := json.Marshal(c.Type)
		if err != nil {
			return nil, err
		}
		props.field("type", typ)
	}

	b := newObjectBuilder()
	b.field("type", []byte(`"link"`))
	b.field("properties", props.finish())
	return b.finish(), nil
}
