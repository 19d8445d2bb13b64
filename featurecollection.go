package geojson

import (
	"encoding/json"
)

// FeatureCollection is a feature collection object: an ordered sequence
// of features plus the shared optional metadata.
type FeatureCollection struct {
	Features       []Feature
	Bbox           Bbox
	Crs            Crs
	ForeignMembers []Member
}

func (FeatureCollection) isGeoJSON() {}

func featureCollectionFromObject(obj object) (FeatureCollection, error) {
	res, err := obj.require("features")
	if err != nil {
		return FeatureCollection{}, err
	}
	elems, err := asArray(res)
	if err != nil {
		return FeatureCollection{}, err
	}

	features := make([]Feature, 0, len(elems))
	for _, e := range elems {
		fobj, err := objectOf(e)
		if err != nil {
			return FeatureCollection{}, err
		}
		f, err := featureFromObject(fobj)
		if err != nil {
			return FeatureCollection{}, err
		}
		features = append(features, f)
	}

	bbox, err := obj.bbox()
	if err != nil {
		return FeatureCollection{}, err
	}
	crs, err := obj.crs()
	if err != nil {
		return FeatureCollection{}, err
	}
	fm := obj.foreignMembers("type", "features", "bbox", "crs")

	return FeatureCollection{
		Features:       features,
		Bbox:           bbox,
		Crs:            crs,
		ForeignMembers: fm,
	}, nil
}

// MarshalJSON renders the collection with keys in canonical order.
func (fc FeatureCollection) MarshalJSON() ([]byte, error) {
	b := newObjectBuilder()
	if err := writeCommon(b, fc.Crs, fc.Bbox, fc.ForeignMembers); err != nil {
		return nil, err
	}
	b.field("type", []byte(`"FeatureCollection"`))

	if fc.Features == nil {
		b.field("features", []byte("[]"))
		return b.finish(), nil
	}

	features, err := json.Marshal(fc.Features)
	if err != nil {
		return nil, err
	}
	b.field("features", features)

	return b.finish(), nil
}

// UnmarshalJSON parses a single feature collection object.
func (fc *FeatureCollection) UnmarshalJSON(data []byte) error {
	obj, err := topObject(data)
	if err != nil {
		return err
	}

	parsed, err := featureCollectionFromObject(obj)
	if err != nil {
		return err
	}

	*fc = parsed
	return nil
}

func (fc FeatureCollection) String() string {
	return marshalString(fc)
}
