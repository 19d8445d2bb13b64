package geojson

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// member is a single key/value pair of a JSON object.
type member struct {
	key string
	val gjson.Result
}

// object is a JSON object with its members kept in document order.
type object []member

// objectOf collects the members of a JSON object in document order.
func objectOf(res gjson.Result) (object, error) {
	if !res.IsObject() {
		return nil, ErrExpectedObjectValue
	}

	var obj object
	res.ForEach(func(key, val gjson.Result) bool {
		obj = append(obj, member{key: key.String(), val: val})
		return true
	})

	return obj, nil
}

func (o object) find(key string) (gjson.Result, bool) {
	for _, m := range o {
		if m.key == key {
			return m.val, true
		}
	}
	return gjson.Result{}, false
}

// require returns the value at key or fails if the key is absent.
func (o object) require(key string) (gjson.Result, error) {
	v, ok := o.find(key)
	if !ok {
		return gjson.Result{}, ErrExpectedProperty
	}
	return v, nil
}

// typeOf reads the "type" discriminator every GeoJSON object carries.
func (o object) typeOf() (string, error) {
	v, err := o.require("type")
	if err != nil {
		return "", err
	}
	return asString(v)
}

func asString(res gjson.Result) (string, error) {
	if res.Type != gjson.String {
		return "", ErrExpectedStringValue
	}
	return res.String(), nil
}

func asFloat(res gjson.Result) (float64, error) {
	if res.Type != gjson.Number {
		return 0, ErrExpectedFloatValue
	}
	return res.Float(), nil
}

func asArray(res gjson.Result) ([]gjson.Result, error) {
	if !res.IsArray() {
		return nil, ErrExpectedArrayValue
	}
	return res.Array(), nil
}

// positionOf parses a single position, an array of numbers.
func positionOf(res gjson.Result) (Position, error) {
	elems, err := asArray(res)
	if err != nil {
		return nil, err
	}

	pos := make(Position, 0, len(elems))
	for _, e := range elems {
		f, err := asFloat(e)
		if err != nil {
			return nil, err
		}
		pos = append(pos, f)
	}

	return pos, nil
}

// coords1, coords2 and coords3 walk coordinate arrays one, two and three
// levels above a plain position. Each level requires an array; the leaf
// level requires numbers. Wrong depth therefore surfaces as the same
// errors as a wrong leaf type.
func coords1(res gjson.Result) ([]Position, error) {
	elems, err := asArray(res)
	if err != nil {
		return nil, err
	}

	out := make([]Position, 0, len(elems))
	for _, e := range elems {
		pos, err := positionOf(e)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}

	return out, nil
}

func coords2(res gjson.Result) ([][]Position, error) {
	elems, err := asArray(res)
	if err != nil {
		return nil, err
	}

	out := make([][]Position, 0, len(elems))
	for _, e := range elems {
		line, err := coords1(e)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}

	return out, nil
}

func coords3(res gjson.Result) ([][][]Position, error) {
	elems, err := asArray(res)
	if err != nil {
		return nil, err
	}

	out := make([][][]Position, 0, len(elems))
	for _, e := range elems {
		poly, err := coords2(e)
		if err != nil {
			return nil, err
		}
		out = append(out, poly)
	}

	return out, nil
}

// bbox extracts the optional "bbox" member as a flat numeric array.
func (o object) bbox() (Bbox, error) {
	res, ok := o.find("bbox")
	if !ok {
		return nil, nil
	}
	if !res.IsArray() {
		return nil, ErrBboxExpectedArray
	}

	elems := res.Array()
	bbox := make(Bbox, 0, len(elems))
	for _, e := range elems {
		if e.Type != gjson.Number {
			return nil, ErrBboxExpectedNumericValues
		}
		bbox = append(bbox, e.Float())
	}

	return bbox, nil
}

// crs extracts the optional "crs" member and converts it to a Crs value.
func (o object) crs() (Crs, error) {
	res, ok := o.find("crs")
	if !ok {
		return nil, nil
	}

	obj, err := objectOf(res)
	if err != nil {
		return nil, ErrCrsExpectedObject
	}

	return crsFromObject(obj)
}

// foreignMembers returns every member whose key is not reserved for a
// typed field, in document order, with raw values compacted so a round
// trip is stable regardless of input whitespace.
func (o object) foreignMembers(reserved ...string) []Member {
	var fm []Member
	for _, m := range o {
		if containsKey(reserved, m.key) {
			continue
		}
		fm = append(fm, Member{Key: m.key, Value: rawValue(m.val)})
	}
	return fm
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// rawValue keeps an arbitrary JSON value verbatim, in compact form.
func rawValue(res gjson.Result) json.RawMessage {
	return json.RawMessage(pretty.Ugly([]byte(res.Raw)))
}

// objectBuilder writes a JSON object with a fixed, deterministic key
// order. Values are spliced in as already-encoded JSON.
type objectBuilder struct {
	buf bytes.Buffer
	n   int
}

func newObjectBuilder() *objectBuilder {
	b := &objectBuilder{}
	b.buf.WriteByte('{')
	return b
}

func (b *objectBuilder) field(key string, value []byte) {
	if b.n > 0 {
		b.buf.WriteByte(',')
	}
	b.n++

	k, _ := json.Marshal(key) // marshaling a string cannot fail
	b.buf.Write(k)
	b.buf.WriteByte(':')
	b.buf.Write(value)
}

func (b *objectBuilder) finish() []byte {
	b.buf.WriteByte('}')
	return b.buf.Bytes()
}

// writeCommon emits the shared wrapper metadata in canonical order:
// crs first, then bbox, then foreign members. The "type" discriminator
// and the payload follow at each call site.
func writeCommon(b *objectBuilder, crs Crs, bbox Bbox, fm []Member) error {
	if crs != nil {
		v, err := crs.MarshalJSON()
		if err != nil {
			return err
		}
		b.field("crs", v)
	}

	if bbox != nil {
		v, err := json.Marshal(bbox)
		if err != nil {
			return err
		}
		b.field("bbox", v)
	}

	for _, m := range fm {
		b.field(m.Key, m.Value)
	}

	return nil
}
