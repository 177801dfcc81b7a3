// Package codec decodes API responses into typed values, reporting the JSON path of the
// first value that does not fit.
package codec

import (
	"bytes"
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"finco/openocean/errors"
)

var (
	pathUnmarshalerType = reflect.TypeOf((*PathUnmarshaler)(nil)).Elem()
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	numberType          = reflect.TypeOf(json.Number(""))
)

// Decode unmarshals a JSON document into out, which must be a non-nil pointer.
// Any failure is returned as *errors.ParseError carrying the path of the offending value,
// e.g. data.path.routes[0].percentage, and an excerpt of body.
//
// Struct fields are required unless their type is a pointer, slice, map or interface or
// their tag carries omitempty. Unknown members are ignored.
func Decode(body []byte, out interface{}) error {
	return DecodeAt(body, out, "")
}

// DecodeAt is Decode for a document nested in a larger response. Reported paths start at
// root, e.g. DecodeAt(action, &swap, "data") fails at data.swapImpact.
func DecodeAt(body []byte, out interface{}, root string) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Internal(errors.UnmarshallError, fmt.Errorf("decode target must be a non-nil pointer, got %T", out))
	}

	// syntax and trailing data are reported against the whole document
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return errors.Parse(err, root, body)
	}

	d := decoder{body: body}
	return d.value(raw, rv.Elem(), root, false)
}

// DecodeFunc decodes raw into out, a non-nil pointer, at rel below the value being
// unmarshaled. An empty rel keeps the current path.
type DecodeFunc func(raw []byte, out interface{}, rel string) error

// PathUnmarshaler is implemented by types whose JSON shape varies. The type picks a shape
// and hands the value back through decode, so nested failures keep their full path and
// required field rules. It takes precedence over json.Unmarshaler. Decoding into the
// receiver's own type through decode recurses.
type PathUnmarshaler interface {
	UnmarshalJSONPath(raw []byte, decode DecodeFunc) error
}

type decoder struct {
	body []byte
}

func (d *decoder) fail(path string, err error) error {
	return errors.Parse(err, path, d.body)
}

func (d *decoder) mismatch(path string, raw []byte, t reflect.Type) error {
	return d.fail(path, fmt.Errorf("cannot decode JSON %s into Go value of type %s", jsonKind(raw), t))
}

// value decodes raw into v. optional allows null to leave a non nullable v untouched.
func (d *decoder) value(raw []byte, v reflect.Value, path string, optional bool) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return d.fail(path, fmt.Errorf("unexpected end of JSON input"))
	}

	if raw[0] == 'n' {
		if nullable(v.Kind()) {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		if optional {
			return nil
		}
		return d.fail(path, fmt.Errorf("null is not allowed for Go value of type %s", v.Type()))
	}

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return d.value(raw, v.Elem(), path, false)
	}

	if v.Type() == numberType {
		var n json.Number
		if raw[0] != '"' && raw[0] != '-' && (raw[0] < '0' || raw[0] > '9') {
			return d.mismatch(path, raw, v.Type())
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return d.fail(path, err)
		}
		v.SetString(string(n))
		return nil
	}

	if v.CanAddr() {
		pv := v.Addr()
		if pv.Type().Implements(pathUnmarshalerType) {
			return d.hook(raw, pv.Interface().(PathUnmarshaler), path)
		}
		if pv.Type().Implements(jsonUnmarshalerType) {
			if err := pv.Interface().(json.Unmarshaler).UnmarshalJSON(raw); err != nil {
				return d.fail(path, err)
			}
			return nil
		}
		if pv.Type().Implements(textUnmarshalerType) {
			if raw[0] != '"' {
				return d.mismatch(path, raw, v.Type())
			}
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return d.fail(path, err)
			}
			if err := pv.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
				return d.fail(path, err)
			}
			return nil
		}
	}

	switch v.Kind() {
	case reflect.Interface:
		return d.iface(raw, v, path)
	case reflect.Struct:
		return d.object(raw, v, path)
	case reflect.Map:
		return d.mapping(raw, v, path)
	case reflect.Slice:
		return d.slice(raw, v, path)
	case reflect.Array:
		return d.array(raw, v, path)
	case reflect.String:
		if raw[0] != '"' {
			return d.mismatch(path, raw, v.Type())
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return d.fail(path, err)
		}
		v.SetString(s)
		return nil
	case reflect.Bool:
		switch string(raw) {
		case "true":
			v.SetBool(true)
		case "false":
			v.SetBool(false)
		default:
			return d.mismatch(path, raw, v.Type())
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return d.number(raw, v, path)
	}
	return d.fail(path, fmt.Errorf("unsupported Go value of type %s", v.Type()))
}

func (d *decoder) hook(raw []byte, u PathUnmarshaler, path string) error {
	err := u.UnmarshalJSONPath(raw, func(raw []byte, out interface{}, rel string) error {
		rv := reflect.ValueOf(out)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return errors.Internal(errors.UnmarshallError, fmt.Errorf("decode target must be a non-nil pointer, got %T", out))
		}
		at := path
		if rel != "" {
			at = joinKey(path, rel)
		}
		return d.value(raw, rv.Elem(), at, false)
	})
	if err == nil {
		return nil
	}
	if errors.KindOf(err) != errors.KindUnknown {
		return err
	}
	return d.fail(path, err)
}

func (d *decoder) number(raw []byte, v reflect.Value, path string) error {
	if jsonKind(raw) != "number" {
		return d.mismatch(path, raw, v.Type())
	}
	text := string(raw)
	overflow := func() error {
		return d.fail(path, fmt.Errorf("number %s overflows Go value of type %s", text, v.Type()))
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, v.Type().Bits())
		if err != nil {
			if isRangeErr(err) {
				return overflow()
			}
			return d.fail(path, fmt.Errorf("cannot decode JSON number %s into Go value of type %s", text, v.Type()))
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if strings.HasPrefix(text, "-") {
			return d.fail(path, fmt.Errorf("cannot decode negative number %s into Go value of type %s", text, v.Type()))
		}
		n, err := strconv.ParseUint(text, 10, v.Type().Bits())
		if err != nil {
			if isRangeErr(err) {
				return overflow()
			}
			return d.fail(path, fmt.Errorf("cannot decode JSON number %s into Go value of type %s", text, v.Type()))
		}
		v.SetUint(n)
	default:
		f, err := strconv.ParseFloat(text, v.Type().Bits())
		if err != nil {
			if isRangeErr(err) {
				return overflow()
			}
			return d.fail(path, err)
		}
		v.SetFloat(f)
	}
	return nil
}

func (d *decoder) iface(raw []byte, v reflect.Value, path string) error {
	if v.NumMethod() != 0 {
		return d.fail(path, fmt.Errorf("unsupported Go value of type %s", v.Type()))
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return d.fail(path, err)
	}
	v.Set(reflect.ValueOf(&generic).Elem())
	return nil
}

func (d *decoder) object(raw []byte, v reflect.Value, path string) error {
	if raw[0] != '{' {
		return d.mismatch(path, raw, v.Type())
	}
	members, err := objectMembers(raw)
	if err != nil {
		return d.fail(path, err)
	}

	for _, f := range cachedFields(v.Type()) {
		fieldPath := joinKey(path, f.name)
		member, ok := members.lookup(f.name)
		if !ok {
			if f.required {
				return d.fail(fieldPath, fmt.Errorf("missing required field"))
			}
			continue
		}
		if f.quoted {
			member = unquoteLiteral(member)
		}
		if err := d.value(member, v.FieldByIndex(f.index), fieldPath, !f.required); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) mapping(raw []byte, v reflect.Value, path string) error {
	if raw[0] != '{' {
		return d.mismatch(path, raw, v.Type())
	}
	members, err := objectMembers(raw)
	if err != nil {
		return d.fail(path, err)
	}

	t := v.Type()
	if v.IsNil() {
		v.Set(reflect.MakeMapWithSize(t, len(members)))
	}
	for _, m := range members {
		key := reflect.New(t.Key()).Elem()
		switch t.Key().Kind() {
		case reflect.String:
			key.SetString(m.key)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(m.key, 10, t.Key().Bits())
			if err != nil {
				return d.fail(joinKey(path, m.key), fmt.Errorf("invalid map key %q for Go value of type %s", m.key, t))
			}
			key.SetInt(n)
		default:
			return d.fail(path, fmt.Errorf("unsupported map key type %s", t.Key()))
		}

		elem := reflect.New(t.Elem()).Elem()
		if err := d.value(m.raw, elem, joinKey(path, m.key), false); err != nil {
			return err
		}
		v.SetMapIndex(key, elem)
	}
	return nil
}

func (d *decoder) slice(raw []byte, v reflect.Value, path string) error {
	if raw[0] == '"' && v.Type().Elem().Kind() == reflect.Uint8 {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return d.fail(path, err)
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return d.fail(path, err)
		}
		v.SetBytes(b)
		return nil
	}
	if raw[0] != '[' {
		return d.mismatch(path, raw, v.Type())
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return d.fail(path, err)
	}

	out := reflect.MakeSlice(v.Type(), len(items), len(items))
	for i, item := range items {
		if err := d.value(item, out.Index(i), joinIndex(path, i), false); err != nil {
			return err
		}
	}
	v.Set(out)
	return nil
}

func (d *decoder) array(raw []byte, v reflect.Value, path string) error {
	if raw[0] != '[' {
		return d.mismatch(path, raw, v.Type())
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return d.fail(path, err)
	}
	if len(items) > v.Len() {
		return d.fail(path, fmt.Errorf("array of %d elements does not fit Go value of type %s", len(items), v.Type()))
	}
	for i := 0; i < v.Len(); i++ {
		if i >= len(items) {
			v.Index(i).Set(reflect.Zero(v.Type().Elem()))
			continue
		}
		if err := d.value(items[i], v.Index(i), joinIndex(path, i), false); err != nil {
			return err
		}
	}
	return nil
}

type member struct {
	key string
	raw json.RawMessage
}

type members []member

// lookup matches the key exactly, then case insensitively. The last match wins, as with
// encoding/json.
func (ms members) lookup(name string) (json.RawMessage, bool) {
	var found json.RawMessage
	ok := false
	for _, m := range ms {
		if m.key == name {
			found, ok = m.raw, true
		}
	}
	if ok {
		return found, true
	}
	for _, m := range ms {
		if strings.EqualFold(m.key, name) {
			found, ok = m.raw, true
		}
	}
	return found, ok
}

// objectMembers lists the members of a JSON object in document order.
func objectMembers(raw []byte) (members, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var out members
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid object key %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		out = append(out, member{key: key, raw: value})
	}
	return out, nil
}

type field struct {
	name     string
	index    []int
	required bool
	quoted   bool
}

var fieldCache sync.Map // map[reflect.Type][]field

func cachedFields(t reflect.Type) []field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field)
	}
	f, _ := fieldCache.LoadOrStore(t, typeFields(t, nil))
	return f.([]field)
}

// typeFields lists the decodable fields of t, flattening embedded structs.
func typeFields(t reflect.Type, index []int) []field {
	var fields []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts := parseTag(tag)
		idx := append(append([]int(nil), index...), i)

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			fields = append(fields, typeFields(sf.Type, idx)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, field{
			name:     name,
			index:    idx,
			required: !hasOption(opts, "omitempty") && !nullable(sf.Type.Kind()),
			quoted:   hasOption(opts, "string") && scalar(sf.Type.Kind()),
		})
	}
	return fields
}

func parseTag(tag string) (string, []string) {
	parts := strings.Split(tag, ",")
	return parts[0], parts[1:]
}

func hasOption(opts []string, want string) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}

func scalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func nullable(k reflect.Kind) bool {
	switch k {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

// unquoteLiteral unwraps "123" to 123 for fields tagged with the string option.
func unquoteLiteral(raw json.RawMessage) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '"' {
		return raw
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || !json.Valid([]byte(s)) {
		return raw
	}
	return json.RawMessage(s)
}

func jsonKind(raw []byte) string {
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	}
	return "number"
}

func isRangeErr(err error) bool {
	var ne *strconv.NumError
	return errors.As(err, &ne) && ne.Err == strconv.ErrRange
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func joinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
