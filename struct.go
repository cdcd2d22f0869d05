// seehuhn.de/go/swf - a library for reading and writing SWF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package swf

import (
	"bytes"
	"encoding"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"seehuhn.de/go/swf/internal/float"
)

// MarshalJSON encodes v in the textual interchange form.
// This is the converse of [UnmarshalJSON].
//
// Struct fields are written in declaration order.  The key of a field is
// given by the `swf` struct tag, or else by the Go field name in
// [SnakeCase].  Absent optional fields are omitted, byte slices are written
// as lower case hex strings, and values of registered unions (see
// [RegisterUnion]) start with their discriminant.
func MarshalJSON(v any) ([]byte, error) {
	e := &encoder{}
	rv := reflect.ValueOf(v)
	var err error
	if u := lookupVariant(rv); u != nil {
		err = e.variant(u, rv, "")
	} else {
		err = e.value(rv, "")
	}
	if err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// MarshalJSONIndent is like [MarshalJSON] but applies [json.Indent] to the
// output.
func MarshalJSONIndent(v any, prefix, indent string) ([]byte, error) {
	data, err := MarshalJSON(v)
	if err != nil {
		return nil, err
	}
	out := &bytes.Buffer{}
	err = json.Indent(out, data, prefix, indent)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// UnmarshalJSON decodes the textual interchange form into the value pointed
// to by dst.  This is the converse of [MarshalJSON].
//
// All fields which are not optional must be present, and unknown or
// duplicated fields are rejected.  If dst points to a variant of a
// registered union, the data must contain the matching discriminant, as
// written by [MarshalJSON].  Errors are reported as [*FormatError] values which locate the
// offending field.
func UnmarshalJSON(data []byte, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.New("swf: UnmarshalJSON needs a non-nil pointer")
	}
	if !json.Valid(data) {
		return &FormatError{Err: errors.New("malformed JSON")}
	}

	// A variant decoded through its own type still carries the
	// discriminant written by MarshalJSON.
	if u := lookupVariant(v); u != nil {
		obj, err := decodeObject(data, "")
		if err != nil {
			return err
		}
		vt, err := takeDiscriminant(u, obj, "")
		if err != nil {
			return err
		}
		if vt != v.Type() {
			return &FormatError{
				Path: "/" + u.key,
				Err:  fmt.Errorf("got %q, expected %q", u.byType[vt], u.byType[v.Type()]),
			}
		}
		return decodeFields(obj, v.Elem(), "")
	}

	return decodeValue(data, v.Elem(), "")
}

// optionalValue is implemented by optional.Value.
type optionalValue interface {
	IsSet() bool
	Interface() any
	ElemType() reflect.Type
}

type optionalSetter interface {
	SetInterface(v any)
}

var (
	optionalType      = reflect.TypeFor[optionalValue]()
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

type fieldInfo struct {
	index int
	name  string
	opt   bool
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// fieldsOf lists the exported fields of the struct type t together with
// their interchange names.
func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	var res []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get("swf")
		if name == "-" {
			continue
		}
		if name == "" {
			name = SnakeCase.Convert(f.Name)
		}
		res = append(res, fieldInfo{
			index: i,
			name:  name,
			opt:   f.Type.Implements(optionalType),
		})
	}

	cached, _ := fieldCache.LoadOrStore(t, res)
	return cached.([]fieldInfo)
}

type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) value(v reflect.Value, path string) error {
	if !v.IsValid() {
		return &FormatError{Path: path, Err: errNilValue}
	}
	vt := v.Type()

	if vt.Kind() == reflect.Interface {
		if v.IsNil() {
			return &FormatError{Path: path, Err: errNilValue}
		}
		if u := lookupUnion(vt); u != nil {
			return e.variant(u, v.Elem(), path)
		}
		return e.value(v.Elem(), path)
	}

	if vt.Implements(optionalType) {
		opt := v.Interface().(optionalValue)
		inner := opt.Interface()
		if inner == nil {
			e.buf.WriteString("null")
			return nil
		}
		// keep the static type, so that unions get their discriminant
		iv := reflect.New(opt.ElemType()).Elem()
		iv.Set(reflect.ValueOf(inner))
		return e.value(iv, path)
	}
	if vt.Implements(jsonMarshalerType) {
		data, err := v.Interface().(json.Marshaler).MarshalJSON()
		if err != nil {
			return wrapError(path, err)
		}
		e.buf.Write(data)
		return nil
	}
	if vt.Implements(textMarshalerType) {
		data, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return wrapError(path, err)
		}
		e.writeString(string(data))
		return nil
	}

	switch vt.Kind() {
	case reflect.Bool:
		e.buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		x := v.Float()
		s := float.Format(x, vt.Bits())
		if float.IsFinite(x) {
			e.buf.WriteString(s)
		} else {
			e.writeString(s)
		}
	case reflect.String:
		e.writeString(v.String())
	case reflect.Slice:
		if vt.Elem().Kind() == reflect.Uint8 {
			e.writeString(hex.EncodeToString(v.Bytes()))
			return nil
		}
		return e.list(v, path)
	case reflect.Array:
		return e.list(v, path)
	case reflect.Pointer:
		if v.IsNil() {
			return &FormatError{Path: path, Err: errNilValue}
		}
		return e.value(v.Elem(), path)
	case reflect.Struct:
		e.buf.WriteByte('{')
		err := e.fields(v, path, false)
		if err != nil {
			return err
		}
		e.buf.WriteByte('}')
	default:
		return &FormatError{Path: path, Err: fmt.Errorf("unsupported type %s", vt)}
	}
	return nil
}

// variant writes a union member, starting with its discriminant.
func (e *encoder) variant(u *union, v reflect.Value, path string) error {
	name, ok := u.byType[v.Type()]
	if !ok {
		return &FormatError{Path: path, Err: fmt.Errorf("%w: type %s", ErrUnknownVariant, v.Type())}
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return &FormatError{Path: path, Err: errNilValue}
		}
		v = v.Elem()
	}

	e.buf.WriteByte('{')
	e.writeString(u.key)
	e.buf.WriteByte(':')
	e.writeString(name)
	err := e.fields(v, path, true)
	if err != nil {
		return err
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) fields(v reflect.Value, path string, needComma bool) error {
	for _, f := range fieldsOf(v.Type()) {
		fVal := v.Field(f.index)
		if f.opt && !fVal.Interface().(optionalValue).IsSet() {
			continue
		}
		if needComma {
			e.buf.WriteByte(',')
		}
		needComma = true
		e.writeString(f.name)
		e.buf.WriteByte(':')
		err := e.value(fVal, path+"/"+f.name)
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) list(v reflect.Value, path string) error {
	e.buf.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		err := e.value(v.Index(i), path+"/"+strconv.Itoa(i))
		if err != nil {
			return err
		}
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) writeString(s string) {
	enc := json.NewEncoder(&e.buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // cannot fail for strings
	e.buf.Truncate(e.buf.Len() - 1) // remove the trailing newline
}

func decodeValue(data json.RawMessage, v reflect.Value, path string) error {
	data = bytes.TrimSpace(data)
	vt := v.Type()

	if vt.Kind() == reflect.Interface {
		u := lookupUnion(vt)
		if u == nil {
			return &FormatError{Path: path, Err: fmt.Errorf("cannot decode into %s", vt)}
		}
		return decodeVariant(u, data, v, path)
	}

	if v.CanAddr() {
		switch ptr := v.Addr().Interface().(type) {
		case optionalSetter:
			if isNull(data) {
				return nil
			}
			elem := reflect.New(v.Interface().(optionalValue).ElemType()).Elem()
			err := decodeValue(data, elem, path)
			if err != nil {
				return err
			}
			ptr.SetInterface(elem.Interface())
			return nil
		case json.Unmarshaler:
			return wrapError(path, ptr.UnmarshalJSON(data))
		case encoding.TextUnmarshaler:
			s, err := decodeString(data)
			if err != nil {
				return &FormatError{Path: path, Err: err}
			}
			return wrapError(path, ptr.UnmarshalText([]byte(s)))
		}
	}

	switch vt.Kind() {
	case reflect.Bool:
		var b bool
		if isNull(data) || json.Unmarshal(data, &b) != nil {
			return &FormatError{Path: path, Err: fmt.Errorf("expected a boolean, got %s", abbrev(data))}
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x, err := strconv.ParseInt(string(data), 10, vt.Bits())
		if err != nil {
			return &FormatError{Path: path, Err: fmt.Errorf("expected int%d, got %s", vt.Bits(), abbrev(data))}
		}
		v.SetInt(x)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		x, err := strconv.ParseUint(string(data), 10, vt.Bits())
		if err != nil {
			return &FormatError{Path: path, Err: fmt.Errorf("expected uint%d, got %s", vt.Bits(), abbrev(data))}
		}
		v.SetUint(x)
	case reflect.Float32, reflect.Float64:
		x, err := decodeFloat(data, vt.Bits())
		if err != nil {
			return &FormatError{Path: path, Err: err}
		}
		v.SetFloat(x)
	case reflect.String:
		s, err := decodeString(data)
		if err != nil {
			return &FormatError{Path: path, Err: err}
		}
		v.SetString(s)
	case reflect.Slice:
		if vt.Elem().Kind() == reflect.Uint8 {
			s, err := decodeString(data)
			if err != nil {
				return &FormatError{Path: path, Err: err}
			}
			b, err := hex.DecodeString(s)
			if err != nil {
				return &FormatError{Path: path, Err: err}
			}
			v.SetBytes(b)
			return nil
		}
		var elems []json.RawMessage
		if isNull(data) || json.Unmarshal(data, &elems) != nil {
			return &FormatError{Path: path, Err: fmt.Errorf("expected an array, got %s", abbrev(data))}
		}
		s := reflect.MakeSlice(vt, len(elems), len(elems))
		for i, elem := range elems {
			err := decodeValue(elem, s.Index(i), path+"/"+strconv.Itoa(i))
			if err != nil {
				return err
			}
		}
		v.Set(s)
	case reflect.Array:
		var elems []json.RawMessage
		if isNull(data) || json.Unmarshal(data, &elems) != nil {
			return &FormatError{Path: path, Err: fmt.Errorf("expected an array, got %s", abbrev(data))}
		}
		if len(elems) != vt.Len() {
			return &FormatError{Path: path, Err: fmt.Errorf("expected %d elements, got %d", vt.Len(), len(elems))}
		}
		for i, elem := range elems {
			err := decodeValue(elem, v.Index(i), path+"/"+strconv.Itoa(i))
			if err != nil {
				return err
			}
		}
	case reflect.Pointer:
		p := reflect.New(vt.Elem())
		err := decodeValue(data, p.Elem(), path)
		if err != nil {
			return err
		}
		v.Set(p)
	case reflect.Struct:
		obj, err := decodeObject(data, path)
		if err != nil {
			return err
		}
		return decodeFields(obj, v, path)
	default:
		return &FormatError{Path: path, Err: fmt.Errorf("cannot decode into %s", vt)}
	}
	return nil
}

func decodeVariant(u *union, data json.RawMessage, v reflect.Value, path string) error {
	obj, err := decodeObject(data, path)
	if err != nil {
		return err
	}
	vt, err := takeDiscriminant(u, obj, path)
	if err != nil {
		return err
	}

	var res, target reflect.Value
	if vt.Kind() == reflect.Pointer {
		res = reflect.New(vt.Elem())
		target = res.Elem()
	} else {
		res = reflect.New(vt).Elem()
		target = res
	}
	err = decodeFields(obj, target, path)
	if err != nil {
		return err
	}
	v.Set(res)
	return nil
}

// decodeFields fills the struct v from obj.  All entries of obj must be
// consumed.
func decodeFields(obj map[string]json.RawMessage, v reflect.Value, path string) error {
	v.Set(reflect.Zero(v.Type()))
	for _, f := range fieldsOf(v.Type()) {
		fPath := path + "/" + f.name
		data, ok := obj[f.name]
		if !ok {
			if f.opt {
				continue
			}
			return &FormatError{Path: fPath, Err: errMissingField}
		}
		delete(obj, f.name)
		err := decodeValue(data, v.Field(f.index), fPath)
		if err != nil {
			return err
		}
	}
	if len(obj) > 0 {
		keys := make([]string, 0, len(obj))
		for key := range obj {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		return &FormatError{Path: path + "/" + keys[0], Err: errUnknownField}
	}
	return nil
}

// takeDiscriminant removes the discriminant from obj and returns the
// variant type it names.
func takeDiscriminant(u *union, obj map[string]json.RawMessage, path string) (reflect.Type, error) {
	keyPath := path + "/" + u.key
	rawName, ok := obj[u.key]
	if !ok {
		return nil, &FormatError{Path: keyPath, Err: errMissingField}
	}
	name, err := decodeString(rawName)
	if err != nil {
		return nil, &FormatError{Path: keyPath, Err: err}
	}
	vt, ok := u.byName[name]
	if !ok {
		return nil, &FormatError{Path: keyPath, Err: fmt.Errorf("%w %q", ErrUnknownVariant, name)}
	}
	delete(obj, u.key)
	return vt, nil
}

// decodeObject splits a JSON object into its members.
// Keys which occur more than once are rejected.
func decodeObject(data json.RawMessage, path string) (map[string]json.RawMessage, error) {
	notObject := &FormatError{Path: path, Err: fmt.Errorf("expected an object, got %s", abbrev(data))}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, notObject
	}
	obj := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, notObject
		}
		key, ok := tok.(string)
		if !ok {
			return nil, notObject
		}
		var val json.RawMessage
		err = dec.Decode(&val)
		if err != nil {
			return nil, notObject
		}
		if _, dup := obj[key]; dup {
			return nil, &FormatError{Path: path + "/" + key, Err: errDuplicateField}
		}
		obj[key] = val
	}
	tok, err = dec.Token()
	if err != nil || tok != json.Delim('}') {
		return nil, notObject
	}
	return obj, nil
}

func decodeString(data json.RawMessage) (string, error) {
	var s string
	if isNull(data) || json.Unmarshal(data, &s) != nil {
		return "", fmt.Errorf("expected a string, got %s", abbrev(data))
	}
	return s, nil
}

func decodeFloat(data json.RawMessage, bitSize int) (float64, error) {
	if len(data) > 0 && data[0] == '"' {
		s, err := decodeString(data)
		if err != nil {
			return 0, err
		}
		return float.ParseName(s)
	}
	x, err := strconv.ParseFloat(string(data), bitSize)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %s", abbrev(data))
	}
	return x, nil
}

func isNull(data json.RawMessage) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

func abbrev(data json.RawMessage) string {
	s := strings.TrimSpace(string(data))
	if len(s) > 20 {
		s = s[:17] + "..."
	}
	return s
}
