package application

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"sitedesk/internal/application/crud"
	"sitedesk/internal/domain"
)

// managedFields cannot be written through add/update.
var managedFields = []string{"archived_at"}

var (
	errUnknownField = errors.New("champ inconnu")
	errReadOnly     = errors.New("champ en lecture seule")
)

// jsonFields maps the JSON names of a record struct to their Go types.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	out := map[string]reflect.Type{}
	if t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = f.Type
	}
	return out
}

// convert turns user text into the kind the target field holds. Types it
// does not know are left as text for the JSON decoder.
func convert(t reflect.Type, s string) (any, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return strconv.ParseBool(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.ParseInt(s, 10, t.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseUint(s, 10, t.Bits())
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return nil, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("%q n'est pas un nombre fini", s)
		}
		return f, nil
	default:
		return s, nil
	}
}

// decodeFields checks fields against T and returns them with text values
// converted to each field's type, along with the decoded record.
func decodeFields[T crud.Record](fields map[string]any) (T, map[string]any, error) {
	var rec T
	known := jsonFields(reflect.TypeFor[T]())

	out := make(map[string]any, len(fields))
	for name, v := range fields {
		for _, f := range managedFields {
			if name == f {
				return rec, nil, &domain.FieldError{Field: name, Err: errReadOnly}
			}
		}
		typ, ok := known[name]
		if !ok {
			return rec, nil, &domain.FieldError{Field: name, Err: errUnknownField}
		}
		if s, ok := v.(string); ok {
			converted, err := convert(typ, s)
			if err != nil {
				return rec, nil, &domain.FieldError{Field: name, Err: err}
			}
			v = converted
		}
		out[name] = v
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return rec, nil, fmt.Errorf("%w: %v", domain.ErrInvalidFields, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return rec, nil, &domain.FieldError{Field: typeErr.Field, Err: err}
		}
		return rec, nil, fmt.Errorf("%w: %v", domain.ErrInvalidFields, err)
	}
	return rec, out, nil
}
