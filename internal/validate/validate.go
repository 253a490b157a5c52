package validate

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"stayscape/internal/domain"
)

// Kind is the expected primitive of a body field.
type Kind int

const (
	String Kind = iota
	Number
	Date
)

type Field struct {
	Required bool
	Type     Kind
}

// Schema maps field names to their expected shape.
type Schema map[string]Field

// Fields is the normalized, type-checked payload.
type Fields map[string]any

// Date layouts accepted for check_in_date/check_out_date.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Body checks a raw JSON payload against a schema. The two validation tiers
// are distinct on purpose: unknown or missing-required keys are a shape
// problem ("Bad request."), a present key of the wrong primitive is a type
// problem ("Invalid input type."), and an unparseable date is its own class.
func Body(raw []byte, schema Schema) (Fields, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, domain.ShapeError{}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, domain.ShapeError{Err: err}
	}

	for key := range payload {
		if _, ok := schema[key]; !ok {
			return nil, domain.ShapeError{Field: key}
		}
	}

	out := Fields{}
	for name, field := range schema {
		value, present := payload[name]
		if !present || value == nil {
			if field.Required {
				return nil, domain.ShapeError{Field: name}
			}
			continue
		}

		switch field.Type {
		case String:
			s, ok := value.(string)
			if !ok {
				return nil, domain.TypeError{Field: name}
			}
			out[name] = s
		case Number:
			n, ok := value.(json.Number)
			if !ok {
				return nil, domain.TypeError{Field: name}
			}
			f, err := n.Float64()
			if err != nil {
				return nil, domain.TypeError{Field: name, Err: err}
			}
			out[name] = f
		case Date:
			s, ok := value.(string)
			if !ok {
				return nil, domain.DateFormatError{Field: name}
			}
			parsed, err := ParseDate(s)
			if err != nil {
				return nil, domain.DateFormatError{Field: name, Value: s}
			}
			out[name] = parsed
		}
	}
	return out, nil
}

// ParseDate coerces a date string; each date field is checked independently.
func ParseDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", domain.DateFormatError{Value: s}
}

func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

func (f Fields) Str(name string) string {
	s, _ := f[name].(string)
	return s
}

func (f Fields) Num(name string) float64 {
	n, _ := f[name].(float64)
	return n
}

func (f Fields) Int(name string) int64 {
	return int64(f.Num(name))
}

// StrPtr/NumPtr feed coalesce updates: nil when the key was absent.
func (f Fields) StrPtr(name string) *string {
	if !f.Has(name) {
		return nil
	}
	s := f.Str(name)
	return &s
}

func (f Fields) NumPtr(name string) *float64 {
	if !f.Has(name) {
		return nil
	}
	n := f.Num(name)
	return &n
}

// ID coerces a :id path segment; anything non-integer is a type error.
func ID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.TypeError{Field: "id", Err: err}
	}
	return id, nil
}
