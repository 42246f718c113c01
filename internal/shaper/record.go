package shaper

import (
	"sort"
)

// Record is the outcome of one shaping call. It carries the status of the
// HTTP exchange and only the fields that were declared for it.
type Record struct {
	StatusCode int
	StatusLine string
	Body       []byte
	RequestID  string
	Shape      Shape

	fields map[string]interface{}
}

// Fields returns the names of the extracted fields, sorted.
func (r *Record) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name was declared.
func (r *Record) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// Value returns the raw extracted value, nil if absent.
func (r *Record) Value(name string) interface{} {
	return r.fields[name]
}

// Int returns a scalar integer field.
func (r *Record) Int(name string) (int, bool) {
	return asInt(r.fields[name])
}

// String returns a scalar string field.
func (r *Record) String(name string) (string, bool) {
	s, ok := r.fields[name].(string)
	return s, ok
}

// Bool returns a scalar boolean field.
func (r *Record) Bool(name string) (bool, bool) {
	b, ok := r.fields[name].(bool)
	return b, ok
}

// Map returns a scalar object field.
func (r *Record) Map(name string) (map[string]interface{}, bool) {
	m, ok := r.fields[name].(map[string]interface{})
	return m, ok
}

// List returns a list field, or nil if name is not a list.
func (r *Record) List(name string) []interface{} {
	l, _ := r.fields[name].([]interface{})
	return l
}

// Ints returns a list field as integers. ok is false if an entry is not an integer.
func (r *Record) Ints(name string) ([]int, bool) {
	list, isList := r.fields[name].([]interface{})
	if !isList {
		return nil, false
	}
	out := make([]int, 0, len(list))
	for _, v := range list {
		n, ok := asInt(v)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// Strings returns a list field as strings. ok is false if an entry is not a string.
func (r *Record) Strings(name string) ([]string, bool) {
	list, isList := r.fields[name].([]interface{})
	if !isList {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// Snapshot returns the record as a plain map, e.g. for printing.
func (r *Record) Snapshot() map[string]interface{} {
	fields := make(map[string]interface{}, len(r.fields))
	for k, v := range r.fields {
		fields[k] = v
	}
	return map[string]interface{}{
		"statusCode": r.StatusCode,
		"statusLine": r.StatusLine,
		"shape":      r.Shape.String(),
		"requestId":  r.RequestID,
		"fields":     fields,
	}
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
