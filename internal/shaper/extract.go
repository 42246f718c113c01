package shaper

import (
	"math"

	"github.com/go-logr/logr"
	"github.com/tidwall/gjson"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
)

// Extract reads the declared fields from a classified node. The result holds
// exactly one entry per field: lists are never nil, scalars may be.
func Extract(node DataNode, fields []v1alpha1.FieldSpec, log logr.Logger) map[string]interface{} {
	values := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		if field.List {
			list := make([]interface{}, 0, len(node.Items))
			for _, item := range node.Items {
				v := valueAt(item, field, log)
				if field.OmitEmpty && isEmpty(v) {
					continue
				}
				list = append(list, v)
			}
			values[field.Name] = list
			continue
		}

		var v interface{}
		if len(node.Items) > 0 {
			// Scalars of an array come from its first element.
			v = valueAt(node.Items[0], field, log)
		}
		if field.OmitEmpty && isEmpty(v) {
			v = nil
		}
		values[field.Name] = v
	}
	return values
}

func valueAt(item gjson.Result, field v1alpha1.FieldSpec, log logr.Logger) interface{} {
	result := item
	if field.Path != "" {
		result = item.Get(field.Path)
	}
	if !result.Exists() {
		return nil
	}
	v := Normalize(result)
	if v != nil && !matchesKind(v, field.Kind) {
		log.Info("Unexpected type for field, using null", "field", field.Name, "want", string(field.Kind), "got", result.Type.String())
		return nil
	}
	return v
}

// Normalize converts a gjson value into plain Go values. Integral numbers
// become int, other numbers float64, objects map[string]interface{} and
// arrays []interface{}.
func Normalize(r gjson.Result) interface{} {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False, gjson.True:
		return r.Bool()
	case gjson.String:
		return r.Str
	case gjson.Number:
		if r.Num == math.Trunc(r.Num) && math.Abs(r.Num) <= 1<<53 {
			return int(r.Int())
		}
		return r.Num
	case gjson.JSON:
		if r.IsArray() {
			elems := r.Array()
			out := make([]interface{}, len(elems))
			for i, e := range elems {
				out[i] = Normalize(e)
			}
			return out
		}
		out := map[string]interface{}{}
		r.ForEach(func(key, value gjson.Result) bool {
			out[key.String()] = Normalize(value)
			return true
		})
		return out
	}
	return nil
}

func matchesKind(v interface{}, kind v1alpha1.ValueKind) bool {
	switch kind {
	case v1alpha1.KindInt:
		_, ok := v.(int)
		return ok
	case v1alpha1.KindString:
		_, ok := v.(string)
		return ok
	case v1alpha1.KindBool:
		_, ok := v.(bool)
		return ok
	case v1alpha1.KindObject:
		_, ok := v.(map[string]interface{})
		return ok
	case v1alpha1.KindArray:
		_, ok := v.([]interface{})
		return ok
	default:
		return true
	}
}

func isEmpty(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
