// Package shaper turns JSON answers of the HR API into flat records of
// declared fields.
//
// Every answer wraps its payload in a root node (normally "data") that may be
// missing, a single object or an array. Classify decides which once, and
// Extract works on the result without looking at the raw JSON again.
package shaper

import (
	"github.com/tidwall/gjson"
)

// Shape is the classification of the root node.
type Shape int

const (
	// ShapeAbsent means the root is missing, null, or not an object/array.
	ShapeAbsent Shape = iota
	// ShapeSingle means the root is one JSON object.
	ShapeSingle
	// ShapeMany means the root is a JSON array.
	ShapeMany
)

func (s Shape) String() string {
	switch s {
	case ShapeSingle:
		return "single"
	case ShapeMany:
		return "many"
	default:
		return "absent"
	}
}

// DataNode is the classified root node.
type DataNode struct {
	Shape Shape
	// Items holds the object for ShapeSingle and the elements for ShapeMany.
	Items []gjson.Result
	// Reason explains an absent node, for diagnostics.
	Reason string
}

// Classify locates root in body and classifies it.
func Classify(body []byte, root string) DataNode {
	if len(body) == 0 {
		return DataNode{Shape: ShapeAbsent, Reason: "empty response body"}
	}
	if !gjson.ValidBytes(body) {
		return DataNode{Shape: ShapeAbsent, Reason: "response body is not valid JSON"}
	}

	result := gjson.GetBytes(body, root)
	switch {
	case !result.Exists():
		return DataNode{Shape: ShapeAbsent, Reason: "'" + root + "' is missing"}
	case result.Type == gjson.Null:
		return DataNode{Shape: ShapeAbsent, Reason: "'" + root + "' is null"}
	case result.IsArray():
		return DataNode{Shape: ShapeMany, Items: result.Array()}
	case result.IsObject():
		return DataNode{Shape: ShapeSingle, Items: []gjson.Result{result}}
	default:
		return DataNode{Shape: ShapeAbsent, Reason: "'" + root + "' is a " + result.Type.String() + ", not an object or array"}
	}
}
