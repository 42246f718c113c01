package util

import (
	"fmt"
	"strings"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
)

// ParseFieldSpecs parses a semicolon-separated list of field declarations.
//
// Each entry has the form name[=path][:kind]. A name ending in "[]" declares a
// list, a trailing "?" drops empty values:
//
//	ids[]=id;nationality=nationality.name;cells[]?=cellProperties:object
//
// Without "=" the path equals the bare name. Invalid entries are skipped.
// Returns an error if no valid declarations are found.
func ParseFieldSpecs(pattern string) ([]v1alpha1.FieldSpec, error) {
	var specs []v1alpha1.FieldSpec
	for entry := range strings.SplitSeq(pattern, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		var kind v1alpha1.ValueKind
		if i := strings.LastIndex(entry, ":"); i >= 0 {
			kind = v1alpha1.ValueKind(strings.TrimSpace(entry[i+1:]))
			entry = entry[:i]
			if !validKind(kind) {
				continue
			}
		}

		name, path, hasPath := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		path = strings.TrimSpace(path)

		spec := v1alpha1.FieldSpec{Kind: kind}
		if strings.HasSuffix(name, "?") {
			spec.OmitEmpty = true
			name = strings.TrimSuffix(name, "?")
		}
		if strings.HasSuffix(name, "[]") {
			spec.List = true
			name = strings.TrimSuffix(name, "[]")
		}
		if !hasPath {
			path = name
		}
		// Invalid patterns are skipped
		if name == "" {
			continue
		}
		spec.Name = name
		spec.Path = path
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no valid field declarations specified")
	}
	return specs, nil
}

func validKind(kind v1alpha1.ValueKind) bool {
	switch kind {
	case v1alpha1.KindAny, v1alpha1.KindInt, v1alpha1.KindString,
		v1alpha1.KindBool, v1alpha1.KindObject, v1alpha1.KindArray:
		return true
	}
	return false
}
