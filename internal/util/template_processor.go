package util

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
	"github.com/konnektr-io/hrm-api-helpers/internal/fixture"
)

// TemplateProcessor renders request payloads and parses request specs.
type TemplateProcessor struct {
	funcs template.FuncMap
}

// NewTemplateProcessor creates a new TemplateProcessor. Templates get the sprig
// functions plus uniqueName and uniqueID backed by gen (fixture.Default if nil).
func NewTemplateProcessor(gen *fixture.Generator) *TemplateProcessor {
	if gen == nil {
		gen = fixture.Default
	}
	funcs := sprig.TxtFuncMap()
	funcs["uniqueName"] = gen.UniqueName
	funcs["uniqueID"] = gen.UniqueID
	return &TemplateProcessor{funcs: funcs}
}

// ProcessTemplate processes a Go template with the given data
func (tp *TemplateProcessor) ProcessTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("payload").Funcs(tp.funcs).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ProcessPayload renders a JSON request body. An empty template yields an
// empty payload; anything else must render to valid JSON.
func (tp *TemplateProcessor) ProcessPayload(templateStr string, data interface{}) (string, error) {
	if templateStr == "" {
		return "", nil
	}
	payload, err := tp.ProcessTemplate(templateStr, data)
	if err != nil {
		return "", err
	}
	if !gjson.Valid(payload) {
		return "", fmt.Errorf("rendered payload is not valid JSON: %s", payload)
	}
	return payload, nil
}

// ParseRequestSpec parses a YAML or JSON document into a RequestSpec.
func ParseRequestSpec(data []byte) (*v1alpha1.RequestSpec, error) {
	spec := &v1alpha1.RequestSpec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("failed to parse request spec: %w", err)
	}
	if spec.Endpoint == "" {
		return nil, fmt.Errorf("request spec has no endpoint")
	}
	return spec, nil
}
