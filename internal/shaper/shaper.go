package shaper

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
	"github.com/konnektr-io/hrm-api-helpers/internal/util"
)

// Shaper issues one request and shapes its answer.
type Shaper struct {
	client util.HTTPClient
	log    logr.Logger
}

// New creates a Shaper. Diagnostics go to log; pass logr.Discard() to silence them.
func New(client util.HTTPClient, log logr.Logger) *Shaper {
	return &Shaper{client: client, log: log}
}

// Shape performs the request described by config and extracts spec from the
// answer. Transport failures are returned as errors. A missing or malformed
// root node is not an error: the record then holds empty lists and nil scalars.
func (s *Shaper) Shape(ctx context.Context, config util.HTTPConfig, spec v1alpha1.ShapeSpec) (*Record, error) {
	raw, err := s.client.Execute(ctx, config)
	if err != nil {
		return nil, err
	}
	log := s.log.WithValues("method", config.Method, "url", config.URL, "requestID", raw.RequestID)
	return FromResponse(raw, spec, log), nil
}

// FromResponse shapes an already received answer.
func FromResponse(raw *util.RawResponse, spec v1alpha1.ShapeSpec, log logr.Logger) *Record {
	root := spec.GetRoot()
	node := Classify(raw.Body, root)
	if node.Shape == ShapeAbsent && len(spec.Fields) > 0 {
		log.Info("Root node unavailable, fields left empty", "root", root, "reason", node.Reason, "statusCode", raw.StatusCode)
	}

	return &Record{
		StatusCode: raw.StatusCode,
		StatusLine: raw.StatusLine,
		Body:       raw.Body,
		RequestID:  raw.RequestID,
		Shape:      node.Shape,
		fields:     Extract(node, spec.Fields, log),
	}
}
