// Package hrm wraps the HR system's REST endpoints used by the API tests.
// Each operation sends one request and returns the answer shaped into a
// shaper.Record holding the status plus a fixed set of fields.
package hrm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-logr/logr"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
	"github.com/konnektr-io/hrm-api-helpers/internal/config"
	"github.com/konnektr-io/hrm-api-helpers/internal/shaper"
	"github.com/konnektr-io/hrm-api-helpers/internal/util"
)

// Client talks to one HR system. It is safe for concurrent use.
type Client struct {
	shaper   *shaper.Shaper
	baseURL  string
	authRef  *v1alpha1.AuthenticationRef
	resolver *util.AuthResolver
	config   *config.Config
	log      logr.Logger
}

type clientOptions struct {
	log        logr.Logger
	httpClient util.HTTPClient
}

// Option configures a Client.
type Option func(*clientOptions)

// WithLogger sets the logger for request tracing and shaping diagnostics.
func WithLogger(log logr.Logger) Option {
	return func(o *clientOptions) {
		o.log = log
	}
}

// WithHTTPClient replaces the REST transport.
func WithHTTPClient(c util.HTTPClient) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// NewClient creates a Client for the system described by cfg.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	o := clientOptions{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		restOpts := []util.Option{util.WithLogger(o.log)}
		if timeout := cfg.HTTPTimeout(); timeout > 0 {
			restOpts = append(restOpts, util.WithTimeout(timeout))
		}
		o.httpClient = util.NewRESTClient(restOpts...)
	}

	return &Client{
		shaper:   shaper.New(o.httpClient, o.log),
		baseURL:  cfg.BaseURL(),
		authRef:  cfg.AuthenticationRef(),
		resolver: util.NewAuthResolver(cfg, o.log),
		config:   cfg,
		log:      o.log,
	}
}

// Credentials returns the configured login.
func (c *Client) Credentials() (username, password string) {
	return c.config.Username(), c.config.Password()
}

// BaseURL of the system under test.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Shape sends an arbitrary request and extracts spec from the answer.
func (c *Client) Shape(ctx context.Context, method, endpoint, token string, body interface{}, spec v1alpha1.ShapeSpec) (*shaper.Record, error) {
	return c.call(ctx, request{method: method, endpoint: endpoint, token: token, body: body}, spec)
}

// ShapeRequest sends the request described by spec with an already rendered body.
func (c *Client) ShapeRequest(ctx context.Context, spec *v1alpha1.RequestSpec, token string, body interface{}) (*shaper.Record, error) {
	query := make(map[string]interface{}, len(spec.Query))
	for k, v := range spec.Query {
		query[k] = v
	}
	return c.call(ctx, request{
		method:   spec.GetMethod(),
		endpoint: spec.Endpoint,
		token:    token,
		body:     body,
		query:    query,
		insecure: spec.Insecure,
	}, spec.Shape)
}

type request struct {
	method   string
	endpoint string
	token    string
	body     interface{}
	query    map[string]interface{}
	insecure bool
}

func (c *Client) call(ctx context.Context, req request, spec v1alpha1.ShapeSpec) (*shaper.Record, error) {
	auth, err := c.resolver.ResolveAuthenticationConfig(c.authRef, req.token)
	if err != nil {
		return nil, fmt.Errorf("resolving authentication for %s: %w", req.endpoint, err)
	}

	method := req.method
	if method == "" {
		method = http.MethodGet
	}

	var query map[string]string
	if len(req.query) > 0 {
		query = make(map[string]string, len(req.query))
		for k, v := range req.query {
			query[k] = fmt.Sprint(v)
		}
	}

	return c.shaper.Shape(ctx, util.HTTPConfig{
		URL:        c.baseURL + req.endpoint,
		Method:     method,
		Query:      query,
		Body:       req.body,
		AuthType:   auth.AuthType,
		AuthConfig: auth.AuthConfig,
		Insecure:   req.insecure,
	}, spec)
}
