// Package v1alpha1 holds the declarative types that describe a shaping call:
// which request to send and which fields to pull out of the JSON answer.
package v1alpha1

// DefaultRoot is the JSON path of the node every HR endpoint wraps its payload in.
const DefaultRoot = "data"

// DefaultCookieName is the session cookie the HR system authenticates with.
const DefaultCookieName = "orangehrm"

// ValueKind constrains the type of an extracted value.
type ValueKind string

const (
	KindAny    ValueKind = ""
	KindInt    ValueKind = "int"
	KindString ValueKind = "string"
	KindBool   ValueKind = "bool"
	KindObject ValueKind = "object"
	KindArray  ValueKind = "array"
)

// FieldSpec declares one value to extract from each element of the root node.
type FieldSpec struct {
	// Name under which the value is stored in the record.
	Name string `json:"name"`
	// Path relative to a root element. Empty means the element itself.
	// Nested values use dots, e.g. "nationality.name".
	// +optional
	Path string `json:"path,omitempty"`
	// List collects one value per element instead of a single scalar.
	// +optional
	List bool `json:"list,omitempty"`
	// OmitEmpty drops null and empty-string values.
	// +optional
	OmitEmpty bool `json:"omitEmpty,omitempty"`
	// Kind the value must have. Mismatching values are replaced by null.
	// +optional
	Kind ValueKind `json:"kind,omitempty"`
}

// ShapeSpec is the full extraction contract of one endpoint.
type ShapeSpec struct {
	// Root is the JSON path of the node that is classified as absent, single
	// object or array. Defaults to "data".
	// +optional
	Root string `json:"root,omitempty"`
	// Fields to extract.
	Fields []FieldSpec `json:"fields"`
}

// GetRoot returns the root path, falling back to DefaultRoot.
func (s ShapeSpec) GetRoot() string {
	if s.Root == "" {
		return DefaultRoot
	}
	return s.Root
}

// AuthenticationRef defines how requests authenticate against the HR system.
type AuthenticationRef struct {
	// Type of authentication. Supported: cookie, bearer, basic, apikey, oauth2.
	// Defaults to cookie.
	// +optional
	Type string `json:"type,omitempty"`
	// CookieName for cookie auth. Defaults to "orangehrm".
	// +optional
	CookieName string `json:"cookieName,omitempty"`
	// Header name for API key authentication. Defaults to "X-API-Key".
	// +optional
	APIKeyHeader string `json:"apikeyHeader,omitempty"`
	// TokenURL for OAuth2 client credentials.
	// +optional
	TokenURL string `json:"tokenUrl,omitempty"`
	// Scopes for OAuth2, space separated.
	// +optional
	Scopes string `json:"scopes,omitempty"`
}

// GetType returns the authentication type, defaulting to cookie.
func (a *AuthenticationRef) GetType() string {
	if a == nil || a.Type == "" {
		return "cookie"
	}
	return a.Type
}

// GetCookieName returns the session cookie name, defaulting to DefaultCookieName.
func (a *AuthenticationRef) GetCookieName() string {
	if a == nil || a.CookieName == "" {
		return DefaultCookieName
	}
	return a.CookieName
}

// RequestSpec describes an ad-hoc shaping call, e.g. loaded from a YAML file.
type RequestSpec struct {
	// HTTP method. Defaults to GET.
	// +optional
	Method string `json:"method,omitempty"`
	// Endpoint relative to the configured base URL.
	Endpoint string `json:"endpoint"`
	// Query parameters.
	// +optional
	Query map[string]string `json:"query,omitempty"`
	// Body template rendered before sending.
	// +optional
	Body string `json:"body,omitempty"`
	// Insecure skips TLS verification.
	// +optional
	Insecure bool `json:"insecure,omitempty"`
	// Shape of the expected answer.
	Shape ShapeSpec `json:"shape"`
}

// GetMethod returns the request method, defaulting to GET.
func (r *RequestSpec) GetMethod() string {
	if r.Method == "" {
		return "GET"
	}
	return r.Method
}
