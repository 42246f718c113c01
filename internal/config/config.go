// Package config loads the connection settings of the HR system under test.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magiconair/properties"
	"github.com/spf13/viper"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
)

// Keys of the properties file.
const (
	KeyBaseURL     = "base.url"
	KeyUsername    = "username"
	KeyPassword    = "password"
	KeyCookieName  = "cookie.name"
	KeyAuthType    = "auth.type"
	KeyTokenURL    = "oauth2.token.url"
	KeyScopes      = "oauth2.scopes"
	KeyHTTPTimeout = "http.timeout"
)

// EnvPrefix prefixes environment overrides: base.url -> HRM_BASE_URL.
const EnvPrefix = "HRM"

// PathEnv names the variable that overrides DefaultPath.
const PathEnv = "HRM_CONFIG"

// ErrReadConfig - error reading the properties file.
var ErrReadConfig = errors.New("reading config properties")

// ErrMissingBaseURL - the configuration does not name the system under test.
var ErrMissingBaseURL = errors.New("config has no " + KeyBaseURL)

// Config is read-only once loaded and safe to share.
type Config struct {
	v    *viper.Viper
	path string
}

// DefaultPath returns $HRM_CONFIG or src/main/resources/config.properties
// below the working directory.
func DefaultPath() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return filepath.Join(wd, "src", "main", "resources", "config.properties")
}

// Load reads the properties file at path (DefaultPath if empty). Environment
// variables take precedence over file values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}
	return build(p.Map(), path)
}

// FromValues builds a Config from in-memory values, with the same
// environment overrides and defaults as Load.
func FromValues(values map[string]string) (*Config, error) {
	return build(values, "")
}

func build(values map[string]string, path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyCookieName, v1alpha1.DefaultCookieName)
	v.SetDefault(KeyAuthType, "cookie")
	v.SetDefault(KeyHTTPTimeout, "0s")
	for key, value := range values {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	c := &Config{v: v, path: path}
	if c.BaseURL() == "" {
		return nil, ErrMissingBaseURL
	}
	return c, nil
}

// Path is the file the configuration came from, empty for FromValues.
func (c *Config) Path() string { return c.path }

// BaseURL without a trailing slash.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.v.GetString(KeyBaseURL), "/")
}

func (c *Config) Username() string { return c.v.GetString(KeyUsername) }

func (c *Config) Password() string { return c.v.GetString(KeyPassword) }

// HTTPTimeout is zero unless configured, meaning no timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return c.v.GetDuration(KeyHTTPTimeout)
}

// AuthenticationRef describes how requests authenticate.
func (c *Config) AuthenticationRef() *v1alpha1.AuthenticationRef {
	return &v1alpha1.AuthenticationRef{
		Type:       c.v.GetString(KeyAuthType),
		CookieName: c.v.GetString(KeyCookieName),
		TokenURL:   c.v.GetString(KeyTokenURL),
		Scopes:     c.v.GetString(KeyScopes),
	}
}

// Lookup returns a non-empty value for key.
func (c *Config) Lookup(key string) (string, bool) {
	value := c.v.GetString(key)
	return value, value != ""
}
