package util

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
)

// Keys looked up in the SecretSource per authentication type.
const (
	UsernameKey     = "username"
	PasswordKey     = "password"
	APITokenKey     = "api.token"
	APIKeyKey       = "api.key"
	ClientIDKey     = "oauth2.client.id"
	ClientSecretKey = "oauth2.client.secret"
)

// SecretSource provides credentials, typically the loaded configuration.
type SecretSource interface {
	Lookup(key string) (string, bool)
}

// ResolvedAuthConfig holds the resolved authentication configuration
type ResolvedAuthConfig struct {
	AuthType   string
	AuthConfig map[string]string
}

// AuthResolver turns an AuthenticationRef plus a per-call token into request credentials.
type AuthResolver struct {
	Source SecretSource
	Log    logr.Logger
}

// NewAuthResolver creates a new AuthResolver
func NewAuthResolver(source SecretSource, log logr.Logger) *AuthResolver {
	return &AuthResolver{
		Source: source,
		Log:    log,
	}
}

// ResolveAuthenticationConfig resolves credentials for one call. token is the
// value the caller holds for this call (the session cookie for cookie auth).
func (ar *AuthResolver) ResolveAuthenticationConfig(authRef *v1alpha1.AuthenticationRef, token string) (*ResolvedAuthConfig, error) {
	authType := authRef.GetType()
	log := ar.Log.WithValues("authType", authType)

	getValue := func(key string) string {
		if ar.Source == nil {
			return ""
		}
		value, _ := ar.Source.Lookup(key)
		return value
	}

	authConfig := &ResolvedAuthConfig{
		AuthType:   authType,
		AuthConfig: make(map[string]string),
	}

	switch authType {
	case "cookie":
		authConfig.AuthConfig["cookieName"] = authRef.GetCookieName()
		authConfig.AuthConfig["token"] = token

		if token == "" {
			log.Info("Warning: cookie auth configured but no session value given", "cookie", authRef.GetCookieName())
		}

	case "basic":
		username := getValue(UsernameKey)
		password := getValue(PasswordKey)
		authConfig.AuthConfig["username"] = username
		authConfig.AuthConfig["password"] = password

		if username == "" && password == "" {
			log.Info("Warning: Basic auth configured but no credentials found")
		}

	case "bearer":
		if token == "" {
			token = getValue(APITokenKey)
		}
		authConfig.AuthConfig["token"] = token

		if token == "" {
			log.Info("Warning: Bearer auth configured but no token found")
		}

	case "apikey":
		apiKey := token
		if apiKey == "" {
			apiKey = getValue(APIKeyKey)
		}
		header := ""
		if authRef != nil {
			header = authRef.APIKeyHeader
		}
		if header == "" {
			header = "X-API-Key"
		}
		authConfig.AuthConfig["apikey"] = apiKey
		authConfig.AuthConfig["header"] = header

		if apiKey == "" {
			log.Info("Warning: API key auth configured but no API key found")
		}

	case "oauth2":
		clientID := getValue(ClientIDKey)
		clientSecret := getValue(ClientSecretKey)
		authConfig.AuthConfig["clientId"] = clientID
		authConfig.AuthConfig["clientSecret"] = clientSecret
		authConfig.AuthConfig["tokenUrl"] = authRef.TokenURL
		authConfig.AuthConfig["scopes"] = authRef.Scopes

		if clientID == "" || clientSecret == "" || authRef.TokenURL == "" {
			return nil, fmt.Errorf("OAuth2 authentication requires %s and %s in config and tokenUrl", ClientIDKey, ClientSecretKey)
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAuth, authType)
	}

	log.V(1).Info("Successfully resolved authentication configuration")
	return authConfig, nil
}
