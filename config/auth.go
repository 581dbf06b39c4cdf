package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth verifies Google ID tokens against the configured
	// OAuth client ID.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock accepts any non-empty credential as a fixed dev
	// identity (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// GoogleConfig contains Google Identity configuration.
type GoogleConfig struct {
	// ClientID is the OAuth client ID that incoming ID tokens must be
	// audienced to.
	ClientID string `env:"CLIENT_ID"`
}

// SessionConfig controls session token issuance.
type SessionConfig struct {
	// Secret signs session tokens. Required when auth is enabled;
	// there is no insecure default.
	Secret string `env:"SECRET"`

	// TTL is how long an issued session token stays valid.
	TTL time.Duration `env:"TTL" envDefault:"24h"`
}

// DevAuthConfig controls the mock verifier identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	Email   string `env:"EMAIL"   envDefault:"dev@example.com"`
	Name    string `env:"NAME"    envDefault:"Dev User"`
	Picture string `env:"PICTURE"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which identity verifier to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// Google configuration (used when Mode=oauth).
	Google GoogleConfig `envPrefix:"GOOGLE_"`

	// Session token configuration (used in every mode).
	Session SessionConfig `envPrefix:"SESSION_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	a.Session.Secret = strings.TrimSpace(a.Session.Secret)
	if a.Session.TTL <= 0 {
		a.Session.TTL = 24 * time.Hour
	}
}
