// Package googleid verifies Google-issued ID tokens posted by the sign-in
// widget. Verification uses Google's OIDC discovery document and JWKS, so
// signing-key rotation is handled by the underlying go-oidc verifier.
package googleid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"golang.org/x/oauth2"
)

// GoogleIssuer is the issuer URL carried by Google ID tokens.
const GoogleIssuer = "https://accounts.google.com"

// Verifier validates Google ID tokens against the configured OAuth client ID.
type Verifier struct {
	verifier *gooidc.IDTokenVerifier
}

// Config holds configuration for the Google ID-token verifier.
type Config struct {
	// ClientID is the OAuth client the token must be audienced to.
	ClientID string

	// IssuerURL overrides the Google issuer, for tests against a local
	// OIDC server. Defaults to GoogleIssuer.
	IssuerURL string

	// HTTPClient is used for discovery and JWKS fetches. Optional.
	HTTPClient *http.Client
}

// NewVerifier performs OIDC discovery against the issuer and returns a
// ready verifier. Discovery is a single startup-time fetch.
func NewVerifier(ctx context.Context, cfg Config) (*Verifier, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}

	issuer := cfg.IssuerURL
	if issuer == "" {
		issuer = GoogleIssuer
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

	provider, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}

	return &Verifier{
		verifier: provider.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

// idTokenClaims is the subset of Google ID-token claims the application uses.
type idTokenClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Verify validates signature, audience, and expiry, then extracts the
// identity claim. Every failure mode collapses into ErrInvalidCredential so
// callers cannot distinguish forged from expired credentials.
func (v *Verifier) Verify(ctx context.Context, rawCredential string) (domainauth.Identity, error) {
	if rawCredential == "" {
		return domainauth.Identity{}, fmt.Errorf("%w: empty credential", domainauth.ErrInvalidCredential)
	}

	idToken, err := v.verifier.Verify(ctx, rawCredential)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("%w: %w", domainauth.ErrInvalidCredential, err)
	}

	var claims idTokenClaims
	if claimsErr := idToken.Claims(&claims); claimsErr != nil {
		return domainauth.Identity{}, fmt.Errorf("%w: parse claims: %w", domainauth.ErrInvalidCredential, claimsErr)
	}

	if claims.Email == "" || !claims.EmailVerified {
		return domainauth.Identity{}, fmt.Errorf("%w: unverified email", domainauth.ErrInvalidCredential)
	}

	name := claims.Name
	if name == "" {
		name = claims.Email
	}

	return domainauth.Identity{
		Email:   claims.Email,
		Name:    name,
		Picture: claims.Picture,
	}, nil
}
