package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskhive/taskhive-api/internal/core"
	"github.com/taskhive/taskhive-api/internal/data"
	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/ports"
)

// AuthRepos groups the repositories AuthService writes during sign-in.
type AuthRepos struct {
	Users   core.UserRepository
	History core.LoginHistoryRepository
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Verifier ports.IdentityVerifier
	Tokens   ports.TokenCodec
	Repos    AuthRepos
	// Denylist is optional. When nil, logout is client-local and issued
	// tokens stay valid until expiry.
	Denylist ports.TokenDenylist
}

// AuthService orchestrates sign-in: credential verification, account
// upsert, history recording, and session token issuance.
type AuthService struct {
	verifier ports.IdentityVerifier
	tokens   ports.TokenCodec
	users    core.UserRepository
	history  core.LoginHistoryRepository
	denylist ports.TokenDenylist
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Verifier == nil {
		panic("auth service requires an identity verifier")
	}
	if opts.Tokens == nil {
		panic("auth service requires a token codec")
	}
	if opts.Repos.Users == nil || opts.Repos.History == nil {
		panic("auth service requires user and history repositories")
	}
	return &AuthService{
		verifier: opts.Verifier,
		tokens:   opts.Tokens,
		users:    opts.Repos.Users,
		history:  opts.Repos.History,
		denylist: opts.Denylist,
	}
}

// SignInInput groups parameters for a sign-in attempt.
type SignInInput struct {
	Credential string
	IPAddress  string
	UserAgent  string
}

// SignInResult contains the issued session token and the account it belongs to.
type SignInResult struct {
	Token string
	User  *model.User
}

// SignIn verifies a third-party credential, finds or creates the local
// account keyed by email, records the sign-in, and mints a session token.
// A disabled account fails with domainauth.ErrAccountDisabled before any
// history is written.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	if input.Credential == "" {
		return nil, domainauth.ErrInvalidCredential
	}

	identity, err := s.verifier.Verify(ctx, input.Credential)
	if err != nil {
		return nil, err
	}

	user, err := s.findOrCreateUser(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("resolve account: %w", err)
	}

	if !user.IsActive {
		return nil, domainauth.ErrAccountDisabled
	}

	if _, histErr := s.history.Append(ctx, core.AppendLoginParams{
		UserID:    user.ID,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	}); histErr != nil {
		return nil, fmt.Errorf("record sign-in: %w", histErr)
	}

	token, _, err := s.tokens.Issue(ports.TokenClaims{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &SignInResult{Token: token, User: user}, nil
}

// Authenticate validates a session token and returns the resolved auth
// context. Validity is signature and expiry; when a denylist is configured,
// revoked token IDs are also rejected. Every failure maps to
// domainauth.ErrUnauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domainauth.AuthContext, error) {
	authCtx, err := s.tokens.Decode(token)
	if err != nil {
		return domainauth.AuthContext{}, err
	}

	if s.denylist != nil {
		revoked, dlErr := s.denylist.IsRevoked(ctx, authCtx.TokenID)
		if dlErr != nil {
			// Fail closed: an unreachable denylist must not let a
			// possibly revoked token through.
			return domainauth.AuthContext{}, fmt.Errorf("%w: denylist check: %w",
				domainauth.ErrUnauthenticated, dlErr)
		}
		if revoked {
			return domainauth.AuthContext{}, domainauth.ErrUnauthenticated
		}
	}

	return authCtx, nil
}

// CurrentUser loads the account behind an auth context.
func (s *AuthService) CurrentUser(ctx context.Context, authCtx domainauth.AuthContext) (*model.User, error) {
	user, err := s.users.GetByID(ctx, authCtx.UserID)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, domainauth.ErrUnauthenticated
		}
		return nil, fmt.Errorf("load current user: %w", err)
	}
	return user, nil
}

// Logout revokes the presented token until its natural expiry. Without a
// denylist it is a no-op: discarding the token client-side is the logout.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.denylist == nil {
		return nil
	}

	authCtx, err := s.tokens.Decode(token)
	if err != nil {
		// An invalid token has nothing to revoke.
		return nil
	}
	if revokeErr := s.denylist.Revoke(ctx, authCtx.TokenID, authCtx.ExpiresAt); revokeErr != nil {
		return fmt.Errorf("revoke token: %w", revokeErr)
	}
	return nil
}

// findOrCreateUser resolves the account for a verified identity. Creation
// races on the unique email index: the loser of a concurrent first sign-in
// re-reads the winner's row.
func (s *AuthService) findOrCreateUser(ctx context.Context, identity domainauth.Identity) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, identity.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, data.ErrUserNotFound) {
		return nil, err
	}

	req := &model.CreateUserRequest{
		Email: identity.Email,
		Name:  identity.Name,
	}
	if identity.Picture != "" {
		req.Picture = &identity.Picture
	}

	user, err = s.users.Create(ctx, req)
	if err == nil {
		slog.InfoContext(ctx, "created account on first sign-in", "user_id", user.ID)
		return user, nil
	}
	if errors.Is(err, data.ErrEmailExists) {
		// Lost the race with a concurrent first sign-in.
		return s.users.GetByEmail(ctx, identity.Email)
	}
	return nil, err
}
