package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive-api/internal/core"
	"github.com/taskhive/taskhive-api/internal/data"
	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	mocks "github.com/taskhive/taskhive-api/internal/mocks/auth"
	"github.com/taskhive/taskhive-api/internal/ports"
)

func activeTestUser() *model.User {
	return &model.User{
		ID:       "user-123",
		Email:    "mock.user@example.com",
		Name:     "Mock User",
		Role:     domainauth.RoleUser,
		IsActive: true,
	}
}

// userRepoFor returns a stub whose GetByEmail resolves the given user.
func userRepoFor(user *model.User) *stubUserRepo {
	return &stubUserRepo{
		getByEmailFunc: func(_ context.Context, email string) (*model.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, data.ErrUserNotFound
		},
		getByIDFunc: func(_ context.Context, id string) (*model.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, data.ErrUserNotFound
		},
	}
}

func newTestAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Verifier == nil {
		opts.Verifier = mocks.NewMockIdentityVerifier()
	}
	if opts.Tokens == nil {
		opts.Tokens = mocks.NewStaticTokenCodec()
	}
	if opts.Repos.Users == nil {
		opts.Repos.Users = userRepoFor(activeTestUser())
	}
	if opts.Repos.History == nil {
		opts.Repos.History = &stubHistoryRepo{}
	}
	return NewAuthService(opts)
}

func TestNewAuthService(t *testing.T) {
	service := newTestAuthService(AuthServiceOptions{})
	assert.NotNil(t, service)
}

func TestNewAuthService_PanicsOnMissingDeps(t *testing.T) {
	assert.Panics(t, func() {
		NewAuthService(AuthServiceOptions{
			Tokens: mocks.NewStaticTokenCodec(),
			Repos:  AuthRepos{Users: &stubUserRepo{}, History: &stubHistoryRepo{}},
		})
	})
	assert.Panics(t, func() {
		NewAuthService(AuthServiceOptions{
			Verifier: mocks.NewMockIdentityVerifier(),
			Repos:    AuthRepos{Users: &stubUserRepo{}, History: &stubHistoryRepo{}},
		})
	})
	assert.Panics(t, func() {
		NewAuthService(AuthServiceOptions{
			Verifier: mocks.NewMockIdentityVerifier(),
			Tokens:   mocks.NewStaticTokenCodec(),
		})
	})
}

func TestAuthService_SignIn_Success(t *testing.T) {
	user := activeTestUser()
	service := newTestAuthService(AuthServiceOptions{
		Repos: AuthRepos{Users: userRepoFor(user), History: &stubHistoryRepo{}},
	})

	result, err := service.SignIn(context.Background(), SignInInput{Credential: "google-credential"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestAuthService_SignIn_EmptyCredential(t *testing.T) {
	service := newTestAuthService(AuthServiceOptions{})

	result, err := service.SignIn(context.Background(), SignInInput{Credential: ""})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainauth.ErrInvalidCredential)
}

func TestAuthService_SignIn_InvalidCredential(t *testing.T) {
	verifier := mocks.NewMockIdentityVerifier()
	verifier.VerifyFunc = func(_ context.Context, _ string) (domainauth.Identity, error) {
		return domainauth.Identity{}, domainauth.ErrInvalidCredential
	}
	appended := false
	service := newTestAuthService(AuthServiceOptions{
		Verifier: verifier,
		Repos: AuthRepos{
			Users: userRepoFor(activeTestUser()),
			History: &stubHistoryRepo{
				appendFunc: func(_ context.Context, params core.AppendLoginParams) (*model.LoginHistoryEntry, error) {
					appended = true
					return &model.LoginHistoryEntry{UserID: params.UserID}, nil
				},
			},
		},
	})

	result, err := service.SignIn(context.Background(), SignInInput{Credential: "forged"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainauth.ErrInvalidCredential)
	assert.False(t, appended)
}

func TestAuthService_SignIn_CreatesAccountOnFirstSignIn(t *testing.T) {
	var created *model.CreateUserRequest
	users := &stubUserRepo{
		getByEmailFunc: func(_ context.Context, _ string) (*model.User, error) {
			return nil, data.ErrUserNotFound
		},
		createFunc: func(_ context.Context, req *model.CreateUserRequest) (*model.User, error) {
			created = req
			return &model.User{
				ID:       "user-new",
				Email:    req.Email,
				Name:     req.Name,
				Picture:  req.Picture,
				Role:     domainauth.RoleUser,
				IsActive: true,
			}, nil
		},
	}
	service := newTestAuthService(AuthServiceOptions{
		Repos: AuthRepos{Users: users, History: &stubHistoryRepo{}},
	})

	result, err := service.SignIn(context.Background(), SignInInput{Credential: "google-credential"})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "mock.user@example.com", created.Email)
	assert.Equal(t, "Mock User", created.Name)
	require.NotNil(t, created.Picture)
	assert.Equal(t, "https://example.com/mock.png", *created.Picture)
	assert.Equal(t, "user-new", result.User.ID)
	assert.Equal(t, domainauth.RoleUser, result.User.Role)
}

func TestAuthService_SignIn_LostCreateRace(t *testing.T) {
	winner := activeTestUser()
	calls := 0
	users := &stubUserRepo{
		getByEmailFunc: func(_ context.Context, _ string) (*model.User, error) {
			calls++
			if calls == 1 {
				// First read misses; a concurrent sign-in inserts the row.
				return nil, data.ErrUserNotFound
			}
			return winner, nil
		},
		createFunc: func(_ context.Context, _ *model.CreateUserRequest) (*model.User, error) {
			return nil, data.ErrEmailExists
		},
	}
	service := newTestAuthService(AuthServiceOptions{
		Repos: AuthRepos{Users: users, History: &stubHistoryRepo{}},
	})

	result, err := service.SignIn(context.Background(), SignInInput{Credential: "google-credential"})

	require.NoError(t, err)
	assert.Equal(t, winner.ID, result.User.ID)
	assert.Equal(t, 2, calls)
}

func TestAuthService_SignIn_DisabledAccount(t *testing.T) {
	disabled := activeTestUser()
	disabled.IsActive = false
	appended := false
	service := newTestAuthService(AuthServiceOptions{
		Repos: AuthRepos{
			Users: userRepoFor(disabled),
			History: &stubHistoryRepo{
				appendFunc: func(_ context.Context, params core.AppendLoginParams) (*model.LoginHistoryEntry, error) {
					appended = true
					return &model.LoginHistoryEntry{UserID: params.UserID}, nil
				},
			},
		},
	})

	result, err := service.SignIn(context.Background(), SignInInput{Credential: "google-credential"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainauth.ErrAccountDisabled)
	assert.False(t, appended, "disabled account must not produce a history entry")
}

func TestAuthService_SignIn_RecordsClientMetadata(t *testing.T) {
	var got core.AppendLoginParams
	service := newTestAuthService(AuthServiceOptions{
		Repos: AuthRepos{
			Users: userRepoFor(activeTestUser()),
			History: &stubHistoryRepo{
				appendFunc: func(_ context.Context, params core.AppendLoginParams) (*model.LoginHistoryEntry, error) {
					got = params
					return &model.LoginHistoryEntry{UserID: params.UserID}, nil
				},
			},
		},
	})

	_, err := service.SignIn(context.Background(), SignInInput{
		Credential: "google-credential",
		IPAddress:  "203.0.113.9",
		UserAgent:  "curl/8.0",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-123", got.UserID)
	assert.Equal(t, "203.0.113.9", got.IPAddress)
	assert.Equal(t, "curl/8.0", got.UserAgent)
}

func TestAuthService_SignIn_HistoryError(t *testing.T) {
	service := newTestAuthService(AuthServiceOptions{
		Repos: AuthRepos{
			Users: userRepoFor(activeTestUser()),
			History: &stubHistoryRepo{
				appendFunc: func(_ context.Context, _ core.AppendLoginParams) (*model.LoginHistoryEntry, error) {
					return nil, errors.New("insert failed")
				},
			},
		},
	})

	result, err := service.SignIn(context.Background(), SignInInput{Credential: "google-credential"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "record sign-in")
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	codec := mocks.NewStaticTokenCodec()
	service := newTestAuthService(AuthServiceOptions{Tokens: codec})

	token, _, err := codec.Issue(ports.TokenClaims{UserID: "user-123", Role: domainauth.RoleAdmin})
	require.NoError(t, err)

	authCtx, err := service.Authenticate(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "user-123", authCtx.UserID)
	assert.Equal(t, domainauth.RoleAdmin, authCtx.Role)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	service := newTestAuthService(AuthServiceOptions{})

	_, err := service.Authenticate(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, domainauth.ErrUnauthenticated)
}

func TestAuthService_Authenticate_RevokedToken(t *testing.T) {
	codec := mocks.NewStaticTokenCodec()
	denylist := mocks.NewMemoryTokenDenylist()
	service := newTestAuthService(AuthServiceOptions{Tokens: codec, Denylist: denylist})

	token, tokenID, err := codec.Issue(ports.TokenClaims{UserID: "user-123", Role: domainauth.RoleUser})
	require.NoError(t, err)
	require.NoError(t, denylist.Revoke(context.Background(), tokenID, time.Now().Add(time.Hour)))

	_, err = service.Authenticate(context.Background(), token)

	assert.ErrorIs(t, err, domainauth.ErrUnauthenticated)
}

func TestAuthService_Authenticate_DenylistErrorFailsClosed(t *testing.T) {
	codec := mocks.NewStaticTokenCodec()
	denylist := mocks.NewMemoryTokenDenylist()
	denylist.Err = errors.New("redis down")
	service := newTestAuthService(AuthServiceOptions{Tokens: codec, Denylist: denylist})

	token, _, err := codec.Issue(ports.TokenClaims{UserID: "user-123", Role: domainauth.RoleUser})
	require.NoError(t, err)

	_, err = service.Authenticate(context.Background(), token)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainauth.ErrUnauthenticated)
	assert.Contains(t, err.Error(), "redis down")
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	user := activeTestUser()
	service := newTestAuthService(AuthServiceOptions{
		Repos: AuthRepos{Users: userRepoFor(user), History: &stubHistoryRepo{}},
	})

	got, err := service.CurrentUser(context.Background(), domainauth.AuthContext{UserID: user.ID})

	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
}

func TestAuthService_CurrentUser_UnknownUser(t *testing.T) {
	service := newTestAuthService(AuthServiceOptions{})

	_, err := service.CurrentUser(context.Background(), domainauth.AuthContext{UserID: "ghost"})

	assert.ErrorIs(t, err, domainauth.ErrUnauthenticated)
}

func TestAuthService_Logout_WithoutDenylist(t *testing.T) {
	service := newTestAuthService(AuthServiceOptions{})

	assert.NoError(t, service.Logout(context.Background(), "any-token"))
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	codec := mocks.NewStaticTokenCodec()
	denylist := mocks.NewMemoryTokenDenylist()
	service := newTestAuthService(AuthServiceOptions{Tokens: codec, Denylist: denylist})

	token, tokenID, err := codec.Issue(ports.TokenClaims{UserID: "user-123", Role: domainauth.RoleUser})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), token))

	revoked, err := denylist.IsRevoked(context.Background(), tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = service.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, domainauth.ErrUnauthenticated)
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	denylist := mocks.NewMemoryTokenDenylist()
	service := newTestAuthService(AuthServiceOptions{Denylist: denylist})

	assert.NoError(t, service.Logout(context.Background(), "never-issued"))
}

func TestAuthService_Logout_RevokeError(t *testing.T) {
	codec := mocks.NewStaticTokenCodec()
	denylist := mocks.NewMemoryTokenDenylist()
	service := newTestAuthService(AuthServiceOptions{Tokens: codec, Denylist: denylist})

	token, _, err := codec.Issue(ports.TokenClaims{UserID: "user-123", Role: domainauth.RoleUser})
	require.NoError(t, err)
	denylist.Err = errors.New("redis down")

	err = service.Logout(context.Background(), token)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoke token")
}
