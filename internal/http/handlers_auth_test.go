package httpx

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive-api/internal/data"
	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	mocks "github.com/taskhive/taskhive-api/internal/mocks/auth"
	"github.com/taskhive/taskhive-api/internal/service"
	"github.com/taskhive/taskhive-api/internal/testutil"
)

var authTestSeq atomic.Int64

// newAuthTestStack builds a router whose auth surface runs the real auth
// service over DB-backed repositories, with a mock credential verifier.
func newAuthTestStack(db *sql.DB) (http.Handler, *mocks.MockIdentityVerifier) {
	verifier := mocks.NewMockIdentityVerifier()
	verifier.DefaultIdentity = domainauth.Identity{
		Email: fmt.Sprintf("auth.test.%d@example.com", authTestSeq.Add(1)),
		Name:  "Auth Test",
	}

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Verifier: verifier,
		Tokens:   mocks.NewStaticTokenCodec(),
		Repos: service.AuthRepos{
			Users:   data.NewUserRepo(db),
			History: data.NewLoginHistoryRepo(db),
		},
		Denylist: mocks.NewMemoryTokenDenylist(),
	})
	return newTestRouter(db, authSvc), verifier
}

func TestAuthHandlers_GoogleSignIn_CreatesAccount(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		router, verifier := newAuthTestStack(db)

		w := doJSON(router, jsonRequest{
			Method: http.MethodPost,
			Path:   "/auth/google",
			Body:   map[string]string{"credential": "valid-google-credential"},
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decodeBody[map[string]any](t, w)
		assert.NotEmpty(t, resp["token"])
		user, ok := resp["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, verifier.DefaultIdentity.Email, user["email"])
		assert.Equal(t, "user", user["role"])
		assert.Equal(t, true, user["is_active"])
	})
}

func TestAuthHandlers_GoogleSignIn_ReusesAccount(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		router, _ := newAuthTestStack(db)

		first := doJSON(router, jsonRequest{
			Method: http.MethodPost,
			Path:   "/auth/google",
			Body:   map[string]string{"credential": "valid-google-credential"},
		})
		require.Equal(t, http.StatusOK, first.Code)
		second := doJSON(router, jsonRequest{
			Method: http.MethodPost,
			Path:   "/auth/google",
			Body:   map[string]string{"credential": "valid-google-credential"},
		})
		require.Equal(t, http.StatusOK, second.Code)

		firstUser := decodeBody[map[string]any](t, first)["user"].(map[string]any)
		secondUser := decodeBody[map[string]any](t, second)["user"].(map[string]any)
		assert.Equal(t, firstUser["id"], secondUser["id"])
	})
}

func TestAuthHandlers_GoogleSignIn_InvalidCredential(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		router, verifier := newAuthTestStack(db)
		verifier.VerifyFunc = func(context.Context, string) (domainauth.Identity, error) {
			return domainauth.Identity{}, domainauth.ErrInvalidCredential
		}

		w := doJSON(router, jsonRequest{
			Method: http.MethodPost,
			Path:   "/auth/google",
			Body:   map[string]string{"credential": "forged"},
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_credential")
	})
}

func TestAuthHandlers_GoogleSignIn_MissingCredential(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		router, _ := newAuthTestStack(db)

		w := doJSON(router, jsonRequest{
			Method: http.MethodPost,
			Path:   "/auth/google",
			Body:   map[string]string{"credential": ""},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing_credential")
	})
}

func TestAuthHandlers_GoogleSignIn_DisabledAccount(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		router, verifier := newAuthTestStack(db)

		// First sign-in creates the account; then an admin disables it.
		first := doJSON(router, jsonRequest{
			Method: http.MethodPost,
			Path:   "/auth/google",
			Body:   map[string]string{"credential": "valid-google-credential"},
		})
		require.Equal(t, http.StatusOK, first.Code)

		repo := data.NewUserRepo(db)
		user, err := repo.GetByEmail(context.Background(), verifier.DefaultIdentity.Email)
		require.NoError(t, err)
		_, err = repo.SetActive(context.Background(), user.ID, false)
		require.NoError(t, err)

		w := doJSON(router, jsonRequest{
			Method: http.MethodPost,
			Path:   "/auth/google",
			Body:   map[string]string{"credential": "valid-google-credential"},
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "account_disabled")

		// The refused attempt must not leave a history entry.
		count, err := data.NewLoginHistoryRepo(db).CountByUser(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestAuthHandlers_Me(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		router, _ := newAuthTestStack(db)

		signIn := doJSON(router, jsonRequest{
			Method: http.MethodPost,
			Path:   "/auth/google",
			Body:   map[string]string{"credential": "valid-google-credential"},
		})
		require.Equal(t, http.StatusOK, signIn.Code)
		token := decodeBody[map[string]any](t, signIn)["token"].(string)

		w := doJSON(router, jsonRequest{Method: http.MethodGet, Path: "/auth/me", Token: token})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		user := decodeBody[map[string]any](t, w)["user"].(map[string]any)
		assert.NotEmpty(t, user["id"])
		assert.Equal(t, "user", user["role"])
	})
}

func TestAuthHandlers_Me_NoToken(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		router, _ := newAuthTestStack(db)

		w := doJSON(router, jsonRequest{Method: http.MethodGet, Path: "/auth/me"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandlers_Logout_RevokesToken(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		router, _ := newAuthTestStack(db)

		signIn := doJSON(router, jsonRequest{
			Method: http.MethodPost,
			Path:   "/auth/google",
			Body:   map[string]string{"credential": "valid-google-credential"},
		})
		require.Equal(t, http.StatusOK, signIn.Code)
		token := decodeBody[map[string]any](t, signIn)["token"].(string)

		logout := doJSON(router, jsonRequest{Method: http.MethodPost, Path: "/auth/logout", Token: token})
		assert.Equal(t, http.StatusOK, logout.Code)

		// With the denylist configured, the revoked token no longer passes
		// the guard.
		me := doJSON(router, jsonRequest{Method: http.MethodGet, Path: "/auth/me", Token: token})
		assert.Equal(t, http.StatusUnauthorized, me.Code)
	})
}

func TestAuthHandlers_Logout_WithoutToken(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		router, _ := newAuthTestStack(db)

		w := doJSON(router, jsonRequest{Method: http.MethodPost, Path: "/auth/logout"})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthHandlers_SignIn_RecordsLoginHistory(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		router, verifier := newAuthTestStack(db)

		for range 3 {
			w := doJSON(router, jsonRequest{
				Method: http.MethodPost,
				Path:   "/auth/google",
				Body:   map[string]string{"credential": "valid-google-credential"},
			})
			require.Equal(t, http.StatusOK, w.Code)
		}

		user, err := data.NewUserRepo(db).GetByEmail(context.Background(), verifier.DefaultIdentity.Email)
		require.NoError(t, err)
		count, err := data.NewLoginHistoryRepo(db).CountByUser(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
