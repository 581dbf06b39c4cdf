package httpx

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive-api/internal/data"
	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/service"
)

// fakeAuth implements AuthServiceInterface with a static token table, so
// handler tests can exercise the guard and gate without minting real tokens.
type fakeAuth struct {
	signInFunc      func(ctx context.Context, input service.SignInInput) (*service.SignInResult, error)
	currentUserFunc func(ctx context.Context, authCtx domainauth.AuthContext) (*model.User, error)
	tokens          map[string]domainauth.AuthContext
}

func (f *fakeAuth) SignIn(ctx context.Context, input service.SignInInput) (*service.SignInResult, error) {
	if f.signInFunc != nil {
		return f.signInFunc(ctx, input)
	}
	return nil, domainauth.ErrInvalidCredential
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (domainauth.AuthContext, error) {
	if authCtx, ok := f.tokens[token]; ok {
		return authCtx, nil
	}
	return domainauth.AuthContext{}, domainauth.ErrUnauthenticated
}

func (f *fakeAuth) CurrentUser(ctx context.Context, authCtx domainauth.AuthContext) (*model.User, error) {
	if f.currentUserFunc != nil {
		return f.currentUserFunc(ctx, authCtx)
	}
	return nil, domainauth.ErrUnauthenticated
}

func (f *fakeAuth) Logout(context.Context, string) error { return nil }

// newTestRouter builds the full router over real services and repositories,
// with authentication backed by the fake token table.
func newTestRouter(db *sql.DB, auth AuthServiceInterface) http.Handler {
	return NewRouter(RouterServices{
		Auth: auth,
		Users: service.NewUserService(service.UserServiceOptions{
			Users:   data.NewUserRepo(db),
			History: data.NewLoginHistoryRepo(db),
		}),
		Labels: service.NewLabelService(service.LabelServiceOptions{
			Labels: data.NewLabelRepo(db),
		}),
		Projects: service.NewProjectService(service.ProjectServiceOptions{
			Projects: data.NewProjectRepo(db),
		}),
		Tasks: service.NewTaskService(service.TaskServiceOptions{
			Tasks:    data.NewTaskRepo(db),
			Projects: data.NewProjectRepo(db),
		}),
	})
}

var testUserSeq atomic.Int64

// seedUser inserts a user row and returns it together with a bearer token
// registered in the fake token table.
func seedUser(t *testing.T, db *sql.DB, auth *fakeAuth, role domainauth.Role) (*model.User, string) {
	t.Helper()
	repo := data.NewUserRepo(db)
	n := testUserSeq.Add(1)
	user, err := repo.Create(context.Background(), &model.CreateUserRequest{
		Email: fmt.Sprintf("handler.test.%d@example.com", n),
		Name:  "Handler Test",
	})
	require.NoError(t, err)
	if role != domainauth.RoleUser {
		user, err = repo.SetRole(context.Background(), user.ID, string(role))
		require.NoError(t, err)
	}

	token := fmt.Sprintf("test-token-%d", n)
	if auth.tokens == nil {
		auth.tokens = make(map[string]domainauth.AuthContext)
	}
	auth.tokens[token] = domainauth.AuthContext{UserID: user.ID, Role: user.Role, TokenID: token}
	return user, token
}

// doJSON performs a request against the router with an optional bearer token
// and JSON body.
func doJSON(router http.Handler, req jsonRequest) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			panic(err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(req.Method, req.Path, body)
	if req.Body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		r.Header.Set("Authorization", "Bearer "+req.Token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

type jsonRequest struct {
	Method string
	Path   string
	Token  string
	Body   any
}

// decodeBody unmarshals a recorded JSON response body.
func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
