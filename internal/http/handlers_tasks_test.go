package httpx

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/testutil"
)

func createTaskVia(t *testing.T, router http.Handler, token, projectID, title string) model.Task {
	t.Helper()
	w := doJSON(router, jsonRequest{
		Method: http.MethodPost,
		Path:   "/projects/" + projectID + "/tasks",
		Token:  token,
		Body:   model.CreateTaskRequest{Title: title},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[model.Task](t, w)
}

func TestTaskHandlers_CreateAndList(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		auth := &fakeAuth{}
		router := newTestRouter(db, auth)
		_, token := seedUser(t, db, auth, domainauth.RoleUser)
		project := createProjectVia(t, router, token, "Board")

		first := createTaskVia(t, router, token, project.ID, "First task")
		second := createTaskVia(t, router, token, project.ID, "Second task")

		assert.Equal(t, model.TaskColumnTodo, first.Column)
		assert.Equal(t, 0, first.Position)
		assert.Equal(t, 1, second.Position)

		list := doJSON(router, jsonRequest{
			Method: http.MethodGet,
			Path:   "/projects/" + project.ID + "/tasks",
			Token:  token,
		})
		require.Equal(t, http.StatusOK, list.Code)
		resp := decodeBody[map[string][]model.Task](t, list)
		require.Len(t, resp["tasks"], 2)
		assert.Equal(t, first.ID, resp["tasks"][0].ID)
	})
}

func TestTaskHandlers_UpdateAndMove(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		auth := &fakeAuth{}
		router := newTestRouter(db, auth)
		_, token := seedUser(t, db, auth, domainauth.RoleUser)
		project := createProjectVia(t, router, token, "Board")
		task := createTaskVia(t, router, token, project.ID, "Movable")

		title := "Renamed task"
		update := doJSON(router, jsonRequest{
			Method: http.MethodPut,
			Path:   "/tasks/" + task.ID,
			Token:  token,
			Body:   model.UpdateTaskRequest{Title: &title},
		})
		require.Equal(t, http.StatusOK, update.Code, update.Body.String())
		assert.Equal(t, title, decodeBody[model.Task](t, update).Title)

		move := doJSON(router, jsonRequest{
			Method: http.MethodPut,
			Path:   "/tasks/" + task.ID + "/move",
			Token:  token,
			Body:   model.MoveTaskRequest{Column: model.TaskColumnDoing, Position: 0},
		})
		require.Equal(t, http.StatusOK, move.Code, move.Body.String())
		moved := decodeBody[model.Task](t, move)
		assert.Equal(t, model.TaskColumnDoing, moved.Column)
		assert.Equal(t, 0, moved.Position)
	})
}

func TestTaskHandlers_Move_InvalidColumn(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		auth := &fakeAuth{}
		router := newTestRouter(db, auth)
		_, token := seedUser(t, db, auth, domainauth.RoleUser)
		project := createProjectVia(t, router, token, "Board")
		task := createTaskVia(t, router, token, project.ID, "Stuck")

		w := doJSON(router, jsonRequest{
			Method: http.MethodPut,
			Path:   "/tasks/" + task.ID + "/move",
			Token:  token,
			Body:   map[string]any{"column": "archived", "position": 0},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaskHandlers_OwnerScoping(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		auth := &fakeAuth{}
		router := newTestRouter(db, auth)
		_, aliceToken := seedUser(t, db, auth, domainauth.RoleUser)
		_, bobToken := seedUser(t, db, auth, domainauth.RoleUser)
		project := createProjectVia(t, router, aliceToken, "Alice Board")
		task := createTaskVia(t, router, aliceToken, project.ID, "Private task")

		// Bob cannot create in, list, or touch Alice's project and tasks.
		create := doJSON(router, jsonRequest{
			Method: http.MethodPost,
			Path:   "/projects/" + project.ID + "/tasks",
			Token:  bobToken,
			Body:   model.CreateTaskRequest{Title: "Intruder"},
		})
		assert.Equal(t, http.StatusNotFound, create.Code)

		list := doJSON(router, jsonRequest{
			Method: http.MethodGet,
			Path:   "/projects/" + project.ID + "/tasks",
			Token:  bobToken,
		})
		assert.Equal(t, http.StatusNotFound, list.Code)

		get := doJSON(router, jsonRequest{Method: http.MethodGet, Path: "/tasks/" + task.ID, Token: bobToken})
		assert.Equal(t, http.StatusNotFound, get.Code)

		del := doJSON(router, jsonRequest{Method: http.MethodDelete, Path: "/tasks/" + task.ID, Token: bobToken})
		assert.Equal(t, http.StatusNotFound, del.Code)
	})
}

func TestTaskHandlers_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithAutoDB(t, func(db *sql.DB) {
		auth := &fakeAuth{}
		router := newTestRouter(db, auth)
		_, token := seedUser(t, db, auth, domainauth.RoleUser)
		project := createProjectVia(t, router, token, "Board")
		task := createTaskVia(t, router, token, project.ID, "Disposable")

		del := doJSON(router, jsonRequest{Method: http.MethodDelete, Path: "/tasks/" + task.ID, Token: token})
		assert.Equal(t, http.StatusNoContent, del.Code)

		gone := doJSON(router, jsonRequest{Method: http.MethodGet, Path: "/tasks/" + task.ID, Token: token})
		assert.Equal(t, http.StatusNotFound, gone.Code)
	})
}
