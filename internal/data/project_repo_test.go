package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/testutil"
)

func createTestProject(t *testing.T, db *sql.DB, ownerID, name string) *model.Project {
	t.Helper()
	pr := NewProjectRepo(db)
	p, err := pr.Create(context.Background(), ownerID,
		testutil.NewProjectRequest().WithName(name).Build())
	require.NoError(t, err)
	return p
}

func TestProjectRepo_Create_Get_List_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProjectRepo(db)
		owner := createTestUser(t, db, uniqueEmail("owner"))

		p, err := repo.Create(ctx, owner.ID, testutil.NewProjectRequest().
			WithName("Website Redesign").
			WithDescription("q3 work").
			Build())
		require.NoError(t, err)
		require.NotEmpty(t, p.ID)
		assert.Equal(t, owner.ID, p.OwnerID)
		assert.Equal(t, "Website Redesign", p.Name)

		got, err := repo.GetByID(ctx, owner.ID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Name, got.Name)

		projects, err := repo.List(ctx, owner.ID, model.ProjectsListOptions{})
		require.NoError(t, err)
		require.Len(t, projects, 1)

		// name filter
		filtered, err := repo.List(ctx, owner.ID, model.ProjectsListOptions{
			Q: testutil.StringPtr("redesign"),
		})
		require.NoError(t, err)
		assert.Len(t, filtered, 1)

		none, err := repo.List(ctx, owner.ID, model.ProjectsListOptions{
			Q: testutil.StringPtr("nomatch"),
		})
		require.NoError(t, err)
		assert.Empty(t, none)

		updated, err := repo.Update(ctx, owner.ID, p.ID, model.UpdateProjectRequest{
			Name: testutil.StringPtr("Website Rebuild"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Website Rebuild", updated.Name)
		assert.Equal(t, "q3 work", updated.Description)

		ok, err := repo.Delete(ctx, owner.ID, p.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = repo.GetByID(ctx, owner.ID, p.ID)
		require.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestProjectRepo_OwnerScoping(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProjectRepo(db)
		alice := createTestUser(t, db, uniqueEmail("alice"))
		bob := createTestUser(t, db, uniqueEmail("bob"))

		p := createTestProject(t, db, alice.ID, "Alice Project")

		// Another user's project behaves as not found everywhere.
		_, err := repo.GetByID(ctx, bob.ID, p.ID)
		require.ErrorIs(t, err, ErrProjectNotFound)

		_, err = repo.Update(ctx, bob.ID, p.ID, model.UpdateProjectRequest{
			Name: testutil.StringPtr("hijacked"),
		})
		require.ErrorIs(t, err, ErrProjectNotFound)

		ok, err := repo.Delete(ctx, bob.ID, p.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		projects, err := repo.List(ctx, bob.ID, model.ProjectsListOptions{})
		require.NoError(t, err)
		assert.Empty(t, projects)

		// Owner still sees it untouched.
		got, err := repo.GetByID(ctx, alice.ID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice Project", got.Name)
	})
}
