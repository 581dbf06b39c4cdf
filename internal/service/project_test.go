package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive-api/internal/domain/model"
)

func TestNewProjectService_PanicsOnMissingDeps(t *testing.T) {
	assert.Panics(t, func() {
		NewProjectService(ProjectServiceOptions{})
	})
}

func TestProjectService_Create(t *testing.T) {
	service := NewProjectService(ProjectServiceOptions{Projects: &stubProjectRepo{}})

	project, err := service.Create(context.Background(), "alice", &model.CreateProjectRequest{
		Name: "Website Redesign",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", project.OwnerID)
	assert.Equal(t, "Website Redesign", project.Name)
}

func TestProjectService_List_AppliesDefaults(t *testing.T) {
	var gotOpts model.ProjectsListOptions
	projects := &stubProjectRepo{
		listFunc: func(_ context.Context, _ string, opts model.ProjectsListOptions) ([]*model.Project, error) {
			gotOpts = opts
			return nil, nil
		},
	}
	service := NewProjectService(ProjectServiceOptions{Projects: projects})

	_, err := service.List(context.Background(), "alice", model.ProjectsListOptions{Offset: -5})

	require.NoError(t, err)
	assert.Equal(t, 50, gotOpts.Limit)
	assert.Equal(t, 0, gotOpts.Offset)
}

func TestProjectService_List_PassesFilter(t *testing.T) {
	var gotOwner string
	var gotOpts model.ProjectsListOptions
	projects := &stubProjectRepo{
		listFunc: func(_ context.Context, ownerID string, opts model.ProjectsListOptions) ([]*model.Project, error) {
			gotOwner, gotOpts = ownerID, opts
			return []*model.Project{{ID: "proj-1", OwnerID: ownerID}}, nil
		},
	}
	service := NewProjectService(ProjectServiceOptions{Projects: projects})

	q := "redesign"
	result, err := service.List(context.Background(), "alice", model.ProjectsListOptions{
		Q:     &q,
		Limit: 10,
	})

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "alice", gotOwner)
	require.NotNil(t, gotOpts.Q)
	assert.Equal(t, "redesign", *gotOpts.Q)
	assert.Equal(t, 10, gotOpts.Limit)
}
