package main

import (
	"bytes"
	"testing"
	"time"

	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestPrintUsersRendersAccountRows(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	users := []*model.User{
		{
			ID:        "u-1",
			Email:     "alice@example.com",
			Name:      "Alice",
			Role:      domainauth.RoleAdmin,
			IsActive:  true,
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        "u-2",
			Email:     "bob@example.com",
			Name:      "Bob",
			Role:      domainauth.RoleUser,
			IsActive:  false,
			CreatedAt: now.Add(-5 * time.Minute),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printUsers(&buf, users, now))

	out := buf.String()
	require.Contains(t, out, "EMAIL")
	require.Contains(t, out, "alice@example.com")
	require.Contains(t, out, "admin")
	require.Contains(t, out, "2d ago")
	require.Contains(t, out, "disabled")
	require.Contains(t, out, "5m ago")
	require.Contains(t, out, "2 user(s)")
}

func TestPrintUsersEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printUsers(&buf, nil, time.Now()))
	require.Contains(t, buf.String(), "0 user(s)")
}

func TestCommandsHaveDescriptions(t *testing.T) {
	for name, cmd := range commands() {
		require.Equal(t, name, cmd.name)
		require.NotEmpty(t, cmd.description, "command %s has no description", name)
		require.NotNil(t, cmd.run, "command %s has no run function", name)
	}
}
