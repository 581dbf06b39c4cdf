package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateUserRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr string
	}{
		{"valid", CreateUserRequest{Email: "a@x.com", Name: "Alice"}, ""},
		{
			"valid with picture",
			CreateUserRequest{Email: "a@x.com", Name: "Alice", Picture: strPtr("https://img.example.com/a.png")},
			"",
		},
		{"missing email", CreateUserRequest{Name: "Alice"}, "email is required"},
		{"invalid email", CreateUserRequest{Email: "nope", Name: "Alice"}, "must contain @"},
		{"missing name", CreateUserRequest{Email: "a@x.com"}, "name is required"},
		{
			"name too long",
			CreateUserRequest{Email: "a@x.com", Name: strings.Repeat("n", 121)},
			"cannot exceed",
		},
		{
			"bad picture scheme",
			CreateUserRequest{Email: "a@x.com", Name: "Alice", Picture: strPtr("ftp://img/a.png")},
			"http or https",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUpdateProfileRequestValidate(t *testing.T) {
	empty := UpdateProfileRequest{}
	err := empty.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one field")

	blank := UpdateProfileRequest{Name: strPtr("  ")}
	require.Error(t, blank.Validate())

	ok := UpdateProfileRequest{Name: strPtr("New Name"), Picture: strPtr("")}
	assert.NoError(t, ok.Validate())
}
