package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.False(t, Role("guest").Valid())
	assert.False(t, Role("").Valid())
}

func TestAuthContextIsAdmin(t *testing.T) {
	assert.True(t, AuthContext{Role: RoleAdmin}.IsAdmin())
	assert.False(t, AuthContext{Role: RoleUser}.IsAdmin())
}
