package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_BeforeSave_HashesPassword(t *testing.T) {
	u := &User{Email: "alice@example.com", Password: "pw1234"}

	assert.NoError(t, u.BeforeSave(nil))
	assert.Empty(t, u.Password, "plaintext must be cleared")
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "pw1234", u.PasswordHash)
	assert.True(t, u.ComparePassword("pw1234"))
	assert.False(t, u.ComparePassword("wrong"))
}

func TestUser_BeforeSave_NoPasswordIsNoOp(t *testing.T) {
	u := &User{Email: "alice@example.com", PasswordHash: "existing-hash"}

	assert.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, "existing-hash", u.PasswordHash)
}

func TestUser_RoleNames(t *testing.T) {
	u := &User{Roles: []Role{{Name: "user"}, {Name: "admin"}}}
	assert.Equal(t, []string{"user", "admin"}, u.RoleNames())

	empty := &User{}
	assert.Empty(t, empty.RoleNames())
}
