package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPasswordPolicy(t *testing.T) {
	assert.NoError(t, CheckPasswordPolicy("door-keeper-2026"))
	assert.ErrorIs(t, CheckPasswordPolicy("short1!"), ErrWeakPassword)
	assert.ErrorIs(t, CheckPasswordPolicy("nodigitsatall!"), ErrWeakPassword)
	assert.ErrorIs(t, CheckPasswordPolicy("1234567890!!"), ErrWeakPassword)
	assert.ErrorIs(t, CheckPasswordPolicy("nosymbol12345"), ErrWeakPassword)
}

func TestAuthService_CreateAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins)
	ctx := context.Background()

	created, err := svc.CreateAdmin(ctx, " door ", "door-keeper-2026")
	require.NoError(t, err)
	assert.Equal(t, "door", created.Username)
	assert.NotEqual(t, "door-keeper-2026", created.Password)

	_, err = svc.CreateAdmin(ctx, "door", "door-keeper-2026")
	assert.ErrorIs(t, err, ErrAdminUsernameExists)

	admin, err := svc.Login(ctx, "door", "door-keeper-2026")
	require.NoError(t, err)
	assert.Equal(t, created.ID, admin.ID)

	_, err = svc.Login(ctx, "door", "wrong-password-1!")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, "admin", "admin123")
	assert.ErrorIs(t, err, ErrAdminNotFound)

	got, err := svc.GetAdmin(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "door", got.Username)
}

func TestAuthService_CreateAdminValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins)

	_, err := svc.CreateAdmin(context.Background(), "  ", "door-keeper-2026")
	assert.ErrorIs(t, err, ErrInvalidUsername)

	_, err = svc.CreateAdmin(context.Background(), "door", "admin123")
	assert.ErrorIs(t, err, ErrWeakPassword)
}
