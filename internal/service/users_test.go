package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestUsersRegister(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "positive: new account",
			email:    "alice@example.com",
			password: "hunter2",
			wantErr:  nil,
		},
		{
			name:     "negative: empty email",
			email:    "",
			password: "hunter2",
			wantErr:  ErrEmptyCredentials,
		},
		{
			name:     "negative: empty password",
			email:    "alice@example.com",
			password: "",
			wantErr:  ErrEmptyCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := NewUsers(logger)

			user, err := users.Register(tt.email, tt.password)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, user.ID, 6)
			assert.Equal(t, tt.email, user.Email)
			assert.NotEqual(t, tt.password, user.PasswordHash,
				"password must not be stored in the clear")
			assert.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(user.PasswordHash), []byte(tt.password)))
		})
	}
}

func TestUsersRegisterEmailTaken(t *testing.T) {
	users := NewUsers(zap.NewNop())

	_, err := users.Register("alice@example.com", "hunter2")
	require.NoError(t, err)

	_, err = users.Register("alice@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUsersLogin(t *testing.T) {
	users := NewUsers(zap.NewNop())

	registered, err := users.Register("alice@example.com", "hunter2")
	require.NoError(t, err)

	user, err := users.Login("alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = users.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Login("nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Login("", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestUsersGet(t *testing.T) {
	users := NewUsers(zap.NewNop())

	registered, err := users.Register("alice@example.com", "hunter2")
	require.NoError(t, err)

	user, ok := users.Get(registered.ID)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", user.Email)

	_, ok = users.Get("nosuch")
	assert.False(t, ok)
}
