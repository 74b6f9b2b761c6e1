package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookmaster/internal/logger"
	"cookmaster/internal/models"
	"cookmaster/internal/token"
)

func newUserService() (*UserService, *fakeUserStore, *token.Service) {
	store := &fakeUserStore{}
	tokens := token.NewService("test-secret", 15*time.Minute)
	return NewUserService(store, tokens, logger.New(slog.LevelError)), store, tokens
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"missing name", "", "a@x.com", "123456789"},
		{"missing email", "A", "", "123456789"},
		{"missing password", "A", "a@x.com", ""},
		{"email without domain", "A", "a@", "123456789"},
		{"email without at", "A", "ax.com", "123456789"},
		{"email with whitespace", "A", "a b@x.com", "123456789"},
		{"short password", "A", "a@x.com", "12345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.userName, tc.email, tc.password)
			assert.ErrorIs(t, err, models.ErrInvalidEntries)
		})
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc, store, _ := newUserService()

	user, err := svc.Register(context.Background(), "Yarpen Zigrin", "yarpenzigrin@anao.com", "123456789")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "yarpenzigrin@anao.com", user.Email)

	// Stored password is a hash, never the plain text.
	stored := store.users[0]
	assert.NotEqual(t, "123456789", stored.Password)
	assert.True(t, VerifyPassword("123456789", stored.Password))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "First", "a@x.com", "123456789")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Second", "a@x.com", "different-password")
	assert.ErrorIs(t, err, models.ErrEmailRegistered)
}

func TestRegisterAdmin(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	t.Run("non-admin caller is rejected", func(t *testing.T) {
		_, err := svc.RegisterAdmin(ctx, models.RoleUser, "A", "admin@x.com", "123456789")
		assert.ErrorIs(t, err, models.ErrAdminOnly)
	})

	t.Run("admin caller creates an admin", func(t *testing.T) {
		user, err := svc.RegisterAdmin(ctx, models.RoleAdmin, "A", "admin@x.com", "123456789")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("admin path still validates input", func(t *testing.T) {
		_, err := svc.RegisterAdmin(ctx, models.RoleAdmin, "", "admin2@x.com", "123456789")
		assert.ErrorIs(t, err, models.ErrInvalidEntries)
	})

	t.Run("admin path still checks uniqueness", func(t *testing.T) {
		_, err := svc.RegisterAdmin(ctx, models.RoleAdmin, "A", "admin@x.com", "123456789")
		assert.ErrorIs(t, err, models.ErrEmailRegistered)
	})
}

func TestLogin(t *testing.T) {
	svc, _, tokens := newUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "A", "a@x.com", "123456789")
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@x.com", "123456789")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "a@x.com", "wrong-password")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("issued token carries the user's claims", func(t *testing.T) {
		tok, err := svc.Login(ctx, "a@x.com", "123456789")
		require.NoError(t, err)

		claims, err := tokens.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, models.RoleUser, claims.Role)
	})
}
