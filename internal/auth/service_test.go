package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
	"github.com/careerconnect/careerconnect-be/internal/models"
	"github.com/careerconnect/careerconnect-be/internal/storage/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	tokens := NewTokenManager("test-secret", time.Hour)
	svc := NewService(store, tokens, "admin@careerconnect.dev", "admin-pass", "admin-secret")
	return svc, store
}

func seedUser(t *testing.T, store *memory.Store, email, password, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user, err := store.CreateUser(context.Background(), models.User{
		FullName:     "Test User",
		Email:        email,
		PhoneNumber:  "5551234567",
		PasswordHash: string(hash),
		Role:         role,
	})
	require.NoError(t, err)
	return user
}

func TestAuthenticateMissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []Credentials{
		{Password: "pw", Role: models.RoleJobSeeker},
		{Email: "a@b.c", Role: models.RoleJobSeeker},
		{Email: "a@b.c", Password: "pw"},
	}
	for _, creds := range cases {
		_, _, err := svc.Authenticate(context.Background(), creds)
		require.Error(t, err)
		assert.Equal(t, apperr.MissingFields, apperr.KindOf(err))
	}
}

func TestAuthenticateUnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	svc, store := newTestService(t)
	seedUser(t, store, "known@example.com", "right-password", models.RoleJobSeeker)

	_, _, errUnknown := svc.Authenticate(context.Background(), Credentials{
		Email: "unknown@example.com", Password: "whatever", Role: models.RoleJobSeeker,
	})
	_, _, errWrongPw := svc.Authenticate(context.Background(), Credentials{
		Email: "known@example.com", Password: "wrong-password", Role: models.RoleJobSeeker,
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, apperr.InvalidCredentials, apperr.KindOf(errUnknown))
	assert.Equal(t, apperr.InvalidCredentials, apperr.KindOf(errWrongPw))
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthenticateRoleMismatch(t *testing.T) {
	svc, store := newTestService(t)
	seedUser(t, store, "seeker@example.com", "correct-password", models.RoleJobSeeker)

	// Wrong role with the correct password still fails with a role error.
	_, _, err := svc.Authenticate(context.Background(), Credentials{
		Email: "seeker@example.com", Password: "correct-password", Role: models.RoleRecruiter,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.RoleMismatch, apperr.KindOf(err))
}

func TestAuthenticateSuccess(t *testing.T) {
	svc, store := newTestService(t)
	seeded := seedUser(t, store, "seeker@example.com", "correct-password", models.RoleJobSeeker)

	user, token, err := svc.Authenticate(context.Background(), Credentials{
		Email: "seeker@example.com", Password: "correct-password", Role: models.RoleJobSeeker,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, seeded.ID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthenticateAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Secret key is checked before the credentials.
	_, _, err := svc.Authenticate(ctx, Credentials{
		Email: "wrong@example.com", Password: "wrong", Role: models.RoleAdmin, SecretKey: "bad-secret",
	})
	assert.Equal(t, apperr.InvalidAdminSecret, apperr.KindOf(err))

	_, _, err = svc.Authenticate(ctx, Credentials{
		Email: "wrong@example.com", Password: "admin-pass", Role: models.RoleAdmin, SecretKey: "admin-secret",
	})
	assert.Equal(t, apperr.InvalidAdminCredentials, apperr.KindOf(err))

	_, _, err = svc.Authenticate(ctx, Credentials{
		Email: "admin@careerconnect.dev", Password: "wrong", Role: models.RoleAdmin, SecretKey: "admin-secret",
	})
	assert.Equal(t, apperr.InvalidAdminCredentials, apperr.KindOf(err))

	user, token, err := svc.Authenticate(ctx, Credentials{
		Email: "admin@careerconnect.dev", Password: "admin-pass", Role: models.RoleAdmin, SecretKey: "admin-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestAuthenticateAdminDisabledWithoutSecret(t *testing.T) {
	store := memory.New()
	tokens := NewTokenManager("test-secret", time.Hour)
	svc := NewService(store, tokens, "", "", "")

	// Without a configured secret the admin path can never succeed, even
	// with an empty supplied key.
	_, _, err := svc.Authenticate(context.Background(), Credentials{
		Email: "a@b.c", Password: "pw", Role: models.RoleAdmin,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidAdminSecret, apperr.KindOf(err))
}
