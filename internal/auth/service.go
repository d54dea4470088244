package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
	"github.com/careerconnect/careerconnect-be/internal/models"
	"github.com/careerconnect/careerconnect-be/internal/storage"
)

// Credentials is the login input. SecretKey is only consulted on the
// administrative path.
type Credentials struct {
	Email     string
	Password  string
	Role      string
	SecretKey string
}

// Service turns verified credentials into session tokens.
type Service struct {
	users  storage.UserStore
	tokens *TokenManager

	adminEmail    string
	adminPassword string
	adminSecret   string
}

// NewService constructs the session issuer. The admin credentials come from
// configuration, never from the database.
func NewService(users storage.UserStore, tokens *TokenManager, adminEmail, adminPassword, adminSecret string) *Service {
	return &Service{
		users:         users,
		tokens:        tokens,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		adminSecret:   adminSecret,
	}
}

// Authenticate validates credentials and issues a session token along with a
// sanitized user record.
//
// The administrative path checks the secret key before the email/password
// pair and performs no database lookup. The standard path reports the same
// error for an unknown email and a wrong password so accounts cannot be
// enumerated; the role comparison happens only after the password matched.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (models.User, string, error) {
	if creds.Email == "" || creds.Password == "" || creds.Role == "" {
		return models.User{}, "", apperr.New(apperr.MissingFields, "Something is missing")
	}

	if creds.Role == models.RoleAdmin {
		return s.authenticateAdmin(creds)
	}

	user, err := s.users.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, "", apperr.New(apperr.InvalidCredentials, "Incorrect email or password.")
		}
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return models.User{}, "", apperr.New(apperr.InvalidCredentials, "Incorrect email or password.")
	}

	if creds.Role != user.Role {
		return models.User{}, "", apperr.New(apperr.RoleMismatch, "Account doesn't exist with the current role.")
	}

	token, err := s.tokens.GenerateUser(user.ID.Hex())
	if err != nil {
		return models.User{}, "", err
	}
	return user.Sanitized(), token, nil
}

func (s *Service) authenticateAdmin(creds Credentials) (models.User, string, error) {
	if s.adminSecret == "" || creds.SecretKey != s.adminSecret {
		return models.User{}, "", apperr.New(apperr.InvalidAdminSecret, "Invalid admin secret key")
	}
	if creds.Email != s.adminEmail || creds.Password != s.adminPassword {
		return models.User{}, "", apperr.New(apperr.InvalidAdminCredentials, "Invalid admin credentials")
	}

	token, err := s.tokens.GenerateAdmin(creds.Email, models.RoleAdmin)
	if err != nil {
		return models.User{}, "", err
	}
	return models.User{Email: creds.Email, Role: models.RoleAdmin}, token, nil
}
