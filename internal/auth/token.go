package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
)

// Claims is the signed token payload. Standard logins carry UserID; the
// administrative path carries Email and Role instead and touches no database.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Identity is the verified content of a session token.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// TokenManager issues and verifies signed session tokens. Tokens are
// stateless: once issued they stay valid until natural expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret and lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime, also used as the cookie max-age.
func (t *TokenManager) TTL() time.Duration { return t.ttl }

// GenerateUser issues a token bound to a user id.
func (t *TokenManager) GenerateUser(userID string) (string, error) {
	return t.sign(Claims{UserID: userID})
}

// GenerateAdmin issues a token bound to the administrator email and role.
func (t *TokenManager) GenerateAdmin(email, role string) (string, error) {
	return t.sign(Claims{Email: email, Role: role})
}

func (t *TokenManager) sign(claims Claims) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify decodes the token, checking signature and expiry.
func (t *TokenManager) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, apperr.Wrap(apperr.Expired, "Session expired, please log in again.", err)
		}
		return Identity{}, apperr.Wrap(apperr.InvalidToken, "Invalid session token.", err)
	}
	if !token.Valid {
		return Identity{}, apperr.New(apperr.InvalidToken, "Invalid session token.")
	}
	return Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

type identityKey struct{}

// ContextWithIdentity attaches a verified identity to the request context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom extracts the verified identity placed by the auth middleware.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
