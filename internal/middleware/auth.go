package middleware

import (
	"net/http"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
	"github.com/careerconnect/careerconnect-be/internal/auth"
	"github.com/careerconnect/careerconnect-be/internal/http/respond"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

// RequireAuth verifies the session cookie and places the identity in the
// request context. Requests without a valid token get a 401 envelope.
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				respond.Err(w, apperr.New(apperr.InvalidToken, "User not authenticated."))
				return
			}

			identity, err := tokens.Verify(cookie.Value)
			if err != nil {
				respond.Err(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithIdentity(r.Context(), identity)))
		})
	}
}
