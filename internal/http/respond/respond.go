// Package respond owns the JSON envelope and the single translation from
// application errors to HTTP statuses.
package respond

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
)

// Fields carries the named payload members of a response, merged into the
// envelope next to success and message (user, users, company, counts, ...).
type Fields map[string]any

// JSON writes a success envelope with optional named payload fields.
func JSON(w http.ResponseWriter, status int, message string, fields Fields) {
	body := map[string]any{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range fields {
		body[k] = v
	}
	write(w, status, body)
}

// Err writes a failure envelope, deriving the status from the error kind.
// Errors outside the taxonomy become a 500 with a generic message; their
// detail is logged server-side and never reaches the client.
func Err(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		log.Printf("internal error: %v", err)
	}
	write(w, statusFor(kind), map[string]any{
		"success": false,
		"message": apperr.MessageOf(err),
	})
}

// Raw writes an arbitrary JSON body without the envelope. Used by the
// payment and health endpoints, whose wire formats predate the envelope.
func Raw(w http.ResponseWriter, status int, body any) {
	write(w, status, body)
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.MissingFields, apperr.InvalidCredentials, apperr.RoleMismatch,
		apperr.DuplicateResource, apperr.SignatureMismatch:
		return http.StatusBadRequest
	case apperr.InvalidAdminCredentials, apperr.InvalidToken, apperr.Expired:
		return http.StatusUnauthorized
	case apperr.InvalidAdminSecret:
		return http.StatusForbidden
	case apperr.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}
