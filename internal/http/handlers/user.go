package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
	"github.com/careerconnect/careerconnect-be/internal/auth"
	"github.com/careerconnect/careerconnect-be/internal/http/respond"
	"github.com/careerconnect/careerconnect-be/internal/mail"
	"github.com/careerconnect/careerconnect-be/internal/media"
	"github.com/careerconnect/careerconnect-be/internal/middleware"
	"github.com/careerconnect/careerconnect-be/internal/models"
	"github.com/careerconnect/careerconnect-be/internal/models/dto"
	"github.com/careerconnect/careerconnect-be/internal/storage"
)

// maxUploadMemory bounds how much of a multipart body is buffered in memory.
const maxUploadMemory = 32 << 20

// UserHandler owns registration, login/logout, and profile endpoints.
type UserHandler struct {
	store    storage.Store
	sessions *auth.Service
	tokens   *auth.TokenManager
	uploader media.Uploader
	mailer   mail.Sender
}

// NewUserHandler constructs the handler.
func NewUserHandler(store storage.Store, sessions *auth.Service, tokens *auth.TokenManager, uploader media.Uploader, mailer mail.Sender) *UserHandler {
	return &UserHandler{store: store, sessions: sessions, tokens: tokens, uploader: uploader, mailer: mailer}
}

// Register creates a user account from a multipart form, uploading the
// optional profile photo and sending a best-effort welcome mail.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseMultipartForm(maxUploadMemory)

	fullname := strings.TrimSpace(r.FormValue("fullname"))
	email := strings.TrimSpace(r.FormValue("email"))
	phoneNumber := strings.TrimSpace(r.FormValue("phoneNumber"))
	password := r.FormValue("password")
	role := strings.TrimSpace(r.FormValue("role"))

	if fullname == "" || email == "" || phoneNumber == "" || password == "" || role == "" {
		respond.Err(w, apperr.New(apperr.MissingFields, "Something is missing"))
		return
	}

	if _, err := h.store.FindUserByEmail(r.Context(), email); err == nil {
		respond.Err(w, apperr.New(apperr.DuplicateResource, "User already exists with this email."))
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		respond.Err(w, err)
		return
	}

	profilePhoto, err := h.uploadFormFile(r, false)
	if err != nil {
		respond.Err(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		respond.Err(w, err)
		return
	}

	user := models.User{
		FullName:     fullname,
		Email:        email,
		PhoneNumber:  phoneNumber,
		PasswordHash: string(hash),
		Role:         role,
		Profile:      models.Profile{ProfilePhoto: profilePhoto},
	}
	if _, err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Err(w, apperr.New(apperr.DuplicateResource, "User already exists with this email."))
			return
		}
		respond.Err(w, err)
		return
	}

	// Fire-and-forget, delivery failure never blocks registration.
	go h.sendWelcomeMail(email, fullname)

	respond.JSON(w, http.StatusCreated, "Account created successfully.", nil)
}

// Login authenticates credentials and sets the session cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Err(w, apperr.New(apperr.MissingFields, "Something is missing"))
		return
	}

	user, token, err := h.sessions.Authenticate(r.Context(), auth.Credentials{
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		Role:      strings.TrimSpace(req.Role),
		SecretKey: req.SecretKey,
	})
	if err != nil {
		respond.Err(w, err)
		return
	}

	h.setSessionCookie(w, token)

	message := fmt.Sprintf("Welcome back %s", user.FullName)
	if user.Role == models.RoleAdmin {
		message = "Welcome back, Admin!"
	}
	respond.JSON(w, http.StatusOK, message, respond.Fields{"user": user})
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry since no server-side session state exists.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	respond.JSON(w, http.StatusOK, "Logged out successfully.", nil)
}

// UpdateProfile applies partial profile changes for the authenticated user.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		respond.Err(w, err)
		return
	}

	_ = r.ParseMultipartForm(maxUploadMemory)

	user, err := h.store.FindUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Err(w, apperr.New(apperr.NotFound, "User not found."))
			return
		}
		respond.Err(w, err)
		return
	}

	if v := strings.TrimSpace(r.FormValue("fullname")); v != "" {
		user.FullName = v
	}
	if v := strings.TrimSpace(r.FormValue("email")); v != "" {
		user.Email = v
	}
	if v := strings.TrimSpace(r.FormValue("phoneNumber")); v != "" {
		user.PhoneNumber = v
	}
	if v := strings.TrimSpace(r.FormValue("bio")); v != "" {
		user.Profile.Bio = v
	}
	if v := strings.TrimSpace(r.FormValue("skills")); v != "" {
		user.Profile.Skills = splitSkills(v)
	}

	photo, err := h.uploadFormFile(r, false)
	if err != nil {
		respond.Err(w, err)
		return
	}
	if photo != "" {
		user.Profile.ProfilePhoto = photo
	}

	updated, err := h.store.UpdateUser(r.Context(), user)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Profile updated successfully.", respond.Fields{"user": updated.Sanitized()})
}

// UpdateResume uploads a new resume file for the authenticated user.
func (h *UserHandler) UpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		respond.Err(w, err)
		return
	}

	_ = r.ParseMultipartForm(maxUploadMemory)

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Err(w, apperr.New(apperr.MissingFields, "No file uploaded."))
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respond.Err(w, err)
		return
	}

	user, err := h.store.FindUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Err(w, apperr.New(apperr.NotFound, "User not found."))
			return
		}
		respond.Err(w, err)
		return
	}

	user.Profile.Resume = url
	user.Profile.ResumeOriginalName = header.Filename
	if _, err := h.store.UpdateUser(r.Context(), user); err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Resume uploaded successfully.", nil)
}

// GetAllUsers lists accounts, optionally filtered by ?role=, together with
// job-seeker and recruiter totals.
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	role := strings.TrimSpace(r.URL.Query().Get("role"))

	users, err := h.store.ListUsers(r.Context(), role)
	if err != nil {
		respond.Err(w, err)
		return
	}
	if len(users) == 0 {
		respond.Err(w, apperr.New(apperr.NotFound, "No users found"))
		return
	}

	sanitized := make([]models.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}

	jobSeekers, err := h.store.CountUsersByRole(r.Context(), models.RoleJobSeeker)
	if err != nil {
		respond.Err(w, err)
		return
	}
	employers, err := h.store.CountUsersByRole(r.Context(), models.RoleRecruiter)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, "", respond.Fields{
		"users":           sanitized,
		"jobSeekersCount": jobSeekers,
		"employersCount":  employers,
	})
}

func (h *UserHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL() / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// uploadFormFile uploads the "file" part if present. With required false a
// missing part is not an error and yields an empty URL.
func (h *UserHandler) uploadFormFile(r *http.Request, required bool) (string, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if required {
			return "", apperr.New(apperr.MissingFields, "No file uploaded.")
		}
		return "", nil
	}
	defer file.Close()

	return h.uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
}

func (h *UserHandler) sendWelcomeMail(email, fullname string) {
	subject := "Welcome to CareerConnect!"
	html := fmt.Sprintf(`<p>Dear %s,</p>
<p>Welcome to CareerConnect! You have successfully signed up.</p>
<p>We are excited to have you on board!</p>
<p>Best regards,</p>
<p>The CareerConnect Team</p>`, fullname)

	if err := h.mailer.Send(context.Background(), email, subject, html); err != nil {
		log.Printf("welcome mail to %s failed: %v", email, err)
	}
}

// currentUserID resolves the authenticated identity to a user object id.
// Admin tokens carry no user id and cannot act on profile endpoints.
func currentUserID(r *http.Request) (primitive.ObjectID, error) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok || identity.UserID == "" {
		return primitive.NilObjectID, apperr.New(apperr.InvalidToken, "User not authenticated.")
	}
	id, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return primitive.NilObjectID, apperr.Wrap(apperr.InvalidToken, "User not authenticated.", err)
	}
	return id, nil
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
