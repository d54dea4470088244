package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/careerconnect/careerconnect-be/internal/auth"
	"github.com/careerconnect/careerconnect-be/internal/config"
	"github.com/careerconnect/careerconnect-be/internal/http/handlers"
	"github.com/careerconnect/careerconnect-be/internal/mail"
	"github.com/careerconnect/careerconnect-be/internal/media"
	"github.com/careerconnect/careerconnect-be/internal/middleware"
	"github.com/careerconnect/careerconnect-be/internal/payments"
	"github.com/careerconnect/careerconnect-be/internal/pdfgen"
	"github.com/careerconnect/careerconnect-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, uploader media.Uploader, mailer mail.Sender, gateway payments.Gateway) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	sessions := auth.NewService(store, tokens, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminSecretKey)

	userHandler := handlers.NewUserHandler(store, sessions, tokens, uploader, mailer)
	companyHandler := handlers.NewCompanyHandler(store, uploader)
	jobHandler := handlers.NewJobHandler(store)
	applicationHandler := handlers.NewApplicationHandler(store)
	paymentHandler := handlers.NewPaymentHandler(gateway)
	resumeHandler := handlers.NewResumeHandler(pdfgen.NewRenderer(cfg.PDFDir))
	health := handlers.NewHealthHandler(time.Now())

	requireAuth := middleware.RequireAuth(tokens)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute)

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/", handlers.Root)
	r.Get("/health", health.Handle)

	r.Route("/api/v1/user", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.With(loginLimiter.Middleware).Post("/login", userHandler.Login)
		r.Get("/logout", userHandler.Logout)
		r.Get("/getallusers", userHandler.GetAllUsers)
		r.With(requireAuth).Post("/profile/update", userHandler.UpdateProfile)
		r.With(requireAuth).Post("/resume/update", userHandler.UpdateResume)
	})

	r.Route("/api/v1/company", func(r chi.Router) {
		r.With(requireAuth).Post("/register", companyHandler.Register)
		r.With(requireAuth).Get("/get", companyHandler.Get)
		r.Get("/get/{id}", companyHandler.GetByID)
		r.Get("/getall", companyHandler.GetAll)
		r.With(requireAuth).Put("/update/{id}", companyHandler.Update)
	})

	r.Route("/api/v1/job", func(r chi.Router) {
		r.With(requireAuth).Post("/post", jobHandler.Post)
		r.Get("/get", jobHandler.Get)
		r.Get("/get/{id}", jobHandler.GetByID)
		r.With(requireAuth).Get("/getadminjobs", jobHandler.GetAdminJobs)
	})

	r.Route("/api/v1/application", func(r chi.Router) {
		r.With(requireAuth).Get("/apply/{id}", applicationHandler.Apply)
		r.With(requireAuth).Get("/get", applicationHandler.GetAppliedJobs)
		r.With(requireAuth).Get("/{id}/applicants", applicationHandler.GetApplicants)
		r.With(requireAuth).Post("/status/{id}/update", applicationHandler.UpdateStatus)
		r.With(requireAuth).Post("/progress/{id}/update", applicationHandler.UpdateProgress)
		r.Get("/getallapplications", applicationHandler.GetAll)
	})

	r.Post("/order", paymentHandler.CreateOrder)
	r.Post("/order/validate", paymentHandler.Validate)
	r.Post("/create-pdf", resumeHandler.Create)
	r.Get("/fetch-pdf", resumeHandler.Fetch)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}
