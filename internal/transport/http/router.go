package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	companyapp "github.com/job-board-api/internal/application/company"
	jobapp "github.com/job-board-api/internal/application/job"
	"github.com/job-board-api/internal/application/verification"
	"github.com/job-board-api/internal/config"
	"github.com/job-board-api/internal/transport/http/handler"
	appmiddleware "github.com/job-board-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// 5 requests/second, burst of 10 — applied to the public credential endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	companySvc := companyapp.NewService(companyapp.ServiceDeps{
		CompanyRepo: deps.CompanyRepo,
		JWTProvider: deps.JWTProvider,
		LogoStore:   deps.LogoStore,
	})
	verificationSvc := verification.NewService(verification.ServiceDeps{
		CompanyRepo:      deps.CompanyRepo,
		Mailer:           deps.Mailer,
		SMSSender:        deps.SMSSender,
		SMSCountryPrefix: cfg.SMSCountryPrefix,
	})
	jobSvc := jobapp.NewService(jobapp.ServiceDeps{
		CompanyRepo:  deps.CompanyRepo,
		JobRepo:      deps.JobRepo,
		EmailLogRepo: deps.EmailLogRepo,
		Mailer:       deps.Mailer,
	})

	healthH := handler.NewHealthHandler()
	companyH := handler.NewCompanyHandler(companySvc)
	otpH := handler.NewOTPHandler(verificationSvc)
	jobH := handler.NewJobHandler(jobSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/signup", companyH.Signup)
		r.With(sensitiveRL.Limit).Post("/login", companyH.Login)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/logout", companyH.Logout)
			r.Get("/company", companyH.Get)
			r.Post("/company/logo", companyH.UploadLogo)

			r.Post("/send-otp", otpH.Send)
			r.Post("/verify-otp", otpH.Verify)

			r.Post("/post-job", jobH.Post)
			r.Get("/jobs", jobH.List)
			r.Get("/jobs/{jobID}/email-logs", jobH.EmailLogs)
			r.Post("/send-email", jobH.SendEmail)
		})
	})

	return r
}
