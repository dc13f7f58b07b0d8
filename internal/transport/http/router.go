package http

import (
	"net/http"

	"github.com/CodedSedorf/mern-auth/internal/application/auth"
	"github.com/CodedSedorf/mern-auth/internal/config"
	"github.com/CodedSedorf/mern-auth/internal/infrastructure/dynamo"
	jwtinfra "github.com/CodedSedorf/mern-auth/internal/infrastructure/jwt"
	"github.com/CodedSedorf/mern-auth/internal/infrastructure/smtp"
	"github.com/CodedSedorf/mern-auth/internal/transport/http/handler"
	appmiddleware "github.com/CodedSedorf/mern-auth/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    *dynamo.UserRepo
	Mailer      smtp.Mailer
	JWTProvider *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		// The session rides an HTTP-only cookie, so credentialed
		// cross-origin requests must be allowed.
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo: deps.UserRepo,
		Mailer:   deps.Mailer,
		Tokens:   deps.JWTProvider,
	})

	cookies := handler.CookieSettings{
		Production: cfg.Production(),
		MaxAge:     cfg.CookieMaxAge,
	}

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc, cookies)
	userH := handler.NewUserHandler(authSvc)

	r.Get("/", healthH.Root)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
		r.Post("/logout", authH.Logout)
		r.Post("/send-reset-otp", authH.SendResetOTP)
		r.Post("/reset-password", authH.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Post("/send-verify-otp", authH.SendVerifyOTP)
			r.Post("/verify-email", authH.VerifyEmail)
			r.Get("/is-auth", authH.IsAuthenticated)
		})
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Use(authMw)

		r.Get("/profile", userH.Profile)
	})

	return r
}
