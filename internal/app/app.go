package app

import (
	"context"
	"net/http"
	"signupsite/internal/app/deps"
	"signupsite/internal/app/services"
	"signupsite/internal/core/domain/logging"
	"signupsite/internal/http/handlers/health"
	"signupsite/internal/http/handlers/home"
	showsignupform "signupsite/internal/http/handlers/sign_up/show_sign_up_form"
	submitsignup "signupsite/internal/http/handlers/sign_up/submit_sign_up"
	"signupsite/internal/http/handlers/static"
	"signupsite/internal/http/middleware"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(deps *deps.Deps, s *services.Services) chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	if deps.Config.TrustProxyHeaders {
		router.Use(chimiddleware.RealIP)
	}
	router.Use(middleware.LogRequests(deps.Logger, deps.Now))
	router.Use(middleware.Recover(deps.Logger, deps.Reporter))
	if len(deps.Config.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.Config.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: false,
			MaxAge:           300, // Maximum value not ignored by any of major browsers
		}))
	}

	router.Method(http.MethodGet, "/", home.New(deps.Logger, deps.Reporter, deps.Views))
	router.Method(http.MethodGet, "/sign-up", showsignupform.New(deps.Logger, deps.Reporter, deps.Views))
	router.Method(http.MethodPost, "/sign-up", submitsignup.New(deps.Logger, deps.Reporter, s.SignUp, deps.Views))
	router.Method(http.MethodGet, "/healthz", health.New())

	router.Method(http.MethodGet, "/public", http.RedirectHandler("/public/", http.StatusMovedPermanently))
	router.Method(http.MethodGet, "/public/*", static.New("/public/", deps.Config.PublicDir))

	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(deps, s)
	LogRoutes(context.Background(), deps.Logger, router)

	return &http.Server{
		Handler:           router,
		Addr:              deps.Config.Address(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// LogRoutes prints every registered endpoint at startup.
func LogRoutes(ctx context.Context, log logging.Logger, router chi.Routes) {
	walk := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		log.Info(ctx, "Route registered.", logging.Entry("method", method), logging.Entry("path", route))
		return nil
	}
	if err := chi.Walk(router, walk); err != nil {
		log.Warning(ctx, "Could not list routes.", logging.Entry("err", err))
	}
}
