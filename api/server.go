package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/auth"
	"github.com/rpupo63/portfolio-site/config"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// NewServer builds the HTTP server from the loaded configuration.
func NewServer(c map[string]string, deps Dependencies) (Server, error) {
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router, err := newRouter(deps, withConfig(c), withStartupTime(startupTime))
	if err != nil {
		return Server{}, err
	}

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 180),
		WriteTimeout: config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 180),
		IdleTimeout:  config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 180),
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps Dependencies, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	c := router.config

	jwtSecret := config.GetString(c, "JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	ttl := time.Duration(config.GetInt(c, "SESSION_TTL_HOURS", 24)) * time.Hour
	secure := config.GetBool(c, "COOKIE_SECURE", true)

	renderer, err := NewRenderer(log.With().Str("component", "renderer").Logger())
	if err != nil {
		return nil, err
	}

	handlers, authenticator := initializeHandlers(deps, handlerConfig{
		tokens:       auth.NewTokens(jwtSecret, ttl),
		secure:       secure,
		notifyEmails: config.GetList(c, "NOTIFY_EMAIL"),
		flashSecret:  config.GetString(c, "SESSION_SECRET", jwtSecret),
	}, renderer)
	authMiddleware := newAuthMiddleware(authenticator)

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(ColoredHTTPLoggingMiddleware(config.GetString(c, "LOG_FORMAT", "console")))

	acceptedOrigins := config.GetList(c, "ACCEPTED_ORIGINS")
	if len(acceptedOrigins) > 0 {
		chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
		chiRouter.Use(corsMiddleware(acceptedOrigins))
	}
	chiRouter.Use(LocaleMiddleware)
	chiRouter.Use(authMiddleware.withSession)

	setupAPIRoutes(chiRouter, handlers, authMiddleware)
	setupPageRoutes(chiRouter, handlers, authMiddleware, csrfProtection(config.GetString(c, "CSRF_KEY", ""), secure))

	log.Debug().Time("startupTime", router.startupTime).Msg("router ready")
	return chiRouter, nil
}

// csrfProtection guards the HTML forms when a key is configured. Without
// secure cookies the requests are marked as plaintext so the referer check
// accepts http origins during local development.
func csrfProtection(key string, secure bool) func(http.Handler) http.Handler {
	if key == "" {
		log.Warn().Msg("CSRF_KEY not set, admin forms are not CSRF protected")
		return func(next http.Handler) http.Handler { return next }
	}

	protect := csrf.Protect(
		[]byte(key),
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Warn().Err(csrf.FailureReason(r)).Str("path", r.URL.Path).Msg("CSRF check failed")
			http.Error(w, "Forbidden - CSRF token invalid", http.StatusForbidden)
		})),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if secure {
			return protected
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefulCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefulCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
