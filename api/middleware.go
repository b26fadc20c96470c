package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/auth"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/i18n"
	"github.com/rpupo63/portfolio-site/models"
)

const sessionCookieName = "session_token"

type authMiddleware struct {
	responder     Responder
	logger        zerolog.Logger
	authenticator *auth.Authenticator
}

func newAuthMiddleware(authenticator *auth.Authenticator) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder:     NewResponder(logger),
		logger:        logger,
		authenticator: authenticator,
	}
}

// sessionToken reads the session cookie, falling back to a Bearer header.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// withSession attaches the signed-in session, if any, to the request
// context. An invalid or expired token leaves the request anonymous.
func (m authMiddleware) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.authenticator.Session(r.Context(), token)
		if err != nil {
			m.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("ignoring session token")
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxWithSession(r.Context(), session)))
	})
}

// requireAdminPage sends anonymous visitors to the login page and signed-in
// non-admins to the home page.
func (m authMiddleware) requireAdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := ctxGetSession(r.Context())
		if session == nil {
			http.Redirect(w, r, "/auth", http.StatusSeeOther)
			return
		}
		if !session.IsAdmin {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m authMiddleware) requireAdminAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := ctxGetSession(r.Context())
		if session == nil {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}
		if !session.IsAdmin {
			m.responder.WriteError(w, errs.NewInsufficientRoleError(models.RoleAdmin))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LocaleMiddleware picks the request's locale from the language cookie and
// the Accept-Language header.
func LocaleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		persisted := ""
		if c, err := r.Cookie(i18n.CookieName); err == nil {
			persisted = c.Value
		}
		locale := i18n.Resolve(persisted, r.Header.Get("Accept-Language"))
		next.ServeHTTP(w, r.WithContext(ctxWithTranslator(r.Context(), i18n.New(locale))))
	})
}

// statusRecorder remembers the first status written and counts body bytes.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w}
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *statusRecorder) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// LogInternalServerErrors turns panics into 500 responses and logs every 500
// with the route that produced it.
func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)
		defer func() {
			p := recover()
			if p == nil {
				if rec.code() == http.StatusInternalServerError {
					log.Error().Str("method", r.Method).Str("path", r.URL.Path).Msg("internal server error")
				}
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Interface("panic", p).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			if rec.status == 0 {
				rec.WriteHeader(http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(rec, r)
	})
}

// CORSCheckMiddleware rejects preflight requests from origins outside the
// allow list with a JSON error instead of a bare 403.
func CORSCheckMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || r.Method != http.MethodOptions || originAllowed(allowedOrigins, origin) {
				next.ServeHTTP(w, r)
				return
			}
			NewResponder(log.Logger).WriteError(w, errs.NewCORSError(origin))
		})
	}
}

func originAllowed(allowedOrigins []string, origin string) bool {
	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			return true
		}
	}
	return false
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// ColoredHTTPLoggingMiddleware writes one access log line per request. Any
// format other than "json" gets a colourised console writer; the level follows
// the status class.
func ColoredHTTPLoggingMiddleware(format string) func(http.Handler) http.Handler {
	requestLogger := log.Logger
	if format != "json" {
		requestLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			status := rec.code()
			event := requestLogger.Info()
			if status >= 500 {
				event = requestLogger.Error()
			} else if status >= 400 {
				event = requestLogger.Warn()
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", rec.bytes).
				Dur("duration", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Msg("request")
		})
	}
}
