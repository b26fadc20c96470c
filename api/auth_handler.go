package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/auth"
	"github.com/rpupo63/portfolio-site/errs"
)

type authHandler struct {
	renderer      *Renderer
	responder     Responder
	logger        zerolog.Logger
	authenticator *auth.Authenticator
	secure        bool
}

func newAuthHandler(renderer *Renderer, authenticator *auth.Authenticator, secure bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		renderer:      renderer,
		responder:     NewResponder(logger),
		logger:        logger,
		authenticator: authenticator,
		secure:        secure,
	}
}

type authPage struct {
	pageData
	Email string
	Error string
}

func (h authHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.authenticator.Tokens().TTL()),
	})
}

func (h authHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

func (h authHandler) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if session := ctxGetSession(r.Context()); session != nil && session.IsAdmin {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		h.renderer.Render(w, http.StatusOK, "auth.html", authPage{pageData: h.renderer.base(r, nil)})
	}
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := h.renderer.base(r, nil)
		if err := r.ParseForm(); err != nil {
			h.renderer.Render(w, http.StatusBadRequest, "auth.html", authPage{pageData: base, Error: base.T("auth.invalid")})
			return
		}
		email := r.PostForm.Get("email")

		token, _, err := h.authenticator.Login(r.Context(), email, r.PostForm.Get("password"))
		if err != nil {
			status := errs.StatusOf(err)
			message := base.T("auth.invalid")
			if status >= http.StatusInternalServerError {
				message = base.T("admin.saveFailed")
			}
			h.renderer.Render(w, status, "auth.html", authPage{pageData: base, Email: email, Error: message})
			return
		}

		h.setSessionCookie(w, token)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.clearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// apiLogin returns the token in the body and also sets the session cookie.
func (h authHandler) apiLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(w, r, &req, "login"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, _, err := h.authenticator.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		session, err := h.authenticator.Session(r.Context(), token)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.setSessionCookie(w, token)
		h.responder.WriteJSON(w, LoginResponse{Token: token, Session: session})
	}
}

func (h authHandler) apiSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxGetSession(r.Context())
		h.responder.WriteJSON(w, SessionResponse{Authenticated: session != nil, Session: session})
	}
}
