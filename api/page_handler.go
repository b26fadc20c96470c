package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/i18n"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/portfolio"
)

const localeCookieMaxAge = 365 * 24 * time.Hour

type pageHandler struct {
	renderer *Renderer
	loader   *portfolio.Loader
	inbox    *portfolio.Inbox
	flashes  flashStore
	logger   zerolog.Logger
	secure   bool
}

func newPageHandler(renderer *Renderer, loader *portfolio.Loader, inbox *portfolio.Inbox, flashes flashStore, secure bool) pageHandler {
	return pageHandler{
		renderer: renderer,
		loader:   loader,
		inbox:    inbox,
		flashes:  flashes,
		logger:   log.With().Str("handlerName", "pageHandler").Logger(),
		secure:   secure,
	}
}

type homePage struct {
	pageData
	Home portfolio.HomeView
}

type caseStudyPage struct {
	pageData
	CaseStudy portfolio.CaseStudyView
}

type notFoundPage struct {
	pageData
	Message   string
	BackURL   string
	BackLabel string
}

func (h pageHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := h.renderer.base(r, h.flashes.pop(w, r))
		data := h.loader.Home(r.Context())

		h.renderer.Render(w, http.StatusOK, "home.html", homePage{
			pageData: base,
			Home:     portfolio.BuildHome(data.Settings, data.Projects, data.CaseStudies, base.tr, base.IsAdmin()),
		})
	}
}

// contact accepts the home page contact form. The outcome is shown as a
// flash on the contact section.
func (h pageHandler) contact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr := ctxGetTranslator(r.Context()).T
		if err := r.ParseForm(); err != nil {
			h.flashes.add(w, r, Flash{Kind: flashError, Message: tr("contact.form.failed")})
			http.Redirect(w, r, "/#contact", http.StatusSeeOther)
			return
		}

		message := &models.ContactMessage{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Message: r.PostForm.Get("message"),
		}
		if err := h.inbox.Submit(r.Context(), message); err != nil {
			h.logger.Warn().Err(err).Msg("contact message rejected")
			h.flashes.add(w, r, Flash{Kind: flashError, Message: tr("contact.form.failed") + ": " + err.Error()})
		} else {
			h.flashes.add(w, r, Flash{Kind: flashSuccess, Message: tr("contact.form.sent")})
		}
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
	}
}

func (h pageHandler) caseStudy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := h.renderer.base(r, nil)

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.renderMissingProject(w, base)
			return
		}
		data := h.loader.CaseStudyPage(r.Context(), projectID)
		if data.Project == nil {
			h.renderMissingProject(w, base)
			return
		}

		h.renderer.Render(w, http.StatusOK, "case_study.html", caseStudyPage{
			pageData:  base,
			CaseStudy: portfolio.BuildCaseStudy(data.Project, data.CaseStudy, base.tr),
		})
	}
}

func (h pageHandler) renderMissingProject(w http.ResponseWriter, base pageData) {
	h.renderer.Render(w, http.StatusNotFound, "not_found.html", notFoundPage{
		pageData:  base,
		Message:   base.T("caseStudy.notFound"),
		BackURL:   "/#portfolio",
		BackLabel: base.T("caseStudy.back"),
	})
}

func (h pageHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := h.renderer.base(r, nil)
		h.renderer.Render(w, http.StatusNotFound, "not_found.html", notFoundPage{
			pageData:  base,
			Message:   base.T("notFound.subtitle"),
			BackURL:   "/",
			BackLabel: base.T("notFound.back"),
		})
	}
}

// setLanguage persists the visitor's locale and returns them to the page
// they came from.
func (h pageHandler) setLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if locale, ok := i18n.Supported(chi.URLParam(r, "lang")); ok {
			http.SetCookie(w, &http.Cookie{
				Name:     i18n.CookieName,
				Value:    string(locale),
				Path:     "/",
				MaxAge:   int(localeCookieMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   h.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		http.Redirect(w, r, localRedirect(r.Referer()), http.StatusSeeOther)
	}
}

// localRedirect keeps only the path and query of a referer so the redirect
// never leaves the site. Browsers read a backslash as a slash, so any path
// containing one is refused.
func localRedirect(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") ||
		strings.Contains(u.Path, "\\") {
		return "/"
	}
	target := u.Path
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}
