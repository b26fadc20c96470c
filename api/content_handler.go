package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/portfolio"
)

// contentHandler serves the public site content as JSON.
type contentHandler struct {
	responder Responder
	logger    zerolog.Logger
	loader    *portfolio.Loader
	inbox     *portfolio.Inbox
}

func newContentHandler(loader *portfolio.Loader, inbox *portfolio.Inbox) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		loader:    loader,
		inbox:     inbox,
	}
}

func pathID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + param)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + param)
	}
	return id, nil
}

func (h contentHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxGetSession(r.Context())
		data := h.loader.Home(r.Context())
		view := portfolio.BuildHome(data.Settings, data.Projects, data.CaseStudies,
			ctxGetTranslator(r.Context()), session != nil && session.IsAdmin)
		h.responder.WriteJSON(w, view)
	}
}

// getSettings responds with null when the site has no settings row yet.
func (h contentHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.loader.Settings(r.Context()))
	}
}

// getProjects lists the visible projects.
func (h contentHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := h.loader.Home(r.Context())
		view := portfolio.BuildProjects(data.Projects, data.CaseStudies, ctxGetTranslator(r.Context()))
		h.responder.WriteJSON(w, ProjectCollection{Projects: view.Cards, Total: len(view.Cards)})
	}
}

func (h contentHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := h.loader.Project(r.Context(), projectID)
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// getProjectCaseStudy always answers with complete content for an existing
// project, synthesizing placeholders when no case study was written.
func (h contentHandler) getProjectCaseStudy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		data := h.loader.CaseStudyPage(r.Context(), projectID)
		if data.Project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}
		h.responder.WriteJSON(w, portfolio.BuildCaseStudy(data.Project, data.CaseStudy, ctxGetTranslator(r.Context())))
	}
}

func (h contentHandler) getCaseStudies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseStudies := h.loader.CaseStudies(r.Context())
		h.responder.WriteJSON(w, CaseStudyCollection{CaseStudies: caseStudies, Total: len(caseStudies)})
	}
}

func (h contentHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := decodeJSON(w, r, &req, "contact message"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := &models.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
		if err := h.inbox.Submit(r.Context(), message); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, map[string]string{"status": "received"})
	}
}
