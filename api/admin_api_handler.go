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
	"github.com/rpupo63/portfolio-site/storage"
)

// adminAPIHandler is the JSON face of the admin panel. Deletes only go
// through with ?confirm=true.
type adminAPIHandler struct {
	responder Responder
	logger    zerolog.Logger
	loader    *portfolio.Loader
	admin     *portfolio.Admin
	uploader  *storage.Uploader
}

func newAdminAPIHandler(loader *portfolio.Loader, admin *portfolio.Admin, uploader *storage.Uploader) adminAPIHandler {
	logger := log.With().Str("handlerName", "adminAPIHandler").Logger()

	return adminAPIHandler{
		responder: NewResponder(logger),
		logger:    logger,
		loader:    loader,
		admin:     admin,
		uploader:  uploader,
	}
}

func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

func (h adminAPIHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.loader.Settings(r.Context()))
	}
}

func (h adminAPIHandler) saveSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings models.SiteSettings
		if err := decodeJSON(w, r, &settings, "site settings"); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.admin.SaveSettings(r.Context(), &settings); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, settings)
	}
}

func (h adminAPIHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects := h.loader.Projects(r.Context())
		h.responder.WriteJSON(w, AdminProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// createProject always inserts; an id in the body is ignored.
func (h adminAPIHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := decodeJSON(w, r, &project, "project"); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		project.ID = uuid.Nil
		h.writeProjectSave(w, r, &project)
	}
}

func (h adminAPIHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		var project models.Project
		if err := decodeJSON(w, r, &project, "project"); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		project.ID = projectID
		h.writeProjectSave(w, r, &project)
	}
}

func (h adminAPIHandler) writeProjectSave(w http.ResponseWriter, r *http.Request, project *models.Project) {
	created, err := h.admin.SaveProject(r.Context(), project)
	if err != nil {
		h.responder.WriteError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.responder.WriteJSONStatus(w, status, SaveResponse{Created: created, Data: project})
}

func (h adminAPIHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.admin.DeleteProject(r.Context(), projectID, confirmed(r)); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h adminAPIHandler) listCaseStudies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := h.loader.Admin(r.Context())
		h.responder.WriteJSON(w, CaseStudyCollection{
			CaseStudies:        data.CaseStudies,
			Total:              len(data.CaseStudies),
			CanCreateCaseStudy: portfolio.CanCreateCaseStudy(data.Projects, data.CaseStudies),
		})
	}
}

// availableProjects lists the projects a case study may be bound to. With
// ?editing=<case study id> the project of that case study is included.
func (h adminAPIHandler) availableProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := h.loader.Admin(r.Context())

		var editing *models.CaseStudy
		if raw := r.URL.Query().Get("editing"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("editing", "not a valid id"))
				return
			}
			for _, cs := range data.CaseStudies {
				if cs.ID == id {
					editing = cs
				}
			}
		}

		projects := portfolio.AvailableProjects(data.Projects, data.CaseStudies, editing)
		h.responder.WriteJSON(w, AdminProjectCollection{Projects: projects, Total: len(projects)})
	}
}

func (h adminAPIHandler) createCaseStudy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var caseStudy models.CaseStudy
		if err := decodeJSON(w, r, &caseStudy, "case study"); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		caseStudy.ID = uuid.Nil
		h.writeCaseStudySave(w, r, &caseStudy)
	}
}

func (h adminAPIHandler) updateCaseStudy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseStudyID, err := pathID(r, "caseStudyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		var caseStudy models.CaseStudy
		if err := decodeJSON(w, r, &caseStudy, "case study"); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		caseStudy.ID = caseStudyID
		h.writeCaseStudySave(w, r, &caseStudy)
	}
}

func (h adminAPIHandler) writeCaseStudySave(w http.ResponseWriter, r *http.Request, caseStudy *models.CaseStudy) {
	created, err := h.admin.SaveCaseStudy(r.Context(), caseStudy)
	if err != nil {
		h.responder.WriteError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.responder.WriteJSONStatus(w, status, SaveResponse{Created: created, Data: caseStudy})
}

func (h adminAPIHandler) deleteCaseStudy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseStudyID, err := pathID(r, "caseStudyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.admin.DeleteCaseStudy(r.Context(), caseStudyID, confirmed(r)); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h adminAPIHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages := h.loader.Messages(r.Context())
		h.responder.WriteJSON(w, MessageCollection{
			Messages: messages,
			Total:    len(messages),
			Unread:   portfolio.UnreadCount(messages),
		})
	}
}

func (h adminAPIHandler) toggleMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := pathID(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		message, err := h.admin.ToggleMessageRead(r.Context(), messageID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, message)
	}
}

func (h adminAPIHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := pathID(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.admin.DeleteMessage(r.Context(), messageID, confirmed(r)); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// upload stores the multipart "files" in the named bucket. Individual
// failures are reported alongside the URLs of the files that made it.
func (h adminAPIHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bucket := chi.URLParam(r, "bucket")
		prefix, ok := uploadPrefixes[bucket]
		if !ok {
			h.responder.WriteError(w, errs.NewUnknownBucketError(bucket))
			return
		}
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("upload", err))
			return
		}

		files, closeFiles, err := multipartFiles(r, "files")
		if err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("upload", err))
			return
		}
		defer closeFiles()
		if len(files) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("files"))
			return
		}

		urls, failures, err := h.uploader.UploadAll(r.Context(), bucket, prefix, files)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		response := UploadResponse{URLs: urls, Failures: []UploadFailure{}}
		if response.URLs == nil {
			response.URLs = []string{}
		}
		for _, f := range failures {
			response.Failures = append(response.Failures, UploadFailure{FileName: f.FileName, Error: f.Err.Error()})
		}
		h.responder.WriteJSON(w, response)
	}
}
