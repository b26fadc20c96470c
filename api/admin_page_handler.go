package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/portfolio"
	"github.com/rpupo63/portfolio-site/storage"
)

const (
	tabSettings    = "settings"
	tabProjects    = "projects"
	tabCaseStudies = "case-studies"
	tabMessages    = "messages"
)

var adminTabs = []struct {
	key   string
	label string
}{
	{tabSettings, "admin.tab.settings"},
	{tabProjects, "admin.tab.projects"},
	{tabCaseStudies, "admin.tab.caseStudies"},
	{tabMessages, "admin.tab.messages"},
}

type adminTab struct {
	Key    string
	Label  string
	Active bool
}

// adminPage is the data of the admin panel. EditProject and EditCaseStudy
// are set while the corresponding form is open.
type adminPage struct {
	pageData
	Tab                string
	Tabs               []adminTab
	Settings           *models.SiteSettings
	Projects           []*models.Project
	CaseStudies        []*models.CaseStudy
	Messages           []*models.ContactMessage
	Unread             int
	ProjectTitles      map[uuid.UUID]string
	EditProject        *models.Project
	EditCaseStudy      *models.CaseStudy
	AvailableProjects  []*models.Project
	CanCreateCaseStudy bool
}

type confirmDeletePage struct {
	pageData
	Subject   string
	Action    string
	CancelURL string
}

type deleteTarget struct {
	tab    string
	remove func(ctx context.Context, id uuid.UUID, confirmed bool) error
}

// adminPageHandler serves the server rendered admin panel. Every successful
// mutation redirects back to its tab; a rejected form is shown again with
// the submitted values.
type adminPageHandler struct {
	renderer *Renderer
	loader   *portfolio.Loader
	admin    *portfolio.Admin
	uploader *storage.Uploader
	flashes  flashStore
	logger   zerolog.Logger
	targets  map[string]deleteTarget
}

func newAdminPageHandler(renderer *Renderer, loader *portfolio.Loader, admin *portfolio.Admin, uploader *storage.Uploader, flashes flashStore) adminPageHandler {
	return adminPageHandler{
		renderer: renderer,
		loader:   loader,
		admin:    admin,
		uploader: uploader,
		flashes:  flashes,
		logger:   log.With().Str("handlerName", "adminPageHandler").Logger(),
		targets: map[string]deleteTarget{
			tabProjects:    {tab: tabProjects, remove: admin.DeleteProject},
			tabCaseStudies: {tab: tabCaseStudies, remove: admin.DeleteCaseStudy},
			tabMessages:    {tab: tabMessages, remove: admin.DeleteMessage},
		},
	}
}

func tabURL(tab string) string {
	return "/admin?tab=" + url.QueryEscape(tab)
}

func validTab(tab string) string {
	for _, t := range adminTabs {
		if t.key == tab {
			return tab
		}
	}
	return tabSettings
}

// build loads the panel for tab. A nil settings row becomes an empty draft.
func (h adminPageHandler) build(r *http.Request, tab string, flashes []Flash) adminPage {
	base := h.renderer.base(r, flashes)
	data := h.loader.Admin(r.Context())

	page := adminPage{
		pageData:           base,
		Tab:                tab,
		Settings:           data.Settings,
		Projects:           data.Projects,
		CaseStudies:        data.CaseStudies,
		Messages:           data.Messages,
		Unread:             portfolio.UnreadCount(data.Messages),
		ProjectTitles:      make(map[uuid.UUID]string, len(data.Projects)),
		CanCreateCaseStudy: portfolio.CanCreateCaseStudy(data.Projects, data.CaseStudies),
	}
	if page.Settings == nil {
		page.Settings = &models.SiteSettings{}
	}
	for _, t := range adminTabs {
		page.Tabs = append(page.Tabs, adminTab{Key: t.key, Label: base.T(t.label), Active: t.key == tab})
	}
	for _, p := range data.Projects {
		page.ProjectTitles[p.ID] = p.Title
	}
	return page
}

func (h adminPageHandler) withAvailableProjects(page *adminPage) {
	page.AvailableProjects = portfolio.AvailableProjects(page.Projects, page.CaseStudies, page.EditCaseStudy)
}

// show renders GET /admin. ?edit=<id> opens the edit form of a project or
// case study, ?new=1 an empty one.
func (h adminPageHandler) show() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		tab := validTab(query.Get("tab"))
		page := h.build(r, tab, h.flashes.pop(w, r))

		editID, _ := uuid.Parse(query.Get("edit"))
		opening := query.Get("new") != ""

		switch tab {
		case tabProjects:
			if opening {
				page.EditProject = &models.Project{IsVisible: true, Tools: []string{}}
			}
			for _, p := range page.Projects {
				if editID != uuid.Nil && p.ID == editID {
					page.EditProject = p
				}
			}
		case tabCaseStudies:
			if opening && page.CanCreateCaseStudy {
				page.EditCaseStudy = &models.CaseStudy{}
			}
			for _, cs := range page.CaseStudies {
				if editID != uuid.Nil && cs.ID == editID {
					page.EditCaseStudy = cs
				}
			}
			h.withAvailableProjects(&page)
		}

		h.renderer.Render(w, http.StatusOK, "admin.html", page)
	}
}

// formErrorStatus keeps server faults visible and reports everything else
// as a rejected form.
func formErrorStatus(err error) int {
	if status := errs.StatusOf(err); status >= http.StatusInternalServerError {
		return status
	}
	return http.StatusUnprocessableEntity
}

func (h adminPageHandler) failure(prefix string, err error) Flash {
	return Flash{Kind: flashError, Message: prefix + ": " + err.Error()}
}

// uploadFiles stores the files submitted under field. Each failed file
// yields an error flash; the rest still upload.
func (h adminPageHandler) uploadFiles(r *http.Request, tr func(string) string, field, bucket string) ([]string, []Flash) {
	files, closeFiles, err := multipartFiles(r, field)
	defer closeFiles()
	if err != nil {
		return nil, []Flash{h.failure(tr("admin.uploadFailed"), err)}
	}
	if len(files) == 0 {
		return nil, nil
	}

	urls, failures, err := h.uploader.UploadAll(r.Context(), bucket, uploadPrefixes[bucket], files)
	if err != nil {
		return nil, []Flash{h.failure(tr("admin.uploadFailed"), err)}
	}

	var flashes []Flash
	for _, f := range failures {
		h.logger.Warn().Err(f.Err).Str("file", f.FileName).Str("bucket", bucket).Msg("upload failed")
		flashes = append(flashes, Flash{Kind: flashError, Message: tr("admin.uploadFailed") + " " + f.FileName})
	}
	if len(urls) > 0 {
		flashes = append(flashes, Flash{Kind: flashSuccess, Message: tr("admin.uploaded")})
	}
	return urls, flashes
}

func (h adminPageHandler) saveSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr := ctxGetTranslator(r.Context()).T
		if err := parseAdminForm(r); err != nil {
			h.rejectSettings(w, r, &models.SiteSettings{}, []Flash{h.failure(tr("admin.saveFailed"), err)}, http.StatusBadRequest)
			return
		}

		draft, err := portfolio.ParseSettingsForm(r.PostForm)
		if err != nil {
			h.rejectSettings(w, r, &models.SiteSettings{}, []Flash{h.failure(tr("admin.saveFailed"), err)}, formErrorStatus(err))
			return
		}

		urls, flashes := h.uploadFiles(r, tr, "profile_image_file", storage.ProfileImages)
		if len(urls) > 0 {
			draft.ProfileImageURL = &urls[0]
		}

		if err := h.admin.SaveSettings(r.Context(), draft); err != nil {
			h.logger.Error().Err(err).Msg("failed to save site settings")
			flashes = append(flashes, h.failure(tr("admin.saveFailed"), err))
			h.rejectSettings(w, r, draft, flashes, formErrorStatus(err))
			return
		}

		flashes = append(flashes, Flash{Kind: flashSuccess, Message: tr("admin.saved")})
		h.flashes.add(w, r, flashes...)
		http.Redirect(w, r, tabURL(tabSettings), http.StatusSeeOther)
	}
}

func (h adminPageHandler) rejectSettings(w http.ResponseWriter, r *http.Request, draft *models.SiteSettings, flashes []Flash, status int) {
	page := h.build(r, tabSettings, flashes)
	page.Settings = draft
	h.renderer.Render(w, status, "admin.html", page)
}

func (h adminPageHandler) saveProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr := ctxGetTranslator(r.Context()).T
		if err := parseAdminForm(r); err != nil {
			h.rejectProject(w, r, &models.Project{}, h.failure(tr("admin.saveFailed"), err), http.StatusBadRequest)
			return
		}

		draft, err := portfolio.ParseProjectForm(r.PostForm)
		if err != nil {
			h.rejectProject(w, r, &models.Project{}, h.failure(tr("admin.saveFailed"), err), formErrorStatus(err))
			return
		}

		created, err := h.admin.SaveProject(r.Context(), draft)
		if err != nil {
			h.logger.Warn().Err(err).Str("projectID", draft.ID.String()).Msg("project rejected")
			h.rejectProject(w, r, draft, h.failure(tr("admin.saveFailed"), err), formErrorStatus(err))
			return
		}

		message := tr("admin.updated")
		if created {
			message = tr("admin.created")
		}
		h.flashes.add(w, r, Flash{Kind: flashSuccess, Message: message})
		http.Redirect(w, r, tabURL(tabProjects), http.StatusSeeOther)
	}
}

func (h adminPageHandler) rejectProject(w http.ResponseWriter, r *http.Request, draft *models.Project, flash Flash, status int) {
	page := h.build(r, tabProjects, []Flash{flash})
	page.EditProject = draft
	h.renderer.Render(w, status, "admin.html", page)
}

// saveCaseStudy appends newly uploaded images to the submitted ones before
// saving, so a rejected form still shows them.
func (h adminPageHandler) saveCaseStudy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr := ctxGetTranslator(r.Context()).T
		if err := parseAdminForm(r); err != nil {
			h.rejectCaseStudy(w, r, &models.CaseStudy{}, []Flash{h.failure(tr("admin.saveFailed"), err)}, http.StatusBadRequest)
			return
		}

		draft, err := portfolio.ParseCaseStudyForm(r.PostForm)
		if err != nil {
			h.rejectCaseStudy(w, r, &models.CaseStudy{}, []Flash{h.failure(tr("admin.saveFailed"), err)}, formErrorStatus(err))
			return
		}

		urls, flashes := h.uploadFiles(r, tr, "image_files", storage.CaseStudyImages)
		draft.Images = append(draft.Images, urls...)

		created, err := h.admin.SaveCaseStudy(r.Context(), draft)
		if err != nil {
			h.logger.Warn().Err(err).Str("projectID", draft.ProjectID.String()).Msg("case study rejected")
			flashes = append(flashes, h.failure(tr("admin.saveFailed"), err))
			if len(urls) > 0 {
				flashes = append(flashes, Flash{Kind: flashError, Message: tr("admin.rememberSave")})
			}
			h.rejectCaseStudy(w, r, draft, flashes, formErrorStatus(err))
			return
		}

		message := tr("admin.updated")
		if created {
			message = tr("admin.created")
		}
		flashes = append(flashes, Flash{Kind: flashSuccess, Message: message})
		h.flashes.add(w, r, flashes...)
		http.Redirect(w, r, tabURL(tabCaseStudies), http.StatusSeeOther)
	}
}

func (h adminPageHandler) rejectCaseStudy(w http.ResponseWriter, r *http.Request, draft *models.CaseStudy, flashes []Flash, status int) {
	page := h.build(r, tabCaseStudies, flashes)
	page.EditCaseStudy = draft
	h.withAvailableProjects(&page)
	h.renderer.Render(w, status, "admin.html", page)
}

// subject names the record a delete confirmation is about.
func (h adminPageHandler) subject(ctx context.Context, kind string, id uuid.UUID) (string, bool) {
	switch kind {
	case tabProjects:
		if p := h.loader.Project(ctx, id); p != nil {
			return p.Title, true
		}
	case tabCaseStudies:
		for _, cs := range h.loader.CaseStudies(ctx) {
			if cs.ID != id {
				continue
			}
			if p := h.loader.Project(ctx, cs.ProjectID); p != nil {
				return p.Title, true
			}
			return cs.ID.String(), true
		}
	case tabMessages:
		for _, m := range h.loader.Messages(ctx) {
			if m.ID == id {
				return m.Name + " <" + m.Email + ">", true
			}
		}
	}
	return "", false
}

func (h adminPageHandler) confirmDelete(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := h.targets[kind]
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Redirect(w, r, tabURL(target.tab), http.StatusSeeOther)
			return
		}

		subject, ok := h.subject(r.Context(), kind, id)
		if !ok {
			tr := ctxGetTranslator(r.Context()).T
			h.flashes.add(w, r, Flash{Kind: flashError, Message: tr("admin.deleteFailed") + ": " + errs.NewNotFound(kind).Error()})
			http.Redirect(w, r, tabURL(target.tab), http.StatusSeeOther)
			return
		}

		h.renderer.Render(w, http.StatusOK, "confirm_delete.html", confirmDeletePage{
			pageData:  h.renderer.base(r, nil),
			Subject:   subject,
			Action:    "/admin/" + kind + "/" + id.String() + "/delete",
			CancelURL: tabURL(target.tab),
		})
	}
}

// delete removes a record once the confirmation form was submitted. Without
// confirm=true the visitor is sent to the confirmation page instead.
func (h adminPageHandler) delete(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr := ctxGetTranslator(r.Context()).T
		target := h.targets[kind]
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.flashes.add(w, r, h.failure(tr("admin.deleteFailed"), errs.NewInvalidFieldError("id", "not a valid id")))
			http.Redirect(w, r, tabURL(target.tab), http.StatusSeeOther)
			return
		}

		err = target.remove(r.Context(), id, r.PostFormValue("confirm") == "true")
		switch {
		case errs.IsConfirmationRequired(err):
			http.Redirect(w, r, "/admin/"+kind+"/"+id.String()+"/delete", http.StatusSeeOther)
			return
		case err != nil:
			h.logger.Warn().Err(err).Str("kind", kind).Str("id", id.String()).Msg("delete failed")
			h.flashes.add(w, r, h.failure(tr("admin.deleteFailed"), err))
		default:
			h.flashes.add(w, r, Flash{Kind: flashSuccess, Message: tr("admin.deleted")})
		}
		http.Redirect(w, r, tabURL(target.tab), http.StatusSeeOther)
	}
}

func (h adminPageHandler) toggleMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err == nil {
			_, err = h.admin.ToggleMessageRead(r.Context(), id)
		}
		if err != nil {
			tr := ctxGetTranslator(r.Context()).T
			h.logger.Warn().Err(err).Msg("failed to toggle message read state")
			h.flashes.add(w, r, h.failure(tr("admin.saveFailed"), err))
		}
		http.Redirect(w, r, tabURL(tabMessages), http.StatusSeeOther)
	}
}
