package portfolio

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

// Admin applies admin panel mutations. A record without an ID is inserted,
// one with an ID is updated; a single call never does both. Concurrent edits
// are last write wins.
type Admin struct {
	stores Stores
	now    func() time.Time
	logger zerolog.Logger
}

func NewAdmin(stores Stores) *Admin {
	return &Admin{
		stores: stores,
		now:    time.Now,
		logger: log.With().Str("component", "admin").Logger(),
	}
}

// SaveSettings writes the singleton settings row, creating it when the site
// has none yet.
func (a *Admin) SaveSettings(ctx context.Context, settings *models.SiteSettings) error {
	if settings.ID == uuid.Nil {
		existing, err := a.stores.Settings.First(ctx)
		if err != nil {
			return errs.NewDatabaseError("find", "site settings", err)
		}
		if existing != nil {
			settings.ID = existing.ID
		}
	}
	settings.UpdatedAt = a.now()

	if err := a.stores.Settings.Save(ctx, settings); err != nil {
		a.logger.Error().Err(err).Msg("failed to save site settings")
		return errs.NewDatabaseError("save", "site settings", err)
	}
	return nil
}

// SaveProject reports whether the project was created.
func (a *Admin) SaveProject(ctx context.Context, project *models.Project) (bool, error) {
	project.Title = strings.TrimSpace(project.Title)
	if project.Title == "" {
		return false, errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(project.Description) == "" {
		return false, errs.NewMissingRequiredFieldError("description")
	}
	if project.Tools == nil {
		project.Tools = []string{}
	}

	if project.ID == uuid.Nil {
		if err := a.stores.Projects.Add(ctx, project); err != nil {
			a.logger.Error().Err(err).Msg("failed to create project")
			return false, errs.NewDatabaseError("create", "project", err)
		}
		return true, nil
	}

	if _, err := a.stores.Projects.FindByID(ctx, project.ID); err != nil {
		return false, errs.NewDatabaseError("find", "project", err)
	}
	if err := a.stores.Projects.Update(ctx, project); err != nil {
		a.logger.Error().Err(err).Str("projectID", project.ID.String()).Msg("failed to update project")
		return false, errs.NewDatabaseError("update", "project", err)
	}
	return false, nil
}

// SaveCaseStudy reports whether the case study was created. The project must
// exist and may not already be bound to another case study.
func (a *Admin) SaveCaseStudy(ctx context.Context, caseStudy *models.CaseStudy) (bool, error) {
	if caseStudy.ProjectID == uuid.Nil {
		return false, errs.NewMissingRequiredFieldError("project_id")
	}
	if _, err := a.stores.Projects.FindByID(ctx, caseStudy.ProjectID); err != nil {
		if errs.IsNotFound(err) {
			return false, errs.NewInvalidFieldError("project_id", "project does not exist")
		}
		return false, errs.NewDatabaseError("find", "project", err)
	}

	bound, err := a.stores.CaseStudies.FindByProjectID(ctx, caseStudy.ProjectID)
	if err != nil {
		return false, errs.NewDatabaseError("find", "case study", err)
	}
	if bound != nil && bound.ID != caseStudy.ID {
		return false, errs.NewConflictError("project already has a case study")
	}
	normalizeCaseStudy(caseStudy)

	if caseStudy.ID == uuid.Nil {
		if err := a.stores.CaseStudies.Add(ctx, caseStudy); err != nil {
			a.logger.Error().Err(err).Msg("failed to create case study")
			return false, errs.NewDatabaseError("create", "case study", err)
		}
		return true, nil
	}

	if _, err := a.stores.CaseStudies.FindByID(ctx, caseStudy.ID); err != nil {
		return false, errs.NewDatabaseError("find", "case study", err)
	}
	caseStudy.UpdatedAt = a.now()
	if err := a.stores.CaseStudies.Update(ctx, caseStudy); err != nil {
		a.logger.Error().Err(err).Str("caseStudyID", caseStudy.ID.String()).Msg("failed to update case study")
		return false, errs.NewDatabaseError("update", "case study", err)
	}
	return false, nil
}

func normalizeCaseStudy(cs *models.CaseStudy) {
	if cs.ToolsUsed == nil {
		cs.ToolsUsed = []string{}
	}
	if cs.KeyInsights == nil {
		cs.KeyInsights = []string{}
	}
	if cs.Recommendations == nil {
		cs.Recommendations = []string{}
	}
	if cs.Images == nil {
		cs.Images = []string{}
	}
}

// DeleteProject also removes the project's case study.
func (a *Admin) DeleteProject(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return errs.NewConfirmationRequiredError("project")
	}
	if err := a.stores.Projects.Delete(ctx, id); err != nil {
		a.logger.Error().Err(err).Str("projectID", id.String()).Msg("failed to delete project")
		return errs.NewDatabaseError("delete", "project", err)
	}
	return nil
}

// DeleteCaseStudy leaves the project in place.
func (a *Admin) DeleteCaseStudy(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return errs.NewConfirmationRequiredError("case study")
	}
	if err := a.stores.CaseStudies.Delete(ctx, id); err != nil {
		a.logger.Error().Err(err).Str("caseStudyID", id.String()).Msg("failed to delete case study")
		return errs.NewDatabaseError("delete", "case study", err)
	}
	return nil
}

func (a *Admin) DeleteMessage(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return errs.NewConfirmationRequiredError("message")
	}
	if err := a.stores.Messages.Delete(ctx, id); err != nil {
		a.logger.Error().Err(err).Str("messageID", id.String()).Msg("failed to delete message")
		return errs.NewDatabaseError("delete", "message", err)
	}
	return nil
}

func (a *Admin) ToggleMessageRead(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	message, err := a.stores.Messages.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "message", err)
	}
	if err := a.stores.Messages.SetRead(ctx, id, !message.IsRead); err != nil {
		a.logger.Error().Err(err).Str("messageID", id.String()).Msg("failed to update message")
		return nil, errs.NewDatabaseError("update", "message", err)
	}
	message.IsRead = !message.IsRead
	return message, nil
}

// AvailableProjects lists the projects a case study form may bind to: those
// without a case study, plus the project of the case study being edited.
func AvailableProjects(projects []*models.Project, caseStudies []*models.CaseStudy, editing *models.CaseStudy) []*models.Project {
	taken := make(map[uuid.UUID]bool, len(caseStudies))
	for _, cs := range caseStudies {
		taken[cs.ProjectID] = true
	}

	available := []*models.Project{}
	for _, p := range projects {
		if editing != nil && editing.ProjectID == p.ID {
			available = append(available, p)
			continue
		}
		if !taken[p.ID] {
			available = append(available, p)
		}
	}
	return available
}

// CanCreateCaseStudy is false once every project has a case study.
func CanCreateCaseStudy(projects []*models.Project, caseStudies []*models.CaseStudy) bool {
	return len(AvailableProjects(projects, caseStudies, nil)) > 0
}

// UnreadCount counts messages not yet marked read.
func UnreadCount(messages []*models.ContactMessage) int {
	n := 0
	for _, m := range messages {
		if !m.IsRead {
			n++
		}
	}
	return n
}
