package portfolio

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

// Loader runs the read query behind each entity. Reads never fail: an error
// is logged and the empty state is returned instead, and there is no retry.
type Loader struct {
	stores Stores
	logger zerolog.Logger
}

func NewLoader(stores Stores) *Loader {
	return &Loader{
		stores: stores,
		logger: log.With().Str("component", "loader").Logger(),
	}
}

// Settings returns the singleton settings row, or nil when there is none.
func (l *Loader) Settings(ctx context.Context) *models.SiteSettings {
	settings, err := l.stores.Settings.First(ctx)
	if err != nil {
		l.logger.Warn().Err(err).Msg("failed to load site settings")
		return nil
	}
	return settings
}

// Projects returns every project ordered by display order.
func (l *Loader) Projects(ctx context.Context) []*models.Project {
	projects, err := l.stores.Projects.FindAll(ctx)
	if err != nil {
		l.logger.Warn().Err(err).Msg("failed to load projects")
		return []*models.Project{}
	}
	return projects
}

// Project returns nil both when the project does not exist and when the read fails.
func (l *Loader) Project(ctx context.Context, id uuid.UUID) *models.Project {
	project, err := l.stores.Projects.FindByID(ctx, id)
	if err != nil {
		if !errs.IsNotFound(err) {
			l.logger.Warn().Err(err).Str("projectID", id.String()).Msg("failed to load project")
		}
		return nil
	}
	return project
}

// CaseStudies returns every case study, newest first.
func (l *Loader) CaseStudies(ctx context.Context) []*models.CaseStudy {
	caseStudies, err := l.stores.CaseStudies.FindAll(ctx)
	if err != nil {
		l.logger.Warn().Err(err).Msg("failed to load case studies")
		return []*models.CaseStudy{}
	}
	return caseStudies
}

func (l *Loader) CaseStudyByProject(ctx context.Context, projectID uuid.UUID) *models.CaseStudy {
	caseStudy, err := l.stores.CaseStudies.FindByProjectID(ctx, projectID)
	if err != nil {
		l.logger.Warn().Err(err).Str("projectID", projectID.String()).Msg("failed to load case study")
		return nil
	}
	return caseStudy
}

// Messages returns every contact message, newest first.
func (l *Loader) Messages(ctx context.Context) []*models.ContactMessage {
	messages, err := l.stores.Messages.FindAll(ctx)
	if err != nil {
		l.logger.Warn().Err(err).Msg("failed to load contact messages")
		return []*models.ContactMessage{}
	}
	return messages
}

// HomeData is everything the home page reads.
type HomeData struct {
	Settings    *models.SiteSettings
	Projects    []*models.Project
	CaseStudies []*models.CaseStudy
}

// Home runs the home page reads concurrently and waits for all of them.
func (l *Loader) Home(ctx context.Context) HomeData {
	var data HomeData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Settings = l.Settings(gctx)
		return nil
	})
	g.Go(func() error {
		data.Projects = l.Projects(gctx)
		return nil
	})
	g.Go(func() error {
		data.CaseStudies = l.CaseStudies(gctx)
		return nil
	})
	_ = g.Wait()
	return data
}

// CaseStudyData is what the case study page reads.
type CaseStudyData struct {
	Project   *models.Project
	CaseStudy *models.CaseStudy
}

func (l *Loader) CaseStudyPage(ctx context.Context, projectID uuid.UUID) CaseStudyData {
	var data CaseStudyData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Project = l.Project(gctx, projectID)
		return nil
	})
	g.Go(func() error {
		data.CaseStudy = l.CaseStudyByProject(gctx, projectID)
		return nil
	})
	_ = g.Wait()
	return data
}

// AdminData is everything the admin panel lists.
type AdminData struct {
	Settings    *models.SiteSettings
	Projects    []*models.Project
	CaseStudies []*models.CaseStudy
	Messages    []*models.ContactMessage
}

func (l *Loader) Admin(ctx context.Context) AdminData {
	var data AdminData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Settings = l.Settings(gctx)
		return nil
	})
	g.Go(func() error {
		data.Projects = l.Projects(gctx)
		return nil
	})
	g.Go(func() error {
		data.CaseStudies = l.CaseStudies(gctx)
		return nil
	})
	g.Go(func() error {
		data.Messages = l.Messages(gctx)
		return nil
	})
	_ = g.Wait()
	return data
}
