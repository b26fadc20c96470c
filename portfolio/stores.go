// Package portfolio holds the site's content rules: how each entity is
// loaded, how the public pages are assembled from it, and how the admin panel
// changes it.
package portfolio

import (
	"context"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site/models"
)

type SettingsStore interface {
	First(ctx context.Context) (*models.SiteSettings, error)
	Save(ctx context.Context, settings *models.SiteSettings) error
}

type ProjectStore interface {
	FindAll(ctx context.Context) ([]*models.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CaseStudyStore interface {
	FindAll(ctx context.Context) ([]*models.CaseStudy, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CaseStudy, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) (*models.CaseStudy, error)
	Add(ctx context.Context, caseStudy *models.CaseStudy) error
	Update(ctx context.Context, caseStudy *models.CaseStudy) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MessageStore interface {
	FindAll(ctx context.Context) ([]*models.ContactMessage, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	Add(ctx context.Context, message *models.ContactMessage) error
	SetRead(ctx context.Context, id uuid.UUID, read bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Stores bundles every store the package works with.
type Stores struct {
	Settings    SettingsStore
	Projects    ProjectStore
	CaseStudies CaseStudyStore
	Messages    MessageStore
}

// Translator resolves a localized string for a key.
type Translator interface {
	T(key string) string
}
