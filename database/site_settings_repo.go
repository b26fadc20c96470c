package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

type SiteSettingsRepo struct {
	db *gorm.DB
}

func NewSiteSettingsRepo(db *gorm.DB) *SiteSettingsRepo {
	return &SiteSettingsRepo{db}
}

// First returns the settings row, or nil when the table is empty.
func (r *SiteSettingsRepo) First(ctx context.Context) (*models.SiteSettings, error) {
	var rows []*models.SiteSettings
	err := r.db.WithContext(ctx).Order("updated_at ASC").Limit(1).Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

// Save inserts the row when it has no id yet and overwrites it otherwise.
func (r *SiteSettingsRepo) Save(ctx context.Context, settings *models.SiteSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
		return r.db.WithContext(ctx).Create(settings).Error
	}
	res := r.db.WithContext(ctx).
		Model(&models.SiteSettings{ID: settings.ID}).
		Select("*").Omit("id").
		Updates(settings)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("site settings")
	}
	return nil
}
