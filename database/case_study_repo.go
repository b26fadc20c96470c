package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

type CaseStudyRepo struct {
	db *gorm.DB
}

func NewCaseStudyRepo(db *gorm.DB) *CaseStudyRepo {
	return &CaseStudyRepo{db}
}

// FindAll returns all case studies, newest first
func (r *CaseStudyRepo) FindAll(ctx context.Context) ([]*models.CaseStudy, error) {
	var caseStudies []*models.CaseStudy
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&caseStudies).Error
	return caseStudies, err
}

func (r *CaseStudyRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.CaseStudy, error) {
	var caseStudy models.CaseStudy
	err := r.db.WithContext(ctx).First(&caseStudy, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("case study")
	}
	if err != nil {
		return nil, err
	}
	return &caseStudy, nil
}

// FindByProjectID returns the case study bound to a project, or nil when the
// project has none.
func (r *CaseStudyRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) (*models.CaseStudy, error) {
	var rows []*models.CaseStudy
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Limit(1).Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *CaseStudyRepo) Add(ctx context.Context, caseStudy *models.CaseStudy) error {
	if caseStudy.ID == uuid.Nil {
		caseStudy.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(caseStudy).Error
}

func (r *CaseStudyRepo) Update(ctx context.Context, caseStudy *models.CaseStudy) error {
	caseStudy.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.CaseStudy{ID: caseStudy.ID}).
		Select("*").Omit("id", "created_at", "Project").
		Updates(caseStudy)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("case study")
	}
	return nil
}

// Delete removes the case study only; the project is left untouched.
func (r *CaseStudyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.CaseStudy{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("case study")
	}
	return nil
}
