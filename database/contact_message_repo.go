package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// FindAll returns the inbox, newest first
func (r *ContactMessageRepo) FindAll(ctx context.Context) ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *ContactMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("contact message")
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *ContactMessageRepo) Add(ctx context.Context, message *models.ContactMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *ContactMessageRepo) SetRead(ctx context.Context, id uuid.UUID, read bool) error {
	res := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", read)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("contact message")
	}
	return nil
}

func (r *ContactMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("contact message")
	}
	return nil
}
