package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettings is the single row of owner profile data read by the public site.
type SiteSettings struct {
	ID              uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name            string    `json:"name" db:"name" gorm:"type:text;not null;default:''"`
	Title           string    `json:"title" db:"title" gorm:"type:text;not null;default:''"`
	Tagline         string    `json:"tagline" db:"tagline" gorm:"type:text;not null;default:''"`
	ProfileImageURL *string   `json:"profile_image_url" db:"profile_image_url" gorm:"type:text"`
	LinkedinURL     *string   `json:"linkedin_url" db:"linkedin_url" gorm:"type:text"`
	GithubURL       *string   `json:"github_url" db:"github_url" gorm:"type:text"`
	Email           *string   `json:"email" db:"email" gorm:"type:text"`
	AboutText       string    `json:"about_text" db:"about_text" gorm:"type:text;not null;default:''"`
	ContactText     string    `json:"contact_text" db:"contact_text" gorm:"type:text;not null;default:''"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

// TableName pins the table name; the row is a singleton.
func (SiteSettings) TableName() string {
	return "site_settings"
}

// StringOrEmpty dereferences an optional column.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NilIfEmpty stores blank form input as NULL.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
