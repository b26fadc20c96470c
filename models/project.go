package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project is a portfolio entry shown on the public site when IsVisible is set.
type Project struct {
	ID           uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string                      `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	Tools        datatypes.JSONSlice[string] `json:"tools" db:"tools" gorm:"not null"`
	DashboardURL *string                     `json:"dashboard_url" db:"dashboard_url" gorm:"type:text"`
	GithubURL    *string                     `json:"github_url" db:"github_url" gorm:"type:text"`
	DisplayOrder int                         `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0;index:idx_projects_display_order"`
	IsVisible    bool                        `json:"is_visible" db:"is_visible" gorm:"not null;default:true"`
	CreatedAt    time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

// HasLink reports whether url points somewhere; "#" is the site's placeholder.
func HasLink(url *string) bool {
	return url != nil && *url != "" && *url != "#"
}
