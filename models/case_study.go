package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CaseStudy is the long-form write-up of a single project. ProjectID is unique,
// so a project has at most one case study.
type CaseStudy struct {
	ID                 uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID          uuid.UUID                   `json:"project_id" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_case_studies_project_id"`
	Overview           string                      `json:"overview" db:"overview" gorm:"type:text;not null;default:''"`
	DataSources        string                      `json:"data_sources" db:"data_sources" gorm:"type:text;not null;default:''"`
	ToolsUsed          datatypes.JSONSlice[string] `json:"tools_used" db:"tools_used" gorm:"not null"`
	AnalyticalApproach string                      `json:"analytical_approach" db:"analytical_approach" gorm:"type:text;not null;default:''"`
	KeyInsights        datatypes.JSONSlice[string] `json:"key_insights" db:"key_insights" gorm:"not null"`
	Recommendations    datatypes.JSONSlice[string] `json:"recommendations" db:"recommendations" gorm:"not null"`
	Images             datatypes.JSONSlice[string] `json:"images" db:"images" gorm:"not null"`
	CreatedAt          time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt          time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`

	Project *Project `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
