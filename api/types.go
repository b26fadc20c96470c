package api

import (
	"github.com/rpupo63/portfolio-site/auth"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/portfolio"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler     pageHandler
	authHandler     authHandler
	adminPage       adminPageHandler
	contentHandler  contentHandler
	adminAPIHandler adminAPIHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string        `json:"token"`
	Session *auth.Session `json:"session"`
}

type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	Session       *auth.Session `json:"session,omitempty"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ProjectCollection struct {
	Projects []portfolio.ProjectCard `json:"projects"`
	Total    int                     `json:"total"`
}

type AdminProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

type CaseStudyCollection struct {
	CaseStudies        []*models.CaseStudy `json:"case_studies"`
	Total              int                 `json:"total"`
	CanCreateCaseStudy bool                `json:"can_create_case_study,omitempty"`
}

type MessageCollection struct {
	Messages []*models.ContactMessage `json:"messages"`
	Total    int                      `json:"total"`
	Unread   int                      `json:"unread"`
}

type SaveResponse struct {
	Created bool `json:"created"`
	Data    any  `json:"data"`
}

type UploadFailure struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

type UploadResponse struct {
	URLs     []string        `json:"urls"`
	Failures []UploadFailure `json:"failures"`
}
