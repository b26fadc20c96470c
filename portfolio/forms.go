package portfolio

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

// SplitLines splits textarea input into one trimmed entry per non-blank line.
func SplitLines(s string) []string {
	return splitTrim(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// SplitComma splits comma separated input, dropping blank entries.
func SplitComma(s string) []string {
	return splitTrim(s, ",")
}

func splitTrim(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func JoinLines(values []string) string {
	return strings.Join(values, "\n")
}

func JoinComma(values []string) string {
	return strings.Join(values, ", ")
}

func parseOptionalID(values url.Values, field string) (uuid.UUID, error) {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewInvalidFieldError(field, "not a valid id")
	}
	return id, nil
}

func checked(values url.Values, field string) bool {
	switch strings.ToLower(values.Get(field)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func optional(values url.Values, field string) *string {
	return models.NilIfEmpty(strings.TrimSpace(values.Get(field)))
}

// ParseProjectForm builds a project draft from the admin form. A missing or
// unparsable display order counts as 0.
func ParseProjectForm(values url.Values) (*models.Project, error) {
	id, err := parseOptionalID(values, "id")
	if err != nil {
		return nil, err
	}
	order, err := strconv.Atoi(strings.TrimSpace(values.Get("display_order")))
	if err != nil {
		order = 0
	}

	return &models.Project{
		ID:           id,
		Title:        strings.TrimSpace(values.Get("title")),
		Description:  strings.TrimSpace(values.Get("description")),
		Tools:        SplitComma(values.Get("tools")),
		DashboardURL: optional(values, "dashboard_url"),
		GithubURL:    optional(values, "github_url"),
		DisplayOrder: order,
		IsVisible:    checked(values, "is_visible"),
	}, nil
}

// ParseCaseStudyForm builds a case study draft. Images arrive as repeated
// "images" fields; any URL also listed under "remove_image" is dropped.
func ParseCaseStudyForm(values url.Values) (*models.CaseStudy, error) {
	id, err := parseOptionalID(values, "id")
	if err != nil {
		return nil, err
	}
	projectID, err := parseOptionalID(values, "project_id")
	if err != nil {
		return nil, err
	}

	removed := make(map[string]bool, len(values["remove_image"]))
	for _, u := range values["remove_image"] {
		removed[strings.TrimSpace(u)] = true
	}
	images := []string{}
	for _, u := range values["images"] {
		if u = strings.TrimSpace(u); u != "" && !removed[u] {
			images = append(images, u)
		}
	}

	return &models.CaseStudy{
		ID:                 id,
		ProjectID:          projectID,
		Overview:           strings.TrimSpace(values.Get("overview")),
		DataSources:        strings.TrimSpace(values.Get("data_sources")),
		ToolsUsed:          SplitLines(values.Get("tools_used")),
		AnalyticalApproach: strings.TrimSpace(values.Get("analytical_approach")),
		KeyInsights:        SplitLines(values.Get("key_insights")),
		Recommendations:    SplitLines(values.Get("recommendations")),
		Images:             images,
	}, nil
}

func ParseSettingsForm(values url.Values) (*models.SiteSettings, error) {
	id, err := parseOptionalID(values, "id")
	if err != nil {
		return nil, err
	}

	return &models.SiteSettings{
		ID:              id,
		Name:            strings.TrimSpace(values.Get("name")),
		Title:           strings.TrimSpace(values.Get("title")),
		Tagline:         strings.TrimSpace(values.Get("tagline")),
		ProfileImageURL: optional(values, "profile_image_url"),
		LinkedinURL:     optional(values, "linkedin_url"),
		GithubURL:       optional(values, "github_url"),
		Email:           optional(values, "email"),
		AboutText:       strings.TrimSpace(values.Get("about_text")),
		ContactText:     strings.TrimSpace(values.Get("contact_text")),
	}, nil
}
