package portfolio

import (
	"strings"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site/i18n"
	"github.com/rpupo63/portfolio-site/models"
)

const (
	DefaultName      = "Your Name"
	DefaultPhotoURL  = "/static/profile-photo.svg"
	DefaultLinkedin  = "#"
	DefaultGithub    = "#"
	DefaultEmail     = "hello@example.com"
	placeholderCount = 4
)

// TechStack is the fixed list of tools shown on the home page.
var TechStack = []string{"SQL", "Looker Studio", "Google Sheets", "Data Analysis"}

type HeroView struct {
	Name          string `json:"name"`
	PhotoURL      string `json:"photo_url"`
	Title         string `json:"title"`
	Tagline       string `json:"tagline"`
	ShowAdminLink bool   `json:"show_admin_link"`
}

type AboutView struct {
	Text string `json:"text"`
}

// ProjectCard is one public project. LinksDisabled is set when neither link
// is usable; both buttons then render disabled.
type ProjectCard struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Tools            []string  `json:"tools"`
	CaseStudyEnabled bool      `json:"case_study_enabled"`
	CaseStudyURL     string    `json:"case_study_url,omitempty"`
	DashboardURL     string    `json:"dashboard_url,omitempty"`
	GithubURL        string    `json:"github_url,omitempty"`
	LinksDisabled    bool      `json:"links_disabled"`
}

type ProjectsView struct {
	Cards     []ProjectCard `json:"cards"`
	EmptyText string        `json:"empty_text,omitempty"`
}

type ContactView struct {
	LinkedinURL string `json:"linkedin_url"`
	GithubURL   string `json:"github_url"`
	Email       string `json:"email"`
	Text        string `json:"text"`
	Copyright   string `json:"copyright"`
}

func (c ContactView) MailtoURL() string {
	return "mailto:" + c.Email
}

type HomeView struct {
	Hero      HeroView     `json:"hero"`
	About     AboutView    `json:"about"`
	TechStack []string     `json:"tech_stack"`
	Projects  ProjectsView `json:"projects"`
	Contact   ContactView  `json:"contact"`
}

// BuildHome assembles the public home page. Every settings-driven section
// falls back to built-in text when the settings row or its field is empty.
func BuildHome(settings *models.SiteSettings, projects []*models.Project, caseStudies []*models.CaseStudy, t Translator, isAdmin bool) HomeView {
	if settings == nil {
		settings = &models.SiteSettings{}
	}

	return HomeView{
		Hero: HeroView{
			Name:          orDefault(settings.Name, DefaultName),
			PhotoURL:      orDefault(models.StringOrEmpty(settings.ProfileImageURL), DefaultPhotoURL),
			Title:         orDefault(settings.Title, t.T("hero.title")),
			Tagline:       orDefault(settings.Tagline, t.T("hero.subtitle")),
			ShowAdminLink: isAdmin,
		},
		About:     AboutView{Text: orDefault(settings.AboutText, t.T("about.default"))},
		TechStack: TechStack,
		Projects:  BuildProjects(projects, caseStudies, t),
		Contact: ContactView{
			LinkedinURL: orDefault(models.StringOrEmpty(settings.LinkedinURL), DefaultLinkedin),
			GithubURL:   orDefault(models.StringOrEmpty(settings.GithubURL), DefaultGithub),
			Email:       orDefault(models.StringOrEmpty(settings.Email), DefaultEmail),
			Text:        orDefault(settings.ContactText, t.T("contact.default")),
			Copyright:   t.T("contact.copyright"),
		},
	}
}

// BuildProjects lists the visible projects in the order given.
func BuildProjects(projects []*models.Project, caseStudies []*models.CaseStudy, t Translator) ProjectsView {
	withCaseStudy := make(map[uuid.UUID]bool, len(caseStudies))
	for _, cs := range caseStudies {
		withCaseStudy[cs.ProjectID] = true
	}

	view := ProjectsView{Cards: []ProjectCard{}}
	for _, p := range projects {
		if !p.IsVisible {
			continue
		}
		card := ProjectCard{
			ID:               p.ID,
			Title:            p.Title,
			Description:      p.Description,
			Tools:            nonNil(p.Tools),
			CaseStudyEnabled: withCaseStudy[p.ID],
		}
		if card.CaseStudyEnabled {
			card.CaseStudyURL = CaseStudyPath(p.ID)
		}
		if models.HasLink(p.DashboardURL) {
			card.DashboardURL = *p.DashboardURL
		}
		if models.HasLink(p.GithubURL) {
			card.GithubURL = *p.GithubURL
		}
		card.LinksDisabled = card.DashboardURL == "" && card.GithubURL == ""
		view.Cards = append(view.Cards, card)
	}

	if len(view.Cards) == 0 {
		view.EmptyText = t.T("projects.empty")
	}
	return view
}

func CaseStudyPath(projectID uuid.UUID) string {
	return "/case-study/" + projectID.String()
}

type GalleryTile struct {
	URL       string `json:"url"`
	FullWidth bool   `json:"full_width"`
}

// Gallery lays out case study images two per row. A lone image, or the last
// image of an odd count, spans the full row.
func Gallery(images []string) []GalleryTile {
	if len(images) == 0 {
		return nil
	}
	odd := len(images)%2 == 1
	tiles := make([]GalleryTile, len(images))
	for i, url := range images {
		tiles[i] = GalleryTile{
			URL:       url,
			FullWidth: odd && i == len(images)-1,
		}
	}
	return tiles
}

// CaseStudyView is the case study page. Synthesized is set when the project
// has no case study record and the whole page is placeholder content.
type CaseStudyView struct {
	ProjectID       uuid.UUID     `json:"project_id"`
	Title           string        `json:"title"`
	ProjectTools    []string      `json:"project_tools"`
	Overview        string        `json:"overview"`
	DataSources     string        `json:"data_sources"`
	ToolsUsed       []string      `json:"tools_used"`
	Approach        string        `json:"analytical_approach"`
	Insights        []string      `json:"key_insights"`
	Recommendations []string      `json:"recommendations"`
	Gallery         []GalleryTile `json:"gallery,omitempty"`
	Synthesized     bool          `json:"synthesized"`
}

// BuildCaseStudy fills every section of the case study page, using localized
// placeholder text for whatever the record is missing.
func BuildCaseStudy(project *models.Project, caseStudy *models.CaseStudy, t Translator) CaseStudyView {
	view := CaseStudyView{
		ProjectID:    project.ID,
		Title:        project.Title,
		ProjectTools: nonNil(project.Tools),
		Synthesized:  caseStudy == nil,
	}
	if caseStudy == nil {
		caseStudy = &models.CaseStudy{}
	}

	view.Overview = orDefault(caseStudy.Overview, defaultOverview(project.Description, t))
	view.DataSources = orDefault(caseStudy.DataSources, t.T("caseStudy.defaultDataSource"))
	view.Approach = orDefault(caseStudy.AnalyticalApproach, t.T("caseStudy.defaultApproach"))
	view.ToolsUsed = orDefaultList(caseStudy.ToolsUsed, view.ProjectTools)
	view.Insights = orDefaultList(caseStudy.KeyInsights, translateAll(t, i18n.Keys("caseStudy.defaultInsight", placeholderCount)))
	view.Recommendations = orDefaultList(caseStudy.Recommendations, translateAll(t, i18n.Keys("caseStudy.defaultRec", placeholderCount)))
	view.Gallery = Gallery(caseStudy.Images)
	return view
}

func defaultOverview(description string, t Translator) string {
	return description + "\n\n" + t.T("caseStudy.defaultOverview")
}

func translateAll(t Translator, keys []string) []string {
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = t.T(key)
	}
	return out
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func orDefaultList(values []string, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
