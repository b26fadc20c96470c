package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog"

	"github.com/rpupo63/portfolio-site/auth"
	"github.com/rpupo63/portfolio-site/i18n"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/portfolio"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = []string{
	"home.html",
	"case_study.html",
	"not_found.html",
	"auth.html",
	"admin.html",
	"confirm_delete.html",
}

var templateFuncs = template.FuncMap{
	"joinLines": portfolio.JoinLines,
	"joinComma": portfolio.JoinComma,
	"deref":     models.StringOrEmpty,
	"date": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
	// formID renders a hidden id field value; unsaved records have none.
	"formID": func(id uuid.UUID) string {
		if id == uuid.Nil {
			return ""
		}
		return id.String()
	},
}

// pageData is embedded in every page's data. Templates translate with
// {{$.T "key"}}.
type pageData struct {
	Locale    i18n.Locale
	Session   *auth.Session
	CSRFField template.HTML
	Flashes   []Flash
	tr        i18n.Translator
}

func (p pageData) T(key string) string {
	return p.tr.T(key)
}

func (p pageData) IsAdmin() bool {
	return p.Session != nil && p.Session.IsAdmin
}

type Renderer struct {
	pages  map[string]*template.Template
	logger zerolog.Logger
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		tmpl, err := template.New("layout.html").Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		pages[page] = tmpl
	}
	return &Renderer{pages: pages, logger: logger}, nil
}

// base builds the per-request part of every page.
func (rd *Renderer) base(r *http.Request, flashes []Flash) pageData {
	t := ctxGetTranslator(r.Context())
	return pageData{
		Locale:    t.Locale(),
		Session:   ctxGetSession(r.Context()),
		CSRFField: csrf.TemplateField(r),
		Flashes:   flashes,
		tr:        t,
	}
}

// Render writes page with the given status. The page is rendered to a
// buffer first so a template error never leaves a half-written response.
func (rd *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := rd.pages[page]
	if !ok {
		rd.logger.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		rd.logger.Error().Err(err).Str("page", page).Msg("failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		rd.logger.Error().Err(err).Str("page", page).Msg("error writing page")
	}
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
