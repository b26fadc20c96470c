package portfolio

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

type mockSettingsStore struct {
	row     *models.SiteSettings
	err     error
	inserts int
	updates int
}

func (m *mockSettingsStore) First(context.Context) (*models.SiteSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.row, nil
}

func (m *mockSettingsStore) Save(_ context.Context, s *models.SiteSettings) error {
	if m.err != nil {
		return m.err
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
		m.inserts++
	} else {
		m.updates++
	}
	m.row = s
	return nil
}

type mockProjectStore struct {
	rows    []*models.Project
	err     error
	adds    int
	updates int
	deletes []uuid.UUID
}

func (m *mockProjectStore) FindAll(context.Context) ([]*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := append([]*models.Project(nil), m.rows...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *mockProjectStore) FindByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errs.NewNotFound("project")
}

func (m *mockProjectStore) Add(_ context.Context, p *models.Project) error {
	if m.err != nil {
		return m.err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.adds++
	m.rows = append(m.rows, p)
	return nil
}

func (m *mockProjectStore) Update(_ context.Context, p *models.Project) error {
	if m.err != nil {
		return m.err
	}
	for i, row := range m.rows {
		if row.ID == p.ID {
			m.rows[i] = p
			m.updates++
			return nil
		}
	}
	return errs.NewNotFound("project")
}

func (m *mockProjectStore) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.deletes = append(m.deletes, id)
	for i, row := range m.rows {
		if row.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return errs.NewNotFound("project")
}

type mockCaseStudyStore struct {
	rows    []*models.CaseStudy
	err     error
	adds    int
	updates int
	deletes []uuid.UUID
}

func (m *mockCaseStudyStore) FindAll(context.Context) ([]*models.CaseStudy, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]*models.CaseStudy(nil), m.rows...), nil
}

func (m *mockCaseStudyStore) FindByID(_ context.Context, id uuid.UUID) (*models.CaseStudy, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, cs := range m.rows {
		if cs.ID == id {
			return cs, nil
		}
	}
	return nil, errs.NewNotFound("case study")
}

func (m *mockCaseStudyStore) FindByProjectID(_ context.Context, projectID uuid.UUID) (*models.CaseStudy, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, cs := range m.rows {
		if cs.ProjectID == projectID {
			return cs, nil
		}
	}
	return nil, nil
}

func (m *mockCaseStudyStore) Add(_ context.Context, cs *models.CaseStudy) error {
	if m.err != nil {
		return m.err
	}
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	m.adds++
	m.rows = append(m.rows, cs)
	return nil
}

func (m *mockCaseStudyStore) Update(_ context.Context, cs *models.CaseStudy) error {
	if m.err != nil {
		return m.err
	}
	for i, row := range m.rows {
		if row.ID == cs.ID {
			m.rows[i] = cs
			m.updates++
			return nil
		}
	}
	return errs.NewNotFound("case study")
}

func (m *mockCaseStudyStore) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.deletes = append(m.deletes, id)
	for i, row := range m.rows {
		if row.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return errs.NewNotFound("case study")
}

type mockMessageStore struct {
	rows    []*models.ContactMessage
	err     error
	deletes []uuid.UUID
}

func (m *mockMessageStore) FindAll(context.Context) ([]*models.ContactMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]*models.ContactMessage(nil), m.rows...), nil
}

func (m *mockMessageStore) FindByID(_ context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, msg := range m.rows {
		if msg.ID == id {
			copied := *msg
			return &copied, nil
		}
	}
	return nil, errs.NewNotFound("message")
}

func (m *mockMessageStore) Add(_ context.Context, msg *models.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	m.rows = append([]*models.ContactMessage{msg}, m.rows...)
	return nil
}

func (m *mockMessageStore) SetRead(_ context.Context, id uuid.UUID, read bool) error {
	if m.err != nil {
		return m.err
	}
	for _, msg := range m.rows {
		if msg.ID == id {
			msg.IsRead = read
			return nil
		}
	}
	return errs.NewNotFound("message")
}

func (m *mockMessageStore) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.deletes = append(m.deletes, id)
	for i, msg := range m.rows {
		if msg.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return errs.NewNotFound("message")
}

type mockMailer struct {
	sent []string
	err  error
}

func (m *mockMailer) SendEmail(_ context.Context, subject, _ string, _ []string) error {
	m.sent = append(m.sent, subject)
	return m.err
}

// keyTranslator echoes keys back so tests can assert which fallback was used.
type keyTranslator struct{}

func (keyTranslator) T(key string) string { return "<" + key + ">" }

type fixture struct {
	settings    *mockSettingsStore
	projects    *mockProjectStore
	caseStudies *mockCaseStudyStore
	messages    *mockMessageStore
}

func newFixture() *fixture {
	return &fixture{
		settings:    &mockSettingsStore{},
		projects:    &mockProjectStore{},
		caseStudies: &mockCaseStudyStore{},
		messages:    &mockMessageStore{},
	}
}

func (f *fixture) stores() Stores {
	return Stores{
		Settings:    f.settings,
		Projects:    f.projects,
		CaseStudies: f.caseStudies,
		Messages:    f.messages,
	}
}

func strPtr(s string) *string { return &s }
