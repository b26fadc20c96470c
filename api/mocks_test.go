package api

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/portfolio"
	"github.com/rpupo63/portfolio-site/storage"
)

// memoryDB backs every store the router needs.
type memoryDB struct {
	mu          sync.Mutex
	settings    *models.SiteSettings
	projects    map[uuid.UUID]*models.Project
	caseStudies map[uuid.UUID]*models.CaseStudy
	messages    map[uuid.UUID]*models.ContactMessage
	users       map[uuid.UUID]*models.User
	roles       map[uuid.UUID][]string
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		projects:    map[uuid.UUID]*models.Project{},
		caseStudies: map[uuid.UUID]*models.CaseStudy{},
		messages:    map[uuid.UUID]*models.ContactMessage{},
		users:       map[uuid.UUID]*models.User{},
		roles:       map[uuid.UUID][]string{},
	}
}

func (db *memoryDB) stores() portfolio.Stores {
	return portfolio.Stores{
		Settings:    settingsStore{db},
		Projects:    projectStore{db},
		CaseStudies: caseStudyStore{db},
		Messages:    messageStore{db},
	}
}

type settingsStore struct{ db *memoryDB }

func (s settingsStore) First(context.Context) (*models.SiteSettings, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.db.settings, nil
}

func (s settingsStore) Save(_ context.Context, settings *models.SiteSettings) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	s.db.settings = settings
	return nil
}

type projectStore struct{ db *memoryDB }

func (s projectStore) FindAll(context.Context) ([]*models.Project, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := make([]*models.Project, 0, len(s.db.projects))
	for _, p := range s.db.projects {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s projectStore) FindByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if p, ok := s.db.projects[id]; ok {
		return p, nil
	}
	return nil, errs.NewNotFound("project")
}

func (s projectStore) Add(_ context.Context, p *models.Project) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.db.projects[p.ID] = p
	return nil
}

func (s projectStore) Update(_ context.Context, p *models.Project) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.projects[p.ID] = p
	return nil
}

func (s projectStore) Delete(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.projects[id]; !ok {
		return errs.NewNotFound("project")
	}
	delete(s.db.projects, id)
	for csID, cs := range s.db.caseStudies {
		if cs.ProjectID == id {
			delete(s.db.caseStudies, csID)
		}
	}
	return nil
}

type caseStudyStore struct{ db *memoryDB }

func (s caseStudyStore) FindAll(context.Context) ([]*models.CaseStudy, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := make([]*models.CaseStudy, 0, len(s.db.caseStudies))
	for _, cs := range s.db.caseStudies {
		out = append(out, cs)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s caseStudyStore) FindByID(_ context.Context, id uuid.UUID) (*models.CaseStudy, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if cs, ok := s.db.caseStudies[id]; ok {
		return cs, nil
	}
	return nil, errs.NewNotFound("case study")
}

func (s caseStudyStore) FindByProjectID(_ context.Context, projectID uuid.UUID) (*models.CaseStudy, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, cs := range s.db.caseStudies {
		if cs.ProjectID == projectID {
			return cs, nil
		}
	}
	return nil, nil
}

func (s caseStudyStore) Add(_ context.Context, cs *models.CaseStudy) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	s.db.caseStudies[cs.ID] = cs
	return nil
}

func (s caseStudyStore) Update(_ context.Context, cs *models.CaseStudy) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.caseStudies[cs.ID] = cs
	return nil
}

func (s caseStudyStore) Delete(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.caseStudies[id]; !ok {
		return errs.NewNotFound("case study")
	}
	delete(s.db.caseStudies, id)
	return nil
}

type messageStore struct{ db *memoryDB }

func (s messageStore) FindAll(context.Context) ([]*models.ContactMessage, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := make([]*models.ContactMessage, 0, len(s.db.messages))
	for _, m := range s.db.messages {
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s messageStore) FindByID(_ context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if m, ok := s.db.messages[id]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, errs.NewNotFound("message")
}

func (s messageStore) Add(_ context.Context, m *models.ContactMessage) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.db.messages[m.ID] = m
	return nil
}

func (s messageStore) SetRead(_ context.Context, id uuid.UUID, read bool) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	m, ok := s.db.messages[id]
	if !ok {
		return errs.NewNotFound("message")
	}
	m.IsRead = read
	return nil
}

func (s messageStore) Delete(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.messages[id]; !ok {
		return errs.NewNotFound("message")
	}
	delete(s.db.messages, id)
	return nil
}

type userStore struct{ db *memoryDB }

func (s userStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, u := range s.db.users {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return nil, errs.NewNotFound("user")
}

func (s userStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if u, ok := s.db.users[id]; ok {
		return u, nil
	}
	return nil, errs.NewNotFound("user")
}

func (s userStore) HasRole(_ context.Context, userID uuid.UUID, role string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, r := range s.db.roles[userID] {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

// mockBucket records uploads and fails any file whose key contains failOn.
type mockBucket struct {
	mu       sync.Mutex
	uploaded map[string]string
	failOn   string
}

func newMockBucket() *mockBucket {
	return &mockBucket{uploaded: map[string]string{}}
}

func (b *mockBucket) Upload(_ context.Context, key string, body io.Reader, _ string, _ bool) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if b.failOn != "" && strings.Contains(string(data), b.failOn) {
		return errors.New("storage unavailable")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uploaded[key] = string(data)
	return nil
}

func (b *mockBucket) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

var _ storage.Bucket = (*mockBucket)(nil)

// mockMailer counts notifications.
type mockMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *mockMailer) SendEmail(_ context.Context, subject, _ string, _ []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, subject)
	return nil
}
