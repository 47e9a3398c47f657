package persistence

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/domain/certificate"
	"github.com/pranavsangichetty/portfolio/internal/domain/project"
	"github.com/pranavsangichetty/portfolio/internal/domain/resume"
	"github.com/pranavsangichetty/portfolio/internal/seed"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

// ContentStore is the in-memory source of truth for resumes, projects and certificates.
//
// Every mutation derives a new slice and swaps it in under the write lock, so a reader
// sees a collection either before or after a mutation, never in between. Published
// slices are never written to again.
type ContentStore struct {
	mu           sync.RWMutex
	resumes      []resume.Resume
	projects     map[project.Category][]project.Project
	certificates []certificate.Certificate
	logger       logger.Logger
}

func NewContentStore(initial seed.Content, log logger.Logger) *ContentStore {
	projects := make(map[project.Category][]project.Project, len(project.Categories()))
	for _, info := range project.Categories() {
		projects[info.Key] = cloneProjects(initial.Projects[info.Key])
	}
	for c := range initial.Projects {
		if !c.Valid() {
			log.Warn("Dropping seed projects for unknown category", zap.String("category", string(c)))
		}
	}

	s := &ContentStore{
		resumes:      slices.Clone(initial.Resumes),
		projects:     projects,
		certificates: slices.Clone(initial.Certificates),
		logger:       log,
	}
	log.Info("Content store seeded",
		zap.Int("resumes", len(s.resumes)),
		zap.Int("categories", len(s.projects)),
		zap.Int("certificates", len(s.certificates)),
	)
	return s
}

// MaxID returns the largest id held in any collection. Used to prime the id generator.
func (s *ContentStore) MaxID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var top int64
	for _, r := range s.resumes {
		top = max(top, r.ID)
	}
	for _, ps := range s.projects {
		for _, p := range ps {
			top = max(top, p.ID)
		}
	}
	for _, c := range s.certificates {
		top = max(top, c.ID)
	}
	return top
}

// Resumes

func (s *ContentStore) ListResumes() []resume.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.resumes)
}

func (s *ContentStore) FindResumeByID(id int64) (resume.Resume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.resumes, func(r resume.Resume) bool { return r.ID == id })
	if i < 0 {
		return resume.Resume{}, false
	}
	return s.resumes[i], true
}

// UpsertResume replaces the resume with the same id in place, or appends it.
func (s *ContentStore) UpsertResume(r resume.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.resumes)
	if i := slices.IndexFunc(next, func(x resume.Resume) bool { return x.ID == r.ID }); i >= 0 {
		next[i] = r
	} else {
		next = append(next, r)
	}
	s.resumes = next
}

// DeleteResume removes the resume with id. It reports whether one was removed.
func (s *ContentStore) DeleteResume(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.resumes), func(r resume.Resume) bool { return r.ID == id })
	removed := len(next) != len(s.resumes)
	s.resumes = next
	return removed
}

// Projects

func (s *ContentStore) ListProjects(c project.Category) []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProjects(s.projects[c])
}

func (s *ContentStore) ListAllProjects() map[project.Category][]project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[project.Category][]project.Project, len(s.projects))
	for c, ps := range s.projects {
		out[c] = cloneProjects(ps)
	}
	return out
}

// AddProjects appends projects to category c in the order supplied. Only the four fixed
// categories are accepted so the category set never grows at runtime.
func (s *ContentStore) AddProjects(c project.Category, projects []project.Project) error {
	if !c.Valid() {
		return apperror.NewInvalidInput("unknown project category '"+string(c)+"'", project.ErrUnknownCategory)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.projects[c]
	next := make([]project.Project, 0, len(current)+len(projects))
	next = append(next, current...)
	next = append(next, cloneProjects(projects)...)

	updated := make(map[project.Category][]project.Project, len(s.projects))
	for k, v := range s.projects {
		updated[k] = v
	}
	updated[c] = next
	s.projects = updated
	return nil
}

// cloneProjects copies the slice and the Link pointers so callers never share stored data.
func cloneProjects(ps []project.Project) []project.Project {
	out := make([]project.Project, len(ps))
	for i, p := range ps {
		if p.Link != nil {
			l := *p.Link
			p.Link = &l
		}
		out[i] = p
	}
	return out
}

// Certificates

func (s *ContentStore) ListCertificates() []certificate.Certificate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.certificates)
}

func (s *ContentStore) AddCertificates(certs []certificate.Certificate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]certificate.Certificate, 0, len(s.certificates)+len(certs))
	next = append(next, s.certificates...)
	next = append(next, certs...)
	s.certificates = next
}

// Repository views

type memoryResumeRepo struct{ store *ContentStore }

func NewMemoryResumeRepo(s *ContentStore) resume.Repository {
	return &memoryResumeRepo{store: s}
}

func (r *memoryResumeRepo) List(ctx context.Context) ([]resume.Resume, error) {
	return r.store.ListResumes(), nil
}

func (r *memoryResumeRepo) FindByID(ctx context.Context, id int64) (*resume.Resume, error) {
	found, ok := r.store.FindResumeByID(id)
	if !ok {
		return nil, apperror.NewNotFound("resume", strconv.FormatInt(id, 10))
	}
	return &found, nil
}

func (r *memoryResumeRepo) Upsert(ctx context.Context, rec resume.Resume) error {
	r.store.UpsertResume(rec)
	return nil
}

func (r *memoryResumeRepo) Delete(ctx context.Context, id int64) error {
	if !r.store.DeleteResume(id) {
		r.store.logger.Debug("Delete of absent resume ignored", zap.Int64("resume_id", id))
	}
	return nil
}

type memoryProjectRepo struct{ store *ContentStore }

func NewMemoryProjectRepo(s *ContentStore) project.Repository {
	return &memoryProjectRepo{store: s}
}

func (r *memoryProjectRepo) ListByCategory(ctx context.Context, c project.Category) ([]project.Project, error) {
	if !c.Valid() {
		return nil, apperror.NewNotFound("project category", string(c))
	}
	return r.store.ListProjects(c), nil
}

func (r *memoryProjectRepo) ListAll(ctx context.Context) (map[project.Category][]project.Project, error) {
	return r.store.ListAllProjects(), nil
}

func (r *memoryProjectRepo) Append(ctx context.Context, c project.Category, projects []project.Project) error {
	return r.store.AddProjects(c, projects)
}

type memoryCertificateRepo struct{ store *ContentStore }

func NewMemoryCertificateRepo(s *ContentStore) certificate.Repository {
	return &memoryCertificateRepo{store: s}
}

func (r *memoryCertificateRepo) List(ctx context.Context) ([]certificate.Certificate, error) {
	return r.store.ListCertificates(), nil
}

func (r *memoryCertificateRepo) Append(ctx context.Context, certs []certificate.Certificate) error {
	r.store.AddCertificates(certs)
	return nil
}
