package persistence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/pranavsangichetty/portfolio/internal/domain/certificate"
	"github.com/pranavsangichetty/portfolio/internal/domain/project"
	"github.com/pranavsangichetty/portfolio/internal/domain/resume"
	"github.com/pranavsangichetty/portfolio/internal/seed"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type ContentStoreTestSuite struct {
	suite.Suite
	ctx          context.Context
	store        *ContentStore
	resumes      resume.Repository
	projects     project.Repository
	certificates certificate.Repository
}

func (s *ContentStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewContentStore(seed.Default(), logger.NewNopLogger())
	s.resumes = NewMemoryResumeRepo(s.store)
	s.projects = NewMemoryProjectRepo(s.store)
	s.certificates = NewMemoryCertificateRepo(s.store)
}

func TestContentStore(t *testing.T) {
	suite.Run(t, new(ContentStoreTestSuite))
}

func resumeIDs(rs []resume.Resume) []int64 {
	ids := make([]int64, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

func (s *ContentStoreTestSuite) TestSeededContent() {
	rs, err := s.resumes.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]int64{1, 2, 3}, resumeIDs(rs))

	all, err := s.projects.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 4)
	for _, info := range project.Categories() {
		s.Len(all[info.Key], 1, "category %s", info.Key)
	}

	certs, err := s.certificates.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(certs)

	s.Equal(int64(4), s.store.MaxID())
}

func (s *ContentStoreTestSuite) TestUpsertAppendsNewIDs() {
	s.Require().NoError(s.resumes.Upsert(s.ctx, resume.Resume{ID: 1700000000000, Title: "ML Resume", Type: "ML", URL: "/ml.pdf"}))
	s.Require().NoError(s.resumes.Upsert(s.ctx, resume.Resume{ID: 1700000000001, Title: "Ops Resume", Type: "Ops", URL: "/ops.pdf"}))

	rs, _ := s.resumes.List(s.ctx)
	s.Equal([]int64{1, 2, 3, 1700000000000, 1700000000001}, resumeIDs(rs))
}

func (s *ContentStoreTestSuite) TestUpsertReplacesInPlace() {
	updated := resume.Resume{ID: 2, Title: "Data Analytics Resume v2", Type: "DA", URL: "/da-v2.pdf"}
	s.Require().NoError(s.resumes.Upsert(s.ctx, updated))

	rs, _ := s.resumes.List(s.ctx)
	s.Require().Len(rs, 3)
	s.Equal([]int64{1, 2, 3}, resumeIDs(rs))
	s.Equal(updated, rs[1])
}

func (s *ContentStoreTestSuite) TestDeleteRemovesExactlyOne() {
	s.Require().NoError(s.resumes.Delete(s.ctx, 2))

	rs, _ := s.resumes.List(s.ctx)
	s.Equal([]int64{1, 3}, resumeIDs(rs))
}

func (s *ContentStoreTestSuite) TestDeleteAbsentIsNoop() {
	before, _ := s.resumes.List(s.ctx)
	s.Require().NoError(s.resumes.Delete(s.ctx, 999))

	after, _ := s.resumes.List(s.ctx)
	s.Equal(before, after)
}

func (s *ContentStoreTestSuite) TestFindByID() {
	r, err := s.resumes.FindByID(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal("General Tech Resume", r.Title)

	_, err = s.resumes.FindByID(s.ctx, 42)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ContentStoreTestSuite) TestAddProjectsKeepsPrefixAndOtherCategories() {
	before, _ := s.projects.ListAll(s.ctx)

	ref := "/blobs/a"
	added := []project.Project{
		{ID: 10, Title: "one.ipynb", Description: project.UploadedDescription, Link: &ref},
		{ID: 11, Title: "two.ipynb", Description: project.UploadedDescription, Link: &ref},
	}
	s.Require().NoError(s.projects.Append(s.ctx, project.CategoryAILLMs, added))

	after, _ := s.projects.ListAll(s.ctx)
	s.Len(after, 4)

	got := after[project.CategoryAILLMs]
	s.Require().Len(got, 3)
	s.Equal(before[project.CategoryAILLMs][0], got[0])
	s.Equal(added, got[1:])

	for _, c := range []project.Category{project.CategoryDataScience, project.CategoryMachineLearning, project.CategoryDataAnalytics} {
		s.Equal(before[c], after[c], "category %s", c)
	}
}

func (s *ContentStoreTestSuite) TestAddProjectsEmptyBatch() {
	before, _ := s.projects.ListAll(s.ctx)
	s.Require().NoError(s.projects.Append(s.ctx, project.CategoryDataScience, nil))

	after, _ := s.projects.ListAll(s.ctx)
	s.Equal(before, after)
}

func (s *ContentStoreTestSuite) TestAddProjectsUnknownCategory() {
	err := s.projects.Append(s.ctx, project.Category("robotics"), []project.Project{{ID: 1}})
	s.ErrorIs(err, apperror.ErrInvalidInput)

	all, _ := s.projects.ListAll(s.ctx)
	s.Len(all, 4)
	s.NotContains(all, project.Category("robotics"))
}

func (s *ContentStoreTestSuite) TestListByCategoryUnknown() {
	_, err := s.projects.ListByCategory(s.ctx, project.Category("robotics"))
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ContentStoreTestSuite) TestReadsAreCopies() {
	ps, _ := s.projects.ListByCategory(s.ctx, project.CategoryDataScience)
	*ps[0].Link = "mutated"
	ps[0].Title = "mutated"

	again, _ := s.projects.ListByCategory(s.ctx, project.CategoryDataScience)
	s.Equal("#", *again[0].Link)
	s.Equal("Customer Churn Prediction", again[0].Title)

	rs, _ := s.resumes.List(s.ctx)
	rs[0].Title = "mutated"
	fresh, _ := s.resumes.List(s.ctx)
	s.Equal("Data Science Resume", fresh[0].Title)
}

func (s *ContentStoreTestSuite) TestCertificatesAppendInOrder() {
	s.Require().NoError(s.certificates.Append(s.ctx, []certificate.Certificate{{ID: 5, Name: "a.pdf", URL: "/blobs/a"}}))
	s.Require().NoError(s.certificates.Append(s.ctx, []certificate.Certificate{
		{ID: 6, Name: "b.pdf", URL: "/blobs/b"},
		{ID: 7, Name: "c.pdf", URL: "/blobs/c"},
	}))

	certs, _ := s.certificates.List(s.ctx)
	s.Require().Len(certs, 3)
	s.Equal("a.pdf", certs[0].Name)
	s.Equal("b.pdf", certs[1].Name)
	s.Equal("c.pdf", certs[2].Name)
	s.Equal(int64(7), s.store.MaxID())
}

func TestNewContentStoreFillsMissingCategories(t *testing.T) {
	store := NewContentStore(seed.Content{
		Projects: map[project.Category][]project.Project{
			project.CategoryDataScience: {{ID: 1, Title: "only"}},
			project.Category("legacy"):  {{ID: 2, Title: "dropped"}},
		},
	}, logger.NewNopLogger())

	all := store.ListAllProjects()
	require.Len(t, all, 4)
	assert.Len(t, all[project.CategoryDataScience], 1)
	assert.Empty(t, all[project.CategoryAILLMs])
	assert.NotNil(t, all[project.CategoryAILLMs])
	assert.NotContains(t, all, project.Category("legacy"))
	assert.Equal(t, int64(1), store.MaxID())
}

func TestContentStoreConcurrentUpserts(t *testing.T) {
	store := NewContentStore(seed.Content{}, logger.NewNopLogger())

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			store.UpsertResume(resume.Resume{ID: id, Title: "r", Type: "t", URL: "u"})
			store.ListResumes()
		}(int64(i))
	}
	wg.Wait()

	assert.Len(t, store.ListResumes(), 50)
}
