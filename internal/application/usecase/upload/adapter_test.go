package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavsangichetty/portfolio/internal/domain/project"
	"github.com/pranavsangichetty/portfolio/pkg/idgen"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type memFile struct {
	name    string
	body    string
	openErr error
}

func (f memFile) Name() string        { return f.name }
func (f memFile) ContentType() string { return "application/pdf" }
func (f memFile) Open() (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return io.NopCloser(strings.NewReader(f.body)), nil
}

type fakeUploader struct {
	seq     int
	stored  map[string]string
	deleted []string
	failOn  string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{stored: map[string]string{}}
}

func (u *fakeUploader) Upload(_ context.Context, file io.Reader, name, _ string) (string, error) {
	if name == u.failOn {
		return "", errors.New("disk full")
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	u.seq++
	ref := fmt.Sprintf("/blobs/%d", u.seq)
	u.stored[ref] = string(data)
	return ref, nil
}

func (u *fakeUploader) Delete(_ context.Context, ref string) error {
	u.deleted = append(u.deleted, ref)
	delete(u.stored, ref)
	return nil
}

func fixedClock(ms int64) idgen.Clock {
	return func() time.Time { return time.UnixMilli(ms) }
}

func files(names ...string) []File {
	out := make([]File, len(names))
	for i, n := range names {
		out[i] = memFile{name: n, body: "content of " + n}
	}
	return out
}

func TestProjectsOneRecordPerFile(t *testing.T) {
	up := newFakeUploader()
	a := NewAdapter(up, idgen.NewWithClock(fixedClock(1700000000000)), logger.NewNopLogger())

	got, err := a.Projects(context.Background(), files("churn.ipynb", "rag.py", "notes.md"))
	require.NoError(t, err)
	require.Len(t, got, 3)

	seen := map[int64]bool{}
	for i, p := range got {
		assert.Equal(t, int64(1700000000000)+int64(i), p.ID)
		assert.False(t, seen[p.ID], "ids are distinct")
		seen[p.ID] = true
		assert.Equal(t, project.UploadedDescription, p.Description)
		require.NotNil(t, p.Link)
		assert.NotEmpty(t, *p.Link)
	}
	assert.Equal(t, "churn.ipynb", got[0].Title)
	assert.Equal(t, "rag.py", got[1].Title)
	assert.Equal(t, "notes.md", got[2].Title)
	assert.Equal(t, "content of rag.py", up.stored[*got[1].Link])
}

func TestCertificatesOneRecordPerFile(t *testing.T) {
	up := newFakeUploader()
	a := NewAdapter(up, idgen.NewWithClock(fixedClock(1700000000000)), logger.NewNopLogger())

	got, err := a.Certificates(context.Background(), files("aws.pdf", "gcp.pdf"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "aws.pdf", got[0].Name)
	assert.Equal(t, "gcp.pdf", got[1].Name)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.NotEqual(t, got[0].URL, got[1].URL)
}

func TestEmptySelectionYieldsNothing(t *testing.T) {
	up := newFakeUploader()
	a := NewAdapter(up, idgen.New(), logger.NewNopLogger())

	ps, err := a.Projects(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, ps)

	cs, err := a.Certificates(context.Background(), []File{})
	assert.NoError(t, err)
	assert.Empty(t, cs)
	assert.Empty(t, up.stored)
}

func TestBatchesInSameMillisecondDoNotCollide(t *testing.T) {
	a := NewAdapter(newFakeUploader(), idgen.NewWithClock(fixedClock(1700000000000)), logger.NewNopLogger())

	first, err := a.Projects(context.Background(), files("a", "b"))
	require.NoError(t, err)
	second, err := a.Projects(context.Background(), files("c", "d"))
	require.NoError(t, err)

	assert.Equal(t, first[1].ID+1, second[0].ID)
}

func TestFailedUploadReleasesEarlierRefs(t *testing.T) {
	up := newFakeUploader()
	up.failOn = "b"
	a := NewAdapter(up, idgen.New(), logger.NewNopLogger())

	_, err := a.Projects(context.Background(), files("a", "b", "c"))
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, []string{"/blobs/1"}, up.deleted)
	assert.Empty(t, up.stored)
}

func TestOpenFailure(t *testing.T) {
	a := NewAdapter(newFakeUploader(), idgen.New(), logger.NewNopLogger())

	_, err := a.Certificates(context.Background(), []File{memFile{name: "x.pdf", openErr: errors.New("eof")}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "x.pdf")
}
