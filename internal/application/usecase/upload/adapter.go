package upload

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/application/service"
	"github.com/pranavsangichetty/portfolio/internal/domain/certificate"
	"github.com/pranavsangichetty/portfolio/internal/domain/project"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/idgen"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

// File is one user-selected file. Open may be called once.
type File interface {
	Name() string
	ContentType() string
	Open() (io.ReadCloser, error)
}

type Kind string

const (
	KindProject     Kind = "project"
	KindCertificate Kind = "certificate"
)

var tracer = otel.Tracer("upload_usecase")

// Adapter turns selected files into project or certificate records pointing at
// ephemeral references.
type Adapter struct {
	uploader service.Uploader
	ids      *idgen.Generator
	logger   logger.Logger
}

func NewAdapter(u service.Uploader, ids *idgen.Generator, log logger.Logger) *Adapter {
	return &Adapter{uploader: u, ids: ids, logger: log}
}

// registered is one file after its bytes were handed to the uploader.
type registered struct {
	id   int64
	name string
	ref  string
}

// register uploads files in order and assigns ids base, base+1, ... where base is
// reserved from the generator for the whole batch. On failure every reference issued
// for the batch is released again.
func (a *Adapter) register(ctx context.Context, kind Kind, files []File) ([]registered, error) {
	ctx, span := tracer.Start(ctx, "register")
	defer span.End()
	span.SetAttributes(attribute.String("upload.kind", string(kind)), attribute.Int("upload.count", len(files)))

	if len(files) == 0 {
		return nil, nil
	}

	out := make([]registered, 0, len(files))
	rollback := func() {
		for _, r := range out {
			a.uploader.Delete(context.Background(), r.ref)
		}
	}

	for _, f := range files {
		ref, err := a.store(ctx, f)
		if err != nil {
			rollback()
			span.RecordError(err)
			return nil, err
		}
		out = append(out, registered{name: f.Name(), ref: ref})
	}

	base := a.ids.Reserve(len(out))
	for i := range out {
		out[i].id = base + int64(i)
	}

	a.logger.Info("Registered uploaded files",
		zap.String("kind", string(kind)),
		zap.Int("count", len(out)),
		zap.Int64("first_id", base),
	)
	return out, nil
}

func (a *Adapter) store(ctx context.Context, f File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", apperror.NewInternal(fmt.Sprintf("failed to open uploaded file '%s'", f.Name()), err)
	}
	defer rc.Close()
	return a.uploader.Upload(ctx, rc, f.Name(), f.ContentType())
}

// Projects builds one project per file, in input order.
func (a *Adapter) Projects(ctx context.Context, files []File) ([]project.Project, error) {
	regs, err := a.register(ctx, KindProject, files)
	if err != nil {
		return nil, err
	}
	out := make([]project.Project, len(regs))
	for i, r := range regs {
		link := r.ref
		out[i] = project.Project{
			ID:          r.id,
			Title:       r.name,
			Description: project.UploadedDescription,
			Link:        &link,
		}
	}
	return out, nil
}

// Certificates builds one certificate per file, in input order.
func (a *Adapter) Certificates(ctx context.Context, files []File) ([]certificate.Certificate, error) {
	regs, err := a.register(ctx, KindCertificate, files)
	if err != nil {
		return nil, err
	}
	out := make([]certificate.Certificate, len(regs))
	for i, r := range regs {
		out[i] = certificate.Certificate{ID: r.id, Name: r.name, URL: r.ref}
	}
	return out, nil
}
