package certificate

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/application/service"
	"github.com/pranavsangichetty/portfolio/internal/application/usecase/upload"
	"github.com/pranavsangichetty/portfolio/internal/domain/activity"
	"github.com/pranavsangichetty/portfolio/internal/domain/certificate"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

var tracer = otel.Tracer("certificate_usecase")

type ListCertificatesUseCase struct {
	repo certificate.Repository
}

func NewListCertificatesUseCase(r certificate.Repository) *ListCertificatesUseCase {
	return &ListCertificatesUseCase{repo: r}
}

type ListCertificatesOutput struct {
	Certificates []certificate.Certificate
}

func (uc *ListCertificatesUseCase) Execute(ctx context.Context) (*ListCertificatesOutput, error) {
	ctx, span := tracer.Start(ctx, "ListCertificates")
	defer span.End()

	certs, err := uc.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &ListCertificatesOutput{Certificates: certs}, nil
}

type UploadCertificatesUseCase struct {
	repo      certificate.Repository
	adapter   *upload.Adapter
	publisher activity.Publisher
	logger    logger.Logger
}

func NewUploadCertificatesUseCase(r certificate.Repository, a *upload.Adapter, pub activity.Publisher, log logger.Logger) *UploadCertificatesUseCase {
	return &UploadCertificatesUseCase{repo: r, adapter: a, publisher: pub, logger: log}
}

type UploadCertificatesInput struct {
	Files []upload.File
}

type UploadCertificatesOutput struct {
	Certificates []certificate.Certificate
}

// Execute appends one certificate per file. No files means no change.
func (uc *UploadCertificatesUseCase) Execute(ctx context.Context, input UploadCertificatesInput) (*UploadCertificatesOutput, error) {
	ctx, span := tracer.Start(ctx, "UploadCertificates")
	defer span.End()
	span.SetAttributes(attribute.Int("upload.count", len(input.Files)))

	certs, err := uc.adapter.Certificates(ctx, input.Files)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(certs) == 0 {
		return &UploadCertificatesOutput{Certificates: []certificate.Certificate{}}, nil
	}

	if err := uc.repo.Append(ctx, certs); err != nil {
		span.RecordError(err)
		return nil, err
	}

	ids := make([]int64, len(certs))
	for i, c := range certs {
		ids[i] = c.ID
	}
	uc.logger.Info("Certificates added", zap.Int64s("ids", ids))
	service.PublishAsync(uc.publisher, uc.logger, activity.New(activity.EventCertificatesAdded, "certificates", ids...))

	return &UploadCertificatesOutput{Certificates: certs}, nil
}
