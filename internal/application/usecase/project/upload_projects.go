package project

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/application/service"
	"github.com/pranavsangichetty/portfolio/internal/application/usecase/upload"
	"github.com/pranavsangichetty/portfolio/internal/domain/activity"
	"github.com/pranavsangichetty/portfolio/internal/domain/project"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type UploadProjectsUseCase struct {
	repo      project.Repository
	adapter   *upload.Adapter
	publisher activity.Publisher
	logger    logger.Logger
}

func NewUploadProjectsUseCase(r project.Repository, a *upload.Adapter, pub activity.Publisher, log logger.Logger) *UploadProjectsUseCase {
	return &UploadProjectsUseCase{repo: r, adapter: a, publisher: pub, logger: log}
}

type UploadProjectsInput struct {
	Category string
	Files    []upload.File
}

type UploadProjectsOutput struct {
	Projects []project.Project
}

// Execute appends one project per file to the category. No files means no change.
func (uc *UploadProjectsUseCase) Execute(ctx context.Context, input UploadProjectsInput) (*UploadProjectsOutput, error) {
	ctx, span := tracer.Start(ctx, "UploadProjects")
	defer span.End()
	span.SetAttributes(attribute.String("project.category", input.Category), attribute.Int("upload.count", len(input.Files)))

	c, err := project.ParseCategory(input.Category)
	if err != nil {
		return nil, apperror.NewNotFound("project category", input.Category)
	}

	ps, err := uc.adapter.Projects(ctx, input.Files)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(ps) == 0 {
		return &UploadProjectsOutput{Projects: []project.Project{}}, nil
	}

	if err := uc.repo.Append(ctx, c, ps); err != nil {
		span.RecordError(err)
		return nil, err
	}

	ids := make([]int64, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	uc.logger.Info("Projects added", zap.String("category", string(c)), zap.Int64s("ids", ids))

	e := activity.New(activity.EventProjectsAdded, "projects", ids...)
	e.Category = string(c)
	service.PublishAsync(uc.publisher, uc.logger, e)

	return &UploadProjectsOutput{Projects: ps}, nil
}
