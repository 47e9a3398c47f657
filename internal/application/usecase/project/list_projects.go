package project

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pranavsangichetty/portfolio/internal/domain/project"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

var tracer = otel.Tracer("project_usecase")

// CategoryProjects is one showcase tab: the category metadata and its projects.
type CategoryProjects struct {
	Info     project.CategoryInfo
	Projects []project.Project
}

type ListProjectsUseCase struct {
	repo   project.Repository
	logger logger.Logger
}

func NewListProjectsUseCase(r project.Repository, log logger.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{repo: r, logger: log}
}

type ListProjectsOutput struct {
	Categories []CategoryProjects
}

// Execute returns every category in display order.
func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	ctx, span := tracer.Start(ctx, "ListProjects")
	defer span.End()

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	infos := project.Categories()
	out := &ListProjectsOutput{Categories: make([]CategoryProjects, 0, len(infos))}
	for _, info := range infos {
		out.Categories = append(out.Categories, CategoryProjects{Info: info, Projects: all[info.Key]})
	}
	return out, nil
}

type GetCategoryInput struct {
	Category string
}

func (uc *ListProjectsUseCase) ExecuteCategory(ctx context.Context, input GetCategoryInput) (*CategoryProjects, error) {
	ctx, span := tracer.Start(ctx, "ListCategoryProjects")
	defer span.End()
	span.SetAttributes(attribute.String("project.category", input.Category))

	c, err := project.ParseCategory(input.Category)
	if err != nil {
		return nil, apperror.NewNotFound("project category", input.Category)
	}
	ps, err := uc.repo.ListByCategory(ctx, c)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &CategoryProjects{Info: c.Info(), Projects: ps}, nil
}
