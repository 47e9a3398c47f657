package resume

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/application/service"
	"github.com/pranavsangichetty/portfolio/internal/domain/activity"
	"github.com/pranavsangichetty/portfolio/internal/domain/resume"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/idgen"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

const collection = "resumes"

var tracer = otel.Tracer("resume_usecase")

type ListResumesUseCase struct {
	repo   resume.Repository
	logger logger.Logger
}

func NewListResumesUseCase(r resume.Repository, log logger.Logger) *ListResumesUseCase {
	return &ListResumesUseCase{repo: r, logger: log}
}

type ListResumesOutput struct {
	Resumes []resume.Resume
}

func (uc *ListResumesUseCase) Execute(ctx context.Context) (*ListResumesOutput, error) {
	ctx, span := tracer.Start(ctx, "ListResumes")
	defer span.End()

	rs, err := uc.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("resume.count", len(rs)))
	return &ListResumesOutput{Resumes: rs}, nil
}

// SaveResumeUseCase upserts a complete resume. A resume carrying the new-record id gets a
// generated one first.
type SaveResumeUseCase struct {
	repo      resume.Repository
	ids       *idgen.Generator
	publisher activity.Publisher
	logger    logger.Logger
}

func NewSaveResumeUseCase(r resume.Repository, ids *idgen.Generator, pub activity.Publisher, log logger.Logger) *SaveResumeUseCase {
	return &SaveResumeUseCase{repo: r, ids: ids, publisher: pub, logger: log}
}

type SaveResumeInput struct {
	Resume resume.Resume
}

type SaveResumeOutput struct {
	Resume  resume.Resume
	Created bool
}

func (uc *SaveResumeUseCase) Execute(ctx context.Context, input SaveResumeInput) (*SaveResumeOutput, error) {
	ctx, span := tracer.Start(ctx, "SaveResume")
	defer span.End()

	r := input.Resume
	if err := validate(r); err != nil {
		span.RecordError(err)
		return nil, err
	}
	created := r.IsNew()
	if created {
		r.ID = uc.ids.Next()
	} else {
		// Caller-chosen ids must never be handed out again.
		uc.ids.Observe(r.ID)
	}
	if err := uc.commit(ctx, r); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("resume.id", r.ID), attribute.Bool("resume.created", created))
	return &SaveResumeOutput{Resume: r, Created: created}, nil
}

// commit writes r and announces it. Shared with the draft sessions.
func (uc *SaveResumeUseCase) commit(ctx context.Context, r resume.Resume) error {
	if err := uc.repo.Upsert(ctx, r); err != nil {
		uc.logger.Error("Failed to upsert resume", err, zap.Int64("resume_id", r.ID))
		return err
	}
	uc.logger.Info("Resume saved", zap.Int64("resume_id", r.ID), zap.String("title", r.Title))
	service.PublishAsync(uc.publisher, uc.logger, activity.New(activity.EventResumeSaved, collection, r.ID))
	return nil
}

func validate(r resume.Resume) error {
	if err := r.Validate(); err != nil {
		return apperror.NewInvalidInput(err.Error(), err)
	}
	return nil
}

type DeleteResumeUseCase struct {
	repo      resume.Repository
	publisher activity.Publisher
	logger    logger.Logger
}

func NewDeleteResumeUseCase(r resume.Repository, pub activity.Publisher, log logger.Logger) *DeleteResumeUseCase {
	return &DeleteResumeUseCase{repo: r, publisher: pub, logger: log}
}

type DeleteResumeInput struct {
	ResumeID int64
}

// Execute removes the resume. Deleting an id that is not present succeeds without effect.
func (uc *DeleteResumeUseCase) Execute(ctx context.Context, input DeleteResumeInput) error {
	ctx, span := tracer.Start(ctx, "DeleteResume")
	defer span.End()
	span.SetAttributes(attribute.Int64("resume.id", input.ResumeID))

	_, err := uc.repo.FindByID(ctx, input.ResumeID)
	if errors.Is(err, apperror.ErrNotFound) {
		uc.logger.Debug("Resume already absent", zap.Int64("resume_id", input.ResumeID))
		return nil
	}
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := uc.repo.Delete(ctx, input.ResumeID); err != nil {
		span.RecordError(err)
		return err
	}
	uc.logger.Info("Resume deleted", zap.Int64("resume_id", input.ResumeID))
	service.PublishAsync(uc.publisher, uc.logger, activity.New(activity.EventResumeDeleted, collection, input.ResumeID))
	return nil
}
