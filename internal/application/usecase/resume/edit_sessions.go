package resume

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/domain/resume"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
	"github.com/pranavsangichetty/portfolio/pkg/staging"
)

// Patch changes the fields that are set.
type Patch struct {
	Title *string
	Type  *string
	URL   *string
}

func (p Patch) apply(r *resume.Resume) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.URL != nil {
		r.URL = *p.URL
	}
}

// EditSessions holds one resume draft per client session. A session with nothing staged
// has no entry.
type EditSessions struct {
	mu       sync.Mutex
	sessions map[string]*staging.Controller[resume.Resume]

	repo   resume.Repository
	saver  *SaveResumeUseCase
	logger logger.Logger
}

func NewEditSessions(r resume.Repository, saver *SaveResumeUseCase, log logger.Logger) *EditSessions {
	return &EditSessions{
		sessions: make(map[string]*staging.Controller[resume.Resume]),
		repo:     r,
		saver:    saver,
		logger:   log,
	}
}

func (s *EditSessions) newController() *staging.Controller[resume.Resume] {
	return staging.New(staging.Options[resume.Resume]{
		Blank: resume.Blank,
		IsNew: resume.Resume.IsNew,
		AssignID: func(r resume.Resume) resume.Resume {
			r.ID = s.saver.ids.Next()
			return r
		},
		Validate: validate,
		Commit:   s.saver.commit,
	})
}

// controller returns the session's controller, or nil when the session is idle.
func (s *EditSessions) controller(session string) *staging.Controller[resume.Resume] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[session]
}

// stage runs begin on the session's controller, creating it if needed. It holds the
// session lock so a concurrent release cannot drop the controller being staged.
func (s *EditSessions) stage(session string, begin func(*staging.Controller[resume.Resume]) resume.Resume) resume.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.sessions[session]
	if !ok {
		c = s.newController()
		s.sessions[session] = c
	}
	return begin(c)
}

// release drops the session entry when its controller went back to idle.
func (s *EditSessions) release(session string, c *staging.Controller[resume.Resume]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[session] != c {
		return
	}
	if _, staged := c.Staged(); !staged {
		delete(s.sessions, session)
	}
}

// BeginCreate stages a blank resume, replacing whatever the session had staged.
func (s *EditSessions) BeginCreate(ctx context.Context, session string) resume.Resume {
	_, span := tracer.Start(ctx, "BeginCreateResume")
	defer span.End()

	s.logger.Debug("Begin resume draft", zap.String("session", session))
	return s.stage(session, (*staging.Controller[resume.Resume]).BeginCreate)
}

// BeginEdit stages a copy of the stored resume with id.
func (s *EditSessions) BeginEdit(ctx context.Context, session string, id int64) (resume.Resume, error) {
	ctx, span := tracer.Start(ctx, "BeginEditResume")
	defer span.End()
	span.SetAttributes(attribute.Int64("resume.id", id))

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return resume.Resume{}, err
	}
	s.logger.Debug("Begin resume edit", zap.String("session", session), zap.Int64("resume_id", id))
	return s.stage(session, func(c *staging.Controller[resume.Resume]) resume.Resume {
		return c.BeginEdit(*r)
	}), nil
}

// Current returns the staged draft, or false when the session is idle.
func (s *EditSessions) Current(session string) (resume.Resume, bool) {
	c := s.controller(session)
	if c == nil {
		return resume.Resume{}, false
	}
	return c.Staged()
}

func (s *EditSessions) Update(ctx context.Context, session string, p Patch) (resume.Resume, error) {
	_, span := tracer.Start(ctx, "UpdateResumeDraft")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.sessions[session]
	if !ok {
		return resume.Resume{}, apperror.NewNotFound("resume draft", session)
	}
	r, err := c.Update(p.apply)
	if errors.Is(err, staging.ErrIdle) {
		return resume.Resume{}, apperror.NewNotFound("resume draft", session)
	}
	return r, err
}

// Cancel discards the draft without touching the collection. It reports whether a
// draft existed.
func (s *EditSessions) Cancel(session string) bool {
	c := s.controller(session)
	if c == nil {
		return false
	}
	had := c.Cancel()
	s.release(session, c)
	return had
}

// Save commits the draft. A session with nothing staged saves nothing and reports false.
// When validation or the commit fails the draft stays staged.
func (s *EditSessions) Save(ctx context.Context, session string) (resume.Resume, bool, error) {
	ctx, span := tracer.Start(ctx, "SaveResumeDraft")
	defer span.End()

	c := s.controller(session)
	if c == nil {
		return resume.Resume{}, false, nil
	}
	r, ok, err := c.Save(ctx)
	if err != nil {
		span.RecordError(err)
		return resume.Resume{}, ok, err
	}
	s.release(session, c)
	if ok {
		span.SetAttributes(attribute.Int64("resume.id", r.ID))
	}
	return r, ok, nil
}

// Active returns the number of sessions with a staged draft.
func (s *EditSessions) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
