package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resumeUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/resume"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type ResumeHandler struct {
	listResumesUseCase  *resumeUC.ListResumesUseCase
	saveResumeUseCase   *resumeUC.SaveResumeUseCase
	deleteResumeUseCase *resumeUC.DeleteResumeUseCase
	drafts              *resumeUC.EditSessions
	logger              logger.Logger
}

func NewResumeHandler(
	listUC *resumeUC.ListResumesUseCase,
	saveUC *resumeUC.SaveResumeUseCase,
	deleteUC *resumeUC.DeleteResumeUseCase,
	drafts *resumeUC.EditSessions,
	log logger.Logger,
) *ResumeHandler {
	return &ResumeHandler{
		listResumesUseCase:  listUC,
		saveResumeUseCase:   saveUC,
		deleteResumeUseCase: deleteUC,
		drafts:              drafts,
		logger:              log,
	}
}

func parseResumeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid resume ID", err))
		return 0, false
	}
	return id, true
}

func sessionID(c *gin.Context) (string, bool) {
	id, ok := GetSessionIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("session not found in context", nil))
	}
	return id, ok
}

func (h *ResumeHandler) ListResumes(c *gin.Context) {
	output, err := h.listResumesUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToResumeDTOs(output.Resumes))
}

// SaveResume upserts a complete resume. id 0 creates a new one.
func (h *ResumeHandler) SaveResume(c *gin.Context) {
	var req SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.saveResumeUseCase.Execute(c.Request.Context(), resumeUC.SaveResumeInput{Resume: req.ToDomain()})
	if err != nil {
		c.Error(err)
		return
	}
	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	c.JSON(status, ToResumeDTO(output.Resume))
}

func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	id, ok := parseResumeID(c)
	if !ok {
		return
	}
	if err := h.deleteResumeUseCase.Execute(c.Request.Context(), resumeUC.DeleteResumeInput{ResumeID: id}); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResumeHandler) BeginCreate(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	draft := h.drafts.BeginCreate(c.Request.Context(), session)
	c.JSON(http.StatusCreated, ToResumeDTO(draft))
}

func (h *ResumeHandler) BeginEdit(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	id, ok := parseResumeID(c)
	if !ok {
		return
	}
	draft, err := h.drafts.BeginEdit(c.Request.Context(), session, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToResumeDTO(draft))
}

// CurrentDraft answers 204 when nothing is staged.
func (h *ResumeHandler) CurrentDraft(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	draft, staged := h.drafts.Current(session)
	if !staged {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ToResumeDTO(draft))
}

func (h *ResumeHandler) UpdateDraft(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var req PatchResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	draft, err := h.drafts.Update(c.Request.Context(), session, resumeUC.Patch{Title: req.Title, Type: req.Type, URL: req.URL})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToResumeDTO(draft))
}

// SaveDraft commits the staged resume. Saving with nothing staged answers 204.
func (h *ResumeHandler) SaveDraft(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	saved, staged, err := h.drafts.Save(c.Request.Context(), session)
	if err != nil {
		c.Error(err)
		return
	}
	if !staged {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ToResumeDTO(saved))
}

func (h *ResumeHandler) CancelDraft(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	h.drafts.Cancel(session)
	c.Status(http.StatusNoContent)
}
