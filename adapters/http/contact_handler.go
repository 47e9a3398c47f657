package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/contact"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type ContactHandler struct {
	submitContactUseCase *contactUC.SubmitContactUseCase
	logger               logger.Logger
}

func NewContactHandler(uc *contactUC.SubmitContactUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{submitContactUseCase: uc, logger: log}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name, email and message are required", err))
		return
	}

	output, err := h.submitContactUseCase.Execute(c.Request.Context(), contactUC.SubmitContactInput{
		Message:  req.ToDomain(),
		ClientID: c.ClientIP(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ContactResponse{Notification: output.Notification, Form: output.Form})
}
