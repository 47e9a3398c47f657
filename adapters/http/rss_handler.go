package http

import (
	"github.com/gin-gonic/gin"

	projectUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/project"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type RSSHandler struct {
	rssUseCase *projectUC.RSSUseCase
	logger     logger.Logger
}

func NewRSSHandler(uc *projectUC.RSSUseCase, log logger.Logger) *RSSHandler {
	return &RSSHandler{
		rssUseCase: uc,
		logger:     log,
	}
}

func (h *RSSHandler) GenerateRSS(c *gin.Context) {
	feed, err := h.rssUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")

	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
