package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/project"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type ProjectHandler struct {
	listProjectsUseCase   *projectUC.ListProjectsUseCase
	uploadProjectsUseCase *projectUC.UploadProjectsUseCase
	refs                  refClassifier
	logger                logger.Logger
}

func NewProjectHandler(
	listUC *projectUC.ListProjectsUseCase,
	uploadUC *projectUC.UploadProjectsUseCase,
	refs refClassifier,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUseCase:   listUC,
		uploadProjectsUseCase: uploadUC,
		refs:                  refs,
		logger:                log,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	output, err := h.listProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]CategoryDTO, len(output.Categories))
	for i, cat := range output.Categories {
		dtos[i] = ToCategoryDTO(cat, h.refs)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProjectHandler) GetCategory(c *gin.Context) {
	output, err := h.listProjectsUseCase.ExecuteCategory(c.Request.Context(), projectUC.GetCategoryInput{Category: c.Param("category")})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCategoryDTO(*output, h.refs))
}

// UploadProjects adds one project per file in the "files" form field.
func (h *ProjectHandler) UploadProjects(c *gin.Context) {
	files, err := selectedFiles(c)
	if err != nil {
		c.Error(err)
		return
	}

	category := c.Param("category")
	output, err := h.uploadProjectsUseCase.Execute(c.Request.Context(), projectUC.UploadProjectsInput{
		Category: category,
		Files:    files,
	})
	if err != nil {
		c.Error(err)
		return
	}

	added := ToCategoryDTO(projectUC.CategoryProjects{Projects: output.Projects}, h.refs).Projects
	status := http.StatusCreated
	if len(added) == 0 {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"category": category, "projects": added})
}
