package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	certificateUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/certificate"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type CertificateHandler struct {
	listCertificatesUseCase   *certificateUC.ListCertificatesUseCase
	uploadCertificatesUseCase *certificateUC.UploadCertificatesUseCase
	refs                      refClassifier
	logger                    logger.Logger
}

func NewCertificateHandler(
	listUC *certificateUC.ListCertificatesUseCase,
	uploadUC *certificateUC.UploadCertificatesUseCase,
	refs refClassifier,
	log logger.Logger,
) *CertificateHandler {
	return &CertificateHandler{
		listCertificatesUseCase:   listUC,
		uploadCertificatesUseCase: uploadUC,
		refs:                      refs,
		logger:                    log,
	}
}

func (h *CertificateHandler) ListCertificates(c *gin.Context) {
	output, err := h.listCertificatesUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCertificateDTOs(output.Certificates, h.refs))
}

func (h *CertificateHandler) UploadCertificates(c *gin.Context) {
	files, err := selectedFiles(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.uploadCertificatesUseCase.Execute(c.Request.Context(), certificateUC.UploadCertificatesInput{Files: files})
	if err != nil {
		c.Error(err)
		return
	}
	status := http.StatusCreated
	if len(output.Certificates) == 0 {
		status = http.StatusOK
	}
	c.JSON(status, ToCertificateDTOs(output.Certificates, h.refs))
}
