package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type Handlers struct {
	Profile     *ProfileHandler
	Resume      *ResumeHandler
	Project     *ProjectHandler
	RSS         *RSSHandler
	Certificate *CertificateHandler
	Contact     *ContactHandler
	Blob        *BlobHandler
}

type RouterOptions struct {
	BlobPath       string
	MaxUploadSize  int64
	MaxRequestSize int64 // cap on upload request bodies
	SecureCookies  bool
}

func NewRouter(h Handlers, opts RouterOptions, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))
	if opts.MaxUploadSize > 0 {
		router.MaxMultipartMemory = opts.MaxUploadSize
	}

	blobPath := "/" + strings.Trim(opts.BlobPath, "/")
	if blobPath == "/" {
		blobPath = "/blobs"
	}
	router.GET(blobPath+"/:ref", h.Blob.ServeBlob)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/profile", h.Profile.GetProfile)

		resumes := api.Group("/resumes")
		resumes.Use(SessionMiddleware(opts.SecureCookies))
		{
			resumes.GET("", h.Resume.ListResumes)
			resumes.PUT("", h.Resume.SaveResume)
			resumes.DELETE("/:id", h.Resume.DeleteResume)

			resumes.POST("/drafts", h.Resume.BeginCreate)
			resumes.POST("/:id/drafts", h.Resume.BeginEdit)
			resumes.GET("/drafts/current", h.Resume.CurrentDraft)
			resumes.PATCH("/drafts/current", h.Resume.UpdateDraft)
			resumes.DELETE("/drafts/current", h.Resume.CancelDraft)
			resumes.POST("/drafts/current/save", h.Resume.SaveDraft)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", h.Project.ListProjects)
			projects.GET("/rss", h.RSS.GenerateRSS)
			projects.GET("/:category", h.Project.GetCategory)
			projects.POST("/:category/uploads", BodyLimit(opts.MaxRequestSize), h.Project.UploadProjects)
		}

		certificates := api.Group("/certificates")
		{
			certificates.GET("", h.Certificate.ListCertificates)
			certificates.POST("/uploads", BodyLimit(opts.MaxRequestSize), h.Certificate.UploadCertificates)
		}

		api.POST("/contact", h.Contact.Submit)
	}

	return router
}
