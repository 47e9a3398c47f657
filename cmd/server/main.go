package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pranavsangichetty/portfolio/adapters/event"
	httpAdapter "github.com/pranavsangichetty/portfolio/adapters/http"
	"github.com/pranavsangichetty/portfolio/adapters/media_storage"
	"github.com/pranavsangichetty/portfolio/adapters/persistence"
	"github.com/pranavsangichetty/portfolio/internal/application/service"
	certificateUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/certificate"
	contactUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/contact"
	profileUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/profile"
	projectUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/project"
	resumeUC "github.com/pranavsangichetty/portfolio/internal/application/usecase/resume"
	"github.com/pranavsangichetty/portfolio/internal/application/usecase/upload"
	"github.com/pranavsangichetty/portfolio/internal/config"
	"github.com/pranavsangichetty/portfolio/internal/domain/activity"
	"github.com/pranavsangichetty/portfolio/internal/domain/profile"
	"github.com/pranavsangichetty/portfolio/internal/seed"
	"github.com/pranavsangichetty/portfolio/pkg/idgen"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
	"github.com/pranavsangichetty/portfolio/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	fs := pflag.NewFlagSet("server", pflag.ExitOnError)
	config.RegisterFlags(fs)
	fs.Parse(os.Args[1:])
	configPath, _ := fs.GetString("config")

	// Load configuration
	cfg, err := config.Load(configPath, fs)
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio API Server...", zap.String("env", cfg.App.Env))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing
	if tracing.Enabled(cfg) {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "")
		if err != nil {
			appLogger.Fatal("Cannot init tracer", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				appLogger.Error("Failed to shutdown tracer provider", err)
			}
		}()
	}

	// Content store, seeded on every start
	store := persistence.NewContentStore(seed.Default(), appLogger)
	ids := idgen.New()
	ids.Observe(store.MaxID())

	resumeRepo := persistence.NewMemoryResumeRepo(store)
	projectRepo := persistence.NewMemoryProjectRepo(store)
	certificateRepo := persistence.NewMemoryCertificateRepo(store)

	// Services
	registry := media_storage.NewMemoryRegistry(cfg, appLogger)
	publisher, closePublisher := newPublisher(cfg, appLogger)
	defer closePublisher()
	limiter, closeLimiter := newRateLimiter(cfg, appLogger)
	defer closeLimiter()

	owner := profile.Profile{
		Name:     cfg.Profile.Name,
		Headline: cfg.Profile.Headline,
		Email:    cfg.Profile.Email,
		GitHub:   cfg.Profile.GitHub,
		LinkedIn: cfg.Profile.LinkedIn,
	}

	// Use Cases
	adapter := upload.NewAdapter(registry, ids, appLogger)
	listResumesUseCase := resumeUC.NewListResumesUseCase(resumeRepo, appLogger)
	saveResumeUseCase := resumeUC.NewSaveResumeUseCase(resumeRepo, ids, publisher, appLogger)
	deleteResumeUseCase := resumeUC.NewDeleteResumeUseCase(resumeRepo, publisher, appLogger)
	drafts := resumeUC.NewEditSessions(resumeRepo, saveResumeUseCase, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, appLogger)
	uploadProjectsUseCase := projectUC.NewUploadProjectsUseCase(projectRepo, adapter, publisher, appLogger)
	rssUseCase := projectUC.NewRSSUseCase(projectRepo, owner, cfg.App.PublicBaseURL, appLogger)
	listCertificatesUseCase := certificateUC.NewListCertificatesUseCase(certificateRepo)
	uploadCertificatesUseCase := certificateUC.NewUploadCertificatesUseCase(certificateRepo, adapter, publisher, appLogger)
	submitContactUseCase := contactUC.NewSubmitContactUseCase(limiter, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Profile: httpAdapter.NewProfileHandler(profileUC.NewProfileUseCase(owner), appLogger),
		Resume: httpAdapter.NewResumeHandler(
			listResumesUseCase,
			saveResumeUseCase,
			deleteResumeUseCase,
			drafts,
			appLogger,
		),
		Project:     httpAdapter.NewProjectHandler(listProjectsUseCase, uploadProjectsUseCase, registry, appLogger),
		RSS:         httpAdapter.NewRSSHandler(rssUseCase, appLogger),
		Certificate: httpAdapter.NewCertificateHandler(listCertificatesUseCase, uploadCertificatesUseCase, registry, appLogger),
		Contact:     httpAdapter.NewContactHandler(submitContactUseCase, appLogger),
		Blob:        httpAdapter.NewBlobHandler(registry, appLogger),
	}

	router := httpAdapter.NewRouter(handlers, httpAdapter.RouterOptions{
		BlobPath:       cfg.Upload.BlobPath,
		MaxUploadSize:  cfg.Upload.MaxFileSize,
		MaxRequestSize: cfg.Upload.MaxRequestSize,
		SecureCookies:  cfg.App.Env == "production",
	}, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server stopped with error", err)
		return
	}
	appLogger.Info("Server stopped", zap.Int("open_drafts", drafts.Active()), zap.Int("uploads", registry.Len()))
}

func newPublisher(cfg config.Config, log logger.Logger) (activity.Publisher, func()) {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info("No Kafka brokers configured, activity events go to the log")
		return event.NewLogPublisher(log), func() {}
	}
	kafkaClient, err := event.NewKafkaProducerClient(cfg, log)
	if err != nil {
		log.Fatal("Cannot init Kafka", err)
	}
	return kafkaClient, kafkaClient.Close
}

func newRateLimiter(cfg config.Config, log logger.Logger) (service.RateLimiter, func()) {
	if cfg.Redis.Addr == "" {
		log.Info("No Redis configured, contact rate limit is per process")
		return persistence.NewMemoryRateLimiter(cfg.Contact.RateLimit, cfg.Contact.RateWindow), func() {}
	}
	redisClient, err := persistence.NewRedisClient(cfg, log)
	if err != nil {
		log.Fatal("Cannot connect Redis", err)
	}
	limiter := persistence.NewRedisRateLimiter(redisClient, "contact", cfg.Contact.RateLimit, cfg.Contact.RateWindow)
	return limiter, func() { redisClient.Close() }
}
