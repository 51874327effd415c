package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobportal-backend/config"
	_ "go-jobportal-backend/docs" // Important for Swagger
	v1 "go-jobportal-backend/internal/delivery/http/v1"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/auth"
	"go-jobportal-backend/pkg/database"
	"go-jobportal-backend/pkg/email"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/publisher"
	redisclient "go-jobportal-backend/pkg/redis"
	"go-jobportal-backend/pkg/upload"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Job Portal Backend API
// @version         1.0
// @description     Companies, jobs, applications and user profiles for a job portal.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.Options{
		MaxConns:         int32(cfg.DBMaxConns),
		StatementTimeout: time.Duration(cfg.DBStatementTimeout) * time.Millisecond,
		ConnectTimeout:   10 * time.Second,
		SimpleProtocol:   cfg.DBSimpleProtocol,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Optional Redis for the topic publisher and rate limit counters
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redisclient.NewClient(ctx, redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, falling back to in-memory rate limits", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// 5. Collaborators
	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to set up uploads", "error", err)
		os.Exit(1)
	}
	notifier := newNotifier(cfg, redisClient)

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 7. Setup UseCases
	userUC := usecase.NewUserUsecase(userRepo, skillRepo, uploader)
	companyUC := usecase.NewCompanyUsecase(companyRepo, uploader)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, notifier)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Auth Provider (JWKS)
	var jwksProvider *auth.Provider
	if cfg.JWKSURL != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSURL)
	}

	// 9. Setup Router
	deps := v1.RouterDeps{
		UserUC:        userUC,
		CompanyUC:     companyUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		HealthUC:      healthUC,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	}
	// A nil *redis.Client must not reach the interface field.
	if redisClient != nil {
		deps.RateLimitStore = redisClient
	}
	router := v1.NewRouter(deps)

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newUploader(ctx context.Context, cfg *config.Config) (domain.FileUploader, error) {
	uploader, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.ClamAVAddress != "" {
		scanner := upload.NewClamAV(cfg.ClamAVAddress, time.Duration(cfg.ClamAVTimeoutSeconds)*time.Second)
		return upload.NewScanned(uploader, scanner), nil
	}
	return uploader, nil
}

func newStorage(ctx context.Context, cfg *config.Config) (domain.FileUploader, error) {
	if cfg.UploadBackend != "s3" {
		return upload.NewServiceClient(cfg.UploadServiceURL, time.Duration(cfg.UploadTimeoutSeconds)*time.Second), nil
	}

	s3cfg := upload.S3Config{
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Endpoint:        cfg.S3Endpoint,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	}
	client, err := upload.NewS3Client(ctx, s3cfg)
	if err != nil {
		return nil, err
	}
	return upload.NewS3Uploader(client, s3cfg), nil
}

func newNotifier(cfg *config.Config, redisClient *goredis.Client) domain.Notifier {
	switch cfg.NotifyBackend {
	case "redis":
		if redisClient != nil {
			return publisher.NewRedisPublisher(redisClient)
		}
	case "smtp":
		svc := email.NewService(cfg)
		if svc.IsConfigured() {
			return svc
		}
		logger.Log.Warn("SMTP not fully configured")
	}
	logger.Log.Warn("Notifications will only be logged", "backend", cfg.NotifyBackend)
	return publisher.LogPublisher{}
}
