package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"recruitment-api/config"
	"recruitment-api/internal/delivery/http/middleware"
	v1 "recruitment-api/internal/delivery/http/v1"
	"recruitment-api/internal/domain"
	"recruitment-api/internal/repository/postgres"
	"recruitment-api/internal/usecase"
	"recruitment-api/migrations"
	"recruitment-api/pkg/audit"
	"recruitment-api/pkg/auth"
	"recruitment-api/pkg/database"
	"recruitment-api/pkg/logger"
	"recruitment-api/pkg/redis"
	"recruitment-api/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Recruitment Platform API
// @version         1.0
// @description     Registration, login and candidate management for a recruitment platform.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatalf("recruitment-api: %v", err)
	}
}

// run owns every resource so deferred cleanup happens before main exits.
func run() error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Setup Loggers
	appLog := logger.Init(cfg.LogLevel)
	appLog.Info("Starting recruitment backend", "port", cfg.Port, "env", cfg.Environment)

	auditLogger, err := audit.New("recruitment-api", cfg.Environment)
	if err != nil {
		return fmt.Errorf("build audit logger: %w", err)
	}
	defer auditLogger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	if cfg.RunMigrations {
		if err := database.Migrate(ctx, cfg.DBUrl, migrations.FS); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		appLog.Info("Migrations applied")
	}

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			appLog.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	rateLimiter := middleware.NewRateLimiter(redisClient, auditLogger)
	go rateLimiter.Cleanup(ctx, 5*time.Minute)

	// 5. Setup Repositories
	userRepo := postgres.NewAccountRepository(dbPool, domain.AccountUser)
	candidateAccountRepo := postgres.NewAccountRepository(dbPool, domain.AccountCandidate)
	recruiterRepo := postgres.NewAccountRepository(dbPool, domain.AccountRecruiter)
	profileRepo := postgres.NewProfileRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)

	// 6. Setup UseCases
	validate := validation.New()
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)

	userUC := usecase.NewAccountUsecase(domain.AccountUser, userRepo, hasher, tokens, auditLogger, validate)
	candidateAuthUC := usecase.NewAccountUsecase(domain.AccountCandidate, candidateAccountRepo, hasher, tokens, auditLogger, validate)
	recruiterUC := usecase.NewAccountUsecase(domain.AccountRecruiter, recruiterRepo, hasher, tokens, auditLogger, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserAuthUC:      userUC,
		CandidateAuthUC: candidateAuthUC,
		RecruiterAuthUC: recruiterUC,
		ProfileUC:       profileUC,
		CandidateUC:     candidateUC,
		HealthUC:        healthUC,
		Tokens:          tokens,
		RateLimiter:     rateLimiter,
		Audit:           auditLogger,
		Logger:          appLog,
		Config:          cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Server forced to shutdown", "error", err)
	}

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen: %w", err)
	default:
	}

	appLog.Info("Server exiting")
	return nil
}
