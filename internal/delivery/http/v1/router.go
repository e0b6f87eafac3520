package v1

import (
	"log/slog"

	"recruitment-api/config"
	"recruitment-api/internal/delivery/http/middleware"
	"recruitment-api/internal/domain"
	"recruitment-api/internal/usecase"
	"recruitment-api/pkg/audit"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	UserAuthUC      domain.AccountUsecase
	CandidateAuthUC domain.AccountUsecase
	RecruiterAuthUC domain.AccountUsecase
	ProfileUC       domain.ProfileUsecase
	CandidateUC     domain.CandidateUsecase
	HealthUC        usecase.HealthUsecase
	Tokens          domain.TokenService
	RateLimiter     *middleware.RateLimiter
	Audit           *audit.Logger
	Logger          *slog.Logger
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(deps.RateLimiter.Middleware(middleware.GlobalConfig(deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindow())))
	r.Use(middleware.ErrorHandler(deps.Logger))

	authLimit := deps.RateLimiter.Middleware(middleware.AuthConfig(deps.Config.RateLimitAuthThreshold, deps.Config.RateLimitWindow()))
	authenticate := middleware.AuthMiddleware(deps.Tokens, deps.Audit)

	NewHealthHandler(r, deps.HealthUC)

	// Generic users
	userAuth := r.Group("/auth/user")
	{
		NewAccountHandler(userAuth, deps.UserAuthUC, authLimit)
		userAuth.GET("/test", authenticate, TokenInfo)
	}

	// Candidates
	candidate := r.Group("/candidate")
	{
		candidate.GET("/hello-world", HelloWorld)
		NewAccountHandler(candidate, deps.CandidateAuthUC, authLimit)
		NewProfileHandler(candidate.Group("", authenticate), deps.ProfileUC)
	}

	// Recruiters
	recruiter := r.Group("/recruiter")
	{
		recruiter.GET("/hello-world", HelloWorld)
		NewAccountHandler(recruiter, deps.RecruiterAuthUC, authLimit)
		NewRecruiterHandler(recruiter.Group("", authenticate, middleware.RequireRole(domain.RoleRecruiter, deps.Audit)), deps.CandidateUC)
	}

	// Open CRUD
	NewCandidateHandler(&r.RouterGroup, deps.CandidateUC)

	return r
}
