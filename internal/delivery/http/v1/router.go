package v1

import (
	"net/http"
	"time"

	"go-jobfinder-backend/config"
	"go-jobfinder-backend/internal/delivery/http/middleware"
	"go-jobfinder-backend/internal/delivery/http/response"
	"go-jobfinder-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	ProfileUC   domain.ProfileUsecase
	SearchUC    domain.SearchUsecase
	SavedUC     domain.SavedPostingUsecase
	ATSUC       domain.ATSUsecase
	AnalyticsUC domain.AnalyticsUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stricter limit on credential guessing
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))

	// Uploads get their own limit on top of auth
	uploads := protected.Group("")
	uploads.Use(middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(window)))
	{
		NewAuthHandler(public, protected, deps.AuthUC, deps.Config)
		NewProfileHandler(protected, deps.ProfileUC)
		NewResumeHandler(uploads, deps.ProfileUC, deps.Config)
		NewJobHandler(protected, deps.SearchUC, deps.SavedUC)
		NewATSHandler(protected, deps.ATSUC)
		NewAnalyticsHandler(protected, deps.AnalyticsUC)
	}

	return r
}
