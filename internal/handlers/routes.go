package handlers

import (
	"net/http"
	"time"

	"terraform-day4-lambda/internal/config"
	_ "terraform-day4-lambda/internal/docs"
	"terraform-day4-lambda/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version reported by the health endpoint
const Version = "1.0.0"

// maxEventSize matches the synchronous invocation payload limit of Lambda
const maxEventSize = 6 * 1024 * 1024

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Config *config.Config
	Logger *logrus.Logger
	Hello  *HelloHandler
}

// NewRouter builds the local invoke server
func NewRouter(cfg *RouterConfig) *gin.Engine {
	if cfg.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	SetupMiddleware(router, cfg)
	SetupRoutes(router, cfg)
	return router
}

// SetupRoutes configures all routes
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	invokeHandler := NewInvokeHandler(cfg.Hello)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", healthCheck)

	router.POST(InvocationPath, invokeHandler.Invoke)
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestSizeLimit(maxEventSize))
	router.Use(middleware.RateLimiter(cfg.Logger, cfg.Config.RateLimit.RequestsPerSecond, cfg.Config.RateLimit.Burst))
	router.Use(middleware.StructuredLogger(cfg.Logger))
	router.Use(middleware.ErrorHandler(cfg.Logger))
}

// healthCheck reports service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   Version,
	})
}
