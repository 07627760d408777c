package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "mailtriage/docs"
	"mailtriage/internal/config"
	"mailtriage/internal/handler"
	"mailtriage/internal/middleware"
)

// multipartOverhead is headroom for multipart framing on top of the file size limit.
const multipartOverhead = 1 << 20

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	healthH *handler.HealthHandler,
	classifyH *handler.ClassifyHandler,
) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.MaxBytes()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Index and health checks
	r.GET("/", healthH.Index)
	r.GET("/health", healthH.Liveness)
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Classification
	limited := r.Group("")
	limited.Use(middleware.BodyLimit(cfg.Upload.MaxBytes() + multipartOverhead))
	limited.POST("/classify-text", classifyH.ClassifyText)
	limited.POST("/upload", classifyH.Upload)
	limited.POST("/api/classify", classifyH.ClassifyAPI)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
