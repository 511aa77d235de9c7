package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gstdesk/internal/domain"
	"gstdesk/internal/handler"
	"gstdesk/internal/middleware"
	"gstdesk/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	documentH *handler.DocumentHandler,
	itemH *handler.ItemHandler,
	attachmentH *handler.AttachmentHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.TenantGuard())

	// Document routes
	docs := protected.Group("/documents")
	docs.POST("", documentH.Create)
	docs.GET("", documentH.List)
	docs.GET("/:id", documentH.GetByID)
	docs.DELETE("/:id", documentH.Delete)
	docs.POST("/:id/lines", documentH.AddLine)
	docs.POST("/:id/items", documentH.AddItem)
	docs.PUT("/:id/lines/:lineId", documentH.UpdateLine)
	docs.DELETE("/:id/lines/:lineId", documentH.RemoveLine)
	docs.PUT("/:id/counterparty-state", documentH.SetCounterpartyState)
	docs.PUT("/:id/discount", documentH.SetDiscount)
	docs.POST("/:id/issue", documentH.Issue)
	docs.POST("/:id/void", documentH.Void)
	docs.POST("/:id/dispatch", documentH.Dispatch)
	docs.POST("/:id/attachments", attachmentH.Upload)
	docs.GET("/:id/attachments", attachmentH.List)

	// Attachment routes
	attachments := protected.Group("/attachments")
	attachments.GET("/:id/download", attachmentH.Download)
	attachments.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), attachmentH.Delete)

	// Item catalog routes
	items := protected.Group("/items")
	items.POST("", itemH.Create)
	items.GET("", itemH.List)
	items.GET("/:id", itemH.GetByID)
	items.PUT("/:id", itemH.Update)
	items.PUT("/:id/active", itemH.SetActive)
	items.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), itemH.Delete)

	// Export routes
	exports := protected.Group("/exports")
	exports.GET("/register", exportH.Register)

	return r
}
