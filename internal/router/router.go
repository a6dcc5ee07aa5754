package router

import (
	"github.com/gin-gonic/gin"

	"invoicestudio/internal/config"
	"invoicestudio/internal/handler"
	"invoicestudio/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	sessionH *handler.SessionHandler,
	templateH *handler.TemplateHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Template catalog
	v1.GET("/templates", templateH.List)

	// Editing sessions
	sessions := v1.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.DELETE("/:id", sessionH.Delete)
	sessions.GET("/:id/document", sessionH.GetDocument)
	sessions.PUT("/:id/document", sessionH.ReplaceDocument)
	sessions.POST("/:id/items", sessionH.AddLineItem)
	sessions.PATCH("/:id/items/:itemID", sessionH.UpdateLineItem)
	sessions.DELETE("/:id/items/:itemID", sessionH.RemoveLineItem)
	sessions.POST("/:id/template", templateH.Apply)
	sessions.PUT("/:id/logo", sessionH.SetLogo)
	sessions.GET("/:id/preview", sessionH.Preview)

	// Downloads
	sessions.GET("/:id/export/pdf", exportH.PDF)
	sessions.GET("/:id/export/csv", exportH.CSV)
	sessions.GET("/:id/export/xlsx", exportH.XLSX)

	return r
}
