package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/megane-nerdo/skillhubnext/internal/handlers"
	"github.com/megane-nerdo/skillhubnext/internal/middleware"
)

// SetupRouter builds the gin engine and mounts every route group.
func SetupRouter(h *handlers.AppHandlers, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.Users.RegisterRoutes(api)
		h.Subscriptions.RegisterRoutes(api)
		h.Jobs.RegisterRoutes(api)
		h.Applications.RegisterRoutes(api)
		h.Catalog.RegisterRoutes(api)
		h.Uploads.RegisterRoutes(api)
	}

	return r
}
