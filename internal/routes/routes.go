package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finvest_backend/internal/handlers"
)

// RegisterRoutes mounts every HTTP route under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.DetailsHandler.RegisterRoutes(api)
		appHandlers.HealthHandler.RegisterRoutes(api)
	}

	ginRouter.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "API endpoint not found",
		})
	})
}
