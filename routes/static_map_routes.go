package routes

import (
	handlers "staticmaps/internal/handlers/shared"
	"staticmaps/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupStaticMapRoutes sets up map rendering and preset routes
func SetupStaticMapRoutes(r *gin.RouterGroup, staticMapHandler *handlers.StaticMapHandler, jwtSecret string) {
	// Public rendering routes
	r.GET("/staticmap", staticMapHandler.RenderMapFromQuery)
	r.POST("/staticmap", staticMapHandler.RenderMap)

	presets := r.Group("/presets")
	{
		presets.GET("", staticMapHandler.ListPresets)
		presets.GET("/:name", staticMapHandler.GetPreset)
	}

	// Admin routes for preset management
	admin := r.Group("/presets")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.POST("", staticMapHandler.SavePreset)
		admin.DELETE("/:name", staticMapHandler.DeletePreset)
	}
}
