package http

import (
	"github.com/comparehub/shopper/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.Server.RatePerIP))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", handler.ListProducts)
		v1.GET("/products/:id", handler.GetProduct)
		v1.GET("/compare", handler.Compare)

		v1.GET("/analytics/summary", handler.AnalyticsSummary)
		v1.GET("/analytics/top-deals", handler.TopDeals)
		v1.POST("/track/click", handler.TrackClick)

		basket := v1.Group("/basket")
		{
			basket.GET("", handler.GetBasket)
			basket.POST("/toggle/:id", handler.ToggleBasket)
			basket.DELETE("/:id", handler.RemoveFromBasket)
			basket.DELETE("", handler.ClearBasket)
		}

		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", handler.GetWishlist)
			wishlist.POST("", handler.AddToWishlist)
			wishlist.POST("/toggle", handler.ToggleWishlist)
			wishlist.DELETE("/:id", handler.RemoveFromWishlist)
			wishlist.DELETE("", handler.ClearWishlist)
		}

		prefs := v1.Group("/preferences")
		{
			prefs.GET("", handler.GetPreferences)
			prefs.PUT("", handler.UpdatePreferences)
		}
	}

	return router
}
