package app

import (
	"tradelens_backend/internal/config"
	"tradelens_backend/internal/middleware"
	"tradelens_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerCommunityRoutes(router, c, cfg)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/logout", c.auth.Logout)

		authGroup.GET("/profile", c.user.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)

		authGroup.POST("/predictions", c.prediction.Submit)
		authGroup.GET("/predictions", c.prediction.List)
		authGroup.PATCH("/predictions/:id/result", c.prediction.Settle)

		authGroup.POST("/lessons/progress", c.learning.RecordProgress)
		authGroup.GET("/lessons/progress", c.learning.Progress)

		authGroup.POST("/mentor/predict", c.mentor.Predict)
		authGroup.POST("/mentor/assess", c.mentor.Assess)

		authGroup.GET("/settings", c.settings.Get)
		authGroup.PUT("/settings", c.settings.Update)

		authGroup.GET("/data/export", c.snapshot.Export)
		authGroup.POST("/data/import", c.snapshot.Import)
		authGroup.POST("/data/backup", c.snapshot.Backup)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/market/quote/:asset", c.market.Quote)
		public.GET("/market/sentiment/:asset", c.market.Sentiment)
	}
}

// Feed reads are open to guests; likes, comments and new posts require a
// logged-in trader.
func (a *App) registerCommunityRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	community := router.Group("/api/community")
	{
		community.GET("/posts", middleware.TryAuthMiddleware(cfg), c.community.GetFeed)
		community.GET("/counts", middleware.TryAuthMiddleware(cfg), c.community.GetCounts)

		authorized := community.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.POST("/posts", c.community.CreatePost)
			authorized.POST("/posts/:id/like", c.community.ToggleLike)
			authorized.POST("/posts/:id/comments", c.community.AddComment)
		}
	}
}
