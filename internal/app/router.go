package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"

	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/session", c.auth.Session)
		public.POST("/logout", c.auth.Logout)

		public.GET("/courses", c.course.List)
		public.GET("/courses/:id", c.course.Get)
		public.GET("/courses/:id/rating", c.course.Rating)
		public.GET("/courses/:id/feedback", c.course.Feedback)
		public.GET("/categories", c.category.List)
	}

	// routes needing a resolved session
	authGroup := router.Group("/api")
	authGroup.Use(middleware.RequireSession(a.services.user))
	{
		authGroup.POST("/enroll", c.student.Enroll)
		authGroup.POST("/courses/:id/lessons/:idx/complete", c.student.CompleteLesson)
		authGroup.POST("/wishlist/:courseId", c.student.ToggleWishlist)
		authGroup.POST("/feedback", c.feedback.Create)
		authGroup.GET("/users/me/feedback", c.feedback.Mine)

		admin := authGroup.Group("")
		admin.Use(middleware.RequireRole(model.Admin))
		{
			admin.POST("/courses", c.course.Upsert)
			admin.POST("/categories/sync", c.category.Sync)
		}
	}
}
