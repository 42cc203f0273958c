package router

import (
	"github.com/gin-gonic/gin"

	"github.com/udyogsetu/udyogsetu-backend/config"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/controller"
	"github.com/udyogsetu/udyogsetu-backend/internal/middleware"
)

type Router struct {
	authController         *controller.AuthController
	profileController      *controller.ProfileController
	documentController     *controller.DocumentController
	notificationController *controller.NotificationController
	schemeController       *controller.SchemeController
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	profileController *controller.ProfileController,
	documentController *controller.DocumentController,
	notificationController *controller.NotificationController,
	schemeController *controller.SchemeController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		profileController:      profileController,
		documentController:     documentController,
		notificationController: notificationController,
		schemeController:       schemeController,
		authMiddleware:         authMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "UdyogSetu API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
		}

		profile := v1.Group("/business-profile")
		{
			profile.GET("/requirements", r.profileController.Requirements)
			profile.GET("", r.authMiddleware.Authenticate(), r.profileController.GetProfile)
			profile.POST("", r.authMiddleware.Authenticate(), r.profileController.SaveProfile)
			profile.GET("/recommendations", r.authMiddleware.Authenticate(), r.profileController.Recommendations)
			profile.GET("/recommendations/export", r.authMiddleware.Authenticate(), r.profileController.ExportRecommendations)
		}

		documents := v1.Group("/documents", r.authMiddleware.Authenticate())
		{
			documents.GET("", r.documentController.List)
			documents.POST("/upload", r.documentController.Upload)
			documents.POST("/revalidate/:id", r.documentController.Revalidate)
		}

		notifications := v1.Group("/notifications", r.authMiddleware.Authenticate())
		{
			notifications.GET("", r.notificationController.List)
			notifications.POST("/read/:id", r.notificationController.MarkRead)
			notifications.POST("/read-all", r.notificationController.MarkAllRead)
		}

		v1.GET("/schemes", r.authMiddleware.Authenticate(), r.schemeController.List)
		v1.POST("/chatbot/scheme-assistant", r.authMiddleware.Authenticate(), r.schemeController.Assist)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
