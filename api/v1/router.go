package v1

import (
	"github.com/archidesk/config"
	"github.com/archidesk/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, cfg config.Config) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	authController := NewAuthController(cfg)
	authRequired := middleware.AuthMiddleware(authController.Service())

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", authController.Logout)

		authGroup.GET("/me", authRequired, authController.GetCurrentUser)
		authGroup.PUT("/profile", authRequired, authController.UpdateProfile)
		authGroup.POST("/change-password", authRequired, authController.ChangePassword)

		// Role-gated account creation; the access engine enforces who
		// may call these, so plain authentication is enough here.
		authGroup.POST("/add-architect", authRequired, authController.AddArchitect)
		authGroup.GET("/architects", authRequired, authController.ListArchitects)
		authGroup.POST("/add-client", authRequired, authController.AddClient)
	}

	// Resource endpoints - protected by AuthMiddleware
	authRouter := router.Group("")
	authRouter.Use(authRequired)

	NewProjectController(cfg).RegisterRoutes(authRouter)
	NewMeetingController(cfg).RegisterRoutes(authRouter)
	NewDocumentController(cfg).RegisterRoutes(authRouter)
}
