package auth

import (
	"github.com/gegidze/arena/config"
	"github.com/gegidze/arena/internal/caseopening"
	"github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/internal/team"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes sets up authentication and profile routes.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewAuthRepository(db)
	teamRepo := team.NewTeamRepository(db)
	caseRepo := caseopening.NewCaseRepository(db)
	authController := NewAuthController(authRepo, teamRepo, caseRepo, appConfig)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authProtected.GET("/me", authController.GetProfile)
	}
}
