package team

import (
	"github.com/gegidze/arena/config"
	mw "github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo, appConfig)

	// Public team routes
	router.GET("/teams", teamController.GetAllTeams)

	// Authenticated user routes
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authRoutes.POST("/teams", teamController.RegisterTeam)
		authRoutes.GET("/teams/mine", teamController.GetMyTeam)
	}

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.GET("/teams", teamController.AdminGetAllTeams)
		adminRoutes.PATCH("/teams/:team_id/status", teamController.AdminUpdateStatus)
		adminRoutes.POST("/teams/:team_id/vip-toggle", teamController.AdminToggleVip)
		adminRoutes.PATCH("/teams/:team_id/slot", teamController.AdminSetSlot)
		adminRoutes.DELETE("/teams/:team_id", teamController.AdminDeleteTeam)
	}
}
