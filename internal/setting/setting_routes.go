package setting

import (
	"github.com/gegidze/arena/config"
	mw "github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/internal/team"
	"github.com/gegidze/arena/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingRoutes sets up site-setting and room-info routes.
func SettingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	settingRepo := NewSettingRepository(db)
	teamRepo := team.NewTeamRepository(db)
	settingController := NewSettingController(settingRepo, teamRepo)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authRoutes.GET("/room-info", settingController.GetRoomInfo)
	}

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.GET("/settings", settingController.AdminGetSettings)
		adminRoutes.PUT("/settings/:setting_id", settingController.AdminUpdateSetting)
	}
}
