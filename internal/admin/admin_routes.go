package admin

import (
	"github.com/gegidze/arena/config"
	mw "github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/internal/schedule"
	"github.com/gegidze/arena/internal/team"
	"github.com/gegidze/arena/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminRoutes sets up dashboard routes.
func AdminRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	controller := NewAdminController(team.NewTeamRepository(db), schedule.NewScheduleRepository(db))

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.GET("/stats", controller.GetStats)
	}
}
