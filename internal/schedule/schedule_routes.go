package schedule

import (
	"github.com/gegidze/arena/config"
	mw "github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/internal/team"
	"github.com/gegidze/arena/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ScheduleRoutes sets up schedule and scrim-request routes.
func ScheduleRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	scheduleRepo := NewScheduleRepository(db)
	teamRepo := team.NewTeamRepository(db)
	scheduleController := NewScheduleController(scheduleRepo, teamRepo, appConfig)

	// Public
	router.GET("/schedules", scheduleController.GetActiveSchedules)

	// Authenticated
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authRoutes.POST("/scrim-request", scheduleController.CreateScrimRequest)
	}

	// Admin
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/schedules", scheduleController.AdminCreateSchedule)
		adminRoutes.GET("/schedules", scheduleController.AdminGetAllSchedules)
		adminRoutes.DELETE("/schedules/:schedule_id", scheduleController.AdminDeleteSchedule)
		adminRoutes.GET("/scrim-requests", scheduleController.AdminGetScrimRequests)
	}
}
