package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gegidze/arena/config"
	"github.com/gegidze/arena/internal/admin"
	"github.com/gegidze/arena/internal/auth"
	"github.com/gegidze/arena/internal/caseopening"
	"github.com/gegidze/arena/internal/result"
	"github.com/gegidze/arena/internal/rule"
	"github.com/gegidze/arena/internal/schedule"
	"github.com/gegidze/arena/internal/setting"
	"github.com/gegidze/arena/internal/team"
	"github.com/gegidze/arena/pkg/storage"
)

// SetupRoutes wires every module under /api and returns the engine.
func SetupRoutes(db *gorm.DB, appConfig *config.Config, blobs storage.BlobStore) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if appConfig.App.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	auth.RegisterAuthRoutes(api, db, appConfig)
	team.TeamRoutes(api, db, appConfig)
	schedule.ScheduleRoutes(api, db, appConfig)
	caseopening.CaseRoutes(api, db, appConfig)
	result.ResultRoutes(api, db, appConfig, blobs)
	rule.RuleRoutes(api, db, appConfig)
	setting.SettingRoutes(api, db, appConfig)
	admin.AdminRoutes(api, db, appConfig)

	return r
}
