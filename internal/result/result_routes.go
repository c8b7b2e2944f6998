package result

import (
	"github.com/gegidze/arena/config"
	mw "github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/pkg/rmiddleware"
	"github.com/gegidze/arena/pkg/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResultRoutes sets up result routes.
func ResultRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, blobs storage.BlobStore) {
	resultRepo := NewResultRepository(db)
	resultController := NewResultController(resultRepo, blobs)

	router.GET("/results", resultController.GetAllResults)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/results", resultController.AdminCreateResult)
		adminRoutes.DELETE("/results/:result_id", resultController.AdminDeleteResult)
	}
}
