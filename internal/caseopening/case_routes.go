package caseopening

import (
	"github.com/gegidze/arena/config"
	mw "github.com/gegidze/arena/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CaseRoutes sets up the case-opening routes. Both require authentication;
// eligibility itself is enforced by the engine, not the router.
func CaseRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewCaseRepository(db)
	controller := NewCaseController(NewEngine(repo), repo)

	caseRoutes := router.Group("/case")
	caseRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		caseRoutes.GET("/status", controller.GetStatus)
		caseRoutes.POST("/open", controller.OpenCase)
	}
}
