package rule

import (
	"github.com/gegidze/arena/config"
	mw "github.com/gegidze/arena/internal/middleware"
	"github.com/gegidze/arena/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RuleRoutes sets up rulebook routes.
func RuleRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	ruleRepo := NewRuleRepository(db)
	ruleController := NewRuleController(ruleRepo)

	router.GET("/rules", ruleController.GetAllRules)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/rules", ruleController.AdminCreateRule)
		adminRoutes.PUT("/rules/:rule_id", ruleController.AdminUpdateRule)
		adminRoutes.DELETE("/rules/:rule_id", ruleController.AdminDeleteRule)
	}
}
