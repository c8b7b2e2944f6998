package main

import (
	"log"

	"github.com/gegidze/arena/config"
	_ "github.com/gegidze/arena/docs"
	"github.com/gegidze/arena/internal/caseopening"
	"github.com/gegidze/arena/internal/result"
	"github.com/gegidze/arena/internal/rule"
	"github.com/gegidze/arena/internal/schedule"
	"github.com/gegidze/arena/internal/setting"
	"github.com/gegidze/arena/internal/team"
	"github.com/gegidze/arena/internal/user"
	"github.com/gegidze/arena/pkg/storage"
	"github.com/gegidze/arena/routes"
)

// @title Arena Tournament API
// @version 1.0
// @description Backend for the arena tournament community site.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&team.Team{},
		&schedule.Schedule{}, &schedule.ScrimRequest{},
		&caseopening.CaseOpening{}, &caseopening.UserVipStatus{},
		&result.Result{}, &rule.Rule{}, &setting.SiteSetting{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	blobs, err := storage.NewSpacesStore(cfg.Spaces.Key, cfg.Spaces.Secret, cfg.Spaces.Region, cfg.Spaces.Bucket)
	if err != nil {
		log.Fatalf("Failed to build blob storage: %v", err)
	}

	r := routes.SetupRoutes(config.DB, cfg, blobs)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
