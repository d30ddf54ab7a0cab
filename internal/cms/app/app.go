package app

import (
	"context"
	"fmt"
	"log"

	"github.com/RoGasore/CALMNESS2/config"
	"github.com/RoGasore/CALMNESS2/internal/cms/bootstrap"
	"github.com/RoGasore/CALMNESS2/internal/cms/database"
	"github.com/RoGasore/CALMNESS2/internal/cms/handlers"
	"github.com/RoGasore/CALMNESS2/internal/cms/models"
	"github.com/RoGasore/CALMNESS2/internal/cms/repository/posgrest"
	"github.com/RoGasore/CALMNESS2/internal/cms/service"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.ContentDocument{}, &models.Role{}, &models.Permission{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	if err := database.SeedPermissions(db); err != nil {
		log.Fatalf("failed to seed permissions: %v", err)
	}
	if err := database.SeedContent(db); err != nil {
		log.Fatalf("failed to seed content: %v", err)
	}

	documentRepo := posgrest.New[models.ContentDocument](db)
	roleRepo := posgrest.New[models.Role](db)
	permissionRepo := posgrest.New[models.Permission](db)

	bootstrapService := bootstrap.NewService(roleRepo, permissionRepo)
	if _, err := bootstrapService.Run(context.Background()); err != nil {
		log.Fatalf("failed to bootstrap public permissions: %v", err)
	}

	contentService := service.NewContentService(documentRepo, roleRepo, permissionRepo)
	contentHandler := handlers.NewContentHandler(contentService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(contentHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.CMS.PORT))
	if err != nil {
		panic(err)
	}
}
