package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/issuehub/issuehub/docs"
	"github.com/issuehub/issuehub/internal/api/middleware"
	"github.com/issuehub/issuehub/internal/api/routes"
	"github.com/issuehub/issuehub/internal/config"
	"github.com/issuehub/issuehub/internal/config/db"
	"github.com/issuehub/issuehub/internal/domain/attachment"
	"github.com/issuehub/issuehub/internal/domain/comment"
	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/domain/user"
	"github.com/issuehub/issuehub/internal/observ"
	"github.com/issuehub/issuehub/internal/storage"
)

// @title IssueHub API
// @version 1.0
// @description Multi-tenant issue tracking service with projects, role-based membership, issues, comments and attachments.
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	logger, err := observ.NewLogger(config.Env, config.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&project.Member{},
		&issue.Issue{},
		&comment.Comment{},
		&attachment.Attachment{},
	); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	store, err := storage.NewMinioStore()
	if err != nil {
		logger.Fatal("Failed to connect to object storage", zap.Error(err))
	}

	if config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger(logger))

	routes.RegisterRoutes(router, store)

	addr := ":" + config.ServerPort
	logger.Info("Starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("Failed to start", zap.Error(err))
	}
}
