package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/issuehub/issuehub/internal/api/handlers"
	"github.com/issuehub/issuehub/internal/api/middleware"
	"github.com/issuehub/issuehub/internal/application"
	"github.com/issuehub/issuehub/internal/config/db"
	"github.com/issuehub/issuehub/internal/events"
	"github.com/issuehub/issuehub/internal/repository"
	"github.com/issuehub/issuehub/internal/storage"
)

func RegisterRoutes(r *gin.Engine, store storage.ObjectStore) {
	// init
	repos := repository.New(db.DB)
	hub := events.NewHub()
	services := application.New(repos, hub, store)
	h := handlers.New(services)
	auth := middleware.NewAuth(repos)

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)
	r.GET("/api/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.Auth.Signup)
		api.POST("/auth/login", h.Auth.Login)

		protected := api.Group("/")
		protected.Use(middleware.JWTAuthMiddleware(), auth.ResolveUser())
		{
			protected.GET("/me", h.Auth.Me)

			projects := protected.Group("/projects")
			{
				projects.POST("", h.Project.Create)
				projects.GET("", h.Project.List)
				projects.GET("/:id", h.Project.Detail)
				projects.POST("/:id/members", h.Project.AddMember)
				projects.GET("/:id/issues", h.Issue.List)
				projects.POST("/:id/issues", h.Issue.Create)
				projects.GET("/:id/events", h.Events.Stream)
			}

			issues := protected.Group("/issues")
			{
				issues.GET("/:id", h.Issue.Get)
				issues.PATCH("/:id", h.Issue.Update)
				issues.DELETE("/:id", h.Issue.Delete)
				issues.GET("/:id/comments", h.Comment.List)
				issues.POST("/:id/comments", h.Comment.Create)
				issues.GET("/:id/attachments", h.Attachment.List)
				issues.POST("/:id/attachments", h.Attachment.Upload)
			}

			attachments := protected.Group("/attachments")
			{
				attachments.GET("/:id", h.Attachment.Download)
				attachments.DELETE("/:id", h.Attachment.Delete)
			}
		}
	}
}
