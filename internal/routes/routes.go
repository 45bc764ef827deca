package routes

import (
	"links-backend/internal/config"
	"links-backend/internal/handlers"
	"links-backend/internal/middleware"
	"links-backend/internal/services"
	"links-backend/internal/store"

	"github.com/gin-gonic/gin"
)

func Setup(container *store.Container, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowOrigins))
	router.Use(middleware.RateLimitMiddleware(60))

	authService := services.NewAuthService(cfg)
	linkService := services.NewLinkService(container)
	categoryService := services.NewCategoryService(container)
	groupService := services.NewGroupService(container)
	statsService := services.NewStatsService(container)
	importService := services.NewImportService(container, cfg.Import.MaxSampleErrors)
	suggestService := services.NewSuggestService(cfg.AI)

	authHandler := handlers.NewAuthHandler(authService)
	linkHandler := handlers.NewLinkHandler(linkService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	groupHandler := handlers.NewGroupHandler(groupService)
	statsHandler := handlers.NewStatsHandler(statsService)
	importExportHandler := handlers.NewImportExportHandler(importService)
	suggestHandler := handlers.NewSuggestHandler(suggestService)

	api := router.Group("/api")

	public := api.Group("")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		links := protected.Group("/links")
		{
			links.GET("", linkHandler.GetLinks)
			links.POST("", linkHandler.CreateLink)
			links.GET("/:id", linkHandler.GetLink)
			links.PUT("/:id", linkHandler.UpdateLink)
			links.DELETE("/:id", linkHandler.DeleteLink)
			links.POST("/:id/click", linkHandler.RecordClick)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
			categories.GET("/:id/subcategories", categoryHandler.GetSubcategories)
			categories.POST("/:id/subcategories", categoryHandler.CreateSubcategory)
		}

		subcategories := protected.Group("/subcategories")
		{
			subcategories.PUT("/:id", categoryHandler.UpdateSubcategory)
			subcategories.DELETE("/:id", categoryHandler.DeleteSubcategory)
		}

		groups := protected.Group("/groups")
		{
			groups.GET("", groupHandler.GetGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.PUT("/:id", groupHandler.UpdateGroup)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
			groups.POST("/:id/visibility", groupHandler.ToggleVisibility)
		}

		protected.GET("/stats", statsHandler.GetStats)

		importGroup := protected.Group("/import")
		{
			importGroup.POST("/excel", importExportHandler.ImportExcel)
			importGroup.POST("/links", importExportHandler.ImportRows)
			importGroup.POST("/restore", importExportHandler.Restore)
			importGroup.GET("/template", importExportHandler.ExportTemplate)
		}

		exportGroup := protected.Group("/export")
		{
			exportGroup.GET("/excel", importExportHandler.ExportExcel)
			exportGroup.GET("/json", importExportHandler.ExportJSON)
		}

		protected.POST("/suggest", suggestHandler.Suggest)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "服务运行正常",
		})
	})

	return router
}
