package routes

import (
	"recruit_backend/internal/handlers"
	"recruit_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, swagger bool) {
	root := ginRouter.Group("")
	{
		appHandlers.SubmissionHandler.RegisterRoutes(root)
		appHandlers.ImageHandler.RegisterRoutes(root)
		appHandlers.SystemHandler.RegisterRoutes(root)
	}

	api := ginRouter.Group("/api")
	{
		appHandlers.NoticeHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
	}

	if swagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Info("Swagger UI registered", "path", "/swagger/index.html")
	}

	// "/" и NoRoute - последними
	appHandlers.StaticHandler.RegisterRoutes(ginRouter)
}
