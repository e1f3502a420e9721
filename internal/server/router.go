package server

import (
	"time"

	"novusfiles-backend/internal/features/files"
	system_healthcheck "novusfiles-backend/internal/features/system/healthcheck"
	users_controllers "novusfiles-backend/internal/features/users/controllers"
	users_middleware "novusfiles-backend/internal/features/users/middleware"
	"novusfiles-backend/internal/util/logger"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the full API surface. Public routes (register,
// login, tokenized download, file info, health) sit next to an
// authenticated group gated by the bearer middleware.
func NewRouter() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), corsMiddleware())

	api := engine.Group("/api/v1")

	users_controllers.GetUserController().RegisterRoutes(api)
	files.GetFileController().RegisterPublicRoutes(api)
	system_healthcheck.GetHealthcheckController().RegisterRoutes(api)

	authenticated := api.Group("")
	authenticated.Use(users_middleware.RequireAuth())
	users_controllers.GetUserController().RegisterAuthenticatedRoutes(authenticated)
	files.GetFileController().RegisterRoutes(authenticated)

	return engine
}

func requestLogger() gin.HandlerFunc {
	log := logger.GetLogger()

	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		log.Info("Request handled",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"durationMs", time.Since(start).Milliseconds(),
		)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if ctx.Request.Method == "OPTIONS" {
			ctx.AbortWithStatus(204)
			return
		}

		ctx.Next()
	}
}
