package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"nl2query/internal/apis/middlewares"
	"nl2query/internal/di"
)

func SetupTranslateRoutes(router *gin.Engine) {
	translateHandler, err := di.GetTranslateHandler()
	if err != nil {
		log.Fatalf("Failed to get translate handler: %v", err)
	}

	protected := router.Group("/api")
	protected.Use(middlewares.AuthMiddleware())
	{
		// Schema registration
		protected.POST("/schemas", translateHandler.RegisterSchema)
		protected.POST("/schemas/postgres", translateHandler.RegisterPostgresSchema)
		protected.POST("/schemas/mongodb", translateHandler.RegisterMongoSchema)

		// Translation
		protected.POST("/translate", translateHandler.Translate)
	}
}
