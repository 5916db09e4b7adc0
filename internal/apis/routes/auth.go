package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"nl2query/internal/di"
)

func SetupAuthRoutes(router *gin.Engine) {
	authHandler, err := di.GetAuthHandler()
	if err != nil {
		log.Fatalf("Failed to get auth handler: %v", err)
	}

	auth := router.Group("/api/auth")
	{
		auth.POST("/token", authHandler.Token)
	}
}
