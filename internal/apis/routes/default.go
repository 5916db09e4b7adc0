package routes

import (
	"github.com/gin-gonic/gin"

	"nl2query/internal/apis/dtos"
)

func SetupDefaultRoutes(router *gin.Engine) {
	// Health check route
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, dtos.Response{
			Success: true,
			Data:    "nl2query is up",
		})
	})

	SetupAuthRoutes(router)
	SetupTranslateRoutes(router)
}
