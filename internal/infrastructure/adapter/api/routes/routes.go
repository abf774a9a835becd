package routes

import (
	"net/http"

	"github.com/matheusvbd/crudapi/internal/domain/entity"
	coreport "github.com/matheusvbd/crudapi/internal/domain/port/core"
	"github.com/matheusvbd/crudapi/internal/infrastructure/adapter/api/handler"
	"github.com/matheusvbd/crudapi/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterResource mounts the five CRUD routes for one resource
func RegisterResource[E entity.Identifiable, D entity.Identifiable](
	router gin.IRouter,
	resource string,
	ctrl *handler.Controller[E, D],
) {
	group := router.Group("/" + resource)
	{
		group.GET("", ctrl.List)
		group.POST("", ctrl.Add)
		group.GET("/:id", ctrl.Get)
		group.PUT("/:id", ctrl.Update)
		group.DELETE("/:id", ctrl.Remove)
	}
}

// RegisterHealth mounts the health check endpoint
func RegisterHealth(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
