package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	variables := rg.Group("/variables")
	{
		variables.POST("", h.Define)
		variables.GET("", h.List)
		variables.GET("/:name", h.Detail)
		variables.PUT("/:name", h.Update)
		variables.DELETE("/:name", h.Delete)
	}
}
