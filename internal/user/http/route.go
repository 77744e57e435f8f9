package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all user-related routes.
// Profile management is not tied to an acting user, so no actor middleware here.
func RegisterRoutes(g *gin.RouterGroup, h *UserHandler) {
	group := g.Group("/users")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
