package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, actorMiddleware gin.HandlerFunc) {
	group := g.Group("/requests")

	group.Use(actorMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.ListOwn)
		group.GET("/all", h.ListAll)
		group.GET("/:id", h.Get)
	}
}
