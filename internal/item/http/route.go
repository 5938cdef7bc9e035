package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, identityMiddleware gin.HandlerFunc) {
	group := g.Group("/items")

	group.Use(identityMiddleware)
	{
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.GET("/search", h.Search)
		group.GET("/:id", h.Get)
		group.GET("", h.List)
		group.POST("/:id/comment", h.AddComment)
	}
}
