package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the user endpoints. User management is performed
// by the gateway itself, so no identity header is required here.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/users")
	{
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.DELETE("/:id", h.Delete)
	}
}
