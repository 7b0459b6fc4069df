package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
// Extra middleware applies only to the submit route.
func (h *Handler) Register(rg *gin.RouterGroup, submitMiddleware ...gin.HandlerFunc) {
	rg.POST("", append(submitMiddleware, h.submit)...)
	rg.GET("", h.list)
}
