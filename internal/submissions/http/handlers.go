package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/project-submissions/internal/logging"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/domain"
)

func (h *Handler) submit(c *gin.Context) {
	var req domain.SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, domain.ErrorResponse{Error: msgTooLarge})
			return
		}
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: msgMissingFields})
		return
	}

	if _, err := h.svc.Submit(c.Request.Context(), &req); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: msgMissingFields})
			return
		}
		logging.New(c.Request.Context()).LogError("submit", err)
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: msgServerError})
		return
	}

	c.JSON(http.StatusOK, domain.MessageResponse{Message: msgSubmitted})
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		logging.New(c.Request.Context()).LogError("list", err)
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: msgServerError})
		return
	}
	c.JSON(http.StatusOK, projects)
}
