package looks

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lookbook-backend/internal/shared/server/respond"
)

// Handler exposes the looks endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches looks routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/looks/generate", h.generate)
	rg.POST("/looks/regenerate", h.regenerate)
}

func (h *Handler) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Generate(c.Request.Context(), req.Profile, req.ExcludeIDs)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.Set("generationId", result.GenerationID)
	respond.OK(c, result)
}

func (h *Handler) regenerate(c *gin.Context) {
	var req RegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Regenerate(c.Request.Context(), req.Profile, req.PreviouslyShownIDs)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.Set("generationId", result.GenerationID)
	respond.OK(c, result)
}

func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate looks", nil)
	}
}
