package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lookbook-backend/internal/shared/server/respond"
)

// Handler exposes read-only catalog endpoints for the quiz frontend.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/items", h.listItems)
	rg.GET("/catalog/items/:id", h.getItem)
}

type itemResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Price        float64  `json:"price"`
	Gender       string   `json:"gender"`
	Colors       []string `json:"colors"`
	Sizes        []string `json:"sizes"`
	GiftSuitable bool     `json:"giftSuitable"`
	Featured     bool     `json:"featured"`
	ImageURL     string   `json:"imageUrl"`
	ProductURL   string   `json:"productUrl"`
}

func (h *Handler) listItems(c *gin.Context) {
	items, err := h.Repo.ListAvailable(c.Request.Context())
	if err != nil {
		h.repoError(c, err)
		return
	}

	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	respond.OK(c, gin.H{"items": out})
}

func (h *Handler) getItem(c *gin.Context) {
	item, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "item not found", nil)
			return
		}
		h.repoError(c, err)
		return
	}
	respond.OK(c, toItemResponse(item))
}

func (h *Handler) repoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load catalog", nil)
	}
}

func toItemResponse(item Item) itemResponse {
	return itemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Brand:        item.Brand,
		Category:     item.Category,
		Subcategory:  item.Subcategory,
		Price:        item.Price,
		Gender:       item.Gender,
		Colors:       item.Colors,
		Sizes:        item.Sizes,
		GiftSuitable: item.GiftSuitable,
		Featured:     item.Featured,
		ImageURL:     item.ImageURL,
		ProductURL:   item.ProductURL,
	}
}
