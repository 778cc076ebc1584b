package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/pkg/response"
)

type searchService interface {
	Search(ctx context.Context, query string) (*dto.SearchBundle, error)
}

// SearchHandler serves the global search bar.
type SearchHandler struct {
	service searchService
}

// NewSearchHandler constructs the handler.
func NewSearchHandler(service searchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search runs the query and returns the flattened result list.
func (h *SearchHandler) Search(c *gin.Context) {
	bundle, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle)
}
