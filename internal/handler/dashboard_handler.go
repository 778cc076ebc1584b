package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/middleware"
	"github.com/noah-isme/campus-console-api/internal/models"
	"github.com/noah-isme/campus-console-api/pkg/response"
)

type dashboardService interface {
	Bundle(ctx context.Context, capability models.Capability) (*dto.DashboardBundle, bool, error)
}

// DashboardHandler serves the landing screen bundle.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get returns the dashboard bundle.
func (h *DashboardHandler) Get(c *gin.Context) {
	capability := middleware.CapabilityFrom(c)

	start := time.Now()
	bundle, cacheHit, err := h.service.Bundle(c.Request.Context(), capability)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, bundle, meta)
}
