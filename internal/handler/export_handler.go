package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-console-api/internal/service"
	appErrors "github.com/noah-isme/campus-console-api/pkg/errors"
	"github.com/noah-isme/campus-console-api/pkg/response"
)

type rosterExportService interface {
	Export(ctx context.Context, courseID, format string) (*service.RosterExport, error)
}

// ExportHandler streams roster documents for download.
type ExportHandler struct {
	service rosterExportService
	enabled bool
}

// NewExportHandler constructs the handler.
func NewExportHandler(svc rosterExportService, enabled bool) *ExportHandler {
	return &ExportHandler{service: svc, enabled: enabled}
}

// Roster renders the course roster in the requested format and sends it as
// an attachment. Defaults to CSV when no format is given.
func (h *ExportHandler) Roster(c *gin.Context) {
	if !h.enabled {
		response.Error(c, appErrors.ErrDisabled)
		return
	}
	format := c.DefaultQuery("format", service.RosterFormatCSV)
	result, err := h.service.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
