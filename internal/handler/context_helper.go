package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-console-api/internal/middleware"
	"github.com/noah-isme/campus-console-api/internal/models"
	appErrors "github.com/noah-isme/campus-console-api/pkg/errors"
	"github.com/noah-isme/campus-console-api/pkg/response"
)

// requireEdit resolves the request capability and rejects when editing is
// not permitted. The returned bool reports whether handling may continue.
func requireEdit(c *gin.Context) (models.Capability, bool) {
	capability := middleware.CapabilityFrom(c)
	if !capability.CanEdit {
		response.Error(c, appErrors.ErrForbidden)
		return capability, false
	}
	return capability, true
}

// requireDelete resolves the request capability and rejects when deletion
// is not permitted.
func requireDelete(c *gin.Context) (models.Capability, bool) {
	capability := middleware.CapabilityFrom(c)
	if !capability.CanDelete {
		response.Error(c, appErrors.ErrForbidden)
		return capability, false
	}
	return capability, true
}
