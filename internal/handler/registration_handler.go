package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/models"
	appErrors "github.com/noah-isme/campus-console-api/pkg/errors"
	"github.com/noah-isme/campus-console-api/pkg/response"
)

type registrationService interface {
	Register(ctx context.Context, payload dto.RegistrationActionPayload, capability models.Capability) (*dto.CourseDetailBundle, error)
	Unregister(ctx context.Context, payload dto.RegistrationActionPayload, capability models.Capability) (*dto.CourseDetailBundle, error)
}

// RegistrationHandler serves the register/unregister actions. Both answer
// with the refreshed course detail bundle so the screen re-renders from
// fresh joins.
type RegistrationHandler struct {
	service registrationService
}

// NewRegistrationHandler constructs the handler.
func NewRegistrationHandler(service registrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Register enrolls a student into a course.
func (h *RegistrationHandler) Register(c *gin.Context) {
	capability, ok := requireEdit(c)
	if !ok {
		return
	}
	var payload dto.RegistrationActionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	bundle, err := h.service.Register(c.Request.Context(), payload, capability)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle)
}

// Unregister removes a student from a course.
func (h *RegistrationHandler) Unregister(c *gin.Context) {
	capability, ok := requireEdit(c)
	if !ok {
		return
	}
	var payload dto.RegistrationActionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	bundle, err := h.service.Unregister(c.Request.Context(), payload, capability)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle)
}
