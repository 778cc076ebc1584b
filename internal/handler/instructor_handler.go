package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/middleware"
	"github.com/noah-isme/campus-console-api/internal/models"
	appErrors "github.com/noah-isme/campus-console-api/pkg/errors"
	"github.com/noah-isme/campus-console-api/pkg/response"
)

type instructorService interface {
	List(ctx context.Context, capability models.Capability) (*dto.InstructorListBundle, error)
	Detail(ctx context.Context, id string, capability models.Capability) (*dto.InstructorDetailBundle, error)
	Create(ctx context.Context, payload dto.InstructorPayload) (models.Instructor, error)
	Update(ctx context.Context, id string, payload dto.InstructorPayload) (models.Instructor, error)
	Delete(ctx context.Context, id string) error
}

// InstructorHandler serves the instructor screens and mutations.
type InstructorHandler struct {
	service instructorService
}

// NewInstructorHandler constructs the handler.
func NewInstructorHandler(service instructorService) *InstructorHandler {
	return &InstructorHandler{service: service}
}

// List returns the instructors index bundle.
func (h *InstructorHandler) List(c *gin.Context) {
	bundle, err := h.service.List(c.Request.Context(), middleware.CapabilityFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle)
}

// Detail returns the instructor detail bundle.
func (h *InstructorHandler) Detail(c *gin.Context) {
	bundle, err := h.service.Detail(c.Request.Context(), c.Param("id"), middleware.CapabilityFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle)
}

// Create adds an instructor.
func (h *InstructorHandler) Create(c *gin.Context) {
	if _, ok := requireEdit(c); !ok {
		return
	}
	var payload dto.InstructorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	created, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update replaces an instructor's own fields and returns the merged entity.
func (h *InstructorHandler) Update(c *gin.Context) {
	if _, ok := requireEdit(c); !ok {
		return
	}
	var payload dto.InstructorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated)
}

// Delete removes an instructor.
func (h *InstructorHandler) Delete(c *gin.Context) {
	if _, ok := requireDelete(c); !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
