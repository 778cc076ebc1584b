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

type courseService interface {
	List(ctx context.Context, capability models.Capability) (*dto.CourseListBundle, error)
	Detail(ctx context.Context, id string, capability models.Capability) (*dto.CourseDetailBundle, error)
	Create(ctx context.Context, payload dto.CoursePayload) (models.Course, error)
	Update(ctx context.Context, id string, payload dto.CoursePayload, capability models.Capability) (*dto.CourseDetailBundle, error)
	Delete(ctx context.Context, id string) error
}

// CourseHandler serves the course screens and mutations.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(service courseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List returns the courses index bundle.
func (h *CourseHandler) List(c *gin.Context) {
	bundle, err := h.service.List(c.Request.Context(), middleware.CapabilityFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle)
}

// Detail returns the course detail bundle.
func (h *CourseHandler) Detail(c *gin.Context) {
	bundle, err := h.service.Detail(c.Request.Context(), c.Param("id"), middleware.CapabilityFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle)
}

// Create adds a course.
func (h *CourseHandler) Create(c *gin.Context) {
	if _, ok := requireEdit(c); !ok {
		return
	}
	var payload dto.CoursePayload
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

// Update replaces a course and returns the refreshed detail bundle.
func (h *CourseHandler) Update(c *gin.Context) {
	capability, ok := requireEdit(c)
	if !ok {
		return
	}
	var payload dto.CoursePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	bundle, err := h.service.Update(c.Request.Context(), c.Param("id"), payload, capability)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle)
}

// Delete removes a course.
func (h *CourseHandler) Delete(c *gin.Context) {
	if _, ok := requireDelete(c); !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
