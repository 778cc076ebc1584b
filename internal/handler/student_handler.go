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

type studentService interface {
	List(ctx context.Context, capability models.Capability) (*dto.StudentListBundle, error)
	Detail(ctx context.Context, id string, capability models.Capability) (*dto.StudentDetailBundle, error)
	Create(ctx context.Context, payload dto.StudentPayload) (models.Student, error)
	Update(ctx context.Context, id string, payload dto.StudentPayload) (models.Student, error)
	Delete(ctx context.Context, id string) error
}

// StudentHandler serves the student screens and mutations.
type StudentHandler struct {
	service studentService
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(service studentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// List returns the students index bundle.
func (h *StudentHandler) List(c *gin.Context) {
	bundle, err := h.service.List(c.Request.Context(), middleware.CapabilityFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle)
}

// Detail returns the student detail bundle.
func (h *StudentHandler) Detail(c *gin.Context) {
	bundle, err := h.service.Detail(c.Request.Context(), c.Param("id"), middleware.CapabilityFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle)
}

// Create adds a student.
func (h *StudentHandler) Create(c *gin.Context) {
	if _, ok := requireEdit(c); !ok {
		return
	}
	var payload dto.StudentPayload
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

// Update replaces a student's own fields and returns the merged entity.
func (h *StudentHandler) Update(c *gin.Context) {
	if _, ok := requireEdit(c); !ok {
		return
	}
	var payload dto.StudentPayload
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

// Delete removes a student.
func (h *StudentHandler) Delete(c *gin.Context) {
	if _, ok := requireDelete(c); !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
