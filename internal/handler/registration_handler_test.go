package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/models"
)

type fakeRegistrationSrv struct {
	bundle       *dto.CourseDetailBundle
	err          error
	registered   []dto.RegistrationActionPayload
	unregistered []dto.RegistrationActionPayload
}

func (f *fakeRegistrationSrv) Register(_ context.Context, payload dto.RegistrationActionPayload, _ models.Capability) (*dto.CourseDetailBundle, error) {
	f.registered = append(f.registered, payload)
	return f.bundle, f.err
}

func (f *fakeRegistrationSrv) Unregister(_ context.Context, payload dto.RegistrationActionPayload, _ models.Capability) (*dto.CourseDetailBundle, error) {
	f.unregistered = append(f.unregistered, payload)
	return f.bundle, f.err
}

const registrationBody = `{
	"student_id": "7b7f2f64-1111-4222-8333-444455556666",
	"course_id": "7b7f2f64-7777-4888-9999-000011112222"
}`

func TestRegistrationHandlerRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeRegistrationSrv{
		bundle: &dto.CourseDetailBundle{Course: models.Course{ID: "7b7f2f64-7777-4888-9999-000011112222"}},
	}
	handler := NewRegistrationHandler(service)

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.Capability{CanEdit: true})
	c.Request = httptest.NewRequest(http.MethodPost, "/registrations/register", strings.NewReader(registrationBody))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, service.registered, 1)
	assert.Contains(t, rec.Body.String(), `"registered_students"`)
}

func TestRegistrationHandlerRegisterForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeRegistrationSrv{}
	handler := NewRegistrationHandler(service)

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.Capability{})
	c.Request = httptest.NewRequest(http.MethodPost, "/registrations/register", strings.NewReader(registrationBody))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, service.registered)
}

func TestRegistrationHandlerUnregisterRejectsBadIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeRegistrationSrv{}
	handler := NewRegistrationHandler(service)

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.Capability{CanEdit: true})
	c.Request = httptest.NewRequest(http.MethodPost, "/registrations/unregister", strings.NewReader(`{"student_id":"s-1","course_id":"c-1"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Unregister(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.unregistered)
}
