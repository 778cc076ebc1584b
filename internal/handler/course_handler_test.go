package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/middleware"
	"github.com/noah-isme/campus-console-api/internal/models"
	appErrors "github.com/noah-isme/campus-console-api/pkg/errors"
)

type fakeCourseSrv struct {
	listBundle   *dto.CourseListBundle
	detailBundle *dto.CourseDetailBundle
	created      models.Course
	err          error
	deletedID    string
}

func (f *fakeCourseSrv) List(context.Context, models.Capability) (*dto.CourseListBundle, error) {
	return f.listBundle, f.err
}

func (f *fakeCourseSrv) Detail(_ context.Context, id string, _ models.Capability) (*dto.CourseDetailBundle, error) {
	return f.detailBundle, f.err
}

func (f *fakeCourseSrv) Create(context.Context, dto.CoursePayload) (models.Course, error) {
	return f.created, f.err
}

func (f *fakeCourseSrv) Update(context.Context, string, dto.CoursePayload, models.Capability) (*dto.CourseDetailBundle, error) {
	return f.detailBundle, f.err
}

func (f *fakeCourseSrv) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func testContext(rec *httptest.ResponseRecorder, capability models.Capability) (*gin.Context, *gin.Engine) {
	c, engine := gin.CreateTestContext(rec)
	c.Set(middleware.ContextCapabilityKey, capability)
	return c, engine
}

func TestCourseHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCourseHandler(&fakeCourseSrv{
		listBundle: &dto.CourseListBundle{
			Courses: []models.Course{{ID: "c-1", Title: "Intro"}},
		},
	})

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.FullCapability())
	c.Request = httptest.NewRequest(http.MethodGet, "/courses", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Intro"`)
}

func TestCourseHandlerListError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCourseHandler(&fakeCourseSrv{err: appErrors.ErrUpstream})

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.FullCapability())
	c.Request = httptest.NewRequest(http.MethodGet, "/courses", nil)

	handler.List(c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCourseHandlerCreateForbiddenWithoutEdit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCourseHandler(&fakeCourseSrv{})

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.Capability{})
	c.Request = httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(`{}`))

	handler.Create(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCourseHandlerCreateRejectsInvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCourseHandler(&fakeCourseSrv{})

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.FullCapability())
	c.Request = httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(`{"title":"Intro"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCourseHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCourseHandler(&fakeCourseSrv{
		created: models.Course{ID: "c-new", Title: "Compilers"},
	})

	body := `{
		"course_code": "CS-301",
		"title": "Compilers",
		"description": "Parsing and codegen",
		"instructor_id": "7b7f2f64-1111-4222-8333-444455556666",
		"start_date": "2026-09-01",
		"end_date": "2026-12-18",
		"course_fee": 450
	}`
	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.FullCapability())
	c.Request = httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data models.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "c-new", envelope.Data.ID)
}

func TestCourseHandlerDeleteForbiddenForEditOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeCourseSrv{}
	handler := NewCourseHandler(service)

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.Capability{CanEdit: true})
	c.Request = httptest.NewRequest(http.MethodDelete, "/courses/c-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, service.deletedID)
}

func TestCourseHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeCourseSrv{}
	handler := NewCourseHandler(service)

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.FullCapability())
	c.Request = httptest.NewRequest(http.MethodDelete, "/courses/c-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "c-1", service.deletedID)
}
