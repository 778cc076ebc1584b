package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/campus-console-api/internal/models"
	"github.com/noah-isme/campus-console-api/internal/service"
)

type fakeExportSrv struct {
	result     *service.RosterExport
	err        error
	lastFormat string
}

func (f *fakeExportSrv) Export(_ context.Context, _ string, format string) (*service.RosterExport, error) {
	f.lastFormat = format
	return f.result, f.err
}

func TestExportHandlerRoster(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeExportSrv{
		result: &service.RosterExport{
			Filename:    "roster-CS-101-ab12cd34.csv",
			ContentType: "text/csv",
			Payload:     []byte("Student,Email\n"),
		},
	}
	handler := NewExportHandler(svc, true)

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.FullCapability())
	c.Request = httptest.NewRequest(http.MethodGet, "/courses/c-1/roster", nil)
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.Roster(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "csv", svc.lastFormat, "format defaults to csv")
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="roster-CS-101-ab12cd34.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Student,Email\n", rec.Body.String())
}

func TestExportHandlerRosterFormatPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeExportSrv{
		result: &service.RosterExport{Filename: "r.pdf", ContentType: "application/pdf", Payload: []byte("%PDF")},
	}
	handler := NewExportHandler(svc, true)

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.FullCapability())
	c.Request = httptest.NewRequest(http.MethodGet, "/courses/c-1/roster?format=pdf", nil)
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.Roster(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pdf", svc.lastFormat)
}

func TestExportHandlerDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeExportSrv{}
	handler := NewExportHandler(svc, false)

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.FullCapability())
	c.Request = httptest.NewRequest(http.MethodGet, "/courses/c-1/roster", nil)
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.Roster(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, svc.lastFormat)
}
