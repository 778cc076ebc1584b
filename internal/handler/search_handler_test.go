package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/models"
)

type fakeSearchSrv struct {
	bundle    *dto.SearchBundle
	err       error
	lastQuery string
}

func (f *fakeSearchSrv) Search(_ context.Context, query string) (*dto.SearchBundle, error) {
	f.lastQuery = query
	return f.bundle, f.err
}

func TestSearchHandlerPassesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeSearchSrv{
		bundle: &dto.SearchBundle{Query: "ada", Results: []models.SearchResult{}},
	}
	handler := NewSearchHandler(service)

	rec := httptest.NewRecorder()
	c, _ := testContext(rec, models.Capability{})
	c.Request = httptest.NewRequest(http.MethodGet, "/search?q=ada", nil)

	handler.Search(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ada", service.lastQuery)
	assert.Contains(t, rec.Body.String(), `"results"`)
}
