package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-console-api/internal/models"
	"github.com/noah-isme/campus-console-api/internal/upstream"
)

func newDashboardFixture() *fakeDirectory {
	return &fakeDirectory{
		summary: models.DashboardSummary{
			StudentCount:      12,
			InstructorCount:   3,
			CourseCount:       5,
			RegistrationCount: 20,
		},
		courses: []models.Course{
			{ID: "c-1", Title: "Intro"},
		},
	}
}

func TestDashboardServiceBundleWithoutCache(t *testing.T) {
	dir := newDashboardFixture()
	svc := NewDashboardService(dir, nil, 0, nil)

	bundle, hit, err := svc.Bundle(context.Background(), models.FullCapability())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 12, bundle.StudentCount)
	assert.Equal(t, 20, bundle.RegistrationCount)
	require.Len(t, bundle.ActiveCourses, 1)
	assert.True(t, bundle.Capability.CanEdit)
}

func TestDashboardServiceCachesBundle(t *testing.T) {
	dir := newDashboardFixture()
	cache := NewCacheService(newMemoryCacheRepo(), nil, 0, nil, true)
	svc := NewDashboardService(dir, cache, 0, nil)

	_, hit, err := svc.Bundle(context.Background(), models.FullCapability())
	require.NoError(t, err)
	assert.False(t, hit)

	bundle, hit, err := svc.Bundle(context.Background(), models.Capability{})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, dir.summaryCalls, "second request served from cache")
	assert.False(t, bundle.Capability.CanEdit, "capability stamped per request, never cached")
}

func TestDashboardServiceInvalidation(t *testing.T) {
	dir := newDashboardFixture()
	cache := NewCacheService(newMemoryCacheRepo(), nil, 0, nil, true)
	svc := NewDashboardService(dir, cache, 0, nil)

	_, _, err := svc.Bundle(context.Background(), models.Capability{})
	require.NoError(t, err)

	InvalidateDashboard(context.Background(), cache)

	_, hit, err := svc.Bundle(context.Background(), models.Capability{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, dir.summaryCalls)
}

func TestDashboardServiceFanOutFailure(t *testing.T) {
	dir := newDashboardFixture()
	dir.summaryErr = &upstream.StatusError{StatusCode: 502, Status: "Bad Gateway"}
	svc := NewDashboardService(dir, nil, 0, nil)

	bundle, _, err := svc.Bundle(context.Background(), models.Capability{})
	require.Error(t, err)
	assert.Nil(t, bundle)
}
