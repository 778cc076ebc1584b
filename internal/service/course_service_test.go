package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/models"
	"github.com/noah-isme/campus-console-api/internal/upstream"
	appErrors "github.com/noah-isme/campus-console-api/pkg/errors"
)

func newCourseFixture() *fakeDirectory {
	return &fakeDirectory{
		courses: []models.Course{
			{ID: "c-1", CourseCode: "CS-101", Title: "Intro", InstructorID: "i-1"},
			{ID: "c-2", CourseCode: "CS-201", Title: "Data Structures", InstructorID: "i-1",
				Prerequisites: models.PrerequisiteList{{CourseCode: "CS-101"}}},
		},
		instructors: []models.Instructor{
			{ID: "i-1", NameFirst: "Barbara", NameLast: "Liskov"},
		},
		students: []models.Student{
			{ID: "s-1", NameFirst: "Ada", NameLast: "Lovelace"},
			{ID: "s-2", NameFirst: "Alan", NameLast: "Turing"},
			{ID: "s-3", NameFirst: "Grace", NameLast: "Hopper"},
		},
		registrations: []models.Registration{
			{ID: "r-1", StudentID: "s-2", CourseID: "c-2", RegistrationStatus: models.StatusRegistered},
			{ID: "r-2", StudentID: "s-1", CourseID: "c-2", RegistrationStatus: models.StatusRegistered},
			{ID: "r-3", StudentID: "s-3", CourseID: "c-2", RegistrationStatus: models.StatusCancelled},
		},
	}
}

func TestCourseServiceList(t *testing.T) {
	svc := NewCourseService(newCourseFixture(), nil, nil)

	bundle, err := svc.List(context.Background(), models.FullCapability())
	require.NoError(t, err)
	require.Len(t, bundle.Courses, 2)

	assert.Equal(t, "Barbara Liskov", bundle.Courses[0].InstructorName)
	assert.Equal(t, 0, bundle.Courses[0].EnrollmentCount)
	assert.Equal(t, 2, bundle.Courses[1].EnrollmentCount, "cancelled registration does not count")
	assert.True(t, bundle.Capability.CanDelete)
}

func TestCourseServiceListFailsWhole(t *testing.T) {
	dir := newCourseFixture()
	dir.registrationsErr = &upstream.StatusError{StatusCode: http.StatusBadGateway, Status: "Bad Gateway"}
	svc := NewCourseService(dir, nil, nil)

	bundle, err := svc.List(context.Background(), models.Capability{})
	require.Error(t, err)
	assert.Nil(t, bundle, "no partial bundle on failed fan-out")
}

func TestCourseServiceDetail(t *testing.T) {
	svc := NewCourseService(newCourseFixture(), nil, nil)

	bundle, err := svc.Detail(context.Background(), "c-2", models.Capability{CanEdit: true})
	require.NoError(t, err)

	assert.Equal(t, "c-2", bundle.Course.ID)
	assert.Equal(t, 2, bundle.Course.EnrollmentCount)
	require.NotNil(t, bundle.Instructor)
	assert.Equal(t, "i-1", bundle.Instructor.ID)
	assert.Equal(t, "Barbara Liskov", bundle.Course.InstructorName)

	require.Len(t, bundle.Course.Prerequisites, 1)
	assert.Equal(t, "c-1", bundle.Course.Prerequisites[0].ID, "legacy code reference resolved to canonical id")

	rosterIDs := make([]string, 0)
	for _, s := range bundle.RegisteredStudents {
		rosterIDs = append(rosterIDs, s.ID)
	}
	assert.Equal(t, []string{"s-2", "s-1"}, rosterIDs, "registration order")

	complementIDs := make([]string, 0)
	for _, s := range bundle.UnregisteredStudents {
		complementIDs = append(complementIDs, s.ID)
	}
	assert.Equal(t, []string{"s-3"}, complementIDs)

	require.Len(t, bundle.Registrations, 3, "inactive rows stay visible")
	assert.Equal(t, "Alan Turing", bundle.Registrations[0].StudentName)
	assert.Equal(t, "Data Structures", bundle.Registrations[0].CourseName)
}

func TestCourseServiceDetailNotFound(t *testing.T) {
	svc := NewCourseService(newCourseFixture(), nil, nil)

	_, err := svc.Detail(context.Background(), "c-missing", models.Capability{})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestCourseServiceCreateSendsCanonicalPrerequisites(t *testing.T) {
	dir := newCourseFixture()
	svc := NewCourseService(dir, nil, nil)

	payload := dto.CoursePayload{
		CourseCode:   "CS-301",
		Title:        "Compilers",
		InstructorID: "i-1",
	}
	created, err := svc.Create(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "c-new", created.ID)

	body, ok := dir.lastCoursePayload.(coursePayloadBody)
	require.True(t, ok)
	assert.NotNil(t, body.Prerequisites, "absent prerequisites serialize as an empty list")
	assert.Empty(t, body.Prerequisites)
}

func TestCourseServiceUpdateReassemblesBundle(t *testing.T) {
	dir := newCourseFixture()
	cache := NewCacheService(newMemoryCacheRepo(), nil, 0, nil, true)
	cache.Set(context.Background(), dashboardCacheKey, dto.DashboardBundle{CourseCount: 1}, 0)

	svc := NewCourseService(dir, cache, nil)

	bundle, err := svc.Update(context.Background(), "c-2", dto.CoursePayload{
		CourseCode:   "CS-201",
		Title:        "Data Structures",
		InstructorID: "i-1",
	}, models.Capability{CanEdit: true})
	require.NoError(t, err)

	assert.Equal(t, "c-2", bundle.Course.ID)
	assert.Len(t, bundle.RegisteredStudents, 2, "bundle rebuilt from fresh joins")

	var stale dto.DashboardBundle
	assert.False(t, cache.Get(context.Background(), dashboardCacheKey, &stale), "dashboard cache invalidated")
}

func TestCourseServiceDeleteConflictSurfacesUpstreamMessage(t *testing.T) {
	dir := newCourseFixture()
	dir.deleteCourseErr = &upstream.StatusError{
		StatusCode: http.StatusConflict,
		Status:     "Conflict",
		Body:       "course has active registrations",
	}
	svc := NewCourseService(dir, nil, nil)

	err := svc.Delete(context.Background(), "c-2")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, "course has active registrations", appErr.Message)
}
