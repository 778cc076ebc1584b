package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/noah-isme/campus-console-api/internal/models"
	"github.com/noah-isme/campus-console-api/internal/upstream"
	appErrors "github.com/noah-isme/campus-console-api/pkg/errors"
)

// fakeDirectory stands in for the upstream directory across service tests.
// Collections are returned as configured, with the query-param filters the
// services actually rely on applied in memory.
type fakeDirectory struct {
	courses       []models.Course
	instructors   []models.Instructor
	students      []models.Student
	registrations []models.Registration
	summary       models.DashboardSummary
	search        models.SearchCollections

	coursesErr       error
	instructorsErr   error
	studentsErr      error
	registrationsErr error
	summaryErr       error

	createCourseErr     error
	updateCourseErr     error
	deleteCourseErr     error
	registerErr         error
	unregisterErr       error
	deleteRegistriesErr error

	lastCoursePayload    any
	lastStudentPayload   any
	registeredActions    []upstream.RegistrationAction
	unregisteredActions  []upstream.RegistrationAction
	deletedRegistrations []string
	summaryCalls         int
}

func notFoundErr() error {
	return &upstream.StatusError{StatusCode: http.StatusNotFound, Status: "Not Found"}
}

func (f *fakeDirectory) Courses(_ context.Context, params upstream.Params) ([]models.Course, error) {
	if f.coursesErr != nil {
		return nil, f.coursesErr
	}
	if id := params["instructor_id"]; id != "" {
		out := make([]models.Course, 0)
		for _, c := range f.courses {
			if c.InstructorID == id {
				out = append(out, c)
			}
		}
		return out, nil
	}
	return f.courses, nil
}

func (f *fakeDirectory) Course(_ context.Context, id string) (models.Course, error) {
	if f.coursesErr != nil {
		return models.Course{}, f.coursesErr
	}
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Course{}, notFoundErr()
}

func (f *fakeDirectory) Instructors(_ context.Context, _ upstream.Params) ([]models.Instructor, error) {
	if f.instructorsErr != nil {
		return nil, f.instructorsErr
	}
	return f.instructors, nil
}

func (f *fakeDirectory) Instructor(_ context.Context, id string) (models.Instructor, error) {
	if f.instructorsErr != nil {
		return models.Instructor{}, f.instructorsErr
	}
	for _, i := range f.instructors {
		if i.ID == id {
			return i, nil
		}
	}
	return models.Instructor{}, notFoundErr()
}

func (f *fakeDirectory) Students(_ context.Context, _ upstream.Params) ([]models.Student, error) {
	if f.studentsErr != nil {
		return nil, f.studentsErr
	}
	return f.students, nil
}

func (f *fakeDirectory) Student(_ context.Context, id string) (models.Student, error) {
	if f.studentsErr != nil {
		return models.Student{}, f.studentsErr
	}
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Student{}, notFoundErr()
}

func (f *fakeDirectory) Registrations(_ context.Context, params upstream.Params) ([]models.Registration, error) {
	if f.registrationsErr != nil {
		return nil, f.registrationsErr
	}
	out := make([]models.Registration, 0)
	for _, r := range f.registrations {
		if id := params["course_id"]; id != "" && r.CourseID != id {
			continue
		}
		if id := params["student_id"]; id != "" && r.StudentID != id {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeDirectory) DashboardSummary(_ context.Context) (models.DashboardSummary, error) {
	f.summaryCalls++
	if f.summaryErr != nil {
		return models.DashboardSummary{}, f.summaryErr
	}
	return f.summary, nil
}

func (f *fakeDirectory) Search(_ context.Context, _ string) (models.SearchCollections, error) {
	return f.search, nil
}

func (f *fakeDirectory) CreateCourse(_ context.Context, payload any) (models.Course, error) {
	if f.createCourseErr != nil {
		return models.Course{}, f.createCourseErr
	}
	f.lastCoursePayload = payload
	return models.Course{ID: "c-new"}, nil
}

func (f *fakeDirectory) UpdateCourse(_ context.Context, id string, payload any) (models.Course, error) {
	if f.updateCourseErr != nil {
		return models.Course{}, f.updateCourseErr
	}
	f.lastCoursePayload = payload
	return models.Course{ID: id}, nil
}

func (f *fakeDirectory) DeleteCourse(_ context.Context, _ string) error {
	return f.deleteCourseErr
}

func (f *fakeDirectory) CreateStudent(_ context.Context, payload any) (models.Student, error) {
	f.lastStudentPayload = payload
	return models.Student{ID: "s-new"}, nil
}

func (f *fakeDirectory) UpdateStudent(_ context.Context, id string, payload any) (models.Student, error) {
	f.lastStudentPayload = payload
	return models.Student{ID: id, NameFirst: "Updated"}, nil
}

func (f *fakeDirectory) DeleteStudent(_ context.Context, _ string) error {
	return nil
}

func (f *fakeDirectory) CreateInstructor(_ context.Context, _ any) (models.Instructor, error) {
	return models.Instructor{ID: "i-new"}, nil
}

func (f *fakeDirectory) UpdateInstructor(_ context.Context, id string, _ any) (models.Instructor, error) {
	return models.Instructor{ID: id, NameFirst: "Updated"}, nil
}

func (f *fakeDirectory) DeleteInstructor(_ context.Context, _ string) error {
	return nil
}

func (f *fakeDirectory) Register(_ context.Context, action upstream.RegistrationAction) (models.Registration, error) {
	if f.registerErr != nil {
		return models.Registration{}, f.registerErr
	}
	f.registeredActions = append(f.registeredActions, action)
	return models.Registration{ID: "r-new", StudentID: action.StudentID, CourseID: action.CourseID}, nil
}

func (f *fakeDirectory) Unregister(_ context.Context, action upstream.RegistrationAction) error {
	if f.unregisterErr != nil {
		return f.unregisterErr
	}
	f.unregisteredActions = append(f.unregisteredActions, action)
	return nil
}

func (f *fakeDirectory) DeleteRegistration(_ context.Context, id string) error {
	if f.deleteRegistriesErr != nil {
		return f.deleteRegistriesErr
	}
	f.deletedRegistrations = append(f.deletedRegistrations, id)
	return nil
}

// memoryCacheRepo is an in-process CacheRepository for cache behaviour tests.
type memoryCacheRepo struct {
	data map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{data: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	b, ok := m.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(b, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.data {
		if strings.HasPrefix(key, prefix) {
			delete(m.data, key)
		}
	}
	return nil
}
