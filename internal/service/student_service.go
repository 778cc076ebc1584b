package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/campus-console-api/internal/aggregate"
	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/models"
	"github.com/noah-isme/campus-console-api/internal/upstream"
)

type studentDirectory interface {
	Students(ctx context.Context, params upstream.Params) ([]models.Student, error)
	Student(ctx context.Context, id string) (models.Student, error)
	Courses(ctx context.Context, params upstream.Params) ([]models.Course, error)
	Registrations(ctx context.Context, params upstream.Params) ([]models.Registration, error)
	CreateStudent(ctx context.Context, payload any) (models.Student, error)
	UpdateStudent(ctx context.Context, id string, payload any) (models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

// StudentService assembles the student screens and performs student
// mutations.
type StudentService struct {
	dir    studentDirectory
	cache  *CacheService
	logger *zap.Logger
}

// NewStudentService constructs the service.
func NewStudentService(dir studentDirectory, cache *CacheService, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{dir: dir, cache: cache, logger: logger}
}

// List assembles the students index.
func (s *StudentService) List(ctx context.Context, capability models.Capability) (*dto.StudentListBundle, error) {
	students, err := s.dir.Students(ctx, nil)
	if err != nil {
		return nil, mapUpstreamError(err)
	}
	return &dto.StudentListBundle{Students: students, Capability: capability}, nil
}

// Detail assembles the student detail screen: the student, their
// registrations of every status, and the courses those registrations point
// at. The full course collection rides along for the register form.
func (s *StudentService) Detail(ctx context.Context, id string, capability models.Capability) (*dto.StudentDetailBundle, error) {
	var (
		student       models.Student
		registrations []models.Registration
		courses       []models.Course
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		student, err = s.dir.Student(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		registrations, err = s.dir.Registrations(gctx, upstream.Params{"student_id": id})
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = s.dir.Courses(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, mapUpstreamError(err)
	}

	return &dto.StudentDetailBundle{
		Student:         student,
		Registrations:   aggregate.AnnotateRegistrations(registrations, []models.Student{student}, courses),
		EnrolledCourses: aggregate.EnrolledCourses(registrations, courses),
		Courses:         courses,
		Capability:      capability,
	}, nil
}

// Create registers a new student and invalidates the dashboard counts.
func (s *StudentService) Create(ctx context.Context, payload dto.StudentPayload) (models.Student, error) {
	created, err := s.dir.CreateStudent(ctx, payload)
	if err != nil {
		return models.Student{}, mapUpstreamError(err)
	}
	InvalidateDashboard(ctx, s.cache)
	return created, nil
}

// Update replaces the student's own fields. No cross-entity join depends on
// them, so the mutated entity is returned as-is instead of re-assembling a
// bundle.
func (s *StudentService) Update(ctx context.Context, id string, payload dto.StudentPayload) (models.Student, error) {
	updated, err := s.dir.UpdateStudent(ctx, id, payload)
	if err != nil {
		return models.Student{}, mapUpstreamError(err)
	}
	return updated, nil
}

// Delete removes the student.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.dir.DeleteStudent(ctx, id); err != nil {
		return mapUpstreamError(err)
	}
	InvalidateDashboard(ctx, s.cache)
	return nil
}
