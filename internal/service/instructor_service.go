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

type instructorDirectory interface {
	Instructors(ctx context.Context, params upstream.Params) ([]models.Instructor, error)
	Instructor(ctx context.Context, id string) (models.Instructor, error)
	Courses(ctx context.Context, params upstream.Params) ([]models.Course, error)
	Students(ctx context.Context, params upstream.Params) ([]models.Student, error)
	Registrations(ctx context.Context, params upstream.Params) ([]models.Registration, error)
	CreateInstructor(ctx context.Context, payload any) (models.Instructor, error)
	UpdateInstructor(ctx context.Context, id string, payload any) (models.Instructor, error)
	DeleteInstructor(ctx context.Context, id string) error
}

// InstructorService assembles the instructor screens and performs
// instructor mutations.
type InstructorService struct {
	dir    instructorDirectory
	cache  *CacheService
	logger *zap.Logger
}

// NewInstructorService constructs the service.
func NewInstructorService(dir instructorDirectory, cache *CacheService, logger *zap.Logger) *InstructorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{dir: dir, cache: cache, logger: logger}
}

// List assembles the instructors index.
func (s *InstructorService) List(ctx context.Context, capability models.Capability) (*dto.InstructorListBundle, error) {
	instructors, err := s.dir.Instructors(ctx, nil)
	if err != nil {
		return nil, mapUpstreamError(err)
	}
	return &dto.InstructorListBundle{Instructors: instructors, Capability: capability}, nil
}

// Detail assembles the instructor detail screen: the instructor, their
// courses, and the students currently active under them via the two-level
// join across registrations.
func (s *InstructorService) Detail(ctx context.Context, id string, capability models.Capability) (*dto.InstructorDetailBundle, error) {
	var (
		instructor    models.Instructor
		courses       []models.Course
		registrations []models.Registration
		students      []models.Student
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		instructor, err = s.dir.Instructor(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = s.dir.Courses(gctx, upstream.Params{"instructor_id": id})
		return err
	})
	g.Go(func() error {
		var err error
		registrations, err = s.dir.Registrations(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		students, err = s.dir.Students(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, mapUpstreamError(err)
	}

	teaching := aggregate.StudentsForInstructor(id, courses, registrations, students)

	return &dto.InstructorDetailBundle{
		Instructor:         instructor,
		Courses:            aggregate.AnnotateCourses(courses, []models.Instructor{instructor}, registrations),
		Students:           teaching.Students,
		EnrollmentByCourse: teaching.EnrollmentByCourse,
		Capability:         capability,
	}, nil
}

// Create adds an instructor and invalidates the dashboard counts.
func (s *InstructorService) Create(ctx context.Context, payload dto.InstructorPayload) (models.Instructor, error) {
	created, err := s.dir.CreateInstructor(ctx, payload)
	if err != nil {
		return models.Instructor{}, mapUpstreamError(err)
	}
	InvalidateDashboard(ctx, s.cache)
	return created, nil
}

// Update replaces the instructor's own fields (name, email, bio). These are
// own-field edits with no join dependency, so the mutated entity comes back
// directly.
func (s *InstructorService) Update(ctx context.Context, id string, payload dto.InstructorPayload) (models.Instructor, error) {
	updated, err := s.dir.UpdateInstructor(ctx, id, payload)
	if err != nil {
		return models.Instructor{}, mapUpstreamError(err)
	}
	return updated, nil
}

// Delete removes the instructor.
func (s *InstructorService) Delete(ctx context.Context, id string) error {
	if err := s.dir.DeleteInstructor(ctx, id); err != nil {
		return mapUpstreamError(err)
	}
	InvalidateDashboard(ctx, s.cache)
	return nil
}
