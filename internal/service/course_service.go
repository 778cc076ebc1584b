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

type courseDirectory interface {
	Courses(ctx context.Context, params upstream.Params) ([]models.Course, error)
	Course(ctx context.Context, id string) (models.Course, error)
	Instructors(ctx context.Context, params upstream.Params) ([]models.Instructor, error)
	Students(ctx context.Context, params upstream.Params) ([]models.Student, error)
	Registrations(ctx context.Context, params upstream.Params) ([]models.Registration, error)
	CreateCourse(ctx context.Context, payload any) (models.Course, error)
	UpdateCourse(ctx context.Context, id string, payload any) (models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// CourseService assembles the course screens and performs course mutations.
type CourseService struct {
	dir    courseDirectory
	cache  *CacheService
	logger *zap.Logger
}

// NewCourseService constructs the service.
func NewCourseService(dir courseDirectory, cache *CacheService, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{dir: dir, cache: cache, logger: logger}
}

// List assembles the courses index: every course annotated with its
// instructor's name and a recomputed enrollment count.
func (s *CourseService) List(ctx context.Context, capability models.Capability) (*dto.CourseListBundle, error) {
	var (
		courses       []models.Course
		instructors   []models.Instructor
		registrations []models.Registration
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = s.dir.Courses(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		instructors, err = s.dir.Instructors(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		registrations, err = s.dir.Registrations(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, mapUpstreamError(err)
	}

	return &dto.CourseListBundle{
		Courses:     aggregate.AnnotateCourses(courses, instructors, registrations),
		Instructors: instructors,
		Capability:  capability,
	}, nil
}

// Detail assembles the course detail screen. The course, its registrations,
// and the collections needed for the roster complement and edit form are
// fetched in parallel; the instructor is then resolved from the already
// fetched instructor collection rather than a second round trip.
func (s *CourseService) Detail(ctx context.Context, id string, capability models.Capability) (*dto.CourseDetailBundle, error) {
	var (
		course        models.Course
		registrations []models.Registration
		students      []models.Student
		instructors   []models.Instructor
		courses       []models.Course
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		course, err = s.dir.Course(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		registrations, err = s.dir.Registrations(gctx, upstream.Params{"course_id": id})
		return err
	})
	g.Go(func() error {
		var err error
		students, err = s.dir.Students(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		instructors, err = s.dir.Instructors(gctx, nil)
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

	course.Prerequisites = aggregate.NormalizePrerequisites(course, courses)
	course.EnrollmentCount = aggregate.ActiveRegistrationCount(id, registrations)

	var instructor *models.Instructor
	if course.InstructorID != "" {
		if found, ok := aggregate.InstructorsByID(instructors)[course.InstructorID]; ok {
			instructor = &found
			course.InstructorName = found.FullName()
		}
	}

	return &dto.CourseDetailBundle{
		Course:               course,
		Instructor:           instructor,
		Registrations:        aggregate.AnnotateRegistrations(registrations, students, courses),
		RegisteredStudents:   aggregate.RegisteredStudentsForCourse(id, registrations, students),
		UnregisteredStudents: aggregate.UnregisteredStudentsForCourse(id, registrations, students),
		Instructors:          instructors,
		Courses:              courses,
		Capability:           capability,
	}, nil
}

// coursePayloadBody is the wire shape the upstream expects; prerequisites
// travel as the canonical id list.
type coursePayloadBody struct {
	CourseCode      string   `json:"course_code"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DescriptionFull string   `json:"description_full"`
	InstructorID    string   `json:"instructor_id"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	CourseFee       float64  `json:"course_fee"`
	SyllabusURL     string   `json:"syllabus_url,omitempty"`
	Prerequisites   []string `json:"prerequisites"`
}

func courseBody(payload dto.CoursePayload) coursePayloadBody {
	prereqs := payload.PrerequisiteIDs
	if prereqs == nil {
		prereqs = []string{}
	}
	return coursePayloadBody{
		CourseCode:      payload.CourseCode,
		Title:           payload.Title,
		Description:     payload.Description,
		DescriptionFull: payload.DescriptionFull,
		InstructorID:    payload.InstructorID,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
		CourseFee:       payload.CourseFee,
		SyllabusURL:     payload.SyllabusURL,
		Prerequisites:   prereqs,
	}
}

// Create issues the course creation and invalidates the dashboard, whose
// course count the mutation just changed.
func (s *CourseService) Create(ctx context.Context, payload dto.CoursePayload) (models.Course, error) {
	created, err := s.dir.CreateCourse(ctx, courseBody(payload))
	if err != nil {
		return models.Course{}, mapUpstreamError(err)
	}
	InvalidateDashboard(ctx, s.cache)
	return created, nil
}

// Update replaces the course snapshot, then re-assembles the detail bundle
// so dependent joins are recomputed from fresh data rather than patched.
func (s *CourseService) Update(ctx context.Context, id string, payload dto.CoursePayload, capability models.Capability) (*dto.CourseDetailBundle, error) {
	if _, err := s.dir.UpdateCourse(ctx, id, courseBody(payload)); err != nil {
		return nil, mapUpstreamError(err)
	}
	InvalidateDashboard(ctx, s.cache)
	return s.Detail(ctx, id, capability)
}

// Delete removes the course. A conflict (for example active registrations)
// surfaces the upstream's explanation verbatim.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.dir.DeleteCourse(ctx, id); err != nil {
		return mapUpstreamError(err)
	}
	InvalidateDashboard(ctx, s.cache)
	return nil
}
