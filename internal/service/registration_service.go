package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/models"
	"github.com/noah-isme/campus-console-api/internal/upstream"
)

type registrationDirectory interface {
	Register(ctx context.Context, action upstream.RegistrationAction) (models.Registration, error)
	Unregister(ctx context.Context, action upstream.RegistrationAction) error
	Registrations(ctx context.Context, params upstream.Params) ([]models.Registration, error)
	DeleteRegistration(ctx context.Context, id string) error
}

type courseDetailAssembler interface {
	Detail(ctx context.Context, id string, capability models.Capability) (*dto.CourseDetailBundle, error)
}

// RegistrationService drives the register/unregister domain actions and the
// refresh protocol around them: every action re-assembles the owning course
// detail bundle rather than patching rosters in place.
type RegistrationService struct {
	dir     registrationDirectory
	courses courseDetailAssembler
	cache   *CacheService
	logger  *zap.Logger
}

// NewRegistrationService constructs the service.
func NewRegistrationService(dir registrationDirectory, courses courseDetailAssembler, cache *CacheService, logger *zap.Logger) *RegistrationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{dir: dir, courses: courses, cache: cache, logger: logger}
}

// Register enrolls a student into a course and returns the refreshed course
// detail bundle.
func (s *RegistrationService) Register(ctx context.Context, payload dto.RegistrationActionPayload, capability models.Capability) (*dto.CourseDetailBundle, error) {
	action := upstream.RegistrationAction{StudentID: payload.StudentID, CourseID: payload.CourseID}
	if _, err := s.dir.Register(ctx, action); err != nil {
		return nil, mapUpstreamError(err)
	}
	InvalidateDashboard(ctx, s.cache)
	return s.courses.Detail(ctx, payload.CourseID, capability)
}

// Unregister removes a student from a course and returns the refreshed
// course detail bundle. Upstreams predating the unregister action answer
// 404 for it; those fall back to locating the registration row and deleting
// it directly.
func (s *RegistrationService) Unregister(ctx context.Context, payload dto.RegistrationActionPayload, capability models.Capability) (*dto.CourseDetailBundle, error) {
	action := upstream.RegistrationAction{StudentID: payload.StudentID, CourseID: payload.CourseID}
	if err := s.dir.Unregister(ctx, action); err != nil {
		if !upstream.IsNotFound(err) {
			return nil, mapUpstreamError(err)
		}
		if err := s.unregisterByLookup(ctx, payload); err != nil {
			return nil, err
		}
	}
	InvalidateDashboard(ctx, s.cache)
	return s.courses.Detail(ctx, payload.CourseID, capability)
}

func (s *RegistrationService) unregisterByLookup(ctx context.Context, payload dto.RegistrationActionPayload) error {
	registrations, err := s.dir.Registrations(ctx, upstream.Params{
		"student_id": payload.StudentID,
		"course_id":  payload.CourseID,
	})
	if err != nil {
		return mapUpstreamError(err)
	}
	for _, r := range registrations {
		if r.StudentID == payload.StudentID && r.CourseID == payload.CourseID {
			if err := s.dir.DeleteRegistration(ctx, r.ID); err != nil {
				return mapUpstreamError(err)
			}
			return nil
		}
	}
	// Nothing to remove; the refreshed bundle will reflect reality.
	s.logger.Info("unregister found no matching registration",
		zap.String("student_id", payload.StudentID),
		zap.String("course_id", payload.CourseID),
	)
	return nil
}
