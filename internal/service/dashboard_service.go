package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/models"
	"github.com/noah-isme/campus-console-api/internal/upstream"
)

const dashboardCacheKey = "bundle:dashboard"

type dashboardDirectory interface {
	DashboardSummary(ctx context.Context) (models.DashboardSummary, error)
	Courses(ctx context.Context, params upstream.Params) ([]models.Course, error)
}

// DashboardService assembles the landing screen bundle. It is the only
// assembler backed by a cache; every other bundle is built fresh per
// request.
type DashboardService struct {
	dir    dashboardDirectory
	cache  *CacheService
	logger *zap.Logger
	ttl    time.Duration
}

// NewDashboardService constructs the service. A nil cache disables caching.
func NewDashboardService(dir dashboardDirectory, cache *CacheService, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &DashboardService{dir: dir, cache: cache, logger: logger, ttl: ttl}
}

// Bundle returns the dashboard bundle and whether it came from cache. The
// capability is stamped per request and never cached.
func (s *DashboardService) Bundle(ctx context.Context, capability models.Capability) (*dto.DashboardBundle, bool, error) {
	cached := &dto.DashboardBundle{}
	if s.cache.Get(ctx, dashboardCacheKey, cached) {
		cached.Capability = capability
		return cached, true, nil
	}

	var (
		summary models.DashboardSummary
		active  []models.Course
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.dir.DashboardSummary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = s.dir.Courses(gctx, upstream.Params{"active_courses": "true"})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, false, mapUpstreamError(err)
	}

	bundle := &dto.DashboardBundle{
		StudentCount:      summary.StudentCount,
		InstructorCount:   summary.InstructorCount,
		CourseCount:       summary.CourseCount,
		RegistrationCount: summary.RegistrationCount,
		ActiveCourses:     active,
	}
	s.cache.Set(ctx, dashboardCacheKey, bundle, s.ttl)

	bundle.Capability = capability
	return bundle, false, nil
}

// InvalidateDashboard drops the cached dashboard bundle. Mutation services
// call this as part of the refresh protocol.
func InvalidateDashboard(ctx context.Context, cache *CacheService) {
	cache.Invalidate(ctx, dashboardCacheKey+"*")
}
