package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-console-api/internal/aggregate"
	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/models"
	appErrors "github.com/noah-isme/campus-console-api/pkg/errors"
)

type searchDirectory interface {
	Search(ctx context.Context, query string) (models.SearchCollections, error)
}

// SearchService flattens the composite search endpoint into one tagged
// result list. Matching policy is the upstream's; this layer only relabels
// and links.
type SearchService struct {
	dir    searchDirectory
	logger *zap.Logger
}

// NewSearchService constructs the service.
func NewSearchService(dir searchDirectory, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{dir: dir, logger: logger}
}

// Search runs the query upstream and flattens the pre-filtered collections.
func (s *SearchService) Search(ctx context.Context, query string) (*dto.SearchBundle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "query is required")
	}

	collections, err := s.dir.Search(ctx, query)
	if err != nil {
		return nil, mapUpstreamError(err)
	}

	return &dto.SearchBundle{
		Query:   query,
		Results: aggregate.FlattenSearch(collections),
	}, nil
}
