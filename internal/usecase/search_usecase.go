package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/velib-client/internal/domain"
	"github.com/velib-client/internal/domain/repository"
	apperrors "github.com/velib-client/internal/pkg/errors"
)

// SearchFlow runs location searches and manages the search history. A
// successful search recentres the viewport on the hit; a miss is an
// informational outcome, never an error notice.
type SearchFlow struct {
	searchRepo repository.SearchRepository
	viewport   *ViewportController
	logger     *zap.Logger
}

func NewSearchFlow(searchRepo repository.SearchRepository, viewport *ViewportController, logger *zap.Logger) *SearchFlow {
	return &SearchFlow{
		searchRepo: searchRepo,
		viewport:   viewport,
		logger:     logger,
	}
}

// Search geocodes the query and recentres the map on the result. Returns
// apperrors.ErrSearchNotFound when nothing matched.
func (f *SearchFlow) Search(ctx context.Context, auth *domain.AuthContext, query string) (*domain.SearchResult, error) {
	if !auth.Valid() {
		return nil, apperrors.ErrNotAuthenticated
	}
	if query == "" {
		return nil, apperrors.ErrInvalidRequest.WithMessage("empty search query")
	}

	result, err := f.searchRepo.SearchLocation(ctx, auth, query)
	if err != nil {
		if errors.Is(err, apperrors.ErrSearchNotFound) {
			f.logger.Info("Search had no match", zap.String("query", query))
			return nil, apperrors.ErrSearchNotFound
		}
		f.logger.Error("Search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	f.viewport.RecenterOnCoordinate(result.Lat, result.Lon, 0)
	return result, nil
}

// History returns the user's past searches.
func (f *SearchFlow) History(ctx context.Context, auth *domain.AuthContext) ([]domain.SearchRecord, error) {
	if !auth.Valid() {
		return nil, apperrors.ErrNotAuthenticated
	}
	return f.searchRepo.ListSearches(ctx, auth)
}

// Delete removes one entry from the search history.
func (f *SearchFlow) Delete(ctx context.Context, auth *domain.AuthContext, searchID int64) error {
	if !auth.Valid() {
		return apperrors.ErrNotAuthenticated
	}
	return f.searchRepo.DeleteSearch(ctx, auth, searchID)
}
