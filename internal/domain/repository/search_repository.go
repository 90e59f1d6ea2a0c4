package repository

import (
	"context"

	"github.com/velib-client/internal/domain"
)

// SearchRepository is the remote geocoding/search-history API. A search with
// no match resolves to errors.ErrSearchNotFound, which callers treat as an
// informational outcome rather than a failure.
type SearchRepository interface {
	SearchLocation(ctx context.Context, auth *domain.AuthContext, query string) (*domain.SearchResult, error)
	ListSearches(ctx context.Context, auth *domain.AuthContext) ([]domain.SearchRecord, error)
	DeleteSearch(ctx context.Context, auth *domain.AuthContext, searchID int64) error
}
