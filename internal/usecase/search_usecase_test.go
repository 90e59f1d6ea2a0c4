package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/velib-client/internal/domain"
	apperrors "github.com/velib-client/internal/pkg/errors"
	"github.com/velib-client/internal/usecase"
)

func TestSearchFlow_Search(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("a hit recentres the viewport on the result", func(t *testing.T) {
		repo := &MockSearchRepository{}
		repo.On("SearchLocation", ctx, testAuth(), "tour eiffel").
			Return(&domain.SearchResult{Lat: 48.8584, Lon: 2.2945, Message: "Recherche enregistrée"}, nil)

		mapView := newRecordingMapView()
		viewport := newTestViewport(logger, mapView)
		flow := usecase.NewSearchFlow(repo, viewport, logger)

		result, err := flow.Search(ctx, testAuth(), "tour eiffel")

		require.NoError(t, err)
		assert.Equal(t, 48.8584, result.Lat)
		assert.Equal(t, 48.8584, viewport.Region().Latitude)
		assert.Equal(t, 2.2945, viewport.Region().Longitude)
		require.Len(t, mapView.Regions(), 1)
	})

	t.Run("a miss is informational and leaves the viewport alone", func(t *testing.T) {
		repo := &MockSearchRepository{}
		repo.On("SearchLocation", ctx, testAuth(), "atlantis").
			Return(nil, apperrors.ErrSearchNotFound)

		mapView := newRecordingMapView()
		viewport := newTestViewport(logger, mapView)
		flow := usecase.NewSearchFlow(repo, viewport, logger)

		_, err := flow.Search(ctx, testAuth(), "atlantis")

		assert.ErrorIs(t, err, apperrors.ErrSearchNotFound)
		assert.Empty(t, mapView.Regions())
	})

	t.Run("transport errors pass through unchanged", func(t *testing.T) {
		repo := &MockSearchRepository{}
		transportErr := errors.New("connection refused")
		repo.On("SearchLocation", ctx, testAuth(), "louvre").Return(nil, transportErr)

		viewport := newTestViewport(logger, nil)
		flow := usecase.NewSearchFlow(repo, viewport, logger)

		_, err := flow.Search(ctx, testAuth(), "louvre")

		assert.ErrorIs(t, err, transportErr)
	})

	t.Run("empty query is refused locally", func(t *testing.T) {
		repo := &MockSearchRepository{}

		viewport := newTestViewport(logger, nil)
		flow := usecase.NewSearchFlow(repo, viewport, logger)

		_, err := flow.Search(ctx, testAuth(), "")

		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
		repo.AssertNotCalled(t, "SearchLocation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("requires a session", func(t *testing.T) {
		repo := &MockSearchRepository{}

		viewport := newTestViewport(logger, nil)
		flow := usecase.NewSearchFlow(repo, viewport, logger)

		_, err := flow.Search(ctx, nil, "tour eiffel")

		assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
	})
}

func TestSearchFlow_History(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns the records from the repository", func(t *testing.T) {
		records := []domain.SearchRecord{
			{ID: 2, Query: "louvre", Lat: 48.8606, Lon: 2.3376},
			{ID: 1, Query: "tour eiffel", Lat: 48.8584, Lon: 2.2945},
		}
		repo := &MockSearchRepository{}
		repo.On("ListSearches", ctx, testAuth()).Return(records, nil)

		flow := usecase.NewSearchFlow(repo, newTestViewport(logger, nil), logger)
		got, err := flow.History(ctx, testAuth())

		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("delete forwards to the repository", func(t *testing.T) {
		repo := &MockSearchRepository{}
		repo.On("DeleteSearch", ctx, testAuth(), int64(7)).Return(nil)

		flow := usecase.NewSearchFlow(repo, newTestViewport(logger, nil), logger)
		require.NoError(t, flow.Delete(ctx, testAuth(), 7))
		repo.AssertExpectations(t)
	})

	t.Run("history and delete require a session", func(t *testing.T) {
		repo := &MockSearchRepository{}
		flow := usecase.NewSearchFlow(repo, newTestViewport(logger, nil), logger)

		_, err := flow.History(ctx, nil)
		assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
		assert.ErrorIs(t, flow.Delete(ctx, nil, 7), apperrors.ErrNotAuthenticated)
	})
}
