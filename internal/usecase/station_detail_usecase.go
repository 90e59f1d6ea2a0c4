package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/velib-client/internal/domain"
	"github.com/velib-client/internal/domain/repository"
	apperrors "github.com/velib-client/internal/pkg/errors"
)

// StationDetailLoader fetches live status for a selected station, with
// loading/error state independent of the list coordinator. Selecting a new
// station while a previous load is in flight abandons the older result:
// only the most recent request may publish its outcome.
type StationDetailLoader struct {
	stationRepo repository.StationRepository
	logger      *zap.Logger

	mu         sync.Mutex
	detail     *domain.StationDetail
	loading    bool
	lastErr    error
	generation uint64
}

func NewStationDetailLoader(stationRepo repository.StationRepository, logger *zap.Logger) *StationDetailLoader {
	return &StationDetailLoader{
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// Load fetches the detail snapshot for one station. A stale completion
// (superseded by a newer Load) returns its values to the caller but leaves
// the published state alone.
func (l *StationDetailLoader) Load(ctx context.Context, stationID int64) (*domain.StationDetail, error) {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.loading = true
	l.lastErr = nil
	l.mu.Unlock()

	detail, err := l.stationRepo.GetStationDetail(ctx, stationID)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		l.logger.Debug("Discarding superseded detail load",
			zap.Int64("station_id", stationID))
		if err != nil {
			return nil, apperrors.ErrDetailFetchFailed
		}
		return detail, nil
	}

	l.loading = false
	if err != nil {
		l.lastErr = apperrors.ErrDetailFetchFailed
		l.logger.Error("Station detail load failed",
			zap.Int64("station_id", stationID),
			zap.Error(err))
		return nil, apperrors.ErrDetailFetchFailed
	}

	l.detail = detail
	return detail, nil
}

// Reset drops the held detail, e.g. when the detail view closes.
func (l *StationDetailLoader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	l.detail = nil
	l.loading = false
	l.lastErr = nil
}

func (l *StationDetailLoader) Detail() *domain.StationDetail {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.detail
}

func (l *StationDetailLoader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *StationDetailLoader) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}
