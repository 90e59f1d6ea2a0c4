package usecase

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/velib-client/internal/domain"
	"github.com/velib-client/internal/domain/repository"
	"github.com/velib-client/internal/eventbus"
	apperrors "github.com/velib-client/internal/pkg/errors"
	"github.com/velib-client/internal/pkg/utils"
)

// StationRefreshCoordinator owns the fetch/loading/error lifecycle of the
// station list. Loading is the only transient state: every refresh ends with
// loading cleared, whatever the outcome.
//
// Overlapping refreshes are not de-duplicated; both run and the last one to
// complete determines the visible list. That matches the single-user client
// this serves and is pinned down by tests, not a bug to fix.
type StationRefreshCoordinator struct {
	stationRepo repository.StationRepository
	viewport    *ViewportController
	logger      *zap.Logger

	mu       sync.Mutex
	stations []domain.Station
	loading  bool
	lastErr  error
	closed   bool
	sub      *eventbus.Subscription
}

func NewStationRefreshCoordinator(
	stationRepo repository.StationRepository,
	viewport *ViewportController,
	logger *zap.Logger,
) *StationRefreshCoordinator {
	return &StationRefreshCoordinator{
		stationRepo: stationRepo,
		viewport:    viewport,
		logger:      logger,
	}
}

// Bind subscribes the coordinator to the reload broadcast. One subscription
// per mounted instance; Close releases it.
func (c *StationRefreshCoordinator) Bind(bus *eventbus.Bus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != nil || c.closed {
		return
	}
	c.sub = bus.Subscribe(eventbus.TopicReloadStations, func() {
		// Reload requests never recentre the map.
		if err := c.Refresh(context.Background(), false); err != nil {
			c.logger.Warn("Broadcast-triggered refresh failed", zap.Error(err))
		}
	})
}

// Close unsubscribes from the reload broadcast and marks the coordinator
// torn down. In-flight fetches are not aborted; their late completions are
// dropped instead of mutating dead state.
func (c *StationRefreshCoordinator) Close() {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.closed = true
	c.mu.Unlock()

	sub.Cancel()
}

// Refresh fetches the station list. On success the held list is replaced
// wholesale; on failure the previous list stays and the error is recorded.
// When recenterAfter is set the viewport recentres on the user after the
// fetch, even a failed one — recentring and data freshness are decoupled.
func (c *StationRefreshCoordinator) Refresh(ctx context.Context, recenterAfter bool) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Debug("Refresh ignored, coordinator closed")
		return nil
	}
	c.loading = true
	c.lastErr = nil
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if !c.closed {
			c.loading = false
		}
		c.mu.Unlock()

		if recenterAfter {
			if err := c.viewport.RecenterOnUser(ctx); err != nil {
				c.logger.Info("Recenter after refresh skipped", zap.Error(err))
			}
		}
	}()

	stations, err := c.stationRepo.ListStations(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		// Torn down while the fetch was in flight.
		return nil
	}

	if err != nil {
		c.lastErr = apperrors.ErrFetchFailed
		c.logger.Error("Station list refresh failed", zap.Error(err))
		return apperrors.ErrFetchFailed
	}

	c.stations = stations
	c.logger.Info("Station list refreshed", zap.Int("count", len(stations)))
	return nil
}

// Stations returns the current snapshot.
func (c *StationRefreshCoordinator) Stations() []domain.Station {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Station, len(c.stations))
	copy(out, c.stations)
	return out
}

func (c *StationRefreshCoordinator) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *StationRefreshCoordinator) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Nearest returns up to n stations ordered by distance from the given point.
func (c *StationRefreshCoordinator) Nearest(lat, lon float64, n int) []domain.Station {
	stations := c.Stations()
	sort.Slice(stations, func(i, j int) bool {
		di := utils.HaversineDistance(lat, lon, stations[i].Lat, stations[i].Lon)
		dj := utils.HaversineDistance(lat, lon, stations[j].Lat, stations[j].Lon)
		return di < dj
	})
	if n > 0 && n < len(stations) {
		stations = stations[:n]
	}
	return stations
}
