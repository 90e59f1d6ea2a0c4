package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/velib-client/internal/config"
	"github.com/velib-client/internal/domain"
	"github.com/velib-client/internal/domain/repository"
)

// ViewportController owns the current map region for the lifetime of the map
// screen. Nothing is persisted across restarts.
type ViewportController struct {
	acquirer          *LocationAcquirer
	mapView           repository.MapView
	userZoomDelta     float64
	animationDuration time.Duration
	logger            *zap.Logger

	mu         sync.Mutex
	region     domain.GeoRegion
	userRegion *domain.GeoRegion
}

func NewViewportController(
	acquirer *LocationAcquirer,
	mapView repository.MapView,
	cfg *config.MapConfig,
	logger *zap.Logger,
) *ViewportController {
	return &ViewportController{
		acquirer:          acquirer,
		mapView:           mapView,
		userZoomDelta:     cfg.UserZoomDelta,
		animationDuration: cfg.AnimationDuration,
		logger:            logger,
		region: domain.GeoRegion{
			Latitude:       cfg.FallbackLat,
			Longitude:      cfg.FallbackLon,
			LatitudeDelta:  cfg.FallbackLatDelta,
			LongitudeDelta: cfg.FallbackLonDelta,
		},
	}
}

func (v *ViewportController) Region() domain.GeoRegion {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.region
}

func (v *ViewportController) SetRegion(region domain.GeoRegion) {
	if !region.Valid() {
		v.logger.Warn("Ignoring invalid region",
			zap.Float64("lat_delta", region.LatitudeDelta),
			zap.Float64("lon_delta", region.LongitudeDelta))
		return
	}
	v.mu.Lock()
	v.region = region
	v.mu.Unlock()
}

// RecenterOnUser animates to the cached user region when one exists,
// otherwise acquires a fresh fix first. The fallback region stands when
// acquisition fails.
func (v *ViewportController) RecenterOnUser(ctx context.Context) error {
	v.mu.Lock()
	cached := v.userRegion
	v.mu.Unlock()

	if cached != nil {
		v.SetRegion(*cached)
		v.animate(*cached)
		return nil
	}

	region, err := v.acquirer.Acquire(ctx, AcquireOptions{})
	if err != nil {
		v.logger.Info("Recenter on user skipped", zap.Error(err))
		return err
	}

	v.mu.Lock()
	v.userRegion = &region
	v.mu.Unlock()

	v.SetRegion(region)
	v.animate(region)
	return nil
}

// RecenterOnCoordinate centres the viewport on an arbitrary point, e.g. a
// search result. A non-positive zoomDelta falls back to the configured one.
func (v *ViewportController) RecenterOnCoordinate(lat, lon, zoomDelta float64) {
	if zoomDelta <= 0 {
		zoomDelta = v.userZoomDelta
	}
	region := domain.RegionAround(lat, lon, zoomDelta)
	v.SetRegion(region)
	v.animate(region)
}

func (v *ViewportController) animate(region domain.GeoRegion) {
	if v.mapView != nil {
		v.mapView.AnimateToRegion(region, v.animationDuration)
	}
}
