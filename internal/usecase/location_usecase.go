package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/velib-client/internal/domain"
	"github.com/velib-client/internal/domain/repository"
	apperrors "github.com/velib-client/internal/pkg/errors"
)

const defaultAnimationDuration = 1000 * time.Millisecond

// AcquireOptions tunes one acquisition. A non-nil MapView gets a
// fire-and-forget animate command on success.
type AcquireOptions struct {
	MapView           repository.MapView
	AnimationDuration time.Duration
}

// LocationAcquirer turns a device position fix into a map viewport region.
// It caches nothing: every call re-checks permission and re-requests a fix.
type LocationAcquirer struct {
	provider  repository.LocationProvider
	zoomDelta float64
	logger    *zap.Logger
}

func NewLocationAcquirer(provider repository.LocationProvider, zoomDelta float64, logger *zap.Logger) *LocationAcquirer {
	if zoomDelta <= 0 {
		zoomDelta = 0.01
	}
	return &LocationAcquirer{
		provider:  provider,
		zoomDelta: zoomDelta,
		logger:    logger,
	}
}

// Acquire checks the foreground-location permission, requesting it once when
// missing, then obtains a high-accuracy fix and maps it to a region. Denial
// and fix failures come back as named errors; the caller decides what notice
// to surface.
func (a *LocationAcquirer) Acquire(ctx context.Context, opts AcquireOptions) (domain.GeoRegion, error) {
	status, err := a.provider.Permission(ctx)
	if err != nil {
		a.logger.Warn("Permission check failed, requesting anyway", zap.Error(err))
		status = repository.PermissionUndetermined
	}

	if status != repository.PermissionGranted {
		status, err = a.provider.RequestPermission(ctx)
		if err != nil || status != repository.PermissionGranted {
			a.logger.Info("Location permission not granted",
				zap.String("status", string(status)),
				zap.Error(err))
			return domain.GeoRegion{}, apperrors.ErrPermissionDenied
		}
	}

	pos, err := a.provider.CurrentPosition(ctx, repository.AccuracyHigh)
	if err != nil {
		a.logger.Warn("Position fix failed", zap.Error(err))
		return domain.GeoRegion{}, apperrors.ErrPositionUnavailable
	}

	region := domain.RegionAround(pos.Lat, pos.Lon, a.zoomDelta)

	if opts.MapView != nil {
		duration := opts.AnimationDuration
		if duration <= 0 {
			duration = defaultAnimationDuration
		}
		// Does not affect the result of the acquisition.
		go opts.MapView.AnimateToRegion(region, duration)
	}

	a.logger.Debug("Acquired user region",
		zap.Float64("lat", region.Latitude),
		zap.Float64("lon", region.Longitude))
	return region, nil
}
