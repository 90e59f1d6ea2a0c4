package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/velib-client/internal/config"
	"github.com/velib-client/internal/domain"
	"github.com/velib-client/internal/domain/repository"
	"github.com/velib-client/internal/eventbus"
	"github.com/velib-client/internal/infrastructure/velibapi"
	"github.com/velib-client/internal/pkg/logger"
	"github.com/velib-client/internal/usecase"
)

// consoleMapView logs animate commands instead of rendering. The real map
// binding lives in the mobile shell.
type consoleMapView struct {
	logger *zap.Logger
}

func (m *consoleMapView) AnimateToRegion(region domain.GeoRegion, duration time.Duration) {
	m.logger.Info("Animating viewport",
		zap.Float64("lat", region.Latitude),
		zap.Float64("lon", region.Longitude),
		zap.Float64("lat_delta", region.LatitudeDelta),
		zap.Duration("duration", duration))
}

// staticLocationProvider stands in for the platform location service: the
// permission is granted and the fix is the configured fallback point.
type staticLocationProvider struct {
	coord domain.Coordinate
}

func (p *staticLocationProvider) Permission(ctx context.Context) (repository.PermissionStatus, error) {
	return repository.PermissionGranted, nil
}

func (p *staticLocationProvider) RequestPermission(ctx context.Context) (repository.PermissionStatus, error) {
	return repository.PermissionGranted, nil
}

func (p *staticLocationProvider) CurrentPosition(ctx context.Context, accuracy repository.Accuracy) (domain.Coordinate, error) {
	return p.coord, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting velib client core",
		zap.String("api_base_url", cfg.API.BaseURL))

	apiClient := velibapi.NewClient(&cfg.API, log)
	bus := eventbus.New(log)

	mapView := &consoleMapView{logger: log}
	provider := &staticLocationProvider{
		coord: domain.Coordinate{Lat: cfg.Map.FallbackLat, Lon: cfg.Map.FallbackLon},
	}

	acquirer := usecase.NewLocationAcquirer(provider, cfg.Map.UserZoomDelta, log)
	viewport := usecase.NewViewportController(acquirer, mapView, &cfg.Map, log)
	coordinator := usecase.NewStationRefreshCoordinator(apiClient, viewport, log)
	coordinator.Bind(bus)
	defer coordinator.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.RequestTimeout)
	if err := coordinator.Refresh(ctx, true); err != nil {
		log.Warn("Initial station refresh failed", zap.Error(err))
	}
	cancel()

	for _, st := range coordinator.Nearest(cfg.Map.FallbackLat, cfg.Map.FallbackLon, 5) {
		log.Info("Nearby station",
			zap.Int64("station_id", st.StationID),
			zap.String("name", st.Name),
			zap.Int("capacity", st.Capacity))
	}

	// Periodic reload through the broadcast channel, the same path a
	// tab double-tap takes.
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			bus.Publish(eventbus.TopicReloadStations)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
}
