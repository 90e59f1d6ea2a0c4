package repository

import (
	"context"

	"github.com/velib-client/internal/domain"
)

// StationRepository is the remote station inventory.
type StationRepository interface {
	// ListStations fetches the full live station list.
	ListStations(ctx context.Context) ([]domain.Station, error)
	// GetStationDetail fetches the live availability snapshot for one station.
	GetStationDetail(ctx context.Context, stationID int64) (*domain.StationDetail, error)
}
