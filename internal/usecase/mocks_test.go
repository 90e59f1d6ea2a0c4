package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/velib-client/internal/domain"
	"github.com/velib-client/internal/domain/repository"
)

// MockStationRepository is a mock of StationRepository
type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetStationDetail(ctx context.Context, stationID int64) (*domain.StationDetail, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StationDetail), args.Error(1)
}

// MockReservationRepository is a mock of ReservationRepository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) CreateReservation(ctx context.Context, auth *domain.AuthContext, req domain.ReservationRequest) (*domain.Confirmation, error) {
	args := m.Called(ctx, auth, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Confirmation), args.Error(1)
}

func (m *MockReservationRepository) ListReservations(ctx context.Context, auth *domain.AuthContext) ([]domain.ReservationRecord, error) {
	args := m.Called(ctx, auth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReservationRecord), args.Error(1)
}

// MockSearchRepository is a mock of SearchRepository
type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) SearchLocation(ctx context.Context, auth *domain.AuthContext, query string) (*domain.SearchResult, error) {
	args := m.Called(ctx, auth, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

func (m *MockSearchRepository) ListSearches(ctx context.Context, auth *domain.AuthContext) ([]domain.SearchRecord, error) {
	args := m.Called(ctx, auth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SearchRecord), args.Error(1)
}

func (m *MockSearchRepository) DeleteSearch(ctx context.Context, auth *domain.AuthContext, searchID int64) error {
	args := m.Called(ctx, auth, searchID)
	return args.Error(0)
}

// MockLocationProvider is a mock of LocationProvider
type MockLocationProvider struct {
	mock.Mock
}

func (m *MockLocationProvider) Permission(ctx context.Context) (repository.PermissionStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.PermissionStatus), args.Error(1)
}

func (m *MockLocationProvider) RequestPermission(ctx context.Context) (repository.PermissionStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.PermissionStatus), args.Error(1)
}

func (m *MockLocationProvider) CurrentPosition(ctx context.Context, accuracy repository.Accuracy) (domain.Coordinate, error) {
	args := m.Called(ctx, accuracy)
	return args.Get(0).(domain.Coordinate), args.Error(1)
}

// recordingMapView records animate commands for assertions.
type recordingMapView struct {
	mu       sync.Mutex
	regions  []domain.GeoRegion
	notified chan struct{}
}

func newRecordingMapView() *recordingMapView {
	return &recordingMapView{notified: make(chan struct{}, 16)}
}

func (m *recordingMapView) AnimateToRegion(region domain.GeoRegion, duration time.Duration) {
	m.mu.Lock()
	m.regions = append(m.regions, region)
	m.mu.Unlock()
	select {
	case m.notified <- struct{}{}:
	default:
	}
}

func (m *recordingMapView) Regions() []domain.GeoRegion {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.GeoRegion, len(m.regions))
	copy(out, m.regions)
	return out
}

func (m *recordingMapView) WaitForAnimation(t interface{ Fatal(...interface{}) }) {
	select {
	case <-m.notified:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for an animate command")
	}
}

// grantedProvider is a provider that always grants and fixes at a point.
type grantedProvider struct {
	coord domain.Coordinate
}

func (p *grantedProvider) Permission(ctx context.Context) (repository.PermissionStatus, error) {
	return repository.PermissionGranted, nil
}

func (p *grantedProvider) RequestPermission(ctx context.Context) (repository.PermissionStatus, error) {
	return repository.PermissionGranted, nil
}

func (p *grantedProvider) CurrentPosition(ctx context.Context, accuracy repository.Accuracy) (domain.Coordinate, error) {
	return p.coord, nil
}

// deniedProvider refuses the permission request.
type deniedProvider struct{}

func (p *deniedProvider) Permission(ctx context.Context) (repository.PermissionStatus, error) {
	return repository.PermissionUndetermined, nil
}

func (p *deniedProvider) RequestPermission(ctx context.Context) (repository.PermissionStatus, error) {
	return repository.PermissionDenied, nil
}

func (p *deniedProvider) CurrentPosition(ctx context.Context, accuracy repository.Accuracy) (domain.Coordinate, error) {
	return domain.Coordinate{}, nil
}

// blockingStationRepo serves ListStations calls that block until released,
// for interleaving tests.
type blockingStationRepo struct {
	mu    sync.Mutex
	calls []*blockedCall
}

type blockedCall struct {
	arrived  chan struct{}
	release  chan struct{}
	stations []domain.Station
	err      error
}

// Release lets the blocked ListStations call complete.
func (c *blockedCall) Release() {
	close(c.release)
}

// WaitArrival blocks until the call has been picked up by the coordinator.
func (c *blockedCall) WaitArrival(t interface{ Fatal(...interface{}) }) {
	select {
	case <-c.arrived:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for ListStations call")
	}
}

func newBlockingStationRepo() *blockingStationRepo {
	return &blockingStationRepo{}
}

// Expect queues the outcome of the next ListStations call.
func (r *blockingStationRepo) Expect(stations []domain.Station, err error) *blockedCall {
	call := &blockedCall{
		arrived:  make(chan struct{}),
		release:  make(chan struct{}),
		stations: stations,
		err:      err,
	}
	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()
	return call
}

func (r *blockingStationRepo) ListStations(ctx context.Context) ([]domain.Station, error) {
	r.mu.Lock()
	if len(r.calls) == 0 {
		r.mu.Unlock()
		return nil, nil
	}
	call := r.calls[0]
	r.calls = r.calls[1:]
	r.mu.Unlock()

	close(call.arrived)
	<-call.release
	return call.stations, call.err
}

func (r *blockingStationRepo) GetStationDetail(ctx context.Context, stationID int64) (*domain.StationDetail, error) {
	return nil, nil
}
