package handler

import (
	"strings"
	"sync"

	"github.com/velib-client/internal/domain"
)

func intp(v int) *int { return &v }

// Store is the in-memory backing state of the stub API. Fixtures only; the
// real service owns durable storage.
type Store struct {
	mu           sync.Mutex
	stations     []domain.Station
	details      map[int64]domain.StationDetail
	places       map[string]domain.SearchResult
	reservations map[int][]domain.ReservationRecord
	searches     map[int][]domain.SearchRecord
	nextID       int64
}

func NewStore() *Store {
	s := &Store{
		details:      make(map[int64]domain.StationDetail),
		places:       make(map[string]domain.SearchResult),
		reservations: make(map[int][]domain.ReservationRecord),
		searches:     make(map[int][]domain.SearchRecord),
		nextID:       1,
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	s.stations = []domain.Station{
		{StationID: 213688169, Name: "Benjamin Godard - Victor Hugo", Lat: 48.865983, Lon: 2.275725, Capacity: 35},
		{StationID: 99950133, Name: "Rouget de L'isle - Watteau", Lat: 48.778192, Lon: 2.396302, Capacity: 20},
		{StationID: 516709288, Name: "Jourdan - Stade Charléty", Lat: 48.819428, Lon: 2.343259, Capacity: 60},
	}

	s.details[213688169] = domain.StationDetail{
		StationID:         213688169,
		IsInstalled:       1,
		IsRenting:         1,
		IsReturning:       1,
		NumBikesAvailable: 8,
		NumDocksAvailable: 27,
		NumBikesAvailableTypes: []domain.BikeTypeCount{
			{Mechanical: intp(5)},
			{EBike: intp(3)},
		},
		StationCode:  "16107",
		LastReported: 1707145674,
	}
	s.details[99950133] = domain.StationDetail{
		StationID:         99950133,
		IsInstalled:       1,
		IsRenting:         1,
		IsReturning:       0,
		NumBikesAvailable: 2,
		NumDocksAvailable: 18,
		NumBikesAvailableTypes: []domain.BikeTypeCount{
			{Mechanical: intp(2)},
			{EBike: intp(0)},
		},
		StationCode:  "44015",
		LastReported: 1707145702,
	}
	s.details[516709288] = domain.StationDetail{
		StationID:         516709288,
		IsInstalled:       0,
		IsRenting:         0,
		IsReturning:       0,
		NumBikesAvailable: 0,
		NumDocksAvailable: 0,
		NumBikesAvailableTypes: []domain.BikeTypeCount{
			{Mechanical: intp(0)},
			{EBike: intp(0)},
		},
		StationCode:  "14111",
		LastReported: 1707140112,
	}

	s.places["tour eiffel"] = domain.SearchResult{Lat: 48.85837, Lon: 2.294481, Message: "Tour Eiffel"}
	s.places["louvre"] = domain.SearchResult{Lat: 48.860611, Lon: 2.337644, Message: "Musée du Louvre"}
	s.places["notre dame"] = domain.SearchResult{Lat: 48.852968, Lon: 2.349902, Message: "Cathédrale Notre-Dame"}
	for _, st := range s.stations {
		s.places[strings.ToLower(st.Name)] = domain.SearchResult{Lat: st.Lat, Lon: st.Lon, Message: st.Name}
	}
}

func (s *Store) Stations() []domain.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Station, len(s.stations))
	copy(out, s.stations)
	return out
}

func (s *Store) Detail(stationID int64) (domain.StationDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.details[stationID]
	return d, ok
}

func (s *Store) Lookup(query string) (domain.SearchResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.places[strings.ToLower(strings.TrimSpace(query))]
	return res, ok
}

func (s *Store) AddReservation(userID int, rec domain.ReservationRecord) domain.ReservationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.nextID
	s.nextID++
	// Newest first, like the backing view.
	s.reservations[userID] = append([]domain.ReservationRecord{rec}, s.reservations[userID]...)
	return rec
}

func (s *Store) Reservations(userID int) []domain.ReservationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ReservationRecord, len(s.reservations[userID]))
	copy(out, s.reservations[userID])
	return out
}

func (s *Store) AddSearch(userID int, rec domain.SearchRecord) domain.SearchRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.nextID
	s.nextID++
	s.searches[userID] = append([]domain.SearchRecord{rec}, s.searches[userID]...)
	return rec
}

func (s *Store) Searches(userID int) []domain.SearchRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SearchRecord, len(s.searches[userID]))
	copy(out, s.searches[userID])
	return out
}

// DeleteSearch removes one record; the second return reports whether the
// record existed and belonged to the user.
func (s *Store) DeleteSearch(userID int, searchID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.searches[userID]
	for i, rec := range records {
		if rec.ID == searchID {
			s.searches[userID] = append(records[:i], records[i+1:]...)
			return true
		}
	}
	return false
}
