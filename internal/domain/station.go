package domain

// Station is one entry of the station-list snapshot. A fetched list replaces
// the previous one wholesale; there is no incremental merge.
type Station struct {
	StationID int64   `json:"station_id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Capacity  int     `json:"capacity"`
}

// BikeTypeCount is one entry of the per-type availability list. The feed
// emits one object per type, each exposing a single key.
type BikeTypeCount struct {
	Mechanical *int `json:"mechanical,omitempty"`
	EBike      *int `json:"ebike,omitempty"`
}

// StationDetail is the live availability snapshot for one station.
// is_installed / is_renting / is_returning are 0/1 flags as emitted by the
// upstream feed.
type StationDetail struct {
	StationID              int64           `json:"station_id"`
	IsInstalled            int             `json:"is_installed"`
	IsRenting              int             `json:"is_renting"`
	IsReturning            int             `json:"is_returning"`
	NumBikesAvailable      int             `json:"numBikesAvailable"`
	NumDocksAvailable      int             `json:"numDocksAvailable"`
	NumBikesAvailableTypes []BikeTypeCount `json:"num_bikes_available_types"`
	StationCode            string          `json:"stationCode"`
	LastReported           int64           `json:"last_reported"`
}

// Operational reports whether the station is installed and renting bikes.
func (d *StationDetail) Operational() bool {
	return d.IsInstalled == 1 && d.IsRenting == 1
}

// CanReturn reports whether the station accepts bike returns.
func (d *StationDetail) CanReturn() bool {
	return d.IsReturning == 1
}

// MechanicalBikes scans the type list for the first entry exposing the
// mechanical key; absent entries count as zero.
func (d *StationDetail) MechanicalBikes() int {
	for _, t := range d.NumBikesAvailableTypes {
		if t.Mechanical != nil {
			return *t.Mechanical
		}
	}
	return 0
}

// ElectricBikes scans the type list for the first entry exposing the ebike
// key; absent entries count as zero.
func (d *StationDetail) ElectricBikes() int {
	for _, t := range d.NumBikesAvailableTypes {
		if t.EBike != nil {
			return *t.EBike
		}
	}
	return 0
}

// AvailableOfType returns the live count for the requested bike type.
func (d *StationDetail) AvailableOfType(t BikeType) int {
	switch t {
	case BikeTypeMechanical:
		return d.MechanicalBikes()
	case BikeTypeElectric:
		return d.ElectricBikes()
	default:
		return 0
	}
}
