package domain

// Coordinate is a raw device fix or a point of interest on the map.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoRegion describes a map viewport: centre plus zoom span. Deltas must be
// positive for the region to be renderable.
type GeoRegion struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

func (r GeoRegion) Valid() bool {
	return r.LatitudeDelta > 0 && r.LongitudeDelta > 0 &&
		r.Latitude >= -90 && r.Latitude <= 90 &&
		r.Longitude >= -180 && r.Longitude <= 180
}

// RegionAround builds a square viewport centred on the given point.
func RegionAround(lat, lon, zoomDelta float64) GeoRegion {
	return GeoRegion{
		Latitude:       lat,
		Longitude:      lon,
		LatitudeDelta:  zoomDelta,
		LongitudeDelta: zoomDelta,
	}
}
