package domain

// SearchResult is the transient outcome of a location search: the point to
// recentre on plus the server's display message.
type SearchResult struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Message string  `json:"message"`
}

// SearchRecord is one row of the user's search history.
type SearchRecord struct {
	ID        int64   `json:"id"`
	Query     string  `json:"search"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	CreatedAt string  `json:"create_time"`
}
