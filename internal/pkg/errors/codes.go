package errors

import "net/http"

var (
	ErrPermissionDenied = New(
		"PERMISSION_DENIED",
		"Location permission was not granted",
		http.StatusForbidden,
	)

	ErrPositionUnavailable = New(
		"POSITION_UNAVAILABLE",
		"Unable to obtain a position fix",
		http.StatusServiceUnavailable,
	)

	ErrFetchFailed = New(
		"FETCH_ERROR",
		"Failed to fetch the station list",
		http.StatusBadGateway,
	)

	ErrDetailFetchFailed = New(
		"DETAIL_FETCH_ERROR",
		"Failed to fetch station details",
		http.StatusBadGateway,
	)

	ErrNotAuthenticated = New(
		"NOT_AUTHENTICATED",
		"No active session",
		http.StatusUnauthorized,
	)

	ErrReservationRejected = New(
		"RESERVATION_REJECTED",
		"Reservation was rejected by the server",
		http.StatusConflict,
	)

	// ErrSearchNotFound is informational: a search with no match is not a
	// failure and must not be surfaced as an error notice.
	ErrSearchNotFound = New(
		"NOT_FOUND",
		"No location matched the search",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)
)
