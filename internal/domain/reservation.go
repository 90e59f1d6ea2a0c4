package domain

import (
	"math/rand"
	"strconv"
)

// BikeType is the rider-facing bike category.
type BikeType string

const (
	BikeTypeMechanical BikeType = "mechanical"
	BikeTypeElectric   BikeType = "electric"
)

// VeloID maps the bike type to the server-side id_velo value. The mapping is
// part of the wire contract: electric is 1, mechanical is 2.
func (t BikeType) VeloID() (int, bool) {
	switch t {
	case BikeTypeElectric:
		return 1, true
	case BikeTypeMechanical:
		return 2, true
	default:
		return 0, false
	}
}

// ReservationRequest is the POST /api/reservation/ body.
type ReservationRequest struct {
	VeloID         int    `json:"id_velo" validate:"oneof=1 2"`
	StationID      int64  `json:"station_id" validate:"required"`
	UserID         int    `json:"user_id" validate:"required"`
	ConfirmationID string `json:"confirmationID" validate:"len=8,numeric"`
}

// Confirmation is the server's record of a created reservation.
type Confirmation struct {
	ID             int64  `json:"id"`
	ConfirmationID string `json:"confirmationID"`
	VeloID         int    `json:"id_velo"`
	ClientID       int    `json:"client_id"`
	StationID      int64  `json:"station_id"`
	CreateTime     string `json:"create_time"`
}

// ReservationRecord is one row of the user's reservation history.
type ReservationRecord struct {
	ID             int64  `json:"id"`
	ConfirmationID string `json:"confirmationID"`
	VeloID         int    `json:"id_velo"`
	StationID      int64  `json:"station_id"`
	StationName    string `json:"station_name,omitempty"`
	CreateTime     string `json:"create_time"`
}

// NewConfirmationID generates the client-side 8-digit confirmation token,
// uniform in [10000000, 99999999]. Uniqueness is the server's problem.
func NewConfirmationID() string {
	return strconv.Itoa(10000000 + rand.Intn(90000000))
}
