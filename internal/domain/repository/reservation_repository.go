package repository

import (
	"context"

	"github.com/velib-client/internal/domain"
)

// ReservationRepository is the remote reservation API. All operations
// require a valid session.
type ReservationRepository interface {
	CreateReservation(ctx context.Context, auth *domain.AuthContext, req domain.ReservationRequest) (*domain.Confirmation, error)
	ListReservations(ctx context.Context, auth *domain.AuthContext) ([]domain.ReservationRecord, error)
}
