package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/velib-client/internal/domain"
	"github.com/velib-client/internal/domain/repository"
	apperrors "github.com/velib-client/internal/pkg/errors"
	"github.com/velib-client/internal/pkg/validator"
)

// ReservationFlow validates and submits bike reservations. A successful
// reservation does not re-trigger a station-list refresh; the displayed
// availability may be stale until the next refresh.
type ReservationFlow struct {
	reservationRepo repository.ReservationRepository
	logger          *zap.Logger
}

func NewReservationFlow(reservationRepo repository.ReservationRepository, logger *zap.Logger) *ReservationFlow {
	return &ReservationFlow{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Reserve submits a reservation for the given bike type at a station. The
// session must be present — a missing one fails before any network call —
// and the supplied detail must show at least one available bike of the type.
func (f *ReservationFlow) Reserve(
	ctx context.Context,
	auth *domain.AuthContext,
	bikeType domain.BikeType,
	stationID int64,
	detail *domain.StationDetail,
) (*domain.Confirmation, error) {
	if !auth.Valid() {
		return nil, apperrors.ErrNotAuthenticated
	}

	veloID, ok := bikeType.VeloID()
	if !ok {
		return nil, apperrors.ErrReservationRejected.WithMessage("unknown bike type")
	}

	if detail == nil || detail.AvailableOfType(bikeType) == 0 {
		f.logger.Info("Reservation refused, no bikes of requested type",
			zap.String("bike_type", string(bikeType)),
			zap.Int64("station_id", stationID))
		return nil, apperrors.ErrReservationRejected.WithMessage("no bikes of the requested type available")
	}

	req := domain.ReservationRequest{
		VeloID:         veloID,
		StationID:      stationID,
		UserID:         auth.UserID,
		ConfirmationID: domain.NewConfirmationID(),
	}
	if err := validator.Validate(req); err != nil {
		return nil, apperrors.ErrInvalidRequest.WithMessage(err.Error())
	}

	confirmation, err := f.reservationRepo.CreateReservation(ctx, auth, req)
	if err != nil {
		// Pass the server's message through verbatim when it sent one.
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Message != "" {
			return nil, apperrors.ErrReservationRejected.WithMessage(appErr.Message)
		}
		return nil, apperrors.ErrReservationRejected
	}

	return confirmation, nil
}

// History returns the user's past reservations, newest first.
func (f *ReservationFlow) History(ctx context.Context, auth *domain.AuthContext) ([]domain.ReservationRecord, error) {
	if !auth.Valid() {
		return nil, apperrors.ErrNotAuthenticated
	}
	return f.reservationRepo.ListReservations(ctx, auth)
}
