package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/velib-client/internal/domain"
	"github.com/velib-client/internal/pkg/validator"
)

type ReservationHandler struct {
	store  *Store
	logger *zap.Logger
}

func NewReservationHandler(store *Store, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{store: store, logger: logger}
}

// CreateReservation accepts a reservation with its client-generated
// confirmation id.
// POST /api/reservation/
func (h *ReservationHandler) CreateReservation(c *fiber.Ctx) error {
	var req domain.ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "invalid request body",
			"error_code": "INVALID_REQUEST",
		})
	}
	if err := validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      err.Error(),
			"error_code": "INVALID_REQUEST",
		})
	}

	if _, ok := h.store.Detail(req.StationID); !ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":    "Station inconnue, réservation refusée",
			"error_code": "RESERVATION_REJECTED",
		})
	}

	createTime := time.Now().UTC().Format(time.RFC3339)
	rec := h.store.AddReservation(req.UserID, domain.ReservationRecord{
		ConfirmationID: req.ConfirmationID,
		VeloID:         req.VeloID,
		StationID:      req.StationID,
		CreateTime:     createTime,
	})

	h.logger.Info("Stub reservation created",
		zap.Int("user_id", req.UserID),
		zap.Int64("station_id", req.StationID))

	return c.Status(fiber.StatusCreated).JSON(domain.Confirmation{
		ID:             rec.ID,
		ConfirmationID: req.ConfirmationID,
		VeloID:         req.VeloID,
		ClientID:       req.UserID,
		StationID:      req.StationID,
		CreateTime:     createTime,
	})
}

// ListReservations returns the user's reservation history, newest first.
// GET /api/reservation/?user_id=<int>
func (h *ReservationHandler) ListReservations(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "missing or invalid user_id",
			"error_code": "MISSING_PARAMETER",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.store.Reservations(userID),
	})
}
