package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StationHandler struct {
	store  *Store
	logger *zap.Logger
}

func NewStationHandler(store *Store, logger *zap.Logger) *StationHandler {
	return &StationHandler{store: store, logger: logger}
}

// ListStations returns the full station inventory.
// GET /api/station/stations
func (h *StationHandler) ListStations(c *fiber.Ctx) error {
	return c.JSON(h.store.Stations())
}

// GetStation returns the live status snapshot for one station.
// GET /api/station/:id
func (h *StationHandler) GetStation(c *fiber.Ctx) error {
	stationID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "invalid station id",
			"error_code": "INVALID_REQUEST",
		})
	}

	detail, ok := h.store.Detail(stationID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":      "station not found",
			"error_code": "STATION_NOT_FOUND",
		})
	}
	return c.JSON(detail)
}
