package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/velib-client/internal/domain"
)

type SearchHandler struct {
	store  *Store
	logger *zap.Logger
}

func NewSearchHandler(store *Store, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{store: store, logger: logger}
}

type searchRequest struct {
	Search string `json:"search"`
	UserID int    `json:"user_id"`
}

// SearchLocation geocodes a query against the fixture table. Misses answer
// 404 with error_code NOT_FOUND — clients treat that as "no match", not as
// a failure.
// POST /api/search/
func (h *SearchHandler) SearchLocation(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "invalid request body",
			"error_code": "INVALID_REQUEST",
		})
	}
	if req.Search == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "Paramètre(s) manquant(s): search",
			"error_code": "MISSING_PARAMETER",
		})
	}

	result, ok := h.store.Lookup(req.Search)
	if !ok {
		h.logger.Debug("Stub search miss", zap.String("query", req.Search))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":      "Aucun résultat pour cette recherche",
			"error_code": "NOT_FOUND",
		})
	}

	h.store.AddSearch(req.UserID, domain.SearchRecord{
		Query:     req.Search,
		Lat:       result.Lat,
		Lon:       result.Lon,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(result)
}

// ListSearches returns the user's search history.
// GET /api/search/?user_id=<int>
func (h *SearchHandler) ListSearches(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "missing or invalid user_id",
			"error_code": "MISSING_PARAMETER",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.store.Searches(userID),
	})
}

type deleteSearchRequest struct {
	IDSearch int64 `json:"id_search"`
	UserID   int   `json:"user_id"`
}

// DeleteSearch removes one history entry owned by the user.
// POST /api/search/delete
func (h *SearchHandler) DeleteSearch(c *fiber.Ctx) error {
	var req deleteSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "invalid request body",
			"error_code": "INVALID_REQUEST",
		})
	}

	if !h.store.DeleteSearch(req.UserID, req.IDSearch) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":      "Recherche non trouvée ou accès non autorisé",
			"error_code": "ACCESS_DENIED",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Recherche supprimée avec succès",
	})
}
