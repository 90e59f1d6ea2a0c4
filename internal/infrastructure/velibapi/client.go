package velibapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/velib-client/internal/config"
	"github.com/velib-client/internal/domain"
	apperrors "github.com/velib-client/internal/pkg/errors"
	"go.uber.org/zap"
)

// Client talks to the bike-share HTTP API. It implements
// repository.StationRepository, repository.ReservationRepository and
// repository.SearchRepository.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClient(cfg *config.APIConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// errorBody is the failure payload shape the backend emits on non-2xx.
type errorBody struct {
	Message   string `json:"message"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// ListStations fetches the full live station inventory.
func (c *Client) ListStations(ctx context.Context) ([]domain.Station, error) {
	var stations []domain.Station
	if err := c.get(ctx, "/api/station/stations", nil, &stations); err != nil {
		c.logger.Error("Failed to fetch station list", zap.Error(err))
		return nil, err
	}

	c.logger.Debug("Fetched station list", zap.Int("count", len(stations)))
	return stations, nil
}

// GetStationDetail fetches the live availability snapshot for one station.
func (c *Client) GetStationDetail(ctx context.Context, stationID int64) (*domain.StationDetail, error) {
	var detail domain.StationDetail
	path := fmt.Sprintf("/api/station/%d", stationID)
	if err := c.get(ctx, path, nil, &detail); err != nil {
		c.logger.Error("Failed to fetch station detail",
			zap.Int64("station_id", stationID),
			zap.Error(err))
		return nil, err
	}
	return &detail, nil
}

// CreateReservation submits a reservation with its client-generated
// confirmation id.
func (c *Client) CreateReservation(ctx context.Context, auth *domain.AuthContext, req domain.ReservationRequest) (*domain.Confirmation, error) {
	var confirmation domain.Confirmation
	if err := c.post(ctx, "/api/reservation/", auth, req, &confirmation); err != nil {
		c.logger.Error("Reservation request failed",
			zap.Int64("station_id", req.StationID),
			zap.Error(err))
		return nil, err
	}

	c.logger.Info("Reservation created",
		zap.Int64("station_id", req.StationID),
		zap.String("confirmation_id", confirmation.ConfirmationID))
	return &confirmation, nil
}

// ListReservations returns the user's reservation history, newest first.
func (c *Client) ListReservations(ctx context.Context, auth *domain.AuthContext) ([]domain.ReservationRecord, error) {
	var envelope struct {
		Data []domain.ReservationRecord `json:"data"`
	}
	query := "user_id=" + strconv.Itoa(auth.UserID)
	if err := c.get(ctx, "/api/reservation/?"+query, auth, &envelope); err != nil {
		c.logger.Error("Failed to fetch reservation history", zap.Error(err))
		return nil, err
	}
	return envelope.Data, nil
}

// SearchLocation geocodes a free-text query. A 404 with error_code NOT_FOUND
// maps to apperrors.ErrSearchNotFound so callers can treat it as a no-match
// outcome instead of a failure.
func (c *Client) SearchLocation(ctx context.Context, auth *domain.AuthContext, query string) (*domain.SearchResult, error) {
	body := map[string]interface{}{
		"search":  query,
		"user_id": auth.UserID,
	}

	var result domain.SearchResult
	if err := c.post(ctx, "/api/search/", auth, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListSearches returns the user's search history.
func (c *Client) ListSearches(ctx context.Context, auth *domain.AuthContext) ([]domain.SearchRecord, error) {
	var envelope struct {
		Data []domain.SearchRecord `json:"data"`
	}
	query := "user_id=" + strconv.Itoa(auth.UserID)
	if err := c.get(ctx, "/api/search/?"+query, auth, &envelope); err != nil {
		c.logger.Error("Failed to fetch search history", zap.Error(err))
		return nil, err
	}
	return envelope.Data, nil
}

// DeleteSearch removes one search-history entry.
func (c *Client) DeleteSearch(ctx context.Context, auth *domain.AuthContext, searchID int64) error {
	body := map[string]interface{}{
		"id_search": searchID,
		"user_id":   auth.UserID,
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/search/delete", auth, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return apperrors.ErrInvalidRequest.WithMessage(resp.Message)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, auth *domain.AuthContext, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, auth, out)
}

func (c *Client) post(ctx context.Context, path string, auth *domain.AuthContext, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, auth, out)
}

func (c *Client) do(req *http.Request, auth *domain.AuthContext, out interface{}) error {
	if auth != nil {
		req.Header.Set("Authorization", "Bearer "+auth.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.ErrFetchFailed.WithMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)

		var failure errorBody
		_ = json.Unmarshal(raw, &failure)

		if resp.StatusCode == http.StatusNotFound && failure.ErrorCode == "NOT_FOUND" {
			return apperrors.ErrSearchNotFound.WithMessage(failure.text())
		}

		c.logger.Warn("API returned error",
			zap.String("path", req.URL.Path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(raw)))

		appErr := apperrors.New("FETCH_ERROR", "request failed", resp.StatusCode)
		if failure.ErrorCode != "" {
			appErr.Code = failure.ErrorCode
		}
		if msg := failure.text(); msg != "" {
			appErr.Message = msg
		} else {
			appErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return appErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
