package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/velib-client/internal/config"
	"github.com/velib-client/internal/delivery/http/handler"
	"github.com/velib-client/internal/delivery/http/middleware"
)

// Server is the development stub of the remote bike-share API. It mirrors
// the routes the client core consumes, backed by in-memory fixtures.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	stationHandler     *handler.StationHandler
	reservationHandler *handler.ReservationHandler
	searchHandler      *handler.SearchHandler
}

func NewServer(cfg *config.Config, logger *zap.Logger, store *handler.Store) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Velib API Stub",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		stationHandler:     handler.NewStationHandler(store, logger),
		reservationHandler: handler.NewReservationHandler(store, logger),
		searchHandler:      handler.NewSearchHandler(store, logger),
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(recover.New())
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Station inventory is public.
	station := api.Group("/station")
	station.Get("/stations", s.stationHandler.ListStations)
	station.Get("/:id", s.stationHandler.GetStation)

	// Reservation and search require a session.
	reservation := api.Group("/reservation", middleware.RequireBearer())
	reservation.Post("/", s.reservationHandler.CreateReservation)
	reservation.Get("/", s.reservationHandler.ListReservations)

	search := api.Group("/search", middleware.RequireBearer())
	search.Post("/", s.searchHandler.SearchLocation)
	search.Get("/", s.searchHandler.ListSearches)
	search.Post("/delete", s.searchHandler.DeleteSearch)
}

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetStubAddr()
	s.logger.Info("Starting stub API server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down stub API server")
	return s.app.ShutdownWithContext(ctx)
}
