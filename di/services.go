package di

import (
	"summitbooking/infras/bolt"
	"summitbooking/infras/sqlite"
	authService "summitbooking/internal/domains/auth/service"
	bookingService "summitbooking/internal/domains/booking/service"
	busService "summitbooking/internal/domains/bus/service"
	receiptService "summitbooking/internal/domains/receipt/service"
	routeService "summitbooking/internal/domains/route/service"
	sessionService "summitbooking/internal/domains/session/service"
	tripService "summitbooking/internal/domains/trip/service"
	userService "summitbooking/internal/domains/user/service"
)

// Services bundles every domain service for the presentation layer.
type Services struct {
	Auth    authService.Auth
	User    userService.User
	Bus     busService.Bus
	Route   routeService.Route
	Trip    tripService.Trip
	Booking bookingService.Booking
	Session sessionService.Session
	Receipt receiptService.Receipt

	DB           *sqlite.Connection
	SessionStore *bolt.Store
}

// Close releases the underlying stores.
func (s *Services) Close() error {
	if err := s.SessionStore.Close(); err != nil {
		return err
	}

	return s.DB.Close()
}
