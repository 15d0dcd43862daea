//go:build wireinject
// +build wireinject

package di

import (
	"summitbooking/config"
	"summitbooking/infras/bolt"
	"summitbooking/infras/otel"
	"summitbooking/infras/sqlite"
	"summitbooking/internal/seed"

	authService "summitbooking/internal/domains/auth/service"
	bookingRepository "summitbooking/internal/domains/booking/repository"
	bookingService "summitbooking/internal/domains/booking/service"
	busRepository "summitbooking/internal/domains/bus/repository"
	busService "summitbooking/internal/domains/bus/service"
	paymentRepository "summitbooking/internal/domains/payment/repository"
	receiptService "summitbooking/internal/domains/receipt/service"
	routeRepository "summitbooking/internal/domains/route/repository"
	routeService "summitbooking/internal/domains/route/service"
	sessionService "summitbooking/internal/domains/session/service"
	tripRepository "summitbooking/internal/domains/trip/repository"
	tripService "summitbooking/internal/domains/trip/service"
	userRepository "summitbooking/internal/domains/user/repository"
	userService "summitbooking/internal/domains/user/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	bolt.New,
	otel.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var busDomain = wire.NewSet(
	busRepository.New,
	busRepository.NewBusType,
	busService.New,
)

var routeDomain = wire.NewSet(
	routeRepository.New,
	routeService.New,
)

var tripDomain = wire.NewSet(
	tripRepository.New,
	tripService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	paymentRepository.New,
	bookingService.New,
)

var sessionDomain = wire.NewSet(
	sessionService.New,
)

var receiptDomain = wire.NewSet(
	receiptService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	busDomain,
	routeDomain,
	tripDomain,
	bookingDomain,
	sessionDomain,
	receiptDomain,
)

func InitializeServices() *Services {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		wire.Struct(new(Services), "*"),
	)

	return &Services{}
}

func InitializeSeeder() *seed.Seeder {
	wire.Build(
		configurations,
		sqlite.New,
		otel.New,
		userRepository.New,
		busRepository.New,
		busRepository.NewBusType,
		routeRepository.New,
		tripRepository.New,
		seed.New,
	)

	return &seed.Seeder{}
}
