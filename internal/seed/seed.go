package seed

import (
	"context"
	"fmt"
	busModel "summitbooking/internal/domains/bus/model"
	busRepo "summitbooking/internal/domains/bus/repository"
	routeModel "summitbooking/internal/domains/route/model"
	routeRepo "summitbooking/internal/domains/route/repository"
	tripModel "summitbooking/internal/domains/trip/model"
	tripRepo "summitbooking/internal/domains/trip/repository"
	userModel "summitbooking/internal/domains/user/model"
	userRepo "summitbooking/internal/domains/user/repository"
	"summitbooking/shared/constant"
	gDto "summitbooking/shared/dto"
	"summitbooking/shared/password"
	"summitbooking/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Seeder populates a fresh database with the sample fleet, routes, and two
// login accounts. It only runs against an empty users table.
type Seeder struct {
	userRepo    userRepo.User
	busRepo     busRepo.Bus
	busTypeRepo busRepo.BusType
	routeRepo   routeRepo.Route
	tripRepo    tripRepo.Trip
}

func New(userRepo userRepo.User, busRepo busRepo.Bus, busTypeRepo busRepo.BusType, routeRepo routeRepo.Route, tripRepo tripRepo.Trip) *Seeder {
	return &Seeder{
		userRepo:    userRepo,
		busRepo:     busRepo,
		busTypeRepo: busTypeRepo,
		routeRepo:   routeRepo,
		tripRepo:    tripRepo,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{gDto.Filter{
			Field:    userModel.FieldID,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    1,
			Table:    userModel.TableName,
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if count > 0 {
		log.Info().Msg("Database already seeded, skipping")

		return nil
	}

	if err := s.seedUsers(ctx); err != nil {
		return err
	}

	busIDs, err := s.seedFleet(ctx)
	if err != nil {
		return err
	}

	if err := s.seedRoutesAndTrips(ctx, busIDs); err != nil {
		return err
	}

	log.Info().Msg("Database seeded")

	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	users := []struct {
		fullName string
		email    string
		phone    string
		plain    string
		role     string
	}{
		{"Admin User", "admin@summitcoaches.com", "0700000000", "admin123", constant.RoleAdmin},
		{"John Doe", "clerk@summitcoaches.com", "0700000001", "clerk123", constant.RoleClerk},
	}

	now := timezone.Now().Format(constant.DateTimeFormat)

	for _, u := range users {
		hashed, err := password.Hash(u.plain)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		_, err = s.userRepo.Insert(ctx, userModel.User{
			FullName:  u.fullName,
			Email:     u.email,
			Phone:     u.phone,
			Password:  hashed,
			Role:      u.role,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.email, err)
		}
	}

	return nil
}

func (s *Seeder) seedFleet(ctx context.Context) ([]int64, error) {
	types := []busModel.BusType{
		{TypeName: "Standard", Capacity: 45, Description: strPtr("Regular seating bus")},
		{TypeName: "Luxury", Capacity: 32, Description: strPtr("Premium comfort with reclining seats")},
		{TypeName: "VIP", Capacity: 24, Description: strPtr("Executive class with extra legroom")},
	}

	typeIDs := make([]int64, len(types))

	for i, t := range types {
		id, err := s.busTypeRepo.Insert(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("failed to seed bus type %s: %w", t.TypeName, err)
		}

		typeIDs[i] = id
	}

	buses := []struct {
		typeIdx int
		reg     string
		model   string
	}{
		{0, "UAH 123A", "Yutong ZK6129H"},
		{1, "UAH 456B", "Scania Touring"},
		{0, "UAH 789C", "Mercedes-Benz O500R"},
		{2, "UAH 012D", "Volvo 9700"},
	}

	busIDs := make([]int64, len(buses))

	for i, b := range buses {
		id, err := s.busRepo.Insert(ctx, busModel.Bus{
			BusTypeID:          typeIDs[b.typeIdx],
			RegistrationNumber: b.reg,
			Model:              b.model,
			Status:             "Active",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed bus %s: %w", b.reg, err)
		}

		busIDs[i] = id
	}

	return busIDs, nil
}

func (s *Seeder) seedRoutesAndTrips(ctx context.Context, busIDs []int64) error {
	routes := []routeModel.Route{
		{Origin: "Kampala", Destination: "Mbarara", Distance: 270.0, BaseFare: 45000.0, LuggageFare: 15000.0, ParcelFare: 20000.0},
		{Origin: "Kampala", Destination: "Gulu", Distance: 340.0, BaseFare: 55000.0, LuggageFare: 18000.0, ParcelFare: 25000.0},
		{Origin: "Kampala", Destination: "Mbale", Distance: 245.0, BaseFare: 40000.0, LuggageFare: 12000.0, ParcelFare: 18000.0},
		{Origin: "Kampala", Destination: "Fort Portal", Distance: 320.0, BaseFare: 50000.0, LuggageFare: 16000.0, ParcelFare: 22000.0},
		{Origin: "Mbarara", Destination: "Kabale", Distance: 150.0, BaseFare: 30000.0, LuggageFare: 10000.0, ParcelFare: 15000.0},
	}

	routeIDs := make([]int64, len(routes))

	for i, r := range routes {
		id, err := s.routeRepo.Insert(ctx, r)
		if err != nil {
			return fmt.Errorf("failed to seed route %s-%s: %w", r.Origin, r.Destination, err)
		}

		routeIDs[i] = id
	}

	today := timezone.Now().Format(constant.DateFormat)
	tomorrow := timezone.Now().AddDate(0, 0, 1).Format(constant.DateFormat)

	trips := []struct {
		busIdx    int
		routeIdx  int
		date      string
		departure string
		arrival   string
		seats     int
	}{
		{0, 0, today, "08:00", "13:00", 45},
		{1, 1, today, "10:00", "16:00", 32},
		{2, 2, today, "14:00", "19:00", 45},
		{3, 3, tomorrow, "07:00", "13:00", 24},
		{0, 0, tomorrow, "15:00", "20:00", 45},
	}

	for _, t := range trips {
		_, err := s.tripRepo.Insert(ctx, tripModel.Trip{
			BusID:          busIDs[t.busIdx],
			RouteID:        routeIDs[t.routeIdx],
			TripDate:       t.date,
			DepartureTime:  t.departure,
			ArrivalTime:    t.arrival,
			AvailableSeats: t.seats,
			Status:         constant.TripStatusScheduled,
		})
		if err != nil {
			return fmt.Errorf("failed to seed trip: %w", err)
		}
	}

	return nil
}

func strPtr(s string) *string {
	return &s
}
