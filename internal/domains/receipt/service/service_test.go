package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summitbooking/config"
	"summitbooking/infras/otel/mocks"
	"summitbooking/infras/sqlite"
	"summitbooking/internal/domains/booking/model/dto"
	bookingRepo "summitbooking/internal/domains/booking/repository"
	bookingService "summitbooking/internal/domains/booking/service"
	busModel "summitbooking/internal/domains/bus/model"
	busRepo "summitbooking/internal/domains/bus/repository"
	paymentRepo "summitbooking/internal/domains/payment/repository"
	"summitbooking/internal/domains/receipt/service"
	routeModel "summitbooking/internal/domains/route/model"
	routeRepo "summitbooking/internal/domains/route/repository"
	tripModel "summitbooking/internal/domains/trip/model"
	tripRepo "summitbooking/internal/domains/trip/repository"
	userModel "summitbooking/internal/domains/user/model"
	userRepo "summitbooking/internal/domains/user/repository"
	"summitbooking/shared/constant"
	"summitbooking/shared/failure"
)

func newReceiptFixture(t *testing.T) (service.Receipt, bookingService.Booking, int64, int64) {
	t.Helper()

	conn, err := sqlite.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ot := mocks.NewOtel()
	ctx := context.Background()

	users := userRepo.New(conn, ot)
	busTypes := busRepo.NewBusType(conn, ot)
	buses := busRepo.New(conn, ot)
	routes := routeRepo.New(conn, ot)
	trips := tripRepo.New(conn, ot)
	bookings := bookingRepo.New(conn, ot)
	payments := paymentRepo.New(conn, ot)

	clerkID, err := users.Insert(ctx, userModel.User{
		FullName:  "John Doe",
		Email:     "clerk@summitcoaches.com",
		Phone:     "0700000001",
		Password:  "hash",
		Role:      constant.RoleClerk,
		CreatedAt: "2026-08-30 08:00:00",
	})
	require.NoError(t, err)

	typeID, err := busTypes.Insert(ctx, busModel.BusType{TypeName: "Standard", Capacity: 45})
	require.NoError(t, err)

	busID, err := buses.Insert(ctx, busModel.Bus{
		BusTypeID:          typeID,
		RegistrationNumber: "UAH 123A",
		Model:              "Scania Touring",
		Status:             "Active",
	})
	require.NoError(t, err)

	routeID, err := routes.Insert(ctx, routeModel.Route{
		Origin:      "Kampala",
		Destination: "Mbarara",
		Distance:    270.0,
		BaseFare:    45000.0,
		LuggageFare: 15000.0,
		ParcelFare:  20000.0,
	})
	require.NoError(t, err)

	tripID, err := trips.Insert(ctx, tripModel.Trip{
		BusID:          busID,
		RouteID:        routeID,
		TripDate:       "2026-08-31",
		DepartureTime:  "08:00",
		ArrivalTime:    "13:00",
		AvailableSeats: 45,
		Status:         constant.TripStatusScheduled,
	})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Currency = "UGX"

	bookingSvc := bookingService.New(bookings, trips, payments, conn, cfg, ot)

	return service.New(bookingSvc, payments, cfg, ot), bookingSvc, clerkID, tripID
}

func TestGenerate(t *testing.T) {
	receipts, bookingSvc, clerkID, tripID := newReceiptFixture(t)
	ctx := context.Background()

	created, err := bookingSvc.Create(ctx, dto.CreateBookingRequest{
		TripID:        tripID,
		ClerkID:       clerkID,
		PassengerName: "Mary Akello",
		PhoneNumber:   "0701234567",
		BookingType:   constant.BookingTypePassenger,
		SeatNumber:    "12A",
	})
	require.NoError(t, err)

	pdf, filename, err := receipts.Generate(ctx, created.Booking.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(pdf[:4]), "%PDF"))
	assert.Equal(t, "RECEIPT_"+created.Booking.BookingReference+".pdf", filename)
}

func TestGenerate_UnknownBooking(t *testing.T) {
	receipts, _, _, _ := newReceiptFixture(t)

	_, _, err := receipts.Generate(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
}
