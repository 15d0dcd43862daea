package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summitbooking/config"
	"summitbooking/infras/otel/mocks"
	"summitbooking/infras/sqlite"
	busModel "summitbooking/internal/domains/bus/model"
	busRepo "summitbooking/internal/domains/bus/repository"
	routeModel "summitbooking/internal/domains/route/model"
	routeRepo "summitbooking/internal/domains/route/repository"
	"summitbooking/internal/domains/trip/model/dto"
	tripRepo "summitbooking/internal/domains/trip/repository"
	"summitbooking/internal/domains/trip/service"
	"summitbooking/shared/constant"
	"summitbooking/shared/failure"
)

func newTripService(t *testing.T) (service.Trip, int64, int64) {
	t.Helper()

	conn, err := sqlite.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ot := mocks.NewOtel()
	ctx := context.Background()

	busTypes := busRepo.NewBusType(conn, ot)
	buses := busRepo.New(conn, ot)
	routes := routeRepo.New(conn, ot)

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

	svc := service.New(tripRepo.New(conn, ot), buses, routes, &config.Config{}, ot)

	return svc, busID, routeID
}

func validRequest(busID, routeID int64) dto.CreateTripRequest {
	return dto.CreateTripRequest{
		BusID:          busID,
		RouteID:        routeID,
		TripDate:       "2026-08-31",
		DepartureTime:  "08:00",
		ArrivalTime:    "13:00",
		AvailableSeats: 45,
	}
}

func TestCreate(t *testing.T) {
	svc, busID, routeID := newTripService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, validRequest(busID, routeID))
	require.NoError(t, err)

	// New trips open as scheduled with the route and bus columns resolved.
	assert.Equal(t, constant.TripStatusScheduled, res.Status)
	assert.Equal(t, "Kampala", res.Origin)
	assert.Equal(t, "Mbarara", res.Destination)
	assert.Equal(t, "UAH 123A", res.RegistrationNumber)
	assert.InDelta(t, 45000.0, res.BaseFare, 0.001)
}

func TestCreate_UnknownBusOrRoute(t *testing.T) {
	svc, busID, routeID := newTripService(t)
	ctx := context.Background()

	req := validRequest(9999, routeID)

	_, err := svc.Create(ctx, req)
	require.Error(t, err)
	assert.True(t, failure.IsBadRequest(err))

	req = validRequest(busID, 9999)

	_, err = svc.Create(ctx, req)
	require.Error(t, err)
	assert.True(t, failure.IsBadRequest(err))
}

func TestGetScheduled(t *testing.T) {
	svc, busID, routeID := newTripService(t)
	ctx := context.Background()

	later, err := svc.Create(ctx, validRequest(busID, routeID))
	require.NoError(t, err)

	req := validRequest(busID, routeID)
	req.TripDate = "2026-08-30"

	sooner, err := svc.Create(ctx, req)
	require.NoError(t, err)

	cancelled, err := svc.Create(ctx, validRequest(busID, routeID))
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, dto.UpdateTripStatusRequest{Status: constant.TripStatusCancelled}, cancelled.ID)
	require.NoError(t, err)

	scheduled, err := svc.GetScheduled(ctx)
	require.NoError(t, err)
	require.Len(t, scheduled, 2)

	// Soonest departure first, cancelled trips excluded.
	assert.Equal(t, sooner.ID, scheduled[0].ID)
	assert.Equal(t, later.ID, scheduled[1].ID)
}

func TestUpdateStatus(t *testing.T) {
	svc, busID, routeID := newTripService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest(busID, routeID))
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, dto.UpdateTripStatusRequest{Status: constant.TripStatusInTransit}, created.ID)
	require.NoError(t, err)

	updated, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.TripStatusInTransit, updated.Status)

	t.Run("unknown trip", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, dto.UpdateTripStatusRequest{Status: constant.TripStatusCompleted}, 9999)
		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("invalid status", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, dto.UpdateTripStatusRequest{Status: "Parked"}, created.ID)
		require.Error(t, err)
		assert.True(t, failure.IsBadRequest(err))
	})
}
