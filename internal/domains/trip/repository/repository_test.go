package repository_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summitbooking/infras/otel/mocks"
	"summitbooking/infras/sqlite"
	busModel "summitbooking/internal/domains/bus/model"
	busRepo "summitbooking/internal/domains/bus/repository"
	routeModel "summitbooking/internal/domains/route/model"
	routeRepo "summitbooking/internal/domains/route/repository"
	"summitbooking/internal/domains/trip/model"
	"summitbooking/internal/domains/trip/repository"
	"summitbooking/shared"
	"summitbooking/shared/constant"
	gDto "summitbooking/shared/dto"
)

func setup(t *testing.T) (*sqlite.Connection, repository.Trip, int64, int64) {
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
		Destination: "Gulu",
		Distance:    340.0,
		BaseFare:    50000.0,
		LuggageFare: 18000.0,
		ParcelFare:  25000.0,
	})
	require.NoError(t, err)

	return conn, repository.New(conn, ot), busID, routeID
}

func insertTrip(t *testing.T, trips repository.Trip, busID, routeID int64, date, departure string, seats int) int64 {
	t.Helper()

	id, err := trips.Insert(context.Background(), model.Trip{
		BusID:          busID,
		RouteID:        routeID,
		TripDate:       date,
		DepartureTime:  departure,
		ArrivalTime:    "18:00",
		AvailableSeats: seats,
		Status:         constant.TripStatusScheduled,
	})
	require.NoError(t, err)

	return id
}

func TestGet_JoinColumns(t *testing.T) {
	_, trips, busID, routeID := setup(t)

	id := insertTrip(t, trips, busID, routeID, "2026-08-31", "08:00", 45)

	trip, err := trips.Get(context.Background(), shared.FilterByID(id, model.FieldID, model.TableName))
	require.NoError(t, err)

	assert.Equal(t, "Kampala", trip.Origin)
	assert.Equal(t, "Gulu", trip.Destination)
	assert.Equal(t, "UAH 123A", trip.RegistrationNumber)
	assert.InDelta(t, 50000.0, trip.BaseFare, 0.001)
	assert.InDelta(t, 18000.0, trip.LuggageFare, 0.001)
	assert.InDelta(t, 25000.0, trip.ParcelFare, 0.001)
}

func TestGetAll_DepartureOrdering(t *testing.T) {
	_, trips, busID, routeID := setup(t)

	late := insertTrip(t, trips, busID, routeID, "2026-09-01", "14:00", 45)
	early := insertTrip(t, trips, busID, routeID, "2026-08-31", "08:00", 45)
	mid := insertTrip(t, trips, busID, routeID, "2026-09-01", "08:00", 45)

	params := gDto.QueryParams{
		SortBy:  "trips.trip_date ASC, trips.departure_time",
		SortDir: "ASC",
	}

	result, err := trips.GetAll(context.Background(), params, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, early, result[0].ID)
	assert.Equal(t, mid, result[1].ID)
	assert.Equal(t, late, result[2].ID)
}

func TestDecrementSeatsTx_Floor(t *testing.T) {
	conn, trips, busID, routeID := setup(t)
	ctx := context.Background()

	id := insertTrip(t, trips, busID, routeID, "2026-08-31", "08:00", 1)

	err := conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		decremented, err := trips.DecrementSeatsTx(ctx, tx, id)
		require.NoError(t, err)
		assert.True(t, decremented)

		return nil
	})
	require.NoError(t, err)

	// The last seat is gone, nothing more can be taken.
	err = conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		decremented, err := trips.DecrementSeatsTx(ctx, tx, id)
		require.NoError(t, err)
		assert.False(t, decremented)

		return nil
	})
	require.NoError(t, err)

	trip, err := trips.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Zero(t, trip.AvailableSeats)
}
