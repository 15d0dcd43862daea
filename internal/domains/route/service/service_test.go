package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summitbooking/config"
	"summitbooking/infras/otel/mocks"
	"summitbooking/infras/sqlite"
	"summitbooking/internal/domains/route/model/dto"
	"summitbooking/internal/domains/route/repository"
	"summitbooking/internal/domains/route/service"
	"summitbooking/shared/failure"
)

func newRouteService(t *testing.T) service.Route {
	t.Helper()

	conn, err := sqlite.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ot := mocks.NewOtel()

	return service.New(repository.New(conn, ot), &config.Config{}, ot)
}

func kampalaMbarara() dto.CreateRouteRequest {
	return dto.CreateRouteRequest{
		Origin:      "Kampala",
		Destination: "Mbarara",
		Distance:    270.0,
		BaseFare:    45000.0,
		LuggageFare: 15000.0,
		ParcelFare:  20000.0,
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := newRouteService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, kampalaMbarara())
	require.NoError(t, err)
	require.Positive(t, created.ID)

	found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kampala", found.Origin)
	assert.Equal(t, "Mbarara", found.Destination)
	assert.InDelta(t, 45000.0, found.BaseFare, 0.001)
	assert.InDelta(t, 15000.0, found.LuggageFare, 0.001)

	_, err = svc.Get(ctx, 9999)
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
}

func TestCreate_MissingOrigin(t *testing.T) {
	svc := newRouteService(t)

	req := kampalaMbarara()
	req.Origin = ""

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, failure.IsBadRequest(err))
}

func TestUpdate(t *testing.T) {
	svc := newRouteService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, kampalaMbarara())
	require.NoError(t, err)

	err = svc.Update(ctx, dto.UpdateRouteRequest{BaseFare: 50000.0}, created.ID)
	require.NoError(t, err)

	updated, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50000.0, updated.BaseFare, 0.001)

	// Fields left at zero stay untouched.
	assert.InDelta(t, 15000.0, updated.LuggageFare, 0.001)

	t.Run("empty update rejected", func(t *testing.T) {
		err := svc.Update(ctx, dto.UpdateRouteRequest{}, created.ID)
		require.Error(t, err)
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("unknown route", func(t *testing.T) {
		err := svc.Update(ctx, dto.UpdateRouteRequest{BaseFare: 40000.0}, 9999)
		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestDelete(t *testing.T) {
	svc := newRouteService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, kampalaMbarara())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))

	err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
}
