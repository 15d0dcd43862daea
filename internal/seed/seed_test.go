package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summitbooking/infras/otel/mocks"
	"summitbooking/infras/sqlite"
	busRepo "summitbooking/internal/domains/bus/repository"
	routeRepo "summitbooking/internal/domains/route/repository"
	tripRepo "summitbooking/internal/domains/trip/repository"
	userModel "summitbooking/internal/domains/user/model"
	userRepo "summitbooking/internal/domains/user/repository"
	"summitbooking/internal/seed"
	"summitbooking/shared"
	"summitbooking/shared/constant"
	"summitbooking/shared/password"
)

func TestRun(t *testing.T) {
	conn, err := sqlite.NewMemory()
	require.NoError(t, err)
	defer conn.Close()

	ot := mocks.NewOtel()
	ctx := context.Background()

	users := userRepo.New(conn, ot)
	seeder := seed.New(
		users,
		busRepo.New(conn, ot),
		busRepo.NewBusType(conn, ot),
		routeRepo.New(conn, ot),
		tripRepo.New(conn, ot),
	)

	require.NoError(t, seeder.Run(ctx))

	counts := map[string]int{
		"users":     2,
		"bus_types": 3,
		"buses":     4,
		"routes":    5,
		"trips":     5,
	}

	for table, want := range counts {
		var got int
		require.NoError(t, conn.Read.Get(&got, "SELECT COUNT(*) FROM "+table))
		assert.Equal(t, want, got, "table %s", table)
	}

	// Sample accounts can actually log in.
	clerk, err := users.Get(ctx, shared.FilterByField(userModel.FieldEmail, userModel.TableName, "clerk@summitcoaches.com"))
	require.NoError(t, err)
	assert.Equal(t, constant.RoleClerk, clerk.Role)
	assert.NoError(t, password.Verify("clerk123", clerk.Password))

	admin, err := users.Get(ctx, shared.FilterByField(userModel.FieldEmail, userModel.TableName, "admin@summitcoaches.com"))
	require.NoError(t, err)
	assert.Equal(t, constant.RoleAdmin, admin.Role)
	assert.NoError(t, password.Verify("admin123", admin.Password))

	// Every trip departs with seats matching its bus capacity or fewer.
	var overbooked int
	require.NoError(t, conn.Read.Get(&overbooked,
		"SELECT COUNT(*) FROM trips t JOIN buses b ON b.id = t.bus_id JOIN bus_types bt ON bt.id = b.bus_type_id WHERE t.available_seats > bt.capacity"))
	assert.Zero(t, overbooked)
}

func TestRun_Idempotent(t *testing.T) {
	conn, err := sqlite.NewMemory()
	require.NoError(t, err)
	defer conn.Close()

	ot := mocks.NewOtel()
	ctx := context.Background()

	seeder := seed.New(
		userRepo.New(conn, ot),
		busRepo.New(conn, ot),
		busRepo.NewBusType(conn, ot),
		routeRepo.New(conn, ot),
		tripRepo.New(conn, ot),
	)

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	var count int
	require.NoError(t, conn.Read.Get(&count, "SELECT COUNT(*) FROM users"))
	assert.Equal(t, 2, count)
}
