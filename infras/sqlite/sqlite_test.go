package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summitbooking/infras/sqlite"
)

func TestNewMemory_SchemaApplied(t *testing.T) {
	conn, err := sqlite.NewMemory()
	require.NoError(t, err)
	defer conn.Close()

	var count int
	err = conn.Read.Get(&count,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'bus_types', 'buses', 'routes', 'trips', 'bookings', 'payments')")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestWithTx_Commit(t *testing.T) {
	conn, err := sqlite.NewMemory()
	require.NoError(t, err)
	defer conn.Close()

	err = conn.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO routes (origin, destination, distance, base_fare, luggage_fare, parcel_fare) VALUES ('Kampala', 'Jinja', 80, 15000, 5000, 8000)")

		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.Read.Get(&count, "SELECT COUNT(*) FROM routes"))
	assert.Equal(t, 1, count)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	conn, err := sqlite.NewMemory()
	require.NoError(t, err)
	defer conn.Close()

	sentinel := errors.New("boom")

	err = conn.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO routes (origin, destination, distance, base_fare, luggage_fare, parcel_fare) VALUES ('Kampala', 'Jinja', 80, 15000, 5000, 8000)")
		require.NoError(t, err)

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	var count int
	require.NoError(t, conn.Read.Get(&count, "SELECT COUNT(*) FROM routes"))
	assert.Zero(t, count)
}

func TestIsUniqueViolation(t *testing.T) {
	conn, err := sqlite.NewMemory()
	require.NoError(t, err)
	defer conn.Close()

	insert := "INSERT INTO users (full_name, email, phone, password, role) VALUES ('John Doe', 'clerk@summitcoaches.com', '0700000001', 'hash', 'Clerk')"

	_, err = conn.Write.Exec(insert)
	require.NoError(t, err)

	_, err = conn.Write.Exec(insert)
	require.Error(t, err)
	assert.True(t, sqlite.IsUniqueViolation(err))

	assert.False(t, sqlite.IsUniqueViolation(nil))
	assert.False(t, sqlite.IsUniqueViolation(errors.New("other")))
}
