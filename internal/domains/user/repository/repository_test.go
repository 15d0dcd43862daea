package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summitbooking/infras/otel/mocks"
	"summitbooking/infras/sqlite"
	"summitbooking/internal/domains/user/model"
	"summitbooking/internal/domains/user/repository"
	"summitbooking/shared"
	"summitbooking/shared/constant"
	gDto "summitbooking/shared/dto"
)

func newRepo(t *testing.T) repository.User {
	t.Helper()

	conn, err := sqlite.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return repository.New(conn, mocks.NewOtel())
}

func sampleUser(email string) model.User {
	return model.User{
		FullName:  "John Doe",
		Email:     email,
		Phone:     "0700000001",
		Password:  "hash",
		Role:      constant.RoleClerk,
		CreatedAt: "2026-08-30 08:00:00",
	}
}

func TestInsertAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, sampleUser("clerk@summitcoaches.com"))
	require.NoError(t, err)
	require.Positive(t, id)

	user, err := repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "clerk@summitcoaches.com", user.Email)
	assert.Equal(t, constant.RoleClerk, user.Role)
}

func TestGet_Missing(t *testing.T) {
	repo := newRepo(t)

	user, err := repo.Get(context.Background(), shared.FilterByID(42, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Zero(t, user.ID)
}

func TestInsert_DuplicateEmail(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, sampleUser("clerk@summitcoaches.com"))
	require.NoError(t, err)

	_, err = repo.Insert(ctx, sampleUser("clerk@summitcoaches.com"))
	require.Error(t, err)
	assert.True(t, sqlite.IsUniqueViolation(err))
}

func TestExistAndCount(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	filter := shared.FilterByField(model.FieldEmail, model.TableName, "clerk@summitcoaches.com")

	exists, err := repo.Exist(ctx, filter)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Insert(ctx, sampleUser("clerk@summitcoaches.com"))
	require.NoError(t, err)

	exists, err = repo.Exist(ctx, filter)
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := repo.Count(ctx, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdate(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, sampleUser("clerk@summitcoaches.com"))
	require.NoError(t, err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = repo.Update(ctx, map[string]any{model.FieldFullName: "Johnathan Doe"}, filter)
	require.NoError(t, err)

	user, err := repo.Get(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, "Johnathan Doe", user.FullName)
}

func TestDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, sampleUser("clerk@summitcoaches.com"))
	require.NoError(t, err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	require.NoError(t, repo.Delete(ctx, filter))

	user, err := repo.Get(ctx, filter)
	require.NoError(t, err)
	assert.Zero(t, user.ID)
}

func TestGetAll_Pagination(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for i := range 5 {
		_, err := repo.Insert(ctx, sampleUser(fmt.Sprintf("clerk%d@summitcoaches.com", i)))
		require.NoError(t, err)
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   2,
		SortBy:  model.TableName + "." + model.FieldID,
		SortDir: "ASC",
	}

	page, err := repo.GetAll(ctx, params, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, page, 2)

	params.Page = 3

	last, err := repo.GetAll(ctx, params, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Greater(t, last[0].ID, page[1].ID)
}
