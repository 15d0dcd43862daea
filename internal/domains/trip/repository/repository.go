package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"summitbooking/infras/otel"
	"summitbooking/infras/sqlite"
	"summitbooking/internal/domains/trip/model"
	"summitbooking/shared/constant"
	gDto "summitbooking/shared/dto"
	"summitbooking/shared/logger"
	gRepo "summitbooking/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Trip interface {
	Insert(ctx context.Context, model model.Trip) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Trip, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Trip, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DecrementSeatsTx(ctx context.Context, sqltx *sqlx.Tx, tripID int64) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Trip]
	db   *sqlite.Connection
	otel otel.Otel
}

func New(db *sqlite.Connection, otel otel.Otel) Trip {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Trip](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// DecrementSeatsTx takes one seat off the trip, refusing to go below zero.
// Returns false when no seat was available to take.
func (repo *repositoryImpl) DecrementSeatsTx(ctx context.Context, sqltx *sqlx.Tx, tripID int64) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trip.DecrementSeatsTx")
	defer scope.End()

	query := "UPDATE trips SET available_seats = available_seats - 1 WHERE id = :id AND available_seats > 0"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.NamedExecContext(ctx, query, map[string]any{"id": tripID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to decrement available seats: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows > 0, nil
}
