package repository

import (
	"context"
	"summitbooking/infras/otel"
	"summitbooking/infras/sqlite"
	"summitbooking/internal/domains/bus/model"
	gDto "summitbooking/shared/dto"
	gRepo "summitbooking/shared/repository"
)

type BusType interface {
	Insert(ctx context.Context, model model.BusType) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BusType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BusType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type busTypeRepositoryImpl struct {
	gRepo.Repository[model.BusType]
	db   *sqlite.Connection
	otel otel.Otel
}

func NewBusType(db *sqlite.Connection, otel otel.Otel) BusType {
	return &busTypeRepositoryImpl{
		Repository: gRepo.NewRepository[model.BusType](model.BusTypeEntityName, model.BusTypeTableName, model.BusTypeFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
