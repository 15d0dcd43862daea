package service

import (
	"context"
	"fmt"
	"summitbooking/config"
	"summitbooking/infras/otel"
	"summitbooking/infras/sqlite"
	"summitbooking/internal/domains/bus/model"
	"summitbooking/internal/domains/bus/model/dto"
	"summitbooking/internal/domains/bus/repository"
	"summitbooking/shared"
	"summitbooking/shared/constant"
	gDto "summitbooking/shared/dto"
	"summitbooking/shared/failure"
	"summitbooking/shared/validator"

	"github.com/rs/zerolog/log"
)

type Bus interface {
	Create(ctx context.Context, req dto.CreateBusRequest) (dto.BusResponse, error)
	Get(ctx context.Context, id int64) (dto.BusResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBusesResponse, error)
	GetTypes(ctx context.Context) ([]dto.BusTypeResponse, error)
}

type serviceImpl struct {
	repo     repository.Bus
	typeRepo repository.BusType
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Bus, typeRepo repository.BusType, cfg *config.Config, otel otel.Otel) Bus {
	return &serviceImpl{
		repo:     repo,
		typeRepo: typeRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBusRequest) (res dto.BusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	typeExists, err := s.typeRepo.Exist(ctx, shared.FilterByID(req.BusTypeID, model.BusTypeFieldID, model.BusTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if bus type exists")

		return res, fmt.Errorf("failed to check if bus type exists: %w", err)
	}

	if !typeExists {
		return res, failure.BadRequestFromString("bus type does not exist") // nolint:wrapcheck
	}

	bus := req.ToModel()

	id, err := s.repo.Insert(ctx, bus)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return res, failure.Conflict("registration number already in use") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create bus")

		return res, fmt.Errorf("failed to create bus: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	bus, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bus")

		return res, fmt.Errorf("failed to get bus: %w", err)
	}

	if bus.ID == 0 {
		return res, failure.NotFound("bus not found") // nolint:wrapcheck
	}

	res.FromModel(bus)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBusesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count buses")

		return res, fmt.Errorf("failed to count buses: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get buses")

		return res, fmt.Errorf("failed to get buses: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetTypes(ctx context.Context) (res []dto.BusTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.BusTypeFieldID, SortDir: "ASC"}

	types, err := s.typeRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bus types")

		return res, fmt.Errorf("failed to get bus types: %w", err)
	}

	res = make([]dto.BusTypeResponse, len(types))
	for i, mod := range types {
		res[i].FromModel(mod)
	}

	return res, nil
}
