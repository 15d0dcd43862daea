package service

import (
	"context"
	"fmt"
	"summitbooking/config"
	"summitbooking/infras/otel"
	"summitbooking/internal/domains/route/model"
	"summitbooking/internal/domains/route/model/dto"
	"summitbooking/internal/domains/route/repository"
	"summitbooking/shared"
	"summitbooking/shared/constant"
	gDto "summitbooking/shared/dto"
	"summitbooking/shared/failure"
	"summitbooking/shared/validator"

	"github.com/rs/zerolog/log"
)

type Route interface {
	Create(ctx context.Context, req dto.CreateRouteRequest) (dto.RouteResponse, error)
	Get(ctx context.Context, id int64) (dto.RouteResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoutesResponse, error)
	Update(ctx context.Context, req dto.UpdateRouteRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Route
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Route, cfg *config.Config, otel otel.Otel) Route {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRouteRequest) (res dto.RouteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	route := req.ToModel()

	id, err := s.repo.Insert(ctx, route)
	if err != nil {
		log.Error().Err(err).Msg("failed to create route")

		return res, fmt.Errorf("failed to create route: %w", err)
	}

	route.ID = id
	res.FromModel(route)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RouteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	route, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get route")

		return res, fmt.Errorf("failed to get route: %w", err)
	}

	if route.ID == 0 {
		return res, failure.NotFound("route not found") // nolint:wrapcheck
	}

	res.FromModel(route)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoutesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count routes")

		return res, fmt.Errorf("failed to count routes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get routes")

		return res, fmt.Errorf("failed to get routes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRouteRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRouteRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if route exists")

		return fmt.Errorf("failed to check if route exists: %w", err)
	}

	if !exist {
		return failure.NotFound("route not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update route")

		return fmt.Errorf("failed to update route: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if route exists")

		return fmt.Errorf("failed to check if route exists: %w", err)
	}

	if !exist {
		return failure.NotFound("route not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete route")

		return fmt.Errorf("failed to delete route: %w", err)
	}

	return nil
}
