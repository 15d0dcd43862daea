package service

import (
	"context"
	"fmt"
	"summitbooking/config"
	"summitbooking/infras/otel"
	busModel "summitbooking/internal/domains/bus/model"
	busRepo "summitbooking/internal/domains/bus/repository"
	routeModel "summitbooking/internal/domains/route/model"
	routeRepo "summitbooking/internal/domains/route/repository"
	"summitbooking/internal/domains/trip/model"
	"summitbooking/internal/domains/trip/model/dto"
	"summitbooking/internal/domains/trip/repository"
	"summitbooking/shared"
	"summitbooking/shared/constant"
	gDto "summitbooking/shared/dto"
	"summitbooking/shared/failure"
	"summitbooking/shared/validator"

	"github.com/rs/zerolog/log"
)

type Trip interface {
	Create(ctx context.Context, req dto.CreateTripRequest) (dto.TripResponse, error)
	Get(ctx context.Context, id int64) (dto.TripResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTripsResponse, error)
	GetScheduled(ctx context.Context) ([]dto.TripResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateTripStatusRequest, id int64) error
}

type serviceImpl struct {
	repo      repository.Trip
	busRepo   busRepo.Bus
	routeRepo routeRepo.Route
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Trip, busRepo busRepo.Bus, routeRepo routeRepo.Route, cfg *config.Config, otel otel.Otel) Trip {
	return &serviceImpl{
		repo:      repo,
		busRepo:   busRepo,
		routeRepo: routeRepo,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTripRequest) (res dto.TripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	busExists, err := s.busRepo.Exist(ctx, shared.FilterByID(req.BusID, busModel.FieldID, busModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if bus exists")

		return res, fmt.Errorf("failed to check if bus exists: %w", err)
	}

	if !busExists {
		return res, failure.BadRequestFromString("bus does not exist") // nolint:wrapcheck
	}

	routeExists, err := s.routeRepo.Exist(ctx, shared.FilterByID(req.RouteID, routeModel.FieldID, routeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if route exists")

		return res, fmt.Errorf("failed to check if route exists: %w", err)
	}

	if !routeExists {
		return res, failure.BadRequestFromString("route does not exist") // nolint:wrapcheck
	}

	trip := req.ToModel()
	trip.Status = constant.TripStatusScheduled

	id, err := s.repo.Insert(ctx, trip)
	if err != nil {
		log.Error().Err(err).Msg("failed to create trip")

		return res, fmt.Errorf("failed to create trip: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	trip, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip")

		return res, fmt.Errorf("failed to get trip: %w", err)
	}

	if trip.ID == 0 {
		return res, failure.NotFound("trip not found") // nolint:wrapcheck
	}

	res.FromModel(trip)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTripsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count trips")

		return res, fmt.Errorf("failed to count trips: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trips")

		return res, fmt.Errorf("failed to get trips: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// GetScheduled lists trips still open for booking, soonest first.
func (s *serviceImpl) GetScheduled(ctx context.Context) (res []dto.TripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetScheduled")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByField(model.FieldStatus, model.TableName, constant.TripStatusScheduled)
	params := gDto.QueryParams{
		SortBy:  "trips.trip_date ASC, trips.departure_time",
		SortDir: "ASC",
	}

	trips, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get scheduled trips")

		return res, fmt.Errorf("failed to get scheduled trips: %w", err)
	}

	res = make([]dto.TripResponse, len(trips))
	for i, mod := range trips {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateTripStatusRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if trip exists")

		return fmt.Errorf("failed to check if trip exists: %w", err)
	}

	if !exist {
		return failure.NotFound("trip not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update trip status")

		return fmt.Errorf("failed to update trip status: %w", err)
	}

	return nil
}
