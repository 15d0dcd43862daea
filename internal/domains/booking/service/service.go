package service

import (
	"context"
	"fmt"
	"strconv"
	"summitbooking/config"
	"summitbooking/infras/otel"
	"summitbooking/infras/sqlite"
	"summitbooking/internal/domains/booking/model"
	"summitbooking/internal/domains/booking/model/dto"
	"summitbooking/internal/domains/booking/repository"
	paymentModel "summitbooking/internal/domains/payment/model"
	paymentRepo "summitbooking/internal/domains/payment/repository"
	tripModel "summitbooking/internal/domains/trip/model"
	tripRepo "summitbooking/internal/domains/trip/repository"
	"summitbooking/shared"
	"summitbooking/shared/constant"
	gDto "summitbooking/shared/dto"
	"summitbooking/shared/failure"
	"summitbooking/shared/fare"
	"summitbooking/shared/timezone"
	"summitbooking/shared/validator"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResult, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	GetByReference(ctx context.Context, reference string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	History(ctx context.Context, clerkID int64, req gDto.QueryParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	tripRepo    tripRepo.Trip
	paymentRepo paymentRepo.Payment
	db          *sqlite.Connection
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Booking, tripRepo tripRepo.Trip, paymentRepo paymentRepo.Payment, db *sqlite.Connection, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:        repo,
		tripRepo:    tripRepo,
		paymentRepo: paymentRepo,
		db:          db,
		cfg:         cfg,
		otel:        otel,
	}
}

// Create books one ticket: it validates the request, prices it from the
// trip's route, then writes the booking, its payment, and the seat decrement
// in a single transaction. Any failed step rolls the whole booking back.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	opID := uuid.NewString()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if err = validateBookingType(req); err != nil {
		return res, err
	}

	trip, err := s.tripRepo.Get(ctx, shared.FilterByID(req.TripID, tripModel.FieldID, tripModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("operation_id", opID).Msg("failed to get trip")

		return res, fmt.Errorf("failed to get trip: %w", err)
	}

	if trip.ID == 0 {
		return res, failure.NotFound("trip not found") // nolint:wrapcheck
	}

	if trip.Status != constant.TripStatusScheduled {
		return res, failure.Conflict("trip is not open for booking") // nolint:wrapcheck
	}

	if trip.AvailableSeats <= 0 {
		return res, failure.Conflict("no seats available on this trip") // nolint:wrapcheck
	}

	amount := fare.Amount(fare.Table{
		Base:    trip.BaseFare,
		Luggage: trip.LuggageFare,
		Parcel:  trip.ParcelFare,
	}, req.BookingType)

	now := timezone.Now()

	booking := model.Booking{
		BookingReference: constant.BookingReferencePrefix + strconv.FormatInt(now.UnixMilli(), 10),
		TripID:           req.TripID,
		ClerkID:          req.ClerkID,
		PassengerName:    req.PassengerName,
		PhoneNumber:      req.PhoneNumber,
		IDNumber:         req.IDNumber,
		BookingType:      req.BookingType,
		SeatNumber:       req.SeatNumber,
		Amount:           amount,
		Weight:           shared.ParseWeight(req.Weight),
		Description:      req.Description,
		Status:           constant.BookingStatusConfirmed,
		BookingDate:      now.Format(constant.DateFormat),
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = constant.PaymentMethodCash
	}

	payment := paymentModel.Payment{
		Amount:         amount,
		PaymentMethod:  paymentMethod,
		TransactionRef: constant.TransactionReferencePrefix + strconv.FormatInt(now.UnixMilli(), 10),
		Status:         constant.PaymentStatusCompleted,
		PaymentDate:    now.Format(constant.DateTimeFormat),
	}

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		bookingID, err := s.repo.InsertTx(ctx, tx, booking)
		if err != nil {
			if sqlite.IsUniqueViolation(err) {
				return failure.Conflict("booking reference already exists") // nolint:wrapcheck
			}

			log.Error().Err(err).Str("operation_id", opID).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		booking.ID = bookingID
		payment.BookingID = bookingID

		paymentID, err := s.paymentRepo.InsertTx(ctx, tx, payment)
		if err != nil {
			if sqlite.IsUniqueViolation(err) {
				return failure.Conflict("transaction reference already exists") // nolint:wrapcheck
			}

			log.Error().Err(err).Str("operation_id", opID).Msg("failed to create payment")

			return fmt.Errorf("failed to create payment: %w", err)
		}

		payment.ID = paymentID

		decremented, err := s.tripRepo.DecrementSeatsTx(ctx, tx, req.TripID)
		if err != nil {
			log.Error().Err(err).Str("operation_id", opID).Msg("failed to decrement seats")

			return fmt.Errorf("failed to decrement seats: %w", err)
		}

		if !decremented {
			return failure.Conflict("no seats available on this trip") // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().
		Str("operation_id", opID).
		Str("booking_reference", booking.BookingReference).
		Int64("trip_id", req.TripID).
		Int64("clerk_id", req.ClerkID).
		Msg("booking created")

	persisted, err := s.repo.Get(ctx, shared.FilterByID(booking.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("operation_id", opID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res.Booking.FromModel(persisted)
	res.Payment.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetByReference(ctx context.Context, reference string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReference")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByField(model.FieldBookingReference, model.TableName, reference)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// History lists the clerk's own bookings, most recent first.
func (s *serviceImpl) History(ctx context.Context, clerkID int64, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByField(model.FieldClerkID, model.TableName, clerkID)

	if req.SortBy == "" {
		req.SortBy = model.TableName + "." + model.FieldBookingDate + " DESC, " + model.TableName + "." + model.FieldID
		req.SortDir = "DESC"
	}

	return s.GetAll(ctx, req, filter)
}

func validateBookingType(req dto.CreateBookingRequest) error {
	switch req.BookingType {
	case constant.BookingTypePassenger:
		if !validator.IsNotEmpty(req.SeatNumber) {
			return failure.BadRequestFromString("seat number is required for passenger bookings") // nolint:wrapcheck
		}
	case constant.BookingTypeParcel:
		if !validator.IsNotEmpty(req.Description) {
			return failure.BadRequestFromString("description is required for parcel bookings") // nolint:wrapcheck
		}
	}

	return nil
}
