package dto

import (
	"summitbooking/internal/domains/booking/model"
	paymentDto "summitbooking/internal/domains/payment/model/dto"
	"summitbooking/shared"
)

// CreateBookingRequest carries everything the clerk form captures for one
// ticket. Weight arrives as the raw form text so the permissive parse stays
// in one place.
type CreateBookingRequest struct {
	TripID        int64  `json:"trip_id"        validate:"required"`
	ClerkID       int64  `json:"clerk_id"       validate:"required"`
	PassengerName string `json:"passenger_name" validate:"required"`
	PhoneNumber   string `json:"phone_number"   validate:"required,phone"`
	IDNumber      string `json:"id_number"      validate:"omitempty"`
	BookingType   string `json:"booking_type"   validate:"required,oneof=Passenger Luggage Parcel"`
	SeatNumber    string `json:"seat_number"    validate:"omitempty"`
	Weight        string `json:"weight"         validate:"omitempty"`
	Description   string `json:"description"    validate:"omitempty"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=Cash 'Mobile Money' Card"`
}

type BookingResponse struct {
	ID               int64   `json:"id"`
	BookingReference string  `json:"booking_reference"`
	TripID           int64   `json:"trip_id"`
	ClerkID          int64   `json:"clerk_id"`
	PassengerName    string  `json:"passenger_name"`
	PhoneNumber      string  `json:"phone_number"`
	IDNumber         string  `json:"id_number"`
	BookingType      string  `json:"booking_type"`
	SeatNumber       string  `json:"seat_number"`
	Amount           float64 `json:"amount"`
	Weight           float64 `json:"weight"`
	Description      string  `json:"description"`
	Status           string  `json:"status"`
	BookingDate      string  `json:"booking_date"`
	TripDate         string  `json:"trip_date"`
	DepartureTime    string  `json:"departure_time"`
	Origin           string  `json:"origin"`
	Destination      string  `json:"destination"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingReference = model.BookingReference
	r.TripID = model.TripID
	r.ClerkID = model.ClerkID
	r.PassengerName = model.PassengerName
	r.PhoneNumber = model.PhoneNumber
	r.IDNumber = model.IDNumber
	r.BookingType = model.BookingType
	r.SeatNumber = model.SeatNumber
	r.Amount = model.Amount
	r.Weight = model.Weight
	r.Description = model.Description
	r.Status = model.Status
	r.BookingDate = model.BookingDate
	r.TripDate = model.TripDate
	r.DepartureTime = model.DepartureTime
	r.Origin = model.Origin
	r.Destination = model.Destination
}

// BookingResult is what the clerk sees after a successful booking: the
// persisted booking together with its payment record.
type BookingResult struct {
	Booking BookingResponse            `json:"booking"`
	Payment paymentDto.PaymentResponse `json:"payment"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
