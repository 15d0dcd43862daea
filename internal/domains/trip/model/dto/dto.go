package dto

import (
	"summitbooking/internal/domains/trip/model"
	"summitbooking/shared"
)

type CreateTripRequest struct {
	BusID          int64  `json:"bus_id"          validate:"required"`
	RouteID        int64  `json:"route_id"        validate:"required"`
	TripDate       string `json:"trip_date"       validate:"required"`
	DepartureTime  string `json:"departure_time"  validate:"required"`
	ArrivalTime    string `json:"arrival_time"    validate:"required"`
	AvailableSeats int    `json:"available_seats" validate:"required,gte=0"`
}

func (c *CreateTripRequest) ToModel() model.Trip {
	return model.Trip{
		BusID:          c.BusID,
		RouteID:        c.RouteID,
		TripDate:       c.TripDate,
		DepartureTime:  c.DepartureTime,
		ArrivalTime:    c.ArrivalTime,
		AvailableSeats: c.AvailableSeats,
	}
}

type TripResponse struct {
	ID                 int64   `json:"id"`
	BusID              int64   `json:"bus_id"`
	RouteID            int64   `json:"route_id"`
	TripDate           string  `json:"trip_date"`
	DepartureTime      string  `json:"departure_time"`
	ArrivalTime        string  `json:"arrival_time"`
	AvailableSeats     int     `json:"available_seats"`
	Status             string  `json:"status"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	BaseFare           float64 `json:"base_fare"`
	LuggageFare        float64 `json:"luggage_fare"`
	ParcelFare         float64 `json:"parcel_fare"`
	RegistrationNumber string  `json:"registration_number"`
}

func (r *TripResponse) FromModel(model model.Trip) {
	r.ID = model.ID
	r.BusID = model.BusID
	r.RouteID = model.RouteID
	r.TripDate = model.TripDate
	r.DepartureTime = model.DepartureTime
	r.ArrivalTime = model.ArrivalTime
	r.AvailableSeats = model.AvailableSeats
	r.Status = model.Status
	r.Origin = model.Origin
	r.Destination = model.Destination
	r.BaseFare = model.BaseFare
	r.LuggageFare = model.LuggageFare
	r.ParcelFare = model.ParcelFare
	r.RegistrationNumber = model.RegistrationNumber
}

type GetTripsResponse struct {
	Trips     []TripResponse `json:"trips"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTripsResponse) FromModels(models []model.Trip, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Trips = make([]TripResponse, len(models))
	for i, mod := range models {
		r.Trips[i].FromModel(mod)
	}
}

type UpdateTripStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=Scheduled 'In Transit' Completed Cancelled"`
}
