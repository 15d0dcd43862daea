package dto

import (
	"summitbooking/internal/domains/route/model"
	"summitbooking/shared"
)

type CreateRouteRequest struct {
	Origin      string  `json:"origin"       validate:"required"`
	Destination string  `json:"destination"  validate:"required"`
	Distance    float64 `json:"distance"     validate:"required,gte=0"`
	BaseFare    float64 `json:"base_fare"    validate:"required,gte=0"`
	LuggageFare float64 `json:"luggage_fare" validate:"gte=0"`
	ParcelFare  float64 `json:"parcel_fare"  validate:"gte=0"`
}

func (c *CreateRouteRequest) ToModel() model.Route {
	return model.Route{
		Origin:      c.Origin,
		Destination: c.Destination,
		Distance:    c.Distance,
		BaseFare:    c.BaseFare,
		LuggageFare: c.LuggageFare,
		ParcelFare:  c.ParcelFare,
	}
}

type UpdateRouteRequest struct {
	Distance    float64 `db:"distance"     json:"distance"     validate:"omitempty,gte=0"`
	BaseFare    float64 `db:"base_fare"    json:"base_fare"    validate:"omitempty,gte=0"`
	LuggageFare float64 `db:"luggage_fare" json:"luggage_fare" validate:"omitempty,gte=0"`
	ParcelFare  float64 `db:"parcel_fare"  json:"parcel_fare"  validate:"omitempty,gte=0"`
}

type RouteResponse struct {
	ID          int64   `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Distance    float64 `json:"distance"`
	BaseFare    float64 `json:"base_fare"`
	LuggageFare float64 `json:"luggage_fare"`
	ParcelFare  float64 `json:"parcel_fare"`
}

func (r *RouteResponse) FromModel(model model.Route) {
	r.ID = model.ID
	r.Origin = model.Origin
	r.Destination = model.Destination
	r.Distance = model.Distance
	r.BaseFare = model.BaseFare
	r.LuggageFare = model.LuggageFare
	r.ParcelFare = model.ParcelFare
}

type GetRoutesResponse struct {
	Routes    []RouteResponse `json:"routes"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetRoutesResponse) FromModels(models []model.Route, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Routes = make([]RouteResponse, len(models))
	for i, mod := range models {
		r.Routes[i].FromModel(mod)
	}
}
