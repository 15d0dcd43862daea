package model

import "summitbooking/shared/fare"

const (
	TableName  = "routes"
	EntityName = "route"

	FieldID          = "id"
	FieldOrigin      = "origin"
	FieldDestination = "destination"
	FieldDistance    = "distance"
	FieldBaseFare    = "base_fare"
	FieldLuggageFare = "luggage_fare"
	FieldParcelFare  = "parcel_fare"
)

type Route struct {
	ID          int64   `db:"id"`
	Origin      string  `db:"origin"`
	Destination string  `db:"destination"`
	Distance    float64 `db:"distance"`
	BaseFare    float64 `db:"base_fare"`
	LuggageFare float64 `db:"luggage_fare"`
	ParcelFare  float64 `db:"parcel_fare"`
}

func (r Route) FareTable() fare.Table {
	return fare.Table{
		Base:    r.BaseFare,
		Luggage: r.LuggageFare,
		Parcel:  r.ParcelFare,
	}
}
