package model

const (
	TableName  = "trips"
	EntityName = "trip"

	FieldID             = "id"
	FieldBusID          = "bus_id"
	FieldRouteID        = "route_id"
	FieldTripDate       = "trip_date"
	FieldDepartureTime  = "departure_time"
	FieldArrivalTime    = "arrival_time"
	FieldAvailableSeats = "available_seats"
	FieldStatus         = "status"
)

// Trip carries the route and bus columns the clerk screens display alongside
// the trip itself.
type Trip struct {
	ID             int64  `db:"id"`
	BusID          int64  `db:"bus_id"`
	RouteID        int64  `db:"route_id"`
	TripDate       string `db:"trip_date"`
	DepartureTime  string `db:"departure_time"`
	ArrivalTime    string `db:"arrival_time"`
	AvailableSeats int    `db:"available_seats"`
	Status         string `db:"status"`

	Origin             string  `db:"origin"              table:"routes"`
	Destination        string  `db:"destination"         table:"routes"`
	BaseFare           float64 `db:"base_fare"           table:"routes"`
	LuggageFare        float64 `db:"luggage_fare"        table:"routes"`
	ParcelFare         float64 `db:"parcel_fare"         table:"routes"`
	RegistrationNumber string  `db:"registration_number" table:"buses"`
}

func (Trip) GetJoinQuery() string {
	return "LEFT JOIN routes ON routes.id = trips.route_id LEFT JOIN buses ON buses.id = trips.bus_id"
}
