package model

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldBookingReference = "booking_reference"
	FieldTripID           = "trip_id"
	FieldClerkID          = "clerk_id"
	FieldPassengerName    = "passenger_name"
	FieldPhoneNumber      = "phone_number"
	FieldIDNumber         = "id_number"
	FieldBookingType      = "booking_type"
	FieldSeatNumber       = "seat_number"
	FieldAmount           = "amount"
	FieldWeight           = "weight"
	FieldDescription      = "description"
	FieldStatus           = "status"
	FieldBookingDate      = "booking_date"
)

type Booking struct {
	ID               int64   `db:"id"`
	BookingReference string  `db:"booking_reference"`
	TripID           int64   `db:"trip_id"`
	ClerkID          int64   `db:"clerk_id"`
	PassengerName    string  `db:"passenger_name"`
	PhoneNumber      string  `db:"phone_number"`
	IDNumber         string  `db:"id_number"`
	BookingType      string  `db:"booking_type"`
	SeatNumber       string  `db:"seat_number"`
	Amount           float64 `db:"amount"`
	Weight           float64 `db:"weight"`
	Description      string  `db:"description"`
	Status           string  `db:"status"`
	BookingDate      string  `db:"booking_date"`

	TripDate      string `db:"trip_date"      table:"trips"`
	DepartureTime string `db:"departure_time" table:"trips"`
	Origin        string `db:"origin"         table:"routes"`
	Destination   string `db:"destination"    table:"routes"`
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN trips ON trips.id = bookings.trip_id LEFT JOIN routes ON routes.id = trips.route_id"
}
