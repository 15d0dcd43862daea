package fare

import (
	"fmt"
	"summitbooking/shared/constant"
)

// Table carries the per route fares for each booking type.
type Table struct {
	Base    float64
	Luggage float64
	Parcel  float64
}

// Amount returns the fare for the booking type, or 0 for an unrecognized
// type.
func Amount(table Table, bookingType string) float64 {
	switch bookingType {
	case constant.BookingTypePassenger:
		return table.Base
	case constant.BookingTypeLuggage:
		return table.Luggage
	case constant.BookingTypeParcel:
		return table.Parcel
	default:
		return 0
	}
}

// Display formats an amount for the UI, e.g. "UGX 45000.00".
func Display(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}
