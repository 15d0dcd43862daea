package model

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID             = "id"
	FieldBookingID      = "booking_id"
	FieldAmount         = "amount"
	FieldPaymentMethod  = "payment_method"
	FieldTransactionRef = "transaction_ref"
	FieldStatus         = "status"
	FieldPaymentDate    = "payment_date"
)

type Payment struct {
	ID             int64   `db:"id"`
	BookingID      int64   `db:"booking_id"`
	Amount         float64 `db:"amount"`
	PaymentMethod  string  `db:"payment_method"`
	TransactionRef string  `db:"transaction_ref"`
	Status         string  `db:"status"`
	PaymentDate    string  `db:"payment_date"`
}
