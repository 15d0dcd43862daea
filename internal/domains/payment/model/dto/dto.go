package dto

import "summitbooking/internal/domains/payment/model"

type PaymentResponse struct {
	ID             int64   `json:"id"`
	BookingID      int64   `json:"booking_id"`
	Amount         float64 `json:"amount"`
	PaymentMethod  string  `json:"payment_method"`
	TransactionRef string  `json:"transaction_ref"`
	Status         string  `json:"status"`
	PaymentDate    string  `json:"payment_date"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.PaymentMethod = model.PaymentMethod
	r.TransactionRef = model.TransactionRef
	r.Status = model.Status
	r.PaymentDate = model.PaymentDate
}
