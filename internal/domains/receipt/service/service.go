package service

import (
	"bytes"
	"context"
	"fmt"
	"summitbooking/config"
	"summitbooking/infras/otel"
	bookingDto "summitbooking/internal/domains/booking/model/dto"
	bookingSvc "summitbooking/internal/domains/booking/service"
	paymentModel "summitbooking/internal/domains/payment/model"
	paymentRepo "summitbooking/internal/domains/payment/repository"
	"summitbooking/shared"
	"summitbooking/shared/constant"
	"summitbooking/shared/failure"
	"summitbooking/shared/fare"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog/log"
)

// Receipt renders the printed slip the clerk hands over with the ticket.
type Receipt interface {
	Generate(ctx context.Context, bookingID int64) ([]byte, string, error)
}

type serviceImpl struct {
	bookingSvc  bookingSvc.Booking
	paymentRepo paymentRepo.Payment
	cfg         *config.Config
	otel        otel.Otel
}

func New(bookingSvc bookingSvc.Booking, paymentRepo paymentRepo.Payment, cfg *config.Config, otel otel.Otel) Receipt {
	return &serviceImpl{
		bookingSvc:  bookingSvc,
		paymentRepo: paymentRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Generate(ctx context.Context, bookingID int64) (res []byte, filename string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingSvc.Get(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}

	paymentFilter := shared.FilterByField(paymentModel.FieldBookingID, paymentModel.TableName, bookingID)

	payment, err := s.paymentRepo.Get(ctx, paymentFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return nil, "", fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == 0 {
		return nil, "", failure.NotFound("payment not found") // nolint:wrapcheck
	}

	res, err = buildReceiptPDF(booking, payment, s.cfg.App.Currency)
	if err != nil {
		log.Error().Err(err).Msg("failed to build receipt")

		return nil, "", fmt.Errorf("failed to build receipt: %w", err)
	}

	filename = fmt.Sprintf("RECEIPT_%s.pdf", booking.BookingReference)

	return res, filename, nil
}

func buildReceiptPDF(booking bookingDto.BookingResponse, payment paymentModel.Payment, currency string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SUMMIT COACHES")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, "Booking Receipt")
	pdf.Ln(12)

	lines := []string{
		fmt.Sprintf("Reference    : %s", booking.BookingReference),
		fmt.Sprintf("Passenger    : %s", booking.PassengerName),
		fmt.Sprintf("Phone        : %s", booking.PhoneNumber),
		fmt.Sprintf("Type         : %s", booking.BookingType),
		fmt.Sprintf("Route        : %s -> %s", booking.Origin, booking.Destination),
		fmt.Sprintf("Trip Date    : %s %s", booking.TripDate, booking.DepartureTime),
	}

	if booking.SeatNumber != "" {
		lines = append(lines, fmt.Sprintf("Seat         : %s", booking.SeatNumber))
	}

	if booking.Weight > 0 {
		lines = append(lines, fmt.Sprintf("Weight       : %.1f kg", booking.Weight))
	}

	lines = append(lines,
		fmt.Sprintf("Amount       : %s", fare.Display(currency, booking.Amount)),
		fmt.Sprintf("Paid Via     : %s", payment.PaymentMethod),
		fmt.Sprintf("Transaction  : %s", payment.TransactionRef),
		fmt.Sprintf("Payment Date : %s", payment.PaymentDate),
	)

	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this receipt when boarding. Tickets are non-transferable.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
