package services

import (
	"bytes"
	"fmt"

	"stayscape/internal/domain/models"
	"stayscape/internal/repositories"

	"github.com/phpdave11/gofpdf"
)

// ConfirmationService renders a booking confirmation PDF for guests.
type ConfirmationService struct {
	BookingRepo repositories.BookingRepository

	// Loader overrides the repository lookup in tests.
	Loader func(int64) (models.BookingConfirmation, error)
}

func (s ConfirmationService) Generate(bookingID int64) ([]byte, error) {
	data, err := s.load(bookingID)
	if err != nil {
		return nil, err
	}
	return buildConfirmationPDF(data)
}

func (s ConfirmationService) load(bookingID int64) (models.BookingConfirmation, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.BookingRepo.Confirmation(bookingID)
}

func buildConfirmationPDF(data models.BookingConfirmation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(45, 8, label)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 8, value)
		pdf.Ln(8)
	}

	line("Booking ref", fmt.Sprintf("#%d", data.BookingID))
	line("Guest", data.Guest)
	line("Property", data.PropertyName)
	line("Location", data.Location)
	line("Host", data.Host)
	line("Check-in", data.CheckInDate)
	line("Check-out", data.CheckOutDate)
	line("Price per night", data.PricePerNight)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render confirmation pdf: %w", err)
	}
	return buf.Bytes(), nil
}
