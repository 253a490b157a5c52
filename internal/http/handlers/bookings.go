package handlers

import (
	"fmt"
	"net/http"

	"stayscape/internal/domain/models"
	"stayscape/internal/repositories"
	"stayscape/internal/services"
	"stayscape/internal/validate"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Repo          repositories.BookingRepository
	Confirmations services.ConfirmationService
}

var bookingCreateSchema = validate.Schema{
	"guest_id":       {Required: true, Type: validate.Number},
	"check_in_date":  {Required: true, Type: validate.Date},
	"check_out_date": {Required: true, Type: validate.Date},
}

var bookingPatchSchema = validate.Schema{
	"check_in_date":  {Type: validate.Date},
	"check_out_date": {Type: validate.Date},
}

func (h BookingHandler) Create(c *gin.Context) {
	propertyID, ok := PathID(c)
	if !ok {
		return
	}
	fields, ok := ValidateBody(c, bookingCreateSchema)
	if !ok {
		return
	}

	booking, err := h.Repo.Insert(propertyID, fields.Int("guest_id"),
		fields.Str("check_in_date"), fields.Str("check_out_date"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": gin.H{
		"booking_id": booking.BookingID,
		"msg":        "Booking successful",
	}})
}

func (h BookingHandler) Patch(c *gin.Context) {
	bookingID, ok := PathID(c)
	if !ok {
		return
	}
	fields, ok := ValidateBody(c, bookingPatchSchema)
	if !ok {
		return
	}

	patch := models.BookingPatch{
		CheckInDate:  fields.StrPtr("check_in_date"),
		CheckOutDate: fields.StrPtr("check_out_date"),
	}
	booking, err := h.Repo.Update(bookingID, patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (h BookingHandler) Delete(c *gin.Context) {
	bookingID, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(bookingID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h BookingHandler) ListForProperty(c *gin.Context) {
	propertyID, ok := PathID(c)
	if !ok {
		return
	}
	bookings, err := h.Repo.ListForProperty(propertyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "property_id": propertyID})
}

func (h BookingHandler) ListForUser(c *gin.Context) {
	userID, ok := PathID(c)
	if !ok {
		return
	}
	bookings, err := h.Repo.ListForUser(userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Confirmation streams the booking confirmation PDF.
func (h BookingHandler) Confirmation(c *gin.Context) {
	bookingID, ok := PathID(c)
	if !ok {
		return
	}
	pdf, err := h.Confirmations.Generate(bookingID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="booking-%d.pdf"`, bookingID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
