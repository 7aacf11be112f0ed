package api

import (
	"net/http"

	"transit-booking/internal/handler/httperr"
	"transit-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: the first match wins.
var bookingErrorMappings = []errorMapping{
	{errs.ErrValidation, http.StatusBadRequest, httperr.CodeValidation, "Invalid booking details"},
	{errs.ErrScheduleNotFound, http.StatusNotFound, httperr.CodeScheduleNotFound, "Bus or schedule not found for the given details"},
	{errs.ErrFareNotFound, http.StatusBadRequest, httperr.CodeFareNotFound, "Price not found for the selected route"},
	{errs.ErrSeatUnavailable, http.StatusBadRequest, httperr.CodeSeatUnavailable, "Seat already booked"},
	{errs.ErrPaymentFailed, http.StatusBadRequest, httperr.CodePaymentFailed, "Payment failed"},
	{errs.ErrPersistenceRetryExhausted, http.StatusInternalServerError, httperr.CodeRecordingDelayed, "Payment received but the booking could not be recorded; support has been notified"},
	{errs.ErrBookingNotFound, http.StatusNotFound, httperr.CodeBookingNotFound, "Booking not found"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, httperr.CodeInvalidCancelToken, "Invalid cancellation token"},
}

func abortWithMappedError(c *gin.Context, err error) {
	for _, m := range bookingErrorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithCode(c, m.status, m.code, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
