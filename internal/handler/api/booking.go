package api

import (
	"net/http"

	reqdto "transit-booking/internal/handler/dto/request"
	resdto "transit-booking/internal/handler/dto/response"
	"transit-booking/internal/handler/httperr"
	"transit-booking/internal/pkg/errs"
	"transit-booking/internal/usecase/commands"
	"transit-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings     commands.BookingCommands
	cancels      commands.CancellationCommands
	availability queries.SeatAvailabilityQueries
	buses        queries.BusSearchQueries
}

func NewBookingHandler(
	bookings commands.BookingCommands,
	cancels commands.CancellationCommands,
	availability queries.SeatAvailabilityQueries,
	buses queries.BusSearchQueries,
) *BookingHandler {
	return &BookingHandler{
		bookings:     bookings,
		cancels:      cancels,
		availability: availability,
		buses:        buses,
	}
}

// @Summary Book a seat with payment
// @Description Reserves the seat, charges the fare and records the booking. A confirmation email with the cancellation token follows asynchronously.
// @Tags commuters
// @Accept json
// @Produce json
// @Param request body reqdto.BookAndPayRequest true "Booking request"
// @Success 201 {object} resdto.BookAndPayResponse
// @Success 202 {object} resdto.BookAndPayResponse "Charged; the booking record is delayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /tp/commuters/book-and-pay [post]
func (h *BookingHandler) BookAndPay(c *gin.Context) {
	var req reqdto.BookAndPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookings.BookSeat(c.Request.Context(), req.ToInput())
	if err != nil {
		// the charge went through and the recorder owns the rest
		if result != nil && errs.Is(err, errs.ErrPersistenceRetryExhausted) {
			c.JSON(http.StatusAccepted, resdto.FromBookSeatResult(resdto.MessageBookingPending, result))
			return
		}
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookSeatResult(resdto.MessageBooked, result))
}

// @Summary Cancel a booking
// @Description Cancels a confirmed booking with the token from the confirmation email and frees the seat. Cancelling twice is not an error.
// @Tags commuters
// @Accept json
// @Produce json
// @Param request body reqdto.CancelBookingRequest true "Cancellation request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tp/commuters/cancel-booking [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "Invalid request format", nil)
		return
	}

	err := h.cancels.Cancel(c.Request.Context(), req.TransactionID, req.CancellationToken)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resdto.MessageResponse{Message: resdto.MessageCancelled})
	case errs.Is(err, errs.ErrAlreadyCancelled):
		c.JSON(http.StatusOK, resdto.MessageResponse{Message: resdto.MessageAlreadyCanceled})
	default:
		abortWithMappedError(c, err)
	}
}

// @Summary Get seat availability
// @Description Lists every seat of the bus on the date with Available, Held or Booked
// @Tags commuters
// @Produce json
// @Param busNumber query string true "Bus number"
// @Param date query string true "Travel date (YYYY-MM-DD)"
// @Success 200 {array} queries.SeatStatusView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tp/commuters/available-seats [get]
func (h *BookingHandler) AvailableSeats(c *gin.Context) {
	var q reqdto.AvailableSeatsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "busNumber and date are required", nil)
		return
	}

	view, err := h.availability.GetSeatMap(c.Request.Context(), q.BusNumber, q.Date)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.Seats)
}

// @Summary Search buses
// @Description Buses running on the date whose route prices the boarding/destination pair
// @Tags commuters
// @Produce json
// @Param boardingPlace query string true "Boarding place"
// @Param destinationPlace query string true "Destination place"
// @Param date query string true "Travel date (YYYY-MM-DD)"
// @Success 200 {array} queries.BusSearchItem
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tp/commuters/buses [get]
// @Router /tp/commuters/available-buses [get]
func (h *BookingHandler) SearchBuses(c *gin.Context) {
	var q reqdto.SearchBusesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "boardingPlace, destinationPlace and date are required", nil)
		return
	}

	items, err := h.buses.Search(c.Request.Context(), q.BoardingPlace, q.DestinationPlace, q.Date)
	if err != nil {
		if errs.Is(err, errs.ErrScheduleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No buses found", nil)
			return
		}
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
