package api

import (
	"net/http"

	reqdto "transit-booking/internal/handler/dto/request"
	resdto "transit-booking/internal/handler/dto/response"
	"transit-booking/internal/handler/httperr"
	"transit-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OperatorHandler struct {
	bookings      queries.BookingQueries
	notifications queries.NotificationQueries
}

func NewOperatorHandler(bookings queries.BookingQueries, notifications queries.NotificationQueries) *OperatorHandler {
	return &OperatorHandler{bookings: bookings, notifications: notifications}
}

// @Summary List bookings of a bus
// @Description Bookings of one bus on one date, cancelled ones included
// @Tags operators
// @Produce json
// @Security BearerAuth
// @Param busNumber query string true "Bus number"
// @Param date query string true "Travel date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /tp/operators/bookings [get]
func (h *OperatorHandler) ListBookings(c *gin.Context) {
	var q reqdto.OperatorBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "busNumber and date are required", nil)
		return
	}

	views, err := h.bookings.ListByBusAndDate(c.Request.Context(), q.BusNumber, q.Date)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BookingListResponse{Bookings: views})
}

// @Summary Get booking
// @Tags operators
// @Produce json
// @Security BearerAuth
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} queries.BookingView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tp/operators/bookings/{transactionId} [get]
func (h *OperatorHandler) GetBooking(c *gin.Context) {
	view, err := h.bookings.GetByTransactionID(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List queued notifications
// @Description Notification jobs not yet delivered, oldest first
// @Tags operators
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max jobs (default 50, max 200)"
// @Success 200 {object} resdto.NotificationJobListResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /tp/operators/notifications/pending [get]
func (h *OperatorHandler) PendingNotifications(c *gin.Context) {
	var q reqdto.PendingNotificationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidRequest, err, "Invalid limit", nil)
		return
	}

	jobs, err := h.notifications.ListPending(c.Request.Context(), q.Limit)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NotificationJobListResponse{Jobs: jobs})
}
