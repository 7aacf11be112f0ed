package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Stable machine-readable codes for booking outcomes. Clients branch on these, not on Message.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidation         = "VALIDATION_FAILED"
	CodeScheduleNotFound   = "SCHEDULE_NOT_FOUND"
	CodeFareNotFound       = "FARE_NOT_FOUND"
	CodeSeatUnavailable    = "SEAT_UNAVAILABLE"
	CodePaymentFailed      = "PAYMENT_FAILED"
	CodeRecordingDelayed   = "BOOKING_RECORDING_DELAYED"
	CodeBookingNotFound    = "BOOKING_NOT_FOUND"
	CodeInvalidCancelToken = "INVALID_CANCELLATION_TOKEN"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// AbortWithError derives the code from the status. The original error stays on the gin context for the error logger.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, codeForStatus(status), err, msg, detail)
}

func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithCode: err cannot be nil")
	}

	resp := Response{Status: status, Error: ErrorBody{Code: code, Message: msg}, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// codeForStatus turns "Not Found" into "NOT_FOUND".
func codeForStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}
