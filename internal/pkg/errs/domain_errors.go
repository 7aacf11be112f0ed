package errs

// Booking sentinel errors shared by the command, query and handler layers.
// Lower layers attach their cause with Mark so errors.Is keeps working across wraps.
var (
	// Booking path
	ErrValidation                = New("validation failed")
	ErrScheduleNotFound          = New("bus or schedule not found")
	ErrFareNotFound              = New("fare not found for stop pair")
	ErrSeatUnavailable           = New("seat unavailable")
	ErrPaymentFailed             = New("payment failed")
	ErrHoldLost                  = New("seat hold lost before commit")
	ErrPersistenceRetryExhausted = New("booking not recorded after retries")

	// Cancellation path
	ErrBookingNotFound  = New("booking not found")
	ErrUnauthorized     = New("cancellation token mismatch")
	ErrAlreadyCancelled = New("booking already cancelled")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
