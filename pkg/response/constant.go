package response

const (
	// MessageSuccess is the message carried by every success envelope.
	MessageSuccess = "success"

	// DefaultErrorMessage replaces internal error text on 500 responses.
	DefaultErrorMessage = "internal server error"

	// InternalServerErrorCode is the error_code used for unexpected failures.
	InternalServerErrorCode = 500
)

// Wire formats for the Date and DateTime marshalers.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
