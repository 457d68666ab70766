package contact

import (
	"errors"
	"fmt"

	"github.com/jaydeeprathod/portfolio-backend/pkg/mailer"
)

// ErrMissingFields rejects a submission with an empty name, email, or
// message before either delivery channel runs.
var ErrMissingFields = errors.New("name, email, and message are required")

// DeliveryError reports that both the mail transport and the fallback store
// failed. Code carries the transport failure kind when one occurred.
type DeliveryError struct {
	Code    string
	Message string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed (%s): %s", e.Code, e.Message)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

func userMessage(kind mailer.Kind) string {
	switch kind {
	case mailer.KindAuth:
		return "Email authentication failed. Check credentials."
	case mailer.KindSocket:
		return "Network error connecting to mail server."
	case mailer.KindConnection:
		return "Connection error with mail server."
	default:
		return "Failed to send message. Please try again later."
	}
}
