package contact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jaydeeprathod/portfolio-backend/config"
	"github.com/jaydeeprathod/portfolio-backend/internal/store"
	"github.com/jaydeeprathod/portfolio-backend/pkg/mailer"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	Name    string
	Email   string
	Message string
}

// State is the terminal outcome of a successful submission.
type State int

const (
	// StateDelivered means the relay accepted the email.
	StateDelivered State = iota
	// StateFallback means the submission was durably persisted instead.
	StateFallback
)

type Result struct {
	State State
	// Note explains a fallback outcome to the caller; empty when delivered.
	Note string
}

const (
	noteMissingConfig = "Message saved to file due to missing email configuration"
	noteFallback      = "Message saved locally. We'll contact you soon."
)

// ---------------------------------------------------------------------------
// Interfaces
// ---------------------------------------------------------------------------

// Mailer is the primary delivery channel.
type Mailer interface {
	Configured() bool
	Send(ctx context.Context, m mailer.Message) (string, error)
}

// Store is the durable fallback channel.
type Store interface {
	Append(sub store.Submission) error
	ReadAll() ([]store.Submission, error)
}

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Result, error)
	Messages(ctx context.Context) ([]store.Submission, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	mailer Mailer
	store  Store
	email  config.EmailConfig
}

func New(m Mailer, s Store, email config.EmailConfig) Service {
	return &contactService{mailer: m, store: s, email: email}
}

// Submit runs a submission through validate -> mail transport -> fallback
// store. It succeeds whenever at least one channel confirms; only
// simultaneous failure of both surfaces as an error.
func (s *contactService) Submit(ctx context.Context, req SubmitRequest) (*Result, error) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		submissionsTotal.WithLabelValues("rejected").Inc()
		return nil, ErrMissingFields
	}

	var sendErr *mailer.SendError
	note := noteFallback

	if !s.mailer.Configured() {
		slog.Warn("mail credentials missing, routing submission to fallback store")
		note = noteMissingConfig
	} else {
		msg := mailer.BuildContactEmail(s.email.To, s.email.Username, s.email.FromName, mailer.ContactEmailData{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		})

		id, err := s.mailer.Send(ctx, msg)
		if err == nil {
			slog.Info("contact message delivered", "message_id", id)
			submissionsTotal.WithLabelValues("delivered").Inc()
			return &Result{State: StateDelivered}, nil
		}

		if !errors.As(err, &sendErr) {
			sendErr = &mailer.SendError{Err: err}
		}
		slog.Warn("mail transport failed, routing submission to fallback store",
			"code", sendErr.Kind.Code(), "error", err)
	}

	appendErr := s.store.Append(store.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if appendErr == nil {
		slog.Info("contact message persisted to fallback store")
		submissionsTotal.WithLabelValues("fallback").Inc()
		return &Result{State: StateFallback, Note: note}, nil
	}

	slog.Error("fallback store append failed", "error", appendErr)
	submissionsTotal.WithLabelValues("failed").Inc()

	if sendErr != nil {
		return nil, &DeliveryError{
			Code:    sendErr.Kind.Code(),
			Message: userMessage(sendErr.Kind),
			Err:     sendErr,
		}
	}
	return nil, &DeliveryError{
		Code:    mailer.KindUnknown.Code(),
		Message: userMessage(mailer.KindUnknown),
	}
}

func (s *contactService) Messages(ctx context.Context) ([]store.Submission, error) {
	return s.store.ReadAll()
}
