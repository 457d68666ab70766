package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"strings"
)

type ErrNotConfigured struct{}

func (e ErrNotConfigured) Error() string { return "mail transport is not configured" }

type ErrInvalidMessage struct{ Reason string }

func (e ErrInvalidMessage) Error() string { return "invalid email message: " + e.Reason }

// Kind is a coarse classification of a transport failure. It only affects
// the user-facing message; the caller falls through to the fallback store
// for every kind.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuth
	KindConnection
	KindSocket
)

// Code returns the wire-level failure code reported to clients.
func (k Kind) Code() string {
	switch k {
	case KindAuth:
		return "EAUTH"
	case KindConnection:
		return "ECONNECTION"
	case KindSocket:
		return "ESOCKET"
	default:
		return "unknown"
	}
}

type SendError struct {
	Kind Kind
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("mail send failed (%s): %v", e.Kind.Code(), e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// Classify wraps a raw dial/send error with a failure kind.
func Classify(err error) *SendError {
	return &SendError{Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	// SMTP replies surface as textproto errors. 530/534/535 are the
	// authentication-rejection family.
	var proto *textproto.Error
	if errors.As(err, &proto) {
		switch proto.Code {
		case 530, 534, 535:
			return KindAuth
		}
		return KindUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindConnection
	}

	var op *net.OpError
	if errors.As(err, &op) {
		if op.Op == "dial" {
			return KindConnection
		}
		return KindSocket
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindConnection
		}
		return KindSocket
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "username and password not accepted") ||
		strings.Contains(msg, "authentication failed") ||
		strings.Contains(msg, "invalid credentials") {
		return KindAuth
	}

	return KindUnknown
}
