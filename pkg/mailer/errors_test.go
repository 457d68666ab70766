package mailer

import (
	"context"
	"errors"
	"net"
	"net/textproto"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"auth reply 535", &textproto.Error{Code: 535, Msg: "5.7.8 Username and Password not accepted"}, KindAuth},
		{"auth reply 534", &textproto.Error{Code: 534, Msg: "5.7.9 Application-specific password required"}, KindAuth},
		{"auth reply 530", &textproto.Error{Code: 530, Msg: "5.7.0 Authentication Required"}, KindAuth},
		{"other smtp reply", &textproto.Error{Code: 550, Msg: "mailbox unavailable"}, KindUnknown},
		{"dial failure", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, KindConnection},
		{"read failure", &net.OpError{Op: "read", Err: errors.New("connection reset")}, KindSocket},
		{"context deadline", context.DeadlineExceeded, KindConnection},
		{"context canceled", context.Canceled, KindConnection},
		{"auth message sniff", errors.New("535-5.7.8 username and password not accepted"), KindAuth},
		{"plain error", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Kind != tt.want {
				t.Errorf("Classify(%v).Kind = %v, want %v", tt.err, got.Kind, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("Classify(%v) does not wrap the original error", tt.err)
			}
		})
	}
}

func TestKindCode(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindAuth, "EAUTH"},
		{KindConnection, "ECONNECTION"},
		{KindSocket, "ESOCKET"},
		{KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.Code(); got != tt.want {
			t.Errorf("Kind(%d).Code() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
