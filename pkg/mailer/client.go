package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaydeeprathod/portfolio-backend/config"
	"gopkg.in/gomail.v2"
)

type Client struct {
	cfg      Config
	settings Settings
}

// NewFromCentral creates a new mail client from central config
func NewFromCentral(cfg config.EmailConfig) (*Client, error) {
	return New(FromCentralConfig(cfg))
}

func New(cfg Config) (*Client, error) {
	settings, err := ResolveProfile(cfg.Service)
	if err != nil {
		return nil, err
	}
	return &Client{cfg: cfg, settings: settings}, nil
}

// Configured reports whether the client holds relay credentials.
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// Send makes exactly one delivery attempt against the relay and returns the
// locally assigned message id on acceptance. Failures come back as
// *SendError with a coarse kind; retries are the caller's decision.
func (c *Client) Send(ctx context.Context, m Message) (string, error) {
	if !c.cfg.Configured() {
		return "", ErrNotConfigured{}
	}

	id := fmt.Sprintf("<%s@portfolio-contact>", uuid.NewString())
	msg, err := buildMessage(m, id)
	if err != nil {
		return "", err
	}

	d := c.newDialer()

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	// Respect ctx deadline if it's sooner than our config timeout.
	wait := c.cfg.Timeout()
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return "", Classify(err)
		}
		return id, nil
	case <-ctx.Done():
		return "", Classify(ctx.Err())
	case <-time.After(wait):
		return "", Classify(context.DeadlineExceeded)
	}
}

func (c *Client) newDialer() *gomail.Dialer {
	d := gomail.NewDialer(c.settings.Host, c.settings.Port, c.cfg.Username, c.cfg.Password)
	d.SSL = c.settings.Port == 465

	// Known weakness, see config docs for the insecure_skip_verify knob.
	if c.settings.Profile == ProfileGmail && c.cfg.InsecureSkipVerify {
		d.TLSConfig = &tls.Config{ServerName: c.settings.Host, InsecureSkipVerify: true}
	}

	return d
}

func buildMessage(m Message, id string) (*gomail.Message, error) {
	msg := gomail.NewMessage()

	from := strings.TrimSpace(m.From)
	if from == "" {
		return nil, ErrInvalidMessage{Reason: "from is required"}
	}
	if m.FromName != "" {
		msg.SetHeader("From", msg.FormatAddress(from, m.FromName))
	} else {
		msg.SetHeader("From", from)
	}

	to := cleanAddrs(m.To)
	if len(to) == 0 {
		return nil, ErrInvalidMessage{Reason: "at least one recipient is required"}
	}
	msg.SetHeader("To", to...)

	if replyTo := strings.TrimSpace(m.ReplyTo); replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}

	subj := strings.TrimSpace(m.Subject)
	if subj == "" {
		return nil, ErrInvalidMessage{Reason: "subject is required"}
	}
	msg.SetHeader("Subject", subj)

	msg.SetHeader("Message-Id", id)
	for k, v := range m.Headers {
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		msg.SetHeader(k, v)
	}

	hasText := strings.TrimSpace(m.TextBody) != ""
	hasHTML := strings.TrimSpace(m.HTMLBody) != ""

	switch {
	case hasText && hasHTML:
		msg.SetBody("text/plain", m.TextBody)
		msg.AddAlternative("text/html", m.HTMLBody)
	case hasHTML:
		msg.SetBody("text/html", m.HTMLBody)
	case hasText:
		msg.SetBody("text/plain", m.TextBody)
	default:
		return nil, ErrInvalidMessage{Reason: "either TextBody or HTMLBody is required"}
	}

	return msg, nil
}

func cleanAddrs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
