package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/jaydeeprathod/portfolio-backend/config"
)

// Profile is the closed set of supported transport profiles. The configured
// service name resolves to exactly one of these at construction time.
type Profile int

const (
	// ProfileNamed connects to a well-known service from the named-service
	// table. This is the default (gmail) when no service is configured.
	ProfileNamed Profile = iota
	// ProfileBrevo is the Brevo (formerly SendinBlue) relay with its fixed
	// host and port.
	ProfileBrevo
	// ProfileGmail is Gmail over STARTTLS. Only this profile honors the
	// insecure-TLS knob.
	ProfileGmail
)

func (p Profile) String() string {
	switch p {
	case ProfileBrevo:
		return "brevo"
	case ProfileGmail:
		return "gmail"
	default:
		return "named"
	}
}

// Settings is the resolved connection target for a profile.
type Settings struct {
	Profile Profile
	Host    string
	Port    int
}

// namedServices mirrors the well-known-service resolution the original relay
// library performed for the generic mode.
var namedServices = map[string]Settings{
	"gmail":   {Profile: ProfileGmail, Host: "smtp.gmail.com", Port: 587},
	"yahoo":   {Profile: ProfileNamed, Host: "smtp.mail.yahoo.com", Port: 587},
	"outlook": {Profile: ProfileNamed, Host: "smtp-mail.outlook.com", Port: 587},
	"zoho":    {Profile: ProfileNamed, Host: "smtp.zoho.com", Port: 587},
}

// ResolveProfile maps a configured service name to its transport settings.
// An empty name defaults to gmail. Unknown names are a configuration error.
func ResolveProfile(service string) (Settings, error) {
	name := strings.ToLower(strings.TrimSpace(service))

	switch name {
	case "brevo", "sendinblue":
		return Settings{Profile: ProfileBrevo, Host: "smtp-relay.sendinblue.com", Port: 587}, nil
	case "":
		name = "gmail"
	}

	if s, ok := namedServices[name]; ok {
		return s, nil
	}
	return Settings{}, fmt.Errorf("unknown mail service %q", service)
}

// Config holds mail transport configuration.
type Config struct {
	Service  string
	Username string
	Password string
	To       string
	FromName string

	TimeoutSeconds     int
	InsecureSkipVerify bool
}

// Configured reports whether relay credentials are present. Missing
// credentials are a valid state: the caller routes to the fallback store.
func (c Config) Configured() bool {
	return c.Username != "" && c.Password != ""
}

// Timeout returns the SMTP timeout as a duration
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.EmailConfig to package Config
func FromCentralConfig(c config.EmailConfig) Config {
	return Config{
		Service:            c.Service,
		Username:           c.Username,
		Password:           c.Password,
		To:                 c.To,
		FromName:           c.FromName,
		TimeoutSeconds:     c.SMTP.TimeoutSeconds,
		InsecureSkipVerify: c.SMTP.InsecureSkipVerify,
	}
}
