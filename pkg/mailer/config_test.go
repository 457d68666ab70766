package mailer

import "testing"

func TestResolveProfile(t *testing.T) {
	tests := []struct {
		name        string
		service     string
		wantProfile Profile
		wantHost    string
		wantErr     bool
	}{
		{"brevo", "brevo", ProfileBrevo, "smtp-relay.sendinblue.com", false},
		{"sendinblue", "sendinblue", ProfileBrevo, "smtp-relay.sendinblue.com", false},
		{"sendinblue mixed case", "SendinBlue", ProfileBrevo, "smtp-relay.sendinblue.com", false},
		{"gmail", "gmail", ProfileGmail, "smtp.gmail.com", false},
		{"gmail mixed case", "Gmail", ProfileGmail, "smtp.gmail.com", false},
		{"empty defaults to gmail", "", ProfileGmail, "smtp.gmail.com", false},
		{"yahoo", "yahoo", ProfileNamed, "smtp.mail.yahoo.com", false},
		{"outlook", "outlook", ProfileNamed, "smtp-mail.outlook.com", false},
		{"unknown service", "pigeonpost", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveProfile(tt.service)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveProfile(%q) expected error", tt.service)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveProfile(%q) error = %v", tt.service, err)
			}
			if got.Profile != tt.wantProfile {
				t.Errorf("Profile = %v, want %v", got.Profile, tt.wantProfile)
			}
			if got.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", got.Host, tt.wantHost)
			}
			if got.Port != 587 {
				t.Errorf("Port = %d, want 587", got.Port)
			}
		})
	}
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"both set", Config{Username: "u", Password: "p"}, true},
		{"missing password", Config{Username: "u"}, false},
		{"missing username", Config{Password: "p"}, false},
		{"neither", Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Configured(); got != tt.want {
				t.Errorf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeoutDefault(t *testing.T) {
	cfg := Config{}
	if cfg.Timeout().Seconds() != 30 {
		t.Errorf("Timeout() = %v, want 30s default", cfg.Timeout())
	}
	cfg.TimeoutSeconds = 5
	if cfg.Timeout().Seconds() != 5 {
		t.Errorf("Timeout() = %v, want 5s", cfg.Timeout())
	}
}

func TestSendWithoutCredentials(t *testing.T) {
	client, err := New(Config{Service: "gmail"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.Configured() {
		t.Error("Configured() = true, want false")
	}
}

func TestNewRejectsUnknownService(t *testing.T) {
	if _, err := New(Config{Service: "pigeonpost"}); err == nil {
		t.Error("New() expected error for unknown service")
	}
}
