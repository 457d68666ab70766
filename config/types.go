package config

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Email   EmailConfig   `mapstructure:"email"`
	Storage StorageConfig `mapstructure:"storage"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
	// TimeoutSeconds bounds connection read/write/idle on the listener.
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	// FrontendURL is the primary allowed browser origin.
	FrontendURL string `mapstructure:"frontend_url"`
	// AllowOrigins are additional exact-match origins (the deployed domain).
	AllowOrigins []string `mapstructure:"allow_origins"`
	// AllowOriginPatterns are regular expressions matched against the Origin
	// header, e.g. `\.vercel\.app$` for preview deployments.
	AllowOriginPatterns []string `mapstructure:"allow_origin_patterns"`
}

type EmailConfig struct {
	// Service selects the transport profile: "brevo"/"sendinblue", "gmail",
	// or a known named service (yahoo, outlook, zoho). Empty means gmail.
	Service  string `mapstructure:"service"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	// To is the fixed destination for contact submissions.
	To       string     `mapstructure:"to"`
	FromName string     `mapstructure:"from_name"`
	SMTP     SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// InsecureSkipVerify disables certificate validation on the gmail
	// profile, for relays that present a self-signed certificate. Known
	// weakness, off by default.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify"`
}

type StorageConfig struct {
	// MessagesPath is the JSON file holding submissions that could not be
	// delivered by email.
	MessagesPath string `mapstructure:"messages_path"`
}

type AdminConfig struct {
	// Token guards GET /api/messages when set. An empty token leaves the
	// endpoint open; the server logs a warning in that case.
	Token string `mapstructure:"token"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	DB       int    `mapstructure:"db"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errInvalidPort(c.Server.Port)
	}
	return nil
}
