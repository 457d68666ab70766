package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configFormat = "yaml"
)

type errInvalidPort int

func (e errInvalidPort) Error() string {
	return fmt.Sprintf("invalid server port: %d", int(e))
}

func ReadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configFormat)
	v.AddConfigPath(configPath)

	setDefaults(v)

	// Allow env vars to override config values.
	// e.g. PORTFOLIO_EMAIL_USERNAME overrides email.username
	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)

	// The config file is optional: a credential-less, env-only deployment is
	// a valid state (it runs in fallback-only mode).
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults registers every key with viper; env-var overrides are only
// picked up by Unmarshal for registered keys.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.cors.frontend_url", "http://localhost:3000")
	v.SetDefault("server.cors.allow_origins", []string{"https://portfolio-r4c2.vercel.app"})
	v.SetDefault("server.cors.allow_origin_patterns", []string{`\.vercel\.app$`})

	v.SetDefault("email.service", "")
	v.SetDefault("email.username", "")
	v.SetDefault("email.password", "")
	v.SetDefault("email.to", "jaydeeprathod6624@gmail.com")
	v.SetDefault("email.from_name", "Portfolio Contact")
	v.SetDefault("email.smtp.timeout_seconds", 30)
	v.SetDefault("email.smtp.insecure_skip_verify", false)

	v.SetDefault("storage.messages_path", "contact_messages.json")

	v.SetDefault("admin.token", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.username", "")
	v.SetDefault("redis.password", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output.stdout", true)
	v.SetDefault("logging.output.file.enabled", false)
	v.SetDefault("logging.output.file.path", "logs/app.log")
	v.SetDefault("logging.output.file.max_size_mb", 50)
	v.SetDefault("logging.output.file.max_backups", 3)
	v.SetDefault("logging.output.file.max_age_days", 14)
	v.SetDefault("logging.output.file.compress", true)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// bindLegacyEnv keeps the unprefixed legacy variable names working
// alongside the PORTFOLIO_* scheme.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("email.service", "PORTFOLIO_EMAIL_SERVICE", "EMAIL_SERVICE")
	_ = v.BindEnv("email.username", "PORTFOLIO_EMAIL_USERNAME", "EMAIL_USERNAME")
	_ = v.BindEnv("email.password", "PORTFOLIO_EMAIL_PASSWORD", "EMAIL_PASSWORD")
	_ = v.BindEnv("server.port", "PORTFOLIO_SERVER_PORT", "PORT")
	_ = v.BindEnv("server.cors.frontend_url", "PORTFOLIO_SERVER_CORS_FRONTEND_URL", "FRONTEND_URL")
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}
	return config
}
