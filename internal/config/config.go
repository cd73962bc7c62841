package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "EVENTPASS"

var (
	errMissingSigningKey = errors.New("api.jwt_signing_key is required")
	errInvalidWebhookURL = errors.New("whatsapp.webhook_url must be an absolute http(s) URL")
)

type AppConfig struct {
	API          *APIConfig          `mapstructure:"api"`
	Gin          *GinConfig          `mapstructure:"gin"`
	Postgres     *PostgresConfig     `mapstructure:"postgres"`
	SQLite       *SQLiteConfig       `mapstructure:"sqlite"`
	WhatsApp     *WhatsAppConfig     `mapstructure:"whatsapp"`
	Scanner      *ScannerConfig      `mapstructure:"scanner"`
	Registration *RegistrationConfig `mapstructure:"registration"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	SessionTTL         time.Duration `mapstructure:"session_ttl"`
	DefaultLocale      string        `mapstructure:"default_locale"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	DB          string `mapstructure:"db"`
	SSLMode     string `mapstructure:"sslmode"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// DSN renders the connection string understood by both pgx and golang-migrate.
func (c *PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DB,
		RawQuery: "sslmode=" + c.SSLMode,
	}

	return u.String()
}

// SQLiteConfig switches storage to a local file when Path is set.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type WhatsAppConfig struct {
	WebhookURL string        `mapstructure:"webhook_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type ScannerConfig struct {
	APIURL        string        `mapstructure:"api_url"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	ResolvedDwell time.Duration `mapstructure:"resolved_dwell"`
	RejectedDwell time.Duration `mapstructure:"rejected_dwell"`
	Locale        string        `mapstructure:"locale"`
	DeviceInfo    string        `mapstructure:"device_info"`
}

type RegistrationConfig struct {
	DefaultTotalAmount float64 `mapstructure:"default_total_amount"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.session_ttl", 12*time.Hour)
	v.SetDefault("api.default_locale", "es")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.auto_migrate", true)
	v.SetDefault("sqlite.path", "")
	v.SetDefault("whatsapp.timeout", 15*time.Second)
	v.SetDefault("scanner.api_url", "http://localhost:8080/api/v1")
	v.SetDefault("scanner.frame_interval", 16*time.Millisecond)
	v.SetDefault("scanner.resolved_dwell", 4*time.Second)
	v.SetDefault("scanner.rejected_dwell", 2500*time.Millisecond)
	v.SetDefault("scanner.locale", "es")
	v.SetDefault("registration.default_total_amount", 100)
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the YAML file at path, applies EVENTPASS_* environment overrides
// and validates the result.
func Load(path string) (*AppConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf, err := decode(v)
	if err != nil {
		return nil, err
	}

	return conf, nil
}

// Watch reloads the file on change and hands the new config to onChange.
// Invalid edits are logged and ignored.
func Watch(path string, onChange func(*AppConfig)) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		zap.L().Warn("config watch disabled", zap.String("path", path), zap.Error(err))
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		conf, err := decode(v)
		if err != nil {
			zap.L().Error("ignoring invalid config change", zap.String("file", e.Name), zap.Error(err))
			return
		}

		zap.L().Info("config reloaded", zap.String("file", e.Name), zap.String("op", e.Op.String()))
		onChange(conf)
	})
	v.WatchConfig()
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.API.JWTSigningKey) == "" {
		return errMissingSigningKey
	}

	if c.WhatsApp.WebhookURL != "" {
		u, err := url.Parse(c.WhatsApp.WebhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errInvalidWebhookURL
		}
	}

	return nil
}
