package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	App      AppConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Redis    RedisConfig
	AMQP     AMQPConfig
	Session  SessionConfig
	Settings SettingsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type AppConfig struct {
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Europe/Helsinki"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Helsinki"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"50"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,X-Requested-With,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Helsinki"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

// Empty Addr selects the in-process session store.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Prefix   string `envconfig:"REDIS_KEY_PREFIX" default:"weekly-booking:session:"`
}

// Empty URL disables reservation event publishing.
type AMQPConfig struct {
	URL            string        `envconfig:"AMQP_URL"`
	Queue          string        `envconfig:"AMQP_RESERVATION_QUEUE" default:"reservation.created"`
	DialTimeout    time.Duration `envconfig:"AMQP_DIAL_TIMEOUT" default:"3s"`
	PublishTimeout time.Duration `envconfig:"AMQP_PUBLISH_TIMEOUT" default:"2s"`
	RetryBackoff   time.Duration `envconfig:"AMQP_RETRY_BACKOFF" default:"30s"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"booking_session"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	Domain     string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	Secure     bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite   string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
}

type SettingsConfig struct {
	Path             string `envconfig:"SETTINGS_PATH" default:"settings.json"`
	AdminAccountPath string `envconfig:"ADMIN_ACCOUNT_PATH" default:"admin.json"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		App: AppConfig{
			TimeZone: "UTC",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Session: SessionConfig{
			CookieName: "booking_session",
			TTL:        time.Hour,
			SameSite:   "Lax",
		},
		Settings: SettingsConfig{
			Path:             "settings.json",
			AdminAccountPath: "admin.json",
		},
	}
}
