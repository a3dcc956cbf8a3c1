package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, booking rules), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Booking BookingConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"1h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// BookingConfig holds the tunables of the booking rules.
type BookingConfig struct {
	MaxPerDay      int           `envconfig:"BOOKING_MAX_PER_DAY" default:"2"`
	MaxAdvanceDays int           `envconfig:"BOOKING_MAX_ADVANCE_DAYS" default:"30"`
	CancelWindow   time.Duration `envconfig:"BOOKING_CANCEL_WINDOW" default:"24h"`
	TimeZone       string        `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
	OpeningHour    int           `envconfig:"BOOKING_OPENING_HOUR" default:"8"`
	ClosingHour    int           `envconfig:"BOOKING_CLOSING_HOUR" default:"22"`
}

// Empty Addr disables the field catalogue cache.
type RedisConfig struct {
	Addr          string        `envconfig:"REDIS_ADDR" default:""`
	Password      string        `envconfig:"REDIS_PASSWORD" default:""`
	DB            int           `envconfig:"REDIS_DB" default:"0"`
	FieldCacheTTL time.Duration `envconfig:"REDIS_FIELD_CACHE_TTL" default:"5m"`
}

// Empty URL disables booking event publishing.
type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"bookings"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c BookingConfig) validate() error {
	if c.MaxPerDay < 1 {
		return errors.New("BOOKING_MAX_PER_DAY must be at least 1")
	}
	if c.MaxAdvanceDays < 0 {
		return errors.New("BOOKING_MAX_ADVANCE_DAYS must not be negative")
	}
	if c.OpeningHour < 0 || c.ClosingHour > 24 || c.OpeningHour >= c.ClosingHour {
		return fmt.Errorf("invalid opening hours %d-%d", c.OpeningHour, c.ClosingHour)
	}
	_, err := c.Location()
	return err
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ToolConfig is what the migrate and seed commands read. PORT and JWT_SECRET
// are not required for them.
type ToolConfig struct {
	DB  DBConfig
	Log LogConfig
}

func LoadToolConfig() (ToolConfig, error) {
	if err := loadDotEnv(); err != nil {
		return ToolConfig{}, err
	}

	var cfg ToolConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return ToolConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database section.
func LoadDBConfig() (DBConfig, error) {
	cfg, err := LoadToolConfig()
	if err != nil {
		return DBConfig{}, err
	}
	return cfg.DB, nil
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
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
			MinConns: 1,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-field-booking",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Booking: BookingConfig{
			MaxPerDay:      2,
			MaxAdvanceDays: 30,
			CancelWindow:   24 * time.Hour,
			TimeZone:       "UTC",
			OpeningHour:    8,
			ClosingHour:    22,
		},
		AMQP: AMQPConfig{
			Exchange: "bookings",
		},
	}
}
