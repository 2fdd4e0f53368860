package cmd

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "DEALERSHIP"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Auth  AuthConfig
	Jobs  JobsConfig
}

// LoadConfig reads the DEALERSHIP_* environment. Call godotenv first to pick
// up a .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type AppConfig struct {
	Env       string `envconfig:"DEALERSHIP_APP_ENV" default:"dev"`
	LogLevel  string `envconfig:"DEALERSHIP_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"DEALERSHIP_LOG_FORMAT" default:"json"`
	// Timezone decides the calendar day used for voucher windows.
	Timezone string `envconfig:"DEALERSHIP_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
}

func (a AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", a.Timezone, err)
	}
	return loc, nil
}

type HTTPConfig struct {
	Port            string        `envconfig:"DEALERSHIP_HTTP_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"DEALERSHIP_HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Driver string `envconfig:"DEALERSHIP_DB_DRIVER" default:"postgres"`
	DSN    string `envconfig:"DEALERSHIP_DB_DSN"`

	Host     string `envconfig:"DEALERSHIP_DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DEALERSHIP_DB_PORT" default:"5432"`
	User     string `envconfig:"DEALERSHIP_DB_USER"`
	Password string `envconfig:"DEALERSHIP_DB_PASSWORD"`
	Name     string `envconfig:"DEALERSHIP_DB_NAME" default:"dealership"`
	SSLMode  string `envconfig:"DEALERSHIP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DEALERSHIP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DEALERSHIP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DEALERSHIP_DB_CONN_MAX_LIFETIME" default:"1h"`

	AutoMigrate bool `envconfig:"DEALERSHIP_DB_AUTO_MIGRATE" default:"true"`
	Seed        bool `envconfig:"DEALERSHIP_DB_SEED" default:"false"`
}

// ConnectionString returns DSN when set, otherwise a postgres URL built from
// the parts.
func (d DBConfig) ConnectionString() string {
	if d.DSN != "" {
		return d.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Redis is optional. Without an address jobs run unlocked.
type RedisConfig struct {
	Addr     string `envconfig:"DEALERSHIP_REDIS_ADDR"`
	Password string `envconfig:"DEALERSHIP_REDIS_PASSWORD"`
	DB       int    `envconfig:"DEALERSHIP_REDIS_DB" default:"0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type JWTConfig struct {
	Secret string        `envconfig:"DEALERSHIP_JWT_SECRET"`
	Issuer string        `envconfig:"DEALERSHIP_JWT_ISSUER" default:"dealership"`
	TTL    time.Duration `envconfig:"DEALERSHIP_JWT_TTL" default:"12h"`
}

type AuthConfig struct {
	Enabled bool `envconfig:"DEALERSHIP_AUTH_ENABLED" default:"true"`
}

type JobsConfig struct {
	Enabled                       bool   `envconfig:"DEALERSHIP_JOBS_ENABLED" default:"true"`
	InventoryMetricsSchedule      string `envconfig:"DEALERSHIP_JOBS_INVENTORY_METRICS_SCHEDULE" default:"*/30 * * * * *"`
	OverduePurchaseOrdersSchedule string `envconfig:"DEALERSHIP_JOBS_OVERDUE_PURCHASE_ORDERS_SCHEDULE" default:"0 * * * * *"`
}

func (c Config) validate() error {
	switch strings.ToLower(c.DB.Driver) {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DEALERSHIP_DB_DRIVER must be %s or %s, got %q", DriverPostgres, DriverSQLite, c.DB.Driver)
	}
	if c.Auth.Enabled && c.JWT.Secret == "" {
		return fmt.Errorf("DEALERSHIP_JWT_SECRET is required when auth is enabled")
	}
	if _, err := c.App.Location(); err != nil {
		return err
	}
	return nil
}
