package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Wizard       WizardConfig
	Submit       SubmitConfig
	Sink         SinkConfig
	Ledger       LedgerConfig
	Content      ContentConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CHUCKSBAKES_APP_ENV" required:"true"`
	Port         string `envconfig:"CHUCKSBAKES_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CHUCKSBAKES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CHUCKSBAKES_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CHUCKSBAKES_DB_DSN"`
	Driver string `envconfig:"CHUCKSBAKES_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CHUCKSBAKES_DB_HOST"`
	LegacyPort     int    `envconfig:"CHUCKSBAKES_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CHUCKSBAKES_DB_USER"`
	LegacyPassword string `envconfig:"CHUCKSBAKES_DB_PASSWORD"`
	LegacyName     string `envconfig:"CHUCKSBAKES_DB_NAME"`
	LegacySSLMode  string `envconfig:"CHUCKSBAKES_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CHUCKSBAKES_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"CHUCKSBAKES_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CHUCKSBAKES_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CHUCKSBAKES_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CHUCKSBAKES_REDIS_URL" required:"true"`
	Address      string        `envconfig:"CHUCKSBAKES_REDIS_ADDR"`
	Password     string        `envconfig:"CHUCKSBAKES_REDIS_PASSWORD"`
	DB           int           `envconfig:"CHUCKSBAKES_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CHUCKSBAKES_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CHUCKSBAKES_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CHUCKSBAKES_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CHUCKSBAKES_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CHUCKSBAKES_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// WizardConfig scopes the per-session order wizard state.
type WizardConfig struct {
	SessionTTL    time.Duration `envconfig:"CHUCKSBAKES_WIZARD_SESSION_TTL" default:"168h"`
	SessionCookie string        `envconfig:"CHUCKSBAKES_WIZARD_SESSION_COOKIE" default:"cb_session"`
}

// SubmitConfig tunes the serial batch submission discipline.
type SubmitConfig struct {
	InterItemDelay time.Duration `envconfig:"CHUCKSBAKES_SUBMIT_INTER_ITEM_DELAY" default:"500ms"`
}

// SinkConfig points the relay at the ledger writer. Both values must be set
// for the relay to accept orders at all.
type SinkConfig struct {
	LedgerURL   string        `envconfig:"CHUCKSBAKES_SINK_LEDGER_URL"`
	Token       string        `envconfig:"CHUCKSBAKES_SINK_TOKEN"`
	CallTimeout time.Duration `envconfig:"CHUCKSBAKES_SINK_CALL_TIMEOUT" default:"10s"`
	MaxRetries  int           `envconfig:"CHUCKSBAKES_SINK_MAX_RETRIES" default:"1"`
}

// LedgerConfig guards the append-only order ledger endpoint.
type LedgerConfig struct {
	Token string `envconfig:"CHUCKSBAKES_LEDGER_TOKEN"`
}

type ContentConfig struct {
	ProjectID  string        `envconfig:"CHUCKSBAKES_SANITY_PROJECT_ID"`
	Dataset    string        `envconfig:"CHUCKSBAKES_SANITY_DATASET" default:"production"`
	APIVersion string        `envconfig:"CHUCKSBAKES_SANITY_API_VERSION" default:"2024-11-22"`
	BaseURL    string        `envconfig:"CHUCKSBAKES_SANITY_BASE_URL"`
	CacheTTL   time.Duration `envconfig:"CHUCKSBAKES_CONTENT_CACHE_TTL" default:"5m"`
	Timeout    time.Duration `envconfig:"CHUCKSBAKES_CONTENT_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"CHUCKSBAKES_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"CHUCKSBAKES_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
