package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection,
//   secrets)
// - default: policy constants with sensible production defaults; all scheduling
//   policy knobs live here so they are tunable without a rebuild
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	Admin      AdminConfig
	Scheduling SchedulingConfig
	Coupons    CouponConfig
	Calendar   CalendarConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	SlotTTL  time.Duration `envconfig:"SLOT_CACHE_TTL" default:"60s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// AdminConfig guards the operator endpoints (force release, sync now).
// Full user authentication is an external collaborator; only token
// verification and a single operator credential live here.
type AdminConfig struct {
	JWTSecret    string        `envconfig:"ADMIN_JWT_SECRET" required:"true"`
	TokenTTL     time.Duration `envconfig:"ADMIN_TOKEN_TTL" default:"12h"`
	PasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type SchedulingConfig struct {
	// WindowDays bounds how far into the future slots are offered.
	WindowDays int `envconfig:"SCHED_WINDOW_DAYS" default:"21"`
	// LeadTime is the minimum notice before a slot may start. The
	// current day is never offered while lead time has not elapsed.
	LeadTime time.Duration `envconfig:"SCHED_LEAD_TIME" default:"24h"`
	// AnchorTimes are the local wall-clock start times slots are
	// generated at, "HH:MM".
	AnchorTimes []string `envconfig:"SCHED_ANCHOR_TIMES" default:"10:00,14:00"`
	// PendingPaymentTimeout is how long a pending_payment booking may
	// hold its slot before the reclaimer releases it.
	PendingPaymentTimeout time.Duration `envconfig:"SCHED_PENDING_TIMEOUT" default:"15m"`
	ReclaimInterval       time.Duration `envconfig:"SCHED_RECLAIM_INTERVAL" default:"1m"`
	// CancelCutoff is the minimum notice for a client cancellation.
	CancelCutoff time.Duration `envconfig:"SCHED_CANCEL_CUTOFF" default:"24h"`
}

type CouponConfig struct {
	// RiskThreshold is the score at or above which validation returns
	// the fraud-suspected outcome instead of a plain accept/reject.
	RiskThreshold int `envconfig:"COUPON_RISK_THRESHOLD" default:"70"`
	// AttemptWindow is the rolling window for attempt-rate heuristics.
	AttemptWindow time.Duration `envconfig:"COUPON_ATTEMPT_WINDOW" default:"1h"`
	// MaxAttemptsPerCode caps attempts for one code from one identity
	// inside the window before the attempt rate saturates the score.
	MaxAttemptsPerCode int `envconfig:"COUPON_MAX_ATTEMPTS_PER_CODE" default:"5"`
	// MaxAttemptsAllCodes caps attempts across all codes from one
	// identity inside the window.
	MaxAttemptsAllCodes int `envconfig:"COUPON_MAX_ATTEMPTS_ALL_CODES" default:"12"`
	// DisposableEmailDomains feeds the disposable-address heuristic.
	DisposableEmailDomains []string `envconfig:"COUPON_DISPOSABLE_DOMAINS" default:"mailinator.com,guerrillamail.com,10minutemail.com,tempmail.dev"`
}

type CalendarConfig struct {
	SyncInterval time.Duration `envconfig:"CAL_SYNC_INTERVAL" default:"5m"`
	// StaleAfterCycles: a busy interval not refreshed within this many
	// sync cycles is excluded from the busy timeline and flagged.
	StaleAfterCycles int           `envconfig:"CAL_STALE_AFTER_CYCLES" default:"2"`
	FetchTimeout     time.Duration `envconfig:"CAL_FETCH_TIMEOUT" default:"15s"`
	// DegradedAfterFailures: consecutive failures before a platform is
	// reported degraded to operators and slot responses carry a
	// reduced-confidence notice.
	DegradedAfterFailures int    `envconfig:"CAL_DEGRADED_AFTER_FAILURES" default:"3"`
	GoogleBaseURL         string `envconfig:"CAL_GOOGLE_BASE_URL" default:"https://www.googleapis.com/calendar/v3"`
	GoogleToken           string `envconfig:"CAL_GOOGLE_TOKEN" default:""`
	OutlookBaseURL        string `envconfig:"CAL_OUTLOOK_BASE_URL" default:"https://graph.microsoft.com/v1.0"`
	OutlookToken          string `envconfig:"CAL_OUTLOOK_TOKEN" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
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
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error",
		},
		Admin: AdminConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
			// bcrypt hash of "test-admin"
			PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		},
		Scheduling: SchedulingConfig{
			WindowDays:            21,
			LeadTime:              24 * time.Hour,
			AnchorTimes:           []string{"10:00", "14:00"},
			PendingPaymentTimeout: 15 * time.Minute,
			ReclaimInterval:       time.Minute,
			CancelCutoff:          24 * time.Hour,
		},
		Coupons: CouponConfig{
			RiskThreshold:       70,
			AttemptWindow:       time.Hour,
			MaxAttemptsPerCode:  5,
			MaxAttemptsAllCodes: 12,
			DisposableEmailDomains: []string{
				"mailinator.com",
			},
		},
		Calendar: CalendarConfig{
			SyncInterval:          5 * time.Minute,
			StaleAfterCycles:      2,
			FetchTimeout:          15 * time.Second,
			DegradedAfterFailures: 3,
		},
	}
}
