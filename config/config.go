package config

import (
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
}

type APP struct {
	PORT        string `env:"APP_PORT" envDefault:"8080"`
	METRICSPORT string `env:"METRICS_PORT" envDefault:"9090"`
	ENV         string `env:"GO_ENV" envDefault:"development"`
	CORSORIGINS string `env:"CORS_ALLOWED_ORIGINS" envDefault:"https://*,http://*"`
}

// IsLocal reports whether the service runs against a developer database that may be seeded.
func (a APP) IsLocal() bool {
	return a.ENV == "local"
}

type DB struct {
	HOST            string        `env:"DB_HOST"`
	USER            string        `env:"DB_USER"`
	PASSWORD        string        `env:"DB_PASSWORD"`
	NAME            string        `env:"DB_NAME"`
	PORT            string        `env:"DB_PORT"`
	SSLMODE         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"50"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
	LogLevel        string        `env:"DB_LOG_LEVEL" envDefault:"error"`
}

type Kafka struct {
	Enabled          bool   `env:"KAFKA_ENABLED" envDefault:"true"`
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	MetricsGroup     string `env:"KAFKA_METRICS_GROUP_ID" envDefault:"payout-metrics"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"cashout.requested,cashout.approved,cashout.rejected,cashout.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"cashout.requested,cashout.approved,cashout.rejected"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// Backoff returns the exponential delay before retry number attempt (0-based),
// capped at MaxDelay and spread by +/-15% when Jitter is set.
func (r RetryConfig) Backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * r.BaseDelay

	if delay > r.MaxDelay {
		delay = r.MaxDelay
	}

	if r.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
