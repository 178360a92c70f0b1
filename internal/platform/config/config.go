package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	// SubmitEndpoint is the remote NOC submission API.
	SubmitEndpoint string
	// DraftTTL bounds how long abandoned drafts are retained.
	DraftTTL time.Duration

	Redis    RedisConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig
}

// RedisConfig configures the optional Redis draft store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig configures the optional Postgres draft store.
type PostgresConfig struct {
	URL string
}

// KafkaConfig configures the optional audit event publisher.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("NOCFLOW_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	submitEndpoint := os.Getenv("NOC_SUBMIT_ENDPOINT")
	if submitEndpoint == "" {
		submitEndpoint = "http://localhost:9090/api/noc/applications"
	}

	draftTTL := 30 * 24 * time.Hour
	if raw := os.Getenv("NOC_DRAFT_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			draftTTL = d
		}
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}
	topic := os.Getenv("KAFKA_AUDIT_TOPIC")
	if topic == "" {
		topic = "nocflow.audit"
	}

	return Server{
		Addr:           addr,
		JWTSigningKey:  jwtSigningKey,
		SubmitEndpoint: submitEndpoint,
		DraftTTL:       draftTTL,
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Postgres: PostgresConfig{URL: os.Getenv("POSTGRES_URL")},
		Kafka:    KafkaConfig{Brokers: brokers, Topic: topic},
	}
}
