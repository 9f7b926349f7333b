package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
	LockTimeout() time.Duration
}

// Kafka is disabled when no brokers are configured.
type Kafka interface {
	Enabled() bool
	Brokers() []string
	JobCompletedTopic() string
	JobCompletedConsumerGroupID() string
	JobCompletedProducerConfig() *sarama.Config
	JobCompletedConsumerConfig() *sarama.Config
}

// SMTP is disabled when no host is configured.
type SMTP interface {
	Enabled() bool
	Host() string
	Port() int
	Username() string
	Password() string
	From() string
	FromName() string
	ImplicitTLS() bool
	Timeout() time.Duration
}

// Telegram is disabled when no bot token is configured.
type Telegram interface {
	Enabled() bool
	BotToken() string
}

type Business interface {
	Location() *time.Location
	BcryptCost() int
}
