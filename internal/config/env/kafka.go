package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                     []string `env:"KAFKA_BROKERS"`
	JobCompletedTopicName       string   `env:"JOB_COMPLETED_TOPIC_NAME" envDefault:"carwash.job.completed"`
	JobCompletedConsumerGroupID string   `env:"JOB_COMPLETED_CONSUMER_GROUP_ID" envDefault:"carwash-notifier"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool             { return len(cfg.raw.Brokers) > 0 }
func (cfg *kafka) Brokers() []string         { return cfg.raw.Brokers }
func (cfg *kafka) JobCompletedTopic() string { return cfg.raw.JobCompletedTopicName }
func (cfg *kafka) JobCompletedConsumerGroupID() string {
	return cfg.raw.JobCompletedConsumerGroupID
}

func (cfg *kafka) JobCompletedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}

func (cfg *kafka) JobCompletedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}
