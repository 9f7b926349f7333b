package app

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	tgclient "github.com/you-humble/carwash/internal/client/http/telegram"
	"github.com/you-humble/carwash/internal/client/smtp"
	"github.com/you-humble/carwash/internal/config"
	converter "github.com/you-humble/carwash/internal/converter/kafka"
	"github.com/you-humble/carwash/internal/model"
	accountrepo "github.com/you-humble/carwash/internal/repository/account"
	jobrepo "github.com/you-humble/carwash/internal/repository/carwash"
	partrepo "github.com/you-humble/carwash/internal/repository/part"
	purchaserepo "github.com/you-humble/carwash/internal/repository/purchase"
	reviewrepo "github.com/you-humble/carwash/internal/repository/review"
	accountsvc "github.com/you-humble/carwash/internal/service/account"
	carwashsvc "github.com/you-humble/carwash/internal/service/carwash"
	jobconsumer "github.com/you-humble/carwash/internal/service/consumer/job"
	inventorysvc "github.com/you-humble/carwash/internal/service/inventory"
	"github.com/you-humble/carwash/internal/service/loyalty"
	mailsvc "github.com/you-humble/carwash/internal/service/mail"
	jobproducer "github.com/you-humble/carwash/internal/service/producer/job"
	reportsvc "github.com/you-humble/carwash/internal/service/report"
	reviewsvc "github.com/you-humble/carwash/internal/service/review"
	tgsvc "github.com/you-humble/carwash/internal/service/telegram"
	"github.com/you-humble/carwash/internal/service/workload"
	thttp "github.com/you-humble/carwash/internal/transport/http/v1"
	"github.com/you-humble/carwash/platform/closer"
	"github.com/you-humble/carwash/platform/db/migrator"
	"github.com/you-humble/carwash/platform/db/txmanager"
	"github.com/you-humble/carwash/platform/kafka"
	"github.com/you-humble/carwash/platform/kafka/consumer"
	"github.com/you-humble/carwash/platform/kafka/middleware"
	"github.com/you-humble/carwash/platform/kafka/producer"
	"github.com/you-humble/carwash/platform/logger"
)

type Converter interface {
	JobCompletedToPayload(ev model.JobCompletedEvent) ([]byte, error)
	PayloadToJobCompleted(data []byte) (model.JobCompletedEvent, error)
}

type TxManager interface {
	carwashsvc.TxManager
	inventorysvc.TxManager
}

type JobRepository interface {
	carwashsvc.JobRepository
	loyalty.CompletedCounter
	reportsvc.JobRepository
}

type AccountRepository interface {
	accountsvc.AccountRepository
	loyalty.CustomerRepository
	workload.EmployeeRepository
}

type TelegramService interface {
	jobconsumer.Notifier
	AddChatID(ctx context.Context, chatID int64)
}

type Handler interface {
	Register(r chi.Router)
}

type JobConsumer interface {
	RunJobCompletedConsume(ctx context.Context) error
}

type di struct {
	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator
	tx       TxManager

	accountRepo  AccountRepository
	jobRepo      JobRepository
	partRepo     inventorysvc.PartRepository
	purchaseRepo inventorysvc.PurchaseRepository
	reviewRepo   reviewsvc.ReviewRepository

	discounts carwashsvc.DiscountEngine
	workload  carwashsvc.WorkloadAggregator

	mailService carwashsvc.CompletionNotifier

	conv Converter

	syncProducer        sarama.SyncProducer
	jobCompletedSender  kafka.Producer
	jobProducer         carwashsvc.EventPublisher
	consumerGroup       sarama.ConsumerGroup
	jobCompletedReader  kafka.Consumer
	jobCompletedConsume JobConsumer

	tgBot     *bot.Bot
	tgClient  tgsvc.MessageSender
	tgService TelegramService

	carwashService   thttp.CarwashService
	accountService   thttp.AccountService
	inventoryService thttp.InventoryService
	reportService    thttp.ReportService
	reviewService    thttp.ReviewService

	handler Handler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) TxManager(ctx context.Context) TxManager {
	if d.tx == nil {
		d.tx = txmanager.New(d.DBPool(ctx), config.C().Postgres.LockTimeout())
	}

	return d.tx
}

func (d *di) AccountRepository(ctx context.Context) AccountRepository {
	if d.accountRepo == nil {
		d.accountRepo = accountrepo.NewAccountRepository(d.DBPool(ctx))
	}

	return d.accountRepo
}

func (d *di) JobRepository(ctx context.Context) JobRepository {
	if d.jobRepo == nil {
		d.jobRepo = jobrepo.NewJobRepository(d.DBPool(ctx))
	}

	return d.jobRepo
}

func (d *di) PartRepository(ctx context.Context) inventorysvc.PartRepository {
	if d.partRepo == nil {
		d.partRepo = partrepo.NewPartRepository(d.DBPool(ctx))
	}

	return d.partRepo
}

func (d *di) PurchaseRepository(ctx context.Context) inventorysvc.PurchaseRepository {
	if d.purchaseRepo == nil {
		d.purchaseRepo = purchaserepo.NewPurchaseRepository(d.DBPool(ctx))
	}

	return d.purchaseRepo
}

func (d *di) ReviewRepository(ctx context.Context) reviewsvc.ReviewRepository {
	if d.reviewRepo == nil {
		d.reviewRepo = reviewrepo.NewReviewRepository(d.DBPool(ctx))
	}

	return d.reviewRepo
}

func (d *di) DiscountEngine(ctx context.Context) carwashsvc.DiscountEngine {
	if d.discounts == nil {
		d.discounts = loyalty.NewEngine(
			d.AccountRepository(ctx),
			d.JobRepository(ctx),
			d.TxManager(ctx),
		)
	}

	return d.discounts
}

func (d *di) WorkloadAggregator(ctx context.Context) carwashsvc.WorkloadAggregator {
	if d.workload == nil {
		d.workload = workload.NewAggregator(d.AccountRepository(ctx), d.TxManager(ctx))
	}

	return d.workload
}

// MailService returns nil when SMTP is not configured.
func (d *di) MailService(ctx context.Context) carwashsvc.CompletionNotifier {
	cfg := config.C().SMTP
	if !cfg.Enabled() {
		return nil
	}

	if d.mailService == nil {
		d.mailService = mailsvc.NewMailService(smtp.NewClient(smtp.Config{
			Host:        cfg.Host(),
			Port:        cfg.Port(),
			Username:    cfg.Username(),
			Password:    cfg.Password(),
			From:        cfg.From(),
			FromName:    cfg.FromName(),
			ImplicitTLS: cfg.ImplicitTLS(),
			Timeout:     cfg.Timeout(),
		}))
	}

	return d.mailService
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.JobCompletedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) JobCompletedSender(ctx context.Context) kafka.Producer {
	if d.jobCompletedSender == nil {
		d.jobCompletedSender = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.JobCompletedTopic(),
			logger.L(),
		)
	}

	return d.jobCompletedSender
}

// JobProducer returns nil when Kafka is not configured.
func (d *di) JobProducer(ctx context.Context) carwashsvc.EventPublisher {
	if !config.C().Kafka.Enabled() {
		return nil
	}

	if d.jobProducer == nil {
		d.jobProducer = jobproducer.NewJobProducer(
			d.JobCompletedSender(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.jobProducer
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.JobCompletedConsumerGroupID(),
			cfg.Kafka.JobCompletedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) JobCompletedReader(ctx context.Context) kafka.Consumer {
	if d.jobCompletedReader == nil {
		d.jobCompletedReader = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.JobCompletedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.RequestID(),
			middleware.Logging(logger.L()),
		)
	}

	return d.jobCompletedReader
}

func (d *di) JobConsumer(ctx context.Context) JobConsumer {
	if d.jobCompletedConsume == nil {
		d.jobCompletedConsume = jobconsumer.NewJobConsumer(
			d.JobCompletedReader(ctx),
			d.KafkaConverter(ctx),
			d.TelegramService(ctx),
		)
	}

	return d.jobCompletedConsume
}

func (d *di) TelegramBot(_ context.Context) *bot.Bot {
	if d.tgBot == nil {
		b, err := bot.New(config.C().Telegram.BotToken())
		if err != nil {
			panic(fmt.Sprintf("failed to create telegram bot: %s\n", err.Error()))
		}
		closer.AddNamed("Telegram Bot", func(ctx context.Context) error {
			_, err := b.Close(ctx)
			return err
		})

		d.tgBot = b
	}

	return d.tgBot
}

func (d *di) TelegramClient(ctx context.Context) tgsvc.MessageSender {
	if d.tgClient == nil {
		d.tgClient = tgclient.NewClient(d.TelegramBot(ctx), models.ParseModeMarkdownV1)
	}

	return d.tgClient
}

func (d *di) TelegramService(ctx context.Context) TelegramService {
	if d.tgService == nil {
		d.tgService = tgsvc.NewTgService(d.TelegramClient(ctx))
	}

	return d.tgService
}

func (d *di) CarwashService(ctx context.Context) thttp.CarwashService {
	if d.carwashService == nil {
		cfg := config.C()

		d.carwashService = carwashsvc.NewCarwashService(
			d.JobRepository(ctx),
			d.AccountRepository(ctx),
			d.DiscountEngine(ctx),
			d.WorkloadAggregator(ctx),
			d.MailService(ctx),
			d.JobProducer(ctx),
			d.TxManager(ctx),
			now(cfg.Business.Location()),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.carwashService
}

func (d *di) AccountService(ctx context.Context) thttp.AccountService {
	if d.accountService == nil {
		cfg := config.C()
		d.accountService = accountsvc.NewAccountService(
			d.AccountRepository(ctx),
			cfg.Business.BcryptCost(),
			now(cfg.Business.Location()),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.accountService
}

func (d *di) InventoryService(ctx context.Context) thttp.InventoryService {
	if d.inventoryService == nil {
		cfg := config.C()
		d.inventoryService = inventorysvc.NewInventoryService(
			d.PartRepository(ctx),
			d.PurchaseRepository(ctx),
			d.AccountRepository(ctx),
			d.TxManager(ctx),
			now(cfg.Business.Location()),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.inventoryService
}

func (d *di) ReportService(ctx context.Context) thttp.ReportService {
	if d.reportService == nil {
		cfg := config.C()
		d.reportService = reportsvc.NewReportService(
			d.JobRepository(ctx),
			now(cfg.Business.Location()),
			cfg.Business.Location(),
			cfg.Server.DBReadTimeout(),
		)
	}

	return d.reportService
}

func (d *di) ReviewService(ctx context.Context) thttp.ReviewService {
	if d.reviewService == nil {
		cfg := config.C()
		d.reviewService = reviewsvc.NewReviewService(
			d.ReviewRepository(ctx),
			now(cfg.Business.Location()),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.reviewService
}

func (d *di) Handler(ctx context.Context) Handler {
	if d.handler == nil {
		d.handler = thttp.NewHandler(
			d.CarwashService(ctx),
			d.AccountService(ctx),
			d.InventoryService(ctx),
			d.ReportService(ctx),
			d.ReviewService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

func now(loc *time.Location) func() time.Time {
	return func() time.Time { return time.Now().In(loc) }
}
