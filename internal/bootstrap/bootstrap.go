package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"subgate/internal/api"
	authHandler "subgate/internal/auth/handler"
	authProcessor "subgate/internal/auth/processor"
	"subgate/internal/bot"
	campaignHandler "subgate/internal/campaign/handler"
	campaignProcessor "subgate/internal/campaign/processor"
	kafkaClient "subgate/internal/clients/kafka"
	"subgate/internal/clients/redis"
	"subgate/internal/config"
	"subgate/internal/conversation"
	"subgate/internal/draft"
	"subgate/internal/events"
	joinrequest "subgate/internal/joinrequest/processor"
	"subgate/internal/notifier"
	"subgate/internal/observability"
	"subgate/internal/platform"
	"subgate/internal/platform/telegram"
	"subgate/internal/ratelimit"
	"subgate/internal/store"
	"subgate/internal/verification"
	webhookHandler "subgate/internal/webhooks/handler"

	"github.com/gin-gonic/gin"
)

// webhookBuffer bounds how many webhook updates may wait for the dispatcher.
const webhookBuffer = 64

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store    store.Store
	Logger   *observability.Logger
	Platform *telegram.Client

	// Bot
	Dispatcher *bot.Dispatcher
	// Events carries webhook updates to the dispatcher. Nil in polling mode.
	Events chan platform.Event

	// Handlers
	AuthHandler     authHandler.Handler
	CampaignHandler campaignHandler.Handler
	WebhookHandler  *webhookHandler.Handler
	APIRateLimit    gin.HandlerFunc
	HealthChecks    map[string]api.HealthCheck

	// Clients (for cleanup)
	Redis         *redis.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.Migrate(ctx); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize clients
	deps.Platform, err = telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.APIRate, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}

	deps.Redis, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Events are dropped when no brokers are configured
	var producer events.EventProducer
	if brokers := splitBrokers(cfg.Kafka.Brokers); len(brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	}
	publisher := events.NewPublisher(producer, logger)

	// Initialize rate limiters
	userCheckLimit, err := ratelimit.NewService(cfg.RateLimit.UserCheck, "user_check", deps.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create user check rate limiter: %w", err)
	}
	apiLimit, err := ratelimit.NewService(cfg.RateLimit.API, "api", deps.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create api rate limiter: %w", err)
	}
	deps.APIRateLimit = apiLimit.Middleware()

	// Initialize the gate
	verifier := verification.New(deps.Platform, logger)
	adminNotifier := notifier.NewAdminNotifier(deps.Platform, cfg.Telegram.AdminChatIDs, publisher, logger)
	joinRequests := joinrequest.New(&deps.Store, deps.Platform, verifier, userCheckLimit, adminNotifier, publisher, logger)

	// Initialize the owner dialogue
	drafts := draft.New(&deps.Store, publisher, logger)
	controller := conversation.New(drafts, &deps.Store, deps.Platform, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	deps.Dispatcher = bot.New(deps.Platform, &joinRequests, controller, &authProc, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(&deps.Store, deps.Platform.BotUsername(), logger)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	if cfg.Telegram.Mode == config.TelegramModeWebhook {
		deps.Events = make(chan platform.Event, webhookBuffer)
		deps.WebhookHandler = webhookHandler.New(cfg.Telegram.WebhookSecret, deps.Events, logger)
		if err := deps.Platform.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
			deps.Cleanup()
			return nil, fmt.Errorf("failed to register webhook: %w", err)
		}
	}

	deps.HealthChecks = map[string]api.HealthCheck{
		"database": deps.Store.Ping,
	}
	if deps.Redis.IsEnabled() {
		deps.HealthChecks["redis"] = deps.Redis.Ping
	}

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
