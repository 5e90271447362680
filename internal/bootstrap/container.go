package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/LionGx2004/cannatracker/internal/config"
	"github.com/LionGx2004/cannatracker/internal/controller"
	"github.com/LionGx2004/cannatracker/internal/identity"
	"github.com/LionGx2004/cannatracker/internal/pkg/logger"
	"github.com/LionGx2004/cannatracker/internal/pkg/serverutils"
	"github.com/LionGx2004/cannatracker/internal/repository/implementation"
	"github.com/LionGx2004/cannatracker/internal/service"
	"github.com/LionGx2004/cannatracker/pkg/llm/factory"
	pktNats "github.com/LionGx2004/cannatracker/pkg/nats"
	"github.com/LionGx2004/cannatracker/pkg/supaquery"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const sessionEventsTopic = "session-events"

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	SessionController controller.ISessionController
	StrainController  controller.IStrainController

	// Middleware, built here so the server stays wiring-free
	AuthMiddleware      fiber.Handler
	RateLimitMiddleware fiber.Handler

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Identity
	var verifier identity.Verifier
	if cfg.Supabase.JWTSecret != "" {
		verifier = identity.NewJWTVerifier(cfg.Supabase.JWTSecret)
		log.Println("[INFO] Using identity verifier: local JWT")
	} else {
		gotrueVerifier, err := identity.NewGotrueVerifier(cfg.Supabase.URL, cfg.Supabase.AnonKey)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize identity verifier: %v", err)
		}
		verifier = gotrueVerifier
		log.Println("[INFO] Using identity verifier: gotrue")
	}

	// 3. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS bridge is optional. Without it events stay on the in-process bus.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
		} else {
			natsPub = pub
		}
	}

	// Redis backs the chat rate limiter. Without it the limiter passes
	// everything through. The store stays a nil interface when redis is not
	// configured so the middleware sees it as disabled.
	var limiterStore serverutils.RateLimitStore
	if cfg.App.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, rate limiting disabled: %v", err)
		} else {
			redisClient := redis.NewClient(opts)
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := redisClient.Ping(pingCtx).Err(); err != nil {
				log.Printf("[WARN] Redis unreachable, rate limiting degraded: %v", err)
			}
			cancel()
			limiterStore = redisClient
		}
	}

	// 4. AI provider
	llmProvider, err := factory.NewStreamingProvider(cfg.Ai)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM provider: %s", cfg.Ai.Provider)

	// 5. Repositories and store clients
	sessionRepo := implementation.NewSessionRepository(db)
	strainRepo := implementation.NewStrainRepository(db)
	supaClient := supaquery.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	refCache := cache.New(5*time.Minute, 10*time.Minute)

	// 6. Services
	publisherService := service.NewPublisherService(sessionEventsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, sessionEventsTopic, natsPub, sysLogger)
	chatService := service.NewChatService(supaClient, llmProvider, refCache, cfg.Chat, sysLogger)
	sessionService := service.NewSessionService(sessionRepo, publisherService, sysLogger)
	strainService := service.NewStrainService(strainRepo)

	// 7. Controllers
	chatController := controller.NewChatController(chatService, sysLogger)
	sessionController := controller.NewSessionController(sessionService)
	strainController := controller.NewStrainController(strainService)

	return &Container{
		ChatController:    chatController,
		SessionController: sessionController,
		StrainController:  strainController,

		AuthMiddleware: serverutils.AuthMiddleware(verifier),
		RateLimitMiddleware: serverutils.RateLimitMiddleware(
			limiterStore,
			cfg.Chat.RateLimit,
			time.Duration(cfg.Chat.RateWindowSeconds)*time.Second,
			sysLogger,
		),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
