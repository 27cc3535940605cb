package bootstrap

import (
	"context"
	"time"

	"noteboard-be/internal/config"
	"noteboard-be/internal/controller"
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/pkg/ratelimit"
	"noteboard-be/internal/pkg/security"
	"noteboard-be/internal/pkg/serverutils"
	"noteboard-be/internal/repository/unitofwork"
	"noteboard-be/internal/service"

	pktNats "noteboard-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
)

const limiterIdleTTL = 10 * time.Minute

type Container struct {
	// Controllers
	HelloController    controller.IHelloController
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	NotebookController controller.INotebookController
	NoteController     controller.INoteController
	TagController      controller.ITagController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

// NewContainer wires services over the given repository factory. NATS and
// Redis are optional: when they cannot be reached the container logs a warning
// and falls back to in-process behaviour.
func NewContainer(ctx context.Context, cfg *config.Config, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) *Container {
	c := &Container{Logger: log}

	// Event Bus
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger.NewWatermillAdapter(log))
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var forwarder service.EventForwarder
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(ctx, cfg.App.NatsURL)
		if err != nil {
			log.Warn("Bootstrap", "Failed to connect to NATS, events stay in-process", map[string]interface{}{
				"url":   cfg.App.NatsURL,
				"error": err.Error(),
			})
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	publisherService := service.NewPublisherService(pubSub, cfg.App.EventsTopic, forwarder, log)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.App.EventsTopic, log)

	// Security
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	jwtManager := security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services
	authService := service.NewAuthService(
		uowFactory,
		hasher,
		jwtManager,
		publisherService,
		log,
		cfg.Auth.LegacyPlaintextEnabled,
	)
	userService := service.NewUserService(uowFactory, hasher, publisherService)
	notebookService := service.NewNotebookService(uowFactory)
	noteService := service.NewNoteService(uowFactory)
	tagService := service.NewTagService(uowFactory, publisherService)

	// Controllers
	c.HelloController = controller.NewHelloController()
	c.AuthController = controller.NewAuthController(authService, userService, c.loginLimiter(ctx, cfg))
	c.UserController = controller.NewUserController(userService, jwtManager)
	c.NotebookController = controller.NewNotebookController(notebookService, jwtManager)
	c.NoteController = controller.NewNoteController(noteService, jwtManager)
	c.TagController = controller.NewTagController(tagService, jwtManager)

	return c
}

func (c *Container) loginLimiter(ctx context.Context, cfg *config.Config) fiber.Handler {
	rl := cfg.RateLimit
	var limiter ratelimit.Limiter = ratelimit.NewKeyedRateLimiter(rl.LoginRPS, rl.LoginBurst, limiterIdleTTL)

	if rl.Backend == config.RateLimitRedis {
		rdb, err := ratelimit.NewRedisClient(cfg.App.RedisURL)
		if err == nil {
			err = rdb.Ping(ctx).Err()
		}
		if err != nil {
			if rdb != nil {
				_ = rdb.Close()
			}
			c.Logger.Warn("Bootstrap", "Redis unavailable, using in-memory rate limiter", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			limiter = ratelimit.NewRedisLimiter(rdb, "noteboard:login", int(rl.BurstWindowMax()), rl.Window)
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}

	return serverutils.RateLimit(limiter, c.Logger)
}

// Close releases bus and cache connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
