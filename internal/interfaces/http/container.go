package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	entitlementApp "github.com/lumenworks/backoffice/internal/application/entitlement"
	notificationApp "github.com/lumenworks/backoffice/internal/application/notification"
	notificationUsecases "github.com/lumenworks/backoffice/internal/application/notification/usecases"
	productApp "github.com/lumenworks/backoffice/internal/application/product"
	quotationApp "github.com/lumenworks/backoffice/internal/application/quotation"
	tenantApp "github.com/lumenworks/backoffice/internal/application/tenant"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/infrastructure/auth"
	"github.com/lumenworks/backoffice/internal/infrastructure/cache"
	"github.com/lumenworks/backoffice/internal/infrastructure/config"
	"github.com/lumenworks/backoffice/internal/infrastructure/email"
	"github.com/lumenworks/backoffice/internal/infrastructure/metrics"
	"github.com/lumenworks/backoffice/internal/infrastructure/permission"
	"github.com/lumenworks/backoffice/internal/infrastructure/pubsub"
	"github.com/lumenworks/backoffice/internal/infrastructure/ratelimit"
	"github.com/lumenworks/backoffice/internal/interfaces/http/handlers"
	"github.com/lumenworks/backoffice/internal/interfaces/http/middleware"
	"github.com/lumenworks/backoffice/internal/shared/db"
	"github.com/lumenworks/backoffice/internal/shared/goroutine"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/services/markdown"
)

const eventBufferSize = 256

// Container holds all infrastructure components, repositories, application
// services, handlers and middlewares, and tears them down in Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos     *repositories
	txManager *db.TransactionManager

	// Event fan-out and side-effect adapters
	dispatcher  *events.InMemoryEventDispatcher
	verifyCache *cache.RedisVerifyCache
	limiter     ratelimit.RateLimiter
	mailer      email.Sender
	broker      pubsub.EventPublisher

	// Auth
	jwtSvc   *auth.JWTService
	enforcer *permission.Enforcer

	// Application services
	entitlementService  *entitlementApp.ServiceDDD
	productService      *productApp.ServiceDDD
	tenantService       *tenantApp.ServiceDDD
	quotationService    *quotationApp.ServiceDDD
	notificationService *notificationApp.ServiceDDD

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	accessLinkLimiter    *middleware.RateLimiter

	stopBackground context.CancelFunc
}

// NewContainer wires everything together. The event dispatcher is started
// here so use cases can publish as soon as the router serves traffic.
func NewContainer(ctx context.Context, cfg *config.Config, database *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Messaging
	if err := c.initInfrastructure(ctx); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 2: Auth - JWT, casbin policies
	if err := c.initAuth(); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 3: Application services and event subscriptions
	if err := c.initServices(); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 4: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	redisClient, err := cache.NewRedisClient(ctx, &c.cfg.Redis)
	if err != nil {
		return err
	}
	c.redis = redisClient
	c.log.Infow("redis connection established", "address", c.cfg.Redis.GetAddr())

	c.repos = newRepositories(c.db, c.log)
	c.txManager = db.NewTransactionManager(c.db)
	c.verifyCache = cache.NewRedisVerifyCache(c.redis, c.cfg.Entitlement.VerifyCacheTTL(), c.log.Named("cache.verify"))
	c.limiter = ratelimit.NewRedisRateLimiter(c.redis)

	if c.cfg.Email.Enabled {
		c.mailer = email.NewSMTPEmailService(email.SMTPConfigFrom(&c.cfg.Email), markdown.NewRenderer())
	} else {
		c.mailer = email.NewNoopSender(c.log.Named("email"))
	}

	c.broker = pubsub.NoopPublisher{}
	if c.cfg.RabbitMQ.Enabled {
		publisher, err := pubsub.NewRabbitMQPublisher(ctx, &c.cfg.RabbitMQ, c.log.Named("pubsub"))
		if err != nil {
			// Notifications are still persisted and emailed without a broker.
			c.log.Warnw("rabbitmq unavailable, events will not be forwarded", "error", err)
		} else {
			c.broker = publisher
		}
	}

	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, c.log.Named("events"))
	if err := c.dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}

	if c.cfg.Metrics.Enabled {
		sqlDB, err := c.db.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		bgCtx, cancel := context.WithCancel(context.Background())
		c.stopBackground = cancel
		goroutine.SafeGo(c.log, "db-stats-collector", func() {
			metrics.StartDBStatsCollector(bgCtx, sqlDB, 15*time.Second)
		})
	}
	return nil
}

func (c *Container) initAuth() error {
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(c.db, c.log.Named("permission"))
	if err != nil {
		return err
	}
	if err := permission.InitDefaultPolicies(enforcer, c.log); err != nil {
		return err
	}
	c.enforcer = enforcer
	return nil
}

func (c *Container) initServices() error {
	r := c.repos

	c.entitlementService = c.newEntitlementService()
	c.productService = productApp.NewServiceDDD(r.productRepo, r.entitlementRepo, c.txManager, c.verifyCache, c.log.Named("product"))
	c.tenantService = tenantApp.NewServiceDDD(r.tenantRepo, c.log.Named("tenant"))
	c.quotationService = quotationApp.NewServiceDDD(r.quotationRepo, r.tenantRepo, c.dispatcher, c.log.Named("quotation"))

	dispatch := notificationUsecases.NewDispatchNotificationUseCase(
		r.notificationRepo, r.tenantRepo, r.productRepo, c.mailer, c.broker, c.log.Named("notification.dispatch"))
	c.notificationService = notificationApp.NewServiceDDD(r.notificationRepo, dispatch, c.log.Named("notification"))
	if err := c.notificationService.Subscribe(c.dispatcher); err != nil {
		return fmt.Errorf("failed to subscribe notification dispatcher: %w", err)
	}
	return nil
}

func (c *Container) initHandlers() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.accessLinkLimiter = middleware.NewRateLimiter(c.limiter, "access_link", ratelimit.Limits{
		RequestsPerMinute: c.cfg.RateLimit.AccessLinkPerMinute,
	}, c.log)

	c.hdlrs = &allHandlers{
		entitlementHandler:  handlers.NewEntitlementHandler(c.entitlementService, c.log),
		accessHandler:       handlers.NewAccessHandler(c.entitlementService, c.log),
		productHandler:      handlers.NewProductHandler(c.productService, c.log),
		tenantHandler:       handlers.NewTenantHandler(c.tenantService, c.log),
		quotationHandler:    handlers.NewQuotationHandler(c.quotationService, c.log),
		notificationHandler: handlers.NewNotificationHandler(c.notificationService, c.log),
		healthHandler: handlers.NewHealthHandler(map[string]handlers.Pinger{
			"database": handlers.PingerFunc(func(ctx context.Context) error {
				sqlDB, err := c.db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			}),
			"redis": handlers.PingerFunc(func(ctx context.Context) error {
				return c.redis.Ping(ctx).Err()
			}),
		}, c.log),
	}
}

// Shutdown releases background workers and connections. Safe on a partially
// built container.
func (c *Container) Shutdown() {
	if c.stopBackground != nil {
		c.stopBackground()
	}
	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}
	if c.broker != nil {
		if err := c.broker.Close(); err != nil {
			c.log.Errorw("failed to close event broker", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
