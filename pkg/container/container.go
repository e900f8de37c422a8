package container

import (
	"context"
	"fmt"
	"time"

	"booktrade-backend/internal/config"
	infracache "booktrade-backend/internal/infrastructure/cache"
	"booktrade-backend/internal/infrastructure/database"
	"booktrade-backend/pkg/cache"
	pkgdatabase "booktrade-backend/pkg/database"
	"booktrade-backend/pkg/logger"

	bookHandler "booktrade-backend/internal/domains/book/handler"
	bookRepo "booktrade-backend/internal/domains/book/repository"
	bookService "booktrade-backend/internal/domains/book/service"
	cartHandler "booktrade-backend/internal/domains/cart/handler"
	cartRepo "booktrade-backend/internal/domains/cart/repository"
	cartService "booktrade-backend/internal/domains/cart/service"
	"booktrade-backend/internal/domains/checkout/gateway/stripe"
	checkoutHandler "booktrade-backend/internal/domains/checkout/handler"
	checkoutService "booktrade-backend/internal/domains/checkout/service"
	messageHandler "booktrade-backend/internal/domains/message/handler"
	messageRepo "booktrade-backend/internal/domains/message/repository"
	messageService "booktrade-backend/internal/domains/message/service"
	orderHandler "booktrade-backend/internal/domains/order/handler"
	orderRepo "booktrade-backend/internal/domains/order/repository"
	orderService "booktrade-backend/internal/domains/order/service"
	reviewHandler "booktrade-backend/internal/domains/review/handler"
	reviewRepo "booktrade-backend/internal/domains/review/repository"
	reviewService "booktrade-backend/internal/domains/review/service"
	tradeHandler "booktrade-backend/internal/domains/trade/handler"
	tradeRepo "booktrade-backend/internal/domains/trade/repository"
	tradeService "booktrade-backend/internal/domains/trade/service"
	userHandler "booktrade-backend/internal/domains/user/handler"
	userRepo "booktrade-backend/internal/domains/user/repository"
	userService "booktrade-backend/internal/domains/user/service"
)

// =====================================================
// CONTAINER
// =====================================================

// Container is the root of the dependency graph. Initialization order:
// config → infrastructure → repositories → services → handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	// StoreDegraded is set when the database was unreachable at boot
	// and the degraded policy allowed startup anyway. The router mounts
	// a guard on data routes in that case.
	StoreDegraded bool

	UserRepo    userRepo.UserRepository
	BookRepo    bookRepo.BookRepository
	CartRepo    cartRepo.CartRepository
	OrderRepo   orderRepo.OrderRepository
	ReviewRepo  reviewRepo.ReviewRepository
	TradeRepo   tradeRepo.TradeRepository
	MessageRepo messageRepo.MessageRepository

	UserService      userService.UserService
	FavoritesService userService.FavoritesService
	BookService      bookService.BookService
	CartService      cartService.CartService
	OrderService     orderService.OrderService
	ReviewService    reviewService.ReviewService
	TradeService     tradeService.TradeService
	MessageService   messageService.MessageService
	CheckoutService  checkoutService.CheckoutService

	UserHandler      *userHandler.UserHandler
	FavoritesHandler *userHandler.FavoritesHandler
	BookHandler      *bookHandler.BookHandler
	CartHandler      *cartHandler.CartHandler
	OrderHandler     *orderHandler.OrderHandler
	ReviewHandler    *reviewHandler.ReviewHandler
	TradeHandler     *tradeHandler.TradeHandler
	MessageHandler   *messageHandler.MessageHandler
	CheckoutHandler  *checkoutHandler.CheckoutHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	// Step 2: Initialize database
	if err := c.initDatabase(); err != nil {
		return nil, err
	}

	// Step 3: Initialize cache
	c.initCache()

	// Step 4: Initialize repositories
	c.initRepositories()

	// Step 5: Initialize services
	c.initServices()

	// Step 6: Initialize handlers
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		// Under the degraded policy an unreachable store is survivable:
		// the router guards data routes with 503 until it comes back.
		if c.Config.App.BootPolicy == config.BootPolicyDegraded {
			logger.Error("database unreachable, starting degraded", err)
			if poolErr := db.EnsurePool(context.Background()); poolErr != nil {
				return fmt.Errorf("failed to prepare database pool: %w", poolErr)
			}
			c.StoreDegraded = true
			c.DB = db
			return nil
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	c.DB = db
	logger.Info("database connected", nil)
	return nil
}

func (c *Container) initCache() {
	redisCache := infracache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	// Redis failure is not critical; fall back to a no-op cache.
	if rc, ok := redisCache.(*infracache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed, caching disabled", err)
			c.Cache = infracache.NewNoopCache()
			return
		}
	}

	c.Cache = redisCache
	logger.Info("redis connected", nil)
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.BookRepo = bookRepo.NewPostgresBookRepository(pool)
	c.CartRepo = cartRepo.NewPostgresCartRepository(pool)
	c.OrderRepo = orderRepo.NewPostgresOrderRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
	c.TradeRepo = tradeRepo.NewPostgresTradeRepository(pool)
	c.MessageRepo = messageRepo.NewPostgresMessageRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo)
	c.FavoritesService = userService.NewFavoritesService(c.UserRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Cache)
	c.CartService = cartService.NewCartService(c.CartRepo, c.UserRepo, c.BookRepo)
	c.OrderService = orderService.NewOrderService(c.OrderRepo, c.CartRepo, c.UserRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.UserRepo)
	c.TradeService = tradeService.NewTradeService(
		c.TradeRepo,
		c.OrderRepo,
		c.UserRepo,
		c.BookRepo,
		pkgdatabase.NewTransactor(c.DB.Pool),
		c.Config.Trade.StrictTransitions,
	)
	c.MessageService = messageService.NewMessageService(c.MessageRepo, c.UserRepo)

	gw, err := stripe.NewClient(stripe.NewConfig(
		c.Config.Checkout.SecretKey,
		c.Config.Checkout.APIURL,
		c.Config.Checkout.Currency,
	))
	if err != nil {
		// Checkout stays down without credentials; everything else works.
		logger.Warn("checkout gateway disabled", err)
	}
	c.CheckoutService = checkoutService.NewCheckoutService(
		gw,
		c.Config.Checkout.Currency,
		c.Config.Checkout.SuccessURL,
		c.Config.Checkout.CancelURL,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.FavoritesHandler = userHandler.NewFavoritesHandler(c.FavoritesService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.CartHandler = cartHandler.NewCartHandler(c.CartService)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.TradeHandler = tradeHandler.NewTradeHandler(c.TradeService)
	c.MessageHandler = messageHandler.NewMessageHandler(c.MessageService)
	c.CheckoutHandler = checkoutHandler.NewCheckoutHandler(c.CheckoutService)
}

// Cleanup closes infrastructure connections on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infracache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis", err)
		}
	}
	logger.Info("container cleaned up", nil)
}
