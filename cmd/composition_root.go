package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "sales/internal/adapters/in/http"
	"sales/internal/adapters/out/inproc"
	"sales/internal/adapters/out/kafka"
	"sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/postgres/customerrepo"
	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/redislock"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
	"sales/internal/jobs"
	"sales/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// CompositionRoot wires configuration and infrastructure into use case handlers.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	ids        kernel.IDGenerator
	clock      kernel.Clock
	locker     ports.OrderLocker
	publisher  ports.OrderEventPublisher
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	closers    []func() error
}

// NewCompositionRoot picks the Redis locker when REDIS_URL is set and the Kafka
// publisher when KAFKA_HOST is set; otherwise it falls back to in-process
// locking and logged events.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		ids:        kernel.RandomIDGenerator{},
		clock:      kernel.SystemClock{},
		registry:   registry,
		metrics:    metrics.New(registry),
	}

	if cfg.RedisURL != "" {
		client, err := redislock.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, client.Close)
		c.locker = redislock.NewOrderLocker(client, c.ids)
		logger.Info("Using Redis order locks")
	} else {
		c.locker = inproc.NewOrderLocker()
		logger.Info("REDIS_URL not set, using in-process order locks")
	}

	if cfg.KafkaHost != "" {
		client, err := kafka.NewClient(cfg.KafkaHost)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("kafka client: %w", err)
		}
		c.closers = append(c.closers, func() error {
			client.Close()
			return nil
		})
		c.publisher = kafka.NewOrderChangedPublisher(client, cfg.KafkaOrderChangedTopic)
		logger.Info("Publishing order events to Kafka", "topic", cfg.KafkaOrderChangedTopic)
	} else {
		c.publisher = kafka.NewLogPublisher(logger)
		logger.Info("KAFKA_HOST not set, order events are logged only")
	}

	return c, nil
}

// Close releases the Redis and Kafka clients.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

// CreateCreateOrderCommandHandler creates the order creation handler.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.ids, c.clock, c.publisher, c.metrics, c.logger)
}

// CreateAddOrderItemCommandHandler creates the item handler.
func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory(), c.locker, c.ids, c.clock, c.publisher, c.metrics, c.logger)
}

// CreateChangeOrderStateCommandHandler creates the transition handler.
func (c *CompositionRoot) CreateChangeOrderStateCommandHandler() commands.ChangeOrderStateCommandHandler {
	return commands.NewChangeOrderStateCommandHandler(c.orderUoWFactory(), c.locker, c.ids, c.clock, c.publisher, c.metrics, c.logger)
}

// CreateCreateCustomerCommandHandler creates the customer registration handler.
func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.ids, c.metrics)
}

// CreateExpirePendingOrdersCommandHandler creates the expiry handler.
func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	return commands.NewExpirePendingOrdersCommandHandler(c.orderUoWFactory(), c.locker, c.ids, c.clock, c.publisher, c.metrics, c.logger)
}

// CreateGetOrderQueryHandler creates the order details handler.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

// CreateListOrdersQueryHandler creates the order summaries handler.
func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// CreateGetCustomerQueryHandler creates the customer lookup handler.
func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(customerrepo.NewGormCustomerRepository(c.gormDB))
}

// NewHTTPServer wires every handler into the echo router.
func (c *CompositionRoot) NewHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		AddOrderItem:     c.CreateAddOrderItemCommandHandler(),
		ChangeOrderState: c.CreateChangeOrderStateCommandHandler(),
		CreateCustomer:   c.CreateCreateCustomerCommandHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		ListOrders:       c.CreateListOrdersQueryHandler(),
		GetCustomer:      c.CreateGetCustomerQueryHandler(),
	}, c.cfg.DefaultCurrency, c.logger)

	return httpin.NewRouter(server, httpin.RouterConfig{
		Logger:   c.logger,
		Metrics:  c.metrics,
		Gatherer: c.registry,
	})
}

// NewJobManager registers the background jobs enabled by configuration.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.logger,
		jobs.NewExpirePendingOrdersJob(
			c.CreateExpirePendingOrdersCommandHandler(),
			c.cfg.ExpirePendingOrdersSchedule,
			c.cfg.PendingOrderTTL,
			c.logger,
		),
	)
}

// FuncOrderUoWFactory adapts a function to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create calls f.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncCustomerUoWFactory adapts a function to commands.CustomerUoWFactory.
type FuncCustomerUoWFactory func() commands.CustomerUoW

// Create calls f.
func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
