package cmd

import (
	"log/slog"

	httpadapter "ootdverse/internal/adapters/in/http"
	"ootdverse/internal/adapters/out/kafka/orderpublisher"
	"ootdverse/internal/adapters/out/postgres"
	"ootdverse/internal/adapters/out/postgres/addressrepo"
	"ootdverse/internal/adapters/out/postgres/listingrepo"
	"ootdverse/internal/adapters/out/postgres/orderrepo"
	"ootdverse/internal/core/application/usecases/commands"
	"ootdverse/internal/core/application/usecases/queries"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/core/domain/services"
	"ootdverse/internal/core/ports"
	"ootdverse/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	resolver   *services.ShippingResolver
	publisher  *orderpublisher.Publisher
	registry   *prometheus.Registry
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var (
		publisher      *orderpublisher.Publisher
		eventPublisher ports.EventPublisher
	)
	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		publisher = orderpublisher.New(brokers, cfg.KafkaOrderChangedTopic)
		eventPublisher = publisher
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, eventPublisher, logger),
		resolver:   services.NewShippingResolver(shipping.DefaultRateTable(), newDistanceEstimator(cfg.DistanceMode), logger),
		publisher:  publisher,
		registry:   registry,
		logger:     logger,
	}
}

func newDistanceEstimator(mode string) services.DistanceEstimator {
	if mode == DistanceModeHaversine {
		return services.NewHaversineDistanceEstimator()
	}
	return services.FixedDistanceEstimator{}
}

// Close releases the Kafka writer.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.resolver)
}

func (c *CompositionRoot) CreatePerformOrderActionCommandHandler() commands.PerformOrderActionCommandHandler {
	return commands.NewPerformOrderActionCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateExpireUnpaidOrdersCommandHandler() commands.ExpireUnpaidOrdersCommandHandler {
	return commands.NewExpireUnpaidOrdersCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateGetOrderActionsQueryHandler() queries.GetOrderActionsQueryHandler {
	return queries.NewGetOrderActionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShippingOptionsQueryHandler() queries.GetShippingOptionsQueryHandler {
	return queries.NewGetShippingOptionsQueryHandler(
		listingrepo.NewGormListingRepository(c.gormDB),
		addressrepo.NewGormAddressRepository(c.gormDB),
		c.resolver,
	)
}

func (c *CompositionRoot) CreateValidateShippingQueryHandler() queries.ValidateShippingQueryHandler {
	return queries.NewValidateShippingQueryHandler(listingrepo.NewGormListingRepository(c.gormDB), c.resolver)
}

func (c *CompositionRoot) CreateQuoteShippingFeeQueryHandler() queries.QuoteShippingFeeQueryHandler {
	return queries.NewQuoteShippingFeeQueryHandler(c.resolver)
}

// CreateRouter wires every use case into the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	metrics := httpadapter.NewMetrics(c.registry)
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		PerformOrderAction: c.CreatePerformOrderActionCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		RecordPayment:      c.CreateRecordPaymentCommandHandler(),
		RateOrder:          c.CreateRateOrderCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetOrderActions:    c.CreateGetOrderActionsQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrderStatistics: c.CreateGetOrderStatisticsQueryHandler(),
		GetShippingOptions: c.CreateGetShippingOptionsQueryHandler(),
		ValidateShipping:   c.CreateValidateShippingQueryHandler(),
		QuoteShippingFee:   c.CreateQuoteShippingFeeQueryHandler(),
	}, metrics, c.logger)

	return httpadapter.NewRouter(server, metrics, c.registry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	handler := c.CreateExpireUnpaidOrdersCommandHandler()
	expiry, err := jobs.NewUnpaidOrderExpiryJob(&handler, jobs.ExpiryConfig{
		Schedule: c.cfg.ExpirySchedule,
		TTL:      c.cfg.UnpaidOrderTTL,
	}, jobs.NewMetrics(c.registry), c.logger)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(expiry), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
