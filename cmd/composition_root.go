package cmd

import (
	"errors"
	"log/slog"
	"time"

	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/kafka"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/statisticsrepo"
	rediscache "laundry/internal/adapters/out/redis"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

// statisticsTTL is the lifetime of a cached dashboard snapshot.
const statisticsTTL = time.Minute

type CompositionRoot struct {
	configs Config
	logger  *slog.Logger

	gormDB      *gorm.DB
	redisClient *redis.Client
	kafkaWriter *kafkago.Writer

	uowFactory       *postgres.GormUnitOfWorkFactory
	statisticsReader *statisticsrepo.GormStatisticsReader
	statisticsCache  *rediscache.StatisticsCache
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		configs:          configs,
		logger:           logger,
		gormDB:           gormDB,
		redisClient:      redis.NewClient(&redis.Options{Addr: configs.RedisAddr}),
		statisticsReader: statisticsrepo.NewGormStatisticsReader(gormDB),
	}
	c.statisticsCache = rediscache.NewStatisticsCache(c.redisClient, statisticsTTL)

	var publisher ports.EventPublisher
	if brokers := configs.KafkaBrokers(); len(brokers) > 0 {
		c.kafkaWriter = kafka.NewWriter(brokers, configs.KafkaOrderChangedTopic)
		publisher = kafka.NewOrderEventPublisher(c.kafkaWriter)
	} else {
		logger.Warn("KAFKA_HOST is empty, order events will not be published")
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)

	return c
}

// Close releases the connections opened by the root.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.kafkaWriter != nil {
		errList = append(errList, c.kafkaWriter.Close())
	}
	errList = append(errList, c.redisClient.Close())
	if sqlDB, err := c.gormDB.DB(); err == nil {
		errList = append(errList, sqlDB.Close())
	}
	return errors.Join(errList...)
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
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	return commands.NewPickUpOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateFinalizePaymentCommandHandler() commands.FinalizePaymentCommandHandler {
	return commands.NewFinalizePaymentCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateRefreshDashboardCommandHandler() commands.RefreshDashboardCommandHandler {
	return commands.NewRefreshDashboardCommandHandler(c.statisticsReader, c.statisticsCache)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.statisticsReader, c.statisticsCache, c.logger)
}

func (c *CompositionRoot) CreateGetRecentActivitiesQueryHandler() queries.GetRecentActivitiesQueryHandler {
	return queries.NewGetRecentActivitiesQueryHandler(c.gormDB)
}

// CreateGetAnnualStatisticsQueryHandler reports calendar years in the
// server's local time zone, like the dashboard's "today".
func (c *CompositionRoot) CreateGetAnnualStatisticsQueryHandler() queries.GetAnnualStatisticsQueryHandler {
	return queries.NewGetAnnualStatisticsQueryHandler(c.gormDB, time.Local)
}

// HTTPHandlers collects the use cases served by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		EditOrder:       c.CreateEditOrderCommandHandler(),
		PickUpOrder:     c.CreatePickUpOrderCommandHandler(),
		DeliverOrder:    c.CreateDeliverOrderCommandHandler(),
		FinalizePayment: c.CreateFinalizePaymentCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		DeleteOrder:     c.CreateDeleteOrderCommandHandler(),

		GetOrder:            c.CreateGetOrderQueryHandler(),
		ListOrders:          c.CreateListOrdersQueryHandler(),
		GetOrderStatistics:  c.CreateGetOrderStatisticsQueryHandler(),
		GetAnnualStatistics: c.CreateGetAnnualStatisticsQueryHandler(),
		GetRecentActivities: c.CreateGetRecentActivitiesQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRefreshDashboardCommandHandler(), c.configs.DashboardRefreshSpec, c.logger)
}

func (c *CompositionRoot) TagSize() int {
	return c.configs.TagSize()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
