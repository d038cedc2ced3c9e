package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/activityrepo"
	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/staffrepo"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/activity"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(*order.Order) {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	orders    *orderrepo.GormOrderRepository
	payments  *orderrepo.GormTransactionRepository
	log       *activityrepo.GormActivityRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.AutoMigrate(db))

	suite.orders = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.payments = orderrepo.NewGormTransactionRepository(db)
	suite.log = activityrepo.NewGormActivityRepository(db)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE activity_log, transactions, order_services, orders, addresses, customers, staff RESTART IDENTITY CASCADE",
	).Error)

	for _, c := range []customerrepo.CustomerDTO{
		{FirstName: "Juan", MiddleName: "Santos", LastName: "Dela Cruz"},
		{FirstName: "Maria", LastName: "Clara"},
	} {
		suite.Require().NoError(suite.db.Create(&c).Error)
	}
	suite.Require().NoError(suite.db.Create(&staffrepo.StaffDTO{
		FirstName: "Ana", LastName: "Reyes", Email: "ana@washy.test", Role: string(staff.RoleAdmin),
	}).Error)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_CompletedOrderDetails() {
	ctx := context.Background()
	o := suite.addOrder(customer.ID(1), time.Now().UTC())
	suite.complete(o)

	q, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, q)
	suite.Require().NoError(err)

	suite.Equal("WSHY#001", resp.Code)
	suite.Equal("Juan Santos Dela Cruz", resp.CustomerName)
	suite.Equal("Ana Reyes", resp.StaffName)
	suite.Equal(order.Completed, resp.Status)
	suite.NotNil(resp.PickedUpAt)
	suite.NotNil(resp.DeliveredAt)
	suite.Equal(pricing.ServiceName, resp.Service.Name)
	suite.Equal("3.50", resp.Service.Weight.String())
	suite.Equal(2, resp.Service.Quantity)
	suite.True(resp.Service.AddOns.FastDry)
	suite.Equal("700.00", resp.Service.Breakdown.Wash.String())
	suite.Equal("1890.00", resp.Total.String())
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("1890.00", resp.Transactions[0].Amount.String())
	suite.Equal(order.Cash, resp.Transactions[0].Method)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_Missing() {
	q, err := queries.NewGetOrderQuery(order.ID(5))
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), q)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_FilterAndSearch() {
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	first := suite.addOrder(customer.ID(1), base)
	second := suite.addOrder(customer.ID(2), base.Add(time.Hour))
	third := suite.addOrder(customer.ID(1), base.Add(2*time.Hour))
	suite.Require().NoError(second.PickUp(staff.ID(1), base.Add(3*time.Hour)))
	suite.Require().NoError(suite.orders.Update(context.Background(), second))

	handler := queries.NewListOrdersQueryHandler(suite.db)

	suite.Equal([]order.ID{third.ID(), second.ID(), first.ID()}, suite.list(handler, nil, ""))

	processing := order.Processing
	suite.Equal([]order.ID{second.ID()}, suite.list(handler, &processing, ""))

	suite.Equal([]order.ID{third.ID(), first.ID()}, suite.list(handler, nil, "juan dela"))
	suite.Equal([]order.ID{second.ID()}, suite.list(handler, nil, "PROCESS"))
	suite.Equal([]order.ID{first.ID()}, suite.list(handler, nil, "WSHY#001"))
	suite.Empty(suite.list(handler, nil, "100%"))

	pending := order.Pending
	suite.Equal([]order.ID{third.ID()}, suite.list(handler, &pending, "3"))
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_SummaryFields() {
	o := suite.addOrder(customer.ID(2), time.Now().UTC())

	q, err := queries.NewListOrdersQuery(nil, "", 0)
	suite.Require().NoError(err)
	summaries, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), q)
	suite.Require().NoError(err)

	suite.Require().Len(summaries, 1)
	suite.Equal(o.Code(), summaries[0].Code)
	suite.Equal("Maria Clara", summaries[0].CustomerName)
	suite.Equal(order.Pending, summaries[0].Status)
	suite.Equal("1890.00", summaries[0].Total.String())
	suite.Nil(summaries[0].DeliveredAt)
}

func (suite *QueriesIntegrationTestSuite) TestGetRecentActivities_NewestFirst() {
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	o := suite.addOrder(customer.ID(1), base)

	for i, kind := range []activity.Type{activity.CreateOrder, activity.PickUpOrder, activity.DeliverOrder} {
		entry, err := activity.NewEntry(staff.ID(1), kind, o.ID(), base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.log.Add(ctx, entry))
	}
	customerID := customer.ID(2)
	entry, err := activity.RestoreEntry(kernel.NewUUID(), staff.ID(1), activity.CreateCustomer, nil, &customerID, base.Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.log.Add(ctx, entry))

	q, err := queries.NewGetRecentActivitiesQuery(3)
	suite.Require().NoError(err)
	feed, err := queries.NewGetRecentActivitiesQueryHandler(suite.db).Handle(ctx, q)
	suite.Require().NoError(err)

	suite.Require().Len(feed, 3)
	suite.Equal("Delivered order WSHY#001", feed[0].Description)
	suite.Equal("Picked up order WSHY#001", feed[1].Description)
	suite.Equal("Created order WSHY#001", feed[2].Description)
	suite.Equal("Ana Reyes", feed[0].StaffName)
	suite.Nil(feed[0].CustomerID)

	q, err = queries.NewGetRecentActivitiesQuery(10)
	suite.Require().NoError(err)
	feed, err = queries.NewGetRecentActivitiesQueryHandler(suite.db).Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Require().Len(feed, 4)
	suite.Equal("Created customer #2", feed[3].Description)
	suite.Nil(feed[3].OrderID)
}

func (suite *QueriesIntegrationTestSuite) TestGetAnnualStatistics_SummarizesOneCalendarYear() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Create(&staffrepo.StaffDTO{
		FirstName: "Ben", LastName: "Cruz", Email: "ben@washy.test", Role: string(staff.RoleStaff),
	}).Error)
	suite.Require().NoError(suite.db.Create(&customerrepo.CustomerDTO{
		FirstName: "Jose", LastName: "Rizal", CreatedAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}).Error)

	base := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	suite.complete(suite.addOrderBy(customer.ID(1), staff.ID(2), base))
	suite.complete(suite.addOrderBy(customer.ID(2), staff.ID(2), base.Add(time.Hour)))
	cancelled := suite.addOrderBy(customer.ID(3), staff.ID(2), base.Add(2*time.Hour))
	suite.Require().NoError(cancelled.Cancel(base.Add(3 * time.Hour)))
	suite.Require().NoError(suite.orders.Update(ctx, cancelled))
	suite.addOrder(customer.ID(1), base.Add(4*time.Hour))

	suite.complete(suite.addOrder(customer.ID(1), time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC)))
	suite.addOrder(customer.ID(2), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	handler := queries.NewGetAnnualStatisticsQueryHandler(suite.db, time.UTC)
	q, err := queries.NewGetAnnualStatisticsQuery(2025)
	suite.Require().NoError(err)

	stats, err := handler.Handle(ctx, q)
	suite.Require().NoError(err)

	suite.Equal(2025, stats.Year)
	suite.Equal(4, stats.TotalOrders)
	suite.Equal(2, stats.Completed)
	suite.Equal(1, stats.Pending)
	suite.Equal(0, stats.Processing)
	suite.Equal(1, stats.Cancelled)
	suite.Equal(50.0, stats.CompletionRate)
	suite.Equal("3780.00", stats.Revenue.String())
	suite.Equal("1890.00", stats.AverageOrderValue.String())
	suite.Equal(int64(700), stats.WeightProcessedHundredths)
	suite.Equal(1, stats.NewCustomers)
	suite.Require().NotNil(stats.BusiestStaff)
	suite.Equal(queries.StaffWorkload{StaffID: staff.ID(2), Name: "Ben Cruz", Orders: 3}, *stats.BusiestStaff)

	q, err = queries.NewGetAnnualStatisticsQuery(2023)
	suite.Require().NoError(err)
	empty, err := handler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Zero(empty.TotalOrders)
	suite.Zero(empty.CompletionRate)
	suite.True(empty.Revenue.IsZero())
	suite.Nil(empty.BusiestStaff)
}

func (suite *QueriesIntegrationTestSuite) list(handler queries.ListOrdersQueryHandler, status *order.Status, search string) []order.ID {
	q, err := queries.NewListOrdersQuery(status, search, 0)
	suite.Require().NoError(err)

	summaries, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)

	ids := make([]order.ID, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
	}
	return ids
}

func (suite *QueriesIntegrationTestSuite) addOrder(customerID customer.ID, at time.Time) *order.Order {
	return suite.addOrderBy(customerID, staff.ID(1), at)
}

func (suite *QueriesIntegrationTestSuite) addOrderBy(customerID customer.ID, staffID staff.ID, at time.Time) *order.Order {
	w, err := kernel.NewWeight(3.5)
	suite.Require().NoError(err)
	line, err := order.NewService(w, 2, pricing.AddOns{FastDry: true, Fold: true})
	suite.Require().NoError(err)
	o, err := order.NewOrder(customerID, staffID, line, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) complete(o *order.Order) {
	ctx := context.Background()
	now := time.Now().UTC()
	suite.Require().NoError(o.PickUp(o.StaffID(), now))
	suite.Require().NoError(o.Deliver(now))
	tx, err := o.FinalizePayment(kernel.NewUUID(), staff.ID(1), order.Cash, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.payments.Add(ctx, tx))
	suite.Require().NoError(suite.orders.Update(ctx, o))
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	suite.Run(t, new(QueriesIntegrationTestSuite))
}
