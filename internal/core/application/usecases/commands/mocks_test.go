package commands_test

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/activity"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) Add(ctx context.Context, tx *order.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id customer.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Get(ctx context.Context, id staff.ID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockActivityRepository struct{ mock.Mock }

func (m *MockActivityRepository) Add(ctx context.Context, e *activity.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TransactionRepository() ports.TransactionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransactionRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

func (m *MockUoW) ActivityRepository() ports.ActivityRepository {
	args := m.Called()
	return args.Get(0).(ports.ActivityRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStatisticsReader struct{ mock.Mock }

func (m *MockStatisticsReader) Compute(ctx context.Context, now time.Time) (ports.OrderStatistics, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(ports.OrderStatistics), args.Error(1)
}

type MockStatisticsCache struct{ mock.Mock }

func (m *MockStatisticsCache) Get(ctx context.Context) (ports.OrderStatistics, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.OrderStatistics), args.Error(1)
}

func (m *MockStatisticsCache) Set(ctx context.Context, stats ports.OrderStatistics) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// uowMocks bundles a mocked unit of work with its repositories. Repository
// accessors may be called any number of times; tests assert on the
// repository calls themselves.
type uowMocks struct {
	uow          *MockUoW
	factory      *MockUoWFactory
	orders       *MockOrderRepository
	transactions *MockTransactionRepository
	customers    *MockCustomerRepository
	staff        *MockStaffRepository
	activities   *MockActivityRepository
}

func newUoWMocks() *uowMocks {
	m := &uowMocks{
		uow:          new(MockUoW),
		factory:      new(MockUoWFactory),
		orders:       new(MockOrderRepository),
		transactions: new(MockTransactionRepository),
		customers:    new(MockCustomerRepository),
		staff:        new(MockStaffRepository),
		activities:   new(MockActivityRepository),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("TransactionRepository").Return(m.transactions).Maybe()
	m.uow.On("CustomerRepository").Return(m.customers).Maybe()
	m.uow.On("StaffRepository").Return(m.staff).Maybe()
	m.uow.On("ActivityRepository").Return(m.activities).Maybe()
	return m
}

func (m *uowMocks) assertExpectations(t mock.TestingT) {
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.transactions.AssertExpectations(t)
	m.customers.AssertExpectations(t)
	m.staff.AssertExpectations(t)
	m.activities.AssertExpectations(t)
}
