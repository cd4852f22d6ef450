package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/spantra1997/SecondServe/internal/adapters/out/postgres/orderrepo"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	pickup, err := kernel.NewLocation("12 Baker Street", "London", 51.52, -0.15)
	suite.Require().NoError(err)
	delivery, err := kernel.NewLocation("3 Shelter Lane", "London", 51.49, -0.12)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Hope Shelter",
		kernel.NewUUID(),
		[]string{"vegetarian", "halal"},
		pickup,
		delivery,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(testOrder.ID().IsEqual(retrieved.ID()))
	suite.True(testOrder.DonationID().IsEqual(retrieved.DonationID()))
	suite.True(testOrder.RecipientID().IsEqual(retrieved.RecipientID()))
	suite.Equal("Hope Shelter", retrieved.RecipientName())
	suite.Equal([]string{"vegetarian", "halal"}, retrieved.DietaryPreferences())
	suite.Equal("12 Baker Street", retrieved.PickupLocation().Address())
	suite.Equal("3 Shelter Lane", retrieved.DeliveryLocation().Address())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.Driver())
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByDonation_ReturnsLinkedOrder() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	other := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, other))

	retrieved, err := suite.repository.GetByDonation(ctx, testOrder.DonationID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrieved.ID()))

	_, err = suite.repository.GetByDonation(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AssignmentAndAdvance_Persisted() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	driverID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Assign(driverID, "Sam Driver"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.Driver())
	suite.True(driverID.IsEqual(*retrieved.Driver()))
	suite.Equal("Sam Driver", retrieved.DriverName())
	suite.Equal(2, retrieved.Version())

	suite.Require().NoError(retrieved.Advance(driverID, order.InTransit))
	suite.Require().NoError(suite.repository.Update(ctx, retrieved))

	retrieved, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InTransit, retrieved.Status())
	suite.Equal(3, retrieved.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsStatusConflict() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two drivers load the same pending order
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// First driver takes it
	suite.Require().NoError(first.Assign(kernel.NewUUID(), "First Driver"))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// Second driver's write is stale and must fail
	suite.Require().NoError(second.Assign(kernel.NewUUID(), "Second Driver"))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrStatusConflict)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("First Driver", retrieved.DriverName())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPending_ReturnsOldestFirst() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	oldest := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, oldest))

	newest := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, newest))

	assigned := suite.createTestOrder()
	suite.Require().NoError(assigned.Assign(kernel.NewUUID(), "Sam Driver"))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	pending, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(oldest.ID().IsEqual(pending[0].ID()), "Oldest pending order should come first")
	suite.True(newest.ID().IsEqual(pending[1].ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByParticipant_Filters() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	mine := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, mine))

	other := suite.createTestOrder()
	driverID := kernel.NewUUID()
	suite.Require().NoError(other.Assign(driverID, "Sam Driver"))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	byRecipient, err := suite.repository.GetAllByRecipient(ctx, mine.RecipientID())
	suite.Require().NoError(err)
	suite.Require().Len(byRecipient, 1)
	suite.True(mine.ID().IsEqual(byRecipient[0].ID()))

	byDonor, err := suite.repository.GetAllByDonor(ctx, other.DonorID())
	suite.Require().NoError(err)
	suite.Require().Len(byDonor, 1)
	suite.True(other.ID().IsEqual(byDonor[0].ID()))

	byDriver, err := suite.repository.GetAllByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Require().Len(byDriver, 1)
	suite.True(other.ID().IsEqual(byDriver[0].ID()))

	none, err := suite.repository.GetAllByDriver(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(none)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
