package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "github.com/spantra1997/SecondServe/internal/adapters/out/postgres"
	"github.com/spantra1997/SecondServe/internal/adapters/out/postgres/donationrepo"
	"github.com/spantra1997/SecondServe/internal/adapters/out/postgres/orderrepo"
	"github.com/spantra1997/SecondServe/internal/adapters/out/postgres/userrepo"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/account"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"
	"github.com/spantra1997/SecondServe/internal/core/ports"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&donationrepo.DonationDTO{}, &orderrepo.OrderDTO{}, &userrepo.UserDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE donations, orders, users").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDonation() *donation.Donation {
	location, err := kernel.NewLocation("12 Baker Street", "London", 51.52, -0.15)
	suite.Require().NoError(err)

	testDonation, err := donation.NewDonation(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Corner Bakery",
		"Sourdough loaves",
		"10 loaves",
		nil,
		time.Now().UTC().Add(24*time.Hour),
		"",
		"",
		location,
	)
	suite.Require().NoError(err)
	return testDonation
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(donationID kernel.UUID) *order.Order {
	pickup, err := kernel.NewLocation("12 Baker Street", "London", 51.52, -0.15)
	suite.Require().NoError(err)
	delivery, err := kernel.NewLocation("3 Shelter Lane", "London", 51.49, -0.12)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		donationID,
		kernel.NewUUID(),
		"Hope Shelter",
		kernel.NewUUID(),
		nil,
		pickup,
		delivery,
	)
	suite.Require().NoError(err)
	return testOrder
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.DonationRepository(), "First instance should provide donation repository")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.UserRepository(), "First instance should provide user repository")
	suite.NotNil(uow2.DonationRepository(), "Second instance should provide donation repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDonation := suite.createTestDonation()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add donation within transaction
	err = uow.DonationRepository().Add(ctx, testDonation)
	suite.Require().NoError(err)

	// Verify donation exists within transaction
	retrieved, err := uow.DonationRepository().Get(ctx, testDonation.ID())
	suite.Require().NoError(err)
	suite.True(testDonation.ID().IsEqual(retrieved.ID()))

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify donation persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.DonationRepository().Get(ctx, testDonation.ID())
	suite.Require().NoError(err)
	suite.True(testDonation.ID().IsEqual(retrieved.ID()))
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDonation := suite.createTestDonation()
	recipient, err := account.NewUser(
		kernel.NewUUID(), "shelter@example.com", "Hope Shelter", account.RoleRecipient, "",
	)
	suite.Require().NoError(err)

	// Begin transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities using different repositories within same transaction
	err = uow.DonationRepository().Add(ctx, testDonation)
	suite.Require().NoError(err)

	err = uow.UserRepository().Add(ctx, recipient)
	suite.Require().NoError(err)

	// Claim the donation and create the paired order
	err = testDonation.Claim()
	suite.Require().NoError(err)
	err = uow.DonationRepository().Update(ctx, testDonation)
	suite.Require().NoError(err)

	testOrder := suite.createTestOrder(testDonation.ID())
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both sides of the claim persisted
	newUow := suite.factory.Create()

	retrievedDonation, err := newUow.DonationRepository().Get(ctx, testDonation.ID())
	suite.Require().NoError(err)
	suite.Equal(donation.Claimed, retrievedDonation.Status())

	retrievedOrder, err := newUow.OrderRepository().GetByDonation(ctx, testDonation.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
	suite.Equal(order.Pending, retrievedOrder.Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDonation := suite.createTestDonation()
	testOrder := suite.createTestOrder(testDonation.ID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.DonationRepository().Add(ctx, testDonation)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.DonationRepository().Get(ctx, testDonation.ID())
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing persisted
	newUow := suite.factory.Create()

	_, err = newUow.DonationRepository().Get(ctx, testDonation.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_ConcurrentClaim verifies the version check serializes two
// transactions claiming the same donation.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentClaim() {
	ctx := context.Background()

	// Seed a donation outside any transaction
	seedUow := suite.factory.Create()
	testDonation := suite.createTestDonation()
	err := seedUow.DonationRepository().Add(ctx, testDonation)
	suite.Require().NoError(err)

	// Two units of work load the donation independently
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	first, err := uow1.DonationRepository().Get(ctx, testDonation.ID())
	suite.Require().NoError(err)
	second, err := uow2.DonationRepository().Get(ctx, testDonation.ID())
	suite.Require().NoError(err)

	// First transaction claims and commits
	err = uow1.Begin(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(first.Claim())
	err = uow1.DonationRepository().Update(ctx, first)
	suite.Require().NoError(err)
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Second transaction loses the race
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(second.Claim())
	err = uow2.DonationRepository().Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrStatusConflict)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Exactly one claim persisted
	checkUow := suite.factory.Create()
	retrieved, err := checkUow.DonationRepository().Get(ctx, testDonation.ID())
	suite.Require().NoError(err)
	suite.Equal(donation.Claimed, retrieved.Status())
	suite.Equal(2, retrieved.Version())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
