package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for DeliveryRepository
// using PostgreSQL containers to verify database persistence behavior.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) date(day int) time.Time {
	return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) newDelivery(day int, slot kernel.Slot) *delivery.Delivery {
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), suite.date(day), slot)
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	d := suite.newDelivery(10, kernel.SlotLunch)

	suite.Require().NoError(suite.repository.Add(ctx, d))

	restored, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(d))
	suite.True(restored.OrderID().IsEqual(d.OrderID()))
	suite.Equal(delivery.StatusPending, restored.Status())
	suite.Equal(kernel.SlotLunch, restored.Slot())
	suite.True(restored.Date().Equal(suite.date(10)))
	suite.Nil(restored.DriverID())
	suite.Nil(restored.CompletedAt())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitions() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	d := suite.newDelivery(10, kernel.SlotLunch)
	suite.Require().NoError(suite.repository.Add(ctx, d))

	driverID := kernel.NewUUID()
	suite.Require().NoError(d.Assign(driverID, now))
	suite.Require().NoError(d.Advance(delivery.StatusPickedUp, "picked up from kitchen", now))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	restored, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusPickedUp, restored.Status())
	suite.Equal("picked up from kitchen", restored.Notes())
	suite.Require().NotNil(restored.DriverID())
	suite.True(restored.DriverID().IsEqual(driverID))
	suite.Require().NotNil(restored.AssignedAt())
	suite.Require().NotNil(restored.StartedAt())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	d := suite.newDelivery(10, kernel.SlotLunch)

	err := suite.repository.Update(context.Background(), d)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllActiveDue_FiltersSlotDateAndStatus() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	dueLunch := suite.newDelivery(10, kernel.SlotLunch)
	backlogLunch := suite.newDelivery(9, kernel.SlotLunch)
	futureLunch := suite.newDelivery(11, kernel.SlotLunch)
	dinner := suite.newDelivery(10, kernel.SlotDinner)
	closed := suite.newDelivery(10, kernel.SlotLunch)
	suite.Require().NoError(closed.Advance(delivery.StatusCancelled, "", now))

	for _, d := range []*delivery.Delivery{dueLunch, backlogLunch, futureLunch, dinner, closed} {
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	due, err := suite.repository.GetAllActiveDue(ctx, kernel.SlotLunch, suite.date(10))
	suite.Require().NoError(err)

	suite.Len(due, 2)
	suite.True(due[0].IsEqual(backlogLunch), "backlog dates come first")
	suite.True(due[1].IsEqual(dueLunch))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllActiveByOrder() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	orderID := kernel.NewUUID()

	active, err := delivery.NewDelivery(kernel.NewUUID(), orderID, suite.date(10), kernel.SlotLunch)
	suite.Require().NoError(err)
	closed, err := delivery.NewDelivery(kernel.NewUUID(), orderID, suite.date(10), kernel.SlotDinner)
	suite.Require().NoError(err)
	suite.Require().NoError(closed.Advance(delivery.StatusFailed, "", now))
	other := suite.newDelivery(10, kernel.SlotLunch)

	for _, d := range []*delivery.Delivery{active, closed, other} {
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	deliveries, err := suite.repository.GetAllActiveByOrder(ctx, orderID)
	suite.Require().NoError(err)

	suite.Len(deliveries, 1)
	suite.True(deliveries[0].IsEqual(active))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestCountActiveByRouteAndDate() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	routeID := kernel.NewUUID()

	onRoute := suite.newDelivery(10, kernel.SlotLunch)
	suite.Require().NoError(onRoute.AssignRoute(routeID))
	otherDate := suite.newDelivery(11, kernel.SlotLunch)
	suite.Require().NoError(otherDate.AssignRoute(routeID))
	closedOnRoute := suite.newDelivery(10, kernel.SlotDinner)
	suite.Require().NoError(closedOnRoute.AssignRoute(routeID))
	suite.Require().NoError(closedOnRoute.Advance(delivery.StatusCancelled, "", now))
	offRoute := suite.newDelivery(10, kernel.SlotLunch)

	for _, d := range []*delivery.Delivery{onRoute, otherDate, closedOnRoute, offRoute} {
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	count, err := suite.repository.CountActiveByRouteAndDate(ctx, routeID, suite.date(10))
	suite.Require().NoError(err)

	suite.Equal(1, count)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
