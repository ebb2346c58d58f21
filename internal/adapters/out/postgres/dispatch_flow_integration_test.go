package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Func adapters narrowing the concrete unit of work factory to the
// per-handler factory interfaces, mirroring the composition root.
type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

type funcDispatchUoWFactory func() commands.DispatchUoW

func (f funcDispatchUoWFactory) Create() commands.DispatchUoW { return f() }

type funcDriverUoWFactory func() commands.DriverUoW

func (f funcDriverUoWFactory) Create() commands.DriverUoW { return f() }

// capturingPublisher records published tracking events in order.
type capturingPublisher struct {
	events []ports.TrackingEvent
}

func (p *capturingPublisher) Publish(event ports.TrackingEvent) {
	p.events = append(p.events, event)
}

// DispatchFlowIntegrationTestSuite drives a delivery through its whole
// lifecycle against a real database: confirmed order, backfilled delivery,
// driver assignment, location ingestion, progress transitions and completion.
type DispatchFlowIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
	publisher *capturingPublisher

	syncHandler       commands.SyncConfirmedOrdersCommandHandler
	registerHandler   commands.RegisterDriverCommandHandler
	verifyHandler     commands.VerifyDriverCommandHandler
	goOnlineHandler   commands.GoOnlineCommandHandler
	assignHandler     commands.AssignDriverCommandHandler
	ingestHandler     commands.IngestLocationCommandHandler
	transitionHandler commands.TransitionDeliveryCommandHandler
	completeHandler   commands.CompleteDeliveryCommandHandler
	trackingHandler   queries.GetTrackingQueryHandler
}

func (suite *DispatchFlowIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
	))
}

func (suite *DispatchFlowIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, drivers, orders").Error)

	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
	suite.publisher = &capturingPublisher{}

	uowFactory := funcUoWFactory(func() commands.UoW { return suite.factory.Create() })
	dispatchFactory := funcDispatchUoWFactory(func() commands.DispatchUoW { return suite.factory.Create() })
	driverFactory := funcDriverUoWFactory(func() commands.DriverUoW { return suite.factory.Create() })

	suite.syncHandler = commands.NewSyncConfirmedOrdersCommandHandler(uowFactory)
	suite.registerHandler = commands.NewRegisterDriverCommandHandler(driverFactory)
	suite.verifyHandler = commands.NewVerifyDriverCommandHandler(driverFactory)
	suite.goOnlineHandler = commands.NewGoOnlineCommandHandler(driverFactory)
	suite.assignHandler = commands.NewAssignDriverCommandHandler(dispatchFactory, suite.publisher)
	suite.ingestHandler = commands.NewIngestLocationCommandHandler(dispatchFactory, suite.publisher)
	suite.transitionHandler = commands.NewTransitionDeliveryCommandHandler(uowFactory, suite.publisher)
	suite.completeHandler = commands.NewCompleteDeliveryCommandHandler(uowFactory, suite.publisher)
	suite.trackingHandler = queries.NewGetTrackingQueryHandler(suite.db)
}

func (suite *DispatchFlowIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DispatchFlowIntegrationTestSuite) TestConfirmedOrder_TravelsToDelivered() {
	ctx := context.Background()

	testOrder := suite.seedConfirmedOrder()

	// Backfill turns the confirmed order into an unassigned delivery.
	suite.Require().NoError(suite.syncHandler.Handle(ctx, commands.NewSyncConfirmedOrdersCommand()))

	created := suite.getDeliveryByOrder(testOrder.ID())
	suite.Equal(delivery.Processing, created.Status())

	// Running the scan again changes nothing.
	suite.Require().NoError(suite.syncHandler.Handle(ctx, commands.NewSyncConfirmedOrdersCommand()))
	suite.assertDeliveryCount(1)

	driverID := suite.onboardDriver(ctx)

	assignCmd, err := commands.NewAssignDriverCommand(driverID, created.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.assignHandler.Handle(ctx, assignCmd))

	assigned := suite.getDelivery(created.ID())
	suite.Equal(delivery.PickedUp, assigned.Status())
	suite.Require().NotNil(assigned.DriverID())
	suite.Equal(driverID, *assigned.DriverID())

	engaged := suite.getDriver(driverID)
	suite.False(engaged.IsAvailable())
	suite.Require().NotNil(engaged.CurrentDeliveryID())
	suite.Equal(created.ID(), *engaged.CurrentDeliveryID())

	// Three observations with increasing timestamps move the delivery.
	base := time.Now().UTC().Truncate(time.Microsecond)
	route := [][2]float64{
		{45.4642, 9.1900},
		{45.4700, 9.1850},
		{45.4760, 9.1800},
	}
	for i, point := range route {
		fixCmd, fixErr := commands.NewIngestLocationCommand(
			driverID, point[0], point[1], nil, nil, nil, base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(fixErr)
		suite.Require().NoError(suite.ingestHandler.Handle(ctx, fixCmd))
	}

	// A fix that is not strictly newer than the last accepted one is stale.
	staleCmd, err := commands.NewIngestLocationCommand(
		driverID, 45.0, 9.0, nil, nil, nil, base)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.ingestHandler.Handle(ctx, staleCmd), driver.ErrStaleFix)

	tracked := suite.getDelivery(created.ID())
	suite.Require().NotNil(tracked.CurrentPosition())
	suite.InDelta(45.4760, tracked.CurrentPosition().Latitude(), 1e-9)
	suite.InDelta(9.1800, tracked.CurrentPosition().Longitude(), 1e-9)

	suite.transition(ctx, created.ID(), delivery.InTransit)
	suite.transition(ctx, created.ID(), delivery.OutForDelivery)

	completeCmd, err := commands.NewCompleteDeliveryCommand(driverID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.completeHandler.Handle(ctx, completeCmd))

	// Delivered keeps the driver link for the record; the driver is free
	// again and the order carries the terminal outcome.
	finished := suite.getDelivery(created.ID())
	suite.Equal(delivery.Delivered, finished.Status())
	suite.Require().NotNil(finished.DriverID())
	suite.Equal(driverID, *finished.DriverID())

	freed := suite.getDriver(driverID)
	suite.True(freed.IsAvailable())
	suite.Nil(freed.CurrentDeliveryID())

	settledOrder := suite.getOrder(testOrder.ID())
	suite.Equal(order.StatusDelivered, settledOrder.Status())

	// The completed order no longer shows up in the backfill scan.
	suite.Require().NoError(suite.syncHandler.Handle(ctx, commands.NewSyncConfirmedOrdersCommand()))
	suite.assertDeliveryCount(1)

	suite.assertPublishedStatuses(
		"PICKED_UP",
		"PICKED_UP", "PICKED_UP", "PICKED_UP",
		"IN_TRANSIT",
		"OUT_FOR_DELIVERY",
		"DELIVERED",
	)

	suite.assertPublicTrackingView(ctx, finished)
}

func (suite *DispatchFlowIntegrationTestSuite) TestAssign_DeliveryAlreadyTaken_ReturnsConflict() {
	ctx := context.Background()

	testOrder := suite.seedConfirmedOrder()
	suite.Require().NoError(suite.syncHandler.Handle(ctx, commands.NewSyncConfirmedOrdersCommand()))
	created := suite.getDeliveryByOrder(testOrder.ID())

	first := suite.onboardDriver(ctx)
	second := suite.onboardDriver(ctx)

	assignCmd, err := commands.NewAssignDriverCommand(first, created.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.assignHandler.Handle(ctx, assignCmd))

	// The loser of the race sees a conflict, and nothing about the winner's
	// assignment changes.
	lateCmd, err := commands.NewAssignDriverCommand(second, created.ID())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.assignHandler.Handle(ctx, lateCmd), commands.ErrAssignmentConflict)

	assigned := suite.getDelivery(created.ID())
	suite.Require().NotNil(assigned.DriverID())
	suite.Equal(first, *assigned.DriverID())

	loser := suite.getDriver(second)
	suite.True(loser.IsAvailable())
	suite.Nil(loser.CurrentDeliveryID())
}

func (suite *DispatchFlowIntegrationTestSuite) TestAssign_ConcurrentForSameDriver_SingleWinner() {
	ctx := context.Background()

	firstOrder := suite.seedConfirmedOrder()
	secondOrder := suite.seedConfirmedOrder()
	suite.Require().NoError(suite.syncHandler.Handle(ctx, commands.NewSyncConfirmedOrdersCommand()))

	firstDelivery := suite.getDeliveryByOrder(firstOrder.ID())
	secondDelivery := suite.getDeliveryByOrder(secondOrder.ID())

	driverID := suite.onboardDriver(ctx)

	firstCmd, err := commands.NewAssignDriverCommand(driverID, firstDelivery.ID())
	suite.Require().NoError(err)
	secondCmd, err := commands.NewAssignDriverCommand(driverID, secondDelivery.ID())
	suite.Require().NoError(err)

	// Two assignments race for the one driver. The driver row lock
	// serializes them: the second transaction blocks until the first
	// commits, then finds the driver engaged.
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, cmd := range []commands.AssignDriverCommand{firstCmd, secondCmd} {
		wg.Add(1)
		go func(cmd commands.AssignDriverCommand) {
			defer wg.Done()
			results <- suite.assignHandler.Handle(ctx, cmd)
		}(cmd)
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for handleErr := range results {
		switch {
		case handleErr == nil:
			succeeded++
		case errors.Is(handleErr, commands.ErrAssignmentConflict):
			conflicted++
		default:
			suite.Require().NoError(handleErr)
		}
	}
	suite.Equal(1, succeeded, "exactly one assignment wins the driver")
	suite.Equal(1, conflicted, "the other sees a conflict")

	engaged := suite.getDriver(driverID)
	suite.False(engaged.IsAvailable())
	suite.Require().NotNil(engaged.CurrentDeliveryID())
	wonID := *engaged.CurrentDeliveryID()

	winner := suite.getDelivery(wonID)
	suite.Equal(delivery.PickedUp, winner.Status())
	suite.Require().NotNil(winner.DriverID())
	suite.Equal(driverID, *winner.DriverID())

	loserID := firstDelivery.ID()
	if wonID == loserID {
		loserID = secondDelivery.ID()
	}
	loser := suite.getDelivery(loserID)
	suite.Equal(delivery.Processing, loser.Status())
	suite.Nil(loser.DriverID())
}

// seedConfirmedOrder inserts a confirmed order the way the commerce system
// would, bypassing the engine.
func (suite *DispatchFlowIntegrationTestSuite) seedConfirmedOrder() *order.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), order.StatusConfirmed, "12 Via Roma, Milan", "+393331234567", now, now)
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	return testOrder
}

// onboardDriver registers, verifies and brings online a new driver.
func (suite *DispatchFlowIntegrationTestSuite) onboardDriver(ctx context.Context) kernel.UUID {
	driverID := kernel.NewUUID()

	registerCmd, err := commands.NewRegisterDriverCommand(driverID, "Dario Rossi", "+393331234567", "scooter")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.registerHandler.Handle(ctx, registerCmd))

	verifyCmd, err := commands.NewVerifyDriverCommand(driverID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.verifyHandler.Handle(ctx, verifyCmd))

	onlineCmd, err := commands.NewGoOnlineCommand(driverID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.goOnlineHandler.Handle(ctx, onlineCmd))

	return driverID
}

func (suite *DispatchFlowIntegrationTestSuite) transition(
	ctx context.Context, deliveryID kernel.UUID, status delivery.Status,
) {
	cmd, err := commands.NewTransitionDeliveryCommand(deliveryID, status)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.transitionHandler.Handle(ctx, cmd))
}

func (suite *DispatchFlowIntegrationTestSuite) getDelivery(id kernel.UUID) *delivery.Delivery {
	aggregate, err := suite.factory.Create().DeliveryRepository().Get(context.Background(), id)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *DispatchFlowIntegrationTestSuite) getDeliveryByOrder(orderID kernel.UUID) *delivery.Delivery {
	aggregate, err := suite.factory.Create().DeliveryRepository().GetByOrderID(context.Background(), orderID)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *DispatchFlowIntegrationTestSuite) getDriver(id kernel.UUID) *driver.Driver {
	aggregate, err := suite.factory.Create().DriverRepository().Get(context.Background(), id)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *DispatchFlowIntegrationTestSuite) getOrder(id kernel.UUID) *order.Order {
	aggregate, err := suite.factory.Create().OrderRepository().Get(context.Background(), id)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *DispatchFlowIntegrationTestSuite) assertDeliveryCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *DispatchFlowIntegrationTestSuite) assertPublishedStatuses(expected ...string) {
	actual := make([]string, 0, len(suite.publisher.events))
	for _, event := range suite.publisher.events {
		actual = append(actual, event.Status)
	}
	suite.Equal(expected, actual)
}

// assertPublicTrackingView checks the customer-facing lookup: status and
// position come back, the driver's identity does not exist in the response
// type at all.
func (suite *DispatchFlowIntegrationTestSuite) assertPublicTrackingView(
	ctx context.Context, finished *delivery.Delivery,
) {
	query, err := queries.NewGetTrackingQuery(finished.TrackingNumber())
	suite.Require().NoError(err)

	view, err := suite.trackingHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("DELIVERED", view.Status)
	suite.Require().NotNil(view.CurrentLat)
	suite.InDelta(45.4760, *view.CurrentLat, 1e-9)
	suite.Require().NotNil(view.CurrentLon)
	suite.InDelta(9.1800, *view.CurrentLon, 1e-9)
	suite.Equal(finished.Address(), view.Address)
}

func TestDispatchFlowIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchFlowIntegrationTestSuite))
}
