package queries_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ResolvePublicOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ResolvePublicOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *ResolvePublicOrderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewResolvePublicOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *ResolvePublicOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ResolvePublicOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ResolvePublicOrderQueryHandlerTestSuite) TestHandle_RiderToken_FullProjection() {
	ctx := context.Background()
	dispatched := suite.addDispatchedOrder(ctx)

	query, err := queries.NewResolvePublicOrderQuery(dispatched.RiderToken().Value())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(kernel.RiderRole, result.Role)
	suite.Require().NotNil(result.Rider)
	suite.Nil(result.Customer)
	suite.Equal(dispatched.ReadableID(), result.Rider.ReadableID)
	suite.Equal(dispatched.CustomerName(), result.Rider.CustomerName)
	suite.Equal(dispatched.CustomerPhone(), result.Rider.CustomerPhone)
	suite.Equal(dispatched.DeliveryAddress(), result.Rider.DeliveryAddress)
	suite.InDelta(dispatched.PriceTotal(), result.Rider.PriceTotal, 0.001)
	suite.Equal(order.Dispatched, result.Rider.Status)
	suite.Equal(dispatched.RiderPhone(), result.Rider.RiderPhone)
}

func (suite *ResolvePublicOrderQueryHandlerTestSuite) TestHandle_CustomerToken_MinimalProjection() {
	ctx := context.Background()
	dispatched := suite.addDispatchedOrder(ctx)

	query, err := queries.NewResolvePublicOrderQuery(dispatched.CustomerToken().Value())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(kernel.CustomerRole, result.Role)
	suite.Require().NotNil(result.Customer)
	suite.Nil(result.Rider)
	suite.Equal(dispatched.ReadableID(), result.Customer.ReadableID)
	suite.Equal(dispatched.DeliveryAddress(), result.Customer.DeliveryAddress)
	suite.Equal(order.Dispatched, result.Customer.Status)
	suite.Equal(dispatched.RiderPhone(), result.Customer.RiderPhone)
}

func (suite *ResolvePublicOrderQueryHandlerTestSuite) TestHandle_UnknownToken_NotFound() {
	query, err := queries.NewResolvePublicOrderQuery("never-minted-token")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ResolvePublicOrderQueryHandlerTestSuite) TestHandle_CancelledOrderTokenStillResolves() {
	ctx := context.Background()
	now := time.Now().UTC()

	testOrder := suite.newOrder(now)
	suite.Require().NoError(testOrder.MarkProcessing(now))
	riderToken, err := kernel.NewAccessToken(kernel.RiderRole)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.MarkReady("+2347011112222", riderToken, now))
	suite.Require().NoError(testOrder.Cancel(now))
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	query, err := queries.NewResolvePublicOrderQuery(riderToken.Value())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(kernel.RiderRole, result.Role)
	suite.Require().NotNil(result.Rider)
	suite.Equal(order.Cancelled, result.Rider.Status)
}

func (suite *ResolvePublicOrderQueryHandlerTestSuite) newOrder(now time.Time) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Ada Obi", "+2348012345678", "12 Marina Rd, Lagos", 4500,
		now,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *ResolvePublicOrderQueryHandlerTestSuite) addDispatchedOrder(ctx context.Context) *order.Order {
	now := time.Now().UTC()
	testOrder := suite.newOrder(now)

	suite.Require().NoError(testOrder.MarkProcessing(now))
	riderToken, err := kernel.NewAccessToken(kernel.RiderRole)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.MarkReady("+2347011112222", riderToken, now))
	customerToken, err := kernel.NewAccessToken(kernel.CustomerRole)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.MarkDispatched(customerToken, now))

	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))
	return testOrder
}

func TestResolvePublicOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResolvePublicOrderQueryHandlerTestSuite))
}
