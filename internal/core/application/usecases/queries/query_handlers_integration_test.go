package queries_test

import (
	"context"
	"testing"
	"time"

	"senderplus/internal/adapters/out/postgres/parcelrepo"
	"senderplus/internal/core/application/usecases/queries"
	"senderplus/internal/core/domain/model/parcel"
	"senderplus/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency; the queries
// under test never inspect tracked aggregates.
type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}

type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	repo      *parcelrepo.GormParcelRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))

	suite.repo = parcelrepo.NewGormParcelRepository(db, noopTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestTrackParcel_FreshSubmission() {
	ctx := context.Background()
	p := suite.storeParcel(func(p *parcel.Parcel) {})

	handler := queries.NewTrackParcelQueryHandler(suite.db)
	query, err := queries.NewTrackParcelQuery(p.TrackingID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(p.TrackingID().String(), resp.TrackingID)
	suite.Equal("Alice Doe", resp.SenderName)
	suite.Equal("+15550001111", resp.SenderPhone)
	suite.Equal("12 Dorm Lane", resp.SenderAddress)
	suite.Equal("Bob Roe", resp.RecipientName)
	suite.Equal("34 Campus Way", resp.RecipientAddress)
	suite.Equal("Textbooks", resp.PackageName)
	suite.Equal("box", resp.PackageType)
	suite.True(decimal.RequireFromString("2.5").Equal(resp.Weight))
	suite.Nil(resp.Value)
	suite.Empty(resp.SenderEmail)
	suite.Empty(resp.PhotoURL)
	suite.Equal("waiting_bus", resp.Status)
	suite.Equal("Waiting for package to reach bus station", resp.StatusDisplay)
	suite.WithinDuration(p.CreatedAt(), resp.CreatedAt, time.Second)
}

func (suite *QueryHandlersIntegrationTestSuite) TestTrackParcel_OptionalFieldsAndAdvancedStatus() {
	ctx := context.Background()
	p := suite.storeParcel(func(p *parcel.Parcel) {
		p.AttachPhoto("https://cdn.example.com/box.jpg")
		p.AdvanceStatus(time.Now().UTC())
	})

	handler := queries.NewTrackParcelQueryHandler(suite.db)
	query, err := queries.NewTrackParcelQuery(p.TrackingID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("https://cdn.example.com/box.jpg", resp.PhotoURL)
	suite.Equal("en_route_campus", resp.Status)
	suite.Equal("Package in our van en route to campus", resp.StatusDisplay)
}

func (suite *QueryHandlersIntegrationTestSuite) TestTrackParcel_NotFound() {
	ctx := context.Background()

	handler := queries.NewTrackParcelQueryHandler(suite.db)
	query, err := queries.NewTrackParcelQuery(parcel.NewTrackingID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestStatusCounts_TalliesPerStage() {
	ctx := context.Background()

	suite.storeParcel(func(p *parcel.Parcel) {})
	suite.storeParcel(func(p *parcel.Parcel) {})
	suite.storeParcel(func(p *parcel.Parcel) {
		p.AdvanceStatus(time.Now().UTC())
	})

	handler := queries.NewGetParcelStatusCountsQueryHandler(suite.db)
	counts, err := handler.Handle(ctx, queries.NewGetParcelStatusCountsQuery())
	suite.Require().NoError(err)

	suite.Equal([]queries.ParcelStatusCount{
		{Status: "en_route_campus", Count: 1},
		{Status: "waiting_bus", Count: 2},
	}, counts)
}

func (suite *QueryHandlersIntegrationTestSuite) TestStatusCounts_EmptyTable() {
	ctx := context.Background()

	handler := queries.NewGetParcelStatusCountsQueryHandler(suite.db)
	counts, err := handler.Handle(ctx, queries.NewGetParcelStatusCountsQuery())
	suite.Require().NoError(err)
	suite.Empty(counts)
}

// storeParcel builds a fresh submission, applies mutate, and persists it.
func (suite *QueryHandlersIntegrationTestSuite) storeParcel(mutate func(*parcel.Parcel)) *parcel.Parcel {
	sender, err := parcel.NewContact("Alice Doe", "+15550001111", "", "12 Dorm Lane")
	suite.Require().NoError(err)
	recipient, err := parcel.NewContact("Bob Roe", "+15550002222", "", "34 Campus Way")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(
		parcel.NewTrackingID(), sender, recipient,
		"Textbooks", "box", decimal.RequireFromString("2.5"), nil, "", time.Now().UTC())
	suite.Require().NoError(err)

	mutate(p)

	suite.Require().NoError(suite.repo.Add(context.Background(), p))
	return p
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
