package orderlinkrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/orderlinkrepo"
	"warehouse/internal/adapters/out/postgres/pgtest"
	"warehouse/internal/core/domain/model/orderlink"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OrderLinkRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	seed       pgtest.Seed
	unitID     int64
	repository *orderlinkrepo.GormOrderLinkRepository
}

func (suite *OrderLinkRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderLinkRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderLinkRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	seed, err := suite.database.SeedReferences()
	suite.Require().NoError(err)
	suite.seed = seed

	suite.Require().NoError(suite.database.DB.Raw(`
		INSERT INTO units (owner_company_id, model_id, stock_id, serial, amount, status_id, created_by)
		VALUES (?, ?, ?, 'SN-100', 1, 1, ?) RETURNING id`,
		seed.CompanyID, seed.ModelID, seed.StockID, seed.UserID,
	).Scan(&suite.unitID).Error)

	suite.repository = orderlinkrepo.NewGormOrderLinkRepository(suite.database.DB)
}

func (suite *OrderLinkRepositoryIntegrationTestSuite) link(orderID int64, comment string) *orderlink.Link {
	l, err := orderlink.NewLink(suite.unitID, orderID, comment, suite.seed.UserID, time.Now())
	suite.Require().NoError(err)
	return l
}

func (suite *OrderLinkRepositoryIntegrationTestSuite) TestAdd_ThenGetByUnit() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.link(suite.seed.OrderID, "")))

	stored, err := suite.repository.GetByUnit(ctx, suite.unitID)
	suite.Require().NoError(err)
	suite.Equal(suite.seed.OrderID, stored.OrderID())
	suite.Equal(orderlink.DefaultComment, stored.Comment())
	suite.Equal(suite.seed.UserID, stored.LinkedBy())
}

func (suite *OrderLinkRepositoryIntegrationTestSuite) TestAdd_Duplicate_IsValidationError() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.link(suite.seed.OrderID, "first")))

	err := suite.repository.Add(ctx, suite.link(suite.seed.OrderID, "second"))

	verr, ok := errs.AsValidationError(err)
	suite.Require().True(ok)
	suite.Equal([]string{"order_id: unit is already linked to this order"}, verr.Messages())
}

func (suite *OrderLinkRepositoryIntegrationTestSuite) TestAdd_UnknownOrder_IsValidationError() {
	err := suite.repository.Add(context.Background(), suite.link(777, ""))

	suite.Require().ErrorIs(err, errs.ErrValidation)
}

func (suite *OrderLinkRepositoryIntegrationTestSuite) TestDeleteByUnit() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.link(suite.seed.OrderID, "")))

	removed, err := suite.repository.DeleteByUnit(ctx, suite.unitID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, err = suite.repository.GetByUnit(ctx, suite.unitID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	removed, err = suite.repository.DeleteByUnit(ctx, suite.unitID)
	suite.Require().NoError(err)
	suite.Zero(removed)
}

func TestOrderLinkRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderLinkRepositoryIntegrationTestSuite))
}
