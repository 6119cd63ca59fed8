package customerrepo_test

import (
	"context"
	"testing"

	"sales/internal/adapters/out/postgres/customerrepo"
	"sales/internal/adapters/out/postgres/postgrestest"
	"sales/internal/core/domain/model/customer"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	database *postgrestest.Database
	repo     *customerrepo.GormCustomerRepository
}

func (s *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := postgrestest.Start(context.Background())
	s.Require().NoError(err)
	s.database = database
	s.repo = customerrepo.NewGormCustomerRepository(database.DB)
}

func (s *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.database.Truncate(context.Background()))
}

func (s *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	s.Require().NoError(s.database.Terminate(context.Background()))
}

func (s *CustomerRepositoryIntegrationTestSuite) TestAddAndGet_WithoutLastOrderPrice() {
	ctx := context.Background()
	c, err := customer.NewCustomer(kernel.RandomIDGenerator{}, "Ada Lovelace")
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Add(ctx, c))
	loaded, err := s.repo.Get(ctx, c.ID())
	s.Require().NoError(err)

	s.True(loaded.ID().IsEqual(c.ID()))
	s.Equal("Ada Lovelace", loaded.Name())
	_, ok := loaded.LastOrderPrice()
	s.False(ok)
}

func (s *CustomerRepositoryIntegrationTestSuite) TestGet_RestoresLastOrderPrice() {
	ctx := context.Background()
	id := kernel.NewUUID()
	code := "GBP"
	s.Require().NoError(s.database.DB.Create(&customerrepo.CustomerDTO{
		ID:                id.Bytes(),
		Name:              "Grace",
		LastOrderPrice:    decimal.NewNullDecimal(decimal.RequireFromString("12.3400")),
		LastOrderCurrency: &code,
	}).Error)

	loaded, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)

	price, ok := loaded.LastOrderPrice()
	s.Require().True(ok)
	s.Equal("12.34 GBP", price.String())
}

func (s *CustomerRepositoryIntegrationTestSuite) TestGet_Missing() {
	_, err := s.repo.Get(context.Background(), kernel.NewUUID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed integration test in short mode")
	}
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
