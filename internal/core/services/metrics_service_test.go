package services_test

import (
	"context"
	"testing"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
	"github.com/finpulse/finpulse_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// MetricsServiceTestSuite drives the dashboard through a real session service
// backed by mock repositories, so the numbers reflect exactly what a hydrated
// session would produce.
type MetricsServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockSettingsRepo *MockRevenueSettingsRepository
	mockTierRepo     *MockPricingTierRepository
	userID           string
	service          interface {
		Dashboard(ctx context.Context, userID string) (domain.Totals, domain.Projection, error)
	}
}

func (suite *MetricsServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockSettingsRepo = new(MockRevenueSettingsRepository)
	suite.mockTierRepo = new(MockPricingTierRepository)
	suite.userID = uuid.NewString()

	sessionSvc := services.NewSessionService(suite.mockTxnRepo, suite.mockSettingsRepo, suite.mockTierRepo)
	suite.service = services.NewMetricsService(sessionSvc)
}

func (suite *MetricsServiceTestSuite) TestDashboard_HydratesAndComputes() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), UserID: suite.userID, Amount: decimal.NewFromInt(1500), Kind: domain.KindIncome},
		{TransactionID: uuid.NewString(), UserID: suite.userID, Amount: decimal.NewFromInt(400), Kind: domain.KindExpense},
	}
	settings := &domain.RevenueSettings{
		UserID:   suite.userID,
		Baseline: decimal.NewFromInt(1000),
		Target:   decimal.NewFromInt(5000),
	}
	tiers := []domain.PricingTier{
		{TierID: uuid.NewString(), UserID: suite.userID, Price: decimal.NewFromInt(100)},
		{TierID: uuid.NewString(), UserID: suite.userID, Price: decimal.NewFromInt(500)},
	}

	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, suite.userID).Return(txns, nil).Once()
	suite.mockSettingsRepo.On("GetSettings", ctx, suite.userID).Return(settings, nil).Once()
	suite.mockTierRepo.On("ListTiers", ctx, suite.userID).Return(tiers, nil).Once()

	totals, projection, err := suite.service.Dashboard(ctx, suite.userID)

	suite.Require().NoError(err)

	suite.True(totals.ExtraRevenue.Equal(decimal.NewFromInt(1500)))
	suite.True(totals.TotalRevenue.Equal(decimal.NewFromInt(2500)))
	suite.True(totals.TotalBurn.Equal(decimal.NewFromInt(400)))
	suite.True(totals.NetProfit.Equal(decimal.NewFromInt(2100)))
	suite.True(totals.AnnualRunRate.Equal(decimal.NewFromInt(30000)))

	// Progress counts total revenue, baseline included.
	suite.Equal("50", projection.ProgressPct.String())
	suite.True(projection.Gap.Equal(decimal.NewFromInt(2500)))
	suite.Require().Len(projection.Tiers, 2)
	suite.True(projection.Tiers[0].Price.Equal(decimal.NewFromInt(500)))
	suite.EqualValues(5, projection.Tiers[0].CustomersNeeded)
	suite.EqualValues(25, projection.Tiers[1].CustomersNeeded)

	// A second call reuses the hydrated snapshot; no further fetches.
	_, _, err = suite.service.Dashboard(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertNumberOfCalls(suite.T(), "ListTransactionsByUser", 1)
}

func (suite *MetricsServiceTestSuite) TestDashboard_FreshAccountIsAllZeros() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, suite.userID).Return([]domain.Transaction{}, nil).Once()
	suite.mockSettingsRepo.On("GetSettings", ctx, suite.userID).Return(nil, nil).Once()
	suite.mockTierRepo.On("ListTiers", ctx, suite.userID).Return([]domain.PricingTier{}, nil).Once()

	totals, projection, err := suite.service.Dashboard(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(totals.TotalRevenue.IsZero())
	suite.True(totals.Margin.IsZero())
	suite.True(projection.ProgressPct.IsZero())
	suite.True(projection.Gap.IsZero())
	suite.Empty(projection.Tiers)
}

func TestMetricsService(t *testing.T) {
	suite.Run(t, new(MetricsServiceTestSuite))
}
